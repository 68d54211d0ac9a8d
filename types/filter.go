package types

// --- 结构体定义 ---

// QueryRequest 看板查询请求体
type QueryRequest struct {
	Filters FilterCriteria `json:"filters"`
}

// FilterCriteria 过滤条件 (来自侧边栏控件，每次交互重新构造)
// 空的 Agencies / Themes 表示不限制；未给出的范围用数据集全跨度兜底。
// 这里用 string 接收日期 (如 "2024-01-31"), Service 层负责转为 time.Time
type FilterCriteria struct {
	DateRange   *DateRange   `json:"date_range,omitempty"`
	Agencies    []string     `json:"agencies,omitempty"`
	AmountRange *AmountRange `json:"amount_range,omitempty"`
	Themes      []string     `json:"themes,omitempty"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AmountRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}
