package types

import "time"

// AggregateView 衍生汇总视图：全部由同一份过滤子集计算得到，每次查询重算，不持久化
type AggregateView struct {
	TotalContracts        int     `json:"total_contracts"`
	TotalAwardAmount      float64 `json:"total_award_amount"`
	TotalAwardAmountLabel string  `json:"total_award_amount_label"` // 如 "$450.00"
	UniqueRecipients      int     `json:"unique_recipients"`

	// 主题分布：一条记录带 N 个主题就给 N 个桶各加一；计数 0 的主题不出现
	ThemeDistribution []ThemeCount `json:"theme_distribution"`
	// 机构金额分布：按总金额取前 10，金额降序，同额按机构名升序
	AgencyAmountDistribution []AgencyAmount `json:"agency_amount_distribution"`
	// 月度时间线：按 (年,月) 升序；没有记录的月份直接省略，不补零
	MonthlyTimeline []MonthlyPoint `json:"monthly_timeline"`
}

type ThemeCount struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

type AgencyAmount struct {
	Agency string  `json:"agency"`
	Amount float64 `json:"amount"`
	Label  string  `json:"label"` // 格式化金额，供图表 tooltip
}

type MonthlyPoint struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"` // 1-12
	Label  string  `json:"label"` // "2024-01"
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// QueryResult 一次看板查询的完整返回
type QueryResult struct {
	Aggregates AggregateView `json:"aggregates"`
	// 表格行：过滤子集按 action_date 倒序展示（展示序，不影响子集本身的原始顺序）
	Records []ContractRecord `json:"records"`
}

// FilterOptions 侧边栏控件的可选项，由当前数据集推导
type FilterOptions struct {
	DateMin        string   `json:"date_min"` // "2006-01-02"
	DateMax        string   `json:"date_max"`
	Agencies       []string `json:"agencies"`
	Themes         []string `json:"themes"`
	SizeCategories []string `json:"size_categories"`
	AmountMax      float64  `json:"amount_max"`
}

// FeaturedAward 底部滚动展示用的抽样记录
type FeaturedAward struct {
	AwardAmount   float64 `json:"award_amount"`
	AmountLabel   string  `json:"amount_label"`
	RecipientName string  `json:"recipient_name"`
	ActionDate    string  `json:"action_date"` // "January 02, 2006"
	Description   string  `json:"description"` // 超过 500 词截断
}

// LoadReport 一次数据集加载的结果报告
type LoadReport struct {
	SnapshotID  string       `json:"snapshot_id"`
	FileName    string       `json:"file_name"`
	TotalRows   int          `json:"total_rows"`
	LoadedRows  int          `json:"loaded_rows"`
	SkippedRows []SkippedRow `json:"skipped_rows,omitempty"`
	LoadedAt    time.Time    `json:"loaded_at"`
}

// SkippedRow 被剔除的脏行（日期/金额解析失败等），只记录不中断加载
type SkippedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
	Raw    string `json:"raw,omitempty"`
}
