package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"dei-dashboard/types"
)

// Span 数据集的取值跨度，用来给没填的过滤条件兜底
type Span struct {
	DateMin   time.Time
	DateMax   time.Time
	AmountMax float64
}

// Criteria 解析后的过滤条件。wire 层的 FilterCriteria 是字符串/指针，
// Service 层通过 Resolve 转成这里的强类型再进管道
type Criteria struct {
	DateStart time.Time
	DateEnd   time.Time
	Agencies  map[string]bool // 空 = 不限制
	AmountMin float64
	AmountMax float64
	Themes    map[string]bool // 空 = 不限制
}

// Resolve 把请求里的过滤条件补全成 Criteria：
// 没给日期范围用数据集全跨度，没给金额范围用 [0, +Inf)
func Resolve(req types.FilterCriteria, span Span) (Criteria, error) {
	c := Criteria{
		DateStart: span.DateMin,
		DateEnd:   endOfDay(span.DateMax),
		AmountMin: 0,
		AmountMax: math.Inf(1),
		Agencies:  toLowerSet(req.Agencies),
		Themes:    toLowerSet(req.Themes),
	}

	if req.DateRange != nil {
		if req.DateRange.Start != "" {
			start, err := time.Parse("2006-01-02", req.DateRange.Start)
			if err != nil {
				return c, fmt.Errorf("invalid date_range.start %q", req.DateRange.Start)
			}
			c.DateStart = start
		}
		if req.DateRange.End != "" {
			end, err := time.Parse("2006-01-02", req.DateRange.End)
			if err != nil {
				return c, fmt.Errorf("invalid date_range.end %q", req.DateRange.End)
			}
			// 闭区间：当天任何时刻都算在内
			c.DateEnd = endOfDay(end)
		}
		if c.DateEnd.Before(c.DateStart) {
			return c, fmt.Errorf("date_range end before start")
		}
	}

	if req.AmountRange != nil {
		if req.AmountRange.Min != nil {
			c.AmountMin = *req.AmountRange.Min
		}
		if req.AmountRange.Max != nil {
			c.AmountMax = *req.AmountRange.Max
		}
		if c.AmountMax < c.AmountMin {
			return c, fmt.Errorf("amount_range max below min")
		}
	}

	return c, nil
}

// ApplyFilters 过滤管道：四个谓词 AND 相连，全过才保留。
// 纯函数，不改动输入记录，输出保持原始相对顺序；空结果合法
func ApplyFilters(records []types.ContractRecord, c Criteria) []types.ContractRecord {
	out := make([]types.ContractRecord, 0, len(records))
	for _, rec := range records {
		if rec.ActionDate.Before(c.DateStart) || rec.ActionDate.After(c.DateEnd) {
			continue
		}
		if len(c.Agencies) > 0 && !c.Agencies[strings.ToLower(rec.AwardingAgencyName)] {
			continue
		}
		if rec.AwardAmount < c.AmountMin || rec.AwardAmount > c.AmountMax {
			continue
		}
		if len(c.Themes) > 0 && !hasAnyTheme(rec.DEIThemes, c.Themes) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// hasAnyTheme 主题集合有非空交集即命中
func hasAnyTheme(themes []string, selected map[string]bool) bool {
	for _, t := range themes {
		if selected[strings.ToLower(t)] {
			return true
		}
	}
	return false
}

// toLowerSet 匹配一律小写，避免控件传值大小写不一致
func toLowerSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(strings.TrimSpace(item))] = true
	}
	return set
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
