package analytics

import (
	"fmt"
	"sort"

	"dei-dashboard/types"
	"dei-dashboard/vars"
)

// ComputeAggregates 由过滤子集计算全部汇总视图，单次遍历攒桶，再排序输出。
// 子集为空时返回零值视图（空切片而不是 nil，前端直接渲染空图表）
func ComputeAggregates(subset []types.ContractRecord) types.AggregateView {
	view := types.AggregateView{
		ThemeDistribution:        []types.ThemeCount{},
		AgencyAmountDistribution: []types.AgencyAmount{},
		MonthlyTimeline:          []types.MonthlyPoint{},
	}

	recipients := make(map[string]bool)
	themeCounts := make(map[string]int)
	agencyTotals := make(map[string]float64)
	monthly := make(map[int]*types.MonthlyPoint) // key: year*100+month

	for _, rec := range subset {
		view.TotalContracts++
		view.TotalAwardAmount += rec.AwardAmount
		recipients[rec.RecipientName] = true

		// 一条记录带 N 个主题就给 N 个桶各计一次
		for _, theme := range rec.DEIThemes {
			themeCounts[theme]++
		}

		agencyTotals[rec.AwardingAgencyName] += rec.AwardAmount

		key := rec.ActionDate.Year()*100 + int(rec.ActionDate.Month())
		point, ok := monthly[key]
		if !ok {
			point = &types.MonthlyPoint{
				Year:  rec.ActionDate.Year(),
				Month: int(rec.ActionDate.Month()),
				Label: fmt.Sprintf("%04d-%02d", rec.ActionDate.Year(), int(rec.ActionDate.Month())),
			}
			monthly[key] = point
		}
		point.Amount += rec.AwardAmount
		point.Count++
	}

	view.UniqueRecipients = len(recipients)
	view.TotalAwardAmountLabel = FormatCurrency(view.TotalAwardAmount)

	// 主题分布：计数降序，同数按主题名升序，保证输出确定
	for theme, count := range themeCounts {
		view.ThemeDistribution = append(view.ThemeDistribution, types.ThemeCount{Theme: theme, Count: count})
	}
	sort.Slice(view.ThemeDistribution, func(i, j int) bool {
		a, b := view.ThemeDistribution[i], view.ThemeDistribution[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Theme < b.Theme
	})

	// 机构金额分布：金额降序，同额按机构名升序，截前 10
	for agency, amount := range agencyTotals {
		view.AgencyAmountDistribution = append(view.AgencyAmountDistribution, types.AgencyAmount{
			Agency: agency,
			Amount: amount,
			Label:  FormatCurrency(amount),
		})
	}
	sort.Slice(view.AgencyAmountDistribution, func(i, j int) bool {
		a, b := view.AgencyAmountDistribution[i], view.AgencyAmountDistribution[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Agency < b.Agency
	})
	if len(view.AgencyAmountDistribution) > vars.TopAgencyCount {
		view.AgencyAmountDistribution = view.AgencyAmountDistribution[:vars.TopAgencyCount]
	}

	// 月度时间线：(年,月) 升序；没有记录的月份省略，不补零
	keys := make([]int, 0, len(monthly))
	for key := range monthly {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	for _, key := range keys {
		view.MonthlyTimeline = append(view.MonthlyTimeline, *monthly[key])
	}

	return view
}
