package transform

import (
	"strings"
	"time"

	"dei-dashboard/types"
	"dei-dashboard/vars"
)

// agencyAliases 机构别名归一化表（原始数据里同一机构存在带缩写/不带缩写两种写法）
var agencyAliases = map[string]string{
	"Agency for International Development (USAID)":  "Agency for International Development",
	"Department of Health and Human Services (HHS)": "Department of Health and Human Services",
	"National Science Foundation (NSF)":             "National Science Foundation",
	"Department of Justice (DOJ)":                   "Department of Justice",
	"Department of Defense (DOD)":                   "Department of Defense",
	"Department of Education (ED)":                  "Department of Education",
	"Environmental Protection Agency (EPA)":         "Environmental Protection Agency",
}

// CanonicalAgency 把机构名折算到规范写法，没有别名的原样返回
func CanonicalAgency(name string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := agencyAliases[name]; ok {
		return canonical
	}
	return name
}

// SizeCategory 按金额分档，区间右闭：(0,1万]、(1万,10万]、(10万,100万]、(100万,1000万]、(1000万,∞)
func SizeCategory(amount float64) string {
	switch {
	case amount <= 10_000:
		return types.SizeMicro
	case amount <= 100_000:
		return types.SizeSmall
	case amount <= 1_000_000:
		return types.SizeMedium
	case amount <= 10_000_000:
		return types.SizeLarge
	default:
		return types.SizeMajor
	}
}

// SplitThemes 把分隔符串 "equity; inclusion" 拆成标签集合
// 统一转小写，空白项丢弃，顺序保留，重复标签顺手去掉
func SplitThemes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, vars.ThemeDelimiter)
	seen := make(map[string]bool, len(parts))
	themes := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		themes = append(themes, t)
	}
	return themes
}

// DurationDays 合同起止日期都存在时算持续天数，否则返回 0
func DurationDays(start, end *time.Time) int {
	if start == nil || end == nil {
		return 0
	}
	return int(end.Sub(*start).Hours() / 24)
}

// Normalize 对一条已通过类型校验的记录做清洗和派生字段填充
func Normalize(rec *types.ContractRecord) {
	rec.RecipientName = strings.TrimSpace(rec.RecipientName)
	rec.AwardingAgencyName = CanonicalAgency(rec.AwardingAgencyName)
	rec.AwardSizeCategory = SizeCategory(rec.AwardAmount)
	rec.ContractDurationDays = DurationDays(rec.ContractStartDate, rec.ContractEndDate)
}
