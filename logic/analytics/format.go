package analytics

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency 金额展示格式 "$1,234.56"，负数 "-$1,234.56"
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	amount = math.Round(amount*100) / 100

	intPart := int64(amount)
	decPart := int64(math.Round((amount - float64(intPart)) * 100))

	result := fmt.Sprintf("$%s.%02d", groupThousands(fmt.Sprintf("%d", intPart)), decPart)
	if negative {
		result = "-" + result
	}
	return result
}

// FormatInt 整数加千分位，如 12345 -> "12,345"
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	return groupThousands(fmt.Sprintf("%d", n))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
