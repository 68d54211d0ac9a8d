package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dei-dashboard/types"
)

func TestCanonicalAgency(t *testing.T) {
	t.Run("alias forms collapse to canonical name", func(t *testing.T) {
		assert.Equal(t, "National Science Foundation", CanonicalAgency("National Science Foundation (NSF)"))
		assert.Equal(t, "Department of Defense", CanonicalAgency("Department of Defense (DOD)"))
		assert.Equal(t, "Agency for International Development", CanonicalAgency(" Agency for International Development (USAID) "))
	})

	t.Run("unknown names pass through", func(t *testing.T) {
		assert.Equal(t, "Department of Transportation", CanonicalAgency("Department of Transportation"))
	})
}

func TestSizeCategory(t *testing.T) {
	// 区间右闭，和原始分档一致
	cases := []struct {
		amount float64
		want   string
	}{
		{500, types.SizeMicro},
		{10_000, types.SizeMicro},
		{10_000.01, types.SizeSmall},
		{100_000, types.SizeSmall},
		{999_999, types.SizeMedium},
		{1_000_000, types.SizeMedium},
		{5_000_000, types.SizeLarge},
		{10_000_000, types.SizeLarge},
		{10_000_001, types.SizeMajor},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SizeCategory(c.amount), "amount=%v", c.amount)
	}
}

func TestSplitThemes(t *testing.T) {
	t.Run("splits trims and lowercases", func(t *testing.T) {
		assert.Equal(t, []string{"equity", "inclusion"}, SplitThemes("Equity; Inclusion"))
	})

	t.Run("drops empties and duplicates", func(t *testing.T) {
		assert.Equal(t, []string{"equity"}, SplitThemes("equity;;EQUITY; "))
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, SplitThemes("  "))
	})
}

func TestDurationDays(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 30, DurationDays(&start, &end))
	assert.Zero(t, DurationDays(nil, &end))
	assert.Zero(t, DurationDays(&start, nil))
}

func TestNormalize(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	rec := types.ContractRecord{
		RecipientName:      "  Acme Corp ",
		AwardingAgencyName: "Department of Justice (DOJ)",
		AwardAmount:        250_000,
		ContractStartDate:  &start,
		ContractEndDate:    &end,
	}

	Normalize(&rec)

	assert.Equal(t, "Acme Corp", rec.RecipientName)
	assert.Equal(t, "Department of Justice", rec.AwardingAgencyName)
	assert.Equal(t, types.SizeMedium, rec.AwardSizeCategory)
	assert.Equal(t, 365, rec.ContractDurationDays)
}
