package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dei-dashboard/types"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func f64(v float64) *float64 { return &v }

// 5 条固定记录：A 机构两条 ($100, $200)，B 机构三条 ($50 x3)
func fixtureRecords() []types.ContractRecord {
	return []types.ContractRecord{
		{AwardID: "C-001", RecipientName: "Alpha Corp", AwardingAgencyName: "Agency A", AwardAmount: 100, ActionDate: day("2023-01-15"), DEIThemes: []string{"equity"}},
		{AwardID: "C-002", RecipientName: "Beta LLC", AwardingAgencyName: "Agency A", AwardAmount: 200, ActionDate: day("2023-02-20"), DEIThemes: []string{"equity", "inclusion"}},
		{AwardID: "C-003", RecipientName: "Gamma Inc", AwardingAgencyName: "Agency B", AwardAmount: 50, ActionDate: day("2023-03-05"), DEIThemes: []string{"diversity"}},
		{AwardID: "C-004", RecipientName: "Gamma Inc", AwardingAgencyName: "Agency B", AwardAmount: 50, ActionDate: day("2023-04-10")},
		{AwardID: "C-005", RecipientName: "Delta Org", AwardingAgencyName: "Agency B", AwardAmount: 50, ActionDate: day("2023-05-25"), DEIThemes: []string{"accessibility"}},
	}
}

func fixtureSpan() Span {
	return Span{DateMin: day("2023-01-15"), DateMax: day("2023-05-25"), AmountMax: 200}
}

func TestResolve(t *testing.T) {
	t.Run("empty criteria falls back to full span", func(t *testing.T) {
		c, err := Resolve(types.FilterCriteria{}, fixtureSpan())
		require.NoError(t, err)

		assert.Equal(t, day("2023-01-15"), c.DateStart)
		assert.True(t, c.DateEnd.After(day("2023-05-25")), "end of day must cover the last record")
		assert.Zero(t, c.AmountMin)
		assert.Empty(t, c.Agencies)
		assert.Empty(t, c.Themes)
	})

	t.Run("invalid date format rejected", func(t *testing.T) {
		_, err := Resolve(types.FilterCriteria{
			DateRange: &types.DateRange{Start: "15/01/2023"},
		}, fixtureSpan())
		assert.Error(t, err)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := Resolve(types.FilterCriteria{
			DateRange: &types.DateRange{Start: "2023-05-01", End: "2023-01-01"},
		}, fixtureSpan())
		assert.Error(t, err)
	})

	t.Run("amount max below min rejected", func(t *testing.T) {
		_, err := Resolve(types.FilterCriteria{
			AmountRange: &types.AmountRange{Min: f64(500), Max: f64(100)},
		}, fixtureSpan())
		assert.Error(t, err)
	})
}

func TestApplyFilters(t *testing.T) {
	records := fixtureRecords()

	resolve := func(t *testing.T, req types.FilterCriteria) Criteria {
		t.Helper()
		c, err := Resolve(req, fixtureSpan())
		require.NoError(t, err)
		return c
	}

	t.Run("identity filter returns full dataset", func(t *testing.T) {
		subset := ApplyFilters(records, resolve(t, types.FilterCriteria{}))
		assert.Equal(t, records, subset)
	})

	t.Run("output is a subsequence in source order", func(t *testing.T) {
		subset := ApplyFilters(records, resolve(t, types.FilterCriteria{
			Agencies: []string{"Agency B"},
		}))
		require.Len(t, subset, 3)
		assert.Equal(t, "C-003", subset[0].AwardID)
		assert.Equal(t, "C-004", subset[1].AwardID)
		assert.Equal(t, "C-005", subset[2].AwardID)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := fixtureRecords()
		ApplyFilters(records, resolve(t, types.FilterCriteria{Agencies: []string{"Agency A"}}))
		assert.Equal(t, before, records)
	})

	t.Run("date range bounds are inclusive", func(t *testing.T) {
		subset := ApplyFilters(records, resolve(t, types.FilterCriteria{
			DateRange: &types.DateRange{Start: "2023-02-20", End: "2023-04-10"},
		}))
		require.Len(t, subset, 3)
		assert.Equal(t, "C-002", subset[0].AwardID)
		assert.Equal(t, "C-004", subset[2].AwardID)
	})

	t.Run("amount range 150-1000 keeps only the 200 record", func(t *testing.T) {
		subset := ApplyFilters(records, resolve(t, types.FilterCriteria{
			AmountRange: &types.AmountRange{Min: f64(150), Max: f64(1000)},
		}))
		require.Len(t, subset, 1)
		assert.Equal(t, "C-002", subset[0].AwardID)
		assert.Equal(t, float64(200), subset[0].AwardAmount)
	})

	t.Run("amount bounds are inclusive", func(t *testing.T) {
		subset := ApplyFilters(records, resolve(t, types.FilterCriteria{
			AmountRange: &types.AmountRange{Min: f64(50), Max: f64(100)},
		}))
		assert.Len(t, subset, 4) // 100 + 50x3
	})

	t.Run("theme equity matches exactly the tagged records", func(t *testing.T) {
		subset := ApplyFilters(records, resolve(t, types.FilterCriteria{
			Themes: []string{"equity"},
		}))
		require.Len(t, subset, 2)
		assert.Equal(t, "C-001", subset[0].AwardID)
		assert.Equal(t, "C-002", subset[1].AwardID)
	})

	t.Run("theme match is a set intersection", func(t *testing.T) {
		subset := ApplyFilters(records, resolve(t, types.FilterCriteria{
			Themes: []string{"inclusion", "diversity"},
		}))
		require.Len(t, subset, 2)
		assert.Equal(t, "C-002", subset[0].AwardID)
		assert.Equal(t, "C-003", subset[1].AwardID)
	})

	t.Run("agency match is case-insensitive", func(t *testing.T) {
		subset := ApplyFilters(records, resolve(t, types.FilterCriteria{
			Agencies: []string{"agency a"},
		}))
		assert.Len(t, subset, 2)
	})

	t.Run("all predicates are AND-combined", func(t *testing.T) {
		subset := ApplyFilters(records, resolve(t, types.FilterCriteria{
			Agencies:    []string{"Agency A"},
			Themes:      []string{"equity"},
			AmountRange: &types.AmountRange{Min: f64(150)},
		}))
		require.Len(t, subset, 1)
		assert.Equal(t, "C-002", subset[0].AwardID)
	})

	t.Run("empty result is valid", func(t *testing.T) {
		subset := ApplyFilters(records, resolve(t, types.FilterCriteria{
			Agencies: []string{"Agency Z"},
		}))
		assert.Empty(t, subset)
		assert.NotNil(t, subset)
	})
}
