package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/model"
)

func intp(v int) *int           { return &v }
func boolp(v bool) *bool        { return &v }
func floatp(v float64) *float64 { return &v }

var sample = []model.Destination{
	{Country: "Portugal", CostPerDay: 90, VisaFree: "Yes", Rating: 4.6, BestMonth: "May"},
	{Country: "Vietnam", CostPerDay: 40, VisaFree: "No", Rating: 4.5, BestMonth: "March"},
	{Country: "Japan", CostPerDay: 150, VisaFree: "yes", Rating: 4.9, BestMonth: "April"},
	{Country: "Georgia", CostPerDay: 45, VisaFree: " YES ", Rating: 4.4, BestMonth: "September"},
	{Country: "Atlantis", CostPerDay: 70, VisaFree: "maybe", Rating: 3.1, BestMonth: "June"},
	{Country: "India", CostPerDay: 35, VisaFree: "NO", Rating: 4.2, BestMonth: "November"},
}

func countries(ds []model.Destination) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Country)
	}
	return out
}

func TestBuild_NoConstraintsAdmitsEverything(t *testing.T) {
	p := Build(model.Criteria{})

	where, args := p.Where()
	assert.Equal(t, "1=1", where)
	assert.Empty(t, args)
	assert.Equal(t, sample, p.Filter(sample))
}

func TestWhere(t *testing.T) {
	tests := []struct {
		name  string
		c     model.Criteria
		where string
		args  []any
	}{
		{
			name:  "max cost",
			c:     model.Criteria{MaxCost: intp(100)},
			where: "CostPerDay <= ?",
			args:  []any{100},
		},
		{
			name:  "visa free yes",
			c:     model.Criteria{VisaFree: boolp(true)},
			where: "LOWER(TRIM(VisaFree)) = ?",
			args:  []any{"yes"},
		},
		{
			name:  "visa free no",
			c:     model.Criteria{VisaFree: boolp(false)},
			where: "LOWER(TRIM(VisaFree)) = ?",
			args:  []any{"no"},
		},
		{
			name:  "all constraints in fixed order",
			c:     model.Criteria{MinRating: floatp(4.5), MaxCost: intp(80), VisaFree: boolp(true)},
			where: "CostPerDay <= ? AND LOWER(TRIM(VisaFree)) = ? AND Rating >= ?",
			args:  []any{80, "yes", 4.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := Build(tt.c).Where()
			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestMatch(t *testing.T) {
	t.Run("max cost is inclusive", func(t *testing.T) {
		got := Build(model.Criteria{MaxCost: intp(45)}).Filter(sample)
		assert.Equal(t, []string{"Vietnam", "Georgia", "India"}, countries(got))
		for _, d := range got {
			assert.LessOrEqual(t, d.CostPerDay, 45)
		}
	})

	t.Run("min rating is inclusive", func(t *testing.T) {
		got := Build(model.Criteria{MinRating: floatp(4.5)}).Filter(sample)
		assert.Equal(t, []string{"Portugal", "Vietnam", "Japan"}, countries(got))
	})

	t.Run("visa yes is case-insensitive", func(t *testing.T) {
		got := Build(model.Criteria{VisaFree: boolp(true)}).Filter(sample)
		assert.Equal(t, []string{"Portugal", "Japan", "Georgia"}, countries(got))
	})

	t.Run("visa no excludes garbled flags", func(t *testing.T) {
		got := Build(model.Criteria{VisaFree: boolp(false)}).Filter(sample)
		assert.Equal(t, []string{"Vietnam", "India"}, countries(got))
	})

	t.Run("constraints combine conjunctively", func(t *testing.T) {
		c := model.Criteria{MaxCost: intp(100), VisaFree: boolp(true), MinRating: floatp(4.5)}
		got := Build(c).Filter(sample)
		require.Len(t, got, 1)
		assert.Equal(t, "Portugal", got[0].Country)
	})
}

func TestBuild_CopiesCriteria(t *testing.T) {
	limit := 50
	c := model.Criteria{MaxCost: &limit}
	p := Build(c)
	limit = 1000

	_, args := p.Where()
	assert.Equal(t, []any{50}, args)
	assert.False(t, p.Match(model.Destination{Country: "Iceland", CostPerDay: 220}))
}
