package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/model"
)

func TestGrid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Grid(&buf, []string{"A", "Bee"}, [][]string{{"x", "y"}, {"long", ""}}))

	want := "" +
		"┌──────┬─────┐\n" +
		"│ A    │ Bee │\n" +
		"├──────┼─────┤\n" +
		"│ x    │ y   │\n" +
		"│ long │     │\n" +
		"└──────┴─────┘\n"
	assert.Equal(t, want, buf.String())
}

func TestScored(t *testing.T) {
	rows := []model.Scored{
		{Destination: model.Destination{Country: "Georgia", CostPerDay: 45, VisaFree: "Yes", Rating: 4.4, BestMonth: "September"}, Score: 0.8},
		{Destination: model.Destination{Country: "Japan", CostPerDay: 150, VisaFree: "Yes", Rating: 4.9, BestMonth: "April"}, Score: 0.35},
	}
	var buf bytes.Buffer
	require.NoError(t, Scored(&buf, rows, model.Summary{Count: 2, MeanCost: 97.5, MeanRating: 4.65}))

	out := buf.String()
	assert.Contains(t, out, "│ Georgia │ 45         │ Yes      │ 4.4    │ September │ 0.800 │")
	assert.Contains(t, out, "0.350")
	assert.True(t, strings.HasSuffix(out, "2 results · mean cost 97.50/day · mean rating 4.65\n"))
	assert.Less(t, strings.Index(out, "Georgia"), strings.Index(out, "Japan"))
}

func TestEmptyPrintsNoResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Scored(&buf, nil, model.Summary{}))
	assert.Equal(t, NoResults+"\n", buf.String())

	buf.Reset()
	require.NoError(t, Destinations(&buf, nil, "Country"))
	assert.Equal(t, NoResults+"\n", buf.String())
}

func TestDestinations(t *testing.T) {
	var buf bytes.Buffer
	rows := []model.Destination{{Country: "Peru", CostPerDay: 55, Rating: 4.7}}
	require.NoError(t, Destinations(&buf, rows, "Country", "CostPerDay"))
	assert.Contains(t, buf.String(), "│ Peru    │ 55         │")
}

func TestSummaryLineSingular(t *testing.T) {
	assert.Equal(t, "1 result · mean cost 80.00/day · mean rating 4.70", SummaryLine(model.Summary{Count: 1, MeanCost: 80, MeanRating: 4.7}))
}
