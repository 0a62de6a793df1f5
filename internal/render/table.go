// Package render formats ranked destinations for the terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"wayfare/internal/model"
)

// NoResults is printed in place of a table when nothing matched.
const NoResults = "No results found."

var scoredHeader = []string{"Country", "CostPerDay", "VisaFree", "Rating", "BestMonth", "Score"}

// Scored writes a grid of ranked destinations followed by a summary line.
func Scored(w io.Writer, rows []model.Scored, sum model.Summary) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, NoResults)
		return err
	}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.Country,
			strconv.Itoa(r.CostPerDay),
			r.VisaFree,
			formatRating(r.Rating),
			r.BestMonth,
			strconv.FormatFloat(r.Score, 'f', 3, 64),
		})
	}
	if err := Grid(w, scoredHeader, cells); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, SummaryLine(sum))
	return err
}

// Destinations writes a grid of the given columns for plain records.
func Destinations(w io.Writer, rows []model.Destination, columns ...string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, NoResults)
		return err
	}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		line := make([]string, 0, len(columns))
		for _, c := range columns {
			line = append(line, column(r, c))
		}
		cells = append(cells, line)
	}
	return Grid(w, columns, cells)
}

func column(r model.Destination, name string) string {
	switch name {
	case "Country":
		return r.Country
	case "CostPerDay":
		return strconv.Itoa(r.CostPerDay)
	case "VisaFree":
		return r.VisaFree
	case "Rating":
		return formatRating(r.Rating)
	case "BestMonth":
		return r.BestMonth
	}
	return ""
}

// SummaryLine renders count and means, e.g. "3 results · mean cost 61.67/day · mean rating 4.50".
func SummaryLine(sum model.Summary) string {
	noun := "results"
	if sum.Count == 1 {
		noun = "result"
	}
	return fmt.Sprintf("%d %s · mean cost %.2f/day · mean rating %.2f", sum.Count, noun, sum.MeanCost, sum.MeanRating)
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Grid draws a box-drawing table with a header separator.
func Grid(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range rows {
		for i := range header {
			if i < len(r) {
				widths[i] = max(widths[i], utf8.RuneCountInString(r[i]))
			}
		}
	}

	var b strings.Builder
	rule := func(left, mid, right string) {
		b.WriteString(left)
		for i, n := range widths {
			if i > 0 {
				b.WriteString(mid)
			}
			b.WriteString(strings.Repeat("─", n+2))
		}
		b.WriteString(right + "\n")
	}
	line := func(cells []string) {
		b.WriteString("│")
		for i, n := range widths {
			c := ""
			if i < len(cells) {
				c = cells[i]
			}
			b.WriteString(" " + c + strings.Repeat(" ", n-utf8.RuneCountInString(c)) + " │")
		}
		b.WriteString("\n")
	}

	rule("┌", "┬", "┐")
	line(header)
	rule("├", "┼", "┤")
	for _, r := range rows {
		line(r)
	}
	rule("└", "┴", "┘")

	_, err := io.WriteString(w, b.String())
	return err
}
