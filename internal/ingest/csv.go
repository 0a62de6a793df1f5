// Package ingest reads the destination dataset from CSV.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"wayfare/internal/model"
	"wayfare/internal/util"
)

// Columns lists the header names the importer requires.
var Columns = []string{"Country", "CostPerDay", "VisaFree", "Rating", "BestMonth"}

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// ReadFile parses the CSV file at path.
func ReadFile(path string) ([]model.Destination, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV with a header row. Columns are located by name, so their
// order is free and extra columns are ignored.
func Read(r io.Reader) ([]model.Destination, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var out []model.Destination
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if blank(rec) {
			continue
		}
		d, err := parseRecord(rec, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		// strip a UTF-8 BOM left by spreadsheet exports
		h = strings.TrimPrefix(util.NormalizeWhitespace(h), "\ufeff")
		idx[strings.ToLower(h)] = i
	}
	var missing []string
	for _, c := range Columns {
		if _, ok := idx[strings.ToLower(c)]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseRecord(rec []string, idx map[string]int) (model.Destination, error) {
	field := func(name string) string {
		i := idx[strings.ToLower(name)]
		if i >= len(rec) {
			return ""
		}
		return util.NormalizeWhitespace(rec[i])
	}

	d := model.Destination{
		Country:   field("Country"),
		VisaFree:  field("VisaFree"),
		BestMonth: field("BestMonth"),
	}
	if d.Country == "" {
		return d, errors.New("empty Country")
	}
	cost, err := strconv.Atoi(field("CostPerDay"))
	if err != nil {
		return d, fmt.Errorf("CostPerDay: %w", err)
	}
	if cost < 0 {
		return d, fmt.Errorf("CostPerDay: negative value %d", cost)
	}
	d.CostPerDay = cost
	rating, err := strconv.ParseFloat(field("Rating"), 64)
	if err != nil {
		return d, fmt.Errorf("Rating: %w", err)
	}
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return d, fmt.Errorf("Rating: non-finite value %q", field("Rating"))
	}
	d.Rating = rating
	return d, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
