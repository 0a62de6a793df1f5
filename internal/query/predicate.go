// Package query turns filter criteria into a conjunctive predicate that can
// run either as a SQL WHERE fragment or in memory.
package query

import (
	"strings"

	"wayfare/internal/model"
)

// Predicate is an immutable conjunction of the constraints set in a
// model.Criteria.
type Predicate struct {
	c model.Criteria
}

// Build copies the criteria so later changes by the caller do not leak into
// the predicate.
func Build(c model.Criteria) Predicate {
	var p Predicate
	if c.MaxCost != nil {
		v := *c.MaxCost
		p.c.MaxCost = &v
	}
	if c.VisaFree != nil {
		v := *c.VisaFree
		p.c.VisaFree = &v
	}
	if c.MinRating != nil {
		v := *c.MinRating
		p.c.MinRating = &v
	}
	return p
}

// Where renders the predicate as a parametrized SQL condition over the
// travel table. With no constraints it admits every row.
func (p Predicate) Where() (string, []any) {
	if p.c.Empty() {
		return "1=1", nil
	}
	where := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if p.c.MaxCost != nil {
		where = append(where, "CostPerDay <= ?")
		args = append(args, *p.c.MaxCost)
	}
	if p.c.VisaFree != nil {
		where = append(where, "LOWER(TRIM(VisaFree)) = ?")
		args = append(args, model.VisaToken(*p.c.VisaFree))
	}
	if p.c.MinRating != nil {
		where = append(where, "Rating >= ?")
		args = append(args, *p.c.MinRating)
	}

	return strings.Join(where, " AND "), args
}

// Match evaluates the predicate against a single record.
func (p Predicate) Match(d model.Destination) bool {
	if p.c.MaxCost != nil && d.CostPerDay > *p.c.MaxCost {
		return false
	}
	if p.c.VisaFree != nil && !model.VisaMatches(d.VisaFree, *p.c.VisaFree) {
		return false
	}
	if p.c.MinRating != nil && d.Rating < *p.c.MinRating {
		return false
	}
	return true
}

// Filter returns the records that satisfy p, preserving their order.
func (p Predicate) Filter(ds []model.Destination) []model.Destination {
	out := make([]model.Destination, 0, len(ds))
	for _, d := range ds {
		if p.Match(d) {
			out = append(out, d)
		}
	}
	return out
}
