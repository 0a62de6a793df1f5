package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"wayfare/internal/model"
)

// ParseVisa reads the tri-state visa filter: "" is unspecified, otherwise
// "yes" or "no" in any case.
func ParseVisa(s string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case "yes":
		v := true
		return &v, nil
	case "no":
		v := false
		return &v, nil
	}
	return nil, fmt.Errorf("visa-free must be yes or no, got %q", s)
}

// ParseCriteria validates raw string inputs. Empty strings leave the
// corresponding constraint unset.
func ParseCriteria(maxCost, visaFree, minRating string) (model.Criteria, error) {
	var c model.Criteria
	if s := strings.TrimSpace(maxCost); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return c, fmt.Errorf("max-cost must be an integer, got %q", maxCost)
		}
		c.MaxCost = &v
	}
	visa, err := ParseVisa(visaFree)
	if err != nil {
		return c, err
	}
	c.VisaFree = visa
	if s := strings.TrimSpace(minRating); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return c, fmt.Errorf("min-rating must be a finite number, got %q", minRating)
		}
		c.MinRating = &v
	}
	return c, nil
}
