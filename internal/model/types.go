package model

// Destination is one row of the travel dataset.
type Destination struct {
	Country    string  `json:"country"`
	CostPerDay int     `json:"cost_per_day"`
	VisaFree   string  `json:"visa_free"` // free-form, "Yes"/"No" canonical
	Rating     float64 `json:"rating"`
	BestMonth  string  `json:"best_month"`
}

// Criteria is a sparse set of filter constraints. A nil field means no
// constraint on that dimension.
type Criteria struct {
	MaxCost   *int
	VisaFree  *bool // true: "yes" only, false: "no" only
	MinRating *float64
}

// Empty reports whether no constraint is set.
func (c Criteria) Empty() bool {
	return c.MaxCost == nil && c.VisaFree == nil && c.MinRating == nil
}

// Profile weights the three scoring dimensions.
type Profile struct {
	Name   string  `json:"name" yaml:"-"`
	Cost   float64 `json:"cost" yaml:"cost"`
	Rating float64 `json:"rating" yaml:"rating"`
	Visa   float64 `json:"visa" yaml:"visa"`
}

// Scored is a Destination annotated with its normalized sub-scores.
type Scored struct {
	Destination
	NormCost   float64 `json:"norm_cost"`
	NormRating float64 `json:"norm_rating"`
	VisaBoost  float64 `json:"visa_boost"`
	Score      float64 `json:"score"`
}

// Summary carries aggregate statistics over a result set.
type Summary struct {
	Count      int     `json:"count"`
	MeanCost   float64 `json:"mean_cost"`
	MeanRating float64 `json:"mean_rating"`
}
