package recommend

import (
	"sort"

	"wayfare/internal/model"
)

// Rank scores destinations under profile p and returns them ordered by
// descending score. Records with equal scores keep their input order.
// Normalization is relative to ds itself, so scores from different calls are
// not comparable. An empty input yields nil and a zero Summary.
func Rank(ds []model.Destination, p model.Profile) ([]model.Scored, model.Summary) {
	if len(ds) == 0 {
		return nil, model.Summary{}
	}

	costMin, costMax := ds[0].CostPerDay, ds[0].CostPerDay
	ratingMin, ratingMax := ds[0].Rating, ds[0].Rating
	var costSum, ratingSum float64
	for _, d := range ds {
		costMin = min(costMin, d.CostPerDay)
		costMax = max(costMax, d.CostPerDay)
		ratingMin = min(ratingMin, d.Rating)
		ratingMax = max(ratingMax, d.Rating)
		costSum += float64(d.CostPerDay)
		ratingSum += d.Rating
	}
	costSpan := floorSpan(float64(costMax - costMin))
	ratingSpan := floorSpan(ratingMax - ratingMin)

	out := make([]model.Scored, 0, len(ds))
	for _, d := range ds {
		s := model.Scored{
			Destination: d,
			NormCost:    float64(costMax-d.CostPerDay) / costSpan,
			NormRating:  (d.Rating - ratingMin) / ratingSpan,
			VisaBoost:   model.VisaBoost(d.VisaFree),
		}
		s.Score = p.Cost*s.NormCost + p.Rating*s.NormRating + p.Visa*s.VisaBoost
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	n := float64(len(ds))
	return out, model.Summary{
		Count:      len(ds),
		MeanCost:   costSum / n,
		MeanRating: ratingSum / n,
	}
}

// floorSpan is the normalization denominator. It clamps the observed range
// to at least 1, so a zero range collapses the term to 0 and a fractional
// range is not stretched to the full unit interval.
func floorSpan(span float64) float64 {
	return max(1, span)
}
