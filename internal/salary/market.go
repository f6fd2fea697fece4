package salary

import (
	"math"
	"sort"
)

// MarketComparison places a predicted salary among observed market samples.
// The numeric fields are zero when Available is false.
type MarketComparison struct {
	Available  bool    `json:"available"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Avg        float64 `json:"avg"`
	Median     float64 `json:"median"`
	Count      int     `json:"count"`
	Percentile float64 `json:"percentile"`
}

// Compare summarizes samples and ranks value among them. Negative and
// non-finite samples are discarded.
func Compare(value float64, samples []float64) MarketComparison {
	clean := usable(samples)
	if len(clean) == 0 {
		return MarketComparison{}
	}

	sum := 0.0
	for _, s := range clean {
		sum += s
	}

	return MarketComparison{
		Available:  true,
		Min:        clean[0],
		Max:        clean[len(clean)-1],
		Avg:        sum / float64(len(clean)),
		Median:     median(clean),
		Count:      len(clean),
		Percentile: percentile(value, clean),
	}
}

// Percentile returns the share of samples at or below value, in [0, 100].
func Percentile(value float64, samples []float64) float64 {
	return percentile(value, usable(samples))
}

// Median returns the middle of the usable samples, averaging the two middle
// values for even counts. It returns 0 when no sample is usable.
func Median(samples []float64) float64 {
	return median(usable(samples))
}

// usable returns a sorted copy without negative or non-finite values.
func usable(samples []float64) []float64 {
	out := make([]float64, 0, len(samples))
	for _, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
			continue
		}
		out = append(out, s)
	}
	sort.Float64s(out)
	return out
}

func percentile(value float64, sorted []float64) float64 {
	if len(sorted) == 0 || math.IsNaN(value) {
		return 0
	}
	below := sort.Search(len(sorted), func(i int) bool { return sorted[i] > value })
	return float64(below) / float64(len(sorted)) * 100
}

func median(sorted []float64) float64 {
	n := len(sorted)
	switch {
	case n == 0:
		return 0
	case n%2 == 1:
		return sorted[n/2]
	default:
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
}
