package score

import (
	"math"

	"mood-insights-go/internal/taxonomy"
)

const (
	Min = 0.0
	Max = 10.0
)

// Score combines the mood's base valence with the reported intensity.
// Intensity 5 is a neutral 1.0 multiplier; the result is clamped to [Min, Max].
func Score(tax *taxonomy.Taxonomy, mood string, intensity float64) float64 {
	v := float64(tax.Valence(mood)) * (0.5 + intensity/10)
	return Clamp(v, Min, Max)
}

// Clamp bounds v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
