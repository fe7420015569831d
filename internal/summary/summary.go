package summary

import "math"

// Percentage returns round(100*part/whole) clamped to 0..100, or 0 when whole
// is not positive.
func Percentage(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(part) / float64(whole)))
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

type Label string

const (
	VeryPositive Label = "Very Positive"
	Positive     Label = "Positive"
	Neutral      Label = "Neutral"
	Negative     Label = "Negative"
	VeryNegative Label = "Very Negative"
)

// QualitativeLabel buckets a 0..10 score. Each band includes its lower bound.
func QualitativeLabel(score float64) Label {
	switch {
	case score >= 8:
		return VeryPositive
	case score >= 6:
		return Positive
	case score >= 4:
		return Neutral
	case score >= 2:
		return Negative
	default:
		return VeryNegative
	}
}
