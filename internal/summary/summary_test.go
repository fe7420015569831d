package summary

import "testing"

func TestPercentage(t *testing.T) {
	cases := []struct {
		part, whole, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds half away from zero
		{5, 5, 100},
		{7, 5, 100},
		{-1, 5, 0},
		{1, -4, 0},
	}
	for _, c := range cases {
		if got := Percentage(c.part, c.whole); got != c.want {
			t.Fatalf("Percentage(%d, %d) = %d, want %d", c.part, c.whole, got, c.want)
		}
	}
}

func TestQualitativeLabelBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Label
	}{
		{10, VeryPositive},
		{8, VeryPositive},
		{7.999, Positive},
		{6, Positive},
		{5.9, Neutral},
		{4, Neutral},
		{3.99, Negative},
		{2, Negative},
		{1.99, VeryNegative},
		{0, VeryNegative},
	}
	for _, c := range cases {
		if got := QualitativeLabel(c.score); got != c.want {
			t.Fatalf("QualitativeLabel(%v) = %s, want %s", c.score, got, c.want)
		}
	}
}
