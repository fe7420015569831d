package actionable

import (
	"strings"
	"testing"

	"mood-insights-go/internal/types"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		name     string
		in       types.Overall
		tone     string
		contains string
	}{
		{"empty", types.Overall{}, "neutral", "No mood entries"},
		{"concern", types.Overall{ObservationCount: 10, Label: "Negative", NegativePercentage: 60, DominantConcern: "Anxiety"}, "supportive", "mostly Anxiety"},
		{"positive", types.Overall{ObservationCount: 4, Label: "Very Positive", PositivePercentage: 75}, "encouraging", "75% positive"},
		{"neutral", types.Overall{ObservationCount: 4, Label: "Neutral", NegativePercentage: 25, DominantConcern: "Anger"}, "neutral", "Neutral"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			card := Generate(c.in)
			if card.Tone != c.tone {
				t.Fatalf("expected tone %s, got %s", c.tone, card.Tone)
			}
			if !strings.Contains(card.Insight, c.contains) {
				t.Fatalf("insight %q does not contain %q", card.Insight, c.contains)
			}
			if card.Action == "" {
				t.Fatal("empty action")
			}
		})
	}
}
