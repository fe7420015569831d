package processor

import (
	"math"
	"testing"

	"mood-insights-go/internal/insights"
	"mood-insights-go/internal/types"
)

func TestProcessDefaultsToLatestMonth(t *testing.T) {
	in := []types.Observation{
		{Date: "2024-01-20", Mood: "calm", Intensity: 5},
		{Date: "2024-02-05", Mood: "angry", Intensity: 10},
		{Date: "2024-02-05", Mood: "happy", Intensity: 10},
	}
	rep := Process(insights.New(nil), in, nil)

	if rep.Period == nil || rep.Period.Year != 2024 || rep.Period.Month != 2 {
		t.Fatalf("unexpected period: %+v", rep.Period)
	}
	if len(rep.Calendar) != 1 {
		t.Fatalf("expected February only, got %+v", rep.Calendar)
	}
	// scores: calm 7, angry 1.5, happy 10
	if math.Abs(rep.Overall.AverageScore-18.5/3) > 1e-9 {
		t.Fatalf("unexpected average %v", rep.Overall.AverageScore)
	}
	if rep.Overall.Label != "Positive" {
		t.Fatalf("expected Positive label, got %q", rep.Overall.Label)
	}
	if rep.Overall.PositivePercentage != 67 || rep.Overall.NegativePercentage != 33 || rep.Overall.NeutralPercentage != 0 {
		t.Fatalf("unexpected percentages: %+v", rep.Overall)
	}
	if rep.Overall.DominantProfile != "Positive" || rep.Overall.DominantConcern != "Anger" {
		t.Fatalf("unexpected dominant groups: %+v", rep.Overall)
	}
}

func TestProcessExplicitPeriod(t *testing.T) {
	in := []types.Observation{
		{Date: "2024-01-20", Mood: "calm", Intensity: 5},
		{Date: "2024-02-05", Mood: "bored", Intensity: 5},
	}
	rep := Process(insights.New(nil), in, &types.Period{Year: 2024, Month: 1})
	if _, ok := rep.Calendar["2024-01-20"]; !ok || len(rep.Calendar) != 1 {
		t.Fatalf("expected January calendar, got %+v", rep.Calendar)
	}
	if rep.Overall.UnknownMoods != 1 {
		t.Fatalf("expected 1 unknown mood, got %d", rep.Overall.UnknownMoods)
	}
}

func TestProcessEmpty(t *testing.T) {
	rep := Process(insights.New(nil), nil, nil)
	if rep.Period != nil || rep.Calendar == nil || len(rep.Calendar) != 0 {
		t.Fatalf("unexpected calendar state: %+v %+v", rep.Period, rep.Calendar)
	}
	if rep.Overall.ObservationCount != 0 || rep.Overall.Label != "" || rep.Overall.AverageScore != 0 {
		t.Fatalf("unexpected overall: %+v", rep.Overall)
	}
	if rep.Card.Tone != "neutral" {
		t.Fatalf("unexpected card: %+v", rep.Card)
	}
}
