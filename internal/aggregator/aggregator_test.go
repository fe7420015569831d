package aggregator

import (
	"math"
	"reflect"
	"testing"

	"mood-insights-go/internal/taxonomy"
	"mood-insights-go/internal/types"
)

func obs(mood string, intensity float64) types.Observation {
	return types.Observation{Date: "2024-01-01", Mood: mood, Intensity: intensity}
}

func TestAggregateSentimentExample(t *testing.T) {
	in := []types.Observation{obs("happy", 8), obs("sad", 4)}
	got := Aggregate(taxonomy.Default(), in, taxonomy.SchemeSentiment)

	if len(got) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(got))
	}
	if got["Positive"].OccurrenceCount != 1 || got["Negative"].OccurrenceCount != 1 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	neutral := got["Neutral"]
	if neutral.OccurrenceCount != 0 || neutral.AverageIntensity != 0 || len(neutral.TopMoods) != 0 {
		t.Fatalf("expected zeroed Neutral group, got %+v", neutral)
	}
	if got["Positive"].AverageIntensity != 8 {
		t.Fatalf("expected Positive average 8, got %v", got["Positive"].AverageIntensity)
	}
}

func TestAggregateAllGroupsPresentOnEmptyInput(t *testing.T) {
	for _, scheme := range []taxonomy.Scheme{taxonomy.SchemeSentiment, taxonomy.SchemeProfile} {
		got := Aggregate(taxonomy.Default(), nil, scheme)
		for _, g := range scheme.Groups() {
			agg, ok := got[g]
			if !ok {
				t.Fatalf("%s: group %s missing", scheme, g)
			}
			if agg.OccurrenceCount != 0 || agg.AverageIntensity != 0 {
				t.Fatalf("%s: group %s not zeroed: %+v", scheme, g, agg)
			}
		}
		if Total(got) != 0 {
			t.Fatalf("%s: expected total 0", scheme)
		}
	}
}

func TestAggregateConservesCount(t *testing.T) {
	tax := taxonomy.Default()
	var in []types.Observation
	for i, m := range append(tax.Moods(), "bored", "", "HAPPY") {
		in = append(in, obs(m, float64(i%11)))
	}
	for _, scheme := range []taxonomy.Scheme{taxonomy.SchemeSentiment, taxonomy.SchemeProfile} {
		if got := Total(Aggregate(tax, in, scheme)); got != len(in) {
			t.Fatalf("%s: total %d, want %d", scheme, got, len(in))
		}
	}
}

func TestAggregateAverageUsesRawIntensity(t *testing.T) {
	in := []types.Observation{obs("anxious", 2), obs("nervous", 7), obs("anxious", 12)}
	got := Aggregate(taxonomy.Default(), in, taxonomy.SchemeProfile)["Anxiety"]
	if got.OccurrenceCount != 3 {
		t.Fatalf("expected 3, got %d", got.OccurrenceCount)
	}
	if math.Abs(got.AverageIntensity-7) > 1e-9 {
		t.Fatalf("expected average 7 (unclamped), got %v", got.AverageIntensity)
	}
}

func TestTopMoodsOrderAndTieBreak(t *testing.T) {
	in := []types.Observation{
		obs("calm", 5),
		obs("happy", 5),
		obs("proud", 5),
		obs("grateful", 5),
		obs("proud", 5),
		obs("happy", 5),
		obs("amused", 5),
	}
	got := Aggregate(taxonomy.Default(), in, taxonomy.SchemeProfile)["Positive"].TopMoods
	want := []types.MoodCount{
		{Mood: "happy", Count: 2},
		{Mood: "proud", Count: 2},
		{Mood: "calm", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("top moods: got %+v want %+v", got, want)
	}
}

func TestUnknownMoodCountsAsNeutral(t *testing.T) {
	in := []types.Observation{obs("bored", 5), obs("Bored", 3), obs("curious", 4)}
	for _, scheme := range []taxonomy.Scheme{taxonomy.SchemeSentiment, taxonomy.SchemeProfile} {
		n := Aggregate(taxonomy.Default(), in, scheme)["Neutral"]
		if n.OccurrenceCount != 3 {
			t.Fatalf("%s: expected 3 neutral, got %d", scheme, n.OccurrenceCount)
		}
		if n.TopMoods[0] != (types.MoodCount{Mood: "bored", Count: 2}) {
			t.Fatalf("%s: expected bored first, got %+v", scheme, n.TopMoods)
		}
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	in := []types.Observation{obs(" Happy", 3), obs("sad", 4)}
	cp := append([]types.Observation(nil), in...)
	Aggregate(taxonomy.Default(), in, taxonomy.SchemeProfile)
	if !reflect.DeepEqual(in, cp) {
		t.Fatal("input was mutated")
	}
}

func TestDominant(t *testing.T) {
	tax := taxonomy.Default()
	if got := Dominant(Aggregate(tax, nil, taxonomy.SchemeProfile), taxonomy.SchemeProfile); got != "" {
		t.Fatalf("expected empty dominant, got %q", got)
	}
	in := []types.Observation{obs("sad", 1), obs("angry", 1), obs("grieving", 1), obs("annoyed", 1)}
	// Sadness and Anger tie at 2; Sadness is declared first.
	if got := Dominant(Aggregate(tax, in, taxonomy.SchemeProfile), taxonomy.SchemeProfile); got != "Sadness" {
		t.Fatalf("expected Sadness, got %q", got)
	}
}
