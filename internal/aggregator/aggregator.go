package aggregator

import (
	"sort"

	"mood-insights-go/internal/taxonomy"
	"mood-insights-go/internal/types"
)

// TopN is how many moods each group reports.
const TopN = 3

type bucket struct {
	count      int
	intensity  float64
	moodCounts map[string]int
	seen       []string // first-seen order, used as the tie-break
}

// Aggregate groups observations under the scheme. Every group of the scheme
// is present in the result, zeroed when nothing maps to it.
func Aggregate(tax *taxonomy.Taxonomy, obs []types.Observation, scheme taxonomy.Scheme) map[string]types.GroupAggregate {
	groups := scheme.Groups()
	buckets := make(map[string]*bucket, len(groups))
	for _, g := range groups {
		buckets[g] = &bucket{moodCounts: map[string]int{}}
	}

	for _, o := range obs {
		b, ok := buckets[tax.Group(scheme, o.Mood)]
		if !ok {
			continue
		}
		mood := taxonomy.Normalize(o.Mood)
		b.count++
		b.intensity += o.Intensity
		if _, ok := b.moodCounts[mood]; !ok {
			b.seen = append(b.seen, mood)
		}
		b.moodCounts[mood]++
	}

	out := make(map[string]types.GroupAggregate, len(groups))
	for _, g := range groups {
		b := buckets[g]
		agg := types.GroupAggregate{
			OccurrenceCount: b.count,
			TopMoods:        topMoods(b),
		}
		if b.count > 0 {
			agg.AverageIntensity = b.intensity / float64(b.count)
		}
		out[g] = agg
	}
	return out
}

func topMoods(b *bucket) []types.MoodCount {
	arr := make([]types.MoodCount, 0, len(b.seen))
	for _, m := range b.seen {
		arr = append(arr, types.MoodCount{Mood: m, Count: b.moodCounts[m]})
	}
	sort.SliceStable(arr, func(i, j int) bool { return arr[i].Count > arr[j].Count })
	if len(arr) > TopN {
		arr = arr[:TopN]
	}
	return arr
}

// Total sums occurrence counts across groups.
func Total(groups map[string]types.GroupAggregate) int {
	n := 0
	for _, g := range groups {
		n += g.OccurrenceCount
	}
	return n
}

// Dominant returns the group with the highest count, preferring the earlier
// group in scheme order on ties. It returns "" when every group is empty.
func Dominant(groups map[string]types.GroupAggregate, scheme taxonomy.Scheme) string {
	best, highest := "", 0
	for _, g := range scheme.Groups() {
		if c := groups[g].OccurrenceCount; c > highest {
			best, highest = g, c
		}
	}
	return best
}
