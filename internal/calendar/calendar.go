package calendar

import (
	"time"

	"mood-insights-go/internal/score"
	"mood-insights-go/internal/taxonomy"
	"mood-insights-go/internal/types"
)

// DateLayout is the key format of observation dates.
const DateLayout = "2006-01-02"

// AggregateByDate averages observation scores per date. Only dates present in
// obs appear; each day's moods keep input order.
func AggregateByDate(tax *taxonomy.Taxonomy, obs []types.Observation) map[string]types.DailyAggregate {
	totals := map[string]float64{}
	days := map[string]*types.DailyAggregate{}
	for _, o := range obs {
		s := score.Score(tax, o.Mood, o.Intensity)
		d, ok := days[o.Date]
		if !ok {
			d = &types.DailyAggregate{Date: o.Date}
			days[o.Date] = d
		}
		d.Moods = append(d.Moods, types.DailyMood{
			Mood:      taxonomy.Normalize(o.Mood),
			Intensity: o.Intensity,
			Score:     s,
		})
		d.ObservationCount++
		totals[o.Date] += s
	}

	out := make(map[string]types.DailyAggregate, len(days))
	for date, d := range days {
		d.AverageScore = totals[date] / float64(d.ObservationCount)
		out[date] = *d
	}
	return out
}

// InMonth reports whether date falls in the given month. Dates that are not
// YYYY-MM-DD are in no month.
func InMonth(date string, year int, month time.Month) bool {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return t.Year() == year && t.Month() == month
}

// FilterMonth keeps the observations dated within the given month.
func FilterMonth(obs []types.Observation, year int, month time.Month) []types.Observation {
	var out []types.Observation
	for _, o := range obs {
		if InMonth(o.Date, year, month) {
			out = append(out, o)
		}
	}
	return out
}

// Latest returns the year and month of the most recent parseable date.
func Latest(obs []types.Observation) (int, time.Month, bool) {
	var latest time.Time
	for _, o := range obs {
		t, err := time.Parse(DateLayout, o.Date)
		if err != nil {
			continue
		}
		if t.After(latest) {
			latest = t
		}
	}
	if latest.IsZero() {
		return 0, 0, false
	}
	return latest.Year(), latest.Month(), true
}
