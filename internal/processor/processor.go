package processor

import (
	"time"

	"mood-insights-go/internal/actionable"
	"mood-insights-go/internal/aggregator"
	"mood-insights-go/internal/calendar"
	"mood-insights-go/internal/insights"
	"mood-insights-go/internal/score"
	"mood-insights-go/internal/summary"
	"mood-insights-go/internal/taxonomy"
	"mood-insights-go/internal/types"
)

// Report bundles every view for one observation collection.
type Report struct {
	Overall    types.Overall                   `json:"overall"`
	Sentiment  types.SentimentSummary          `json:"sentiment"`
	Profile    types.ProfileSummary            `json:"profile"`
	Period     *types.Period                   `json:"period,omitempty"`
	Calendar   map[string]types.DailyAggregate `json:"calendar"`
	Card       actionable.ActionCard           `json:"action_card"`
	DurationMs int64                           `json:"duration_ms"`
}

// Process builds a Report. A nil period selects the month of the latest dated
// observation; with no dated observations the calendar is empty.
func Process(eng *insights.Engine, obs []types.Observation, period *types.Period) Report {
	start := time.Now()
	res := Report{
		Sentiment: eng.SummarizeSentiment(obs),
		Profile:   eng.SummarizeProfile(obs),
		Calendar:  map[string]types.DailyAggregate{},
	}

	if period == nil {
		if y, m, ok := calendar.Latest(obs); ok {
			period = &types.Period{Year: y, Month: int(m)}
		}
	}
	if period != nil {
		res.Period = period
		res.Calendar = eng.SummarizeCalendar(obs, period.Year, time.Month(period.Month))
	}

	res.Overall = overall(eng.Taxonomy(), obs, res.Sentiment, res.Profile)
	res.Card = actionable.Generate(res.Overall)
	res.DurationMs = time.Since(start).Milliseconds()
	return res
}

func overall(tax *taxonomy.Taxonomy, obs []types.Observation, s types.SentimentSummary, p types.ProfileSummary) types.Overall {
	out := types.Overall{ObservationCount: len(obs)}
	total := 0.0
	for _, o := range obs {
		total += score.Score(tax, o.Mood, o.Intensity)
		if !tax.Known(o.Mood) {
			out.UnknownMoods++
		}
	}
	if len(obs) > 0 {
		out.AverageScore = total / float64(len(obs))
		out.Label = string(summary.QualitativeLabel(out.AverageScore))
	}
	out.PositivePercentage = s.PositivePercentage
	out.NeutralPercentage = summary.Percentage(s.Groups[string(taxonomy.SentimentNeutral)].OccurrenceCount, len(obs))
	out.NegativePercentage = summary.Percentage(s.Groups[string(taxonomy.SentimentNegative)].OccurrenceCount, len(obs))
	out.DominantProfile = aggregator.Dominant(p.Groups, taxonomy.SchemeProfile)

	highest := 0
	for _, g := range taxonomy.ProfileGroups {
		if g == taxonomy.ProfilePositive || g == taxonomy.ProfileNeutral {
			continue
		}
		if c := p.Groups[string(g)].OccurrenceCount; c > highest {
			out.DominantConcern, highest = string(g), c
		}
	}
	return out
}
