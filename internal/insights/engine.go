// Package insights exposes the mood aggregation entry points used by
// presentation layers. Every method is a pure function of its input.
package insights

import (
	"time"

	"mood-insights-go/internal/aggregator"
	"mood-insights-go/internal/calendar"
	"mood-insights-go/internal/summary"
	"mood-insights-go/internal/taxonomy"
	"mood-insights-go/internal/types"
)

// Engine is safe for concurrent use; it only reads its taxonomy.
type Engine struct {
	tax *taxonomy.Taxonomy
}

// New returns an Engine over tax, or over the built-in taxonomy when tax is nil.
func New(tax *taxonomy.Taxonomy) *Engine {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Engine{tax: tax}
}

func (e *Engine) Taxonomy() *taxonomy.Taxonomy { return e.tax }

// SummarizeSentiment feeds the Positive/Neutral/Negative distribution view.
func (e *Engine) SummarizeSentiment(obs []types.Observation) types.SentimentSummary {
	groups := aggregator.Aggregate(e.tax, obs, taxonomy.SchemeSentiment)
	positive := groups[string(taxonomy.SentimentPositive)].OccurrenceCount
	return types.SentimentSummary{
		Groups:             groups,
		PositivePercentage: summary.Percentage(positive, aggregator.Total(groups)),
	}
}

// SummarizeProfile feeds the six-group radar view.
func (e *Engine) SummarizeProfile(obs []types.Observation) types.ProfileSummary {
	return types.ProfileSummary{Groups: aggregator.Aggregate(e.tax, obs, taxonomy.SchemeProfile)}
}

// SummarizeCalendar returns the daily aggregates of the requested month.
func (e *Engine) SummarizeCalendar(obs []types.Observation, year int, month time.Month) map[string]types.DailyAggregate {
	return calendar.AggregateByDate(e.tax, calendar.FilterMonth(obs, year, month))
}
