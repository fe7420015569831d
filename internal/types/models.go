package types

// Observation is one recorded mood entry.
type Observation struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Mood      string  `json:"mood"`
	Intensity float64 `json:"intensity"`
}

// MoodCount is one entry of a group's top moods.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// GroupAggregate summarizes the observations mapped to one category.
type GroupAggregate struct {
	OccurrenceCount  int         `json:"occurrence_count"`
	AverageIntensity float64     `json:"average_intensity"`
	TopMoods         []MoodCount `json:"top_moods"`
}

type DailyMood struct {
	Mood      string  `json:"mood"`
	Intensity float64 `json:"intensity"`
	Score     float64 `json:"score"`
}

// DailyAggregate is the calendar cell for one date.
type DailyAggregate struct {
	Date             string      `json:"date"`
	AverageScore     float64     `json:"average_score"`
	ObservationCount int         `json:"observation_count"`
	Moods            []DailyMood `json:"moods"`
}

type SentimentSummary struct {
	Groups             map[string]GroupAggregate `json:"groups"`
	PositivePercentage int                       `json:"positive_percentage"`
}

type ProfileSummary struct {
	Groups map[string]GroupAggregate `json:"groups"`
}

// Overall is the headline of a report.
type Overall struct {
	ObservationCount   int     `json:"observation_count"`
	AverageScore       float64 `json:"average_score"`
	Label              string  `json:"label"`
	PositivePercentage int     `json:"positive_percentage"`
	NeutralPercentage  int     `json:"neutral_percentage"`
	NegativePercentage int     `json:"negative_percentage"`
	DominantProfile    string  `json:"dominant_profile,omitempty"`
	// DominantConcern is the most frequent non-positive, non-neutral profile group.
	DominantConcern string `json:"dominant_concern,omitempty"`
	UnknownMoods    int    `json:"unknown_moods"`
}

// Period is a calendar month.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}
