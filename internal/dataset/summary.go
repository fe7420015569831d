package dataset

import (
	"fmt"

	"mood-insights-go/internal/insights"
	"mood-insights-go/internal/logger"
	"mood-insights-go/internal/processor"
)

// LoadAndSummarize reads the dataset and builds a full report over it.
func LoadAndSummarize(path string, eng *insights.Engine, log *logger.Logger) (processor.Report, error) {
	log = log.Component("dataset.summary")
	entry := log.WithField("path", path)
	entry.Info("opening dataset for summarization")

	obs, err := Load(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("load failed")
		return processor.Report{}, fmt.Errorf("load %s: %w", path, err)
	}

	rep := processor.Process(eng, obs, nil)
	entry.WithFields(map[string]interface{}{
		"observations":  rep.Overall.ObservationCount,
		"unknown_moods": rep.Overall.UnknownMoods,
		"label":         rep.Overall.Label,
		"days":          len(rep.Calendar),
	}).Info("dataset summarization complete")
	if rep.Overall.UnknownMoods > 0 {
		entry.WithField("unknown_moods", rep.Overall.UnknownMoods).Warn("unknown moods counted as neutral")
	}
	return rep, nil
}
