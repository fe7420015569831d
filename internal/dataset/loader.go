package dataset

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"mood-insights-go/internal/calendar"
	"mood-insights-go/internal/types"
)

// Load reads observations from a .json array or the first sheet of a workbook.
func Load(path string) ([]types.Observation, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return loadJSON(path)
	}
	return loadWorkbook(path)
}

func loadJSON(path string) ([]types.Observation, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var out []types.Observation
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode observations: %w", err)
	}
	for i := range out {
		out[i].Date = NormalizeDate(out[i].Date)
	}
	return out, nil
}

type columns struct {
	date, mood, intensity int
}

// detectColumns finds the date/mood/intensity columns by header heuristics,
// falling back to the first three columns.
func detectColumns(header []string) columns {
	c := columns{date: -1, mood: -1, intensity: -1}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		// mood and intensity first: "Mood of the day" is a mood column
		case strings.Contains(l, "mood") || strings.Contains(l, "emotion") || strings.Contains(l, "feeling"):
			if c.mood == -1 {
				c.mood = i
			}
		case strings.Contains(l, "intensity") || strings.Contains(l, "level") || strings.Contains(l, "strength"):
			if c.intensity == -1 {
				c.intensity = i
			}
		case strings.Contains(l, "date") || strings.Contains(l, "day"):
			if c.date == -1 {
				c.date = i
			}
		}
	}
	if c.date == -1 && c.mood == -1 && c.intensity == -1 && len(header) >= 3 {
		c = columns{date: 0, mood: 1, intensity: 2}
	}
	return c
}

func loadWorkbook(path string) ([]types.Observation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}
	cols := detectColumns(rows[0])
	if cols.mood == -1 {
		return nil, fmt.Errorf("no mood column in header %v", rows[0])
	}

	var out []types.Observation
	for i, r := range rows {
		if i == 0 {
			continue
		}
		o := types.Observation{Mood: strings.TrimSpace(cell(r, cols.mood))}
		// rows without a mood or with a non-numeric or non-finite intensity are skipped
		if o.Mood == "" {
			continue
		}
		o.Date = NormalizeDate(cell(r, cols.date))
		if raw := strings.TrimSpace(cell(r, cols.intensity)); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			o.Intensity = v
		}
		out = append(out, o)
	}
	return out, nil
}

func cell(r []string, idx int) string {
	if idx >= 0 && idx < len(r) {
		return r[idx]
	}
	return ""
}

var dateLayouts = []string{
	calendar.DateLayout,
	"2006/01/02",
	"01-02-06",
	"1/2/06",
	"1/2/2006",
	"1/2/06 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// NormalizeDate rewrites common spreadsheet date renderings and Excel serial
// numbers as YYYY-MM-DD. Unrecognized values are returned trimmed.
func NormalizeDate(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(calendar.DateLayout)
		}
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format(calendar.DateLayout)
		}
	}
	return v
}
