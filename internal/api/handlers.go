package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"mood-insights-go/internal/processor"
	"mood-insights-go/internal/types"
)

// maxBodyBytes bounds request bodies; a personal history fits easily.
const maxBodyBytes = 8 << 20

type SummaryRequest struct {
	Observations []types.Observation `json:"observations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.Log.WithRequest(r).Debug("health check")
	fmt.Fprint(w, "ok")
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	log := s.Log.WithRequest(r).WithField("handler", "sentiment")
	obs, ok := decodeObservations(w, r, log)
	if !ok {
		return
	}
	res := s.Engine.SummarizeSentiment(obs)
	log.WithField("observations", len(obs)).WithField("positive_pct", res.PositivePercentage).Info("sentiment summarized")
	writeJSON(w, http.StatusOK, res, log)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	log := s.Log.WithRequest(r).WithField("handler", "profile")
	obs, ok := decodeObservations(w, r, log)
	if !ok {
		return
	}
	res := s.Engine.SummarizeProfile(obs)
	log.WithField("observations", len(obs)).Info("profile summarized")
	writeJSON(w, http.StatusOK, res, log)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	log := s.Log.WithRequest(r).WithField("handler", "calendar")
	period, err := parsePeriod(r)
	if err != nil {
		log.WithField("error", err.Error()).Warn("bad period")
		writeError(w, http.StatusBadRequest, err.Error(), log)
		return
	}
	if period == nil {
		writeError(w, http.StatusBadRequest, "year and month are required", log)
		return
	}
	obs, ok := decodeObservations(w, r, log)
	if !ok {
		return
	}
	days := s.Engine.SummarizeCalendar(obs, period.Year, time.Month(period.Month))
	log.WithFields(logrus.Fields{"year": period.Year, "month": period.Month, "days": len(days)}).Info("calendar summarized")
	writeJSON(w, http.StatusOK, days, log)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	log := s.Log.WithRequest(r).WithField("handler", "report")
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), log)
		return
	}
	obs, ok := decodeObservations(w, r, log)
	if !ok {
		return
	}
	rep := processor.Process(s.Engine, obs, period)
	log.WithField("duration_ms", rep.DurationMs).WithField("label", rep.Overall.Label).Info("report built")
	writeJSON(w, http.StatusOK, rep, log)
}

func (s *Server) handleDatasetReport(w http.ResponseWriter, r *http.Request) {
	log := s.Log.WithRequest(r).WithField("handler", "dataset_report")
	if s.Dataset == nil {
		writeError(w, http.StatusServiceUnavailable, "no dataset loaded", log)
		return
	}
	writeJSON(w, http.StatusOK, s.Dataset, log)
}

func (s *Server) handleRemoteReport(w http.ResponseWriter, r *http.Request) {
	log := s.Log.WithRequest(r).WithField("handler", "remote_report")
	if s.Source == nil {
		writeError(w, http.StatusServiceUnavailable, "no observation source configured", log)
		return
	}
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), log)
		return
	}
	obs, err := s.Source.Fetch(r.Context())
	if err != nil {
		log.WithField("error", err.Error()).Error("fetch failed")
		writeError(w, http.StatusBadGateway, "failed to fetch observations", log)
		return
	}
	writeJSON(w, http.StatusOK, processor.Process(s.Engine, obs, period), log)
}

func decodeObservations(w http.ResponseWriter, r *http.Request, log *logrus.Entry) ([]types.Observation, bool) {
	var req SummaryRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.WithField("error", err.Error()).Warn("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid request body", log)
		return nil, false
	}
	return req.Observations, true
}

// parsePeriod reads optional year/month query parameters. Both or neither
// must be present.
func parsePeriod(r *http.Request) (*types.Period, error) {
	q := r.URL.Query()
	ys, ms := q.Get("year"), q.Get("month")
	if ys == "" && ms == "" {
		return nil, nil
	}
	if ys == "" || ms == "" {
		return nil, errors.New("year and month must be given together")
	}
	y, err := strconv.Atoi(ys)
	if err != nil || y < 1 {
		return nil, fmt.Errorf("invalid year %q", ys)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 1 || m > 12 {
		return nil, fmt.Errorf("invalid month %q", ms)
	}
	return &types.Period{Year: y, Month: m}, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}, log *logrus.Entry) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.WithField("error", err.Error()).Error("failed to encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "failed to encode response"}`+"\n")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(b, '\n')); err != nil {
		log.WithField("error", err.Error()).Error("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string, log *logrus.Entry) {
	writeJSON(w, status, errorResponse{Error: msg}, log)
}
