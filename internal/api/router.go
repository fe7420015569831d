package api

import (
	"context"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"mood-insights-go/internal/insights"
	"mood-insights-go/internal/logger"
	"mood-insights-go/internal/processor"
	"mood-insights-go/internal/types"
)

// Fetcher loads observations from a remote source.
type Fetcher interface {
	Fetch(ctx context.Context) ([]types.Observation, error)
}

type Server struct {
	Engine *insights.Engine
	Log    *logger.Logger
	// Dataset is the report over the startup dataset, nil when none was loaded.
	Dataset *processor.Report
	Source  Fetcher
}

func NewRouter(s *Server) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/v1/summary/sentiment", s.handleSentiment).Methods(http.MethodPost)
	r.HandleFunc("/v1/summary/profile", s.handleProfile).Methods(http.MethodPost)
	r.HandleFunc("/v1/summary/calendar", s.handleCalendar).Methods(http.MethodPost)
	r.HandleFunc("/v1/report", s.handleReport).Methods(http.MethodPost)
	r.HandleFunc("/v1/dataset/report", s.handleDatasetReport).Methods(http.MethodGet)
	r.HandleFunc("/v1/remote/report", s.handleRemoteReport).Methods(http.MethodGet)

	r.Use(requestID)

	return r
}

// requestID makes sure every request carries an id and echoes it on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := logger.RequestID(r)
		r.Header.Set(logger.RequestIDHeader, id)
		w.Header().Set(logger.RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// Handler wraps the router with panic recovery and CORS for browser chart clients.
func (s *Server) Handler(origins []string) http.Handler {
	var h http.Handler = NewRouter(s)
	h = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", logger.RequestIDHeader}),
	)(h)
	return handlers.RecoveryHandler(handlers.RecoveryLogger(s.Log), handlers.PrintRecoveryStack(true))(h)
}
