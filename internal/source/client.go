package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"mood-insights-go/internal/logger"
	"mood-insights-go/internal/types"
)

// Client fetches a user's observations as a JSON array from a remote endpoint.
type Client struct {
	URL        string
	HTTPClient *http.Client
	// MaxElapsed bounds the whole retry loop.
	MaxElapsed      time.Duration
	InitialInterval time.Duration
	Log             *logger.Logger
}

func New(url string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		URL:             url,
		HTTPClient:      &http.Client{Timeout: timeout},
		MaxElapsed:      timeout,
		InitialInterval: backoff.DefaultInitialInterval,
		Log:             log.Component("source"),
	}
}

var mockObservations = []types.Observation{
	{Date: "2024-02-01", Mood: "happy", Intensity: 7},
	{Date: "2024-02-01", Mood: "anxious", Intensity: 6},
	{Date: "2024-02-02", Mood: "calm", Intensity: 5},
	{Date: "2024-02-03", Mood: "sad", Intensity: 4},
	{Date: "2024-02-05", Mood: "grateful", Intensity: 8},
}

// Fetch returns the remote observations. USE_MOCK_SOURCE=true returns a fixed sample.
func (c *Client) Fetch(ctx context.Context) ([]types.Observation, error) {
	if os.Getenv("USE_MOCK_SOURCE") == "true" {
		return append([]types.Observation(nil), mockObservations...), nil
	}
	if c.URL == "" {
		return nil, errors.New("OBSERVATIONS_URL not set")
	}
	var out []types.Observation
	if err := c.doJSON(ctx, &out); err != nil {
		return nil, err
	}
	c.Log.WithField("observations", len(out)).Info("fetched observations")
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, target interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.InitialInterval
	bo.MaxElapsedTime = c.MaxElapsed
	var lastErr error
	attempt := 0
	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
		if err != nil {
			lastErr = err
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = err
			c.Log.WithError(err).WithField("attempt", attempt).Warn("fetch failed")
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: %d %s", resp.StatusCode, string(body))
			c.Log.WithField("attempt", attempt).WithField("status", resp.StatusCode).Warn("upstream error, retrying")
			return lastErr
		}
		if resp.StatusCode >= 300 {
			lastErr = fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(body, target); err != nil {
			lastErr = fmt.Errorf("json decode error: %v body=%s", err, string(body))
			return backoff.Permanent(lastErr)
		}
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if lastErr == nil {
			lastErr = err
		}
		return fmt.Errorf("fetch observations: %w", lastErr)
	}
	return nil
}
