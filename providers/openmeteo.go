package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"weather-app/models"
	"weather-app/observability"
)

const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// DefaultHourlyFields is the column set shown by the console.
var DefaultHourlyFields = []string{
	"temperature_2m",
	"apparent_temperature",
	"rain",
	"snowfall",
	"visibility",
}

type OpenMeteoProvider struct {
	client  *http.Client
	baseURL string
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewOpenMeteoProvider creates a client for the Open-Meteo forecast API.
// A zero timeout leaves the request unbounded.
func NewOpenMeteoProvider(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenMeteoProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return "Open-Meteo"
}

func (p *OpenMeteoProvider) ForecastURL(q models.ForecastQuery) string {
	return BuildForecastURL(p.baseURL, q)
}

// BuildForecastURL assembles the forecast query string. Field order is kept
// and the timezone is written verbatim, "/" included.
func BuildForecastURL(baseURL string, q models.ForecastQuery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s?latitude=%s&longitude=%s&hourly=%s&timezone=%s",
		baseURL,
		formatDegrees(q.Coordinates.Latitude),
		formatDegrees(q.Coordinates.Longitude),
		strings.Join(q.HourlyFields, ","),
		q.Timezone,
	)

	if q.ForecastDays > 0 {
		fmt.Fprintf(&b, "&forecast_days=%d", q.ForecastDays)
	} else {
		fmt.Fprintf(&b, "&start_date=%s&end_date=%s", q.StartDate, q.EndDate)
	}

	return b.String()
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, url string) (*models.ForecastResponse, error) {
	start := time.Now()
	resp, err := p.fetch(ctx, url)
	p.metrics.FetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		p.metrics.FetchRequests.WithLabelValues("error").Inc()
		p.logger.Warn("forecast fetch failed", "provider", p.Name(), "error", err)
		return nil, err
	}

	p.metrics.FetchRequests.WithLabelValues("success").Inc()
	p.logger.Debug("forecast fetched", "provider", p.Name(), "rows", len(resp.Hourly.Time))
	return resp, nil
}

func (p *OpenMeteoProvider) fetch(ctx context.Context, url string) (*models.ForecastResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", models.ErrFetchFailure, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiError struct {
			Reason string `json:"reason"`
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err := json.Unmarshal(body, &apiError); err == nil && apiError.Reason != "" {
			return nil, fmt.Errorf("%w: status %d: %s", models.ErrFetchFailure, resp.StatusCode, apiError.Reason)
		}
		return nil, fmt.Errorf("%w: status %d", models.ErrFetchFailure, resp.StatusCode)
	}

	var result models.ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", models.ErrFetchFailure, err)
	}

	return &result, nil
}
