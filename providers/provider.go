package providers

import (
	"context"

	"weather-app/models"
)

// Provider is implemented by forecast backends.
type Provider interface {
	Name() string
	// ForecastURL builds the request URL for q. It must be pure.
	ForecastURL(q models.ForecastQuery) string
	// Fetch performs one GET against url. Any transport, status or decode
	// failure is reported as models.ErrFetchFailure.
	Fetch(ctx context.Context, url string) (*models.ForecastResponse, error)
}
