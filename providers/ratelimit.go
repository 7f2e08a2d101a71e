package providers

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-app/models"
)

// RateLimitedProvider wraps a Provider so upstream calls never exceed rps.
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
}

// NewRateLimitedProvider wraps provider. rps may be fractional; burst is the
// number of calls allowed back to back.
func NewRateLimitedProvider(provider Provider, rps float64, burst int) *RateLimitedProvider {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedProvider) Name() string {
	return fmt.Sprintf("%s [Rate Limited]", r.provider.Name())
}

func (r *RateLimitedProvider) ForecastURL(q models.ForecastQuery) string {
	return r.provider.ForecastURL(q)
}

func (r *RateLimitedProvider) Fetch(ctx context.Context, url string) (*models.ForecastResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait canceled: %w", models.ErrFetchFailure, err)
	}
	return r.provider.Fetch(ctx, url)
}
