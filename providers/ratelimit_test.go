package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-app/models"
)

type countingProvider struct {
	calls int
}

func (c *countingProvider) Name() string { return "counting" }

func (c *countingProvider) ForecastURL(q models.ForecastQuery) string {
	return BuildForecastURL("http://test", q)
}

func (c *countingProvider) Fetch(context.Context, string) (*models.ForecastResponse, error) {
	c.calls++
	return &models.ForecastResponse{}, nil
}

func TestRateLimitedProvider_Delegates(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, 100, 1)

	assert.Equal(t, "counting [Rate Limited]", p.Name())
	assert.Equal(t, inner.ForecastURL(singleDayQuery()), p.ForecastURL(singleDayQuery()))

	_, err := p.Fetch(context.Background(), "http://test")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestRateLimitedProvider_CanceledWait(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, 0.001, 1)

	_, err := p.Fetch(context.Background(), "http://test")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Fetch(ctx, "http://test")
	require.ErrorIs(t, err, models.ErrFetchFailure)
	assert.Equal(t, 1, inner.calls)
}
