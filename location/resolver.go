package location

import (
	"context"
	"errors"
	"log/slog"

	"weather-app/models"
	"weather-app/observability"
)

// CityFinder looks a city up by one of its names.
type CityFinder interface {
	FindCity(ctx context.Context, name string) (models.CityRecord, error)
}

// Resolver turns a typed city name into a location.
type Resolver struct {
	cities  CityFinder
	metrics *observability.Metrics
	logger  *slog.Logger
}

func NewResolver(cities CityFinder, metrics *observability.Metrics, logger *slog.Logger) *Resolver {
	return &Resolver{cities: cities, metrics: metrics, logger: logger}
}

// ByName resolves name against the city table. The typed name is kept in the
// returned ByCity so confirmations echo what the user asked for.
func (r *Resolver) ByName(ctx context.Context, name string) (ByCity, error) {
	rec, err := r.cities.FindCity(ctx, name)
	if err != nil {
		if errors.Is(err, models.ErrCityNotFound) {
			r.metrics.CityLookups.WithLabelValues("miss").Inc()
			r.logger.Debug("city not found", "name", name)
		} else {
			r.metrics.CityLookups.WithLabelValues("error").Inc()
			r.logger.Error("city lookup failed", "name", name, "error", err)
		}
		return ByCity{}, err
	}

	r.metrics.CityLookups.WithLabelValues("hit").Inc()
	r.logger.Debug("city resolved", "name", name, "record", rec.Name, "id", rec.ID)
	return ByCity{Name: name, Coords: rec.Coordinates}, nil
}
