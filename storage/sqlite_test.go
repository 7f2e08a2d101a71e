package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-app/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "cities.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestFindCity_MatchesAnyTokenIgnoringCase(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddCity(ctx, "Warszawa Warsaw", models.Coordinates{Latitude: 52.23, Longitude: 21.01})
	require.NoError(t, err)

	for _, name := range []string{"Warszawa", "Warsaw", "warsaw", "WARSZAWA", "  Warsaw  "} {
		rec, err := s.FindCity(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, models.Coordinates{Latitude: 52.23, Longitude: 21.01}, rec.Coordinates, name)
	}
}

func TestFindCity_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddCity(ctx, "Warszawa Warsaw", models.Coordinates{Latitude: 52.23, Longitude: 21.01})
	require.NoError(t, err)

	_, err = s.FindCity(ctx, "Atlantis")
	require.ErrorIs(t, err, models.ErrCityNotFound)

	_, err = s.FindCity(ctx, "War")
	require.ErrorIs(t, err, models.ErrCityNotFound, "partial tokens must not match")

	_, err = s.FindCity(ctx, "")
	require.ErrorIs(t, err, models.ErrCityNotFound)
}

func TestFindCity_FirstMatchWins(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddCity(ctx, "Springfield Illinois", models.Coordinates{Latitude: 39.78, Longitude: -89.65})
	require.NoError(t, err)
	_, err = s.AddCity(ctx, "Springfield Massachusetts", models.Coordinates{Latitude: 42.10, Longitude: -72.59})
	require.NoError(t, err)

	rec, err := s.FindCity(ctx, "springfield")
	require.NoError(t, err)
	assert.Equal(t, "Springfield Illinois", rec.Name)
}

func TestListCities(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	list, err := s.ListCities(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	added, err := s.AddCity(ctx, "Kraków Krakow Cracow", models.Coordinates{Latitude: 50.06, Longitude: 19.94})
	require.NoError(t, err)
	assert.NotZero(t, added.ID)

	list, err = s.ListCities(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, added, list[0])
}

func TestAddCity_RequiresName(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddCity(context.Background(), "   ", models.Coordinates{})
	require.Error(t, err)
}

func TestNewSQLite_ReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.db")
	ctx := context.Background()

	s, err := NewSQLite(path)
	require.NoError(t, err)
	_, err = s.AddCity(ctx, "Oslo", models.Coordinates{Latitude: 59.91, Longitude: 10.75})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	rec, err := s.FindCity(ctx, "oslo")
	require.NoError(t, err)
	assert.Equal(t, 59.91, rec.Coordinates.Latitude)
}
