package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"weather-app/models"

	_ "modernc.org/sqlite"
)

// CityStore is the persistence surface used by the console and the cities command.
type CityStore interface {
	FindCity(ctx context.Context, name string) (models.CityRecord, error)
	AddCity(ctx context.Context, name string, coords models.Coordinates) (models.CityRecord, error)
	ListCities(ctx context.Context) ([]models.CityRecord, error)
	Close() error
}

// SQLiteStore implements CityStore on the pure Go modernc.org/sqlite driver.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS cities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	city TEXT NOT NULL,
	latitude REAL NOT NULL,
	longitude REAL NOT NULL
);`

// NewSQLite opens (or creates) the database at path. The returned store owns
// a pooled *sql.DB and must be closed by the caller.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// FindCity returns the first record, in insertion order, whose city field has a
// whitespace-delimited token equal to name ignoring case. One query per call.
func (s *SQLiteStore) FindCity(ctx context.Context, name string) (models.CityRecord, error) {
	needle := strings.TrimSpace(name)
	if needle == "" {
		return models.CityRecord{}, fmt.Errorf("%w: empty name", models.ErrCityNotFound)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, city, latitude, longitude FROM cities ORDER BY id`)
	if err != nil {
		return models.CityRecord{}, fmt.Errorf("query cities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanCity(rows)
		if err != nil {
			return models.CityRecord{}, err
		}
		if matchesToken(rec.Name, needle) {
			return rec, nil
		}
	}
	if err := rows.Err(); err != nil {
		return models.CityRecord{}, fmt.Errorf("iterate cities: %w", err)
	}

	return models.CityRecord{}, fmt.Errorf("%w: %q", models.ErrCityNotFound, needle)
}

// AddCity inserts a record and returns it with its assigned id.
func (s *SQLiteStore) AddCity(ctx context.Context, name string, coords models.Coordinates) (models.CityRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.CityRecord{}, fmt.Errorf("city name is required")
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO cities(city, latitude, longitude) VALUES(?,?,?)`,
		name, coords.Latitude, coords.Longitude)
	if err != nil {
		return models.CityRecord{}, fmt.Errorf("insert city: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.CityRecord{}, fmt.Errorf("insert city: %w", err)
	}

	return models.CityRecord{ID: id, Name: name, Coordinates: coords}, nil
}

// ListCities returns all records in insertion order.
func (s *SQLiteStore) ListCities(ctx context.Context) ([]models.CityRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, city, latitude, longitude FROM cities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query cities: %w", err)
	}
	defer rows.Close()

	out := make([]models.CityRecord, 0)
	for rows.Next() {
		rec, err := scanCity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanCity(rows *sql.Rows) (models.CityRecord, error) {
	var rec models.CityRecord
	if err := rows.Scan(&rec.ID, &rec.Name, &rec.Coordinates.Latitude, &rec.Coordinates.Longitude); err != nil {
		return models.CityRecord{}, fmt.Errorf("scan city: %w", err)
	}
	return rec, nil
}

func matchesToken(field, needle string) bool {
	for _, token := range strings.Fields(field) {
		if strings.EqualFold(token, needle) {
			return true
		}
	}
	return false
}
