package models

import (
	"encoding/json"
	"fmt"
)

// Coordinates holds a resolved position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("latitude = %g, longitude = %g", c.Latitude, c.Longitude)
}

// ForecastQuery describes one forecast request.
// When ForecastDays is positive the date window is expressed as a day count,
// otherwise StartDate and EndDate (YYYY-MM-DD) are used.
type ForecastQuery struct {
	Coordinates  Coordinates
	Timezone     string
	StartDate    string
	EndDate      string
	ForecastDays int
	HourlyFields []string
}

// ForecastResponse is the subset of the upstream payload the tool reads.
type ForecastResponse struct {
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Timezone  string       `json:"timezone"`
	Hourly    HourlySeries `json:"hourly"`
}

// HourlySeries holds the time axis and every other hourly array keyed by field name.
// Values are nil where upstream reports null.
type HourlySeries struct {
	Time   []string
	Values map[string][]*float64
}

// UnmarshalJSON splits the "time" array from the numeric field arrays.
func (h *HourlySeries) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	h.Time = nil
	h.Values = make(map[string][]*float64, len(raw))

	for key, value := range raw {
		if key == "time" {
			if err := json.Unmarshal(value, &h.Time); err != nil {
				return fmt.Errorf("hourly.time: %w", err)
			}
			continue
		}
		var series []*float64
		if err := json.Unmarshal(value, &series); err != nil {
			return fmt.Errorf("hourly.%s: %w", key, err)
		}
		h.Values[key] = series
	}

	return nil
}

// MarshalJSON writes the series back in the upstream layout.
func (h HourlySeries) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(h.Values)+1)
	out["time"] = h.Time
	for key, series := range h.Values {
		out[key] = series
	}
	return json.Marshal(out)
}

// CityRecord is a row of the city lookup table. Name may hold several
// space-delimited aliases, e.g. "Warszawa Warsaw".
type CityRecord struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
}
