package report

import (
	"fmt"
	"time"

	"weather-app/models"
)

// TimeLayout is the upstream hourly timestamp format.
const TimeLayout = "2006-01-02T15:04"

// HourFilter selects rows by hour of day. The zero value keeps every row.
type HourFilter struct {
	hour    int
	enabled bool
}

// AllHours keeps every row.
var AllHours = HourFilter{}

// AtHour keeps only rows whose timestamp falls on hour:00.
func AtHour(hour int) (HourFilter, error) {
	if hour < 0 || hour > 23 {
		return HourFilter{}, fmt.Errorf("%w: hour %d is outside 0..23", models.ErrInvalidNumber, hour)
	}
	return HourFilter{hour: hour, enabled: true}, nil
}

func (f HourFilter) String() string {
	if !f.enabled {
		return "all hours"
	}
	return fmt.Sprintf("T%02d:00", f.hour)
}

func (f HourFilter) match(ts time.Time) bool {
	return !f.enabled || (ts.Hour() == f.hour && ts.Minute() == 0)
}

// Row is one timestamp and the requested field values at that index.
// A nil value means upstream reported null.
type Row struct {
	Time   string
	Values []*float64
}

// Table is a filtered, column-ordered view of a forecast response.
type Table struct {
	Fields []string
	Rows   []Row
}

// Build walks the hourly series once and keeps the rows accepted by filter.
// Every requested field must be present and as long as the time axis.
func Build(resp *models.ForecastResponse, fields []string, filter HourFilter) (*Table, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: no response", models.ErrMalformedResponse)
	}

	times := resp.Hourly.Time
	columns := make([][]*float64, len(fields))
	for i, field := range fields {
		series, ok := resp.Hourly.Values[field]
		if !ok {
			return nil, fmt.Errorf("%w: field %s missing", models.ErrMalformedResponse, field)
		}
		if len(series) != len(times) {
			return nil, fmt.Errorf("%w: field %s has %d values for %d timestamps",
				models.ErrMalformedResponse, field, len(series), len(times))
		}
		columns[i] = series
	}

	table := &Table{Fields: fields, Rows: make([]Row, 0)}
	for idx, raw := range times {
		ts, err := time.Parse(TimeLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: timestamp %q: %w", models.ErrMalformedResponse, raw, err)
		}
		if !filter.match(ts) {
			continue
		}

		row := Row{Time: raw, Values: make([]*float64, len(fields))}
		for i := range fields {
			row.Values[i] = columns[i][idx]
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
