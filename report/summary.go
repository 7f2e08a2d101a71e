package report

import "math"

// Summary holds per-column statistics over non-null values.
type Summary struct {
	Field   string
	Count   int
	Min     float64
	Max     float64
	Average float64
}

// Summarize computes min, max and average for every column of t.
func Summarize(t *Table) []Summary {
	out := make([]Summary, len(t.Fields))
	for i, field := range t.Fields {
		values := make([]float64, 0, len(t.Rows))
		for _, row := range t.Rows {
			if v := row.Values[i]; v != nil {
				values = append(values, *v)
			}
		}
		out[i] = aggregateValues(field, values)
	}
	return out
}

func aggregateValues(field string, values []float64) Summary {
	if len(values) == 0 {
		return Summary{Field: field}
	}

	sum := 0.0
	min := math.MaxFloat64
	max := -math.MaxFloat64

	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return Summary{
		Field:   field,
		Count:   len(values),
		Min:     min,
		Max:     max,
		Average: sum / float64(len(values)),
	}
}
