package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

var fieldLabels = map[string]string{
	"temperature_2m":       "Temperature (°C)",
	"apparent_temperature": "Apparent Temp. (°C)",
	"visibility":           "Visibility (m)",
	"rain":                 "Rain (mm)",
	"snowfall":             "Snowfall (cm)",
	"relative_humidity_2m": "Humidity (%)",
	"wind_speed_10m":       "Wind (km/h)",
	"precipitation":        "Precipitation (mm)",
}

// Label returns the column header for an hourly field.
func Label(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

// Headers returns the column headers for t, time first.
func Headers(t *Table) []string {
	headers := make([]string, 0, len(t.Fields)+1)
	headers = append(headers, "Time")
	for _, field := range t.Fields {
		headers = append(headers, Label(field))
	}
	return headers
}

// Render writes t as a bordered table followed by a min/avg/max block.
// The summary is omitted when there are no rows.
func Render(w io.Writer, t *Table) {
	grid := newTable(w, Headers(t))
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row.Values)+1)
		cells = append(cells, row.Time)
		for _, v := range row.Values {
			cells = append(cells, formatValue(v))
		}
		grid.Append(cells)
	}
	grid.Render()

	if len(t.Rows) == 0 {
		return
	}

	summaries := Summarize(t)
	headers := Headers(t)
	headers[0] = ""
	stats := newTable(w, headers)
	stats.Append(summaryRow("min", summaries, func(s Summary) float64 { return s.Min }))
	stats.Append(summaryRow("avg", summaries, func(s Summary) float64 { return s.Average }))
	stats.Append(summaryRow("max", summaries, func(s Summary) float64 { return s.Max }))
	stats.Render()
}

func newTable(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(true)
	table.SetRowLine(true)
	table.SetHeader(headers)
	return table
}

func summaryRow(name string, summaries []Summary, pick func(Summary) float64) []string {
	cells := make([]string, 0, len(summaries)+1)
	cells = append(cells, name)
	for _, s := range summaries {
		if s.Count == 0 {
			cells = append(cells, "-")
			continue
		}
		cells = append(cells, strconv.FormatFloat(pick(s), 'f', 2, 64))
	}
	return cells
}

func formatValue(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
