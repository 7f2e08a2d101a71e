package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"weather-app/location"
	"weather-app/models"
	"weather-app/observability"
	"weather-app/providers"
	"weather-app/report"
	"weather-app/timezone"
)

const menuPrompt = "Enter 1 for one day at a chosen hour, 2 for a multi-day forecast, or 0 to quit: "

// CityResolver resolves a typed city name.
type CityResolver interface {
	ByName(ctx context.Context, name string) (location.ByCity, error)
}

// Options configures a Session. In, Out, Resolver and Provider are required.
type Options struct {
	In              io.Reader
	Out             io.Writer
	Registry        *timezone.Registry
	Resolver        CityResolver
	Provider        providers.Provider
	Clock           clockwork.Clock
	Fields          []string
	MaxForecastDays int
	Metrics         *observability.Metrics
	Logger          *slog.Logger
}

// Session runs the conversational forecast loop. One cycle at a time.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	registry *timezone.Registry
	resolver CityResolver
	provider providers.Provider
	clock    clockwork.Clock
	fields   []string
	maxDays  int
	metrics  *observability.Metrics
	logger   *slog.Logger
}

func NewSession(opts Options) *Session {
	s := &Session{
		in:       bufio.NewScanner(opts.In),
		out:      opts.Out,
		registry: opts.Registry,
		resolver: opts.Resolver,
		provider: opts.Provider,
		clock:    opts.Clock,
		fields:   opts.Fields,
		maxDays:  opts.MaxForecastDays,
		metrics:  opts.Metrics,
		logger:   opts.Logger,
	}

	if s.registry == nil {
		s.registry = timezone.Default
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if len(s.fields) == 0 {
		s.fields = providers.DefaultHourlyFields
	}
	if s.maxDays <= 0 {
		s.maxDays = 16
	}
	if s.metrics == nil {
		s.metrics = observability.NewMetricsForTesting()
	}
	if s.logger == nil {
		s.logger = observability.DiscardLogger()
	}

	return s
}

// Run loops over the main menu until the user enters 0, input ends, or ctx
// is canceled. Failures inside a cycle are reported and never end the loop.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.readLine(menuPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, "Closing the application.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		switch choice {
		case "1":
			err = s.hourlyCycle(ctx)
		case "2":
			err = s.dailyCycle(ctx)
		case "0":
			fmt.Fprintln(s.out, "Closing the application.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Enter 1, 2 or 0.")
			continue
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, "Closing the application.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// hourlyCycle fetches exactly one calendar day and shows one hour of it.
func (s *Session) hourlyCycle(ctx context.Context) error {
	logger := s.logger.With("cycle_id", uuid.NewString(), "mode", "hourly")

	loc, err := s.askLocation(ctx)
	if err != nil || loc == nil {
		return err
	}
	tz, err := s.askTimezone()
	if err != nil {
		return err
	}
	date, err := s.askDate()
	if err != nil {
		return err
	}
	filter, err := s.askHour()
	if err != nil {
		return err
	}

	q := models.ForecastQuery{
		Coordinates:  loc.Coordinates(),
		Timezone:     tz,
		StartDate:    date,
		EndDate:      date,
		HourlyFields: s.fields,
	}
	title := fmt.Sprintf("Weather on %s at %s:", date, filter)
	s.show(ctx, logger, loc, q, filter, title)
	s.metrics.Cycles.WithLabelValues("hourly").Inc()
	return nil
}

// dailyCycle fetches a forecast_days window and shows every hour.
func (s *Session) dailyCycle(ctx context.Context) error {
	logger := s.logger.With("cycle_id", uuid.NewString(), "mode", "daily")

	loc, err := s.askLocation(ctx)
	if err != nil || loc == nil {
		return err
	}
	tz, err := s.askTimezone()
	if err != nil {
		return err
	}
	days, err := s.askForecastDays()
	if err != nil {
		return err
	}

	q := models.ForecastQuery{
		Coordinates:  loc.Coordinates(),
		Timezone:     tz,
		ForecastDays: days,
		HourlyFields: s.fields,
	}
	title := fmt.Sprintf("Weather for the next %d day(s):", days)
	s.show(ctx, logger, loc, q, report.AllHours, title)
	s.metrics.Cycles.WithLabelValues("daily").Inc()
	return nil
}

// show fetches q and prints the table. Fetch or response failures are
// reported and end only this cycle.
func (s *Session) show(ctx context.Context, logger *slog.Logger, loc location.Location, q models.ForecastQuery, filter report.HourFilter, title string) {
	url := s.provider.ForecastURL(q)
	fmt.Fprintln(s.out, "Constructed URL:", url)
	logger.Debug("fetching forecast", "provider", s.provider.Name(), "url", url)

	resp, err := s.provider.Fetch(ctx, url)
	if err != nil {
		logger.Warn("no forecast data", "error", err)
		s.explain(err)
		return
	}

	table, err := report.Build(resp, q.HourlyFields, filter)
	if err != nil {
		logger.Error("forecast response rejected", "error", err)
		s.explain(err)
		return
	}

	switch l := loc.(type) {
	case location.ByCity:
		fmt.Fprintf(s.out, "Entered city: %s (%s)\n", l.Name, l.Coords)
	case location.ByCoordinates:
		fmt.Fprintf(s.out, "Entered coordinates: %s\n", l.Coords)
	}
	fmt.Fprintf(s.out, "Entered timezone: %s\n", q.Timezone)
	fmt.Fprintln(s.out, title)

	report.Render(s.out, table)
	logger.Info("forecast shown", "rows", len(table.Rows), "timezone", q.Timezone)
}
