package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"weather-app/location"
	"weather-app/models"
	"weather-app/report"
)

const dateLayout = "2006-01-02"

// readLine prints prompt and returns the next trimmed input line.
// io.EOF is returned once input is exhausted.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(s.out)
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// ask repeats prompt until parse accepts the answer.
func ask[T any](s *Session, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		s.explain(err)
	}
}

// explain prints a user-facing message for err.
func (s *Session) explain(err error) {
	var msg string
	switch {
	case errors.Is(err, models.ErrInvalidNumber):
		msg = "Invalid number."
	case errors.Is(err, models.ErrInvalidTimezone):
		msg = "Invalid timezone."
	case errors.Is(err, models.ErrInvalidOffset):
		msg = "Invalid UTC offset."
	case errors.Is(err, models.ErrInvalidDate):
		msg = "Invalid date, use YYYY-MM-DD."
	case errors.Is(err, models.ErrDateOutOfRange):
		msg = "Date is outside the forecast window."
	case errors.Is(err, models.ErrCityNotFound):
		msg = "City not found."
	case errors.Is(err, models.ErrFetchFailure):
		msg = "Error while performing the GET request."
	case errors.Is(err, models.ErrMalformedResponse):
		msg = "The forecast response is malformed."
	default:
		msg = "Unexpected error."
	}
	fmt.Fprintf(s.out, "%s (%v)\n", msg, err)
}

// askLocation returns nil, nil when a city lookup fails; the cycle is
// abandoned and the caller goes back to the main menu.
func (s *Session) askLocation(ctx context.Context) (location.Location, error) {
	mode, err := ask(s, "Enter 1 to type coordinates or 2 to look up a city: ", func(in string) (string, error) {
		if in == "1" || in == "2" {
			return in, nil
		}
		return "", fmt.Errorf("%w: choose 1 or 2", models.ErrInvalidNumber)
	})
	if err != nil {
		return nil, err
	}

	if mode == "2" {
		return s.askCity(ctx)
	}

	lat, err := ask(s, "Enter latitude: ", location.ParseLatitude)
	if err != nil {
		return nil, err
	}
	lon, err := ask(s, "Enter longitude: ", location.ParseLongitude)
	if err != nil {
		return nil, err
	}
	return location.ByCoordinates{Coords: models.Coordinates{Latitude: lat, Longitude: lon}}, nil
}

func (s *Session) askCity(ctx context.Context) (location.Location, error) {
	name, err := ask(s, "Enter city name: ", func(in string) (string, error) {
		if in == "" {
			return "", fmt.Errorf("%w: empty name", models.ErrCityNotFound)
		}
		return in, nil
	})
	if err != nil {
		return nil, err
	}

	city, err := s.resolver.ByName(ctx, name)
	if err != nil {
		s.explain(err)
		return nil, nil
	}
	return city, nil
}

func (s *Session) askTimezone() (string, error) {
	prompt := "Enter one of the timezones (or its UTC offset):\n" +
		strings.Join(s.registry.Identifiers(), "\n") + "\n"

	return ask(s, prompt, func(in string) (string, error) {
		if s.registry.Contains(in) {
			return in, nil
		}
		id, err := s.registry.LookupIdentifier(in)
		if err == nil {
			return id, nil
		}
		if in != "" && strings.ContainsRune("+-0123456789", rune(in[0])) {
			return "", err
		}
		return "", fmt.Errorf("%w: %q", models.ErrInvalidTimezone, in)
	})
}

// askDate accepts a date from today to today+maxDays-1 on the session clock.
func (s *Session) askDate() (string, error) {
	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	last := today.AddDate(0, 0, s.maxDays-1)

	prompt := fmt.Sprintf("Enter the date (YYYY-MM-DD, %s to %s): ",
		today.Format(dateLayout), last.Format(dateLayout))

	return ask(s, prompt, func(in string) (string, error) {
		d, err := time.Parse(dateLayout, in)
		if err != nil {
			return "", fmt.Errorf("%w: %q", models.ErrInvalidDate, in)
		}
		if d.Before(today) || d.After(last) {
			return "", fmt.Errorf("%w: %s", models.ErrDateOutOfRange, in)
		}
		return d.Format(dateLayout), nil
	})
}

func (s *Session) askHour() (report.HourFilter, error) {
	return ask(s, "Enter the hour (0-23): ", func(in string) (report.HourFilter, error) {
		h, err := strconv.Atoi(in)
		if err != nil {
			return report.HourFilter{}, fmt.Errorf("%w: %q", models.ErrInvalidNumber, in)
		}
		return report.AtHour(h)
	})
}

func (s *Session) askForecastDays() (int, error) {
	prompt := fmt.Sprintf("Enter the number of forecast days (1-%d): ", s.maxDays)

	return ask(s, prompt, func(in string) (int, error) {
		n, err := strconv.Atoi(in)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", models.ErrInvalidNumber, in)
		}
		if n < 1 || n > s.maxDays {
			return 0, fmt.Errorf("%w: forecast days must be between 1 and %d", models.ErrInvalidNumber, s.maxDays)
		}
		return n, nil
	})
}
