package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"weather-app/config"
	"weather-app/console"
	"weather-app/location"
	"weather-app/observability"
	"weather-app/providers"
	"weather-app/storage"
	"weather-app/timezone"
)

var (
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics = observability.NewMetrics()

	var rootCmd = &cobra.Command{
		Use:   "weather",
		Short: "Hourly weather lookup",
		Long:  "Asks for a place, timezone and date, then prints the Open-Meteo hourly forecast as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context())
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfg.CityDBPath, "db", cfg.CityDBPath, "Path to the SQLite city table")
	rootCmd.PersistentFlags().StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Forecast API endpoint")

	var timezonesCmd = &cobra.Command{
		Use:   "timezones",
		Short: "List the supported timezones and their UTC offsets",
		Run: func(cmd *cobra.Command, args []string) {
			showTimezones()
		},
	}

	var citiesCmd = &cobra.Command{
		Use:   "cities",
		Short: "Manage the city lookup table",
	}

	var citiesListCmd = &cobra.Command{
		Use:   "list",
		Short: "List stored cities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCities(cmd.Context())
		},
	}

	var citiesAddCmd = &cobra.Command{
		Use:   "add [names] [latitude] [longitude]",
		Short: "Add a city; several space-separated names may share one record",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return addCity(cmd.Context(), args[0], args[1], args[2])
		},
	}

	// Negative coordinates must not be read as flags.
	citiesAddCmd.Flags().SetInterspersed(false)

	citiesCmd.AddCommand(citiesListCmd, citiesAddCmd)
	rootCmd.AddCommand(timezonesCmd, citiesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runInteractive wires the store, resolver and provider into a console session.
func runInteractive(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.MetricsAddr != "" {
		observability.ServeMetrics(ctx, cfg.MetricsAddr, logger)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var provider providers.Provider = providers.NewOpenMeteoProvider(cfg.BaseURL, cfg.HTTPTimeout, metrics, logger)
	if cfg.RateLimitRPS > 0 {
		provider = providers.NewRateLimitedProvider(provider, cfg.RateLimitRPS, 1)
		logger.Info("forecast requests rate limited", "rps", cfg.RateLimitRPS)
	}

	session := console.NewSession(console.Options{
		In:              os.Stdin,
		Out:             os.Stdout,
		Registry:        timezone.Default,
		Resolver:        location.NewResolver(store, metrics, logger),
		Provider:        provider,
		MaxForecastDays: cfg.MaxForecastDays,
		Fields:          providers.DefaultHourlyFields,
		Metrics:         metrics,
		Logger:          logger,
	})

	logger.Debug("session started", "provider", provider.Name(), "db", cfg.CityDBPath)
	return session.Run(ctx)
}

func openStore() (storage.CityStore, error) {
	store, err := storage.NewSQLite(cfg.CityDBPath)
	if err != nil {
		return nil, fmt.Errorf("open city table: %w", err)
	}
	return store, nil
}

// showTimezones prints the registry in registration order
func showTimezones() {
	fmt.Println("Supported timezones (standard time):")
	fmt.Println(strings.Repeat("-", 30))
	for _, e := range timezone.Default.Entries() {
		fmt.Printf("%-22s %s\n", e.Identifier, e.Offset)
	}
}

func listCities(ctx context.Context) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	cities, err := store.ListCities(ctx)
	if err != nil {
		return err
	}
	if len(cities) == 0 {
		fmt.Println("No cities stored.")
		return nil
	}
	for _, c := range cities {
		fmt.Printf("%4d  %-30s %s\n", c.ID, c.Name, c.Coordinates)
	}
	return nil
}

func addCity(ctx context.Context, names, lat, lon string) error {
	loc, err := location.ParseCoordinates(lat, lon)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.AddCity(ctx, names, loc.Coordinates())
	if err != nil {
		return err
	}
	logger.Info("city added", "id", rec.ID, "name", rec.Name)
	fmt.Printf("Added %q (%s)\n", rec.Name, rec.Coordinates)
	return nil
}
