// Command stylist is a thin terminal front end for the styling client core:
// today's pick, outfit details, and the outfit calendar.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shkim05/stylist/internal/api"
	"github.com/shkim05/stylist/internal/config"
	"github.com/shkim05/stylist/internal/logging"
	"github.com/shkim05/stylist/internal/services"
	"github.com/shkim05/stylist/internal/store"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:           "stylist",
		Short:         "Personal styling client: outfit picks, details and calendar",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(todayCmd())
	rootCmd.AddCommand(outfitCmd())
	rootCmd.AddCommand(calendarCmd())
	rootCmd.AddCommand(wornCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app wires the client core once per invocation.
type app struct {
	cfg      *config.Config
	log      logging.Logger
	store    store.Store
	api      api.Client
	picks    *services.RecommendationCache
	composer *services.Composer
	calendar *services.Calendar
	worn     *services.WornStatus
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := logging.NewDefault(level).With("request_id", uuid.NewString())

	// The on-device store is best effort: when the medium cannot be opened
	// the session runs on an in-memory store instead of failing.
	var st store.Store
	if bs, err := store.OpenBadger(cfg.DataDir); err != nil {
		log.Warn(ctx, "local storage unavailable, using in-memory store",
			"dir", cfg.DataDir, "error", err)
		st = store.NewMemoryStore()
	} else {
		st = bs
	}

	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, log)

	return &app{
		cfg:      cfg,
		log:      log,
		store:    st,
		api:      apiClient,
		picks:    services.NewRecommendationCache(apiClient, st, log, cfg.CacheTTL),
		composer: services.NewComposer(apiClient, log),
		calendar: services.NewCalendar(st, log),
		worn:     services.NewWornStatus(st, log),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Error(context.Background(), "failed to close local store", "error", err)
	}
}

// imageLink resolves a relative image reference against the service URL.
func (a *app) imageLink(path string) string {
	if path == "" {
		return ""
	}
	return a.cfg.ServerBaseURL + path
}

// runApp handles the shared wiring/teardown around a command body.
func runApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check styling service liveness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.api.Ping(ctx); err != nil {
					return fmt.Errorf("service unreachable: %w", err)
				}
				fmt.Printf("ok: %s\n", a.cfg.ServerBaseURL)
				return nil
			})
		},
	}
}
