// Package cli provides the command-line interface for gylr.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/rubicon/gylr-go/internal/calendar"
	"github.com/rubicon/gylr-go/internal/classify"
	"github.com/rubicon/gylr-go/internal/config"
	"github.com/rubicon/gylr-go/internal/metrics"
	"github.com/rubicon/gylr-go/internal/models"
	"github.com/rubicon/gylr-go/internal/patterns"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose    bool
	periodFlag string

	// Global config and collaborators
	cfg        config.Config
	logger     *slog.Logger
	logCleanup func() error
	kv         *patterns.SQLiteKV
	store      *patterns.Store
	collector  *metrics.Collector
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gylr",
	Short: "Get Your Life Roasted - calendar time-allocation engine",
	Long: `GYLR pulls your Google Calendar, sorts events into life areas
(Work, Play, Health, Romance, Study), shows where your time actually
goes, and lets an AI judge roast you for it.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for version and help commands
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		logger, logCleanup = config.NewLogger(cfg)
		collector = metrics.NewCollector()

		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}

		var err error
		kv, err = patterns.OpenSQLiteKV(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open pattern store: %w", err)
		}
		store = patterns.NewStore(kv, clockwork.NewRealClock(), logger)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if kv != nil {
			if err := kv.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close pattern store: %v\n", err)
			}
		}
		if logCleanup != nil {
			_ = logCleanup()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&periodFlag, "period", "p", "", "time period: day, week, month or year")

	// Add subcommands
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(lifeCmd)
	rootCmd.AddCommand(roastCmd)
	rootCmd.AddCommand(mappingsCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
}

// activePeriod resolves the analysis period from the flag or config default.
func activePeriod() (models.TimePeriod, error) {
	raw := periodFlag
	if raw == "" {
		raw = cfg.TimePeriod
	}
	return models.ParseTimePeriod(raw)
}

// fetchCategorized pulls events for the period and classifies them
// against the stored mappings.
func fetchCategorized(ctx context.Context, period models.TimePeriod) ([]models.CategorizedEvent, error) {
	if cfg.GoogleAccessToken == "" {
		return nil, fmt.Errorf("GOOGLE_ACCESS_TOKEN is not set; export a valid Google Calendar access token")
	}

	client := calendar.NewClient(logger, collector)
	start, end := period.Range(time.Now())
	events, err := client.FetchEvents(ctx, cfg.GoogleAccessToken, start, end)
	if err != nil {
		return nil, err
	}

	mappings := store.Load(ctx)
	return classify.Categorize(events, mappings), nil
}
