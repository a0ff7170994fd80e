// Package cmd provides CLI commands for tripctl.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mmynk/tripmate/internal/config"
	"github.com/mmynk/tripmate/pkg/logging"
)

var (
	dbPath   string
	tripFile string
	debug    bool

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tripctl",
	Short: "Inspect a tripmate trip from the command line",
	Long: `tripctl reads the trip database directly and prints who owes whom.

Example:
  tripctl balances
  tripctl balances --rate 0.025
  tripctl convert 30000
  tripctl watch`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file for local development (ignore errors in production/docker)
		_ = godotenv.Load()

		cfg = config.Load()
		if !cmd.Flags().Changed("db") {
			dbPath = cfg.DBPath
		}
		if !cmd.Flags().Changed("trip") {
			tripFile = cfg.TripFile
		}

		level := logging.ParseLevel(cfg.LogLevel)
		if debug {
			level = slog.LevelDebug
		}
		// Logs go to stderr so they never mix with the printed tables.
		slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, level)))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./data/trip.db", "SQLite database path (default from DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&tripFile, "trip", "./trip.yaml", "trip YAML file (default from TRIP_FILE)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(balancesCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadTrip reads the trip selected by --trip.
func loadTrip() (*config.Trip, error) {
	trip, err := config.LoadTrip(tripFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip: %w", err)
	}
	return trip, nil
}
