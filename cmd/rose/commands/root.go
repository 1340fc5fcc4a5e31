package commands

import (
	"fmt"
	"os"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/config"
	"github.com/Ramsey-B/rose/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rose",
	Short: "Relationship coaching API",
	Long: `rose serves the coaching API: targets, love analyses, chat strategies and
reply options generated by a chat completion model and stored in Postgres.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// setup loads configuration and builds the logger shared by every command.
func setup() (*config.Config, ectologger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := app.NewLogger(cfg.LogLevel, cfg.PrettyLogs)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}

	return cfg, logger, nil
}
