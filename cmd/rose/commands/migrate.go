package commands

import (
	"github.com/Ramsey-B/rose/internal/app"
	"github.com/spf13/cobra"
)

var (
	migrateVersion int
	migrateForce   int
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("version") {
			cfg.DatabaseMigrationVersion = migrateVersion
		}
		if cmd.Flags().Changed("force") {
			cfg.DatabaseMigrationForce = migrateForce
		}

		return app.New(cfg, logger).Migrate(cmd.Context())
	},
}

func init() {
	migrateCmd.Flags().IntVar(&migrateVersion, "version", 0, "Migrate to this version instead of the latest")
	migrateCmd.Flags().IntVar(&migrateForce, "force", 0, "Force the schema version before migrating (clears the dirty flag)")
}
