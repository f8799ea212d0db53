package main

import (
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Run database migrations",
	Long:      `Apply, roll back or inspect the embedded SQL migrations. Defaults to up.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE:      runMigration,
}

func runMigration(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	command := "up"
	if len(args) == 1 {
		command = args[0]
	}

	if err := database.Migrate(cmd.Context(), cfg.DatabaseURL(), command); err != nil {
		return err
	}

	slog.Info("Migration finished", "command", command)
	return nil
}
