package cmd

import (
	"fmt"

	"content-state/core/config"
	"content-state/core/database"
	"content-state/core/logger"
	"content-state/feature/contentstate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the consumption table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		if err := contentstate.NewRepository(db).Migrate(); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		logg.Info("Consumption table migrated", zap.String("driver", cfg.Database.Driver))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
