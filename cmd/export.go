package cmd

import (
	"fmt"

	"content-state/core/config"
	"content-state/core/database"
	"content-state/core/logger"
	"content-state/core/storage"
	"content-state/feature/contentstate"

	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's consumption records to object storage",
	Long:  `Writes every consumption record of a user as one JSON document to <bucket>/<export_prefix>/<userId>.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

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

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		if err := storage.EnsureBucket(cmd.Context(), client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return err
		}

		exporter := contentstate.NewExporter(contentstate.NewRepository(db), client, cfg.Storage.Bucket, cfg.Storage.ExportPrefix, logg)
		key, n, err := exporter.Export(cmd.Context(), userID)
		if err != nil {
			return err
		}

		fmt.Printf("Exported %d records to %s/%s\n", n, cfg.Storage.Bucket, key)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("user", "", "User id to export")
}
