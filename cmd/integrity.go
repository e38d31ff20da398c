package cmd

import (
	"context"
	"fmt"

	"content-state/core/config"
	"content-state/core/database"
	"content-state/core/logger"
	"content-state/core/storage"
	"content-state/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the database and export bucket",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the consumption table schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false)
	},
}

// bucketCmd represents the integrity bucket command
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Check and fix the export bucket",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, bucketCmd)

	bucketCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when missing")
}

func runIntegrityChecks(ctx context.Context, runSchema, runBucket bool) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		return
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	svc := integrity.NewService(store, cfg.Storage.Bucket, cfg.Storage.Region, logg, db)

	if runSchema {
		logg.Info("Checking consumption schema...", zap.String("driver", cfg.Database.Driver))
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Schema matches expected definition.")
		} else {
			for table, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runBucket {
		logg.Info("Checking export bucket...", zap.String("bucket", cfg.Storage.Bucket))
		report, err := svc.CheckBucket(ctx)
		if err != nil {
			logg.Error("Bucket check failed", zap.Error(err))
			return
		}
		switch {
		case report.Exists:
			logg.Info("Export bucket is present.")
		case fixFlag:
			if err := svc.FixBucket(ctx); err != nil {
				logg.Error("Failed to create bucket", zap.Error(err))
				return
			}
			logg.Info("Export bucket created.")
		default:
			logg.Warn("Export bucket is missing. Run 'integrity bucket --fix' to create it.")
		}
	}
}
