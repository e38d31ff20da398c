package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"content-state/core/logger"
	"content-state/core/reconcile"
	"content-state/feature/contentstate"

	"github.com/spf13/cobra"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Run the merge engine on local JSON files",
	Long: `Merges an incoming update entry with an optional existing record and prints the result.
Both files hold a single JSON object keyed by external field names. Nothing is stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		existingPath, _ := cmd.Flags().GetString("existing")
		incomingPath, _ := cmd.Flags().GetString("incoming")
		userID, _ := cmd.Flags().GetString("user")
		if incomingPath == "" || userID == "" {
			return fmt.Errorf("--incoming and --user are required")
		}

		logg, err := logger.New(&logger.Config{Level: "warn", Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		incomingMap, err := readJSONObject(incomingPath)
		if err != nil {
			return err
		}
		incoming := reconcile.PartialFromMap(incomingMap)

		var existing *reconcile.ConsumptionRecord
		if existingPath != "" {
			existingMap, err := readJSONObject(existingPath)
			if err != nil {
				return err
			}
			rec, err := reconcile.RecordFromMap(existingMap)
			if err != nil {
				return fmt.Errorf("invalid existing record: %w", err)
			}
			existing = &rec
		}

		merged := reconcile.NewEngine(logg).Merge(incoming, existing, userID, time.Now())

		out, err := json.MarshalIndent(contentstate.Project(merged, nil), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func readJSONObject(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

func init() {
	RootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().String("existing", "", "JSON file with the stored record")
	mergeCmd.Flags().String("incoming", "", "JSON file with the update entry")
	mergeCmd.Flags().String("user", "", "User id the merge is performed for")
}
