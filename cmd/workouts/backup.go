// ABOUTME: Backup command for exporting workouts to YAML
// ABOUTME: Creates portable backup files for moving data between machines

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/workouts/internal/storage"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create a YAML backup of all workouts",
	Long: `Create a YAML backup file containing every workout.

The backup file can be used to:
- Migrate data between machines
- Restore after data loss
- Import into a fresh data directory

Examples:
  workouts backup --output workouts.yaml
  workouts backup -o ~/backups/workouts-$(date +%Y%m%d).yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		ws := workoutApp.Workouts()
		data, err := storage.ExportBackup(ws)
		if err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}

		if output == "" {
			output = fmt.Sprintf("workouts-%s.yaml", time.Now().Format("20060102-150405"))
		}

		if err := os.WriteFile(output, data, 0644); err != nil { //nolint:gosec // 0644 is intentional for backup files
			return fmt.Errorf("failed to write backup: %w", err)
		}

		out := cmd.OutOrStdout()
		_, _ = color.New(color.FgGreen).Fprintf(out, "Backup created: %s\n", output)
		fmt.Fprintf(out, "  %d workouts\n", len(ws))
		return nil
	},
}

func init() {
	backupCmd.Flags().StringP("output", "o", "", "output file (default: workouts-YYYYMMDD-HHMMSS.yaml)")

	rootCmd.AddCommand(backupCmd)
}
