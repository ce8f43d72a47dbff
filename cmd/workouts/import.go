// ABOUTME: Import command for restoring workouts from a YAML backup
// ABOUTME: Adds backed-up workouts, skipping ids that are already present

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/workouts/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import workouts from a YAML backup",
	Long: `Import workouts from a YAML backup file.

This restores data from a backup created with 'workouts backup'.

WARNING: This adds to existing workouts, it does not replace them.
Workouts whose id already exists are skipped.
Use 'workouts clear' first if you want a clean import.

Examples:
  workouts import workouts.yaml
  workouts import ~/backups/workouts-20241214.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		ws, err := storage.ImportBackup(data)
		if err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		skip, _ := cmd.Flags().GetBool("confirm")
		if !skip && !confirm(cmd, fmt.Sprintf("Import %d workouts from '%s'?", len(ws), filename)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}

		added, skipped := workoutApp.Import(ws)

		out := cmd.OutOrStdout()
		_, _ = color.New(color.FgGreen).Fprintln(out, "Import complete")
		fmt.Fprintf(out, "  %d added, %d skipped, %d workouts saved\n", added, len(skipped), len(workoutApp.Workouts()))
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("confirm", false, "skip confirmation prompt")

	rootCmd.AddCommand(importCmd)
}
