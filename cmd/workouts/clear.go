// ABOUTME: Workout clear command
// ABOUTME: Deletes every workout after a confirmation prompt

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/workouts/internal/view"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all workouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n := len(workoutApp.Workouts())
		if err := workoutApp.Dispatch(view.DeleteAllIntent{}); err != nil {
			return err
		}

		ok, err := resolveConfirmation(cmd)
		if err != nil || !ok {
			return err
		}

		_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Deleted %d workouts\n", n)
		return nil
	},
}

func init() {
	clearCmd.Flags().Bool("confirm", false, "skip confirmation prompt")

	rootCmd.AddCommand(clearCmd)
}
