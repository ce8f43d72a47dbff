// ABOUTME: Workout edit command
// ABOUTME: Prefills the form from a workout and applies the changed flags

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/workouts/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change the numbers of a workout",
	Long: `Change the distance, duration, cadence, or elevation of a workout.
Flags that are not given keep their current values. The workout type
cannot be changed.

Examples:
  workouts edit 3f2a --distance 10
  workouts edit 3f2a --duration 52 --cadence 176`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := workoutApp.Edit(args[0])
		if err != nil {
			return workoutErr("edit", args[0], err)
		}

		flags := cmd.Flags()
		if flags.Changed("type") {
			raw.Type, _ = flags.GetString("type")
		}
		if flags.Changed("distance") {
			raw.Distance, _ = flags.GetString("distance")
		}
		if flags.Changed("duration") {
			raw.Duration, _ = flags.GetString("duration")
		}
		if flags.Changed("cadence") {
			raw.Cadence, _ = flags.GetString("cadence")
		}
		if flags.Changed("elevation") {
			raw.Elevation, _ = flags.GetString("elevation")
		}

		w, err := workoutApp.SubmitForm(raw)
		if err != nil {
			return fmt.Errorf("failed to edit workout: %w", err)
		}

		out := cmd.OutOrStdout()
		_, _ = color.New(color.FgGreen).Fprintf(out, "✓ Updated %s\n", w.Label)
		fmt.Fprintf(out, "  %s\n", ui.FormatWorkoutLine(w))
		return nil
	},
}

func init() {
	editCmd.Flags().StringP("type", "t", "", "workout type (must match the current type)")
	editCmd.Flags().StringP("distance", "d", "", "distance in km")
	editCmd.Flags().String("duration", "", "duration in minutes")
	editCmd.Flags().String("cadence", "", "cadence in steps/min (running)")
	editCmd.Flags().String("elevation", "", "elevation gain in meters (cycling)")

	rootCmd.AddCommand(editCmd)
}
