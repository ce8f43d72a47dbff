// ABOUTME: Workout add command
// ABOUTME: Opens the workout form at a location and submits the flags as its fields

package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/workouts/internal/models"
	"github.com/harper/workouts/internal/session"
	"github.com/harper/workouts/internal/ui"
	"github.com/harper/workouts/internal/view"
)

var errNoLocation = errors.New("no location: pass --lat and --lng or set home in the config")

var addCmd = &cobra.Command{
	Use:     "add --type <running|cycling> --distance <km> --duration <min>",
	Aliases: []string{"a"},
	Short:   "Add a workout",
	Long: `Add a running or cycling workout at a location.

Running workouts need --cadence (steps per minute). Cycling workouts need
--elevation (meters gained, non-negative). Without --lat and --lng the
workout is placed at the home location from the config.

Examples:
  workouts add -t running --lat 41.8781 --lng -87.6298 -d 5 --duration 25 --cadence 170
  workouts add -t cycling --lat 40.015 --lng -105.27 -d 42 --duration 95 --elevation 640`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := openAddForm(cmd); err != nil {
			return err
		}

		raw := session.RawForm{}
		raw.Type, _ = cmd.Flags().GetString("type")
		raw.Distance, _ = cmd.Flags().GetString("distance")
		raw.Duration, _ = cmd.Flags().GetString("duration")
		raw.Cadence, _ = cmd.Flags().GetString("cadence")
		raw.Elevation, _ = cmd.Flags().GetString("elevation")

		w, err := workoutApp.SubmitForm(raw)
		if err != nil {
			return fmt.Errorf("failed to add workout: %w", err)
		}

		out := cmd.OutOrStdout()
		_, _ = color.New(color.FgGreen).Fprintf(out, "✓ Added %s\n", w.Label)
		fmt.Fprintf(out, "  %s\n", ui.FormatWorkoutLine(w))
		return nil
	},
}

// openAddForm starts the create form at the flag coordinates, or clicks the
// map at the current location when none are given.
func openAddForm(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if !flags.Changed("lat") && !flags.Changed("lng") {
		center, _ := mapView.Center()
		if !mapView.Click(center) {
			return errNoLocation
		}
		return nil
	}
	if !flags.Changed("lat") || !flags.Changed("lng") {
		return fmt.Errorf("--lat and --lng must be given together")
	}

	lat, _ := flags.GetFloat64("lat")
	lng, _ := flags.GetFloat64("lng")
	return workoutApp.Dispatch(view.CreateIntent{Coord: models.Coordinate{Lat: lat, Lng: lng}})
}

func init() {
	addCmd.Flags().StringP("type", "t", "", "workout type (running or cycling)")
	addCmd.Flags().Float64("lat", 0, "latitude of the workout")
	addCmd.Flags().Float64("lng", 0, "longitude of the workout")
	addCmd.Flags().StringP("distance", "d", "", "distance in km")
	addCmd.Flags().String("duration", "", "duration in minutes")
	addCmd.Flags().String("cadence", "", "cadence in steps/min (running)")
	addCmd.Flags().String("elevation", "", "elevation gain in meters (cycling)")
	_ = addCmd.MarkFlagRequired("type")

	rootCmd.AddCommand(addCmd)
}
