// ABOUTME: Map command exporting the workout map as GeoJSON
// ABOUTME: Fits the map to every workout and writes points, tracks, or drawn markers

package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/workouts/internal/geojson"
	"github.com/harper/workouts/internal/models"
	"github.com/harper/workouts/internal/view"
)

// ageRegex matches relative ages like "24h", "7d", "1w", "1m".
var ageRegex = regexp.MustCompile(`^(\d+)([hdwm])$`)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Export the workout map as GeoJSON",
	Long: `Fit the map to every workout and export it as a GeoJSON FeatureCollection.
The collection's bbox is the fitted view.

Geometries:
  points   one Point per workout with its stats (default)
  line     one LineString per workout type, in the order they were added
  markers  the markers as drawn, including the current location

Examples:
  workouts map
  workouts map --output workouts.geojson
  workouts map --geometry line --since 30d`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		geometry, _ := cmd.Flags().GetString("geometry")
		since, _ := cmd.Flags().GetString("since")
		output, _ := cmd.Flags().GetString("output")

		var cutoff time.Time
		if since != "" {
			var err error
			cutoff, err = parseAge(since, time.Now())
			if err != nil {
				return fmt.Errorf("invalid --since value: %w", err)
			}
		}

		if err := workoutApp.Dispatch(view.ViewAllIntent{}); err != nil {
			return err
		}

		ws := workoutsSince(workoutApp.Workouts(), cutoff)
		fc, err := buildMap(geometry, ws)
		if err != nil {
			return err
		}

		data, err := fc.ToJSONIndent()
		if err != nil {
			return fmt.Errorf("failed to encode geojson: %w", err)
		}

		if output == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(output, data, 0644); err != nil { //nolint:gosec // 0644 is intentional for data export files
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d workouts to %s\n", len(ws), output)
		return nil
	},
}

func buildMap(geometry string, ws []*models.Workout) (*geojson.FeatureCollection, error) {
	switch geometry {
	case "points":
		fc := geojson.ToPointsFeatureCollection(ws)
		if bounds := mapView.Bounds(); bounds != nil && len(ws) == len(workoutApp.Workouts()) {
			fc.BBox = bounds
		}
		return fc, nil
	case "line":
		return geojson.ToLineFeatureCollection(ws), nil
	case "markers":
		return mapView.FeatureCollection(), nil
	}
	return nil, fmt.Errorf("unsupported geometry: %s (use 'points', 'line', or 'markers')", geometry)
}

func workoutsSince(ws []*models.Workout, cutoff time.Time) []*models.Workout {
	if cutoff.IsZero() {
		return ws
	}
	out := make([]*models.Workout, 0, len(ws))
	for _, w := range ws {
		if !w.CreatedAt.Before(cutoff) {
			out = append(out, w)
		}
	}
	return out
}

// parseAge converts a relative age into the cutoff time before now.
func parseAge(s string, now time.Time) (time.Time, error) {
	matches := ageRegex.FindStringSubmatch(s)
	if matches == nil {
		return time.Time{}, fmt.Errorf("invalid duration format (use e.g., 24h, 7d, 1w)")
	}

	num, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number in duration '%s': %w", s, err)
	}

	day := 24 * time.Hour
	var age time.Duration
	switch matches[2] {
	case "h":
		age = time.Duration(num) * time.Hour
	case "d":
		age = time.Duration(num) * day
	case "w":
		age = time.Duration(num) * 7 * day
	case "m":
		age = time.Duration(num) * 30 * day
	}
	return now.Add(-age), nil
}

func init() {
	mapCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	mapCmd.Flags().StringP("geometry", "g", "points", "geometry: points, line, or markers")
	mapCmd.Flags().String("since", "", "only workouts added within this age (e.g., 24h, 7d, 1w, 1m)")

	rootCmd.AddCommand(mapCmd)
}
