// ABOUTME: Workout list command
// ABOUTME: Prints the workout list in the chosen sort order

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/workouts/internal/collection"
	"github.com/harper/workouts/internal/view"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all workouts",
	Long: `List all workouts, oldest first unless --sort is given.

Sort orders: date-added, date-added-reverse, distance, duration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sortBy, _ := cmd.Flags().GetString("sort")
		c, err := collection.ParseCriterion(sortBy)
		if err != nil {
			return err
		}
		if err := workoutApp.Dispatch(view.SortIntent{Criterion: c}); err != nil {
			return err
		}

		if err := listView.Render(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to print list: %w", err)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("sort", "s", "", "sort order (date-added, date-added-reverse, distance, duration)")

	rootCmd.AddCommand(listCmd)
}
