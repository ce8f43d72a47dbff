// ABOUTME: Workout view command
// ABOUTME: Shows one workout in detail and counts the view

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/workouts/internal/ui"
	"github.com/harper/workouts/internal/view"
)

var viewCmd = &cobra.Command{
	Use:     "view <id>",
	Aliases: []string{"show"},
	Short:   "Show a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := workoutApp.Dispatch(view.ViewIntent{ID: id}); err != nil {
			return workoutErr("view", id, err)
		}

		w, err := workoutApp.Find(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatWorkout(w))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
