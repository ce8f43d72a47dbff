// ABOUTME: Workout remove command
// ABOUTME: Deletes one workout after a confirmation prompt

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/workouts/internal/view"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := workoutApp.Dispatch(view.DeleteIntent{ID: id}); err != nil {
			return workoutErr("delete", id, err)
		}

		ok, err := resolveConfirmation(cmd)
		if err != nil || !ok {
			return err
		}

		_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", id)
		return nil
	},
}

// resolveConfirmation answers the app's pending confirmation from --confirm
// or a prompt. It reports whether the action went ahead.
func resolveConfirmation(cmd *cobra.Command) (bool, error) {
	accepted, _ := cmd.Flags().GetBool("confirm")
	if !accepted {
		prompt, _ := workoutApp.Pending()
		accepted = confirm(cmd, prompt)
	}

	if err := workoutApp.Confirm(accepted); err != nil {
		return false, err
	}
	if !accepted {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
	}
	return accepted, nil
}

func init() {
	removeCmd.Flags().Bool("confirm", false, "skip confirmation prompt")

	rootCmd.AddCommand(removeCmd)
}
