// ABOUTME: Entry point for the workouts CLI
// ABOUTME: Runs the root command and exits non-zero on error

package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
