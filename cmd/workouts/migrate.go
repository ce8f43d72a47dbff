// ABOUTME: Migration command for moving workout data between storage backends
// ABOUTME: Copies the saved snapshot into a new backend with an overwrite check

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/workouts/internal/config"
	"github.com/harper/workouts/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate data between storage backends",
	Long: `Copy all workouts from the currently configured backend to a different backend.

Entries the current backend cannot load are left behind. Does NOT update the
config file; verify the migration was successful then update config.json manually.

Examples:
  workouts migrate --to sqlite
  workouts migrate --to badger --target-dir ~/workouts-badger
  workouts migrate --to file --force`,
	Annotations: map[string]string{standalone: "true"},
	Args:        cobra.NoArgs,
	RunE:        runMigrate,
}

var (
	migrateTo        string
	migrateTargetDir string
	migrateForce     bool
)

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "target backend ("+strings.Join(config.Backends, ", ")+")")
	migrateCmd.Flags().StringVar(&migrateTargetDir, "target-dir", "", "target data directory (defaults to current data directory)")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite workouts already saved in the target")
	_ = migrateCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	sourceBackend := cfg.GetBackend()
	targetBackend := migrateTo

	if !slices.Contains(config.Backends, targetBackend) {
		return fmt.Errorf("invalid target backend %q: must be one of %s", targetBackend, strings.Join(config.Backends, ", "))
	}

	targetDataDir := cfg.GetDataDir()
	if migrateTargetDir != "" {
		targetDataDir = config.ExpandPath(migrateTargetDir)
	}
	if targetBackend == sourceBackend && targetDataDir == cfg.GetDataDir() {
		return fmt.Errorf("target backend %q is the same as the current backend", targetBackend)
	}

	src, err := cfg.OpenSlot()
	if err != nil {
		return fmt.Errorf("open source storage (%s): %w", sourceBackend, err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logger.Warn("closing source storage", "err", cerr)
		}
	}()

	dst, err := config.OpenBackend(targetBackend, targetDataDir)
	if err != nil {
		return fmt.Errorf("open target storage (%s): %w", targetBackend, err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil {
			logger.Warn("closing target storage", "err", cerr)
		}
	}()

	empty, err := storage.IsSlotEmpty(dst)
	if err != nil {
		return fmt.Errorf("check target storage: %w", err)
	}
	if !empty && !migrateForce {
		return fmt.Errorf("target %s already holds workouts; use --force to overwrite", dst.Name())
	}

	out := cmd.OutOrStdout()
	_, _ = color.New(color.FgYellow).Fprintln(out, "Migrating workouts:")
	fmt.Fprintf(out, "  Source:  %s\n", src.Name())
	fmt.Fprintf(out, "  Target:  %s\n", dst.Name())
	fmt.Fprintln(out)

	summary, err := storage.MigrateSlot(src, dst)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	_, _ = color.New(color.FgGreen).Fprintln(out, "Migration complete!")
	fmt.Fprintf(out, "  Workouts: %d\n", summary.Workouts)
	if summary.Skipped > 0 {
		fmt.Fprintf(out, "  Skipped:  %d\n", summary.Skipped)
	}
	fmt.Fprintln(out)
	_, _ = color.New(color.FgYellow).Fprintln(out, "Note: config.json was NOT updated. To switch to the new backend, edit:")
	fmt.Fprintf(out, "  %s\n", config.GetConfigPath())
	fmt.Fprintf(out, "  Set \"backend\": %q", targetBackend)
	if migrateTargetDir != "" {
		fmt.Fprintf(out, " and \"data_dir\": %q", migrateTargetDir)
	}
	fmt.Fprintln(out)

	return nil
}
