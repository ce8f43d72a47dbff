// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads config, opens the storage slot, and starts the workout app

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harper/workouts/internal/app"
	"github.com/harper/workouts/internal/collection"
	"github.com/harper/workouts/internal/config"
	"github.com/harper/workouts/internal/observability"
	"github.com/harper/workouts/internal/storage"
	"github.com/harper/workouts/internal/ui"
)

var (
	cfg        *config.Config
	slot       storage.Slot
	workoutApp *app.App
	mapView    *ui.HeadlessMap
	listView   *ui.TerminalList
	metrics    *observability.Metrics
	logger     = log.NewWithOptions(os.Stderr, log.Options{Prefix: "workouts"})

	dataDirFlag  string
	backendFlag  string
	logLevelFlag string
)

// standalone marks commands that open their own storage.
const standalone = "standalone"

var rootCmd = &cobra.Command{
	Use:   "workouts",
	Short: "Map your running and cycling workouts",
	Long: `
██╗    ██╗ ██████╗ ██████╗ ██╗  ██╗ ██████╗ ██╗   ██╗████████╗███████╗
██║    ██║██╔═══██╗██╔══██╗██║ ██╔╝██╔═══██╗██║   ██║╚══██╔══╝██╔════╝
██║ █╗ ██║██║   ██║██████╔╝█████╔╝ ██║   ██║██║   ██║   ██║   ███████╗
██║███╗██║██║   ██║██╔══██╗██╔═██╗ ██║   ██║██║   ██║   ██║   ╚════██║
╚███╔███╔╝╚██████╔╝██║  ██║██║  ██╗╚██████╔╝╚██████╔╝   ██║   ███████║
 ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝  ╚═════╝    ╚═╝   ╚══════╝

         Log runs and rides where they happened

Examples:
  workouts add --type running --lat 41.8781 --lng -87.6298 --distance 5 --duration 25 --cadence 170
  workouts list --sort distance
  workouts view <id>
  workouts map --output workouts.geojson`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlags(loaded)
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := setLogLevel(loaded.GetLogLevel()); err != nil {
			return err
		}
		cfg = loaded

		if cmd.Annotations[standalone] != "" {
			return nil
		}

		s, err := cfg.OpenSlot()
		if err != nil {
			return fmt.Errorf("failed to open storage (%s): %w", cfg.GetBackend(), err)
		}
		return startApp(cmd.Context(), s)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if slot != nil {
			err := slot.Close()
			slot = nil
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: file, sqlite, badger, or charm")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, or error")
}

func applyFlags(c *config.Config) {
	if dataDirFlag != "" {
		c.DataDir = dataDirFlag
	}
	if backendFlag != "" {
		c.Backend = backendFlag
	}
	if logLevelFlag != "" {
		c.LogLevel = logLevelFlag
	}
}

func setLogLevel(s string) error {
	level, err := log.ParseLevel(s)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", s, err)
	}
	logger.SetLevel(level)
	return nil
}

// startApp wires the app to s and loads the saved workouts.
func startApp(ctx context.Context, s storage.Slot) error {
	ids, err := cfg.IDGenerator()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if metrics == nil {
		metrics = observability.NewMetrics()
	}

	slot = s
	mapView = ui.NewHeadlessMap()
	listView = ui.NewTerminalList()
	workoutApp = app.New(app.Config{
		Codec:   storage.NewCodec(s, logger),
		Map:     mapView,
		List:    listView,
		Locator: app.StaticLocator{Coord: cfg.Home},
		Logger:  logger,
		Metrics: metrics,
		Zoom:    cfg.GetZoomLevel(),
		IDs:     ids,
	})
	return workoutApp.Start(ctx)
}

// workoutErr reports a missing workout by id and wraps anything else.
func workoutErr(action, id string, err error) error {
	if errors.Is(err, collection.ErrNotFound) {
		return fmt.Errorf("workout '%s' not found", id)
	}
	return fmt.Errorf("%s workout '%s': %w", action, id, err)
}

// confirm asks a yes/no question on the command's streams.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
