// ABOUTME: MCP serve command
// ABOUTME: Starts the MCP server for AI agents with an optional metrics endpoint

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/workouts/internal/mcp"
)

var mcpMetricsAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI agents",
	Long: `Serve the workout tools over stdio for AI agents.

With --metrics-addr, Prometheus metrics are served at /metrics on that address.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(workoutApp)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			cancel()
		}()

		if mcpMetricsAddr != "" {
			stop := serveMetrics(mcpMetricsAddr)
			defer stop()
		}

		return server.Serve(ctx)
	},
}

// serveMetrics starts the metrics endpoint and returns a function that shuts it down.
func serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "err", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", "err", err)
		}
	}
}

func init() {
	mcpCmd.Flags().StringVar(&mcpMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g., :9090)")

	rootCmd.AddCommand(mcpCmd)
}
