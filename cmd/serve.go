package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"smartrisk/internal/adapters/journalfile"
	"smartrisk/internal/api"
	"smartrisk/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the risk snapshot over HTTP, recomputing on an interval",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	engine, j, settings, err := loadInputs()
	if err != nil {
		return err
	}

	snapshots := api.NewSnapshotHandler()
	refresh := func() {
		started := time.Now()
		snap := engine.ComputeAll(j, settings, time.Now())
		snapshots.Publish(snap)
		metrics.RecordPipelineRun(
			string(snap.Recommendation.Status),
			time.Since(started),
			snap.Drawdown.Percent,
			snap.Drawdown.Level.Severity(),
		)
	}
	refresh()

	server := api.NewServer(api.ServerConfig{
		Port:        cfg.Server.Port,
		ServiceName: cfg.App.Name,
		Version:     version,
	}, snapshots, log)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	go func() {
		ticker := time.NewTicker(cfg.Server.RefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// Re-read the journal so edits land without a restart
				if fresh, err := journalfile.Load(cfg.Data.JournalPath); err != nil {
					log.Warnf("Journal reload failed, keeping previous: %v", err)
				} else {
					j = fresh
				}
				refresh()
			}
		}
	}()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		log.Info("Shutting down...")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return server.Shutdown(shutdownCtx)
}
