package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/repaint"
	imgutil "github.com/gogpu/repaint/internal/image"
	"github.com/gogpu/repaint/internal/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve paint previews over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("root", ".", "directory holding photos and project descriptors")
	serveCmd.Flags().IntP("quality", "q", imgutil.DefaultQuality, "JPEG quality (1-100)")
	serveCmd.Flags().Int("workers", 1, "paint distinct masks concurrently")
	serveCmd.Flags().Int("cache", 32, "photos and descriptors kept in memory (0 disables)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	root, _ := cmd.Flags().GetString("root")
	quality, _ := cmd.Flags().GetInt("quality")
	workers, _ := cmd.Flags().GetInt("workers")
	cacheSize, _ := cmd.Flags().GetInt("cache")

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("root %q is not a directory", root)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(server.Config{
			Root:      root,
			Quality:   quality,
			Workers:   workers,
			CacheSize: cacheSize,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		repaint.Logger().Info("listening", "addr", addr, "root", root)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
