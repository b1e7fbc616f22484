package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/repaint"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "repaint",
	Short: "Preview paint colors on the surfaces of a room photo",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		return installLogger(level)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log to stderr at this level (debug, info, warn, error)")
}

// installLogger routes library logs to stderr. An empty level keeps the
// library silent.
func installLogger(level string) error {
	if level == "" {
		return nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	repaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
