// tictactoe runs the variant engines from the command line.
//
// Usage:
//
//	tictactoe variants                    - List the playable variants
//	tictactoe simulate [variant]          - Play computer against computer
//	tictactoe play <variant> <moves...>   - Apply a scripted list of moves
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-variants/internal/config"
)

var flagConfig string

// main - is the entry point of the application. It recovers a failed run into exit code 1.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Classic, decay, ultimate and quixo tic-tac-toe engines",
	Long: `Runs the tic-tac-toe variant engines without a UI.

Examples:
  tictactoe variants
  tictactoe simulate ultimate --games 100
  tictactoe play classic 0 3 1 4 2
  tictactoe play ultimate 0:4 4:0
  tictactoe play quixo 0:right 20:up`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ./config.yml)")

	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(playCmd)
}

// initialize config.
func initConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(baseDir, "./config.yml")
	}

	return config.Load(path)
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
