// crawler is a terminal hero-vs-ogre game: steer the hero onto the ogre to win.
//
// Usage:
//
//	crawler play             - Play in this terminal
//	crawler serve            - Start SSH server for remote play
//	crawler config           - Print the default or effective configuration
//	crawler keys             - Print the effective key bindings
//
// Global flags:
//
//	--config <path>    - Use a custom crawler.yaml
//	--log-file <path>  - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crawler/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crawler",
	Short: "TUI Crawler - Walk the hero onto the ogre",
	Long: `TUI Crawler is a tiny terminal game. Move the hero with WASD or the
arrow keys; touching the ogre wins the encounter.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print configuration
  keys     - Print key bindings

Examples:
  crawler play
  crawler play --backend tcell
  crawler serve --ssh :2222
  crawler config --effective`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom crawler config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}

// openLogger returns a logger writing to --log-file, or one that discards.
// The returned close func is always safe to call.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	logger.SetLevel(log.DebugLevel)
	return logger, func() { f.Close() }, nil
}

// loadConfig loads the layered configuration and logs where it came from.
func loadConfig(logger *log.Logger) (config.CrawlerConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Info("config loaded", "source", source)
	return cfg, nil
}
