package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crawler/internal/config"
	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/crawler"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print key bindings",
	Long:  `Print the movement keys from the effective configuration and the reserved quit keys.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(log.New(io.Discard))
		if err != nil {
			return err
		}
		return printKeys(cmd.OutOrStdout(), cfg)
	},
}

func printKeys(w io.Writer, cfg config.CrawlerConfig) error {
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}
	table := crawler.KeyTable(bindings)
	for _, dir := range core.Directions {
		fmt.Fprintf(w, "%-6s %s\n", dir, strings.Join(table.Keys(dir), ", "))
	}
	fmt.Fprintf(w, "%-6s %s\n", "quit", "q, esc, ctrl+c")
	fmt.Fprintf(w, "%-6s %d\n", "step", cfg.Movement.Step)
	return nil
}
