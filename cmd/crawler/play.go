package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crawler/internal/crawler"
	"github.com/vovakirdan/tui-crawler/internal/platform/tcellui"
	"github.com/vovakirdan/tui-crawler/internal/platform/tui"
)

const (
	backendBubbleTea = "bubbletea"
	backendTcell     = "tcell"
)

var (
	flagBackend   string
	flagTickMS    int
	flagStep      int
	flagHaltOnWin bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start an encounter in the current terminal.

Controls:
  W/A/S/D, arrows  - Move the hero
  Q/Esc/Ctrl+C     - Quit

Backends:
  bubbletea  - Bubble Tea program (default)
  tcell      - tcell screen with a fixed ticker

Examples:
  crawler play
  crawler play --backend tcell
  crawler play --tick 30 --step 5
  crawler play --halt-on-win
  crawler play --config ./my-crawler.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", backendBubbleTea, "Frontend: bubbletea or tcell")
	playCmd.Flags().IntVar(&flagTickMS, "tick", 0, "Tick interval in milliseconds (0 = from config)")
	playCmd.Flags().IntVar(&flagStep, "step", 0, "Movement step in pixels (0 = from config)")
	playCmd.Flags().BoolVar(&flagHaltOnWin, "halt-on-win", false, "Stop ticking once the ogre is defeated")
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := openLogger("crawler")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override loaded values
	if cmd.Flags().Changed("tick") {
		cfg.Loop.TickIntervalMS = flagTickMS
	}
	if cmd.Flags().Changed("step") {
		cfg.Movement.Step = flagStep
	}
	if cmd.Flags().Changed("halt-on-win") {
		cfg.Loop.HaltOnWin = flagHaltOnWin
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Warn when the play field will not fit
	rt := cfg.Runtime()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW, needH := rt.Columns(cfg.Surface.Width)+2, rt.Rows(cfg.Surface.Height)+5
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the play field needs %dx%d\n", w, h, needW, needH)
			logger.Warn("terminal too small", "width", w, "height", h, "need_width", needW, "need_height", needH)
		}
	}

	session, err := crawler.NewSession(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}

	var runErr error
	switch flagBackend {
	case backendBubbleTea:
		runErr = tui.Run(session, logger)
	case backendTcell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		runErr = tcellui.Run(ctx, session, logger)
		stop()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (use %s or %s)\n", flagBackend, backendBubbleTea, backendTcell)
		os.Exit(1)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("session ended", "won", session.Won(), "ticks", session.Loop.Ticks())
}
