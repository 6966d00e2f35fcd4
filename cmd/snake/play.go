package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Steer
  P/Esc        - Pause
  R            - Restart (after game over)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

The board config is read from --config, then ~/.snake/config.yaml, then
./configs/snake.yaml, falling back to the built-in 11x11 board.

Logs are discarded while playing unless --log-file is set.

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-board.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	// The alt-screen owns the terminal, so logs only go to a file
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("config load failed", "error", err)
		return err
	}
	logger.Debug("config loaded", "source", source)

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.FrameRate = flagFPS
	rc.Seed = flagSeed

	if err := tui.Run(cfg, rc, logger); err != nil {
		logger.Error("game loop failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
