package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var flagDebugLog string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal. X moves first.

Controls:
  Click       - Place the current mark
  Arrows/hjkl - Move the cursor
  Enter/Space - Place at the cursor
  1-9         - Place on a cell (numbered left to right, top to bottom)
  R           - New game
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Examples:
  tictactoe play
  tictactoe play --config ./big-board.yaml
  tictactoe play --debug ./moves.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDebugLog, "debug", "", "Write a debug log of moves to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	var opts []tui.Option
	if flagDebugLog != "" {
		f, openErr := os.OpenFile(flagDebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("open debug log: %w", openErr)
		}
		defer f.Close()

		logger := log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "tictactoe",
		})
		opts = append(opts, tui.WithLogger(logger))
	}

	if err := tui.Run(cfg, rt, opts...); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
