package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/xonix/internal/platform/term"
	"github.com/vovakirdan/xonix/internal/platform/tui"
	"github.com/vovakirdan/xonix/internal/registry"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing the given mode (default: xonix) in the terminal.

The player keeps moving in the last direction pressed.

Controls:
  Arrows/WASD/HJKL - Move
  Space            - Stop
  P/Esc            - Pause
  R                - Restart (after the run ends)
  Ctrl+S           - Screenshot (tui backend)
  Q/Ctrl+C         - Quit

Backends:
  tui    - Bubble Tea, fixed tick (default)
  tcell  - Direct terminal drawing with a measured frame clock

Examples:
  xonix play
  xonix play xonix_siege
  xonix play --difficulty easy --fit
  xonix play --backend tcell --config ./my-xonix.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Terminal backend: tui or tcell")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := modeArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'xonix list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sink, closeSink := eventSink()
	defer closeSink()

	cfg := runtimeConfig()
	switch flagBackend {
	case "tui":
		return tui.Run(game, store, cfg,
			tui.WithEventSink(sink), tui.WithPlayer(playerName()))
	case "tcell":
		return term.Run(game, store, cfg,
			term.WithEventSink(sink), term.WithPlayer(playerName()))
	default:
		return fmt.Errorf("unknown backend %q (want tui or tcell)", flagBackend)
	}
}
