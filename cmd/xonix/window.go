package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/xonix/internal/games/xonix"
	"github.com/vovakirdan/xonix/internal/platform/window"
	"github.com/vovakirdan/xonix/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play the given mode (default: xonix).

Each tile is drawn as a square of tile_size pixels from the rules. The
player only moves while a direction key is held.

Controls:
  Arrows/WASD  - Move while held
  P            - Pause
  R            - Restart (after the run ends)
  Esc/Q        - Quit

Examples:
  xonix window
  xonix window xonix_siege --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := modeArg(args)
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}
	xg, ok := game.(*xonix.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot run in a window", gameID)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sink, closeSink := eventSink()
	defer closeSink()

	return window.Run(xg, store, runtimeConfig(),
		window.WithEventSink(sink), window.WithPlayer(playerName()))
}
