// xonix is the classic territory-capture game for the terminal, a desktop
// window and SSH.
//
// Usage:
//
//	xonix list              - List game modes
//	xonix play [mode]       - Play a mode in the terminal (default: xonix)
//	xonix menu              - Pick modes and difficulty interactively
//	xonix window [mode]     - Play in a desktop window
//	xonix serve             - Start SSH server for remote play
//	xonix scores [mode]     - Show high scores and stats
//	xonix rules             - Print the effective rules as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.xonix/scores.db)
//	--config <path>       - Rules YAML file
//	--difficulty <name>   - Preset: easy, normal, hard
//	--log-file <path>     - Write logs here while a game owns the terminal
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/xonix/internal/config"
	"github.com/vovakirdan/xonix/internal/core"
	"github.com/vovakirdan/xonix/internal/games/xonix"
	"github.com/vovakirdan/xonix/internal/sound"
	"github.com/vovakirdan/xonix/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagSound      bool
	flagFit        bool
	flagVerbose    bool

	difficulty config.DifficultyPreset
	logFile    *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "xonix",
	Short: "Xonix - capture territory, dodge the balls",
	Long: `Xonix is the classic territory-capture game. Leave the safe border,
draw a trail across open space and close it to claim the area you cut off.
Balls bouncing through the open space destroy unfinished trails.

Available commands:
  list     - Show game modes
  play     - Play in the terminal
  menu     - Interactive mode and difficulty picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  rules    - Print the effective rules

Examples:
  xonix play
  xonix play xonix_siege --difficulty hard
  xonix play --fit --backend tcell
  xonix window
  xonix serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.xonix/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagSound, "sound", false, "Play sound effects")
	pf.BoolVar(&flagFit, "fit", false, "Size the grid to the terminal")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(rulesCmd)
}

// setup validates global flags, installs the default logger and hands the
// rule settings to the game package.
func setup(_ *cobra.Command, _ []string) error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	difficulty = preset

	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}
	logger := log.NewWithOptions(out, log.Options{ReportTimestamp: true, Prefix: "xonix"})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	xonix.SetConfigPath(flagConfig)
	xonix.SetDifficultyPreset(difficulty)
	xonix.SetFitScreen(flagFit)
	return nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// eventSink returns the sound player as an event sink plus its cleanup, or
// a nil sink when sound is off or the audio device is unavailable.
func eventSink() (core.EventSink, func()) {
	cfg, err := config.LoadXonix(flagConfig)
	if err != nil {
		cfg = config.DefaultXonixConfig()
	}
	if !flagSound && !cfg.Sound.Enabled {
		return nil, func() {}
	}

	p := sound.NewPlayer(cfg.Sound.Volume, log.Default())
	if err := p.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		return nil, func() {}
	}
	return p, p.Close
}

// playerName is the local name stored with runs.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// modeArg returns the mode named on the command line, or the classic mode.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "xonix"
}
