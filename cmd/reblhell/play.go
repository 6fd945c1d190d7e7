package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/games/reblhell"
	"github.com/vovakirdan/reblhell/internal/platform/tui"
	"github.com/vovakirdan/reblhell/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: reblhell).

Controls:
  Arrows/WASD  - Move
  Enter/Click  - Press Play
  P/Esc        - Pause
  R            - Restart (after death)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer, weaker enemies
  normal - Config values
  hard   - More enemies with double health and damage
  fixed  - Config values, no scaling

Examples:
  reblhell play
  reblhell play reblhell_hardcore
  reblhell play --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := string(reblhell.VariantStandard)
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'reblhell list' to see available modes.")
		os.Exit(1)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		fail(err)
	}

	rc := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     s.seed,
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	if err := play(gameID, rc, s); err != nil {
		fail(err)
	}
}

// play runs one game in the terminal, logging to the log file.
func play(gameID string, rc core.RuntimeConfig, s settings) error {
	f, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer f.Close()

	logger, err := newLogger(f, s.logLevel)
	if err != nil {
		return err
	}

	reblhell.SetConfig(s.cfg)
	reblhell.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	hold := time.Duration(s.cfg.Input.HoldMillis) * time.Millisecond
	if err := tui.Run(game, rc, tui.Options{HoldWindow: hold, Logger: logger}); err != nil {
		return fmt.Errorf("run %s: %w", gameID, err)
	}
	return nil
}
