package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/platform/tui"
)

// runMenu shows the mode picker and plays the selection.
func runMenu(cmd *cobra.Command, _ []string) {
	s, err := loadSettings(cmd)
	if err != nil {
		fail(err)
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     s.seed,
	}

	result, err := tui.RunMenu(rc)
	if err != nil {
		fail(err)
	}
	if result.Quit {
		return
	}

	if err := play(result.GameID, result.Config, s); err != nil {
		fail(err)
	}
}
