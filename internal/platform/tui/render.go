package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/reblhell/internal/core"
)

// palette maps screen colours to terminal colours. Sprites use the bright
// variants, so those are bold.
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	core.ColorBrightBlue:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := palette[c]; ok {
		return st
	}
	return palette[core.ColorDefault]
}

// RenderScreen draws the cell buffer row by row. Each run of equally
// coloured cells is styled once.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run = run[:0]
		runColor := s.GetCell(0, y).Color
		for x, w := 0, s.Width(); x < w; x++ {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(string(run)))
				run = run[:0]
				runColor = cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleFor(runColor).Render(string(run)))
		}
	}
	return sb.String()
}

// renderHealth draws the player's health bar below the field. It is empty
// while no player is alive to report health.
func renderHealth(st core.GameState, bar progress.Model) string {
	if st.MaxHealth <= 0 {
		return ""
	}
	ratio := core.ClampF(st.Health/st.MaxHealth, 0, 1)
	line := fmt.Sprintf("%s %s %4.1f", labelStyle.Render("HP"), bar.ViewAs(ratio), st.Health)
	if st.Paused {
		line += "  " + pausedStyle.Render("PAUSED")
	}
	return line
}
