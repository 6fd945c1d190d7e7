package reblhell

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/sim"
)

// hudHeight is the number of rows above the playfield.
const hudHeight = 2

// Render draws the current phase into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	g.renderHUD(dst)

	switch g.world.Phase() {
	case sim.PhaseMenu:
		g.renderMenu(dst)
	case sim.PhaseInGame:
		g.renderField(dst)
		if g.paused {
			renderOverlay(dst, "Paused", "Press P to continue")
		}
	case sim.PhaseGameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Kills: %d  Press R to restart", g.world.Kills()))
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + g.Title()
	if p, err := g.world.PlayerState(); err == nil {
		hud += fmt.Sprintf("  HP %.1f/%.0f", p.Health, p.MaxHealth)
		if p.Health <= 0 {
			hud += " DEAD (R to restart)"
		}
	}
	if g.world.Phase() != sim.PhaseMenu {
		hud += fmt.Sprintf("  Kills: %d  Enemies: %d", g.world.Kills(), len(g.world.Enemies()))
	}
	dst.DrawText(0, 0, hud)

	for x, w := 0, dst.Width(); x < w; x++ {
		dst.Set(x, 1, '─')
	}
}

// renderMenu draws the title and the play button in its interaction color.
func (g *Game) renderMenu(dst *core.Screen) {
	buttons := g.world.Buttons()
	if len(buttons) == 0 {
		return
	}
	b := buttons[0]
	c := b.Interaction.Color()

	title := "R E B L H E L L"
	drawCentered(dst, b.Bounds.Y-2, title, core.ColorBrightRed)

	dst.DrawBox(b.Bounds, c)
	lx := b.Bounds.X + (b.Bounds.W-len(b.Label))/2
	dst.DrawTextColored(lx, b.Bounds.Y+1, b.Label, c)

	drawCentered(dst, b.Bounds.Bottom()+1, "Enter or click to play", core.ColorGray)
}

// renderField draws every sprite relative to the camera. The camera sits
// at the centre of the playfield and world y grows upward.
func (g *Game) renderField(dst *core.Screen) {
	cam := g.world.Camera().Position
	cw, ch := g.cfg.Render.CellWidth, g.cfg.Render.CellHeight
	fieldH := dst.Height() - hudHeight
	cx := float64(dst.Width()) / 2
	cy := float64(hudHeight) + float64(fieldH)/2

	for _, d := range g.world.Drawables() {
		sprite, ok := g.loader.Get(d.Sprite.Handle)
		if !ok {
			continue
		}
		sx := cx + (d.Position.X-cam.X)/cw
		sy := cy - (d.Position.Y-cam.Y)/ch
		rx := d.Sprite.Size / 2 / cw
		ry := d.Sprite.Size / 2 / ch
		fillEllipse(dst, sx, sy, rx, ry, sprite.Glyph, sprite.Color)
	}
}

// fillEllipse fills the cells whose centres fall inside the ellipse. Sprites
// smaller than a cell still occupy the cell under their centre.
func fillEllipse(dst *core.Screen, sx, sy, rx, ry float64, glyph rune, c core.Color) {
	col := int(math.Floor(sx))
	row := int(math.Floor(sy))
	if rx < 0.5 || ry < 0.5 {
		setField(dst, col, row, glyph, c)
		return
	}
	for y := int(math.Floor(sy - ry)); y <= int(math.Ceil(sy+ry)); y++ {
		for x := int(math.Floor(sx - rx)); x <= int(math.Ceil(sx+rx)); x++ {
			dx := (float64(x) + 0.5 - sx) / rx
			dy := (float64(y) + 0.5 - sy) / ry
			if dx*dx+dy*dy <= 1 {
				setField(dst, x, y, glyph, c)
			}
		}
	}
}

// setField writes a cell if it lies inside the playfield.
func setField(dst *core.Screen, x, y int, r rune, c core.Color) {
	if x < 0 || x >= dst.Width() || y < hudHeight || y >= dst.Height() {
		return
	}
	dst.SetColored(x, y, r, c)
}

// renderOverlay draws a centred two-line message box.
func renderOverlay(dst *core.Screen, title, subtitle string) {
	w := max(len(title), len(subtitle)) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), w, 4)
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		dst.DrawTextColored(box.X+1, y, strings.Repeat(" ", max(w-2, 0)), core.ColorDefault)
	}
	dst.DrawBox(box, core.ColorWhite)
	drawCentered(dst, box.Y+1, title, core.ColorBrightWhite)
	drawCentered(dst, box.Y+2, subtitle, core.ColorGray)
}

func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(x, y, text, c)
}
