package maze

import (
	"fmt"

	"github.com/chewxy/math32"

	platformcore "github.com/vovakirdan/mazecaster/internal/core"
	"github.com/vovakirdan/mazecaster/internal/games/maze/core"
)

const (
	solid  = '█'
	player = '●'
	facing = '•'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.state == nil {
		msg := "No level loaded"
		if g.loadErr != nil {
			msg = g.loadErr.Error()
		}
		g.renderOverlay(dst, "Cannot start maze", msg)
		return
	}

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	top := 0
	if g.cfg.Render.ShowHUD {
		g.renderHUD(dst)
		top = 1
	}
	view := platformcore.NewRect(0, top, dst.Width(), dst.Height()-top)

	switch g.state.View() {
	case core.ViewMapOverlay:
		g.renderOverhead(dst, view)
	case core.ViewVictory:
		g.renderFirstPerson(dst, view)
		g.renderOverlay(dst, "You found the way out!",
			fmt.Sprintf("Score: %d  (R: again, Q: quit)", g.score))
	case core.ViewFooled:
		g.renderFirstPerson(dst, view)
		dst.SetPen(platformcore.ColorWarn)
		dst.DrawTextCentered(view.Y+1, " It was only a mirage! ")
	default:
		g.renderFirstPerson(dst, view)
		dst.SetPen(platformcore.ColorText)
		dst.DrawTextCentered(view.Y+1, " Find the way out! ")
	}

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	seconds := float64(g.tick) / float64(platformcore.Max(g.clockRate(), 1))
	hud := fmt.Sprintf(" %s | %s | %.1fs", g.Title(), g.level.Name, seconds)
	if g.variant == core.VariantClassic {
		hud += " | M: Map"
	}
	hud += " | P: Pause | R: Restart"

	dst.SetPen(platformcore.ColorText)
	dst.DrawText(0, 0, hud)
}

// renderFirstPerson draws sky, ground and one wall strip per column.
func (g *Game) renderFirstPerson(dst *platformcore.Screen, view platformcore.Rect) {
	horizon := view.Y + view.H/2

	dst.SetPen(platformcore.ColorAccent)
	dst.DrawRect(platformcore.NewRect(view.X, view.Y, view.W, horizon-view.Y), solid)
	dst.SetPen(platformcore.ColorLight)
	dst.DrawRect(platformcore.NewRect(view.X, horizon, view.W, view.Bottom()-horizon), solid)

	g.strips = g.state.Strips(view.H, g.strips)
	for x, s := range g.strips {
		if x >= view.W {
			break
		}
		y0 := platformcore.Max(view.Y+s.Top, view.Y)
		y1 := platformcore.Min(view.Y+s.Bottom(), view.Bottom())
		if y1 <= y0 {
			continue
		}

		switch s.Terrain {
		case core.TerrainDoorway:
			dst.DrawDashedVLine(view.X+x, y0, y1-y0, solid, platformcore.ColorMid, platformcore.ColorAccent)
		case core.TerrainOpen:
			panic(fmt.Sprintf("maze: column %d has open terrain", x))
		default:
			// Mirages are drawn exactly like walls.
			if s.Orientation == core.Vertical {
				dst.SetPen(platformcore.ColorDark)
			} else {
				dst.SetPen(platformcore.ColorMid)
			}
			dst.DrawVLine(view.X+x, y0, y1-y0, solid)
		}
	}
}

// renderOverhead draws the grid with the player marker and facing dot.
// Cells are two columns wide when the map fits, to look square.
func (g *Game) renderOverhead(dst *platformcore.Screen, view platformcore.Rect) {
	o := g.state.Overhead()
	tiles := o.Tiles

	dst.SetPen(platformcore.ColorDark)
	dst.DrawRect(view, solid)

	cellW := 2
	if tiles.Width()*cellW > view.W {
		cellW = 1
	}
	area := view.Centered(tiles.Width()*cellW, tiles.Height())

	for row := 0; row < tiles.Height(); row++ {
		for col := 0; col < tiles.Width(); col++ {
			if tiles.At(col, row) == core.TerrainWall {
				dst.SetPen(platformcore.ColorMid)
			} else {
				dst.SetPen(platformcore.ColorLight)
			}
			dst.DrawHLine(area.X+col*cellW, area.Y+row, cellW, solid)
		}
	}

	toScreen := func(x, y float32) (int, int) {
		return area.X + int(math32.Floor(x*float32(cellW))), area.Y + int(math32.Floor(y))
	}

	dst.SetPen(platformcore.ColorAccent)
	fx, fy := toScreen(o.FacingX, o.FacingY)
	dst.Set(fx, fy, facing)
	px, py := toScreen(o.Pose.X, o.Pose.Y)
	dst.Set(px, py, player)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := platformcore.Max(len([]rune(line1)), len([]rune(line2))) + 4
	box := platformcore.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w, 5)

	dst.SetPen(platformcore.ColorText)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
