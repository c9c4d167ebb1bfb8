package linker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/linker/internal/core"
	"github.com/vovakirdan/linker/internal/games/linker/sim"
)

// Minimum terminal size for a readable playfield.
const (
	minScreenW = 24
	minScreenH = 10
	hudHeight  = 1
)

// glyph is how a sprite frame is drawn in the terminal.
type glyph struct {
	fill  rune
	color core.Color
}

// Boomerang frames spin through four glyphs.
var boomerangGlyphs = [...]rune{'/', '-', '\\', '|'}

// glyphFor picks a glyph from a sprite's frame name.
func glyphFor(sp sim.Sprite) glyph {
	switch sp.Kind {
	case sim.KindBrick:
		return glyph{'█', core.ColorGray}
	case sim.KindPot:
		return glyph{'o', core.ColorYellow}
	case sim.KindBrokenPot:
		if strings.HasSuffix(sp.ID, "2") {
			return glyph{'▒', core.ColorBrown}
		}
		return glyph{'░', core.ColorBrown}
	case sim.KindBoomerang:
		n, err := strconv.Atoi(strings.TrimPrefix(sp.ID, "boomerang"))
		if err != nil || n < 1 || n > len(boomerangGlyphs) {
			n = 1
		}
		return glyph{boomerangGlyphs[n-1], core.ColorCyan}
	case sim.KindCharacter:
		return glyph{'█', core.ColorBrightGreen}
	}
	return glyph{'?', core.ColorRed}
}

// facingArrow marks which way the character looks.
func facingArrow(f sim.Facing) rune {
	switch f {
	case sim.FacingUp:
		return '▲'
	case sim.FacingLeft:
		return '◀'
	case sim.FacingRight:
		return '▶'
	default:
		return '▼'
	}
}

// viewport maps world pixels onto terminal cells inside the playfield box.
type viewport struct {
	originX, originY int // First inner cell
	cols, rows       int // Inner size in cells
	worldW, worldH   int
}

func newViewport(screenW, screenH int, bounds core.Rect) viewport {
	return viewport{
		originX: 1,
		originY: hudHeight + 1,
		cols:    screenW - 2,
		rows:    screenH - hudHeight - 2,
		worldW:  bounds.W,
		worldH:  bounds.H,
	}
}

// cellRect converts a world rectangle to cells. Every sprite covers at least
// one cell.
func (v viewport) cellRect(r core.Rect) core.Rect {
	x0 := v.originX + r.X*v.cols/v.worldW
	x1 := v.originX + r.Right()*v.cols/v.worldW
	y0 := v.originY + r.Y*v.rows/v.worldH
	y1 := v.originY + r.Bottom()*v.rows/v.worldH
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the HUD, the playfield frame and the draw list.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Failed to start")
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		return
	}
	if g.world == nil {
		return
	}

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)

	frame := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	dst.DrawBox(frame, core.ColorBlue)

	vp := newViewport(dst.Width(), dst.Height(), g.world.Bounds())
	for _, sp := range g.world.DrawList() {
		gl := glyphFor(sp)
		cells := vp.cellRect(sp.Body)
		dst.DrawRect(cells, gl.fill, gl.color)

		if sp.Kind == sim.KindCharacter {
			cx, cy := cells.Center()
			dst.SetColor(cx, cy, facingArrow(g.world.Character().Facing), core.ColorBrightGreen)
		}
	}

	switch {
	case g.world.Halted():
		g.renderBanner(dst, "GAME OVER", "R to restart, Q to quit")
	case g.paused:
		g.renderBanner(dst, "PAUSED", "P to resume")
	case g.bannerTick > 0:
		dst.DrawTextColor((dst.Width()-len(g.world.Room().Name)-4)/2, hudHeight+1,
			"[ "+g.world.Room().Name+" ]", core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	stats := g.world.Stats()
	left := fmt.Sprintf(" Room %s", g.world.Room().Name)
	right := fmt.Sprintf("Pots %d  Throws %d  Tick %d ", stats.PotsBroken, stats.BoomerangsThrown, g.world.Tick())

	dst.DrawTextColor(0, 0, left, core.ColorBrightYellow)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorWhite)
}

func (g *Game) renderBanner(dst *core.Screen, title, hint string) {
	y := dst.Height() / 2
	w := max(len(title), len(hint)) + 4
	box := core.NewRect((dst.Width()-w)/2, y-2, w, 5)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColor((dst.Width()-len(title))/2, y-1, title, core.ColorBrightYellow)
	dst.DrawTextColor((dst.Width()-len(hint))/2, y, hint, core.ColorWhite)
}
