package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/food"
	"github.com/vovakirdan/snake-arena/internal/level"
)

// configHint names the user config file that overrides the grid size.
const configHint = "~/.snake/configs/snake.yaml"

const (
	hudHeight   = 2
	lightRadius = 6 // cells visible around the head on dark levels
)

type glyph struct {
	r rune
	c core.Color
}

var foodGlyphs = map[food.Kind]glyph{
	food.Normal:     {'*', core.ColorBrightRed},
	food.Golden:     {'$', core.ColorBrightYellow},
	food.Bomb:       {'!', core.ColorRed},
	food.SpeedBoost: {'>', core.ColorBrightCyan},
	food.SlowTime:   {'~', core.ColorBrightBlue},
}

var causeText = map[Cause]string{
	CauseWall:     "Hit the wall",
	CauseSelf:     "Bit yourself",
	CauseObstacle: "Hit an obstacle",
	CauseEnemy:    "Ran into the enemy",
	CauseTimeUp:   "Time's up",
}

// boardSize returns the terminal cells needed to draw grid with the HUD.
func boardSize(g core.Grid) (w, h int) {
	return g.MaxX() + 2, g.MaxY() + 2 + hudHeight
}

// Render draws the match into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	if s.loop == nil {
		renderOverlay(dst, "Cannot start match", fmt.Sprint(s.err))
		return
	}
	w, h := boardSize(s.loop.Grid())
	if dst.Width() < w || dst.Height() < h {
		renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()),
			"or set a smaller grid in "+configHint)
		return
	}

	offX := (dst.Width() - w) / 2
	s.renderHUD(dst)
	s.renderBoard(dst, offX+1, hudHeight+1)
	dst.DrawBoxColored(core.NewRect(offX, hudHeight, w, h-hudHeight), core.ColorGray)

	l := s.loop
	switch {
	case l.Outcome() == OutcomeVictory:
		renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d   R to restart", l.Score().Score()))
	case l.Outcome() == OutcomePlayerDied:
		renderOverlay(dst, "Game Over: "+causeText[l.Cause()], fmt.Sprintf("Score: %d   R to restart", l.Score().Score()))
	case s.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (s *Session) renderHUD(dst *core.Screen) {
	snap := s.loop.Snapshot()
	lv := s.loop.Level()

	top := fmt.Sprintf(" %s  Score: %d  Best: %d", s.Title(), snap.Score, snap.HighScore)
	if snap.Multiplier > 1 {
		top += fmt.Sprintf("  Combo x%d", snap.Multiplier)
	}
	dst.DrawTextColored(0, 0, top, core.ColorBrightWhite)

	bottom := fmt.Sprintf(" Lv %d/%d %s  Speed: %dms", lv.Number, level.Count, lv.Name, int(snap.EffectiveMS))
	if snap.Timed {
		bottom += fmt.Sprintf("  Time: %ds", int((snap.TimeLeft+time.Second-1)/time.Second))
	}
	if s.mode == config.ModeTimeAttack {
		bottom += fmt.Sprintf("  Food: %d", snap.FoodEaten)
	}
	if snap.Effects > 0 {
		bottom += fmt.Sprintf("  Effects: %d", snap.Effects)
	}
	dst.DrawTextColored(0, 1, bottom, core.ColorGray)
}

// renderBoard draws the grid with its top-left cell at (ox, oy).
func (s *Session) renderBoard(dst *core.Screen, ox, oy int) {
	l := s.loop
	lv := l.Level()
	head := l.Player().Head()

	visible := func(p core.Point) bool {
		if !lv.DarkMode {
			return true
		}
		dx, dy := p.X-head.X, p.Y-head.Y
		return dx*dx+dy*dy <= lightRadius*lightRadius
	}
	put := func(p core.Point, g glyph) {
		if l.Grid().InBounds(p) && visible(p) {
			dst.SetColored(ox+p.X, oy+p.Y, g.r, g.c)
		}
	}

	for _, p := range lv.StaticObstacles() {
		put(p, glyph{'#', core.ColorGray})
	}
	for _, m := range lv.MovingObstacles() {
		put(m.Pos, glyph{'%', core.ColorOrange})
	}
	for _, b := range lv.BossBlocks() {
		for _, p := range b.Cells() {
			put(p, glyph{'█', core.ColorRed})
		}
	}
	for _, p := range lv.PortalCells() {
		put(p, glyph{'O', core.ColorBrightMagenta})
	}
	for _, item := range l.Food() {
		put(item.Pos, foodGlyphs[item.Kind])
	}

	if e := l.Enemy(); e != nil && e.Alive() {
		for i, p := range e.Body() {
			g := glyph{'x', core.ColorMagenta}
			if i == 0 {
				g = glyph{'&', core.ColorBrightMagenta}
			}
			put(p, g)
		}
	}
	for i, p := range l.Player().Body() {
		g := glyph{'o', core.ColorGreen}
		if i == 0 {
			g = glyph{'@', core.ColorBrightGreen}
		}
		put(p, g)
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	width += 4
	height := 2*len(lines) + 1
	r := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)
	dst.DrawRect(r, ' ')
	dst.DrawBoxColored(r, core.ColorBrightWhite)
	for i, line := range lines {
		dst.DrawTextCentered(r.Y+1+2*i, line)
	}
}
