package invaders

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Glyphs for rendering.
const (
	LifeGlyph       = '▲'
	ProjectileGlyph = '│'
	DiagLeftGlyph   = '╲'
	DiagRightGlyph  = '╱'
	FlashGlyph      = '░'
	BreachGlyph     = '▀'
	NukeLabel       = "[NUKE]"
	RestartLabel    = "Tap to Restart"
)

var (
	shipTop      = []rune(" ▄█▄ ")
	shipBottom   = []rune("▟███▙")
	enemyFrames  = [][]rune{[]rune("◥█◤"), []rune("▜█▛")}
	explosionSeq = []rune{'✶', '*', '·'}
)

func waveLabel(wave int) string {
	return fmt.Sprintf("WAVE %d", wave)
}

func bonusLabel(bonus int) string {
	return fmt.Sprintf("+%d WAVE BONUS!", bonus)
}

// nukeRect is the tappable HUD nuke button.
func (g *Game) nukeRect() core.Rect {
	return core.NewRect(g.runtime.ScreenW-len(NukeLabel)-1, 0, len(NukeLabel), 1)
}

// restartRect is the tappable area around the restart prompt, padded so a
// rough tap still counts.
func (g *Game) restartRect() core.Rect {
	w := len(RestartLabel) + 6
	return core.NewRect((g.runtime.ScreenW-w)/2, g.restartRow()-1, w, 3)
}

func (g *Game) restartRow() int {
	return g.runtime.ScreenH/2 + 3
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	dy := 0
	if g.tick < g.shakeUntil && g.tick%2 == 1 {
		dy = 1
	}

	g.drawField(dst, dy)
	g.drawEffects(dst, dy)
	g.drawHUD(dst)

	switch {
	case g.match.GameOver:
		g.drawGameOver(dst)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to continue")
	}
}

// drawField draws every token, clipping anything that strays onto the HUD row.
func (g *Game) drawField(dst *core.Screen, dy int) {
	put := func(x, y int, r rune, c core.Color) {
		if y+dy >= g.fieldTop {
			dst.SetColor(x, y+dy, r, c)
		}
	}

	g.arena.Each(CategoryEnemy, func(t *Token) {
		frame := enemyFrames[((g.tick-t.Born)/g.ticks(0.5))%len(enemyFrames)]
		x0, y0 := topLeft(t)
		for i, r := range frame {
			put(x0+i, y0, r, core.ColorShipAccent)
		}
	})

	g.arena.Each(CategoryProjectile, func(t *Token) {
		x, y := t.Pos.Cell()
		glyph := ProjectileGlyph
		switch {
		case t.Vel.X < 0:
			glyph = DiagLeftGlyph
		case t.Vel.X > 0:
			glyph = DiagRightGlyph
		}
		put(x, y, glyph, core.ColorBullet)
	})

	g.arena.Each(CategoryPickup, func(t *Token) {
		x, y := t.Pos.Cell()
		put(x, y, t.PowerUp.Glyph(), t.PowerUp.Color())
	})

	if ship, ok := g.arena.Get(g.player); ok {
		g.drawShip(put, ship)
	}
}

// drawShip draws the ship tinted by the active power-up. While invulnerable it
// blinks between its colors and gray.
func (g *Game) drawShip(put func(x, y int, r rune, c core.Color), ship *Token) {
	base, accent := core.ColorShipBase, core.ColorShipAccent
	if g.match.PowerUp != PowerUpNone && g.match.PowerUp != PowerUpShield {
		base, accent = g.match.PowerUp.Color(), g.match.PowerUp.Color()
	}
	if g.match.Invulnerable && (g.tick/g.ticks(0.1))%2 == 0 {
		base, accent = core.ColorGray, core.ColorGray
	}

	x0, y0 := topLeft(ship)
	for i, r := range shipTop {
		if r != ' ' {
			put(x0+i, y0, r, accent)
		}
	}
	for i, r := range shipBottom {
		put(x0+i, y0+1, r, base)
	}

	switch g.match.PowerUp {
	case PowerUpSpeedBoost:
		put(x0-1, y0+1, '◂', core.ColorYellow)
		put(x0+len(shipBottom), y0+1, '▸', core.ColorYellow)
	case PowerUpShield:
		for y := y0; y <= y0+1; y++ {
			put(x0-1, y, '(', core.ColorGreen)
			put(x0+len(shipBottom), y, ')', core.ColorGreen)
		}
	}

	if g.fx.Active(FxHitFlash) {
		for i := range shipBottom {
			put(x0+i, y0+1, shipBottom[i], core.ColorRed)
		}
	}
}

func topLeft(t *Token) (int, int) {
	return int(math.Floor(t.Pos.X - t.W/2)), int(math.Floor(t.Pos.Y - t.H/2))
}

func (g *Game) drawEffects(dst *core.Screen, dy int) {
	for _, e := range g.fx.list {
		switch e.Kind {
		case FxExplosion:
			g.drawExplosion(dst, e, dy)
		case FxBreach:
			dst.DrawHLine(0, dst.Height()-1, dst.Width(), BreachGlyph)
			for x := 0; x < dst.Width(); x++ {
				dst.Tint(x, dst.Height()-1, core.ColorRed)
			}
		case FxNukeFlash:
			for y := g.fieldTop; y < dst.Height(); y++ {
				for x := 0; x < dst.Width(); x++ {
					if dst.Get(x, y) == ' ' {
						dst.SetColor(x, y, FlashGlyph, core.ColorHighlight)
					}
				}
			}
		case FxBanner:
			mid := g.fieldTop + g.fieldH/2
			dst.DrawTextCenteredColor(mid-1, e.Text, core.ColorScore)
			dst.DrawTextCenteredColor(mid+1, e.Sub, core.ColorPowerUp)
		case FxPowerUpText:
			text := e.Text
			if e.Sub != "" {
				text += " " + e.Sub
			}
			dst.DrawTextCenteredColor(g.fieldTop+2, text, core.ColorPowerUp)
		}
	}
}

func (g *Game) drawExplosion(dst *core.Screen, e Effect, dy int) {
	p := e.progress(g.tick)
	stage := int(p * float64(len(explosionSeq)))
	if stage >= len(explosionSeq) {
		stage = len(explosionSeq) - 1
	}
	colors := []core.Color{core.ColorBrightYellow, core.ColorOrange, core.ColorRed}
	x, y := e.Pos.Cell()
	y += dy
	if y < g.fieldTop {
		return
	}
	glyph, color := explosionSeq[stage], colors[stage]

	dst.SetColor(x, y, glyph, color)
	if stage > 0 {
		for _, dx := range []int{-2, -1, 1, 2} {
			dst.SetColor(x+dx, y, '·', color)
		}
	}
}

// drawHUD draws score, active power-up, wave, lives and the nuke button on row 0.
func (g *Game) drawHUD(dst *core.Screen) {
	w := dst.Width()
	dst.DrawHLine(0, 0, w, ' ')

	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE: %d", g.match.Score), core.ColorScore)

	if g.match.PowerUp != PowerUpNone {
		label := fmt.Sprintf("%s %ds", g.match.PowerUp, g.PowerUpSecondsLeft())
		dst.DrawTextColor(15, 0, label, g.match.PowerUp.Color())
	}

	dst.DrawTextCenteredColor(0, waveLabel(g.match.Wave), core.ColorScore)

	nuke := g.nukeRect()
	lives := strings.Repeat(string(LifeGlyph), g.match.Lives)
	dst.DrawTextColor(nuke.X-len([]rune(lives))-1, 0, lives, core.ColorShipBase)

	color := core.ColorGray
	if g.match.NukeAvailable {
		color = core.ColorPowerUp
		if (g.tick/g.ticks(0.2))%2 == 0 {
			color = core.ColorHighlight
		}
	}
	dst.DrawTextColor(nuke.X, nuke.Y, NukeLabel, color)
}

// drawGameOver shows the final score and restart prompt after a short delay.
func (g *Game) drawGameOver(dst *core.Screen) {
	if g.tick-g.match.EndTick < g.ticks(gameOverFadeIn) {
		return
	}
	mid := dst.Height() / 2
	dst.DrawTextCenteredColor(mid-1, "GAME OVER", core.ColorScore)
	dst.DrawTextCenteredColor(mid+1, fmt.Sprintf("Final Score: %d", g.match.Score), core.ColorScore)
	dst.DrawTextCenteredColor(g.restartRow(), RestartLabel, core.ColorHighlight)
	dst.DrawTextCenteredColor(g.restartRow()+2, "R restart · B menu · Q quit", core.ColorGray)
}

// drawCenteredMessage draws a boxed two-line message in the center of the field.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len([]rune(subtitle))) + 6
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColor(core.NewRect(boxX, boxY, boxW, boxH), core.ColorShipAccent)
	dst.DrawTextCenteredColor(boxY+1, title, core.ColorHighlight)
	dst.DrawTextCenteredColor(boxY+3, subtitle, core.ColorWhite)
}
