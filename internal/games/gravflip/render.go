package gravflip

import (
	"fmt"

	"github.com/vovakirdan/gravflip/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	PlayerChar         = '▲'
	PlayerReversedChar = '▼'
	PlatformChar       = '▀'
	ObstacleChar       = '▓'
	GoalChar           = '♥'
)

// Render draws the current frame into dst, scaling the logical playfield
// to whatever size dst has.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := g.Size()
	vp := core.NewViewport(w, h, dst.Width(), dst.Height())

	if g.round == RoundFrontPage {
		g.renderFrontPage(dst, vp)
		return
	}

	for _, p := range g.platforms {
		dst.DrawRectColor(vp.ToCells(p), PlatformChar, core.ColorPlatform)
	}
	for _, o := range g.obstacles {
		dst.DrawRectColor(vp.ToCells(o.Rect), ObstacleChar, core.ColorObstacle)
	}
	dst.DrawRectColor(vp.ToCells(g.goal), GoalChar, core.ColorGoal)
	g.drawPlayer(dst, vp)

	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorScore)

	switch g.round {
	case RoundGameOver:
		g.drawCenteredMessage(dst, "Game Over! Press R to restart", fmt.Sprintf("Your Score: %d", g.score))
	case RoundWin:
		g.drawCenteredMessage(dst, "You Win! Press N to play again", fmt.Sprintf("Your Score: %d", g.score))
	}
}

func (g *Game) drawPlayer(dst *core.Screen, vp core.Viewport) {
	glyph, color := rune(PlayerChar), core.ColorPlayer
	if g.player.GravityReversed {
		glyph, color = PlayerReversedChar, core.ColorPlayerReversed
	}
	dst.DrawRectColor(vp.ToCells(g.player.Rect), glyph, color)
}

// renderFrontPage draws the title and the start button.
func (g *Game) renderFrontPage(dst *core.Screen, vp core.Viewport) {
	btn := vp.ToCells(g.startButton)

	titleY := max(0, btn.Y-4)
	dst.DrawTextCenteredColor(titleY, Title, core.ColorGoal)
	dst.DrawTextCentered(titleY+1, "Flip gravity on landing to reach the heart")

	color := core.ColorButton
	if g.hover {
		color = core.ColorButtonHover
	}
	// Keep room for the border and label on small terminals
	if btn.H < 3 {
		btn.H = 3
	}
	if btn.W < 9 {
		btn.X -= (9 - btn.W) / 2
		btn.W = 9
	}
	dst.DrawBoxColor(btn, color)
	dst.DrawTextColor(btn.X+(btn.W-5)/2, btn.Y+btn.H/2, "Start", color)

	dst.DrawTextCentered(min(dst.Height()-1, btn.Bottom()+1), "Click Start or press Enter")
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawTextColor(subtitleX, boxY+3, subtitle, core.ColorScore)
}
