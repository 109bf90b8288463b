package flappy

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters and colors for rendering
const (
	PipeChar  = '█'
	PipeColor = core.ColorGreen
	BirdColor = core.ColorBrightYellow
)

// birdX returns the fixed column of the bird's left edge.
func (g *Game) birdX() int {
	return int(float64(g.screenW) / 3.0)
}

// drawTrack fills every pipe of the track.
func (g *Game) drawTrack(dst *core.Screen) {
	for _, r := range g.track.PipeRects() {
		dst.FillRect(r.X, r.Y, r.Right(), r.Bottom(), PipeChar, PipeColor)
	}
}

// drawBird draws the two-row sprite at the bird's column.
func (g *Game) drawBird(dst *core.Screen) {
	sprite := g.bird.Sprite()
	x := g.birdX()
	dst.DrawTextColored(x, int(g.bird.Position), sprite[0], BirdColor)
	dst.DrawTextColored(x, int(g.bird.Position+1), sprite[1], BirdColor)
}

// drawHUD writes the attempt counter and, when scoring, the scores.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(1, 1, fmt.Sprintf("Attempt: %d", g.attempt))
	if !g.cfg.Scoring.Enabled {
		return
	}
	dst.DrawText(1, 2, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(1, 3, fmt.Sprintf("High Score: %d", g.highScore))
}

// drawGameOver overlays the crash message on the frozen last frame.
func (g *Game) drawGameOver(dst *core.Screen) {
	prompt := fmt.Sprintf("Press %s to restart", keyLabel(g.cfg.Input.FlapKeys))
	if g.cfg.Scoring.Enabled {
		prompt = fmt.Sprintf("Score: %d  |  %s", g.score, prompt)
	}
	drawCenteredMessage(dst, "GAME OVER", prompt)
}

// drawPaused overlays the pause message.
func (g *Game) drawPaused(dst *core.Screen) {
	drawCenteredMessage(dst, "PAUSED", "Press P to resume")
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, core.Blank, core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// keyLabel names the first flap key for prompts.
func keyLabel(keys []string) string {
	if len(keys) == 0 {
		return "flap"
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}
