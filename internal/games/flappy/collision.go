package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// point is a screen cell.
type point struct{ x, y int }

// samplePoints returns the four corners of the bird's hitbox: the left and
// right sample columns on the sprite's two rows.
func (g *Game) samplePoints() [4]point {
	x := g.birdX()
	top := int(g.bird.Position)
	bottom := int(g.bird.Position + 1)
	right := x + g.cfg.Bird.HitboxWidth

	return [4]point{
		{x, top},
		{x, bottom},
		{right, top},
		{right, bottom},
	}
}

// outOfBounds reports whether the bird is inside the top or bottom margin.
func (g *Game) outOfBounds() bool {
	margin := g.cfg.Collision.EdgeMargin
	return g.bird.Position < margin || g.bird.Position > float64(g.screenH)-margin
}

// detectCollision checks the bird against the screen edges and whatever the
// configured mode considers solid. In buffer mode it must run after the
// obstacles are drawn and before the bird and HUD are.
func (g *Game) detectCollision(dst *core.Screen) bool {
	if g.outOfBounds() {
		return true
	}

	points := g.samplePoints()
	if g.cfg.Collision.Mode == config.CollisionGeometry {
		if !g.cfg.Track.Enabled {
			return false
		}
		return hitsRects(points, g.track.PipeRects())
	}
	return hitsBuffer(points, dst)
}

// hitsBuffer reports whether any sample point lands on a drawn cell.
func hitsBuffer(points [4]point, dst *core.Screen) bool {
	for _, p := range points {
		if dst.Occupied(p.x, p.y) {
			return true
		}
	}
	return false
}

// hitsRects reports whether any sample point lies inside a pipe.
func hitsRects(points [4]point, rects []core.Rect) bool {
	for _, r := range rects {
		for _, p := range points {
			if r.Contains(p.x, p.y) {
				return true
			}
		}
	}
	return false
}
