package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Track is the scrolling obstacle course: a fixed number of equal-width
// sections, each holding at most one pipe pair. The front section is the
// leftmost. A height of 0 means the section is empty.
type Track struct {
	cfg          config.FlappyTrack
	heights      []int
	offset       float64 // scroll within the leading section, [0, sectionWidth)
	sectionWidth float64
	screenH      int
	rng          *rand.Rand
}

// NewTrack creates an empty track sized for the screen.
// Callers must ensure cfg.Sections >= 2 and screenH > cfg.HeightMargin.
func NewTrack(cfg config.FlappyTrack, screenW, screenH int, rng *rand.Rand) *Track {
	t := &Track{
		cfg:          cfg,
		heights:      make([]int, cfg.Sections),
		sectionWidth: float64(screenW) / float64(cfg.Sections-1),
		screenH:      screenH,
		rng:          rng,
	}
	return t
}

// Reset empties every section and rewinds the scroll.
func (t *Track) Reset() {
	for i := range t.heights {
		t.heights[i] = 0
	}
	t.offset = 0
}

// Advance scrolls the track by dt seconds and returns how many new sections
// were spawned. The offset wraps by subtraction so the remainder carries
// over into the next section.
func (t *Track) Advance(dt float64) int {
	if t.sectionWidth <= 0 {
		return 0
	}
	t.offset += t.cfg.ScrollSpeed * dt

	spawned := 0
	for t.offset >= t.sectionWidth {
		t.offset -= t.sectionWidth
		copy(t.heights, t.heights[1:])
		t.heights[len(t.heights)-1] = t.nextHeight()
		spawned++
	}
	return spawned
}

// nextHeight draws a pipe height. Low pipes are dropped to leave a free pass.
func (t *Track) nextHeight() int {
	h := t.rng.Intn(t.screenH - t.cfg.HeightMargin)
	if h <= t.cfg.FreePassMax {
		h = 0
	}
	return h
}

// Heights returns a copy of the section heights, front first.
func (t *Track) Heights() []int {
	return append([]int(nil), t.heights...)
}

// Offset returns the horizontal scroll within the leading section.
func (t *Track) Offset() float64 {
	return t.offset
}

// SectionWidth returns the width of one section in columns.
func (t *Track) SectionWidth() float64 {
	return t.sectionWidth
}

// PipeRects returns the rectangles of every drawn pipe, lower pipe first for
// each section. Rectangles are not clipped to the screen.
func (t *Track) PipeRects() []core.Rect {
	rects := make([]core.Rect, 0, 2*len(t.heights))
	for i, h := range t.heights {
		if h == 0 {
			continue
		}
		start := float64(i) * t.sectionWidth
		x0 := int(start + float64(t.cfg.PipeOffset) - t.offset)
		x1 := int(start + float64(t.cfg.PipeOffset+t.cfg.PipeWidth) - t.offset)

		rects = append(rects,
			core.RectFromCorners(x0, t.screenH-h, x1, t.screenH),
			core.RectFromCorners(x0, 0, x1, t.screenH-h-t.cfg.Opening),
		)
	}
	return rects
}
