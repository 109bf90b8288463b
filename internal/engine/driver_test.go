package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// fakeGame records what the driver hands it.
type fakeGame struct {
	accept   bool
	inits    []core.RuntimeConfig
	elapsed  []float64
	inputs   []core.InputFrame
	state    core.GameState
	stopNext bool
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) OnInit(dst *core.Screen, rt core.RuntimeConfig) bool {
	g.inits = append(g.inits, rt)
	return g.accept
}

func (g *fakeGame) OnFrame(dst *core.Screen, elapsed float64, in core.InputFrame) bool {
	g.elapsed = append(g.elapsed, elapsed)
	g.inputs = append(g.inputs, in)
	return !g.stopNext
}

func (g *fakeGame) State() core.GameState { return g.state }

// countingCues counts played sounds.
type countingCues struct {
	flaps, crashes int
}

func (c *countingCues) Flap() { c.flaps++ }
func (c *countingCues) Crash() { c.crashes++ }
func (c *countingCues) Close() {}

func TestDriverInitSeed(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tests := []struct {
		name     string
		seed     int64
		expected int64
	}{
		{"explicit seed kept", 42, 42},
		{"zero seed uses clock", 0, now.UnixNano()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &fakeGame{accept: true}
			rt := core.DefaultConfig()
			rt.Seed = tc.seed

			d := New(g, rt)
			if err := d.Init(now); err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			if got := g.inits[0].Seed; got != tc.expected {
				t.Errorf("seed = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestDriverInitFailure(t *testing.T) {
	d := New(&fakeGame{accept: false}, core.DefaultConfig())

	err := d.Init(time.Now())
	if !errors.Is(err, ErrInitFailed) {
		t.Fatalf("Init() error = %v, expected ErrInitFailed", err)
	}
	if !strings.Contains(err.Error(), "80x48") {
		t.Errorf("error should name the screen size: %v", err)
	}
	if d.Frame(time.Now()) {
		t.Error("Frame() after a failed Init should stop")
	}
}

func TestDriverElapsed(t *testing.T) {
	g := &fakeGame{accept: true}
	start := time.Unix(0, 0)
	d := New(g, core.DefaultConfig(), WithMaxElapsed(100*time.Millisecond))
	if err := d.Init(start); err != nil {
		t.Fatal(err)
	}

	d.Frame(start.Add(20 * time.Millisecond))
	d.Frame(start.Add(50 * time.Millisecond))
	d.Frame(start.Add(5 * time.Second))
	d.Frame(start.Add(4 * time.Second))

	expected := []float64{0.02, 0.03, 0.1, 0}
	for i, want := range expected {
		if diff := g.elapsed[i] - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("frame %d elapsed = %g, expected %g", i, g.elapsed[i], want)
		}
	}
}

func TestDriverZeroMaxElapsedDisablesClamp(t *testing.T) {
	g := &fakeGame{accept: true}
	start := time.Unix(0, 0)
	d := New(g, core.DefaultConfig(), WithMaxElapsed(0))
	if err := d.Init(start); err != nil {
		t.Fatal(err)
	}

	d.Frame(start.Add(time.Second / 60))
	d.Frame(start.Add(2 * time.Second))

	if g.elapsed[0] <= 0 {
		t.Errorf("frame 0 elapsed = %g, expected time to advance", g.elapsed[0])
	}
	if diff := g.elapsed[1] - (2 - 1.0/60); diff > 1e-9 || diff < -1e-9 {
		t.Errorf("frame 1 elapsed = %g, expected the full gap", g.elapsed[1])
	}
}

func TestDriverInputEdges(t *testing.T) {
	g := &fakeGame{accept: true}
	start := time.Unix(0, 0)
	d := New(g, core.DefaultConfig(), WithReleaseAfter(50*time.Millisecond))
	if err := d.Init(start); err != nil {
		t.Fatal(err)
	}

	d.KeyDown(core.ActionFlap, start.Add(time.Millisecond))
	d.KeyDown(core.ActionNone, start.Add(time.Millisecond))
	d.Frame(start.Add(16 * time.Millisecond))
	d.Frame(start.Add(32 * time.Millisecond))
	d.Frame(start.Add(64 * time.Millisecond))

	if !g.inputs[0].Has(core.ActionFlap) {
		t.Error("frame 0 should see the press")
	}
	if k := g.inputs[1].Key(core.ActionFlap); !k.Held || k.Pressed {
		t.Errorf("frame 1 = %+v, expected held", k)
	}
	if !g.inputs[2].Key(core.ActionFlap).Released {
		t.Error("frame 2 should see the synthesized release")
	}
	if _, ok := g.inputs[0].Keys[core.ActionNone]; ok {
		t.Error("ActionNone should never reach the game")
	}
}

func TestDriverQuit(t *testing.T) {
	g := &fakeGame{accept: true}
	now := time.Now()
	d := New(g, core.DefaultConfig())
	if err := d.Init(now); err != nil {
		t.Fatal(err)
	}

	if !d.Frame(now) {
		t.Fatal("Frame() should keep running")
	}
	d.KeyDown(core.ActionQuit, now)
	if d.Frame(now) {
		t.Error("Frame() after quit should stop")
	}
	if len(g.elapsed) != 1 {
		t.Errorf("game ran %d frames, expected 1", len(g.elapsed))
	}

	g2 := &fakeGame{accept: true, stopNext: true}
	d2 := New(g2, core.DefaultConfig())
	if err := d2.Init(now); err != nil {
		t.Fatal(err)
	}
	if d2.Frame(now) {
		t.Error("Frame() should stop when the game does")
	}
}

func TestDriverEventsAndCues(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	cues := &countingCues{}

	g := &fakeGame{accept: true}
	now := time.Unix(0, 0)
	d := New(g, core.DefaultConfig(), WithLogger(logger), WithCues(cues))
	if err := d.Init(now); err != nil {
		t.Fatal(err)
	}

	states := []core.GameState{
		{Attempt: 1},
		{Attempt: 1, Flaps: 1, Score: 1, HighScore: 1},
		{Attempt: 1, Flaps: 2, Score: 2, HighScore: 2},
		{Attempt: 1, Flaps: 2, Score: 2, HighScore: 2, GameOver: true},
		{Attempt: 1, Flaps: 2, Score: 2, HighScore: 2, GameOver: true},
		{Attempt: 2, HighScore: 2},
	}
	for _, s := range states {
		g.state = s
		d.Frame(now)
	}

	if cues.flaps != 2 {
		t.Errorf("flap cues = %d, expected 2", cues.flaps)
	}
	if cues.crashes != 1 {
		t.Errorf("crash cues = %d, expected 1", cues.crashes)
	}
	if d.State() != states[len(states)-1] {
		t.Errorf("State() = %+v, expected the last observed state", d.State())
	}

	out := buf.String()
	for _, want := range []string{"game initialised", "attempt started", "collision", "score=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log should contain %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "attempt started") != 2 {
		t.Errorf("expected two attempt logs:\n%s", out)
	}
}

func TestDriverResize(t *testing.T) {
	g := &fakeGame{accept: true}
	d := New(g, core.DefaultConfig())
	if err := d.Init(time.Now()); err != nil {
		t.Fatal(err)
	}

	if err := d.Resize(80, 48); err != nil || len(g.inits) != 1 {
		t.Errorf("same size should not re-init, inits=%d err=%v", len(g.inits), err)
	}

	if err := d.Resize(120, 40); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if d.Screen().Width() != 120 || d.Screen().Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", d.Screen().Width(), d.Screen().Height())
	}
	last := g.inits[len(g.inits)-1]
	if last.ScreenW != 120 || last.ScreenH != 40 || last.Seed != g.inits[0].Seed {
		t.Errorf("re-init config = %+v", last)
	}

	g.accept = false
	if err := d.Resize(10, 5); !errors.Is(err, ErrInitFailed) {
		t.Errorf("Resize() to a rejected size error = %v, expected ErrInitFailed", err)
	}
}

func TestDriverTickInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
	}

	for _, tc := range tests {
		rt := core.DefaultConfig()
		rt.TickRate = tc.rate
		if got := New(&fakeGame{}, rt).TickInterval(); got != tc.expected {
			t.Errorf("TickInterval() at %d fps = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}

func TestDriverRunsFlappy(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	game := flappy.New(config.VariantFull, "Flappy Bird", cfg)
	cues := &countingCues{}

	rt := core.DefaultConfig()
	rt.Seed = 9
	d := New(game, rt, WithCues(cues))

	start := time.Unix(0, 0)
	if err := d.Init(start); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	// Let the bird fall until it hits the bottom edge.
	now := start
	for i := 0; i < 600 && !d.State().GameOver; i++ {
		now = now.Add(time.Second / 60)
		if !d.Frame(now) {
			t.Fatal("driver stopped early")
		}
	}

	state := d.State()
	if !state.GameOver {
		t.Fatal("falling bird should crash")
	}
	if state.Attempt != 1 || state.Score != 0 {
		t.Errorf("state = %+v", state)
	}
	if cues.crashes != 1 || cues.flaps != 0 {
		t.Errorf("cues = %+v", cues)
	}
	if !strings.Contains(d.Screen().String(), "Attempt: 1") {
		t.Error("screen should show the HUD")
	}
}
