// Package tcellui runs a game driver directly on a tcell screen.
package tcellui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Options control how the game is presented.
type Options struct {
	Keys engine.KeyMap
	Fit  bool // Resize the game to the terminal
}

var colors = map[core.Color]tcell.Color{
	core.ColorDefault:      tcell.ColorDefault,
	core.ColorRed:          tcell.ColorMaroon,
	core.ColorGreen:        tcell.ColorGreen,
	core.ColorYellow:       tcell.ColorOlive,
	core.ColorWhite:        tcell.ColorSilver,
	core.ColorBrightGreen:  tcell.ColorLime,
	core.ColorBrightYellow: tcell.ColorYellow,
	core.ColorGray:         tcell.ColorGray,
}

// Run opens the terminal and plays until the driver stops or quit is pressed.
func Run(d *engine.Driver, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellui: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: init screen: %w", err)
	}
	defer screen.Fini()

	return run(screen, d, opts)
}

func run(screen tcell.Screen, d *engine.Driver, opts Options) error {
	screen.HideCursor()
	screen.Clear()

	if opts.Fit {
		w, h := screen.Size()
		if err := d.Resize(w, h); err != nil {
			return err
		}
	}

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(d.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a := opts.Keys.Action(KeyName(ev))
				if a == core.ActionQuit {
					return nil
				}
				d.KeyDown(a, time.Now())

			case *tcell.EventResize:
				if opts.Fit {
					w, h := ev.Size()
					if err := d.Resize(w, h); err != nil {
						return err
					}
				}
				screen.Clear()
				screen.Sync()
			}

		case now := <-ticker.C:
			if !d.Frame(now) {
				return nil
			}
			draw(screen, d.Screen())
			screen.Show()
		}
	}
}

// draw copies the game screen into the tcell back buffer.
func draw(screen tcell.Screen, s *core.Screen) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			style := tcell.StyleDefault.Foreground(colors[cell.Color])
			screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

// KeyName translates a tcell key event into the key names used by
// engine.KeyMap. Keys without a binding name yield an empty name.
func KeyName(ev *tcell.EventKey) engine.KeyName {
	switch ev.Key() {
	case tcell.KeyRune:
		return engine.KeyName(string(ev.Rune()))
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	}
	return ""
}
