package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Options control how the game is presented.
type Options struct {
	Keys     engine.KeyMap
	Fit      bool // Resize the game to the terminal
	ShowHelp bool // Draw the key help footer
}

// Model is the Bubble Tea model for running a game driver.
type Model struct {
	driver   *engine.Driver
	mapper   KeyMapper
	help     help.Model
	opts     Options
	err      error
	quitting bool
}

// NewModel creates a model around an initialised driver.
func NewModel(d *engine.Driver, opts Options) Model {
	return Model{
		driver: d,
		mapper: NewKeyMapper(opts.Keys),
		help:   newHelp(d.Screen().Width()),
		opts:   opts,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.driver.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey forwards game keys to the driver.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.driver.KeyDown(action, time.Now())
	}
	return m, nil
}

// handleResize fits the game to the window when asked to.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	if !m.opts.Fit {
		return m, nil
	}

	height := msg.Height
	if m.opts.ShowHelp {
		height -= footerHeight
	}
	if err := m.driver.Resize(msg.Width, height); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.driver.Frame(now) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.driver.TickInterval())
}

// View renders the last frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.driver.Screen()))
	if m.opts.ShowHelp {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.help.View(m.opts.Keys)))
	}
	return b.String()
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for an initialised driver.
func Run(d *engine.Driver, opts Options) error {
	p := tea.NewProgram(
		NewModel(d, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
