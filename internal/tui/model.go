// Package tui shows the clock face in a terminal.
package tui

import (
	"fmt"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"clockface/internal/engine2D"
	"clockface/internal/surface"
)

// surfaceWidth is the virtual surface width the grid samples. It gives a
// dial radius of 280 so the 260 unit second hand stays inside the dial.
const surfaceWidth = 840.0

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// StateMsg carries a new snapshot from the ticker.
type StateMsg struct {
	State engine2D.ClockState
}

// Model is the Bubble Tea model for the terminal clock.
type Model struct {
	renderer *engine2D.Renderer
	state    engine2D.ClockState
	updates  <-chan engine2D.ClockState

	width, height int
	quitting      bool
}

// NewModel returns a model showing initial and following updates.
func NewModel(renderer *engine2D.Renderer, initial engine2D.ClockState, updates <-chan engine2D.ClockState) *Model {
	return &Model{
		renderer: renderer,
		state:    initial,
		updates:  updates,
		width:    80,
		height:   24,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.waitForState()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case StateMsg:
		m.state = msg.State
		return m, m.waitForState()
	}

	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	rows := m.height - 1
	if rows < 1 {
		rows = 1
	}
	cols := m.width
	if limit := int(float64(rows) * cellAspect); cols > limit {
		cols = limit
	}
	if cols < 1 {
		cols = 1
	}

	height := surfaceWidth * cellAspect * float64(rows) / float64(cols)
	grid := surface.NewGridCanvas(cols, rows, surfaceWidth, height)
	m.renderer.Render(grid, m.state, surfaceWidth, height)

	face := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, renderGrid(grid))
	status := lipgloss.NewStyle().Faint(true).Render(m.state.String() + "  q to quit")
	return face + "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, status)
}

// State returns the snapshot currently shown.
func (m *Model) State() engine2D.ClockState {
	return m.state
}

// IsQuitting reports whether the user asked to leave.
func (m *Model) IsQuitting() bool {
	return m.quitting
}

func (m *Model) waitForState() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	updates := m.updates
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return nil
		}
		return StateMsg{State: state}
	}
}

func renderGrid(grid *surface.GridCanvas) string {
	var b strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		var run strings.Builder
		var runStyle lipgloss.Style
		var runKey string

		flush := func() {
			if run.Len() > 0 {
				b.WriteString(runStyle.Render(run.String()))
				run.Reset()
			}
		}

		for col := 0; col < grid.Cols(); col++ {
			cell := grid.Cell(col, row)
			key, style := cellStyle(cell)
			if key != runKey {
				flush()
				runKey, runStyle = key, style
			}
			run.WriteRune(cell.Glyph)
		}
		flush()
		if row < grid.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellStyle(cell surface.Cell) (string, lipgloss.Style) {
	style := lipgloss.NewStyle()
	key := ""
	if cell.Set && cell.Glyph != surface.GlyphDial {
		fg := hex(cell.Color)
		style = style.Foreground(lipgloss.Color(fg))
		key += "f" + fg
	}
	if cell.Dial {
		bg := hex(cell.Background)
		style = style.Background(lipgloss.Color(bg))
		key += "b" + bg
	}
	return key, style
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
