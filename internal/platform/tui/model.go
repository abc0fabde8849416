// Package tui provides the Bubble Tea integration for the game.
// It hosts the board canvas in a terminal, maps mouse and keys to
// controller calls, and serves the same model over SSH.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/controller"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/tictactoe"
)

const title = "T I C - T A C - T O E"

// Frame rows above and below the board.
const (
	boardTop   = 3 // blank, title, blank
	statusGap  = 1 // blank line between board and status
	footerRows = 2 // blank line and help
)

// Model is the Bubble Tea model for one game on one terminal.
type Model struct {
	ctrl     *controller.Controller
	canvas   *BoardCanvas
	status   *StatusLine
	frame    *core.Screen
	painter  *Painter
	palette  config.Palette
	keys     KeyMap
	help     help.Model
	cursor   int
	width    int
	height   int
	quitting bool
}

// Option configures a Model.
type Option func(*modelOptions)

type modelOptions struct {
	logger   *log.Logger
	renderer *lipgloss.Renderer
}

// WithLogger sets the logger handed to the game controller.
func WithLogger(logger *log.Logger) Option {
	return func(o *modelOptions) {
		o.logger = logger
	}
}

// WithRenderer sets the lipgloss renderer used for colors.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(o *modelOptions) {
		o.renderer = r
	}
}

// NewModel creates a model with a fresh game.
func NewModel(cfg config.Config, rt core.RuntimeConfig, opts ...Option) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	palette, err := cfg.Theme.Palette()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	var o modelOptions
	for _, opt := range opts {
		opt(&o)
	}

	layout := controller.Layout{CellW: cfg.Board.CellWidth, CellH: cfg.Board.CellHeight}
	canvas := NewBoardCanvas(layout, palette)
	status := &StatusLine{}

	var ctrlOpts []controller.Option
	if o.logger != nil {
		ctrlOpts = append(ctrlOpts, controller.WithLogger(o.logger))
	}

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		ctrl:    controller.New(canvas, status, layout, ctrlOpts...),
		canvas:  canvas,
		status:  status,
		frame:   core.NewScreen(rt.ScreenW, boardTop+layout.Height()+statusGap+1),
		painter: NewPainter(o.renderer),
		palette: palette,
		keys:    DefaultKeyMap(),
		help:    h,
		cursor:  4,
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}, nil
}

// Init implements tea.Model. The board is already drawn by the controller.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.frame.Resize(msg.Width, m.frame.Height())
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cell, ok := m.keys.CellKey(msg); ok {
		m.cursor = cell
		m.ctrl.Select(cell)
		return m, nil
	}

	row, col := tictactoe.RowCol(m.cursor)

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp:
		row = core.Clamp(row-1, 0, tictactoe.Size-1)
	case core.ActionDown:
		row = core.Clamp(row+1, 0, tictactoe.Size-1)
	case core.ActionLeft:
		col = core.Clamp(col-1, 0, tictactoe.Size-1)
	case core.ActionRight:
		col = core.Clamp(col+1, 0, tictactoe.Size-1)
	case core.ActionPlace:
		m.ctrl.Select(m.cursor)
	case core.ActionReset:
		m.ctrl.Reset()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	m.cursor = tictactoe.CellIndex(row, col)
	return m, nil
}

// handleMouse places a mark on left-button presses over the board.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	// The board is not on screen while the size warning is shown.
	if !m.fits() {
		return m, nil
	}

	ox, oy := m.boardOrigin()
	x, y := msg.X-ox, msg.Y-oy
	if cell, ok := m.ctrl.Layout().CellAt(x, y); ok {
		m.cursor = cell
	}
	m.ctrl.Click(x, y)
	return m, nil
}

// boardOrigin returns the terminal position of the board's top-left corner.
func (m Model) boardOrigin() (int, int) {
	return core.Max((m.width-m.canvas.Screen().Width())/2, 0), boardTop
}

// minSize returns the smallest terminal that fits the whole frame.
func (m Model) minSize() (int, int) {
	layout := m.ctrl.Layout()
	w := core.Max(layout.Width(), len(title))
	return w, m.frame.Height() + footerRows
}

// fits reports whether the terminal is large enough to draw the board.
func (m Model) fits() bool {
	minW, minH := m.minSize()
	return m.width >= minW && m.height >= minH
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.fits() {
		minW, minH := m.minSize()
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d\nq: quit", minW, minH, m.width, m.height)
	}

	m.frame.Clear()
	m.frame.DrawColorText((m.width-len(title))/2, 1, title, core.ColorBrightYellow)

	ox, oy := m.boardOrigin()
	m.frame.DrawScreen(ox, oy, m.canvas.Screen())

	snap := m.ctrl.Snapshot()
	switch {
	case snap.Status.Result == tictactoe.Won:
		m.highlight(ox, oy, snap.Status.Line)
	case !snap.Status.Over():
		m.drawCursor(ox, oy)
	}

	m.frame.DrawTextCentered(oy+m.canvas.Screen().Height()+statusGap, m.status.Text())

	var b strings.Builder
	b.WriteString(m.painter.RenderScreen(m.frame))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// highlight recolors the marks on the winning line.
func (m Model) highlight(ox, oy int, line [3]int) {
	for _, cell := range line {
		r := m.canvas.interior(cell)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if m.frame.Get(ox+x, oy+y) != ' ' {
					m.frame.SetColor(ox+x, oy+y, m.palette.Highlight)
				}
			}
		}
	}
}

// drawCursor marks the cell under the keyboard cursor when there is room beside the glyph.
func (m Model) drawCursor(ox, oy int) {
	r := m.canvas.interior(m.cursor)
	if r.W < glyphSize+2 {
		return
	}
	_, cy := r.Center()
	m.frame.SetCell(ox+r.X, oy+cy, '▸', m.palette.Highlight)
}

// Snapshot returns the state of the hosted game.
func (m Model) Snapshot() tictactoe.Snapshot {
	return m.ctrl.Snapshot()
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status.Text()
}

// Cursor returns the cell under the keyboard cursor.
func (m Model) Cursor() int {
	return m.cursor
}

// centerText centers each line of text within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w < width {
			lines[i] = strings.Repeat(" ", (width-w)/2) + line
		}
	}
	return strings.Join(lines, "\n")
}

// Run starts the Bubble Tea program for a local terminal.
func Run(cfg config.Config, rt core.RuntimeConfig, opts ...Option) error {
	model, err := NewModel(cfg, rt, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Report clicks on the board
	)

	_, err = p.Run()
	return err
}
