package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ivofrolov/muspace/config"
	"github.com/ivofrolov/muspace/debug"
	"github.com/ivofrolov/muspace/keyboard"
	"github.com/ivofrolov/muspace/lattice"
	"github.com/ivofrolov/muspace/theme"
	"github.com/ivofrolov/muspace/widgets"
)

// Rows taken by header, legend and help around the grid.
const chromeRows = 13

// gridTop is the first terminal row of the grid area.
const gridTop = 3

type Model struct {
	Board *keyboard.Controller
	Theme *theme.Theme
	Cfg   *config.Config

	cellWidth int // terminal columns per rendered cell box
	cellSize  int // view pixels per cell, from config
	gap       int // view pixels between cells, from config
	quitting  bool
}

func NewModel(board *keyboard.Controller, th *theme.Theme, cfg *config.Config) Model {
	return Model{
		Board:     board,
		Theme:     th,
		Cfg:       cfg,
		cellWidth: cfg.UI.CellWidth,
		cellSize:  cfg.Board.CellSize,
		gap:       cfg.Board.Gap,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.Cfg.UI.LastMode = m.Board.Mode().String()
			if err := m.Cfg.Save(); err != nil {
				debug.Log("config", "save failed: %v", err)
			}
			return m, tea.Quit

		case "tab", "m":
			if m.Board.Mode() == keyboard.ModePick {
				m.Board.SetMode(keyboard.ModePlace)
			} else {
				m.Board.SetMode(keyboard.ModePick)
			}

		case "x":
			// Single-selection toggle of the hovered cell, bypassing
			// root-relative degree math.
			if pos, ok := m.Board.Hover(); ok {
				m.Board.ToggleNote(pos)
			}

		case "c":
			m.Board.Clear()
		}

	case tea.MouseMsg:
		pos, inside := m.hitTest(msg.X, msg.Y)
		if inside {
			m.Board.SetHover(pos)
		} else {
			m.Board.ClearHover()
		}
		debug.LogEvery(50, "mouse", "x=%d y=%d inside=%v", msg.X, msg.Y, inside)

		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inside {
			m.Board.Tap(pos)
		}
	}

	return m, nil
}

// resize maps the terminal area onto the pixel-based layout: compute
// how many cell boxes the terminal shows, then hand the controller the
// viewport that fits exactly that many configured-size cells.
func (m Model) resize(width, height int) {
	cols := width / m.cellWidth
	rows := height - chromeRows
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	m.Board.Resize(cols*(m.cellSize+m.gap)-m.gap, rows*(m.cellSize+m.gap)-m.gap)
	debug.Log("resize", "term %dx%d -> grid %dx%d", width, height, m.Board.Grid().Columns, m.Board.Grid().Rows)
}

// hitTest decodes a terminal position into a lattice cell.
func (m Model) hitTest(x, y int) (lattice.Vector, bool) {
	if x < 0 || y < gridTop {
		return lattice.Vector{}, false
	}
	pos := lattice.Vector{I: x / m.cellWidth, J: y - gridTop}
	return pos, m.Board.Grid().Contains(pos)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	grid := m.Board.Grid()
	hover, hovering := m.Board.Hover()

	// Styles
	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	cellStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	litStyle := lipgloss.NewStyle().Foreground(m.Theme.BG()).Background(m.Theme.Highlight())
	hoverStyle := lipgloss.NewStyle().Foreground(m.Theme.BG()).Background(m.Theme.Hover())
	rootStyle := lipgloss.NewStyle().Foreground(m.Theme.Root()).Bold(true)

	// Header
	hoverNote := "-"
	if hovering {
		hoverNote = lattice.NoteAt(hover)
	}
	header := headerStyle.Render(fmt.Sprintf("muspace  mode:%s  %dx%d  hover:%s",
		m.Board.Mode(), grid.Columns, grid.Rows, hoverNote))

	// Grid, one box per cell, hover feedback over logical highlight
	root := m.Board.Root()
	var rows []string
	var line strings.Builder
	for _, cell := range m.Board.Cells() {
		style := cellStyle
		switch {
		case cell.Highlighted:
			style = litStyle
		case m.Board.Mode() == keyboard.ModePick && cell.Position == root:
			style = rootStyle
		}
		if hovering && cell.Position == hover {
			style = hoverStyle
		}
		line.WriteString(widgets.RenderCell(cell.Label, m.cellWidth, style))
		if cell.Position.I == grid.Columns-1 {
			rows = append(rows, line.String())
			line.Reset()
		}
	}

	// Legend and help
	legend := widgets.RenderLegendItem(m.Theme.Highlight(), "Selected", m.legendDesc()) + "\n" +
		widgets.RenderLegendItem(m.Theme.Hover(), "Hover", "cell under the pointer")
	help := dimStyle.Render(widgets.RenderKeyHelp([]widgets.KeySection{
		{Title: "Mode", Keys: []widgets.KeyBinding{
			{Key: "click", Desc: "pick a degree / place a chord"},
			{Key: "tab / m", Desc: "switch pick and place"},
		}},
		{Title: "Select", Keys: []widgets.KeyBinding{
			{Key: "x", Desc: "toggle hovered note"},
			{Key: "c", Desc: "clear current selection"},
			{Key: "q", Desc: "quit"},
		}},
	}))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(strings.Join(rows, "\n"))
	out.WriteString("\n\n")
	out.WriteString(legend)
	out.WriteString("\n")
	out.WriteString(help)

	return out.String()
}

func (m Model) legendDesc() string {
	if m.Board.Mode() == keyboard.ModePlace {
		return "stamped chords"
	}
	return "chord shape at the root"
}
