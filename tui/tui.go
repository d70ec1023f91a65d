// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Interactive kanban board over the pipeline engine
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/models"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewBoard ViewMode = iota
	ViewDetail
)

// Model is the main bubbletea model
type Model struct {
	tracker  *crm.Tracker
	viewMode ViewMode

	board    crm.Board
	colIndex int
	rowIndex int

	// Search state
	searchInput textinput.Model
	searching   bool

	// UI state
	width  int
	height int
	status string
}

// NewModel creates a new TUI model
func NewModel(tracker *crm.Tracker) Model {
	ti := textinput.New()
	ti.Placeholder = "name or company"
	ti.CharLimit = 64
	ti.Width = 30

	return Model{
		tracker:     tracker,
		viewMode:    ViewBoard,
		board:       tracker.Board(),
		searchInput: ti,
		width:       80,
		height:      24,
	}
}

// Run starts the full-screen program.
func Run(tracker *crm.Tracker) error {
	p := tea.NewProgram(NewModel(tracker), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewBoard:
		return m.renderBoardView()
	case ViewDetail:
		return m.renderDetailView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewBoard:
		return m.handleBoardKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.searching = false
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		return m.refresh(), nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m.refresh(), cmd
}

// refresh re-reads the board, applies the search filter, and clamps the
// cursor.
func (m Model) refresh() Model {
	m.board = filterBoard(m.tracker.Board(), m.searchInput.Value())
	if m.colIndex >= len(m.board.Columns) {
		m.colIndex = len(m.board.Columns) - 1
	}
	if m.colIndex < 0 {
		m.colIndex = 0
	}
	m.rowIndex = clampRow(m.board, m.colIndex, m.rowIndex)
	return m
}

// filterBoard drops cards that match neither name nor company. Column
// totals keep the unfiltered values so the pipeline sums stay honest.
func filterBoard(b crm.Board, query string) crm.Board {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return b
	}

	match := func(c models.Contact) bool {
		return strings.Contains(strings.ToLower(c.FullName()+" "+c.Company), query)
	}

	out := crm.Board{Columns: make([]crm.Column, len(b.Columns))}
	for i, col := range b.Columns {
		out.Columns[i] = crm.Column{Stage: col.Stage, TotalValue: col.TotalValue}
		for _, c := range col.Contacts {
			if match(c) {
				out.Columns[i].Contacts = append(out.Columns[i].Contacts, c)
			}
		}
	}
	for _, c := range b.Unassigned {
		if match(c) {
			out.Unassigned = append(out.Unassigned, c)
		}
	}
	return out
}

func clampRow(b crm.Board, col, row int) int {
	if col >= len(b.Columns) {
		return 0
	}
	max := len(b.Columns[col].Contacts) - 1
	if row > max {
		row = max
	}
	if row < 0 {
		row = 0
	}
	return row
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	columnActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("170")).
				Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	cardSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)
