// ABOUTME: Kanban board view
// ABOUTME: Column navigation and moving cards between stages
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/m00n69/visicom/models"
)

func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.colIndex > 0 {
			m.colIndex--
			m.rowIndex = clampRow(m.board, m.colIndex, m.rowIndex)
		}
	case "right", "l":
		if m.colIndex < len(m.board.Columns)-1 {
			m.colIndex++
			m.rowIndex = clampRow(m.board, m.colIndex, m.rowIndex)
		}
	case "up", "k":
		if m.rowIndex > 0 {
			m.rowIndex--
		}
	case "down", "j":
		if m.rowIndex < len(m.currentColumn())-1 {
			m.rowIndex++
		}
	case "shift+left", "H":
		return m.moveSelected(-1), nil
	case "shift+right", "L":
		return m.moveSelected(1), nil
	case "enter":
		if len(m.currentColumn()) > 0 {
			m.viewMode = ViewDetail
		}
	case "/":
		m.searching = true
		return m, m.searchInput.Focus()
	case "r":
		return m.refresh(), nil
	}
	return m, nil
}

func (m Model) currentColumn() []models.Contact {
	if m.colIndex >= len(m.board.Columns) {
		return nil
	}
	return m.board.Columns[m.colIndex].Contacts
}

// moveSelected shifts the selected card one stage left or right.
func (m Model) moveSelected(direction int) Model {
	col := m.currentColumn()
	if len(col) == 0 {
		return m
	}
	target := m.colIndex + direction
	if target < 0 || target >= len(m.board.Columns) {
		return m
	}

	contact := col[m.rowIndex]
	stage := m.board.Columns[target].Stage
	if _, err := m.tracker.MoveStage(contact.ID, stage); err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m
	}

	m = m.refresh()
	m.colIndex = target
	m.rowIndex = 0
	m.status = fmt.Sprintf("%s → %s", contact.FullName(), stage)
	return m
}

func (m Model) renderBoardView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("VISICOM PIPELINE"))
	s.WriteString("\n")

	if m.searching || m.searchInput.Value() != "" {
		s.WriteString("Filter: " + m.searchInput.View())
		s.WriteString("\n")
	}

	now := time.Now()
	columns := make([]string, 0, len(m.board.Columns)+1)
	for i, col := range m.board.Columns {
		columns = append(columns, m.renderColumn(col.Stage, col.Contacts, col.TotalValue, i == m.colIndex, now))
	}
	if len(m.board.Unassigned) > 0 {
		columns = append(columns, m.renderColumn("Unassigned", m.board.Unassigned, 0, false, now))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))

	if m.status != "" {
		s.WriteString("\n")
		s.WriteString(statusStyle.Render(m.status))
	}
	if toasts := m.tracker.Notifications(); len(toasts) > 0 {
		var lines []string
		for _, n := range toasts {
			lines = append(lines, n.Message)
		}
		s.WriteString("\n")
		s.WriteString(statusStyle.Render(strings.Join(lines, " · ")))
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("←/→ stage  ↑/↓ card  H/L move card  / filter  enter detail  r refresh  q quit"))
	return s.String()
}

func (m Model) renderColumn(stage string, contacts []models.Contact, total int64, active bool, now time.Time) string {
	var body strings.Builder

	header := fmt.Sprintf("%s (%d)", stage, len(contacts))
	if total > 0 {
		header += fmt.Sprintf("\n%d €", total)
	}
	body.WriteString(header)
	body.WriteString("\n\n")

	for i, c := range contacts {
		line := fmt.Sprintf("%s\n  %s · %d", c.FullName(), c.Company, c.Score)
		if c.HasOverdueTask(now) {
			line = overdueStyle.Render("! ") + line
		}
		if active && i == m.rowIndex {
			body.WriteString(cardSelectedStyle.Render(line))
		} else {
			body.WriteString(cardStyle.Render(line))
		}
		body.WriteString("\n")
	}

	if active {
		return columnActiveStyle.Width(24).Render(body.String())
	}
	return columnStyle.Width(24).Render(body.String())
}
