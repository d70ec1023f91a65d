// ABOUTME: Contact detail view
// ABOUTME: Full history for the selected card
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/m00n69/visicom/models"
)

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.viewMode = ViewBoard
	}
	return m, nil
}

func (m Model) renderDetailView() string {
	col := m.currentColumn()
	if m.rowIndex >= len(col) {
		m.viewMode = ViewBoard
		return m.renderBoardView()
	}
	c := col[m.rowIndex]

	var s strings.Builder
	s.WriteString(titleStyle.Render(fmt.Sprintf("%s — %s", c.FullName(), c.Company)))
	s.WriteString("\n")

	s.WriteString(fmt.Sprintf("Stage: %s   Score: %d (%s)   Value: %d €\n",
		c.Status, c.Score, models.ScoreLabel(c.Score), c.ContractValue))
	if c.Email != "" {
		s.WriteString(fmt.Sprintf("Email: %s\n", c.Email))
	}
	if c.Phone != "" {
		s.WriteString(fmt.Sprintf("Phone: %s\n", c.Phone))
	}
	if c.CertificationInterest != "" {
		s.WriteString(fmt.Sprintf("Interest: %s\n", c.CertificationInterest))
	}
	s.WriteString(fmt.Sprintf("Last contact: %s\n", c.LastContact.Format("2006-01-02")))

	if len(c.Activities) > 0 {
		s.WriteString("\nActivities:\n")
		now := time.Now()
		for _, a := range c.Activities {
			line := fmt.Sprintf("  [%s] %-8s %s", a.Date.Format("2006-01-02"), a.Type, a.Description)
			if a.IsOverdue(now) {
				line = overdueStyle.Render(line + "  (overdue)")
			}
			s.WriteString(line)
			s.WriteString("\n")
		}
	}
	if len(c.Notes) > 0 {
		s.WriteString("\nNotes:\n")
		for _, n := range c.Notes {
			s.WriteString(fmt.Sprintf("  [%s] %s\n", n.Date.Format("2006-01-02"), n.Content))
		}
	}
	if len(c.Proposals) > 0 {
		s.WriteString("\nProposals:\n")
		for _, p := range c.Proposals {
			s.WriteString(fmt.Sprintf("  [%s] %s — %d €\n", p.CreatedAt.Format("2006-01-02"), p.Title, p.Value))
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc back  q quit"))
	return s.String()
}
