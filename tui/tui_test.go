// ABOUTME: Tests for the board model
// ABOUTME: Exercises navigation clamping and card moves through key events
package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/models"
	"github.com/m00n69/visicom/notify"
	"github.com/m00n69/visicom/store"
)

func newTestModel(t *testing.T) (Model, *crm.Tracker) {
	t.Helper()
	s, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	tracker := crm.NewTracker(s, notify.NewQueueWithTTL(time.Minute))
	if _, err := tracker.Create(models.NewContactParams{LastName: "Dupont", Company: "AgroSaveur S.A."}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return NewModel(tracker), tracker
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "left", "right", "up", "down", "enter", "esc":
		types := map[string]tea.KeyType{
			"left": tea.KeyLeft, "right": tea.KeyRight,
			"up": tea.KeyUp, "down": tea.KeyDown,
			"enter": tea.KeyEnter, "esc": tea.KeyEsc,
		}
		msg = tea.KeyMsg{Type: types[key]}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestBoardNavigationClamps(t *testing.T) {
	m, _ := newTestModel(t)

	// Moving left from the first column stays put.
	m = press(m, "left")
	if m.colIndex != 0 {
		t.Errorf("expected column 0, got %d", m.colIndex)
	}

	// Walk right past the last column.
	for i := 0; i < 10; i++ {
		m = press(m, "right")
	}
	if m.colIndex != len(m.board.Columns)-1 {
		t.Errorf("expected last column, got %d", m.colIndex)
	}

	// Row never goes negative or past the column size.
	m = press(m, "up")
	if m.rowIndex != 0 {
		t.Errorf("expected row 0, got %d", m.rowIndex)
	}
}

func TestMoveCardBetweenStages(t *testing.T) {
	m, tracker := newTestModel(t)

	// The seeded contact sits in the first column; push it right.
	m = press(m, "L")
	if m.colIndex != 1 {
		t.Errorf("cursor should follow the card, got column %d", m.colIndex)
	}

	contacts := tracker.Contacts()
	if contacts[0].Status != "Qualified" {
		t.Errorf("expected Qualified after move, got %q", contacts[0].Status)
	}

	// And back.
	m = press(m, "H")
	contacts = tracker.Contacts()
	if contacts[0].Status != "Lead" {
		t.Errorf("expected Lead after moving back, got %q", contacts[0].Status)
	}
	if m.colIndex != 0 {
		t.Errorf("cursor should be back in column 0, got %d", m.colIndex)
	}
}

func TestDetailViewRoundTrip(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, "enter")
	if m.viewMode != ViewDetail {
		t.Fatalf("expected detail view, got %v", m.viewMode)
	}
	if !strings.Contains(m.View(), "Dupont") {
		t.Error("detail view should show the contact name")
	}

	m = press(m, "esc")
	if m.viewMode != ViewBoard {
		t.Errorf("expected board view after esc, got %v", m.viewMode)
	}
}

func TestSearchFiltersBoard(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, "/")
	if !m.searching {
		t.Fatal("expected search mode after /")
	}

	// A query matching nothing hides the card.
	m = press(m, "x")
	if strings.Contains(m.View(), "Dupont") {
		t.Error("non-matching card should be hidden")
	}

	// Esc clears the filter.
	m = press(m, "esc")
	if m.searching {
		t.Error("esc should leave search mode")
	}
	if !strings.Contains(m.View(), "Dupont") {
		t.Error("clearing the filter should restore the card")
	}
}

func TestBoardViewShowsColumns(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	for _, stage := range models.DefaultStages {
		if !strings.Contains(out, stage) {
			t.Errorf("board view missing stage %q", stage)
		}
	}
	if !strings.Contains(out, "Dupont") {
		t.Error("board view should show the seeded contact")
	}
}
