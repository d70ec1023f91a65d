// ABOUTME: Tests for CLI contact resolution
// ABOUTME: Covers ID lookup, query matching, and ambiguity errors
package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/models"
	"github.com/m00n69/visicom/notify"
	"github.com/m00n69/visicom/store"
)

func newTestTracker(t *testing.T) *crm.Tracker {
	t.Helper()
	s, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return crm.NewTracker(s, notify.NewQueueWithTTL(time.Minute))
}

func TestResolveContactByID(t *testing.T) {
	tracker := newTestTracker(t)
	created, err := tracker.Create(models.NewContactParams{LastName: "Dupont", Company: "AgroSaveur S.A."})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := resolveContact(tracker, created.ID.String())
	if err != nil {
		t.Fatalf("resolveContact failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("resolved wrong contact: %s", got.ID)
	}

	// A valid UUID that isn't stored is an error, not a query.
	if _, err := resolveContact(tracker, "00000000-0000-0000-0000-000000000001"); err == nil {
		t.Error("expected error for unknown UUID")
	}
}

func TestResolveContactByQuery(t *testing.T) {
	tracker := newTestTracker(t)
	for _, p := range []models.NewContactParams{
		{LastName: "Dupont", Company: "AgroSaveur S.A."},
		{LastName: "Durand", Company: "BioTest"},
	} {
		if _, err := tracker.Create(p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := resolveContact(tracker, "biotest")
	if err != nil {
		t.Fatalf("resolveContact failed: %v", err)
	}
	if got.Company != "BioTest" {
		t.Errorf("resolved wrong contact: %s", got.Company)
	}

	// "Du" matches both Dupont and Durand.
	_, err = resolveContact(tracker, "Du")
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("expected ambiguity error, got %v", err)
	}

	if _, err := resolveContact(tracker, "introuvable"); err == nil {
		t.Error("expected error for no match")
	}
	if _, err := resolveContact(tracker, ""); err == nil {
		t.Error("expected error for empty ref")
	}
}
