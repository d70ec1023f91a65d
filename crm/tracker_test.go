// ABOUTME: Tests for the contact lifecycle engine
// ABOUTME: Covers creation, mutation paths, import/export, and persistence
package crm

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/m00n69/visicom/models"
	"github.com/m00n69/visicom/notify"
	"github.com/m00n69/visicom/store"
)

func newTestTracker(t *testing.T) (*Tracker, *store.Store) {
	t.Helper()

	s, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return NewTracker(s, notify.NewQueueWithTTL(time.Minute)), s
}

func mustCreate(t *testing.T, tr *Tracker, company, lastName string) models.Contact {
	t.Helper()
	c, err := tr.Create(models.NewContactParams{Company: company, LastName: lastName})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return c
}

func TestCreateDefaultsToFirstStage(t *testing.T) {
	tr, _ := newTestTracker(t)

	c := mustCreate(t, tr, "AgroSaveur S.A.", "Dupont")
	if c.Status != "Lead" {
		t.Errorf("expected default status Lead, got %s", c.Status)
	}
	if c.Score != 0 {
		t.Errorf("expected zero score at creation, got %d", c.Score)
	}
}

func TestCreateRejectsMissingIdentity(t *testing.T) {
	tr, _ := newTestTracker(t)

	if _, err := tr.Create(models.NewContactParams{LastName: "Sans Société"}); err == nil {
		t.Error("expected error for missing company")
	}
	if len(tr.Contacts()) != 0 {
		t.Error("no partially-formed contact may be stored")
	}
}

func TestCreatePrependsNewest(t *testing.T) {
	tr, _ := newTestTracker(t)
	mustCreate(t, tr, "Premier SARL", "Un")
	mustCreate(t, tr, "Second SAS", "Deux")

	contacts := tr.Contacts()
	if contacts[0].Company != "Second SAS" {
		t.Error("newest contact should come first")
	}
}

func TestLogActivityRecomputesScoreAndPersists(t *testing.T) {
	tr, s := newTestTracker(t)
	c := mustCreate(t, tr, "Logistique Froid", "Martin")

	updated, err := tr.LogActivity(c.ID, models.Activity{Type: models.ActivityMeeting, Description: "Réunion découverte"})
	if err != nil {
		t.Fatalf("LogActivity failed: %v", err)
	}
	if updated.Score != 15 {
		t.Errorf("expected score 15 after meeting, got %d", updated.Score)
	}

	// Reload from storage through a fresh tracker: same score, same history.
	tr2 := NewTracker(s, notify.NewQueueWithTTL(time.Minute))
	got, ok := tr2.Get(c.ID)
	if !ok {
		t.Fatal("contact missing after reload")
	}
	if got.Score != 15 || len(got.Activities) != 1 {
		t.Errorf("reload mismatch: score=%d activities=%d", got.Score, len(got.Activities))
	}
}

func TestToggleTaskRoundTrip(t *testing.T) {
	tr, _ := newTestTracker(t)
	c := mustCreate(t, tr, "BioTest", "Curie")

	due := time.Now().Add(24 * time.Hour)
	c, err := tr.LogActivity(c.ID, models.Activity{Type: models.ActivityTask, Description: "Relancer", DueDate: &due})
	if err != nil {
		t.Fatalf("LogActivity failed: %v", err)
	}
	scoreBefore := c.Score
	taskID := c.Activities[0].ID

	c, err = tr.ToggleTask(c.ID, taskID)
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if !c.Activities[0].IsDone {
		t.Error("expected task done after first toggle")
	}

	c, err = tr.ToggleTask(c.ID, taskID)
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if c.Activities[0].IsDone {
		t.Error("expected task reopened after second toggle")
	}
	if c.Score != scoreBefore {
		t.Errorf("toggling a task must not change the score: %d -> %d", scoreBefore, c.Score)
	}
}

func TestAttachProposalSideEffects(t *testing.T) {
	tr, _ := newTestTracker(t)
	c := mustCreate(t, tr, "AgroSaveur S.A.", "Dupont")

	c, err := tr.AttachProposal(c.ID, models.Proposal{Title: "Accompagnement IFS v8", Content: "# Offre", Value: 15000})
	if err != nil {
		t.Fatalf("AttachProposal failed: %v", err)
	}
	if c.ContractValue != 15000 {
		t.Errorf("expected contract value 15000, got %d", c.ContractValue)
	}
	if c.Score != 20 {
		t.Errorf("expected score 20 after proposal, got %d", c.Score)
	}
}

func TestMoveStageAcceptsUnknownStage(t *testing.T) {
	tr, _ := newTestTracker(t)
	c := mustCreate(t, tr, "Orphelin SARL", "Perdu")

	c, err := tr.MoveStage(c.ID, "Stage Fantôme")
	if err != nil {
		t.Fatalf("MoveStage must accept any stage name, got %v", err)
	}
	if c.Status != "Stage Fantôme" {
		t.Errorf("status not updated, got %s", c.Status)
	}

	board := tr.Board()
	for _, col := range board.Columns {
		for _, bc := range col.Contacts {
			if bc.ID == c.ID {
				t.Error("orphaned contact must not appear in any stage column")
			}
		}
	}
	if len(board.Unassigned) != 1 || board.Unassigned[0].ID != c.ID {
		t.Error("orphaned contact must surface in the unassigned bucket")
	}
}

func TestMoveStageBackwardIsLegal(t *testing.T) {
	tr, _ := newTestTracker(t)
	c := mustCreate(t, tr, "Retour SARL", "Arrière")

	if _, err := tr.MoveStage(c.ID, "Active"); err != nil {
		t.Fatalf("MoveStage failed: %v", err)
	}
	c, err := tr.MoveStage(c.ID, "Lead")
	if err != nil {
		t.Fatalf("backward move must be legal: %v", err)
	}
	if c.Status != "Lead" {
		t.Errorf("expected Lead after backward move, got %s", c.Status)
	}
}

func TestRemoveStageLeavesContactsUntouched(t *testing.T) {
	tr, _ := newTestTracker(t)
	c := mustCreate(t, tr, "AgroSaveur S.A.", "Dupont") // status Lead

	if err := tr.RemoveStage("Lead"); err != nil {
		t.Fatalf("RemoveStage failed: %v", err)
	}

	got, _ := tr.Get(c.ID)
	if got.Status != "Lead" {
		t.Errorf("stage removal must not migrate contacts, status became %s", got.Status)
	}
	for _, s := range tr.Stages() {
		if s == "Lead" {
			t.Error("Lead should be gone from the stage list")
		}
	}
	if len(tr.Board().Unassigned) != 1 {
		t.Error("contact should now be orphaned on the board")
	}
}

func TestStageConfigRules(t *testing.T) {
	tr, _ := newTestTracker(t)

	if err := tr.AddStage("Négociation"); err != nil {
		t.Fatalf("AddStage failed: %v", err)
	}
	stages := tr.Stages()
	if stages[len(stages)-1] != "Négociation" {
		t.Error("new stage must append at the end of the ordered list")
	}

	if err := tr.AddStage("Négociation"); err == nil {
		t.Error("duplicate stage must be rejected")
	}
	if err := tr.AddStage("  "); err == nil {
		t.Error("blank stage must be rejected")
	}
	if err := tr.RemoveStage("Inexistante"); err == nil {
		t.Error("removing an unknown stage must error")
	}
}

func TestInterestConfigRules(t *testing.T) {
	tr, _ := newTestTracker(t)

	if err := tr.AddInterest("ISO 22000"); err != nil {
		t.Fatalf("AddInterest failed: %v", err)
	}
	if err := tr.AddInterest("ISO 22000"); err == nil {
		t.Error("duplicate interest must be rejected")
	}
	if err := tr.RemoveInterest("ISO 22000"); err != nil {
		t.Fatalf("RemoveInterest failed: %v", err)
	}
	err := tr.RemoveInterest("ISO 22000")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("second removal should report not found, got %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	tr, _ := newTestTracker(t)
	c := mustCreate(t, tr, "AgroSaveur S.A.", "Dupont")
	c, err := tr.LogActivity(c.ID, models.Activity{Type: models.ActivityCall, Description: "Appel"})
	if err != nil {
		t.Fatalf("LogActivity failed: %v", err)
	}
	scoreBefore := c.Score

	data, err := tr.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// Tamper with the exported score: import must discard it.
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("export is not a JSON array: %v", err)
	}
	raw[0]["score"] = 9999
	tampered, _ := json.Marshal(raw)

	n, err := tr.Import(tampered)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 imported contact, got %d", n)
	}

	got, ok := tr.Get(c.ID)
	if !ok {
		t.Fatal("contact lost across export/import")
	}
	if got.Score != scoreBefore {
		t.Errorf("score must be recomputed to %d, got %d", scoreBefore, got.Score)
	}
	if got.Company != "AgroSaveur S.A." || len(got.Activities) != 1 {
		t.Error("round trip altered contact fields")
	}
}

func TestImportRejectsMalformedPayload(t *testing.T) {
	tr, _ := newTestTracker(t)
	mustCreate(t, tr, "Existant SARL", "Garde")

	cases := [][]byte{
		[]byte("{not json"),
		[]byte(`{"firstName":"pas un tableau"}`),
	}
	for _, payload := range cases {
		if _, err := tr.Import(payload); err == nil {
			t.Errorf("expected rejection for payload %q", payload)
		}
	}

	// All-or-nothing: the existing set is untouched.
	if len(tr.Contacts()) != 1 {
		t.Error("failed import must leave the contact set untouched")
	}
}

func TestImportReplacesDoesNotMerge(t *testing.T) {
	tr, _ := newTestTracker(t)
	mustCreate(t, tr, "Ancien SARL", "Avant")

	incoming, _ := json.Marshal([]models.Contact{})
	if _, err := tr.Import(incoming); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(tr.Contacts()) != 0 {
		t.Error("import must replace the whole set, not merge")
	}
}

func TestClearWipesEverything(t *testing.T) {
	tr, s := newTestTracker(t)
	mustCreate(t, tr, "Un", "Alpha")
	mustCreate(t, tr, "Deux", "Beta")

	if err := tr.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if len(tr.Contacts()) != 0 {
		t.Error("Clear must empty the contact set")
	}

	tr2 := NewTracker(s, notify.NewQueueWithTTL(time.Minute))
	if len(tr2.Contacts()) != 0 {
		t.Error("Clear must persist the empty set")
	}
}

func TestSearch(t *testing.T) {
	tr, _ := newTestTracker(t)
	c, err := tr.Create(models.NewContactParams{
		Company:  "Laboratoire BioTest",
		LastName: "Curie",
		Email:    "m.curie@biotest.com",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	mustCreate(t, tr, "Logistique Froid", "Martin")

	hits := tr.Search("biotest")
	if len(hits) != 1 || hits[0].ID != c.ID {
		t.Errorf("expected only the BioTest contact, got %d hits", len(hits))
	}
	if len(tr.Search("")) != 2 {
		t.Error("empty query must return everything")
	}
}

func TestMutationsEnqueueNotifications(t *testing.T) {
	tr, _ := newTestTracker(t)
	mustCreate(t, tr, "Notif SARL", "Toast")

	active := tr.Notifications()
	if len(active) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(active))
	}
	if active[0].Message != "Nouveau contact créé" {
		t.Errorf("unexpected message %q", active[0].Message)
	}
}
