// ABOUTME: Tests for contact construction and snapshot mutation helpers
// ABOUTME: Validates creation rules, activity history, and owned collections
package models

import (
	"testing"
	"time"
)

func TestNewContactRequiresIdentityFields(t *testing.T) {
	if _, err := NewContact(NewContactParams{LastName: "Dupont"}); err == nil {
		t.Error("expected error for missing company")
	}
	if _, err := NewContact(NewContactParams{Company: "AgroSaveur"}); err == nil {
		t.Error("expected error for missing last name")
	}
	if _, err := NewContact(NewContactParams{Company: "   ", LastName: "Dupont"}); err == nil {
		t.Error("expected error for whitespace-only company")
	}
}

func TestNewContactDefaults(t *testing.T) {
	c, err := NewContact(NewContactParams{
		Company:  "AgroSaveur S.A.",
		LastName: "Dupont",
		Status:   "Lead",
	})
	if err != nil {
		t.Fatalf("NewContact failed: %v", err)
	}

	if c.Score != 0 {
		t.Errorf("expected zero score, got %d", c.Score)
	}
	if c.Status != "Lead" {
		t.Errorf("expected Lead status, got %s", c.Status)
	}
	if c.Activities == nil || c.Notes == nil || c.Proposals == nil {
		t.Error("owned collections must be initialized empty, not nil")
	}
	if c.LastContact.IsZero() {
		t.Error("lastContact should be set at creation")
	}
}

func TestNewContactDistinctIDs(t *testing.T) {
	p := NewContactParams{Company: "Laboratoire BioTest", LastName: "Curie"}
	a, err := NewContact(p)
	if err != nil {
		t.Fatalf("NewContact failed: %v", err)
	}
	b, err := NewContact(p)
	if err != nil {
		t.Fatalf("NewContact failed: %v", err)
	}
	if a.ID == b.ID {
		t.Error("two creations with identical fields produced the same id")
	}
}

func TestAppendActivityInsertsAtHead(t *testing.T) {
	c := Contact{}
	c = AppendActivity(c, Activity{Type: ActivityCall, Description: "first"})
	c = AppendActivity(c, Activity{Type: ActivityEmail, Description: "second"})

	if len(c.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(c.Activities))
	}
	if c.Activities[0].Description != "second" {
		t.Errorf("newest activity must be first, got %q", c.Activities[0].Description)
	}
	if c.Activities[0].ID == "" || c.Activities[1].ID == "" {
		t.Error("activity IDs must be assigned")
	}
	if c.Activities[0].ID == c.Activities[1].ID {
		t.Error("activity IDs must be distinct")
	}
}

func TestAppendActivityIsPure(t *testing.T) {
	orig := Contact{Activities: []Activity{}}
	_ = AppendActivity(orig, Activity{Type: ActivityCall})
	if len(orig.Activities) != 0 {
		t.Error("AppendActivity mutated its input")
	}
}

func TestAppendActivityAdvancesLastContact(t *testing.T) {
	past := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, at := range []string{ActivityCall, ActivityEmail, ActivityMeeting, ActivityTask} {
		c := Contact{LastContact: past}
		c = AppendActivity(c, Activity{Type: at})
		if !c.LastContact.After(past) {
			t.Errorf("%s should advance lastContact", at)
		}
	}

	// Notes and proposals record history but do not count as reaching out.
	for _, at := range []string{ActivityNote, ActivityProposal} {
		c := Contact{LastContact: past}
		c = AppendActivity(c, Activity{Type: at})
		if !c.LastContact.Equal(past) {
			t.Errorf("%s should not advance lastContact", at)
		}
	}
}

func TestToggleActivityDoneRoundTrip(t *testing.T) {
	due := time.Now().Add(24 * time.Hour)
	c := AppendActivity(Contact{}, Activity{Type: ActivityTask, Description: "relancer", DueDate: &due})
	id := c.Activities[0].ID

	c = ToggleActivityDone(c, id)
	if !c.Activities[0].IsDone {
		t.Fatal("expected activity marked done")
	}
	c = ToggleActivityDone(c, id)
	if c.Activities[0].IsDone {
		t.Fatal("expected activity back to not-done after second toggle")
	}
}

func TestToggleActivityDoneUnknownID(t *testing.T) {
	c := AppendActivity(Contact{}, Activity{Type: ActivityTask})
	got := ToggleActivityDone(c, "no-such-id")
	if got.Activities[0].IsDone != c.Activities[0].IsDone {
		t.Error("unknown id should leave activities unchanged")
	}
}

func TestAddNoteRecordsNoteActivity(t *testing.T) {
	c := AddNote(Contact{}, "Besoin de formation Food Defense.", "Moi")

	if len(c.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(c.Notes))
	}
	if c.Notes[0].Author != "Moi" {
		t.Errorf("unexpected author %q", c.Notes[0].Author)
	}
	if len(c.Activities) != 1 || c.Activities[0].Type != ActivityNote {
		t.Error("adding a note must append a note activity")
	}
}

func TestAttachProposalUpdatesContractValue(t *testing.T) {
	c := Contact{ContractValue: 8000}
	c = AttachProposal(c, Proposal{Title: "Accompagnement IFS v8", Value: 15000})

	if c.ContractValue != 15000 {
		t.Errorf("expected contract value 15000, got %d", c.ContractValue)
	}
	if len(c.Proposals) != 1 {
		t.Fatalf("expected 1 proposal, got %d", len(c.Proposals))
	}
	if c.Proposals[0].Status != ProposalDraft {
		t.Errorf("expected Draft status, got %s", c.Proposals[0].Status)
	}
	if len(c.Activities) != 1 || c.Activities[0].Type != ActivityProposal {
		t.Error("attaching a proposal must append a proposal activity")
	}
}

func TestAttachProposalClampsNegativeValue(t *testing.T) {
	c := AttachProposal(Contact{}, Proposal{Title: "Audit blanc", Value: -500})
	if c.ContractValue != 0 {
		t.Errorf("negative proposal value must clamp to 0, got %d", c.ContractValue)
	}
}

func TestHasOverdueTask(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	c := Contact{Activities: []Activity{
		{ID: "a", Type: ActivityTask, DueDate: &future},
	}}
	if c.HasOverdueTask(now) {
		t.Error("future due date should not be overdue")
	}

	c.Activities = append(c.Activities, Activity{ID: "b", Type: ActivityTask, DueDate: &past})
	if !c.HasOverdueTask(now) {
		t.Error("past due date without done flag should be overdue")
	}

	c.Activities[1].IsDone = true
	if c.HasOverdueTask(now) {
		t.Error("done task should never be overdue")
	}
}
