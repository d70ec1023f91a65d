// ABOUTME: Contact lifecycle engine and pipeline state machine
// ABOUTME: Owns the contact set and config lists, persisting a full snapshot per edit
package crm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m00n69/visicom/models"
	"github.com/m00n69/visicom/notify"
	"github.com/m00n69/visicom/store"
)

// Tracker is the single-operator engine. Every mutation recomputes the
// affected contact's score, writes the full snapshot through the store, and
// enqueues a user-facing notification.
type Tracker struct {
	store *store.Store
	queue *notify.Queue

	contacts  []models.Contact
	stages    []string
	interests []string
}

// NewTracker loads the persisted snapshots and refreshes every score.
// Stored scores are caches and are never trusted across a reload.
func NewTracker(s *store.Store, q *notify.Queue) *Tracker {
	t := &Tracker{
		store:     s,
		queue:     q,
		stages:    s.LoadStages(),
		interests: s.LoadInterests(),
	}

	loaded := s.LoadContacts()
	t.contacts = make([]models.Contact, len(loaded))
	for i, c := range loaded {
		t.contacts[i] = models.Rescore(c)
	}
	return t
}

// Notifications exposes the pending toast queue.
func (t *Tracker) Notifications() []notify.Notification {
	return t.queue.Active()
}

// Contacts returns a copy of the current contact set, newest first.
func (t *Tracker) Contacts() []models.Contact {
	out := make([]models.Contact, len(t.contacts))
	copy(out, t.contacts)
	return out
}

// Get looks up a contact by ID.
func (t *Tracker) Get(id uuid.UUID) (models.Contact, bool) {
	for _, c := range t.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contact{}, false
}

// Search filters contacts by a case-insensitive substring over name, company,
// and email. An empty query returns everything.
func (t *Tracker) Search(query string) []models.Contact {
	if query == "" {
		return t.Contacts()
	}

	q := strings.ToLower(query)
	var out []models.Contact
	for _, c := range t.contacts {
		haystack := strings.ToLower(c.FullName() + " " + c.Company + " " + c.Email)
		if strings.Contains(haystack, q) {
			out = append(out, c)
		}
	}
	return out
}

// Create validates and stores a new contact. An empty status defaults to the
// pipeline's first stage (the designated "new" stage). The fresh contact is
// prepended so listings show newest first.
func (t *Tracker) Create(p models.NewContactParams) (models.Contact, error) {
	if p.Status == "" && len(t.stages) > 0 {
		p.Status = t.stages[0]
	}

	c, err := models.NewContact(p)
	if err != nil {
		return models.Contact{}, err
	}
	c = models.Rescore(c)

	t.contacts = append([]models.Contact{c}, t.contacts...)
	if err := t.persistContacts(); err != nil {
		return models.Contact{}, err
	}

	t.queue.Success("Nouveau contact créé")
	return c, nil
}

// Update replaces a contact wholesale, recomputing its score first. The
// caller may hand in any edited snapshot; the stored score is ignored.
func (t *Tracker) Update(updated models.Contact) (models.Contact, error) {
	updated = models.Rescore(updated)

	for i, c := range t.contacts {
		if c.ID == updated.ID {
			t.contacts[i] = updated
			if err := t.persistContacts(); err != nil {
				return models.Contact{}, err
			}
			return updated, nil
		}
	}
	return models.Contact{}, fmt.Errorf("contact not found: %s", updated.ID)
}

// LogActivity appends an interaction to a contact's history.
func (t *Tracker) LogActivity(id uuid.UUID, a models.Activity) (models.Contact, error) {
	c, ok := t.Get(id)
	if !ok {
		return models.Contact{}, fmt.Errorf("contact not found: %s", id)
	}

	c = models.AppendActivity(c, a)
	c, err := t.Update(c)
	if err != nil {
		return models.Contact{}, err
	}

	t.queue.Success("Activité enregistrée")
	return c, nil
}

// ToggleTask flips the done flag on one activity.
func (t *Tracker) ToggleTask(id uuid.UUID, activityID string) (models.Contact, error) {
	c, ok := t.Get(id)
	if !ok {
		return models.Contact{}, fmt.Errorf("contact not found: %s", id)
	}

	wasDone := false
	for _, a := range c.Activities {
		if a.ID == activityID {
			wasDone = a.IsDone
		}
	}

	c = models.ToggleActivityDone(c, activityID)
	c, err := t.Update(c)
	if err != nil {
		return models.Contact{}, err
	}

	if wasDone {
		t.queue.Success("Tâche rouverte")
	} else {
		t.queue.Success("Tâche terminée !")
	}
	return c, nil
}

// AddNote records a note plus its companion note activity.
func (t *Tracker) AddNote(id uuid.UUID, content, author string) (models.Contact, error) {
	if strings.TrimSpace(content) == "" {
		return models.Contact{}, fmt.Errorf("note content is required")
	}

	c, ok := t.Get(id)
	if !ok {
		return models.Contact{}, fmt.Errorf("contact not found: %s", id)
	}

	c = models.AddNote(c, content, author)
	c, err := t.Update(c)
	if err != nil {
		return models.Contact{}, err
	}

	t.queue.Success("Note ajoutée")
	return c, nil
}

// AttachProposal stores a generated proposal and overwrites the contact's
// estimated contract value with the proposal amount.
func (t *Tracker) AttachProposal(id uuid.UUID, p models.Proposal) (models.Contact, error) {
	c, ok := t.Get(id)
	if !ok {
		return models.Contact{}, fmt.Errorf("contact not found: %s", id)
	}

	c = models.AttachProposal(c, p)
	c, err := t.Update(c)
	if err != nil {
		return models.Contact{}, err
	}

	t.queue.Success("Offre générée et ajoutée")
	return c, nil
}

// MoveStage replaces a contact's status. Any stage name is accepted, even one
// missing from the configured pipeline: backward moves are legal and orphaned
// statuses are a valid state, so there is nothing to validate here.
func (t *Tracker) MoveStage(id uuid.UUID, stage string) (models.Contact, error) {
	c, ok := t.Get(id)
	if !ok {
		return models.Contact{}, fmt.Errorf("contact not found: %s", id)
	}

	c.Status = stage
	return t.Update(c)
}

// Export serializes the full contact set verbatim, stored scores included.
// Scores are recomputed on the next load anyway.
func (t *Tracker) Export() ([]byte, error) {
	data, err := json.MarshalIndent(t.contacts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode contacts: %w", err)
	}
	return data, nil
}

// Import replaces the entire contact set from a JSON array. The operation is
// all-or-nothing: a payload that fails to parse leaves the current set
// untouched and surfaces an error. Imported scores are discarded and
// recomputed.
func (t *Tracker) Import(data []byte) (int, error) {
	var imported []models.Contact
	if err := json.Unmarshal(data, &imported); err != nil {
		t.queue.Error("Format de fichier invalide")
		return 0, fmt.Errorf("invalid import payload: %w", err)
	}

	rescored := make([]models.Contact, len(imported))
	for i, c := range imported {
		rescored[i] = models.Rescore(c)
	}

	t.contacts = rescored
	if err := t.persistContacts(); err != nil {
		return 0, err
	}

	t.queue.Success("Données importées avec succès")
	return len(rescored), nil
}

// Clear wipes the full contact set. This is the only destroy operation;
// there is no per-contact delete.
func (t *Tracker) Clear() error {
	t.contacts = []models.Contact{}
	if err := t.persistContacts(); err != nil {
		return err
	}
	t.queue.Success("Données supprimées. Le CRM est vide.")
	return nil
}

func (t *Tracker) persistContacts() error {
	return t.store.SaveContacts(t.contacts)
}
