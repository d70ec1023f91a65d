// ABOUTME: Contact constructors and snapshot-style mutation helpers
// ABOUTME: All operations are pure: they take a contact and return a new copy
package models

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// NewEntryID generates a time-ordered ULID for activities, notes, and
// proposals. Monotonic entropy guarantees distinct IDs within the same
// millisecond even though creation is user-paced.
func NewEntryID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// NewContactParams carries the user-supplied fields for contact creation.
type NewContactParams struct {
	FirstName string
	LastName  string
	Company   string
	Email     string
	Phone     string
	Siret     string
	Address   string
	Interest  string
	Status    string
	Tags      []string
}

// NewContact validates params and builds a fresh contact. The company name and
// last name are the required identity fields; everything else is optional.
// Collections start empty and the score starts at zero.
func NewContact(p NewContactParams) (Contact, error) {
	if strings.TrimSpace(p.Company) == "" {
		return Contact{}, fmt.Errorf("company is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return Contact{}, fmt.Errorf("last name is required")
	}

	return Contact{
		ID:                    uuid.New(),
		FirstName:             strings.TrimSpace(p.FirstName),
		LastName:              strings.TrimSpace(p.LastName),
		Company:               strings.TrimSpace(p.Company),
		Email:                 strings.TrimSpace(p.Email),
		Phone:                 strings.TrimSpace(p.Phone),
		Siret:                 strings.TrimSpace(p.Siret),
		Address:               strings.TrimSpace(p.Address),
		CertificationInterest: strings.TrimSpace(p.Interest),
		Status:                p.Status,
		ContractValue:         0,
		Score:                 0,
		LastContact:           time.Now().UTC(),
		Tags:                  append([]string{}, p.Tags...),
		Activities:            []Activity{},
		Notes:                 []Note{},
		Proposals:             []Proposal{},
		Files:                 []string{},
	}, nil
}

// touchesLastContact reports whether logging this activity type counts as
// reaching the contact. Notes and generated proposals do not.
func touchesLastContact(activityType string) bool {
	switch activityType {
	case ActivityCall, ActivityEmail, ActivityMeeting, ActivityTask:
		return true
	}
	return false
}

// AppendActivity returns a copy of the contact with the activity inserted at
// the head of the history. Missing ID and date are filled in. Logging a call,
// email, meeting, or task also advances lastContact.
func AppendActivity(c Contact, a Activity) Contact {
	if a.ID == "" {
		a.ID = NewEntryID()
	}
	if a.Date.IsZero() {
		a.Date = time.Now().UTC()
	}

	out := c
	out.Activities = append([]Activity{a}, c.Activities...)
	if touchesLastContact(a.Type) {
		out.LastContact = a.Date
	}
	return out
}

// ToggleActivityDone returns a copy of the contact with the matching
// activity's done flag flipped. Unknown IDs leave the contact unchanged.
func ToggleActivityDone(c Contact, activityID string) Contact {
	out := c
	out.Activities = make([]Activity, len(c.Activities))
	copy(out.Activities, c.Activities)
	for i := range out.Activities {
		if out.Activities[i].ID == activityID {
			out.Activities[i].IsDone = !out.Activities[i].IsDone
		}
	}
	return out
}

// AddNote returns a copy of the contact with the note prepended and a "note"
// activity recorded alongside it.
func AddNote(c Contact, content, author string) Contact {
	now := time.Now().UTC()
	note := Note{
		ID:      NewEntryID(),
		Content: content,
		Date:    now,
		Author:  author,
	}

	out := c
	out.Notes = append([]Note{note}, c.Notes...)
	return AppendActivity(out, Activity{
		Type:        ActivityNote,
		Description: "Note ajoutée",
		Date:        now,
	})
}

// AttachProposal returns a copy of the contact with the proposal prepended, a
// "proposal" activity recorded, and the contract value overwritten with the
// proposal's value.
func AttachProposal(c Contact, p Proposal) Contact {
	if p.ID == "" {
		p.ID = NewEntryID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Status == "" {
		p.Status = ProposalDraft
	}
	if p.Value < 0 {
		p.Value = 0
	}

	out := c
	out.Proposals = append([]Proposal{p}, c.Proposals...)
	out.ContractValue = p.Value
	return AppendActivity(out, Activity{
		Type:        ActivityProposal,
		Description: fmt.Sprintf("Offre générée: %s", p.Title),
		Date:        p.CreatedAt,
	})
}
