// ABOUTME: Data models for CRM entities
// ABOUTME: Defines Contact, Activity, Note, and Proposal structs
package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is the root aggregate: one prospect or client contact.
// Activities, notes, proposals, and files live and die with the contact.
type Contact struct {
	ID                    uuid.UUID  `json:"id"`
	FirstName             string     `json:"firstName"`
	LastName              string     `json:"lastName"`
	Company               string     `json:"company"`
	Email                 string     `json:"email,omitempty"`
	Phone                 string     `json:"phone,omitempty"`
	Siret                 string     `json:"siret,omitempty"`
	Address               string     `json:"address,omitempty"`
	Status                string     `json:"status"`
	CertificationInterest string     `json:"certificationInterest,omitempty"`
	ContractValue         int64      `json:"contractValue"`
	Tags                  []string   `json:"tags,omitempty"`
	Score                 int        `json:"score"`
	LastContact           time.Time  `json:"lastContact"`
	Activities            []Activity `json:"activities"`
	Notes                 []Note     `json:"notes"`
	Proposals             []Proposal `json:"proposals"`
	Files                 []string   `json:"files,omitempty"`
}

// Activity is an immutable interaction record; only IsDone may flip after logging.
type Activity struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	IsDone      bool       `json:"isDone,omitempty"`
}

type Note struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	Author  string    `json:"author"`
}

type Proposal struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Value     int64     `json:"value"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Activity type constants.
const (
	ActivityCall     = "call"
	ActivityEmail    = "email"
	ActivityMeeting  = "meeting"
	ActivityTask     = "task"
	ActivityNote     = "note"
	ActivityProposal = "proposal"
)

// Proposal status constants.
const (
	ProposalDraft    = "Draft"
	ProposalSent     = "Sent"
	ProposalAccepted = "Accepted"
)

// DefaultStages is the pipeline seeded on first run. The list is user-editable
// afterwards and contacts may outlive a deleted stage (orphaned status).
var DefaultStages = []string{"Lead", "Qualified", "Proposal", "Active", "Closed"}

// DefaultInterests is the interest / offer-type list seeded on first run.
var DefaultInterests = []string{
	"IFS Food",
	"BRCGS",
	"FSSC 22000",
	"ISO 9001",
	"Audit Blanc",
	"Formation",
	"HACCP",
}

// IsOverdue reports whether the activity carries a reminder in the past
// that was never marked done.
func (a Activity) IsOverdue(now time.Time) bool {
	return a.DueDate != nil && a.DueDate.Before(now) && !a.IsDone
}

// HasOverdueTask reports whether any activity on the contact is overdue.
func (c *Contact) HasOverdueTask(now time.Time) bool {
	for _, a := range c.Activities {
		if a.IsOverdue(now) {
			return true
		}
	}
	return false
}

// FullName returns "First Last" with either part optional.
func (c *Contact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
