// ABOUTME: Contact MCP tool handlers
// ABOUTME: Implements add_contact, find_contacts, update_contact, log_activity, toggle_task, add_note, and attach_proposal tools
package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/models"
)

type ContactHandlers struct {
	tracker *crm.Tracker
}

func NewContactHandlers(tracker *crm.Tracker) *ContactHandlers {
	return &ContactHandlers{tracker: tracker}
}

type AddContactInput struct {
	FirstName string `json:"first_name,omitempty" jsonschema:"Contact first name"`
	LastName  string `json:"last_name" jsonschema:"Contact last name (required)"`
	Company   string `json:"company" jsonschema:"Company name (required)"`
	Email     string `json:"email,omitempty" jsonschema:"Contact email address"`
	Phone     string `json:"phone,omitempty" jsonschema:"Contact phone number"`
	Siret     string `json:"siret,omitempty" jsonschema:"Company SIRET number"`
	Address   string `json:"address,omitempty" jsonschema:"Postal address"`
	Interest  string `json:"interest,omitempty" jsonschema:"Certification interest (e.g. IFS Food, BRCGS)"`
	Tags      string `json:"tags,omitempty" jsonschema:"Comma-separated tags"`
}

type ContactOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Status      string `json:"status"`
	Interest    string `json:"interest,omitempty"`
	Score       int    `json:"score"`
	ScoreLabel  string `json:"score_label"`
	Value       int64  `json:"contract_value"`
	LastContact string `json:"last_contact"`
	Activities  int    `json:"activity_count"`
	Notes       int    `json:"note_count"`
	Proposals   int    `json:"proposal_count"`
}

func (h *ContactHandlers) AddContact(_ context.Context, request *mcp.CallToolRequest, input AddContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	contact, err := h.tracker.Create(models.NewContactParams{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Company:   input.Company,
		Email:     input.Email,
		Phone:     input.Phone,
		Siret:     input.Siret,
		Address:   input.Address,
		Interest:  input.Interest,
		Tags:      splitTags(input.Tags),
	})
	if err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to create contact: %w", err)
	}
	return nil, contactToOutput(contact), nil
}

type FindContactsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Search query (matches name, company, and email)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
}

func (h *ContactHandlers) FindContacts(_ context.Context, request *mcp.CallToolRequest, input FindContactsInput) (*mcp.CallToolResult, FindContactsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}

	matches := h.tracker.Search(input.Query)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	result := make([]ContactOutput, len(matches))
	for i, c := range matches {
		result[i] = contactToOutput(c)
	}
	return nil, FindContactsOutput{Contacts: result}, nil
}

type UpdateContactInput struct {
	ID        string `json:"id" jsonschema:"Contact ID (required)"`
	FirstName string `json:"first_name,omitempty" jsonschema:"Updated first name"`
	LastName  string `json:"last_name,omitempty" jsonschema:"Updated last name"`
	Company   string `json:"company,omitempty" jsonschema:"Updated company name"`
	Email     string `json:"email,omitempty" jsonschema:"Updated email address"`
	Phone     string `json:"phone,omitempty" jsonschema:"Updated phone number"`
	Interest  string `json:"interest,omitempty" jsonschema:"Updated certification interest"`
}

func (h *ContactHandlers) UpdateContact(_ context.Context, request *mcp.CallToolRequest, input UpdateContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	contact, err := h.lookup(input.ID)
	if err != nil {
		return nil, ContactOutput{}, err
	}

	if input.FirstName != "" {
		contact.FirstName = input.FirstName
	}
	if input.LastName != "" {
		contact.LastName = input.LastName
	}
	if input.Company != "" {
		contact.Company = input.Company
	}
	if input.Email != "" {
		contact.Email = input.Email
	}
	if input.Phone != "" {
		contact.Phone = input.Phone
	}
	if input.Interest != "" {
		contact.CertificationInterest = input.Interest
	}

	updated, err := h.tracker.Update(contact)
	if err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to update contact: %w", err)
	}
	return nil, contactToOutput(updated), nil
}

type LogActivityInput struct {
	ContactID   string `json:"contact_id" jsonschema:"Contact ID (required)"`
	Type        string `json:"type" jsonschema:"Activity type: call, email, meeting, note, proposal, or task"`
	Description string `json:"description,omitempty" jsonschema:"What happened"`
	DueDate     string `json:"due_date,omitempty" jsonschema:"Reminder due date for tasks (ISO 8601)"`
}

func (h *ContactHandlers) LogActivity(_ context.Context, request *mcp.CallToolRequest, input LogActivityInput) (*mcp.CallToolResult, ContactOutput, error) {
	contact, err := h.lookup(input.ContactID)
	if err != nil {
		return nil, ContactOutput{}, err
	}

	activity := models.Activity{
		Type:        input.Type,
		Description: input.Description,
	}
	if input.DueDate != "" {
		due, err := time.Parse(time.RFC3339, input.DueDate)
		if err != nil {
			return nil, ContactOutput{}, fmt.Errorf("invalid due_date format (use ISO 8601/RFC3339): %w", err)
		}
		activity.DueDate = &due
	}

	updated, err := h.tracker.LogActivity(contact.ID, activity)
	if err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to log activity: %w", err)
	}
	return nil, contactToOutput(updated), nil
}

type ToggleTaskInput struct {
	ContactID  string `json:"contact_id" jsonschema:"Contact ID (required)"`
	ActivityID string `json:"activity_id" jsonschema:"Activity ID of the task (required)"`
}

func (h *ContactHandlers) ToggleTask(_ context.Context, request *mcp.CallToolRequest, input ToggleTaskInput) (*mcp.CallToolResult, ContactOutput, error) {
	contact, err := h.lookup(input.ContactID)
	if err != nil {
		return nil, ContactOutput{}, err
	}
	if input.ActivityID == "" {
		return nil, ContactOutput{}, fmt.Errorf("activity_id is required")
	}

	updated, err := h.tracker.ToggleTask(contact.ID, input.ActivityID)
	if err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to toggle task: %w", err)
	}
	return nil, contactToOutput(updated), nil
}

type AddNoteInput struct {
	ContactID string `json:"contact_id" jsonschema:"Contact ID (required)"`
	Content   string `json:"content" jsonschema:"Note content (required)"`
	Author    string `json:"author,omitempty" jsonschema:"Note author (defaults to Consultant)"`
}

func (h *ContactHandlers) AddNote(_ context.Context, request *mcp.CallToolRequest, input AddNoteInput) (*mcp.CallToolResult, ContactOutput, error) {
	contact, err := h.lookup(input.ContactID)
	if err != nil {
		return nil, ContactOutput{}, err
	}

	updated, err := h.tracker.AddNote(contact.ID, input.Content, input.Author)
	if err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to add note: %w", err)
	}
	return nil, contactToOutput(updated), nil
}

type AttachProposalInput struct {
	ContactID string `json:"contact_id" jsonschema:"Contact ID (required)"`
	Title     string `json:"title" jsonschema:"Proposal title (required)"`
	Content   string `json:"content,omitempty" jsonschema:"Proposal body"`
	Value     int64  `json:"value,omitempty" jsonschema:"Proposal value in euros"`
}

func (h *ContactHandlers) AttachProposal(_ context.Context, request *mcp.CallToolRequest, input AttachProposalInput) (*mcp.CallToolResult, ContactOutput, error) {
	contact, err := h.lookup(input.ContactID)
	if err != nil {
		return nil, ContactOutput{}, err
	}
	if input.Title == "" {
		return nil, ContactOutput{}, fmt.Errorf("title is required")
	}

	updated, err := h.tracker.AttachProposal(contact.ID, models.Proposal{
		Title:   input.Title,
		Content: input.Content,
		Value:   input.Value,
	})
	if err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to attach proposal: %w", err)
	}
	return nil, contactToOutput(updated), nil
}

func (h *ContactHandlers) lookup(id string) (models.Contact, error) {
	return lookupContact(h.tracker, id)
}

func lookupContact(tracker *crm.Tracker, id string) (models.Contact, error) {
	if id == "" {
		return models.Contact{}, fmt.Errorf("contact_id is required")
	}
	contactID, err := uuid.Parse(id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("invalid contact_id: %w", err)
	}
	contact, ok := tracker.Get(contactID)
	if !ok {
		return models.Contact{}, fmt.Errorf("contact not found")
	}
	return contact, nil
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func contactToOutput(c models.Contact) ContactOutput {
	return ContactOutput{
		ID:          c.ID.String(),
		Name:        c.FullName(),
		Company:     c.Company,
		Email:       c.Email,
		Phone:       c.Phone,
		Status:      c.Status,
		Interest:    c.CertificationInterest,
		Score:       c.Score,
		ScoreLabel:  models.ScoreLabel(c.Score),
		Value:       c.ContractValue,
		LastContact: c.LastContact.Format(time.RFC3339),
		Activities:  len(c.Activities),
		Notes:       len(c.Notes),
		Proposals:   len(c.Proposals),
	}
}
