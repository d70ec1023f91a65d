// ABOUTME: Assistant MCP tool handlers
// ABOUTME: Implements draft_email, analyze_contact, and generate_proposal tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/m00n69/visicom/ai"
	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/models"
)

type AssistantHandlers struct {
	tracker   *crm.Tracker
	assistant *ai.Assistant
}

func NewAssistantHandlers(tracker *crm.Tracker, assistant *ai.Assistant) *AssistantHandlers {
	return &AssistantHandlers{tracker: tracker, assistant: assistant}
}

type DraftEmailInput struct {
	ContactID   string `json:"contact_id" jsonschema:"Contact ID (required)"`
	Instruction string `json:"instruction,omitempty" jsonschema:"What the email should say"`
	Tone        string `json:"tone,omitempty" jsonschema:"Email tone (e.g. formal, friendly)"`
}

type AssistantTextOutput struct {
	Text string `json:"text"`
}

func (h *AssistantHandlers) DraftEmail(ctx context.Context, request *mcp.CallToolRequest, input DraftEmailInput) (*mcp.CallToolResult, AssistantTextOutput, error) {
	contact, err := lookupContact(h.tracker, input.ContactID)
	if err != nil {
		return nil, AssistantTextOutput{}, err
	}
	text := h.assistant.GenerateEmailDraft(ctx, contact, input.Instruction, input.Tone)
	return nil, AssistantTextOutput{Text: text}, nil
}

type AnalyzeContactInput struct {
	ContactID string `json:"contact_id" jsonschema:"Contact ID (required)"`
}

func (h *AssistantHandlers) AnalyzeContact(ctx context.Context, request *mcp.CallToolRequest, input AnalyzeContactInput) (*mcp.CallToolResult, AssistantTextOutput, error) {
	contact, err := lookupContact(h.tracker, input.ContactID)
	if err != nil {
		return nil, AssistantTextOutput{}, err
	}
	text := h.assistant.AnalyzeHistory(ctx, contact)
	return nil, AssistantTextOutput{Text: text}, nil
}

type AskDocumentInput struct {
	FileName string `json:"file_name" jsonschema:"Document file name (required)"`
	Question string `json:"question" jsonschema:"Question about the document (required)"`
}

func (h *AssistantHandlers) AskDocument(ctx context.Context, request *mcp.CallToolRequest, input AskDocumentInput) (*mcp.CallToolResult, AssistantTextOutput, error) {
	if input.FileName == "" {
		return nil, AssistantTextOutput{}, fmt.Errorf("file_name is required")
	}
	if input.Question == "" {
		return nil, AssistantTextOutput{}, fmt.Errorf("question is required")
	}
	text := h.assistant.AskDocument(ctx, input.FileName, input.Question)
	return nil, AssistantTextOutput{Text: text}, nil
}

type GenerateProposalInput struct {
	ContactID string `json:"contact_id" jsonschema:"Contact ID (required)"`
	Needs     string `json:"needs,omitempty" jsonschema:"Specific client needs"`
	Standard  string `json:"standard,omitempty" jsonschema:"Target certification standard (defaults to the contact's interest)"`
	Value     int64  `json:"value,omitempty" jsonschema:"Proposal value in euros"`
	Attach    bool   `json:"attach,omitempty" jsonschema:"Attach the generated offer to the contact"`
}

type GenerateProposalOutput struct {
	Text     string `json:"text"`
	Attached bool   `json:"attached"`
}

func (h *AssistantHandlers) GenerateProposal(ctx context.Context, request *mcp.CallToolRequest, input GenerateProposalInput) (*mcp.CallToolResult, GenerateProposalOutput, error) {
	contact, err := lookupContact(h.tracker, input.ContactID)
	if err != nil {
		return nil, GenerateProposalOutput{}, err
	}

	standard := input.Standard
	if standard == "" {
		standard = contact.CertificationInterest
	}

	text := h.assistant.GenerateProposal(ctx, contact, input.Needs, standard)
	out := GenerateProposalOutput{Text: text}

	if input.Attach {
		title := fmt.Sprintf("Offre %s - %s", standard, contact.Company)
		if _, err := h.tracker.AttachProposal(contact.ID, models.Proposal{
			Title:   title,
			Content: text,
			Value:   input.Value,
		}); err != nil {
			return nil, GenerateProposalOutput{}, fmt.Errorf("failed to attach proposal: %w", err)
		}
		out.Attached = true
	}
	return nil, out, nil
}
