// ABOUTME: Pipeline MCP tool handlers
// ABOUTME: Implements move_stage, get_board, and stage/interest configuration tools
package handlers

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/m00n69/visicom/crm"
)

type PipelineHandlers struct {
	tracker *crm.Tracker
}

func NewPipelineHandlers(tracker *crm.Tracker) *PipelineHandlers {
	return &PipelineHandlers{tracker: tracker}
}

type MoveStageInput struct {
	ContactID string `json:"contact_id" jsonschema:"Contact ID (required)"`
	Stage     string `json:"stage" jsonschema:"Target stage name (required)"`
}

func (h *PipelineHandlers) MoveStage(_ context.Context, request *mcp.CallToolRequest, input MoveStageInput) (*mcp.CallToolResult, ContactOutput, error) {
	contact, err := lookupContact(h.tracker, input.ContactID)
	if err != nil {
		return nil, ContactOutput{}, err
	}
	if input.Stage == "" {
		return nil, ContactOutput{}, fmt.Errorf("stage is required")
	}

	updated, err := h.tracker.MoveStage(contact.ID, input.Stage)
	if err != nil {
		return nil, ContactOutput{}, fmt.Errorf("failed to move stage: %w", err)
	}
	return nil, contactToOutput(updated), nil
}

type GetBoardInput struct{}

type BoardColumnOutput struct {
	Stage      string          `json:"stage"`
	TotalValue int64           `json:"total_value"`
	Contacts   []ContactOutput `json:"contacts"`
}

type GetBoardOutput struct {
	Columns    []BoardColumnOutput `json:"columns"`
	Unassigned []ContactOutput     `json:"unassigned,omitempty"`
}

func (h *PipelineHandlers) GetBoard(_ context.Context, request *mcp.CallToolRequest, input GetBoardInput) (*mcp.CallToolResult, GetBoardOutput, error) {
	board := h.tracker.Board()

	out := GetBoardOutput{Columns: make([]BoardColumnOutput, len(board.Columns))}
	for i, col := range board.Columns {
		oc := BoardColumnOutput{
			Stage:      col.Stage,
			TotalValue: col.TotalValue,
			Contacts:   make([]ContactOutput, len(col.Contacts)),
		}
		for j, c := range col.Contacts {
			oc.Contacts[j] = contactToOutput(c)
		}
		out.Columns[i] = oc
	}
	for _, c := range board.Unassigned {
		out.Unassigned = append(out.Unassigned, contactToOutput(c))
	}
	return nil, out, nil
}

type ListStagesInput struct{}

type ListStagesOutput struct {
	Stages []string `json:"stages"`
}

func (h *PipelineHandlers) ListStages(_ context.Context, request *mcp.CallToolRequest, input ListStagesInput) (*mcp.CallToolResult, ListStagesOutput, error) {
	return nil, ListStagesOutput{Stages: h.tracker.Stages()}, nil
}

type StageConfigInput struct {
	Name string `json:"name" jsonschema:"Stage name (required)"`
}

func (h *PipelineHandlers) AddStage(_ context.Context, request *mcp.CallToolRequest, input StageConfigInput) (*mcp.CallToolResult, ListStagesOutput, error) {
	if err := h.tracker.AddStage(input.Name); err != nil {
		return nil, ListStagesOutput{}, fmt.Errorf("failed to add stage: %w", err)
	}
	return nil, ListStagesOutput{Stages: h.tracker.Stages()}, nil
}

func (h *PipelineHandlers) RemoveStage(_ context.Context, request *mcp.CallToolRequest, input StageConfigInput) (*mcp.CallToolResult, ListStagesOutput, error) {
	if err := h.tracker.RemoveStage(input.Name); err != nil {
		return nil, ListStagesOutput{}, fmt.Errorf("failed to remove stage: %w", err)
	}
	return nil, ListStagesOutput{Stages: h.tracker.Stages()}, nil
}

type ListInterestsOutput struct {
	Interests []string `json:"interests"`
}

func (h *PipelineHandlers) ListInterests(_ context.Context, request *mcp.CallToolRequest, input ListStagesInput) (*mcp.CallToolResult, ListInterestsOutput, error) {
	return nil, ListInterestsOutput{Interests: h.tracker.Interests()}, nil
}

func (h *PipelineHandlers) AddInterest(_ context.Context, request *mcp.CallToolRequest, input StageConfigInput) (*mcp.CallToolResult, ListInterestsOutput, error) {
	if err := h.tracker.AddInterest(input.Name); err != nil {
		return nil, ListInterestsOutput{}, fmt.Errorf("failed to add interest: %w", err)
	}
	return nil, ListInterestsOutput{Interests: h.tracker.Interests()}, nil
}

func (h *PipelineHandlers) RemoveInterest(_ context.Context, request *mcp.CallToolRequest, input StageConfigInput) (*mcp.CallToolResult, ListInterestsOutput, error) {
	if err := h.tracker.RemoveInterest(input.Name); err != nil {
		return nil, ListInterestsOutput{}, fmt.Errorf("failed to remove interest: %w", err)
	}
	return nil, ListInterestsOutput{Interests: h.tracker.Interests()}, nil
}
