// ABOUTME: Data MCP tool handlers
// ABOUTME: Implements export_data, import_data, clear_data, get_dashboard, and list_tasks tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/m00n69/visicom/crm"
)

type DataHandlers struct {
	tracker *crm.Tracker
}

func NewDataHandlers(tracker *crm.Tracker) *DataHandlers {
	return &DataHandlers{tracker: tracker}
}

type ExportDataInput struct{}

type ExportDataOutput struct {
	JSON  string `json:"json"`
	Count int    `json:"count"`
}

func (h *DataHandlers) ExportData(_ context.Context, request *mcp.CallToolRequest, input ExportDataInput) (*mcp.CallToolResult, ExportDataOutput, error) {
	data, err := h.tracker.Export()
	if err != nil {
		return nil, ExportDataOutput{}, fmt.Errorf("failed to export: %w", err)
	}
	return nil, ExportDataOutput{JSON: string(data), Count: len(h.tracker.Contacts())}, nil
}

type ImportDataInput struct {
	JSON string `json:"json" jsonschema:"JSON array of contacts to import (replaces the whole contact set)"`
}

type ImportDataOutput struct {
	Count int `json:"count"`
}

func (h *DataHandlers) ImportData(_ context.Context, request *mcp.CallToolRequest, input ImportDataInput) (*mcp.CallToolResult, ImportDataOutput, error) {
	if input.JSON == "" {
		return nil, ImportDataOutput{}, fmt.Errorf("json is required")
	}
	count, err := h.tracker.Import([]byte(input.JSON))
	if err != nil {
		return nil, ImportDataOutput{}, fmt.Errorf("failed to import: %w", err)
	}
	return nil, ImportDataOutput{Count: count}, nil
}

type ClearDataInput struct {
	Confirm bool `json:"confirm" jsonschema:"Must be true to wipe all contacts"`
}

type ClearDataOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *DataHandlers) ClearData(_ context.Context, request *mcp.CallToolRequest, input ClearDataInput) (*mcp.CallToolResult, ClearDataOutput, error) {
	if !input.Confirm {
		return nil, ClearDataOutput{}, fmt.Errorf("confirm must be true")
	}
	if err := h.tracker.Clear(); err != nil {
		return nil, ClearDataOutput{}, fmt.Errorf("failed to clear: %w", err)
	}
	return nil, ClearDataOutput{Success: true, Message: "all contacts deleted"}, nil
}

type GetDashboardInput struct{}

type StageStatsOutput struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
	Value int64  `json:"value"`
}

type GetDashboardOutput struct {
	TotalContacts      int                `json:"total_contacts"`
	TotalPipelineValue int64              `json:"total_pipeline_value"`
	ByStage            []StageStatsOutput `json:"by_stage"`
	HotContacts        int                `json:"hot_contacts"`
	ActiveLast30Days   int                `json:"active_last_30_days"`
	PendingTasks       int                `json:"pending_tasks"`
	OverdueTasks       int                `json:"overdue_tasks"`
}

func (h *DataHandlers) GetDashboard(_ context.Context, request *mcp.CallToolRequest, input GetDashboardInput) (*mcp.CallToolResult, GetDashboardOutput, error) {
	stats := h.tracker.Dashboard()

	out := GetDashboardOutput{
		TotalContacts:      stats.TotalContacts,
		TotalPipelineValue: stats.TotalPipelineValue,
		ByStage:            make([]StageStatsOutput, len(stats.ByStage)),
		HotContacts:        stats.HotContacts,
		ActiveLast30Days:   stats.ActiveLast30Days,
		PendingTasks:       stats.PendingTasks,
		OverdueTasks:       stats.OverdueTasks,
	}
	for i, ss := range stats.ByStage {
		out.ByStage[i] = StageStatsOutput{Stage: ss.Stage, Count: ss.Count, Value: ss.Value}
	}
	return nil, out, nil
}

type ListTasksInput struct{}

type TaskOutput struct {
	ContactID   string `json:"contact_id"`
	ContactName string `json:"contact_name"`
	Company     string `json:"company"`
	ActivityID  string `json:"activity_id"`
	Description string `json:"description"`
	DueDate     string `json:"due_date,omitempty"`
	Overdue     bool   `json:"overdue"`
}

type ListTasksOutput struct {
	Tasks []TaskOutput `json:"tasks"`
}

func (h *DataHandlers) ListTasks(_ context.Context, request *mcp.CallToolRequest, input ListTasksInput) (*mcp.CallToolResult, ListTasksOutput, error) {
	items := h.tracker.PendingTasks()

	out := ListTasksOutput{Tasks: make([]TaskOutput, len(items))}
	for i, item := range items {
		task := TaskOutput{
			ContactID:   item.ContactID.String(),
			ContactName: item.ContactName,
			Company:     item.Company,
			ActivityID:  item.ActivityID,
			Description: item.Description,
			Overdue:     item.Overdue,
		}
		if item.DueDate != nil {
			task.DueDate = item.DueDate.Format(time.RFC3339)
		}
		out.Tasks[i] = task
	}
	return nil, out, nil
}
