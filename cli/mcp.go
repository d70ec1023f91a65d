// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server for Claude Desktop integration
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/m00n69/visicom/ai"
	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/handlers"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(tracker *crm.Tracker, assistant *ai.Assistant) error {
	log.Println("Starting VISIcom MCP Server...")

	contactHandlers := handlers.NewContactHandlers(tracker)
	pipelineHandlers := handlers.NewPipelineHandlers(tracker)
	dataHandlers := handlers.NewDataHandlers(tracker)
	assistantHandlers := handlers.NewAssistantHandlers(tracker, assistant)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "visicom",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_contact",
		Description: "Add a new contact to the CRM",
	}, contactHandlers.AddContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_contacts",
		Description: "Search for contacts by name, company, or email",
	}, contactHandlers.FindContacts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_contact",
		Description: "Update an existing contact's information",
	}, contactHandlers.UpdateContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_activity",
		Description: "Log an interaction (call, email, meeting, task) and refresh the contact's score",
	}, contactHandlers.LogActivity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_task",
		Description: "Mark a task done or reopen it",
	}, contactHandlers.ToggleTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_note",
		Description: "Attach a note to a contact",
	}, contactHandlers.AddNote)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "attach_proposal",
		Description: "Attach a proposal to a contact and update its contract value",
	}, contactHandlers.AttachProposal)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "move_stage",
		Description: "Move a contact to another pipeline stage",
	}, pipelineHandlers.MoveStage)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_board",
		Description: "Get the kanban board grouped by pipeline stage",
	}, pipelineHandlers.GetBoard)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_stages",
		Description: "List the configured pipeline stages in order",
	}, pipelineHandlers.ListStages)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_stage",
		Description: "Append a new pipeline stage",
	}, pipelineHandlers.AddStage)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_stage",
		Description: "Remove a pipeline stage (contacts keep their status)",
	}, pipelineHandlers.RemoveStage)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_interests",
		Description: "List the configured certification interest options",
	}, pipelineHandlers.ListInterests)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_interest",
		Description: "Add a certification interest option",
	}, pipelineHandlers.AddInterest)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_interest",
		Description: "Remove a certification interest option",
	}, pipelineHandlers.RemoveInterest)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_data",
		Description: "Export all contacts as JSON",
	}, dataHandlers.ExportData)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "import_data",
		Description: "Replace the whole contact set from a JSON array",
	}, dataHandlers.ImportData)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "clear_data",
		Description: "Delete all contacts (requires confirm)",
	}, dataHandlers.ClearData)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Get pipeline totals, temperature counts, and task counts",
	}, dataHandlers.GetDashboard)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List pending tasks across all contacts, soonest first",
	}, dataHandlers.ListTasks)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "draft_email",
		Description: "Draft a follow-up email for a contact",
	}, assistantHandlers.DraftEmail)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_contact",
		Description: "Summarize a contact's recent history and suggest a next step",
	}, assistantHandlers.AnalyzeContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_proposal",
		Description: "Generate a consulting offer, optionally attaching it to the contact",
	}, assistantHandlers.GenerateProposal)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_document",
		Description: "Answer a question about a stored document by its file name",
	}, assistantHandlers.AskDocument)

	// Run server on stdio transport
	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
