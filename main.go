// ABOUTME: Entry point for the VISIcom CRM engine
// ABOUTME: Routes to MCP server, CLI commands, the TUI, or visualizations
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/m00n69/visicom/ai"
	"github.com/m00n69/visicom/cli"
	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/notify"
	"github.com/m00n69/visicom/store"
)

const version = "0.1.0"

func main() {
	// Optional .env for VISICOM_API_KEY and friends
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dataDir := flag.String("data-dir", "", "Data directory (default: ~/.local/share/visicom)")

	// Parse global flags but don't fail on unknown (for subcommands)
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("visicom version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	s, err := store.Open(getDataDir(*dataDir))
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	tracker := crm.NewTracker(s, notify.NewQueue())
	assistant := newAssistant(s)

	switch command {
	case "mcp":
		if err := cli.MCPCommand(tracker, assistant); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "tui":
		if err := cli.TUICommand(tracker, commandArgs); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	case "crm":
		if len(commandArgs) == 0 {
			fmt.Println("Error: crm requires a subcommand")
			printUsage()
			os.Exit(1)
		}
		runCRMCommand(tracker, commandArgs[0], commandArgs[1:])

	case "board":
		if err := cli.BoardCommand(tracker, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "tasks":
		if err := cli.TasksCommand(tracker, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "data":
		if len(commandArgs) == 0 {
			fmt.Println("Error: data requires a subcommand")
			printUsage()
			os.Exit(1)
		}
		runDataCommand(tracker, commandArgs[0], commandArgs[1:])

	case "config":
		if len(commandArgs) == 0 {
			fmt.Println("Error: config requires a subcommand")
			printUsage()
			os.Exit(1)
		}
		runConfigCommand(tracker, s, commandArgs[0], commandArgs[1:])

	case "ai":
		if len(commandArgs) == 0 {
			fmt.Println("Error: ai requires a subcommand")
			printUsage()
			os.Exit(1)
		}
		runAICommand(tracker, assistant, commandArgs[0], commandArgs[1:])

	case "viz":
		if len(commandArgs) == 0 || commandArgs[0] != "pipeline" {
			fmt.Println("Error: viz requires the 'pipeline' subcommand")
			printUsage()
			os.Exit(1)
		}
		if err := cli.VizPipelineCommand(tracker, commandArgs[1:]); err != nil {
			log.Fatalf("Error: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runCRMCommand(tracker *crm.Tracker, command string, args []string) {
	var err error
	switch command {
	case "add":
		err = cli.AddContactCommand(tracker, args)
	case "list":
		err = cli.ListContactsCommand(tracker, args)
	case "show":
		err = cli.ShowContactCommand(tracker, args)
	case "log":
		err = cli.LogActivityCommand(tracker, args)
	case "note":
		err = cli.AddNoteCommand(tracker, args)
	case "toggle":
		err = cli.ToggleTaskCommand(tracker, args)
	case "move":
		err = cli.MoveStageCommand(tracker, args)
	default:
		fmt.Printf("Unknown crm command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runDataCommand(tracker *crm.Tracker, command string, args []string) {
	var err error
	switch command {
	case "export":
		err = cli.ExportCommand(tracker, args)
	case "import":
		err = cli.ImportCommand(tracker, args)
	case "clear":
		err = cli.ClearCommand(tracker, args)
	case "stats":
		err = cli.StatsCommand(tracker, args)
	case "seed":
		err = cli.SeedCommand(tracker, args)
	case "notifications":
		err = cli.NotificationsCommand(tracker, args)
	default:
		fmt.Printf("Unknown data command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runConfigCommand(tracker *crm.Tracker, s *store.Store, command string, args []string) {
	var err error
	switch command {
	case "stages":
		err = cli.StagesCommand(tracker, args)
	case "interests":
		err = cli.InterestsCommand(tracker, args)
	case "set-key":
		err = cli.SetKeyCommand(s, args)
	default:
		fmt.Printf("Unknown config command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runAICommand(tracker *crm.Tracker, assistant *ai.Assistant, command string, args []string) {
	var err error
	switch command {
	case "draft":
		err = cli.DraftCommand(tracker, assistant, args)
	case "analyze":
		err = cli.AnalyzeCommand(tracker, assistant, args)
	case "proposal":
		err = cli.ProposalCommand(tracker, assistant, args)
	case "summarize":
		err = cli.SummarizeCommand(tracker, assistant, args)
	default:
		fmt.Printf("Unknown ai command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// newAssistant prefers the stored key, falling back to the environment.
func newAssistant(s *store.Store) *ai.Assistant {
	key := s.APIKey()
	if key == "" {
		key = os.Getenv("VISICOM_API_KEY")
	}
	return ai.NewAssistant(key, os.Getenv("VISICOM_MODEL"))
}

func getDataDir(dataDir string) string {
	if dataDir != "" {
		return dataDir
	}
	return filepath.Join(xdg.DataHome, "visicom")
}

func printUsage() {
	fmt.Printf(`visicom v%s - Sales pipeline for quality consultants

USAGE:
  visicom [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --data-dir <path>      Data directory (default: ~/.local/share/visicom)

COMMANDS:
  mcp                    Start MCP server for Claude Desktop
  tui                    Interactive pipeline board
  crm                    Contact management commands
  board                  Print the pipeline board
  tasks                  List pending tasks
  data                   Export, import, stats, and maintenance
  config                 Stages, interests, and API key
  ai                     Assistant commands
  viz                    Visualization commands

CRM COMMANDS:
  visicom crm add           Add a new contact
    --last-name <name>        Last name (required)
    --company <company>       Company name (required)
    --first-name, --email, --phone, --siret, --address
    --interest <standard>     Certification interest
    --tags <a,b,c>            Comma-separated tags

  visicom crm list          List contacts
    --query <text>            Search by name, company, or email
    --limit <n>               Max results (default: 50)

  visicom crm show          Show one contact's full history
    --contact <id|query>      Contact ID or search query

  visicom crm log           Log an interaction
    --contact <id|query>      Contact ID or search query
    --type <type>             call, email, meeting, note, proposal, task
    --description <text>      What happened
    --due <YYYY-MM-DD>        Reminder due date (tasks)

  visicom crm note          Attach a note
    --contact <id|query>  --content <text>  --author <name>

  visicom crm toggle        Mark a task done or reopen it
    --contact <id|query>  --activity <id>

  visicom crm move          Move a contact to another stage
    --contact <id|query>  --stage <name>

DATA COMMANDS:
  visicom data export   --output <file>
  visicom data import   --input <file>     (replaces everything)
  visicom data clear    --force
  visicom data stats
  visicom data seed

CONFIG COMMANDS:
  visicom config stages     --add <name> | --remove <name>
  visicom config interests  --add <name> | --remove <name>
  visicom config set-key    [--clear]

AI COMMANDS:
  visicom ai draft      --contact <id|query> --instruction <text> --tone <tone>
  visicom ai analyze    --contact <id|query>
  visicom ai proposal   --contact <id|query> --standard <name> --value <euros> --attach
  visicom ai summarize  --contact <id|query> --notes <text> --save

VIZ COMMANDS:
  visicom viz pipeline      Generate the pipeline graph (DOT)
    --output <file>           Output file (default: stdout)

EXAMPLES:
  # Start MCP server for Claude Desktop
  visicom mcp

  # Add a contact
  visicom crm add --last-name "Dupont" --company "AgroSaveur S.A." --interest "IFS Food"

  # Log a meeting (score goes up by 15)
  visicom crm log --contact Dupont --type meeting --description "Réunion de cadrage"

  # Move them forward in the pipeline
  visicom crm move --contact Dupont --stage Qualified

`, version)
}
