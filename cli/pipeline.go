// ABOUTME: Pipeline CLI commands
// ABOUTME: Board rendering, stage moves, and the cross-contact task list
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/m00n69/visicom/crm"
)

// BoardCommand prints the kanban board as text.
func BoardCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("board", flag.ExitOnError)
	_ = fs.Parse(args)

	board := tracker.Board()
	for _, col := range board.Columns {
		fmt.Printf("── %s (%d contacts, %d €)\n", col.Stage, len(col.Contacts), col.TotalValue)
		for _, c := range col.Contacts {
			fmt.Printf("   %-30s %s  score %d\n", c.FullName(), c.Company, c.Score)
		}
	}
	if len(board.Unassigned) > 0 {
		fmt.Printf("── Unassigned (%d contacts)\n", len(board.Unassigned))
		for _, c := range board.Unassigned {
			fmt.Printf("   %-30s %s  [%s]\n", c.FullName(), c.Company, c.Status)
		}
	}
	return nil
}

// MoveStageCommand moves a contact to another pipeline stage.
func MoveStageCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("move", flag.ExitOnError)
	ref := fs.String("contact", "", "Contact ID or search query")
	stage := fs.String("stage", "", "Target stage name (required)")
	_ = fs.Parse(args)

	c, err := resolveContact(tracker, *ref)
	if err != nil {
		return err
	}
	if *stage == "" {
		return fmt.Errorf("--stage is required")
	}

	updated, err := tracker.MoveStage(c.ID, *stage)
	if err != nil {
		return err
	}
	fmt.Printf("✓ %s moved to %s\n", updated.FullName(), updated.Status)
	return nil
}

// TasksCommand lists pending tasks across all contacts.
func TasksCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("tasks", flag.ExitOnError)
	overdueOnly := fs.Bool("overdue", false, "Only show overdue tasks")
	_ = fs.Parse(args)

	tasks := tracker.PendingTasks()
	if *overdueOnly {
		filtered := tasks[:0]
		for _, task := range tasks {
			if task.Overdue {
				filtered = append(filtered, task)
			}
		}
		tasks = filtered
	}

	if len(tasks) == 0 {
		fmt.Println("No pending tasks.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DUE\t\tTASK\tCONTACT\tACTIVITY ID")
	for _, task := range tasks {
		marker := " "
		if task.Overdue {
			marker = "!"
		}
		due := ""
		if task.DueDate != nil {
			due = task.DueDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s (%s)\t%s\n",
			due, marker, task.Description, task.ContactName, task.Company, task.ActivityID)
	}
	return w.Flush()
}
