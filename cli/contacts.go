// ABOUTME: Contact CLI commands
// ABOUTME: Human-friendly commands for managing contacts and their history
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/models"
)

// resolveContact accepts either a contact UUID or a search query. A query
// must match exactly one contact to be usable.
func resolveContact(tracker *crm.Tracker, ref string) (models.Contact, error) {
	if ref == "" {
		return models.Contact{}, fmt.Errorf("--contact is required")
	}

	if id, err := uuid.Parse(ref); err == nil {
		if c, ok := tracker.Get(id); ok {
			return c, nil
		}
		return models.Contact{}, fmt.Errorf("no contact with ID %s", ref)
	}

	matches := tracker.Search(ref)
	switch len(matches) {
	case 0:
		return models.Contact{}, fmt.Errorf("no contact matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = fmt.Sprintf("%s (%s)", m.FullName(), m.Company)
		}
		return models.Contact{}, fmt.Errorf("%q is ambiguous: %s", ref, strings.Join(names, ", "))
	}
}

// AddContactCommand adds a new contact.
func AddContactCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	firstName := fs.String("first-name", "", "First name")
	lastName := fs.String("last-name", "", "Last name (required)")
	company := fs.String("company", "", "Company name (required)")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	siret := fs.String("siret", "", "Company SIRET number")
	address := fs.String("address", "", "Postal address")
	interest := fs.String("interest", "", "Certification interest")
	tags := fs.String("tags", "", "Comma-separated tags")
	_ = fs.Parse(args)

	var tagList []string
	for _, t := range strings.Split(*tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tagList = append(tagList, t)
		}
	}

	contact, err := tracker.Create(models.NewContactParams{
		FirstName: *firstName,
		LastName:  *lastName,
		Company:   *company,
		Email:     *email,
		Phone:     *phone,
		Siret:     *siret,
		Address:   *address,
		Interest:  *interest,
		Tags:      tagList,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Contact created: %s (ID: %s)\n", contact.FullName(), contact.ID)
	fmt.Printf("  Company: %s\n", contact.Company)
	fmt.Printf("  Stage: %s\n", contact.Status)
	return nil
}

// ListContactsCommand lists contacts, optionally filtered.
func ListContactsCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	query := fs.String("query", "", "Search by name, company, or email")
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	contacts := tracker.Search(*query)
	if len(contacts) > *limit {
		contacts = contacts[:*limit]
	}
	if len(contacts) == 0 {
		fmt.Println("No contacts found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOMPANY\tSTAGE\tSCORE\tVALUE\tLAST CONTACT")
	for _, c := range contacts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d (%s)\t%d €\t%s\n",
			c.FullName(), c.Company, c.Status,
			c.Score, models.ScoreLabel(c.Score),
			c.ContractValue, c.LastContact.Format("2006-01-02"))
	}
	return w.Flush()
}

// ShowContactCommand prints one contact's full history.
func ShowContactCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	ref := fs.String("contact", "", "Contact ID or search query")
	_ = fs.Parse(args)

	c, err := resolveContact(tracker, *ref)
	if err != nil {
		return err
	}

	fmt.Printf("%s — %s\n", c.FullName(), c.Company)
	fmt.Printf("ID: %s\n", c.ID)
	fmt.Printf("Stage: %s | Score: %d (%s) | Value: %d €\n",
		c.Status, c.Score, models.ScoreLabel(c.Score), c.ContractValue)
	if c.Email != "" {
		fmt.Printf("Email: %s\n", c.Email)
	}
	if c.Phone != "" {
		fmt.Printf("Phone: %s\n", c.Phone)
	}
	if c.CertificationInterest != "" {
		fmt.Printf("Interest: %s\n", c.CertificationInterest)
	}
	if len(c.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(c.Tags, ", "))
	}
	fmt.Printf("Last contact: %s\n", c.LastContact.Format("2006-01-02"))

	if len(c.Activities) > 0 {
		fmt.Println("\nActivities:")
		for _, a := range c.Activities {
			marker := " "
			if a.DueDate != nil {
				if a.IsDone {
					marker = "✓"
				} else if a.IsOverdue(time.Now()) {
					marker = "!"
				} else {
					marker = "○"
				}
			}
			fmt.Printf("  [%s] %s %-8s %s\n", a.Date.Format("2006-01-02"), marker, a.Type, a.Description)
		}
	}
	if len(c.Notes) > 0 {
		fmt.Println("\nNotes:")
		for _, n := range c.Notes {
			fmt.Printf("  [%s] %s: %s\n", n.Date.Format("2006-01-02"), n.Author, n.Content)
		}
	}
	if len(c.Proposals) > 0 {
		fmt.Println("\nProposals:")
		for _, p := range c.Proposals {
			fmt.Printf("  [%s] %s — %d € (%s)\n", p.CreatedAt.Format("2006-01-02"), p.Title, p.Value, p.Status)
		}
	}
	return nil
}

// LogActivityCommand records an interaction with a contact.
func LogActivityCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("log", flag.ExitOnError)
	ref := fs.String("contact", "", "Contact ID or search query")
	actType := fs.String("type", models.ActivityCall, "Activity type: call, email, meeting, note, proposal, task")
	description := fs.String("description", "", "What happened")
	due := fs.String("due", "", "Reminder due date for tasks (YYYY-MM-DD)")
	_ = fs.Parse(args)

	c, err := resolveContact(tracker, *ref)
	if err != nil {
		return err
	}

	activity := models.Activity{Type: *actType, Description: *description}
	if *due != "" {
		dueDate, err := time.Parse("2006-01-02", *due)
		if err != nil {
			return fmt.Errorf("invalid --due date (use YYYY-MM-DD): %w", err)
		}
		activity.DueDate = &dueDate
	}

	updated, err := tracker.LogActivity(c.ID, activity)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Activity logged for %s (score now %d, %s)\n",
		updated.FullName(), updated.Score, models.ScoreLabel(updated.Score))
	return nil
}

// AddNoteCommand attaches a note to a contact.
func AddNoteCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("note", flag.ExitOnError)
	ref := fs.String("contact", "", "Contact ID or search query")
	content := fs.String("content", "", "Note content (required)")
	author := fs.String("author", "", "Note author")
	_ = fs.Parse(args)

	c, err := resolveContact(tracker, *ref)
	if err != nil {
		return err
	}

	updated, err := tracker.AddNote(c.ID, *content, *author)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Note added to %s (%d notes)\n", updated.FullName(), len(updated.Notes))
	return nil
}

// ToggleTaskCommand flips a task's done flag.
func ToggleTaskCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("toggle", flag.ExitOnError)
	ref := fs.String("contact", "", "Contact ID or search query")
	activityID := fs.String("activity", "", "Activity ID of the task (required)")
	_ = fs.Parse(args)

	c, err := resolveContact(tracker, *ref)
	if err != nil {
		return err
	}
	if *activityID == "" {
		return fmt.Errorf("--activity is required")
	}

	if _, err := tracker.ToggleTask(c.ID, *activityID); err != nil {
		return err
	}
	fmt.Println("✓ Task toggled")
	return nil
}
