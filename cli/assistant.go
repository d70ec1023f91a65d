// ABOUTME: Assistant CLI commands
// ABOUTME: Email drafts, history analysis, and proposal generation
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/m00n69/visicom/ai"
	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/models"
)

// DraftCommand generates a follow-up email for a contact.
func DraftCommand(tracker *crm.Tracker, assistant *ai.Assistant, args []string) error {
	fs := flag.NewFlagSet("draft", flag.ExitOnError)
	ref := fs.String("contact", "", "Contact ID or search query")
	instruction := fs.String("instruction", "", "What the email should say")
	tone := fs.String("tone", "professional", "Email tone")
	_ = fs.Parse(args)

	c, err := resolveContact(tracker, *ref)
	if err != nil {
		return err
	}

	fmt.Println(assistant.GenerateEmailDraft(context.Background(), c, *instruction, *tone))
	return nil
}

// AnalyzeCommand summarizes a contact's recent history.
func AnalyzeCommand(tracker *crm.Tracker, assistant *ai.Assistant, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	ref := fs.String("contact", "", "Contact ID or search query")
	_ = fs.Parse(args)

	c, err := resolveContact(tracker, *ref)
	if err != nil {
		return err
	}

	fmt.Println(assistant.AnalyzeHistory(context.Background(), c))
	return nil
}

// ProposalCommand generates a consulting offer and optionally attaches it.
func ProposalCommand(tracker *crm.Tracker, assistant *ai.Assistant, args []string) error {
	fs := flag.NewFlagSet("proposal", flag.ExitOnError)
	ref := fs.String("contact", "", "Contact ID or search query")
	needs := fs.String("needs", "", "Specific client needs")
	standard := fs.String("standard", "", "Target standard (defaults to the contact's interest)")
	value := fs.Int64("value", 0, "Proposal value in euros")
	attach := fs.Bool("attach", false, "Attach the offer to the contact")
	_ = fs.Parse(args)

	c, err := resolveContact(tracker, *ref)
	if err != nil {
		return err
	}

	target := *standard
	if target == "" {
		target = c.CertificationInterest
	}

	text := assistant.GenerateProposal(context.Background(), c, *needs, target)
	fmt.Println(text)

	if *attach {
		title := fmt.Sprintf("Offre %s - %s", target, c.Company)
		if _, err := tracker.AttachProposal(c.ID, models.Proposal{
			Title:   title,
			Content: text,
			Value:   *value,
		}); err != nil {
			return err
		}
		fmt.Println("\n✓ Offer attached to the contact")
	}
	return nil
}

// SummarizeCommand condenses raw meeting notes into a note on the contact.
func SummarizeCommand(tracker *crm.Tracker, assistant *ai.Assistant, args []string) error {
	fs := flag.NewFlagSet("summarize", flag.ExitOnError)
	ref := fs.String("contact", "", "Contact ID or search query")
	notes := fs.String("notes", "", "Raw meeting notes (required)")
	save := fs.Bool("save", false, "Save the summary as a note on the contact")
	_ = fs.Parse(args)

	c, err := resolveContact(tracker, *ref)
	if err != nil {
		return err
	}
	if *notes == "" {
		return fmt.Errorf("--notes is required")
	}

	result := assistant.SummarizeNotes(context.Background(), *notes)
	fmt.Println(result.Summary)
	for _, item := range result.ActionItems {
		fmt.Printf("  ☐ %s\n", item)
	}

	if *save {
		content := result.Summary
		for _, item := range result.ActionItems {
			content += "\n- " + item
		}
		if _, err := tracker.AddNote(c.ID, content, "Assistant"); err != nil {
			return err
		}
		fmt.Println("\n✓ Summary saved as a note")
	}
	return nil
}
