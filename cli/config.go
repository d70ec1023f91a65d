// ABOUTME: Configuration CLI commands
// ABOUTME: Pipeline stage list, interest list, and the assistant API key
package cli

import (
	"flag"
	"fmt"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/store"
)

// StagesCommand lists or edits the pipeline stages.
func StagesCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("stages", flag.ExitOnError)
	add := fs.String("add", "", "Append a new stage")
	remove := fs.String("remove", "", "Remove a stage (contacts keep their status)")
	_ = fs.Parse(args)

	switch {
	case *add != "":
		if err := tracker.AddStage(*add); err != nil {
			return err
		}
		fmt.Printf("✓ Stage added: %s\n", *add)
	case *remove != "":
		if err := tracker.RemoveStage(*remove); err != nil {
			return err
		}
		fmt.Printf("✓ Stage removed: %s (contacts in it are now unassigned)\n", *remove)
	}

	fmt.Printf("Pipeline: %s\n", strings.Join(tracker.Stages(), " → "))
	return nil
}

// InterestsCommand lists or edits the certification interest options.
func InterestsCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("interests", flag.ExitOnError)
	add := fs.String("add", "", "Add a new interest option")
	remove := fs.String("remove", "", "Remove an interest option")
	_ = fs.Parse(args)

	switch {
	case *add != "":
		if err := tracker.AddInterest(*add); err != nil {
			return err
		}
		fmt.Printf("✓ Interest added: %s\n", *add)
	case *remove != "":
		if err := tracker.RemoveInterest(*remove); err != nil {
			return err
		}
		fmt.Printf("✓ Interest removed: %s\n", *remove)
	}

	for _, interest := range tracker.Interests() {
		fmt.Printf("  - %s\n", interest)
	}
	return nil
}

// SetKeyCommand prompts for the assistant API key (hidden input) and stores it.
func SetKeyCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("set-key", flag.ExitOnError)
	clear := fs.Bool("clear", false, "Delete the stored key instead")
	_ = fs.Parse(args)

	if *clear {
		if err := s.DeleteAPIKey(); err != nil {
			return err
		}
		fmt.Println("✓ API key deleted")
		return nil
	}

	fmt.Print("API key: ")
	keyBytes, err := term.ReadPassword(syscall.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}
	fmt.Println() // New line after hidden input

	key := strings.TrimSpace(string(keyBytes))
	if key == "" {
		return fmt.Errorf("key is empty")
	}
	if err := s.SetAPIKey(key); err != nil {
		return err
	}
	fmt.Println("✓ API key stored")
	return nil
}
