// ABOUTME: Data CLI commands
// ABOUTME: Export, import, wipe, stats, and demo seeding
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/models"
	"github.com/m00n69/visicom/viz"
)

// ExportCommand writes the full contact set as JSON.
func ExportCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	_ = fs.Parse(args)

	data, err := tracker.Export()
	if err != nil {
		return err
	}

	if *output != "" {
		if err := os.WriteFile(*output, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", *output, err)
		}
		fmt.Printf("✓ Exported %d contacts to %s\n", len(tracker.Contacts()), *output)
		return nil
	}
	fmt.Println(string(data))
	return nil
}

// ImportCommand replaces the full contact set from a JSON file.
func ImportCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	input := fs.String("input", "", "JSON file to import (required)")
	_ = fs.Parse(args)

	if *input == "" {
		return fmt.Errorf("--input is required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *input, err)
	}

	count, err := tracker.Import(data)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Imported %d contacts (previous set replaced)\n", count)
	return nil
}

// ClearCommand wipes all contacts after confirmation.
func ClearCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	force := fs.Bool("force", false, "Skip confirmation")
	_ = fs.Parse(args)

	if !*force {
		fmt.Print("This deletes ALL contacts. Type 'yes' to confirm: ")
		var answer string
		if _, err := fmt.Scanln(&answer); err != nil || strings.ToLower(answer) != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := tracker.Clear(); err != nil {
		return err
	}
	fmt.Println("✓ All contacts deleted")
	return nil
}

// StatsCommand prints the dashboard overview.
func StatsCommand(tracker *crm.Tracker, args []string) error {
	fmt.Print(viz.RenderDashboard(tracker.Dashboard()))
	return nil
}

// SeedCommand loads a small demo data set. Refuses to run unless the CRM
// is empty, so it can never clobber real data.
func SeedCommand(tracker *crm.Tracker, args []string) error {
	if len(tracker.Contacts()) > 0 {
		return fmt.Errorf("refusing to seed: the CRM already has contacts")
	}

	seeds := []struct {
		params   models.NewContactParams
		activity models.Activity
	}{
		{
			params: models.NewContactParams{
				FirstName: "Marie", LastName: "Dupont",
				Company: "AgroSaveur S.A.", Email: "m.dupont@agrosaveur.fr",
				Interest: "IFS Food",
				Tags:     []string{"agro", "prioritaire"},
			},
			activity: models.Activity{Type: models.ActivityMeeting, Description: "Réunion de cadrage initiale"},
		},
		{
			params: models.NewContactParams{
				FirstName: "Pierre", LastName: "Curie",
				Company: "BioTest", Email: "p.curie@biotest.fr",
				Interest: "FSSC 22000",
			},
			activity: models.Activity{Type: models.ActivityCall, Description: "Premier contact téléphonique"},
		},
		{
			params: models.NewContactParams{
				FirstName: "Sophie", LastName: "Martin",
				Company: "Logistique Froid", Email: "s.martin@logifroid.fr",
				Interest: "BRCGS",
			},
			activity: models.Activity{Type: models.ActivityEmail, Description: "Envoi de la plaquette"},
		},
	}

	for _, seed := range seeds {
		c, err := tracker.Create(seed.params)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", seed.params.Company, err)
		}
		if _, err := tracker.LogActivity(c.ID, seed.activity); err != nil {
			return fmt.Errorf("failed to seed activity for %s: %w", seed.params.Company, err)
		}
	}

	fmt.Printf("✓ Seeded %d demo contacts\n", len(seeds))
	return nil
}

// NotificationsCommand shows the active toast queue. Mostly useful for
// checking what a recent batch of operations produced; entries expire on
// their own after a few seconds.
func NotificationsCommand(tracker *crm.Tracker, args []string) error {
	active := tracker.Notifications()
	if len(active) == 0 {
		fmt.Println("No active notifications.")
		return nil
	}
	for _, n := range active {
		fmt.Printf("[%s] %s (%s)\n", n.Level, n.Message, n.CreatedAt.Format(time.Kitchen))
	}
	return nil
}
