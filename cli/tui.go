// ABOUTME: TUI subcommand
// ABOUTME: Launches the full-screen pipeline board
package cli

import (
	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/tui"
)

// TUICommand starts the interactive board.
func TUICommand(tracker *crm.Tracker, args []string) error {
	return tui.Run(tracker)
}
