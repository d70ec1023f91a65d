// ABOUTME: Visualization CLI commands
// ABOUTME: Handles pipeline graph generation
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/m00n69/visicom/crm"
	"github.com/m00n69/visicom/viz"
)

// VizPipelineCommand generates the pipeline graph as DOT.
func VizPipelineCommand(tracker *crm.Tracker, args []string) error {
	fs := flag.NewFlagSet("viz pipeline", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	dot, err := viz.GeneratePipelineGraph(tracker.Board())
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(dot), 0644)
	}

	fmt.Println(dot)
	return nil
}
