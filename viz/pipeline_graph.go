// ABOUTME: Pipeline graph generation
// ABOUTME: Renders the kanban board as a DOT graph via graphviz
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/m00n69/visicom/crm"
)

// GeneratePipelineGraph renders the board as a left-to-right DOT graph:
// one node per stage chained in pipeline order, with each contact hanging
// off its stage. Orphaned contacts get a detached Unassigned node.
func GeneratePipelineGraph(board crm.Board) (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetRankDir(cgraph.LRRank)

	var prev *cgraph.Node
	for _, col := range board.Columns {
		label := fmt.Sprintf("%s\n%d contacts / %d €", col.Stage, len(col.Contacts), col.TotalValue)
		stageNode, err := graph.CreateNodeByName(label)
		if err != nil {
			return "", fmt.Errorf("failed to create stage node: %w", err)
		}
		stageNode.SetShape("box")

		if prev != nil {
			if _, err := graph.CreateEdgeByName("", prev, stageNode); err != nil {
				return "", fmt.Errorf("failed to create stage edge: %w", err)
			}
		}
		prev = stageNode

		for _, c := range col.Contacts {
			contactNode, err := graph.CreateNodeByName(fmt.Sprintf("%s\n%s", c.FullName(), c.Company))
			if err != nil {
				return "", fmt.Errorf("failed to create contact node: %w", err)
			}
			edge, err := graph.CreateEdgeByName("", stageNode, contactNode)
			if err != nil {
				return "", fmt.Errorf("failed to create contact edge: %w", err)
			}
			edge.SetStyle("dotted")
		}
	}

	if len(board.Unassigned) > 0 {
		orphanNode, err := graph.CreateNodeByName(fmt.Sprintf("Unassigned\n%d contacts", len(board.Unassigned)))
		if err != nil {
			return "", fmt.Errorf("failed to create unassigned node: %w", err)
		}
		orphanNode.SetShape("box")
		for _, c := range board.Unassigned {
			contactNode, err := graph.CreateNodeByName(fmt.Sprintf("%s\n%s", c.FullName(), c.Company))
			if err != nil {
				return "", fmt.Errorf("failed to create contact node: %w", err)
			}
			if _, err := graph.CreateEdgeByName("", orphanNode, contactNode); err != nil {
				return "", fmt.Errorf("failed to create contact edge: %w", err)
			}
		}
	}

	// Generate DOT source
	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}
