// ABOUTME: Terminal dashboard rendering
// ABOUTME: Provides the ASCII overview for the stats command
package viz

import (
	"fmt"
	"strings"

	"github.com/m00n69/visicom/crm"
)

func RenderDashboard(stats crm.DashboardStats) string {
	var out strings.Builder

	// Header
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  VISICOM DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("PIPELINE OVERVIEW\n")
	renderPipeline(&out, stats.ByStage)
	out.WriteString("\n")

	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  📇 %d contacts  🔥 %d hot  💶 %d € in pipeline\n",
		stats.TotalContacts, stats.HotContacts, stats.TotalPipelineValue))
	out.WriteString(fmt.Sprintf("  📆 %d contacted in the last 30 days\n\n",
		stats.ActiveLast30Days))

	if stats.PendingTasks > 0 || stats.OverdueTasks > 0 {
		out.WriteString("NEEDS ATTENTION\n")
		if stats.OverdueTasks > 0 {
			out.WriteString(fmt.Sprintf("  ⚠️  %d overdue tasks\n", stats.OverdueTasks))
		}
		if stats.PendingTasks > stats.OverdueTasks {
			out.WriteString(fmt.Sprintf("  ○  %d tasks pending\n", stats.PendingTasks-stats.OverdueTasks))
		}
	}

	return out.String()
}

func renderPipeline(out *strings.Builder, byStage []crm.StageStats) {
	// Find max count for scaling
	maxCount := 0
	for _, ss := range byStage {
		if ss.Count > maxCount {
			maxCount = ss.Count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, ss := range byStage {
		// Calculate bar length (0-10 blocks)
		barLength := (ss.Count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		valueK := ss.Value / 1000
		out.WriteString(fmt.Sprintf("  %-13s %s  %2d (%dK €)\n",
			ss.Stage, bar, ss.Count, valueK))
	}
}
