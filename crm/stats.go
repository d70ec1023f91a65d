// ABOUTME: Dashboard statistics and cross-contact task listing
// ABOUTME: Aggregates pipeline value, recent reach, temperature, and reminders
package crm

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m00n69/visicom/models"
)

// StageStats summarizes one pipeline column.
type StageStats struct {
	Stage string
	Count int
	Value int64
}

// TaskItem is one reminder-bearing activity seen across all contacts.
type TaskItem struct {
	ContactID   uuid.UUID
	ContactName string
	Company     string
	ActivityID  string
	Description string
	DueDate     *time.Time
	Done        bool
	Overdue     bool
}

// DashboardStats is the overview rendered by the dashboard surfaces.
type DashboardStats struct {
	TotalContacts      int
	TotalPipelineValue int64
	ByStage            []StageStats
	HotContacts        int
	ActiveLast30Days   int
	PendingTasks       int
	OverdueTasks       int
}

// Dashboard computes the overview snapshot for the current contact set.
func (t *Tracker) Dashboard() DashboardStats {
	now := time.Now()
	stats := DashboardStats{
		TotalContacts: len(t.contacts),
		ByStage:       make([]StageStats, len(t.stages)),
	}

	stageIdx := make(map[string]int, len(t.stages))
	for i, stage := range t.stages {
		stats.ByStage[i] = StageStats{Stage: stage}
		stageIdx[stage] = i
	}

	cutoff := now.AddDate(0, 0, -30)
	for _, c := range t.contacts {
		stats.TotalPipelineValue += c.ContractValue
		if idx, ok := stageIdx[c.Status]; ok {
			stats.ByStage[idx].Count++
			stats.ByStage[idx].Value += c.ContractValue
		}
		if models.ScoreLabel(c.Score) == models.LabelHot {
			stats.HotContacts++
		}
		if c.LastContact.After(cutoff) {
			stats.ActiveLast30Days++
		}
		for _, a := range c.Activities {
			if a.DueDate == nil || a.IsDone {
				continue
			}
			stats.PendingTasks++
			if a.IsOverdue(now) {
				stats.OverdueTasks++
			}
		}
	}
	return stats
}

// PendingTasks lists every not-done reminder-bearing activity across all
// contacts, soonest due date first.
func (t *Tracker) PendingTasks() []TaskItem {
	now := time.Now()
	var tasks []TaskItem

	for _, c := range t.contacts {
		for _, a := range c.Activities {
			if a.DueDate == nil || a.IsDone {
				continue
			}
			tasks = append(tasks, TaskItem{
				ContactID:   c.ID,
				ContactName: c.FullName(),
				Company:     c.Company,
				ActivityID:  a.ID,
				Description: a.Description,
				DueDate:     a.DueDate,
				Overdue:     a.IsOverdue(now),
			})
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].DueDate.Before(*tasks[j].DueDate)
	})
	return tasks
}
