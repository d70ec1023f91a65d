// ABOUTME: Pipeline board grouping
// ABOUTME: Buckets contacts into stage columns plus an unassigned bucket
package crm

import (
	"github.com/m00n69/visicom/models"
)

// Column is one pipeline stage with its contacts and summed contract value.
type Column struct {
	Stage      string
	Contacts   []models.Contact
	TotalValue int64
}

// Board is the kanban view of the contact set. Contacts whose status matches
// no configured stage land in Unassigned instead of disappearing: stage
// deletion never migrates contacts, so the bucket makes orphans visible.
type Board struct {
	Columns    []Column
	Unassigned []models.Contact
}

// Board groups the current contacts by pipeline stage, preserving stage
// order and, within a column, contact-set order (newest first).
func (t *Tracker) Board() Board {
	b := Board{Columns: make([]Column, len(t.stages))}

	known := make(map[string]int, len(t.stages))
	for i, stage := range t.stages {
		b.Columns[i] = Column{Stage: stage}
		known[stage] = i
	}

	for _, c := range t.contacts {
		idx, ok := known[c.Status]
		if !ok {
			b.Unassigned = append(b.Unassigned, c)
			continue
		}
		b.Columns[idx].Contacts = append(b.Columns[idx].Contacts, c)
		b.Columns[idx].TotalValue += c.ContractValue
	}
	return b
}
