// ABOUTME: Pipeline stage and interest list configuration
// ABOUTME: Whole-list replace semantics, persisted independently of contacts
package crm

import (
	"fmt"
	"strings"
)

// Stages returns the ordered pipeline stage list.
func (t *Tracker) Stages() []string {
	out := make([]string, len(t.stages))
	copy(out, t.stages)
	return out
}

// AddStage appends a new stage at the end of the pipeline. Duplicates and
// empty names are rejected.
func (t *Tracker) AddStage(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("stage name is required")
	}
	for _, s := range t.stages {
		if s == name {
			return fmt.Errorf("stage already exists: %s", name)
		}
	}

	t.stages = append(t.stages, name)
	if err := t.store.SaveStages(t.stages); err != nil {
		return err
	}
	t.queue.Success("Étape ajoutée au pipeline")
	return nil
}

// RemoveStage deletes a stage from the list. Contacts currently holding the
// status are deliberately left untouched: the removal is O(1) and
// non-destructive, and orphaned contacts surface in the board's unassigned
// bucket.
func (t *Tracker) RemoveStage(name string) error {
	kept := t.stages[:0]
	found := false
	for _, s := range t.stages {
		if s == name {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return fmt.Errorf("stage not found: %s", name)
	}

	t.stages = kept
	if err := t.store.SaveStages(t.stages); err != nil {
		return err
	}
	t.queue.Success("Étape supprimée du pipeline")
	return nil
}

// Interests returns the interest / offer-type option list.
func (t *Tracker) Interests() []string {
	out := make([]string, len(t.interests))
	copy(out, t.interests)
	return out
}

// AddInterest appends a new interest option. Duplicates and empty names are
// rejected.
func (t *Tracker) AddInterest(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("interest name is required")
	}
	for _, o := range t.interests {
		if o == name {
			return fmt.Errorf("interest already exists: %s", name)
		}
	}

	t.interests = append(t.interests, name)
	if err := t.store.SaveInterests(t.interests); err != nil {
		return err
	}
	t.queue.Success("Référentiel ajouté")
	return nil
}

// RemoveInterest deletes an interest option. Contacts keep whatever free-text
// interest they already carry.
func (t *Tracker) RemoveInterest(name string) error {
	kept := t.interests[:0]
	found := false
	for _, o := range t.interests {
		if o == name {
			found = true
			continue
		}
		kept = append(kept, o)
	}
	if !found {
		return fmt.Errorf("interest not found: %s", name)
	}

	t.interests = kept
	if err := t.store.SaveInterests(t.interests); err != nil {
		return err
	}
	t.queue.Success("Référentiel supprimé")
	return nil
}
