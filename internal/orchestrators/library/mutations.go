package library

import (
	"context"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
	"github.com/KirkDiggler/npc-tracker/internal/sheet"
)

// GatedMutation is a mutation that also receives the current edit mode
type GatedMutation func(c *entities.Character, editMode bool) *entities.Character

// Apply runs m against the active record, commits the result and saves.
// It returns a copy of the committed record.
func (o *Orchestrator) Apply(ctx context.Context, m sheet.Mutation) (*entities.Character, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.writable(); err != nil {
		return nil, err
	}

	return o.apply(ctx, m)
}

// ApplyGated is Apply for edits that only take effect in edit mode
func (o *Orchestrator) ApplyGated(ctx context.Context, m GatedMutation) (*entities.Character, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.writable(); err != nil {
		return nil, err
	}

	editMode := o.editMode
	return o.apply(ctx, func(c *entities.Character) *entities.Character {
		return m(c, editMode)
	})
}

// ConsumeResources deducts costs from the active record's pools, all or
// nothing. Nothing is committed or saved when a pool falls short.
func (o *Orchestrator) ConsumeResources(ctx context.Context, costs entities.Costs) (sheet.ConsumeResult, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.writable(); err != nil {
		return sheet.ConsumeResult{}, err
	}

	i := o.activeIndex()
	next, result := sheet.ConsumeResources(o.records[i], costs)
	if !result.Success {
		return result, nil
	}

	o.records[i] = next
	return result, o.persist(ctx)
}

// ActivateTalent pays the activation cost of a talent on the active record,
// including the selected potencializacoes. found is false for an unknown
// talent id.
func (o *Orchestrator) ActivateTalent(ctx context.Context, talentID string, selected []int) (result sheet.ConsumeResult, found bool, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.writable(); err != nil {
		return result, false, err
	}

	i := o.activeIndex()
	next, result, found := sheet.ActivateTalent(o.records[i], talentID, selected)
	if !found || !result.Success {
		return result, found, nil
	}

	o.records[i] = next
	return result, true, o.persist(ctx)
}

func (o *Orchestrator) apply(ctx context.Context, m sheet.Mutation) (*entities.Character, error) {
	i := o.activeIndex()
	next := m(o.records[i])
	if next == nil {
		return o.records[i].Clone(), nil
	}

	// a mutation never changes identity
	next.ID = o.records[i].ID
	o.records[i] = next
	return next.Clone(), o.persist(ctx)
}
