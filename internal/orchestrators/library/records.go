package library

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
)

// CopySuffix is appended to the name of a duplicated record
const CopySuffix = " (Copy)"

// SwitchActive makes id the active record and leaves edit mode. Unknown ids
// are ignored and report false.
func (o *Orchestrator) SwitchActive(ctx context.Context, id string) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.writable(); err != nil {
		return false, err
	}

	if o.indexOf(id) < 0 {
		return false, nil
	}

	o.activeID = id
	o.editMode = false
	return true, o.persist(ctx)
}

// Create appends a fresh record, makes it active and enters edit mode
func (o *Orchestrator) Create(ctx context.Context, name string) (*entities.Character, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.writable(); err != nil {
		return nil, err
	}

	record := o.factory.New(name)
	o.records = append(o.records, record)
	o.activeID = record.ID
	o.editMode = true

	o.logger.Debug("created record", zap.String("id", record.ID), zap.String("name", record.Name))
	return record.Clone(), o.persist(ctx)
}

// Duplicate appends a deep copy of id under a new id and makes it active.
// Unknown ids are ignored and report false.
func (o *Orchestrator) Duplicate(ctx context.Context, id string) (*entities.Character, bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.writable(); err != nil {
		return nil, false, err
	}

	i := o.indexOf(id)
	if i < 0 {
		return nil, false, nil
	}

	record := o.records[i].Clone()
	record.ID = o.factory.NewID()
	record.Name += CopySuffix
	o.records = append(o.records, record)
	o.activeID = record.ID

	o.logger.Debug("duplicated record", zap.String("source_id", id), zap.String("id", record.ID))
	return record.Clone(), true, o.persist(ctx)
}

// Delete removes id from the library. The last remaining record is never
// removed; refused and unknown deletions report false. Removing the active
// record activates the first remaining one.
func (o *Orchestrator) Delete(ctx context.Context, id string) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.writable(); err != nil {
		return false, err
	}

	if len(o.records) <= 1 {
		o.logger.Info("refusing to delete the last record", zap.String("id", id))
		return false, nil
	}

	i := o.indexOf(id)
	if i < 0 {
		return false, nil
	}

	o.records = slices.Delete(o.records, i, i+1)
	if o.activeID == id {
		o.activeID = o.records[0].ID
	}

	return true, o.persist(ctx)
}

// NewID returns a fresh id for a record or a nested item such as an attack
func (o *Orchestrator) NewID() string {
	return o.factory.NewID()
}
