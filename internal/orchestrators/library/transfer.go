package library

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/KirkDiggler/npc-tracker/internal/codec"
	"github.com/KirkDiggler/npc-tracker/internal/entities"
)

// Export renders the active record as a JSON document dated by the clock
func (o *Orchestrator) Export() (*codec.Document, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return codec.Export(o.records[o.activeIndex()], o.clock.Now())
}

// Import adds a record from a JSON document and makes it active. A record
// with the same id is replaced and moved to the end of the library. A
// document that is not a JSON object reports false and changes nothing; the
// error is only set when saving fails.
func (o *Orchestrator) Import(ctx context.Context, data []byte) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.writable(); err != nil {
		return false, err
	}

	record, err := codec.Decode(data, o.factory.IDGenerator())
	if err != nil {
		o.logger.Warn("import rejected", zap.Error(err))
		return false, nil
	}

	o.records = slices.DeleteFunc(o.records, func(r *entities.Character) bool {
		return r.ID == record.ID
	})
	o.records = append(o.records, record)
	o.activeID = record.ID

	o.logger.Info("imported record", zap.String("id", record.ID), zap.String("name", record.Name))
	return true, o.persist(ctx)
}

