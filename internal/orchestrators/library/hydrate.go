package library

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
	"github.com/KirkDiggler/npc-tracker/internal/errors"
)

func (o *Orchestrator) hydrate(ctx context.Context) error {
	out, err := o.repo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load library")
	}

	records := slices.DeleteFunc(slices.Clone(out.Records), func(r *entities.Character) bool {
		return r == nil
	})
	o.logger.Info("library loaded",
		zap.String("source", string(out.Source)),
		zap.Int("records", len(records)))

	if len(records) == 0 {
		records = o.factory.Samples()
		o.logger.Info("seeded example characters", zap.Int("records", len(records)))
	} else {
		records = o.ensureDefaults(records)
	}

	o.records = o.repairIDs(records)
	o.activeID = out.ActiveID
	o.activeIndex()

	return o.persist(ctx)
}

// ensureDefaults appends the example characters when none of their names
// appear in records. It never removes anything.
func (o *Orchestrator) ensureDefaults(records []*entities.Character) []*entities.Character {
	names := o.factory.Catalog().SampleNames()
	for _, r := range records {
		if slices.Contains(names, r.Name) {
			return records
		}
	}

	samples := o.factory.Samples()
	o.logger.Info("example characters missing, adding them", zap.Int("added", len(samples)))
	return append(records, samples...)
}

// repairIDs gives a fresh id to any record whose id is empty or already
// taken by an earlier record, keeping ids unique.
func (o *Orchestrator) repairIDs(records []*entities.Character) []*entities.Character {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; r.ID == "" || dup {
			old := r.ID
			r.ID = o.factory.NewID()
			o.logger.Warn("reassigned record id",
				zap.String("name", r.Name),
				zap.String("old_id", old),
				zap.String("id", r.ID))
		}
		seen[r.ID] = struct{}{}
	}
	return records
}
