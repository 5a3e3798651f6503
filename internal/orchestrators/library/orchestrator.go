// Package library implements the library store: the ordered NPC records, the
// active selection and the session edit mode, written through to storage
// after every committed change.
package library

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
	"github.com/KirkDiggler/npc-tracker/internal/errors"
	"github.com/KirkDiggler/npc-tracker/internal/pkg/clock"
	libraryrepo "github.com/KirkDiggler/npc-tracker/internal/repositories/library"
	"github.com/KirkDiggler/npc-tracker/internal/sheet"
)

// Config holds the dependencies for the library orchestrator
type Config struct {
	Repository libraryrepo.Repository
	Factory    *sheet.Factory
	Clock      clock.Clock
	Logger     *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Factory == nil {
		vb.RequiredField("Factory")
	}
	return vb.Build()
}

// Orchestrator owns the library. Every read returns copies; every change is
// committed in memory first and then saved.
type Orchestrator struct {
	repo    libraryrepo.Repository
	factory *sheet.Factory
	clock   clock.Clock
	logger  *zap.Logger

	mu       sync.Mutex
	records  []*entities.Character
	activeID string
	editMode bool
	closed   bool
}

// New hydrates a library from the repository and saves the result, so
// seeded defaults and migrated legacy data are durable from the start.
func New(ctx context.Context, cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		repo:    cfg.Repository,
		factory: cfg.Factory,
		clock:   cfg.Clock,
		logger:  cfg.Logger,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	if err := o.hydrate(ctx); err != nil {
		return nil, err
	}
	return o, nil
}

// Records returns copies of every record in library order
func (o *Orchestrator) Records() []*entities.Character {
	o.mu.Lock()
	defer o.mu.Unlock()

	return entities.CloneAll(o.records)
}

// Active returns a copy of the active record
func (o *Orchestrator) Active() *entities.Character {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.records[o.activeIndex()].Clone()
}

// ActiveID returns the id of the active record
func (o *Orchestrator) ActiveID() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.records[o.activeIndex()].ID
}

// Record returns a copy of the record with the given id
func (o *Orchestrator) Record(id string) (*entities.Character, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	i := o.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return o.records[i].Clone(), true
}

// EditMode reports whether gated profile and skill edits are allowed
func (o *Orchestrator) EditMode() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.editMode
}

// ToggleEditMode flips edit mode and returns the new value. Edit mode is
// session state and is never saved.
func (o *Orchestrator) ToggleEditMode() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.editMode = !o.editMode
	return o.editMode
}

// SetEditMode sets edit mode explicitly
func (o *Orchestrator) SetEditMode(on bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.editMode = on
}

// Close saves the library one last time. Later calls are no-ops and every
// later change is refused with errors.FailedPrecondition.
func (o *Orchestrator) Close(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil
	}
	o.closed = true
	return o.persist(ctx)
}

// writable refuses changes once the library is closed. Callers hold mu.
func (o *Orchestrator) writable() error {
	if o.closed {
		return errors.FailedPrecondition("library is closed")
	}
	return nil
}

// activeIndex resolves the active record, healing a stale id to the first
// record. Callers hold mu.
func (o *Orchestrator) activeIndex() int {
	if i := o.indexOf(o.activeID); i >= 0 {
		return i
	}
	if o.activeID != "" {
		o.logger.Warn("active id not in library, falling back to first record",
			zap.String("stale_id", o.activeID),
			zap.String("id", o.records[0].ID))
	}
	o.activeID = o.records[0].ID
	return 0
}

func (o *Orchestrator) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, r := range o.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the committed state. Callers hold mu.
func (o *Orchestrator) persist(ctx context.Context) error {
	_, err := o.repo.Save(ctx, &libraryrepo.SaveInput{
		Records:  o.records,
		ActiveID: o.activeID,
	})
	if err != nil {
		o.logger.Error("failed to save library",
			zap.Int("records", len(o.records)),
			zap.String("active_id", o.activeID),
			zap.Error(err))
		return errors.Wrap(err, "failed to save library")
	}
	return nil
}
