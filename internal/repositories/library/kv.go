package library

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
	"github.com/KirkDiggler/npc-tracker/internal/errors"
	"github.com/KirkDiggler/npc-tracker/internal/repositories/kv"
)

type kvRepository struct {
	store  kv.Repository
	keys   Keys
	logger *zap.Logger
}

// Config contains configuration for the key-value backed repository.
type Config struct {
	Store kv.Repository
	// Keys overrides the storage keys; empty fields take their defaults.
	Keys   Keys
	Logger *zap.Logger
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Store == nil {
		return errors.InvalidArgument("store cannot be nil")
	}
	return nil
}

// New creates a library repository backed by a key-value store
func New(cfg *Config) (Repository, error) {
	return newKVRepository(cfg)
}

func newKVRepository(cfg *Config) (*kvRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	keys := DefaultKeys()
	if cfg.Keys.Library != "" {
		keys.Library = cfg.Keys.Library
	}
	if cfg.Keys.ActiveID != "" {
		keys.ActiveID = cfg.Keys.ActiveID
	}
	if cfg.Keys.Legacy != "" {
		keys.Legacy = cfg.Keys.Legacy
	}
	keys.Backup = keys.Library + BackupSuffix
	if cfg.Keys.Backup != "" {
		keys.Backup = cfg.Keys.Backup
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &kvRepository{
		store:  cfg.Store,
		keys:   keys,
		logger: logger,
	}, nil
}

func (r *kvRepository) Load(ctx context.Context) (*LoadOutput, error) {
	activeID, err := r.loadActiveID(ctx)
	if err != nil {
		return nil, err
	}

	records, err := r.loadLibrary(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		return &LoadOutput{Records: records, ActiveID: activeID, Source: SourceLibrary}, nil
	}

	legacy, err := r.loadLegacy(ctx)
	if err != nil {
		return nil, err
	}
	if legacy != nil {
		r.logger.Info("migrating legacy record",
			zap.String("key", r.keys.Legacy),
			zap.String("id", legacy.ID))
		return &LoadOutput{
			Records:  []*entities.Character{legacy},
			ActiveID: legacy.ID,
			Source:   SourceLegacy,
		}, nil
	}

	return &LoadOutput{ActiveID: activeID, Source: SourceEmpty}, nil
}

func (r *kvRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	records := input.Records
	if records == nil {
		records = []*entities.Character{}
	}

	libraryJSON, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal library")
	}
	activeJSON, err := json.Marshal(input.ActiveID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal active id")
	}

	if err := r.store.Set(ctx, r.keys.Library, string(libraryJSON)); err != nil {
		return nil, errors.Wrapf(err, "failed to save %s", r.keys.Library)
	}
	if err := r.store.Set(ctx, r.keys.ActiveID, string(activeJSON)); err != nil {
		return nil, errors.Wrapf(err, "failed to save %s", r.keys.ActiveID)
	}

	return &SaveOutput{}, nil
}

// read returns the raw value and whether the key exists
func (r *kvRepository) read(ctx context.Context, key string) (string, bool, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.IsNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to read %s", key)
	}
	return raw, true, nil
}

// libraryContents is what a raw stored library decodes to
type libraryContents struct {
	// readable is false when the value is not a JSON array.
	readable bool
	records  []*entities.Character
	nulls    int
	// undecodable counts entries that are not JSON objects.
	undecodable int
	// degraded counts records with at least one field that could not be read.
	degraded int
}

// lossy reports whether saving the decoded records would drop stored data
func (c libraryContents) lossy() bool {
	return !c.readable || c.undecodable > 0 || c.degraded > 0
}

// decodeLibrary reads each entry on its own so one bad record costs only
// itself
func decodeLibrary(raw string) libraryContents {
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return libraryContents{}
	}

	contents := libraryContents{readable: true}
	for _, entry := range entries {
		if string(bytes.TrimSpace(entry)) == "null" {
			contents.nulls++
			continue
		}
		rec, complete, err := entities.DecodeCharacter(entry)
		if err != nil {
			contents.undecodable++
			continue
		}
		if !complete {
			contents.degraded++
		}
		contents.records = append(contents.records, rec)
	}
	return contents
}

func (r *kvRepository) loadLibrary(ctx context.Context) ([]*entities.Character, error) {
	raw, ok, err := r.read(ctx, r.keys.Library)
	if err != nil || !ok {
		return nil, err
	}

	contents := decodeLibrary(raw)
	if contents.lossy() {
		r.logger.Warn("library could not be read in full, keeping a backup",
			zap.String("key", r.keys.Library),
			zap.String("backup_key", r.keys.Backup),
			zap.Bool("readable", contents.readable),
			zap.Int("undecodable", contents.undecodable),
			zap.Int("degraded", contents.degraded))
		if err := r.store.Set(ctx, r.keys.Backup, raw); err != nil {
			return nil, errors.Wrapf(err, "failed to back up %s", r.keys.Library)
		}
	}

	return contents.records, nil
}

func (r *kvRepository) loadLegacy(ctx context.Context) (*entities.Character, error) {
	raw, ok, err := r.read(ctx, r.keys.Legacy)
	if err != nil || !ok {
		return nil, err
	}

	rec, complete, err := entities.DecodeCharacter([]byte(raw))
	if err != nil {
		r.logger.Warn("ignoring unreadable legacy record",
			zap.String("key", r.keys.Legacy),
			zap.Error(err))
		return nil, nil
	}
	if !complete {
		r.logger.Warn("legacy record has unreadable fields", zap.String("key", r.keys.Legacy))
	}
	if rec.ID == "" {
		rec.ID = LegacyID
	}
	return rec, nil
}

func (r *kvRepository) loadActiveID(ctx context.Context) (string, error) {
	raw, ok, err := r.read(ctx, r.keys.ActiveID)
	if err != nil || !ok {
		return "", err
	}

	var id string
	if err := json.Unmarshal([]byte(raw), &id); err == nil {
		return id, nil
	}
	// Older writers stored the id unquoted.
	return strings.TrimSpace(raw), nil
}
