// Package library persists the NPC library and the active id to a key-value store
package library

//go:generate mockgen -destination=mock/mock_repository.go -package=librarymock github.com/KirkDiggler/npc-tracker/internal/repositories/library Repository

import (
	"context"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
)

// Source reports where a loaded library came from
type Source string

// Load sources
const (
	// SourceLibrary means the primary library key held a non-empty library.
	SourceLibrary Source = "library"
	// SourceLegacy means a single legacy record was migrated into a library.
	SourceLegacy Source = "legacy"
	// SourceEmpty means nothing usable was stored.
	SourceEmpty Source = "empty"
)

// LegacyID is assigned to a migrated legacy record that lacks an id
const LegacyID = "legacy_aeliana"

// Default storage keys
const (
	DefaultLibraryKey  = "gm_npc_library"
	DefaultActiveIDKey = "active_npc_id"
	DefaultLegacyKey   = "aeliana_character_data"
)

// BackupSuffix is appended to the library key to name the key that keeps a
// stored library which could not be read in full
const BackupSuffix = "_backup"

// Repository defines the interface for library persistence
type Repository interface {
	// Load reads the library, falling back to the legacy record.
	// An absent, unparsable or empty library is not an error; Source reports
	// what was found. Entries that are not records are dropped and fields of
	// the wrong type are read leniently; when anything was dropped the raw
	// library is first copied to the backup key.
	// Returns errors.Unavailable or errors.Internal for storage failures
	Load(ctx context.Context) (*LoadOutput, error)

	// Save writes the records and the active id under their keys
	// Returns errors.InvalidArgument for nil input
	// Returns errors.Unavailable or errors.Internal for storage failures
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
}

// LoadOutput defines the output of loading the library
type LoadOutput struct {
	Records []*entities.Character
	// ActiveID is the stored active id, empty when none was stored. It is not
	// checked against Records.
	ActiveID string
	Source   Source
}

// SaveInput defines the input for saving the library
type SaveInput struct {
	Records  []*entities.Character
	ActiveID string
}

// SaveOutput defines the output of saving the library
type SaveOutput struct{}

// Keys names the storage keys the repository reads and writes
type Keys struct {
	Library  string
	ActiveID string
	Legacy   string
	// Backup defaults to Library followed by BackupSuffix.
	Backup string
}

// DefaultKeys returns the keys used when none are configured
func DefaultKeys() Keys {
	return Keys{
		Library:  DefaultLibraryKey,
		ActiveID: DefaultActiveIDKey,
		Legacy:   DefaultLegacyKey,
		Backup:   DefaultLibraryKey + BackupSuffix,
	}
}
