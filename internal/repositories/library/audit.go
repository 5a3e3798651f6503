package library

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// AuditReport describes the health of the stored library without changing it
type AuditReport struct {
	// LibraryPresent is false when the library key has never been written.
	LibraryPresent bool
	// LibraryReadable is false when the stored library is not a JSON array.
	// Loading such a library backs it up and falls back to legacy data or
	// seeds.
	LibraryReadable bool
	Records         int
	NullEntries     int
	// UndecodableEntries counts entries that are not records. Loading drops
	// them after backing the library up.
	UndecodableEntries int
	// DegradedRecords counts records with a field that could not be read.
	DegradedRecords int
	EmptyIDs        int
	// DuplicateIDs lists every id held by more than one record.
	DuplicateIDs []string
	// DefaultsMissing is true when no record carries an example name, so
	// loading would append the examples.
	DefaultsMissing bool
	ActiveID        string
	// ActiveIDStale is true when the stored active id names no record.
	ActiveIDStale bool
	LegacyPresent bool
	BackupPresent bool
}

// Healthy reports whether loading the library would change nothing
func (r *AuditReport) Healthy() bool {
	return r.LibraryPresent &&
		r.LibraryReadable &&
		r.Records > 0 &&
		r.NullEntries == 0 &&
		r.UndecodableEntries == 0 &&
		r.DegradedRecords == 0 &&
		r.EmptyIDs == 0 &&
		len(r.DuplicateIDs) == 0 &&
		!r.DefaultsMissing &&
		!r.ActiveIDStale
}

// Problems lists a human readable line per finding
func (r *AuditReport) Problems() []string {
	var out []string
	switch {
	case !r.LibraryPresent:
		out = append(out, "library has not been saved yet")
	case !r.LibraryReadable:
		out = append(out, "library is not a readable record list")
	case r.Records == 0:
		out = append(out, "library holds no records")
	}
	if r.NullEntries > 0 {
		out = append(out, fmt.Sprintf("%d null entries", r.NullEntries))
	}
	if r.UndecodableEntries > 0 {
		out = append(out, fmt.Sprintf("%d entries are not records", r.UndecodableEntries))
	}
	if r.DegradedRecords > 0 {
		out = append(out, fmt.Sprintf("%d records have unreadable fields", r.DegradedRecords))
	}
	if r.EmptyIDs > 0 {
		out = append(out, fmt.Sprintf("%d records without an id", r.EmptyIDs))
	}
	if len(r.DuplicateIDs) > 0 {
		out = append(out, "duplicate ids: "+strings.Join(r.DuplicateIDs, ", "))
	}
	if r.DefaultsMissing {
		out = append(out, "example characters are missing")
	}
	if r.ActiveIDStale {
		if r.ActiveID == "" {
			out = append(out, "active id is missing")
		} else {
			out = append(out, fmt.Sprintf("active id %s names no record", r.ActiveID))
		}
	}
	return out
}

// Audit inspects the raw stored values behind a library repository, decoding
// them exactly as Load does. defaultNames are the example character names
// whose absence makes loading append the examples; nil skips that check.
func Audit(ctx context.Context, cfg *Config, defaultNames []string) (*AuditReport, error) {
	repo, err := newKVRepository(cfg)
	if err != nil {
		return nil, err
	}

	report := &AuditReport{}

	activeID, err := repo.loadActiveID(ctx)
	if err != nil {
		return nil, err
	}
	report.ActiveID = activeID

	_, report.LegacyPresent, err = repo.read(ctx, repo.keys.Legacy)
	if err != nil {
		return nil, err
	}
	_, report.BackupPresent, err = repo.read(ctx, repo.keys.Backup)
	if err != nil {
		return nil, err
	}

	raw, ok, err := repo.read(ctx, repo.keys.Library)
	if err != nil {
		return nil, err
	}
	report.LibraryPresent = ok
	if !ok {
		return report, nil
	}

	contents := decodeLibrary(raw)
	report.LibraryReadable = contents.readable
	report.Records = len(contents.records)
	report.NullEntries = contents.nulls
	report.UndecodableEntries = contents.undecodable
	report.DegradedRecords = contents.degraded

	ids := make(map[string]int)
	defaultsFound := false
	for _, rec := range contents.records {
		if slices.Contains(defaultNames, rec.Name) {
			defaultsFound = true
		}
		if rec.ID == "" {
			report.EmptyIDs++
			continue
		}
		ids[rec.ID]++
	}

	for _, id := range slices.Sorted(maps.Keys(ids)) {
		if ids[id] > 1 {
			report.DuplicateIDs = append(report.DuplicateIDs, id)
		}
	}
	if report.Records > 0 {
		report.DefaultsMissing = len(defaultNames) > 0 && !defaultsFound
		report.ActiveIDStale = ids[activeID] == 0
	}

	return report, nil
}
