// Package codec converts a single NPC record to and from a portable JSON document
package codec

import (
	"encoding/json"
	"regexp"
	"time"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
	"github.com/KirkDiggler/npc-tracker/internal/errors"
	"github.com/KirkDiggler/npc-tracker/internal/pkg/idgen"
)

const (
	filenamePrefix = "character_"
	filenameExt    = ".json"
	dateLayout     = "2006-01-02"
	indent         = "  "
)

var whitespace = regexp.MustCompile(`\s+`)

// Document is an exported record ready to be written to a file
type Document struct {
	Filename string
	Data     []byte
}

// Filename suggests a file name for a record exported at the given time
func Filename(name string, at time.Time) string {
	return filenamePrefix + whitespace.ReplaceAllString(name, "_") + "_" + at.Format(dateLayout) + filenameExt
}

// Export renders the record as pretty-printed JSON
func Export(record *entities.Character, at time.Time) (*Document, error) {
	if record == nil {
		return nil, errors.InvalidArgument("record is required")
	}

	data, err := json.MarshalIndent(record, "", indent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal record")
	}

	return &Document{
		Filename: Filename(record.Name, at),
		Data:     data,
	}, nil
}

// Decode parses an imported document into a record. The document must be a
// JSON object; fields of the wrong type are read leniently and a missing or
// empty id is replaced with one from ids.
// Returns errors.InvalidArgument for anything that is not a JSON object
func Decode(data []byte, ids idgen.Generator) (*entities.Character, error) {
	record, _, err := entities.DecodeCharacter(data)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "document is not a JSON object")
	}

	if record.ID == "" {
		if ids == nil {
			return nil, errors.InvalidArgument("document has no id and no generator was provided")
		}
		record.ID = ids.Generate()
	}

	return record, nil
}
