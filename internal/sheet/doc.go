// Package sheet is the mutation API for a single NPC record.
//
// Every function takes the current record and returns a new one built from a
// deep copy, so the caller's record and any record previously handed out are
// never touched. Malformed input never errors: numeric text that does not
// parse degrades to a default, and targets that do not exist leave the copy
// unchanged.
//
// Functions gated by edit mode take the flag as an argument. Edit mode is
// session state owned by the caller, not by the record.
package sheet

import "github.com/KirkDiggler/npc-tracker/internal/entities"

// Mutation transforms one record into its successor
type Mutation func(c *entities.Character) *entities.Character
