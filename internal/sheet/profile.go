package sheet

import "github.com/KirkDiggler/npc-tracker/internal/entities"

// The profile fields below only change in edit mode.

// UpdateName renames the record
func UpdateName(c *entities.Character, name string, editMode bool) *entities.Character {
	return gated(c, editMode, func(next *entities.Character) {
		next.Name = name
	})
}

// UpdateLevel sets the character level from form text, defaulting to 1
func UpdateLevel(c *entities.Character, raw string, editMode bool) *entities.Character {
	return gated(c, editMode, func(next *entities.Character) {
		next.Level = parseIntOr(raw, 1)
	})
}

// UpdateXP sets accumulated experience from form text, defaulting to 0
func UpdateXP(c *entities.Character, raw string, editMode bool) *entities.Character {
	return gated(c, editMode, func(next *entities.Character) {
		next.XP = parseIntOr(raw, 0)
	})
}

// UpdateNextLevel sets the experience threshold from form text, defaulting to 0
func UpdateNextLevel(c *entities.Character, raw string, editMode bool) *entities.Character {
	return gated(c, editMode, func(next *entities.Character) {
		next.NextLevel = parseIntOr(raw, 0)
	})
}

// UpdateSpeed sets the free-text movement speed
func UpdateSpeed(c *entities.Character, speed string, editMode bool) *entities.Character {
	return gated(c, editMode, func(next *entities.Character) {
		next.Speed = speed
	})
}

// UpdatePerception sets passive perception from form text, defaulting to 0
func UpdatePerception(c *entities.Character, raw string, editMode bool) *entities.Character {
	return gated(c, editMode, func(next *entities.Character) {
		next.Perception = parseIntOr(raw, 0)
	})
}

func gated(c *entities.Character, editMode bool, fn func(next *entities.Character)) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	if editMode {
		fn(next)
	}
	return next
}
