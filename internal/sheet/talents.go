package sheet

import "github.com/KirkDiggler/npc-tracker/internal/entities"

// AddTalent appends talent under id
func AddTalent(c *entities.Character, id string, talent entities.Talent) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()

	talent = talent.Clone()
	talent.ID = id
	next.Talents = append(next.Talents, talent)
	return next
}

// UpdateTalent replaces the talent with the given id, keeping its id
func UpdateTalent(c *entities.Character, id string, talent entities.Talent) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	idx := next.FindTalent(id)
	if idx < 0 {
		return next
	}

	talent = talent.Clone()
	talent.ID = id
	next.Talents[idx] = talent
	return next
}

// DeleteTalent removes the talent with the given id
func DeleteTalent(c *entities.Character, id string) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	if idx := next.FindTalent(id); idx >= 0 {
		next.Talents = append(next.Talents[:idx], next.Talents[idx+1:]...)
	}
	return next
}
