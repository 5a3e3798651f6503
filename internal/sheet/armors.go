package sheet

import "github.com/KirkDiggler/npc-tracker/internal/entities"

// AddArmor appends armor under id at full pips
func AddArmor(c *entities.Character, id string, armor entities.Armor) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()

	armor.ID = id
	armor.Current = armor.Max
	next.Armors = append(next.Armors, armor)
	return next
}

// UpdateArmor replaces the armor with the given id, keeping its id.
// Current is bounded to [0, Max].
func UpdateArmor(c *entities.Character, id string, armor entities.Armor) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	idx := next.FindArmor(id)
	if idx < 0 {
		return next
	}

	armor.ID = id
	armor.Current = entities.Clamp(armor.Current, 0, armor.Max)
	next.Armors[idx] = armor
	return next
}

// DeleteArmor removes the armor with the given id
func DeleteArmor(c *entities.Character, id string) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	if idx := next.FindArmor(id); idx >= 0 {
		next.Armors = append(next.Armors[:idx], next.Armors[idx+1:]...)
	}
	return next
}

// UpdateArmorCurrent applies toggle-as-level to an armor's current pips,
// bounded to [0, Max]
func UpdateArmorCurrent(c *entities.Character, id string, level int) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	if idx := next.FindArmor(id); idx >= 0 {
		a := &next.Armors[idx]
		a.Current = entities.Clamp(entities.ToggleLevel(a.Current, level), 0, a.Max)
	}
	return next
}
