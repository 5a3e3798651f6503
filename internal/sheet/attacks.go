package sheet

import "github.com/KirkDiggler/npc-tracker/internal/entities"

// AddAttack appends attack under id with no wear. A missing damage type
// falls back to entities.DefaultDamageType.
func AddAttack(c *entities.Character, id string, attack entities.Attack) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()

	attack.ID = id
	attack.Wear = 0
	if attack.DamageType == "" {
		attack.DamageType = entities.DefaultDamageType
	}
	next.Attacks = append(next.Attacks, attack)
	return next
}

// UpdateAttack replaces the attack with the given id, keeping its id.
// Wear is bounded to [0, entities.MaxWear].
func UpdateAttack(c *entities.Character, id string, attack entities.Attack) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	idx := next.FindAttack(id)
	if idx < 0 {
		return next
	}

	attack.ID = id
	attack.Wear = entities.Clamp(attack.Wear, 0, entities.MaxWear)
	next.Attacks[idx] = attack
	return next
}

// DeleteAttack removes the attack with the given id
func DeleteAttack(c *entities.Character, id string) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	if idx := next.FindAttack(id); idx >= 0 {
		next.Attacks = append(next.Attacks[:idx], next.Attacks[idx+1:]...)
	}
	return next
}

// UpdateAttackWear applies toggle-as-level to an attack's wear pips,
// bounded to [0, entities.MaxWear]
func UpdateAttackWear(c *entities.Character, id string, level int) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	if idx := next.FindAttack(id); idx >= 0 {
		a := &next.Attacks[idx]
		a.Wear = entities.Clamp(entities.ToggleLevel(a.Wear, level), 0, entities.MaxWear)
	}
	return next
}
