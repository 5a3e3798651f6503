package sheet

import (
	"github.com/KirkDiggler/npc-tracker/internal/entities"
)

// UpdateAttribute sets the named attribute's value from form text. Text that
// does not parse stores 0. There are no bounds.
func UpdateAttribute(c *entities.Character, name, raw string) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	value := parseIntOr(raw, 0)
	for i := range next.Attributes {
		if next.Attributes[i].Name == name {
			next.Attributes[i].Value = value
		}
	}
	return next
}

// UpdateDefense sets one defense from form text, defaulting to 0
func UpdateDefense(c *entities.Character, kind entities.DefenseKind, raw string) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	next.Defenses = next.Defenses.Set(kind, parseIntOr(raw, 0))
	return next
}

// AdjustPool moves the named pool's current value by delta, saturating at
// 0 and the pool max
func AdjustPool(c *entities.Character, kind entities.PoolKind, delta int) *entities.Character {
	return withPool(c, kind, func(p entities.ResourcePool) entities.ResourcePool {
		return p.Adjust(delta)
	})
}

// SetPoolCurrent assigns the named pool's current value, saturating at 0
// and the pool max
func SetPoolCurrent(c *entities.Character, kind entities.PoolKind, value int) *entities.Character {
	return withPool(c, kind, func(p entities.ResourcePool) entities.ResourcePool {
		return p.Set(value)
	})
}

// SetPoolMax replaces the named pool's max from form text, defaulting to 0.
// Current is not reclamped.
func SetPoolMax(c *entities.Character, kind entities.PoolKind, raw string) *entities.Character {
	newMax := parseIntOr(raw, 0)
	return withPool(c, kind, func(p entities.ResourcePool) entities.ResourcePool {
		return p.SetMax(newMax)
	})
}

// SetPoolLevel applies toggle-as-level to the named pool's severity marker
func SetPoolLevel(c *entities.Character, kind entities.PoolKind, level int) *entities.Character {
	return withPool(c, kind, func(p entities.ResourcePool) entities.ResourcePool {
		return p.SetLevel(level)
	})
}

func withPool(c *entities.Character, kind entities.PoolKind, fn func(entities.ResourcePool) entities.ResourcePool) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	if kind.Valid() {
		next.SetPool(kind, fn(next.Pool(kind)))
	}
	return next
}
