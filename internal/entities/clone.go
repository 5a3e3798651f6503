package entities

import (
	"maps"
	"slices"
)

// Clone returns a deep copy of the character. Nil collections stay nil so a
// clone compares equal to its source.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c
	out.Attributes = slices.Clone(c.Attributes)
	out.Attacks = slices.Clone(c.Attacks)
	out.Armors = slices.Clone(c.Armors)

	if c.SkillCategories != nil {
		out.SkillCategories = make(map[string]SkillCategory, len(c.SkillCategories))
		for k, v := range c.SkillCategories {
			out.SkillCategories[k] = v.Clone()
		}
	}

	out.Resistances = maps.Clone(c.Resistances)
	out.Conditions = maps.Clone(c.Conditions)

	if c.Talents != nil {
		out.Talents = make([]Talent, len(c.Talents))
		for i, t := range c.Talents {
			out.Talents[i] = t.Clone()
		}
	}

	return &out
}

// CloneAll deep-copies every record in records
func CloneAll(records []*Character) []*Character {
	if records == nil {
		return nil
	}
	out := make([]*Character, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
