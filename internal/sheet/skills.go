package sheet

import "github.com/KirkDiggler/npc-tracker/internal/entities"

// UpdateSkillLevel applies toggle-as-level to one skill's training dots.
// Outside edit mode it is a no-op.
func UpdateSkillLevel(c *entities.Character, categoryKey, skillName string, level int, editMode bool) *entities.Character {
	return withSkill(c, categoryKey, skillName, editMode, func(s *entities.Skill) {
		s.Level = entities.Clamp(entities.ToggleLevel(s.Level, level), 0, entities.MaxSkillLevel)
	})
}

// ToggleSkillVisibility flips whether a skill shows in the selected view.
// Outside edit mode it is a no-op.
func ToggleSkillVisibility(c *entities.Character, categoryKey, skillName string, editMode bool) *entities.Character {
	return withSkill(c, categoryKey, skillName, editMode, func(s *entities.Skill) {
		s.Visible = !s.Visible
	})
}

func withSkill(c *entities.Character, categoryKey, skillName string, editMode bool, fn func(s *entities.Skill)) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	if !editMode {
		return next
	}

	category, ok := next.SkillCategories[categoryKey]
	if !ok {
		return next
	}
	idx := category.FindSkill(skillName)
	if idx < 0 {
		return next
	}

	fn(&category.Skills[idx])
	next.SkillCategories[categoryKey] = category
	return next
}
