// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/npc-tracker/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults: level 1,
// three full pools of 10 and empty collections
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &entities.Character{
			ID:              "npc-test-123",
			Name:            "Test NPC",
			Level:           1,
			NextLevel:       1000,
			Speed:           "9m",
			Perception:      10,
			Attributes:      []entities.Attribute{},
			SkillCategories: map[string]entities.SkillCategory{},
			Vitality:        entities.NewResourcePool(10),
			Focus:           entities.NewResourcePool(10),
			Will:            entities.NewResourcePool(10),
			Attacks:         []entities.Attack{},
			Armors:          []entities.Armor{},
			Resistances:     map[string]entities.Resistance{},
			Conditions:      map[string]entities.ActiveCondition{},
			Talents:         []entities.Talent{},
		},
	}
}

// WithID sets the record ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the record name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithLevel sets the character level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithPool sets one resource pool
func (b *CharacterBuilder) WithPool(kind entities.PoolKind, current, maxValue int) *CharacterBuilder {
	b.character.SetPool(kind, entities.ResourcePool{Current: current, Max: maxValue})
	return b
}

// WithAttribute adds an attribute
func (b *CharacterBuilder) WithAttribute(name string, value int) *CharacterBuilder {
	b.character.Attributes = append(b.character.Attributes, entities.Attribute{Name: name, Value: value})
	return b
}

// WithSkill adds a skill to a category, creating the category if needed
func (b *CharacterBuilder) WithSkill(category string, skill entities.Skill) *CharacterBuilder {
	cat := b.character.SkillCategories[category]
	if cat.Label == "" {
		cat.Label = category
	}
	cat.Skills = append(cat.Skills, skill)
	b.character.SkillCategories[category] = cat
	return b
}

// WithAttack adds an attack
func (b *CharacterBuilder) WithAttack(attack entities.Attack) *CharacterBuilder {
	b.character.Attacks = append(b.character.Attacks, attack)
	return b
}

// WithArmor adds a piece of armor
func (b *CharacterBuilder) WithArmor(armor entities.Armor) *CharacterBuilder {
	b.character.Armors = append(b.character.Armors, armor)
	return b
}

// WithTalent adds a talent
func (b *CharacterBuilder) WithTalent(talent entities.Talent) *CharacterBuilder {
	b.character.Talents = append(b.character.Talents, talent)
	return b
}

// WithResistance sets one damage resistance
func (b *CharacterBuilder) WithResistance(damageType string, res entities.Resistance) *CharacterBuilder {
	b.character.Resistances[damageType] = res
	return b
}

// WithCondition sets one condition
func (b *CharacterBuilder) WithCondition(key string, cond entities.ActiveCondition) *CharacterBuilder {
	b.character.Conditions[key] = cond
	return b
}

// Build returns a copy of the built character, so the builder can be reused
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character.Clone()
}
