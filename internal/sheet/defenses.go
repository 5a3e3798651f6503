package sheet

import "github.com/KirkDiggler/npc-tracker/internal/entities"

// ResistanceField names the part of a resistance being edited
type ResistanceField string

// Resistance fields
const (
	ResistanceValue      ResistanceField = "value"
	ResistanceImmunity   ResistanceField = "immunity"
	ResistanceVulnerable ResistanceField = "vulnerable"
)

// ConditionField names the part of an active condition being edited
type ConditionField string

// Condition fields
const (
	ConditionActive ConditionField = "active"
	ConditionLevel  ConditionField = "level"
)

// UpdateResistance edits one damage type. Turning immunity on zeroes the
// value and clears vulnerability; turning vulnerability on clears immunity;
// a value written while immune stays 0. Boolean fields read raw with
// strconv.ParseBool, numeric fields default to 0 and floor at 0.
func UpdateResistance(c *entities.Character, damageType string, field ResistanceField, raw string) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	if next.Resistances == nil {
		next.Resistances = make(map[string]entities.Resistance)
	}

	res := next.Resistances[damageType]
	switch field {
	case ResistanceValue:
		if res.Immunity {
			res.Value = 0
		} else {
			res.Value = max(0, parseIntOr(raw, 0))
		}
	case ResistanceImmunity:
		res.Immunity = parseBool(raw)
		if res.Immunity {
			res.Vulnerable = false
			res.Value = 0
		}
	case ResistanceVulnerable:
		res.Vulnerable = parseBool(raw)
		if res.Vulnerable {
			res.Immunity = false
		}
	default:
		return next
	}

	next.Resistances[damageType] = res.Normalize()
	return next
}

// UpdateAllResistances replaces the whole resistance table. Entries are
// normalized so immunity always implies zero value and no vulnerability.
func UpdateAllResistances(c *entities.Character, resistances map[string]entities.Resistance) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	next.Resistances = make(map[string]entities.Resistance, len(resistances))
	for k, v := range resistances {
		next.Resistances[k] = v.Normalize()
	}
	return next
}

// UpdateActiveCondition edits one condition. The active flag reads raw with
// strconv.ParseBool; the level defaults to 1 and never drops below 1.
// Deactivating keeps the level.
func UpdateActiveCondition(c *entities.Character, key string, field ConditionField, raw string) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	if next.Conditions == nil {
		next.Conditions = make(map[string]entities.ActiveCondition)
	}

	cond, ok := next.Conditions[key]
	if !ok {
		cond = entities.ActiveCondition{Active: false, Level: 1}
	}

	switch field {
	case ConditionActive:
		cond.Active = parseBool(raw)
	case ConditionLevel:
		cond.Level = max(1, parseIntOr(raw, 1))
	default:
		return next
	}

	next.Conditions[key] = cond
	return next
}

// UpdateAllConditions replaces the whole condition table
func UpdateAllConditions(c *entities.Character, conditions map[string]entities.ActiveCondition) *entities.Character {
	if c == nil {
		return nil
	}
	next := c.Clone()
	next.Conditions = make(map[string]entities.ActiveCondition, len(conditions))
	for k, v := range conditions {
		next.Conditions[k] = v
	}
	return next
}
