package entities

import (
	"encoding/json"
	"maps"
	"slices"
)

// MaxSkillLevel is the highest training dot a skill can hold
const MaxSkillLevel = 3

// Skill is one trained ability inside a category. Visible controls whether
// it appears in the selected-skills view regardless of its level.
type Skill struct {
	Name    string   `json:"name"`
	Attr    AttrTags `json:"attr"`
	Level   int      `json:"level"`
	Visible bool     `json:"visible"`
	Icon    string   `json:"icon"`
}

// Clone returns a copy of s that shares no slices with it
func (s Skill) Clone() Skill {
	s.Attr = slices.Clone(s.Attr)
	return s
}

// SkillCategory groups skills under a label. Skills are keyed by name.
type SkillCategory struct {
	Label  string  `json:"label"`
	Icon   string  `json:"icon"`
	Skills []Skill `json:"skills"`
}

// Clone returns a deep copy of the category
func (sc SkillCategory) Clone() SkillCategory {
	if sc.Skills != nil {
		skills := make([]Skill, len(sc.Skills))
		for i, s := range sc.Skills {
			skills[i] = s.Clone()
		}
		sc.Skills = skills
	}
	return sc
}

// FindSkill returns the index of the named skill or -1
func (sc SkillCategory) FindSkill(name string) int {
	for i := range sc.Skills {
		if sc.Skills[i].Name == name {
			return i
		}
	}
	return -1
}

// AttrTags lists the attribute tags a skill rolls with. Documents store a
// single tag as a plain string and several tags as an array.
type AttrTags []string

// MarshalJSON writes one tag as a string and several as an array
func (a AttrTags) MarshalJSON() ([]byte, error) {
	switch len(a) {
	case 0:
		return json.Marshal("")
	case 1:
		return json.Marshal(a[0])
	default:
		return json.Marshal([]string(a))
	}
}

// UnmarshalJSON accepts either a string or an array of strings
func (a *AttrTags) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*a = nil
			return nil
		}
		*a = AttrTags{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*a = many
	return nil
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[M ~map[string]V, V any](m M) []string {
	return slices.Sorted(maps.Keys(m))
}
