// Package rules provides the read-only reference catalog for the ruleset:
// attributes, skill categories, conditions and damage resistances, plus the
// example characters seeded into an empty library.
package rules

import (
	"bytes"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
)

//go:embed data/*.yaml
var dataFS embed.FS

// AttributeDef is the catalog entry for one attribute
type AttributeDef struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
	Tag   string `yaml:"tag"`
	Color string `yaml:"color"`
	Icon  string `yaml:"icon"`
}

// SkillDef is the catalog entry for one skill
type SkillDef struct {
	Name string   `yaml:"name"`
	Attr []string `yaml:"attr"`
	Icon string   `yaml:"icon"`
}

// SkillCategoryDef groups skill definitions under a key
type SkillCategoryDef struct {
	Key    string     `yaml:"key"`
	Label  string     `yaml:"label"`
	Icon   string     `yaml:"icon"`
	Skills []SkillDef `yaml:"skills"`
}

// KeyedItem is a catalog entry identified by a stable key
type KeyedItem struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// ConditionGroup is a labelled group of condition definitions
type ConditionGroup struct {
	Key   string      `yaml:"key"`
	Label string      `yaml:"label"`
	Items []KeyedItem `yaml:"items"`
}

// ResistanceGroup is a labelled group of damage types
type ResistanceGroup struct {
	Key   string      `yaml:"key"`
	Label string      `yaml:"label"`
	Types []KeyedItem `yaml:"types"`
}

// Catalog is the full reference data set. It is never mutated after Load;
// every accessor returns fresh copies.
type Catalog struct {
	AttributeDefs     []AttributeDef     `yaml:"attributes"`
	SkillCategoryDefs []SkillCategoryDef `yaml:"skill_categories"`
	ConditionGroups   []ConditionGroup   `yaml:"conditions"`
	ResistanceGroups  []ResistanceGroup  `yaml:"damage_resistances"`

	samples []SampleDef
}

// SampleAttack describes an attack carried by an example character
type SampleAttack struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	AP         int            `yaml:"ap"`
	Costs      entities.Costs `yaml:"costs"`
	Damage     int            `yaml:"damage"`
	Range      string         `yaml:"range"`
	Skill      string         `yaml:"skill"`
	Properties string         `yaml:"properties"`
	DamageType string         `yaml:"damage_type"`
}

// SampleDef describes one example character. Pool values of zero keep the
// factory default.
type SampleDef struct {
	Name       string         `yaml:"name"`
	Level      int            `yaml:"level"`
	Attributes map[string]int `yaml:"attributes"`
	Vitality   int            `yaml:"vitality"`
	Focus      int            `yaml:"focus"`
	Will       int            `yaml:"will"`
	Attacks    []SampleAttack `yaml:"attacks"`
}

// Load parses the embedded catalog and sample data
func Load() (*Catalog, error) {
	raw, err := dataFS.ReadFile("data/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	rawSamples, err := dataFS.ReadFile("data/samples.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}
	if err := c.parseSamples(rawSamples); err != nil {
		return nil, err
	}
	return c, nil
}

// MustLoad is Load for package-level setup and tests. It panics on error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes catalog YAML. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(c.AttributeDefs) == 0 {
		return nil, fmt.Errorf("parsing catalog: no attributes defined")
	}
	return &c, nil
}

func (c *Catalog) parseSamples(data []byte) error {
	var samples []SampleDef
	if err := yaml.Unmarshal(data, &samples); err != nil {
		return fmt.Errorf("parsing samples: %w", err)
	}
	c.samples = samples
	return nil
}

// Attributes returns a fresh attribute list at catalog defaults
func (c *Catalog) Attributes() []entities.Attribute {
	out := make([]entities.Attribute, len(c.AttributeDefs))
	for i, def := range c.AttributeDefs {
		out[i] = entities.Attribute{
			Name:  def.Name,
			Value: def.Value,
			Color: def.Color,
			Icon:  def.Icon,
		}
	}
	return out
}

// SkillCategories returns fresh skill categories keyed by category key,
// every skill untrained and hidden
func (c *Catalog) SkillCategories() map[string]entities.SkillCategory {
	out := make(map[string]entities.SkillCategory, len(c.SkillCategoryDefs))
	for _, def := range c.SkillCategoryDefs {
		skills := make([]entities.Skill, len(def.Skills))
		for i, s := range def.Skills {
			skills[i] = entities.Skill{
				Name: s.Name,
				Attr: append(entities.AttrTags(nil), s.Attr...),
				Icon: s.Icon,
			}
		}
		out[def.Key] = entities.SkillCategory{
			Label:  def.Label,
			Icon:   def.Icon,
			Skills: skills,
		}
	}
	return out
}

// Conditions returns every catalog condition inactive at level 1
func (c *Catalog) Conditions() map[string]entities.ActiveCondition {
	out := make(map[string]entities.ActiveCondition)
	for _, group := range c.ConditionGroups {
		for _, item := range group.Items {
			out[item.Key] = entities.ActiveCondition{Active: false, Level: 1}
		}
	}
	return out
}

// Resistances returns every catalog damage type with no resistance
func (c *Catalog) Resistances() map[string]entities.Resistance {
	out := make(map[string]entities.Resistance)
	for _, group := range c.ResistanceGroups {
		for _, t := range group.Types {
			out[t.Key] = entities.Resistance{}
		}
	}
	return out
}

// Samples returns the example character definitions
func (c *Catalog) Samples() []SampleDef {
	out := make([]SampleDef, len(c.samples))
	copy(out, c.samples)
	return out
}

// SampleNames returns the fixed names of the example characters
func (c *Catalog) SampleNames() []string {
	names := make([]string, len(c.samples))
	for i, s := range c.samples {
		names[i] = s.Name
	}
	return names
}

// AttributeByTag returns the attribute definition for a short tag such as "DES"
func (c *Catalog) AttributeByTag(tag string) (AttributeDef, bool) {
	for _, def := range c.AttributeDefs {
		if def.Tag == tag {
			return def, true
		}
	}
	return AttributeDef{}, false
}
