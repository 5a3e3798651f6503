package sheet

import (
	"github.com/KirkDiggler/npc-tracker/internal/entities"
	"github.com/KirkDiggler/npc-tracker/internal/errors"
	"github.com/KirkDiggler/npc-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/npc-tracker/internal/rules"
)

// Defaults applied to every new record
const (
	DefaultName       = "Novo NPC"
	DefaultLevel      = 1
	DefaultNextLevel  = 1000
	DefaultSpeed      = "9m"
	DefaultPerception = 10
	DefaultPoolMax    = 10
	DefaultDefense    = 10
)

// FactoryConfig holds the dependencies for building records
type FactoryConfig struct {
	Catalog     *rules.Catalog
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *FactoryConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Factory builds fresh records from the reference catalog
type Factory struct {
	catalog *rules.Catalog
	ids     idgen.Generator
}

// NewFactory creates a record factory
func NewFactory(cfg *FactoryConfig) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid factory config")
	}

	return &Factory{
		catalog: cfg.Catalog,
		ids:     cfg.IDGenerator,
	}, nil
}

// NewID returns a fresh identifier from the factory's generator
func (f *Factory) NewID() string {
	return f.ids.Generate()
}

// IDGenerator returns the generator the factory assigns ids from
func (f *Factory) IDGenerator() idgen.Generator {
	return f.ids
}

// Catalog returns the reference catalog the factory builds from
func (f *Factory) Catalog() *rules.Catalog {
	return f.catalog
}

// New builds a record with catalog templates copied in and every pool and
// collection at its starting value
func (f *Factory) New(name string) *entities.Character {
	if name == "" {
		name = DefaultName
	}

	return &entities.Character{
		ID:              f.ids.Generate(),
		Name:            name,
		Level:           DefaultLevel,
		XP:              0,
		NextLevel:       DefaultNextLevel,
		Speed:           DefaultSpeed,
		Perception:      DefaultPerception,
		Attributes:      f.catalog.Attributes(),
		SkillCategories: f.catalog.SkillCategories(),
		Vitality:        entities.NewResourcePool(DefaultPoolMax),
		Focus:           entities.NewResourcePool(DefaultPoolMax),
		Will:            entities.NewResourcePool(DefaultPoolMax),
		Defenses: entities.Defenses{
			Fortitude: DefaultDefense,
			Reflex:    DefaultDefense,
			Tenacity:  DefaultDefense,
		},
		Attacks:     []entities.Attack{},
		Armors:      []entities.Armor{},
		Resistances: f.catalog.Resistances(),
		Conditions:  f.catalog.Conditions(),
		Talents:     []entities.Talent{},
	}
}

// Samples builds the example characters, each with a fresh id
func (f *Factory) Samples() []*entities.Character {
	defs := f.catalog.Samples()
	out := make([]*entities.Character, 0, len(defs))

	for _, def := range defs {
		c := f.New(def.Name)
		if def.Level > 0 {
			c.Level = def.Level
		}
		for i, attr := range c.Attributes {
			if v, ok := def.Attributes[attr.Name]; ok {
				c.Attributes[i].Value = v
			}
		}
		if def.Vitality > 0 {
			c.Vitality = entities.NewResourcePool(def.Vitality)
		}
		if def.Focus > 0 {
			c.Focus = entities.NewResourcePool(def.Focus)
		}
		if def.Will > 0 {
			c.Will = entities.NewResourcePool(def.Will)
		}
		for _, a := range def.Attacks {
			c.Attacks = append(c.Attacks, entities.Attack{
				ID:         a.ID,
				Name:       a.Name,
				AP:         a.AP,
				Costs:      a.Costs,
				Damage:     a.Damage,
				Range:      a.Range,
				Wear:       0,
				Skill:      a.Skill,
				Properties: a.Properties,
				DamageType: a.DamageType,
			})
		}
		out = append(out, c)
	}

	return out
}
