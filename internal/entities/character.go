// Package entities holds the NPC record model tracked during play
package entities

// Character is one NPC record in the library. It is the aggregate root for
// attributes, skills, resource pools, equipment and talents.
// NOTE: The ID is assigned once at creation and never changes afterwards.
type Character struct {
	ID              string                     `json:"id"`
	Name            string                     `json:"name"`
	Level           int                        `json:"level"`
	XP              int                        `json:"xp"`
	NextLevel       int                        `json:"nextLevel"`
	Speed           string                     `json:"speed"`
	Perception      int                        `json:"perception"`
	Attributes      []Attribute                `json:"attributes"`
	SkillCategories map[string]SkillCategory   `json:"skillCategories"`
	Vitality        ResourcePool               `json:"vitality"`
	Focus           ResourcePool               `json:"focus"`
	Will            ResourcePool               `json:"will"`
	Defenses        Defenses                   `json:"defenses"`
	Attacks         []Attack                   `json:"attacks"`
	Armors          []Armor                    `json:"armors"`
	Resistances     map[string]Resistance      `json:"resistances"`
	Conditions      map[string]ActiveCondition `json:"conditions"`
	Talents         []Talent                   `json:"talents"`
}

// Pool returns the named resource pool
func (c *Character) Pool(kind PoolKind) ResourcePool {
	switch kind {
	case PoolVitality:
		return c.Vitality
	case PoolFocus:
		return c.Focus
	case PoolWill:
		return c.Will
	default:
		return ResourcePool{}
	}
}

// SetPool replaces the named resource pool. Unknown kinds are ignored.
func (c *Character) SetPool(kind PoolKind, pool ResourcePool) {
	switch kind {
	case PoolVitality:
		c.Vitality = pool
	case PoolFocus:
		c.Focus = pool
	case PoolWill:
		c.Will = pool
	}
}

// FindAttack returns the index of the attack with the given ID or -1
func (c *Character) FindAttack(id string) int {
	for i := range c.Attacks {
		if c.Attacks[i].ID == id {
			return i
		}
	}
	return -1
}

// FindArmor returns the index of the armor with the given ID or -1
func (c *Character) FindArmor(id string) int {
	for i := range c.Armors {
		if c.Armors[i].ID == id {
			return i
		}
	}
	return -1
}

// FindTalent returns the index of the talent with the given ID or -1
func (c *Character) FindTalent(id string) int {
	for i := range c.Talents {
		if c.Talents[i].ID == id {
			return i
		}
	}
	return -1
}

// VisibleSkills returns the skills flagged visible across all categories
func (c *Character) VisibleSkills() []Skill {
	var out []Skill
	for _, key := range SortedKeys(c.SkillCategories) {
		for _, skill := range c.SkillCategories[key].Skills {
			if skill.Visible {
				out = append(out, skill.Clone())
			}
		}
	}
	return out
}

// Attribute is a fixed ability score seeded from the rules catalog.
// Only Value changes during play.
type Attribute struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Defenses holds the three passive defense values
type Defenses struct {
	Fortitude int `json:"fortitude"`
	Reflex    int `json:"reflex"`
	Tenacity  int `json:"tenacity"`
}

// DefenseKind names one of the defenses
type DefenseKind string

// Defense kinds
const (
	DefenseFortitude DefenseKind = "fortitude"
	DefenseReflex    DefenseKind = "reflex"
	DefenseTenacity  DefenseKind = "tenacity"
)

// Set returns a copy with the named defense replaced. Unknown kinds are ignored.
func (d Defenses) Set(kind DefenseKind, value int) Defenses {
	switch kind {
	case DefenseFortitude:
		d.Fortitude = value
	case DefenseReflex:
		d.Reflex = value
	case DefenseTenacity:
		d.Tenacity = value
	}
	return d
}

// Resistance tracks damage reduction for one damage type.
// Immunity forces Value to 0 and Vulnerable to false.
type Resistance struct {
	Value      int  `json:"value"`
	Immunity   bool `json:"immunity"`
	Vulnerable bool `json:"vulnerable"`
}

// Normalize enforces the immunity rules on r
func (r Resistance) Normalize() Resistance {
	if r.Value < 0 {
		r.Value = 0
	}
	if r.Immunity {
		r.Value = 0
		r.Vulnerable = false
	}
	return r
}

// ActiveCondition is the on/off flag and severity for one condition.
// Level is kept while inactive so re-activation resumes where it left off.
type ActiveCondition struct {
	Active bool `json:"active"`
	Level  int  `json:"level"`
}
