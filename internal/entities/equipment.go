package entities

// MaxWear is the highest wear counter an attack can accumulate
const MaxWear = 2

// DefaultDamageType is assigned to new attacks that do not name one
const DefaultDamageType = "impacto"

// Costs is a resource cost split across the three pools
type Costs struct {
	Vitality int `json:"vitality"`
	Focus    int `json:"focus"`
	Will     int `json:"will"`
}

// Get returns the cost for the named pool
func (c Costs) Get(kind PoolKind) int {
	switch kind {
	case PoolVitality:
		return c.Vitality
	case PoolFocus:
		return c.Focus
	case PoolWill:
		return c.Will
	default:
		return 0
	}
}

// Add returns a copy with amount added to the named pool's cost
func (c Costs) Add(kind PoolKind, amount int) Costs {
	switch kind {
	case PoolVitality:
		c.Vitality += amount
	case PoolFocus:
		c.Focus += amount
	case PoolWill:
		c.Will += amount
	}
	return c
}

// IsZero reports whether nothing would be consumed
func (c Costs) IsZero() bool {
	return c.Vitality <= 0 && c.Focus <= 0 && c.Will <= 0
}

// Attack is a weapon or natural attack. AP is informational and never
// consumed from a pool.
type Attack struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AP         int    `json:"ap"`
	Costs      Costs  `json:"costs"`
	Damage     int    `json:"damage"`
	Range      string `json:"range"`
	Wear       int    `json:"wear"`
	Skill      string `json:"skill"`
	Properties string `json:"properties"`
	DamageType string `json:"damageType"`
}

// EffectiveDamage is the base damage reduced by wear, floored at zero
func (a Attack) EffectiveDamage() int {
	return max(0, a.Damage-a.Wear)
}

// Armor is a worn protection with its own current/max pips
type Armor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Max         int    `json:"max"`
	Current     int    `json:"current"`
	Type        string `json:"type"`
	ReflexBonus int    `json:"reflexBonus"`
	Properties  string `json:"properties"`
	Notes       string `json:"notes"`
}
