package entities

// PoolKind identifies one of the three resource pools on a character
type PoolKind string

// Resource pool kinds
const (
	PoolVitality PoolKind = "vitality"
	PoolFocus    PoolKind = "focus"
	PoolWill     PoolKind = "will"
)

// PoolKinds lists the pools in the order they are checked and reported
var PoolKinds = []PoolKind{PoolVitality, PoolFocus, PoolWill}

// MaxPoolLevel is the highest severity tier a pool level can hold
const MaxPoolLevel = 5

// Label returns the display label used when reporting missing resources
func (k PoolKind) Label() string {
	switch k {
	case PoolVitality:
		return "Vitalidade"
	case PoolFocus:
		return "Foco"
	case PoolWill:
		return "Vontade"
	default:
		return string(k)
	}
}

// SeverityLabel returns the name of the severity track tied to the pool
func (k PoolKind) SeverityLabel() string {
	switch k {
	case PoolVitality:
		return "Ferimento"
	case PoolFocus:
		return "Fadiga"
	case PoolWill:
		return "Trauma"
	default:
		return ""
	}
}

// Valid reports whether k names a known pool
func (k PoolKind) Valid() bool {
	switch k {
	case PoolVitality, PoolFocus, PoolWill:
		return true
	}
	return false
}

// ResourcePool is a current/max/level triple for Vitality, Focus or Will.
// Current stays within [0, Max] through Adjust; Level is an independent
// severity marker in [0, MaxPoolLevel].
type ResourcePool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
	Level   int `json:"level"`
}

// NewResourcePool returns a full pool at level 0
func NewResourcePool(maxValue int) ResourcePool {
	return ResourcePool{Current: maxValue, Max: maxValue}
}

// Adjust moves Current by delta, saturating at 0 and Max
func (p ResourcePool) Adjust(delta int) ResourcePool {
	p.Current = Clamp(p.Current+delta, 0, p.Max)
	return p
}

// Set assigns Current directly, saturating at 0 and Max
func (p ResourcePool) Set(value int) ResourcePool {
	p.Current = Clamp(value, 0, p.Max)
	return p
}

// SetMax replaces Max without reclamping Current. Current may exceed the
// new Max until the next Adjust or Set.
func (p ResourcePool) SetMax(newMax int) ResourcePool {
	p.Max = newMax
	return p
}

// SetLevel applies toggle-as-level to the severity marker
func (p ResourcePool) SetLevel(requested int) ResourcePool {
	p.Level = Clamp(ToggleLevel(p.Level, requested), 0, MaxPoolLevel)
	return p
}

// ToggleLevel returns requested-1 when requested equals current, otherwise
// requested. Clicking the tier that is already set steps down by one.
func ToggleLevel(current, requested int) int {
	if current == requested {
		return requested - 1
	}
	return requested
}

// Clamp bounds v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
