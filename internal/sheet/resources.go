package sheet

import "github.com/KirkDiggler/npc-tracker/internal/entities"

// ConsumeResult reports the outcome of spending resources. Missing holds the
// labels of every pool that could not cover its cost.
type ConsumeResult struct {
	Success bool     `json:"success"`
	Missing []string `json:"missing"`
}

// ConsumeResources spends costs from the three pools, all or nothing. When
// any pool is short the record is returned unchanged along with the labels
// of the short pools. Negative costs count as zero.
func ConsumeResources(c *entities.Character, costs entities.Costs) (*entities.Character, ConsumeResult) {
	if c == nil {
		return nil, ConsumeResult{Success: false, Missing: []string{}}
	}
	next := c.Clone()

	missing := []string{}
	for _, kind := range entities.PoolKinds {
		if next.Pool(kind).Current < max(0, costs.Get(kind)) {
			missing = append(missing, kind.Label())
		}
	}
	if len(missing) > 0 {
		return next, ConsumeResult{Success: false, Missing: missing}
	}

	for _, kind := range entities.PoolKinds {
		pool := next.Pool(kind)
		pool.Current -= max(0, costs.Get(kind))
		next.SetPool(kind, pool)
	}
	return next, ConsumeResult{Success: true, Missing: []string{}}
}

// CalculateActivationCost adds the selected potencializacoes to a talent's
// base cost. Indices out of range, repeated indices and add-ons naming an
// unknown pool are skipped.
func CalculateActivationCost(talent entities.Talent, selected []int) entities.Costs {
	total := talent.Costs
	seen := make(map[int]bool, len(selected))

	for _, idx := range selected {
		if idx < 0 || idx >= len(talent.Potencializacoes) || seen[idx] {
			continue
		}
		seen[idx] = true

		pot := talent.Potencializacoes[idx]
		if !pot.Resource.Valid() || pot.Value == 0 {
			continue
		}
		total = total.Add(pot.Resource, pot.Value)
	}

	return total
}

// ActivateTalent consumes the activation cost of the talent with the given
// id, including the selected potencializacoes. found is false when the
// record has no such talent, in which case nothing is consumed.
func ActivateTalent(c *entities.Character, talentID string, selected []int) (next *entities.Character, result ConsumeResult, found bool) {
	if c == nil {
		return nil, ConsumeResult{Missing: []string{}}, false
	}
	idx := c.FindTalent(talentID)
	if idx < 0 {
		return c.Clone(), ConsumeResult{Missing: []string{}}, false
	}

	cost := CalculateActivationCost(c.Talents[idx], selected)
	next, result = ConsumeResources(c, cost)
	return next, result, true
}
