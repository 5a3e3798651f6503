package entities

import "slices"

// Talent is an activatable ability. PA is informational; Costs plus any
// selected Potencializacoes are consumed on activation.
type Talent struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Category         string            `json:"category"`
	PA               int               `json:"pa"`
	Costs            Costs             `json:"costs"`
	Tags             []string          `json:"tags"`
	Stats            TalentStats       `json:"stats"`
	Description      string            `json:"description"`
	FullDescription  string            `json:"fullDescription"`
	RelatedSkill     string            `json:"relatedSkill,omitempty"`
	Potencializacoes []Potencializacao `json:"potencializacoes"`
}

// TalentStats is the descriptive stat block shown with a talent
type TalentStats struct {
	Duracao  string `json:"duracao"`
	Ativacao string `json:"ativacao"`
	Alcance  string `json:"alcance"`
	Alvo     string `json:"alvo"`
}

// Potencializacao is an optional add-on chosen when a talent is activated.
// Its Value is added to the cost of the pool named by Resource.
type Potencializacao struct {
	Name     string   `json:"name"`
	Effect   string   `json:"effect"`
	Resource PoolKind `json:"resource"`
	Value    int      `json:"value"`
}

// Clone returns a deep copy of the talent
func (t Talent) Clone() Talent {
	t.Tags = slices.Clone(t.Tags)
	t.Potencializacoes = slices.Clone(t.Potencializacoes)
	return t
}
