package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
)

func sampleCharacter() *entities.Character {
	return &entities.Character{
		ID:         "npc_1",
		Name:       "Nyx, a Sombra",
		Attributes: []entities.Attribute{{Name: "Destreza", Value: 20}},
		SkillCategories: map[string]entities.SkillCategory{
			"combate": {Label: "Combate", Skills: []entities.Skill{{Name: "Rápidas", Attr: entities.AttrTags{"DES", "VIG"}, Level: 2}}},
		},
		Attacks:     []entities.Attack{{ID: "n1", Name: "Adaga", Damage: 8}},
		Armors:      []entities.Armor{{ID: "ar1", Max: 2, Current: 2}},
		Resistances: map[string]entities.Resistance{"acido": {Value: 1}},
		Conditions:  map[string]entities.ActiveCondition{"envenenado": {Active: true, Level: 2}},
		Talents: []entities.Talent{{
			ID:               "t1",
			Tags:             []string{"furtivo"},
			Potencializacoes: []entities.Potencializacao{{Name: "Veneno", Resource: entities.PoolFocus, Value: 2}},
		}},
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleCharacter()
	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.Attributes[0].Value = 1
	clone.SkillCategories["combate"].Skills[0].Attr[0] = "INT"
	clone.Attacks[0].Wear = 2
	clone.Armors[0].Current = 0
	clone.Resistances["acido"] = entities.Resistance{Immunity: true}
	clone.Conditions["envenenado"] = entities.ActiveCondition{}
	clone.Talents[0].Tags[0] = "x"
	clone.Talents[0].Potencializacoes[0].Value = 9

	assert.Equal(t, sampleCharacter(), orig)
}

func TestClonePreservesNil(t *testing.T) {
	var nilChar *entities.Character
	assert.Nil(t, nilChar.Clone())

	clone := (&entities.Character{ID: "x"}).Clone()
	assert.Nil(t, clone.Attacks)
	assert.Nil(t, clone.SkillCategories)
	assert.Nil(t, clone.Talents)
	assert.Nil(t, clone.Attributes)
	assert.Nil(t, clone.Resistances)
	assert.Nil(t, clone.Conditions)
}

func TestCloneAll(t *testing.T) {
	records := []*entities.Character{sampleCharacter(), sampleCharacter()}
	clones := entities.CloneAll(records)
	require.Len(t, clones, 2)
	clones[1].Name = "outro"
	assert.Equal(t, "Nyx, a Sombra", records[1].Name)
	assert.Nil(t, entities.CloneAll(nil))
}

func TestAttrTagsJSON(t *testing.T) {
	testCases := []struct {
		name string
		tags entities.AttrTags
		json string
	}{
		{"none", nil, `""`},
		{"single", entities.AttrTags{"VIG"}, `"VIG"`},
		{"several", entities.AttrTags{"DES", "INT"}, `["DES","INT"]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.tags)
			require.NoError(t, err)
			assert.JSONEq(t, tc.json, string(data))

			var back entities.AttrTags
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tc.tags, back)
		})
	}

	var bad entities.AttrTags
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestCharacterPoolAccess(t *testing.T) {
	c := &entities.Character{}
	c.SetPool(entities.PoolFocus, entities.NewResourcePool(6))
	assert.Equal(t, entities.NewResourcePool(6), c.Focus)
	assert.Equal(t, entities.NewResourcePool(6), c.Pool(entities.PoolFocus))
	assert.Equal(t, entities.ResourcePool{}, c.Pool(entities.PoolKind("mana")))

	c.SetPool(entities.PoolKind("mana"), entities.NewResourcePool(3))
	assert.Equal(t, entities.ResourcePool{}, c.Vitality)
}

func TestFindHelpers(t *testing.T) {
	c := sampleCharacter()
	assert.Equal(t, 0, c.FindAttack("n1"))
	assert.Equal(t, -1, c.FindAttack("zz"))
	assert.Equal(t, 0, c.FindArmor("ar1"))
	assert.Equal(t, 0, c.FindTalent("t1"))
	assert.Equal(t, -1, c.FindTalent("zz"))
}

func TestDefensesSet(t *testing.T) {
	d := entities.Defenses{Fortitude: 10, Reflex: 10, Tenacity: 10}
	d = d.Set(entities.DefenseReflex, 14)
	assert.Equal(t, entities.Defenses{Fortitude: 10, Reflex: 14, Tenacity: 10}, d)
	assert.Equal(t, d, d.Set(entities.DefenseKind("luck"), 3))
}
