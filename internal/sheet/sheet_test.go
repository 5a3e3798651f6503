package sheet_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
	"github.com/KirkDiggler/npc-tracker/internal/errors"
	"github.com/KirkDiggler/npc-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/npc-tracker/internal/rules"
	"github.com/KirkDiggler/npc-tracker/internal/sheet"
)

type SheetTestSuite struct {
	suite.Suite
	catalog *rules.Catalog
	factory *sheet.Factory
	rec     *entities.Character
}

func TestSheetSuite(t *testing.T) {
	suite.Run(t, new(SheetTestSuite))
}

func (s *SheetTestSuite) SetupTest() {
	s.catalog = rules.MustLoad()
	factory, err := sheet.NewFactory(&sheet.FactoryConfig{
		Catalog:     s.catalog,
		IDGenerator: idgen.NewSequential("npc"),
	})
	s.Require().NoError(err)
	s.factory = factory
	s.rec = factory.New("Teste")
}

func (s *SheetTestSuite) firstSkill() (string, string) {
	keys := entities.SortedKeys(s.rec.SkillCategories)
	s.Require().NotEmpty(keys)
	category := s.rec.SkillCategories[keys[0]]
	s.Require().NotEmpty(category.Skills)
	return keys[0], category.Skills[0].Name
}

func (s *SheetTestSuite) TestFactoryNew() {
	s.Assert().Equal("npc_1", s.rec.ID)
	s.Assert().Equal("Teste", s.rec.Name)
	s.Assert().Equal(sheet.DefaultLevel, s.rec.Level)
	s.Assert().Equal(sheet.DefaultSpeed, s.rec.Speed)
	for _, kind := range entities.PoolKinds {
		s.Assert().Equal(entities.ResourcePool{Current: 10, Max: 10, Level: 0}, s.rec.Pool(kind))
	}
	s.Assert().NotNil(s.rec.Attacks)
	s.Assert().Empty(s.rec.Attacks)
	s.Assert().Empty(s.rec.Armors)
	s.Assert().Empty(s.rec.Talents)
	s.Assert().Equal(s.catalog.Attributes(), s.rec.Attributes)
	s.Assert().Equal(s.catalog.Conditions(), s.rec.Conditions)
	s.Assert().Equal(s.catalog.Resistances(), s.rec.Resistances)
}

func (s *SheetTestSuite) TestFactoryNewDefaultName() {
	s.Assert().Equal(sheet.DefaultName, s.factory.New("").Name)
}

func (s *SheetTestSuite) TestFactoryRecordsShareNothing() {
	other := s.factory.New("Outro")
	other.Attributes[0].Value = 99
	key, _ := s.firstSkill()
	other.SkillCategories[key].Skills[0].Level = 3

	s.Assert().NotEqual(99, s.rec.Attributes[0].Value)
	s.Assert().Equal(0, s.rec.SkillCategories[key].Skills[0].Level)
}

func (s *SheetTestSuite) TestFactorySamples() {
	samples := s.factory.Samples()
	s.Require().Len(samples, len(s.catalog.SampleNames()))

	grommash := samples[0]
	s.Assert().Equal("Grommash, o Quebra-Escudos", grommash.Name)
	s.Assert().Equal(5, grommash.Level)
	s.Assert().Equal(entities.NewResourcePool(120), grommash.Vitality)
	s.Require().Len(grommash.Attacks, 1)
	s.Assert().Equal(18, grommash.Attacks[0].Damage)
	s.Assert().Equal(entities.Costs{Vitality: 3}, grommash.Attacks[0].Costs)
	for _, attr := range grommash.Attributes {
		if attr.Name == "Vigor" {
			s.Assert().Equal(22, attr.Value)
		}
	}
}

func (s *SheetTestSuite) TestFactoryConfigValidation() {
	_, err := sheet.NewFactory(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = sheet.NewFactory(&sheet.FactoryConfig{Catalog: s.catalog})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *SheetTestSuite) TestMutationsCopyOnWrite() {
	before := s.rec.Clone()

	next := sheet.AdjustPool(s.rec, entities.PoolVitality, -4)
	next = sheet.AddAttack(next, "a1", entities.Attack{Name: "Espada", Damage: 10})
	next = sheet.UpdateResistance(next, "fogo", sheet.ResistanceValue, "3")
	next = sheet.UpdateActiveCondition(next, "sangrando", sheet.ConditionActive, "true")

	s.Assert().Equal(before, s.rec, "the source record is untouched")
	s.Assert().Equal(6, next.Vitality.Current)
	s.Assert().Len(next.Attacks, 1)
}

func (s *SheetTestSuite) TestNilRecord() {
	s.Assert().Nil(sheet.UpdateAttribute(nil, "Vigor", "3"))
	s.Assert().Nil(sheet.AdjustPool(nil, entities.PoolFocus, 1))
	s.Assert().Nil(sheet.AddAttack(nil, "a", entities.Attack{}))
	s.Assert().Nil(sheet.UpdateName(nil, "x", true))
}

func (s *SheetTestSuite) TestUpdateAttribute() {
	name := s.rec.Attributes[0].Name

	next := sheet.UpdateAttribute(s.rec, name, "14")
	s.Assert().Equal(14, next.Attributes[0].Value)

	next = sheet.UpdateAttribute(next, name, "abc")
	s.Assert().Equal(0, next.Attributes[0].Value)

	next = sheet.UpdateAttribute(next, name, "-2")
	s.Assert().Equal(-2, next.Attributes[0].Value, "no bounds")

	unknown := sheet.UpdateAttribute(s.rec, "Sorte", "5")
	s.Assert().Equal(s.rec, unknown)
	s.Assert().NotSame(s.rec, unknown)
}

func (s *SheetTestSuite) TestUpdateDefense() {
	next := sheet.UpdateDefense(s.rec, entities.DefenseReflex, "14")
	s.Assert().Equal(14, next.Defenses.Reflex)
	s.Assert().Equal(sheet.DefaultDefense, next.Defenses.Fortitude)

	next = sheet.UpdateDefense(next, entities.DefenseTenacity, "x")
	s.Assert().Equal(0, next.Defenses.Tenacity)
}

func (s *SheetTestSuite) TestPools() {
	next := sheet.AdjustPool(s.rec, entities.PoolFocus, -15)
	s.Assert().Equal(0, next.Focus.Current)

	next = sheet.AdjustPool(next, entities.PoolFocus, 25)
	s.Assert().Equal(10, next.Focus.Current)

	next = sheet.SetPoolCurrent(next, entities.PoolWill, 4)
	s.Assert().Equal(4, next.Will.Current)
	next = sheet.SetPoolCurrent(next, entities.PoolWill, 40)
	s.Assert().Equal(10, next.Will.Current)

	next = sheet.AdjustPool(next, entities.PoolKind("mana"), 5)
	s.Assert().Equal(s.rec.Vitality, next.Vitality)
}

// A lowered max leaves current above it until the next adjustment.
func (s *SheetTestSuite) TestSetPoolMaxDoesNotReclamp() {
	next := sheet.SetPoolMax(s.rec, entities.PoolVitality, "6")
	s.Assert().Equal(6, next.Vitality.Max)
	s.Assert().Equal(10, next.Vitality.Current)

	next = sheet.AdjustPool(next, entities.PoolVitality, 0)
	s.Assert().Equal(6, next.Vitality.Current)

	next = sheet.SetPoolMax(next, entities.PoolVitality, "junk")
	s.Assert().Equal(0, next.Vitality.Max)
}

func (s *SheetTestSuite) TestSetPoolLevelToggles() {
	next := sheet.SetPoolLevel(s.rec, entities.PoolWill, 3)
	s.Assert().Equal(3, next.Will.Level)

	next = sheet.SetPoolLevel(next, entities.PoolWill, 3)
	s.Assert().Equal(2, next.Will.Level)

	next = sheet.SetPoolLevel(next, entities.PoolWill, 5)
	s.Assert().Equal(5, next.Will.Level)

	next = sheet.SetPoolLevel(next, entities.PoolWill, 9)
	s.Assert().Equal(entities.MaxPoolLevel, next.Will.Level)
}

func (s *SheetTestSuite) TestProfileEditsAreGated() {
	locked := sheet.UpdateName(s.rec, "Outro", false)
	locked = sheet.UpdateLevel(locked, "7", false)
	locked = sheet.UpdateSpeed(locked, "12m", false)
	s.Assert().Equal(s.rec, locked)

	open := sheet.UpdateName(s.rec, "Outro", true)
	open = sheet.UpdateLevel(open, "7", true)
	open = sheet.UpdateXP(open, "350", true)
	open = sheet.UpdateNextLevel(open, "2000", true)
	open = sheet.UpdateSpeed(open, "12m", true)
	open = sheet.UpdatePerception(open, "15", true)
	s.Assert().Equal("Outro", open.Name)
	s.Assert().Equal(7, open.Level)
	s.Assert().Equal(350, open.XP)
	s.Assert().Equal(2000, open.NextLevel)
	s.Assert().Equal("12m", open.Speed)
	s.Assert().Equal(15, open.Perception)

	open = sheet.UpdateLevel(open, "nope", true)
	s.Assert().Equal(1, open.Level)
	open = sheet.UpdateXP(open, "nope", true)
	s.Assert().Equal(0, open.XP)
}

func (s *SheetTestSuite) TestUpdateSkillLevel() {
	key, name := s.firstSkill()
	level := func(c *entities.Character) int {
		cat := c.SkillCategories[key]
		return cat.Skills[cat.FindSkill(name)].Level
	}

	next := sheet.UpdateSkillLevel(s.rec, key, name, 2, false)
	s.Assert().Equal(0, level(next), "gated outside edit mode")

	next = sheet.UpdateSkillLevel(s.rec, key, name, 2, true)
	s.Assert().Equal(2, level(next))
	next = sheet.UpdateSkillLevel(next, key, name, 2, true)
	s.Assert().Equal(1, level(next))
	next = sheet.UpdateSkillLevel(next, key, name, 1, true)
	s.Assert().Equal(0, level(next))
	next = sheet.UpdateSkillLevel(next, key, name, 7, true)
	s.Assert().Equal(entities.MaxSkillLevel, level(next))

	s.Assert().Equal(0, level(s.rec))
	s.Assert().Equal(s.rec, sheet.UpdateSkillLevel(s.rec, "nenhuma", name, 2, true))
	s.Assert().Equal(s.rec, sheet.UpdateSkillLevel(s.rec, key, "Nenhuma", 2, true))
}

func (s *SheetTestSuite) TestToggleSkillVisibility() {
	key, name := s.firstSkill()

	s.Assert().Empty(s.rec.VisibleSkills())

	next := sheet.ToggleSkillVisibility(s.rec, key, name, false)
	s.Assert().Empty(next.VisibleSkills())

	next = sheet.ToggleSkillVisibility(s.rec, key, name, true)
	visible := next.VisibleSkills()
	s.Require().Len(visible, 1)
	s.Assert().Equal(name, visible[0].Name)

	next = sheet.ToggleSkillVisibility(next, key, name, true)
	s.Assert().Empty(next.VisibleSkills())
}

func (s *SheetTestSuite) TestUpdateResistance() {
	next := sheet.UpdateResistance(s.rec, "fogo", sheet.ResistanceValue, "5")
	next = sheet.UpdateResistance(next, "fogo", sheet.ResistanceVulnerable, "true")
	s.Assert().Equal(entities.Resistance{Value: 5, Vulnerable: true}, next.Resistances["fogo"],
		"vulnerability and a value may coexist")

	next = sheet.UpdateResistance(next, "fogo", sheet.ResistanceImmunity, "true")
	s.Assert().Equal(entities.Resistance{Immunity: true}, next.Resistances["fogo"])

	next = sheet.UpdateResistance(next, "fogo", sheet.ResistanceValue, "8")
	s.Assert().Equal(entities.Resistance{Immunity: true}, next.Resistances["fogo"], "value stays 0 while immune")

	next = sheet.UpdateResistance(next, "fogo", sheet.ResistanceVulnerable, "true")
	s.Assert().Equal(entities.Resistance{Vulnerable: true}, next.Resistances["fogo"])

	next = sheet.UpdateResistance(next, "frio", sheet.ResistanceValue, "-4")
	s.Assert().Equal(0, next.Resistances["frio"].Value)

	s.Assert().Equal(next, sheet.UpdateResistance(next, "frio", sheet.ResistanceField("bogus"), "1"))
}

func (s *SheetTestSuite) TestUpdateAllResistances() {
	next := sheet.UpdateAllResistances(s.rec, map[string]entities.Resistance{
		"fogo":  {Value: 4, Immunity: true, Vulnerable: true},
		"acido": {Value: 2, Vulnerable: true},
	})
	s.Assert().Equal(map[string]entities.Resistance{
		"fogo":  {Immunity: true},
		"acido": {Value: 2, Vulnerable: true},
	}, next.Resistances)
}

func (s *SheetTestSuite) TestUpdateActiveCondition() {
	next := sheet.UpdateActiveCondition(s.rec, "sangrando", sheet.ConditionLevel, "3")
	next = sheet.UpdateActiveCondition(next, "sangrando", sheet.ConditionActive, "true")
	s.Assert().Equal(entities.ActiveCondition{Active: true, Level: 3}, next.Conditions["sangrando"])

	next = sheet.UpdateActiveCondition(next, "sangrando", sheet.ConditionActive, "false")
	s.Assert().Equal(entities.ActiveCondition{Active: false, Level: 3}, next.Conditions["sangrando"],
		"deactivating keeps the level")

	next = sheet.UpdateActiveCondition(next, "sangrando", sheet.ConditionLevel, "abc")
	s.Assert().Equal(1, next.Conditions["sangrando"].Level)

	next = sheet.UpdateActiveCondition(next, "sangrando", sheet.ConditionLevel, "-2")
	s.Assert().Equal(1, next.Conditions["sangrando"].Level)

	next = sheet.UpdateActiveCondition(next, "novo", sheet.ConditionActive, "1")
	s.Assert().Equal(entities.ActiveCondition{Active: true, Level: 1}, next.Conditions["novo"])
}

func (s *SheetTestSuite) TestUpdateAllConditions() {
	conditions := map[string]entities.ActiveCondition{"caido": {Active: true, Level: 2}}
	next := sheet.UpdateAllConditions(s.rec, conditions)
	s.Assert().Equal(conditions, next.Conditions)

	conditions["caido"] = entities.ActiveCondition{}
	s.Assert().Equal(2, next.Conditions["caido"].Level, "the table is copied")
}

func (s *SheetTestSuite) TestAttacks() {
	next := sheet.AddAttack(s.rec, "a1", entities.Attack{ID: "ignored", Name: "Machado", Damage: 18, Wear: 2})
	s.Require().Len(next.Attacks, 1)
	s.Assert().Equal("a1", next.Attacks[0].ID)
	s.Assert().Equal(0, next.Attacks[0].Wear)
	s.Assert().Equal(entities.DefaultDamageType, next.Attacks[0].DamageType)

	next = sheet.UpdateAttackWear(next, "a1", 1)
	s.Assert().Equal(1, next.Attacks[0].Wear)
	s.Assert().Equal(17, next.Attacks[0].EffectiveDamage())

	next = sheet.UpdateAttackWear(next, "a1", 1)
	s.Assert().Equal(0, next.Attacks[0].Wear)

	next = sheet.UpdateAttackWear(next, "a1", 5)
	s.Assert().Equal(entities.MaxWear, next.Attacks[0].Wear)

	next = sheet.UpdateAttack(next, "a1", entities.Attack{ID: "other", Name: "Machado Grande", Damage: 20, Wear: 9, DamageType: "corte"})
	s.Assert().Equal("a1", next.Attacks[0].ID)
	s.Assert().Equal("Machado Grande", next.Attacks[0].Name)
	s.Assert().Equal(entities.MaxWear, next.Attacks[0].Wear)

	s.Assert().Equal(next, sheet.UpdateAttack(next, "missing", entities.Attack{Name: "x"}))

	next = sheet.DeleteAttack(next, "a1")
	s.Assert().Empty(next.Attacks)
}

func (s *SheetTestSuite) TestArmors() {
	next := sheet.AddArmor(s.rec, "ar1", entities.Armor{Name: "Cota", Max: 4, Current: 1})
	s.Require().Len(next.Armors, 1)
	s.Assert().Equal(4, next.Armors[0].Current, "new armor starts full")

	next = sheet.UpdateArmorCurrent(next, "ar1", 4)
	s.Assert().Equal(3, next.Armors[0].Current)
	next = sheet.UpdateArmorCurrent(next, "ar1", 1)
	s.Assert().Equal(1, next.Armors[0].Current)
	next = sheet.UpdateArmorCurrent(next, "ar1", 10)
	s.Assert().Equal(4, next.Armors[0].Current)

	next = sheet.UpdateArmor(next, "ar1", entities.Armor{Name: "Placas", Max: 6, Current: 9, ReflexBonus: -2})
	s.Assert().Equal(entities.Armor{ID: "ar1", Name: "Placas", Max: 6, Current: 6, ReflexBonus: -2}, next.Armors[0])

	next = sheet.DeleteArmor(next, "ar1")
	s.Assert().Empty(next.Armors)
}

func (s *SheetTestSuite) TestTalents() {
	talent := entities.Talent{
		Name:  "Rajada",
		Costs: entities.Costs{Focus: 2},
		Tags:  []string{"arcano"},
	}
	next := sheet.AddTalent(s.rec, "t1", talent)
	s.Require().Len(next.Talents, 1)
	s.Assert().Equal("t1", next.Talents[0].ID)

	talent.Tags[0] = "mudado"
	s.Assert().Equal("arcano", next.Talents[0].Tags[0], "the talent is copied in")

	next = sheet.UpdateTalent(next, "t1", entities.Talent{Name: "Rajada Maior", RelatedSkill: "Arcana"})
	s.Assert().Equal("t1", next.Talents[0].ID)
	s.Assert().Equal("Arcana", next.Talents[0].RelatedSkill)

	next = sheet.DeleteTalent(next, "t1")
	s.Assert().Empty(next.Talents)
}

func (s *SheetTestSuite) TestConsumeResourcesAllOrNothing() {
	rec := sheet.SetPoolCurrent(s.rec, entities.PoolFocus, 3)

	next, result := sheet.ConsumeResources(rec, entities.Costs{Focus: 5})
	s.Assert().False(result.Success)
	s.Assert().Equal([]string{"Foco"}, result.Missing)
	s.Assert().Equal(3, next.Focus.Current)
	s.Assert().Equal(rec, next)

	next, result = sheet.ConsumeResources(rec, entities.Costs{Vitality: 11, Focus: 5, Will: 11})
	s.Assert().Equal([]string{"Vitalidade", "Foco", "Vontade"}, result.Missing)
	s.Assert().Equal(rec, next)

	next, result = sheet.ConsumeResources(rec, entities.Costs{Vitality: 2, Focus: 3, Will: -4})
	s.Assert().True(result.Success)
	s.Assert().NotNil(result.Missing)
	s.Assert().Empty(result.Missing)
	s.Assert().Equal(8, next.Vitality.Current)
	s.Assert().Equal(0, next.Focus.Current)
	s.Assert().Equal(10, next.Will.Current, "negative costs are ignored")
}

func (s *SheetTestSuite) TestCalculateActivationCost() {
	talent := entities.Talent{
		Costs: entities.Costs{Focus: 2},
		Potencializacoes: []entities.Potencializacao{
			{Name: "Ampliar", Resource: entities.PoolFocus, Value: 3},
			{Name: "Drenar", Resource: entities.PoolWill, Value: 1},
			{Name: "Sangrar", Resource: entities.PoolVitality, Value: 2},
			{Name: "Quebrado", Resource: entities.PoolKind("mana"), Value: 9},
		},
	}

	s.Assert().Equal(entities.Costs{Focus: 2}, sheet.CalculateActivationCost(talent, nil))
	s.Assert().Equal(entities.Costs{Focus: 5, Will: 1}, sheet.CalculateActivationCost(talent, []int{0, 1}))
	s.Assert().Equal(entities.Costs{Vitality: 2, Focus: 5}, sheet.CalculateActivationCost(talent, []int{0, 0, 2}))
	s.Assert().Equal(entities.Costs{Focus: 2}, sheet.CalculateActivationCost(talent, []int{-1, 3, 42}))
	s.Assert().Equal(entities.Costs{Focus: 2}, talent.Costs, "the base cost is not modified")
}

func (s *SheetTestSuite) TestActivateTalentUsesDerivedCost() {
	rec := sheet.AddTalent(s.rec, "t1", entities.Talent{
		Name:  "Rajada",
		Costs: entities.Costs{Focus: 4},
		Potencializacoes: []entities.Potencializacao{
			{Name: "Ampliar", Resource: entities.PoolFocus, Value: 7},
		},
	})

	_, result, found := sheet.ActivateTalent(rec, "t1", []int{0})
	s.Assert().True(found)
	s.Assert().False(result.Success, "4 + 7 exceeds the focus pool")
	s.Assert().Equal([]string{"Foco"}, result.Missing)

	next, result, found := sheet.ActivateTalent(rec, "t1", nil)
	s.Assert().True(found)
	s.Assert().True(result.Success)
	s.Assert().Equal(6, next.Focus.Current)

	_, _, found = sheet.ActivateTalent(rec, "missing", nil)
	s.Assert().False(found)
}
