package testutils

import (
	"encoding/json"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
	"github.com/KirkDiggler/npc-tracker/internal/testutils/builders"
)

const (
	// TestCharacterName matches one of the example characters, so a library
	// holding it is not topped up with the examples on load
	TestCharacterName = "Grommash, o Quebra-Escudos"

	// TestTalentID is the talent carried by CreateTestCaster
	TestTalentID = "talent-test-001"
)

// CreateTestCharacter creates a plain record named after an example character
func CreateTestCharacter(id string) *entities.Character {
	return builders.NewCharacterBuilder().
		WithID(id).
		WithName(TestCharacterName).
		Build()
}

// CreateTestCaster creates a record with one talent costing 2 vitality and a
// potencializacao at index 0 adding 3 vitality
func CreateTestCaster(id string, vitality int) *entities.Character {
	return builders.NewCharacterBuilder().
		WithID(id).
		WithName(TestCharacterName).
		WithPool(entities.PoolVitality, vitality, vitality).
		WithTalent(entities.Talent{
			ID:    TestTalentID,
			Name:  "Fúria",
			Costs: entities.Costs{Vitality: 2},
			Potencializacoes: []entities.Potencializacao{
				{Name: "Sangue Quente", Resource: entities.PoolVitality, Value: 3},
			},
		}).
		Build()
}

// LibraryJSON encodes records the way the library is stored
func LibraryJSON(records ...*entities.Character) string {
	data, err := json.Marshal(records)
	if err != nil {
		panic(err)
	}
	return string(data)
}
