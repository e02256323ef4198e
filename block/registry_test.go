package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Names(t *testing.T) {
	assert.Equal(t, "air", AirBlockID.Name(), "Имя воздуха")
	assert.Equal(t, "stone", StoneBlockID.Name(), "Имя камня")
	assert.Equal(t, "unknown", BlockID(9999).Name(), "Незарегистрированный ID")

	id, exists := ByName("water")
	assert.True(t, exists, "Вода должна находиться по имени")
	assert.Equal(t, WaterBlockID, id)

	_, exists = ByName("bedrock")
	assert.False(t, exists, "Незарегистрированное имя")
}

func TestRegistry_Passability(t *testing.T) {
	assert.True(t, AirBlockID.IsPassable(), "Воздух проходим")
	assert.True(t, WaterBlockID.IsPassable(), "Вода проходима")
	assert.False(t, StoneBlockID.IsPassable(), "Камень непроходим")
	assert.False(t, BlockID(9999).IsPassable(), "Незарегистрированный блок непроходим")
}

func TestRegistry_Register(t *testing.T) {
	const lavaID BlockID = 300
	Register(lavaID, "lava", false)

	assert.True(t, IsValidBlockID(lavaID), "Зарегистрированный ID валиден")
	assert.Equal(t, "lava", lavaID.Name())

	id, exists := ByName("lava")
	assert.True(t, exists)
	assert.Equal(t, lavaID, id)
}
