package blockray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/blockray/block"
	"github.com/annel0/blockray/vec"
)

func TestFilter_BooleanLaws(t *testing.T) {
	e := newTestExtent(block.AirBlockID)
	hit := newHit(e, 1.0, 0.5, 0.5, vec.UnitX, vec.UnitX.Neg())

	tr := Filter(All)
	fa := Filter(None)

	assert.True(t, And(tr, tr)(hit), "И: истина с истиной")
	assert.False(t, And(tr, fa)(hit), "И: истина с ложью")
	assert.False(t, And(fa, fa)(hit), "И: ложь с ложью")

	assert.True(t, Or(tr, fa)(hit), "ИЛИ: истина с ложью")
	assert.True(t, Or(fa, tr)(hit), "ИЛИ: ложь с истиной")
	assert.False(t, Or(fa, fa)(hit), "ИЛИ: ложь с ложью")

	assert.False(t, Not(tr)(hit), "НЕ от истины")
	assert.True(t, Not(fa)(hit), "НЕ от лжи")
	assert.True(t, Not(Not(tr))(hit), "Двойное отрицание")

	// Законы де Моргана на всех комбинациях
	for _, a := range []Filter{tr, fa} {
		for _, b := range []Filter{tr, fa} {
			assert.Equal(t, Not(And(a, b))(hit), Or(Not(a), Not(b))(hit),
				"Де Морган: НЕ(а И б) == НЕ(а) ИЛИ НЕ(б)")
			assert.Equal(t, Not(Or(a, b))(hit), And(Not(a), Not(b))(hit),
				"Де Морган: НЕ(а ИЛИ б) == НЕ(а) И НЕ(б)")
		}
	}
}

func TestBlockTypeFilter(t *testing.T) {
	// Луч идёт сквозь воздух и останавливается перед камнем
	e := newTestExtent(block.AirBlockID)
	e.blocks[vec.Vec3{X: 3, Y: 0, Z: 0}] = block.StoneBlockID

	ray, err := NewBlockRay(OnlyAirFilter, locAt(e, 0.5, 0.5, 0.5), vec.Vec3Float{X: 1})
	require.NoError(t, err)

	var last *Hit
	count := 0
	for ray.HasNext() {
		last = ray.Next()
		count++
	}

	require.NotNil(t, last)
	assert.Equal(t, vec.Vec3{X: 2, Y: 0, Z: 0}, last.BlockPosition(),
		"Последнее выданное пересечение — последний воздушный блок")
	assert.Equal(t, block.AirBlockID, last.GetBlockType(), "Все выданные блоки — воздух")
	assert.Equal(t, 3, count, "Стартовая точка и два воздушных блока")
}

func TestMaxDistanceFilter(t *testing.T) {
	// Все выданные пересечения строго в пределах дистанции; трассировка
	// останавливается на первом, которое дистанцию превысило
	e := newTestExtent(block.AirBlockID)
	origin := vec.Vec3Float{X: 0.5, Y: 0.5, Z: 0.5}
	distance := 2.5

	ray, err := NewBlockRay(MaxDistanceFilter(origin, distance),
		Location{Extent: e, Position: origin}, vec.Vec3Float{X: 1})
	require.NoError(t, err)

	var last *Hit
	count := 0
	for ray.HasNext() {
		last = ray.Next()
		assert.Less(t, last.Position().DistanceSquaredTo(origin), distance*distance,
			"Каждое выданное пересечение строго ближе лимита")
		count++
	}

	require.NotNil(t, last)
	assert.Equal(t, 2.0, last.X(), "Граница x=3 лежит ровно на дистанции 2.5 и уже отбрасывается")
	assert.Equal(t, 3, count)
}

func TestMaxDistanceFilter_KeepsState(t *testing.T) {
	// Стартовая точка фиксируется при создании фильтра, не при запуске луча
	e := newTestExtent(block.AirBlockID)
	start := vec.Vec3Float{X: 10.5, Y: 0.5, Z: 0.5}
	filter := MaxDistanceFilter(start, 1.0)

	// Луч стартует далеко от зафиксированной точки: фильтр отклоняет всё
	ray, err := NewBlockRay(filter, locAt(e, 0.5, 0.5, 0.5), vec.Vec3Float{X: 1})
	require.NoError(t, err)
	assert.False(t, ray.HasNext(), "Стартовая точка луча вне дистанции от точки фильтра")
}

func TestFilter_None(t *testing.T) {
	e := newTestExtent(block.AirBlockID)
	ray, err := NewBlockRay(None, locAt(e, 0.5, 0.5, 0.5), vec.Vec3Float{X: 1})
	require.NoError(t, err)

	assert.False(t, ray.HasNext(), "Фильтр None не выдаёт даже стартовую точку")
}
