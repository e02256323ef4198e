package blockray

import (
	"math"

	"github.com/annel0/blockray/block"
	"github.com/annel0/blockray/vec"
)

// Hit представляет одно пересечение луча с границей блока.
// Хранит больше информации, чем обычная позиция: мир, точные
// координаты пересечения, грань входа и ячейку, в которую вошёл луч.
// Значение неизменяемо; производные поля вычисляются лениво и кэшируются.
type Hit struct {
	extent    Extent
	x, y, z   float64
	direction vec.Vec3Float
	normal    vec.Vec3Float

	// Ячейка, в которую вошёл луч. Вычисляется сразу с учётом грани
	// входа, чтобы точки ровно на границе попадали в правильный блок.
	blockX, blockY, blockZ int

	// Ленивые кэши векторных представлений
	position      *vec.Vec3Float
	blockPosition *vec.Vec3
}

// newHit создаёт запись пересечения. Нормаль указывает наружу из
// входной грани: положительная компонента означает, что луч двигался
// в отрицательную сторону оси, поэтому ячейка сдвигается на единицу назад.
func newHit(extent Extent, x, y, z float64, direction, normal vec.Vec3Float) *Hit {
	h := &Hit{
		extent:    extent,
		x:         x,
		y:         y,
		z:         z,
		direction: direction,
		normal:    normal,
	}
	h.blockX = floorInt(x)
	if normal.X > 0 {
		h.blockX--
	}
	h.blockY = floorInt(y)
	if normal.Y > 0 {
		h.blockY--
	}
	h.blockZ = floorInt(z)
	if normal.Z > 0 {
		h.blockZ--
	}
	return h
}

// Extent возвращает мир, которому принадлежит пересечение
func (h *Hit) Extent() Extent {
	return h.extent
}

// X возвращает X-координату точки пересечения
func (h *Hit) X() float64 {
	return h.x
}

// Y возвращает Y-координату точки пересечения
func (h *Hit) Y() float64 {
	return h.y
}

// Z возвращает Z-координату точки пересечения
func (h *Hit) Z() float64 {
	return h.z
}

// Position возвращает точку пересечения как вектор
func (h *Hit) Position() vec.Vec3Float {
	if h.position == nil {
		h.position = &vec.Vec3Float{X: h.x, Y: h.y, Z: h.z}
	}
	return *h.position
}

// BlockX возвращает X-координату ячейки, в которую вошёл луч
func (h *Hit) BlockX() int {
	return h.blockX
}

// BlockY возвращает Y-координату ячейки, в которую вошёл луч
func (h *Hit) BlockY() int {
	return h.blockY
}

// BlockZ возвращает Z-координату ячейки, в которую вошёл луч
func (h *Hit) BlockZ() int {
	return h.blockZ
}

// BlockPosition возвращает ячейку сетки, в которую вошёл луч
func (h *Hit) BlockPosition() vec.Vec3 {
	if h.blockPosition == nil {
		h.blockPosition = &vec.Vec3{X: h.blockX, Y: h.blockY, Z: h.blockZ}
	}
	return *h.blockPosition
}

// Direction возвращает нормализованное направление луча
func (h *Hit) Direction() vec.Vec3Float {
	return h.direction
}

// Normal возвращает нормаль грани, через которую луч вошёл в ячейку.
// Для стартовой точки луча нормаль нулевая. Для пересечения ребра или
// угла нормаль — нормализованная сумма нормалей совпавших граней.
func (h *Hit) Normal() vec.Vec3Float {
	return h.normal
}

// GetBlockType возвращает тип блока в ячейке пересечения
func (h *Hit) GetBlockType() block.BlockID {
	return h.extent.GetBlockType(h.BlockPosition())
}

// floorInt округляет вниз до целого, включая отрицательные значения
func floorInt(x float64) int {
	return int(math.Floor(x))
}
