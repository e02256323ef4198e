package blockray

import (
	"github.com/annel0/blockray/block"
	"github.com/annel0/blockray/vec"
)

// Extent представляет воксельную сетку, по которой идёт трассировка.
// Сетка принадлежит внешнему коду; луч только читает её через этот
// интерфейс и никогда не изменяет. Сравнение миров выполняется по
// идентичности интерфейсного значения, а не геометрически.
type Extent interface {
	// GetBlockType возвращает тип блока в указанной ячейке сетки
	GetBlockType(pos vec.Vec3) block.BlockID
}

// Location привязывает непрерывную точку к конкретному миру
type Location struct {
	Extent   Extent
	Position vec.Vec3Float
}

// BlockPosition возвращает ячейку сетки, содержащую точку
func (l Location) BlockPosition() vec.Vec3 {
	return l.Position.Floor()
}
