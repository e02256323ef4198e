package blockray

import (
	"github.com/annel0/blockray/block"
	"github.com/annel0/blockray/vec"
)

// Filter определяет, в какой точке трассировка должна остановиться.
// Фильтр вызывается на каждом пересечении; true означает "продолжать",
// false — "остановиться, не выдавая это пересечение".
//
// Фильтру разрешено хранить состояние вдоль одного пути (например,
// стартовую точку для дистанции), поэтому один экземпляр фильтра
// должен использоваться только с одним лучом.
type Filter func(lastHit *Hit) bool

// All пропускает все блоки. Луч только с этим фильтром ограничен
// лишь лимитом блоков — без лимита он шёл бы бесконечно.
func All(lastHit *Hit) bool {
	return true
}

// None не пропускает ни одного блока: трассировка завершается сразу же
func None(lastHit *Hit) bool {
	return false
}

// And комбинирует фильтры: продолжаем, только если согласны все
func And(filters ...Filter) Filter {
	return func(lastHit *Hit) bool {
		for _, f := range filters {
			if !f(lastHit) {
				return false
			}
		}
		return true
	}
}

// Or комбинирует фильтры: продолжаем, если согласен хотя бы один
func Or(filters ...Filter) Filter {
	return func(lastHit *Hit) bool {
		for _, f := range filters {
			if f(lastHit) {
				return true
			}
		}
		return false
	}
}

// Not инвертирует фильтр
func Not(f Filter) Filter {
	return func(lastHit *Hit) bool {
		return !f(lastHit)
	}
}

// BlockTypeFilter пропускает только блоки указанного типа.
// Тип блока запрашивается у мира через ссылку в пересечении.
func BlockTypeFilter(id block.BlockID) Filter {
	return func(lastHit *Hit) bool {
		return lastHit.GetBlockType() == id
	}
}

// OnlyAirFilter пропускает только воздух. Классическое поведение
// поиска блока, на который смотрит игрок: идём сквозь воздух до
// первого непрозрачного блока.
var OnlyAirFilter = BlockTypeFilter(block.AirBlockID)

// MaxDistanceFilter останавливает трассировку на заданной дистанции
// от стартовой точки. Сравнивается квадрат расстояния, без корня.
//
// Обратите внимание на поведение на границе: трассировка прекращается,
// как только дистанция строго превысила лимит, поэтому последняя
// (отброшенная) точка может лежать чуть дальше лимита. Все выданные
// пересечения при этом гарантированно лежат в пределах дистанции.
func MaxDistanceFilter(start vec.Vec3Float, distance float64) Filter {
	distanceSquared := distance * distance
	return func(lastHit *Hit) bool {
		return lastHit.Position().DistanceSquaredTo(start) < distanceSquared
	}
}
