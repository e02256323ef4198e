package blockray

import (
	"errors"
	"math"

	"github.com/annel0/blockray/vec"
)

// DefaultBlockLimit — максимум пересечений по умолчанию.
// Защита от бесконечной итерации при фильтре, пропускающем всё.
const DefaultBlockLimit = 1000

// Ошибки конструирования луча
var (
	ErrZeroDirection  = errors.New("blockray: направление должно быть ненулевым вектором ('from' и 'to' не могут совпадать)")
	ErrExtentMismatch = errors.New("blockray: начальная и конечная точки принадлежат разным мирам")
)

// BlockRay трассирует луч по воксельной сетке и выдаёт все пересечения
// границ блоков в порядке возрастания параметра луча, начиная со стартовой
// точки. Итерация вытягивающая: HasNext/Next, без колбэков.
//
// Экземпляр хранит продвигающееся состояние и не потокобезопасен:
// на один логический проход — один приватный экземпляр.
type BlockRay struct {
	// Фильтр, решающий, когда трассировка заканчивается
	filter Filter

	// Целевая ячейка для луча "от точки к точке"; nil у обычного луча
	target *vec.Vec3

	// Целевая ячейка уже выдана, дальше пересечений нет
	targetReached bool

	// Мир, по которому идёт итерация (только чтение, через Hit)
	extent Extent

	// Стартовая точка и нормализованное направление
	position  vec.Vec3Float
	direction vec.Vec3Float

	// Нормали граней, через которые луч входит в блоки по каждой оси
	xNormal, yNormal, zNormal vec.Vec3Float

	// Нормали рёбер и углов, вычисляются лениво: комбинаций всего четыре
	xyNormal, xzNormal, yzNormal, xyzNormal *vec.Vec3Float

	// Шаг индекса границы по каждой оси (+1 или -1)
	xPlaneIncrement, yPlaneIncrement, zPlaneIncrement int

	// Текущие координаты
	xCurrent, yCurrent, zCurrent float64

	// Нормаль грани, через которую вошли в текущую точку
	normalCurrent vec.Vec3Float

	// Индексы ближайших ещё не пересечённых границ
	xPlaneNext, yPlaneNext, zPlaneNext int

	// Решения t для пересечения с этими границами
	xPlaneT, yPlaneT, zPlaneT float64

	// Лимит и счётчик пересечённых границ
	blockLimit int
	blockCount int

	// Последнее выданное пересечение
	hit *Hit

	// Стартовая точка ещё не выдана
	started bool

	// HasNext() уже продвинулся вперёд, Next() не должен шагать повторно
	ahead bool
}

// NewBlockRay создаёт луч из точки в заданном направлении.
// Трассировка заканчивается, когда фильтр возвращает false или
// достигнут лимит блоков. nil-фильтр эквивалентен All.
// Возвращает ErrZeroDirection для нулевого направления.
func NewBlockRay(filter Filter, start Location, direction vec.Vec3Float) (*BlockRay, error) {
	if direction.LengthSquared() == 0 {
		return nil, ErrZeroDirection
	}
	if filter == nil {
		filter = All
	}

	r := &BlockRay{
		filter:     filter,
		extent:     start.Extent,
		position:   start.Position,
		direction:  direction.Normalized(),
		blockLimit: DefaultBlockLimit,
	}

	// Определяем знак шага и нормаль входной грани по каждой оси.
	// При движении в плюс луч входит в блок через его отрицательную грань.
	if r.direction.X >= 0 {
		r.xPlaneIncrement = 1
		r.xNormal = vec.UnitX.Neg()
	} else {
		r.xPlaneIncrement = -1
		r.xNormal = vec.UnitX
	}
	if r.direction.Y >= 0 {
		r.yPlaneIncrement = 1
		r.yNormal = vec.UnitY.Neg()
	} else {
		r.yPlaneIncrement = -1
		r.yNormal = vec.UnitY
	}
	if r.direction.Z >= 0 {
		r.zPlaneIncrement = 1
		r.zNormal = vec.UnitZ.Neg()
	} else {
		r.zPlaneIncrement = -1
		r.zNormal = vec.UnitZ
	}

	r.Reset()
	return r, nil
}

// NewBlockRayBetween создаёт луч от начальной точки к конечной.
// Трассировка заканчивается при достижении ячейки конечной точки,
// когда фильтр возвращает false или достигнут лимит блоков.
// Возвращает ErrExtentMismatch, если точки из разных миров.
func NewBlockRayBetween(filter Filter, from, to Location) (*BlockRay, error) {
	if from.Extent != to.Extent {
		return nil, ErrExtentMismatch
	}
	r, err := NewBlockRay(filter, from, to.Position.Sub(from.Position))
	if err != nil {
		return nil, err
	}
	target := to.BlockPosition()
	r.target = &target
	return r, nil
}

// Position возвращает стартовую точку луча
func (r *BlockRay) Position() vec.Vec3Float {
	return r.position
}

// Direction возвращает нормализованное направление луча
func (r *BlockRay) Direction() vec.Vec3Float {
	return r.direction
}

// SetBlockLimit задаёт максимум пересечений до остановки.
// По умолчанию DefaultBlockLimit; отрицательное значение снимает лимит.
func (r *BlockRay) SetBlockLimit(blockLimit int) {
	r.blockLimit = blockLimit
}

// Reset возвращает итератор в начальное состояние: следующая итерация
// снова начнётся со стартовой точки.
func (r *BlockRay) Reset() {
	// Начинаем со стартовой точки
	r.xCurrent = r.position.X
	r.yCurrent = r.position.Y
	r.zCurrent = r.position.Z

	// Ближайшая граница впереди по каждой оси. При движении в плюс это
	// floor+1 (точка ровно на границе даёт следующую границу, а не себя),
	// при движении в минус — floor, либо floor-1 для точки ровно на границе.
	if r.direction.X >= 0 {
		r.xPlaneNext = floorInt(r.xCurrent) + 1
	} else {
		r.xPlaneNext = floorInt(r.xCurrent)
		if float64(r.xPlaneNext) == r.xCurrent {
			r.xPlaneNext--
		}
	}
	if r.direction.Y >= 0 {
		r.yPlaneNext = floorInt(r.yCurrent) + 1
	} else {
		r.yPlaneNext = floorInt(r.yCurrent)
		if float64(r.yPlaneNext) == r.yCurrent {
			r.yPlaneNext--
		}
	}
	if r.direction.Z >= 0 {
		r.zPlaneNext = floorInt(r.zCurrent) + 1
	} else {
		r.zPlaneNext = floorInt(r.zCurrent)
		if float64(r.zPlaneNext) == r.zCurrent {
			r.zPlaneNext--
		}
	}

	// Первые решения пересечений для каждой оси. Числитель — целая
	// граница, а не результат обратного пересчёта: так индекс границы и
	// непрерывная координата не расходятся из-за накопления ошибки.
	// Нулевая компонента направления даёт +Inf: такая ось никогда
	// не выигрывает сравнение.
	r.xPlaneT = (float64(r.xPlaneNext) - r.position.X) / r.direction.X
	r.yPlaneT = (float64(r.yPlaneNext) - r.position.Y) / r.direction.Y
	r.zPlaneT = (float64(r.zPlaneNext) - r.position.Z) / r.direction.Z

	// Мы внутри блока, ни одна грань ещё не пройдена
	r.normalCurrent = vec.ZeroFloat

	r.blockCount = 0
	r.targetReached = false
	r.started = false
	r.ahead = false
	r.hit = nil
}

// accept пропускает пересечение через фильтр и отслеживает целевую
// ячейку: пересечение в ней ещё выдаётся, всё после неё — уже нет.
func (r *BlockRay) accept(hit *Hit) bool {
	if r.targetReached {
		return false
	}
	if !r.filter(hit) {
		return false
	}
	if r.target != nil && hit.BlockPosition().Equals(*r.target) {
		r.targetReached = true
	}
	r.hit = hit
	return true
}

// advance вычисляет следующее пересечение. Возвращает false, когда
// последовательность исчерпана (лимит или отказ фильтра).
func (r *BlockRay) advance() bool {
	// Если HasNext() уже шагнул вперёд, делать ничего не нужно
	if r.ahead {
		r.ahead = false
		return true
	}

	// Нулевое пересечение — сама стартовая точка, без нормали.
	// Лимит блоков оно не расходует.
	if !r.started {
		r.started = true
		hit := newHit(r.extent, r.xCurrent, r.yCurrent, r.zCurrent, r.direction, vec.ZeroFloat)
		return r.accept(hit)
	}

	// Проверяем лимит блоков, если он включён
	if r.blockLimit >= 0 && r.blockCount >= r.blockLimit {
		return false
	}

	/*
		Луч задаётся параметрически:
			x = d_x * t + p_x
			y = d_y * t + p_y
			z = d_z * t + p_z
		где d — направление, p — стартовая точка, t >= 0.

		Сетка границ блоков — семейства перпендикулярных плоскостей
		A = n на целых координатах n по каждой оси A. Решение
		пересечения луча с такой плоскостью:
			t_s = (n - p_A) / d_A
		причём координата по оси A равна ровно n — это и ускоряет
		вычисление, и убирает ошибку округления.

		Итератор выдаёт решения в порядке возрастания t_s. Совпавшие
		t_s у двух или трёх осей — пересечение ребра или угла, оно
		выдаётся одним комбинированным пересечением.
	*/

	tMin := math.Min(r.xPlaneT, math.Min(r.yPlaneT, r.zPlaneT))
	crossX := r.xPlaneT == tMin
	crossY := r.yPlaneT == tMin
	crossZ := r.zPlaneT == tMin
	switch {
	case crossX && crossY && crossZ:
		r.xyzIntersect()
	case crossX && crossY:
		r.xyIntersect()
	case crossX && crossZ:
		r.xzIntersect()
	case crossY && crossZ:
		r.yzIntersect()
	case crossX:
		r.xIntersect()
	case crossY:
		r.yIntersect()
	default:
		r.zIntersect()
	}

	hit := newHit(r.extent, r.xCurrent, r.yCurrent, r.zCurrent, r.direction, r.normalCurrent)
	if !r.accept(hit) {
		return false
	}
	r.blockCount++
	return true
}

// HasNext сообщает, есть ли ещё пересечения
func (r *BlockRay) HasNext() bool {
	if r.advance() {
		r.ahead = true
		return true
	}
	return false
}

// Next возвращает следующее пересечение. Вызов после исчерпания
// последовательности — ошибка использования, вызывает панику:
// сначала HasNext, потом Next.
func (r *BlockRay) Next() *Hit {
	if !r.advance() {
		panic("blockray: Next() вызван после окончания трассировки")
	}
	return r.hit
}

func (r *BlockRay) xyzIntersect() {
	r.xCurrent = float64(r.xPlaneNext)
	r.yCurrent = float64(r.yPlaneNext)
	r.zCurrent = float64(r.zPlaneNext)
	r.normalCurrent = r.getXYZNormal()
	// Готовим следующие пересечения
	r.xPlaneNext += r.xPlaneIncrement
	r.yPlaneNext += r.yPlaneIncrement
	r.zPlaneNext += r.zPlaneIncrement
	r.xPlaneT = (float64(r.xPlaneNext) - r.position.X) / r.direction.X
	r.yPlaneT = (float64(r.yPlaneNext) - r.position.Y) / r.direction.Y
	r.zPlaneT = (float64(r.zPlaneNext) - r.position.Z) / r.direction.Z
}

func (r *BlockRay) xyIntersect() {
	r.xCurrent = float64(r.xPlaneNext)
	r.yCurrent = float64(r.yPlaneNext)
	r.zCurrent = r.direction.Z*r.xPlaneT + r.position.Z
	r.normalCurrent = r.getXYNormal()
	// Готовим следующие пересечения
	r.xPlaneNext += r.xPlaneIncrement
	r.yPlaneNext += r.yPlaneIncrement
	r.xPlaneT = (float64(r.xPlaneNext) - r.position.X) / r.direction.X
	r.yPlaneT = (float64(r.yPlaneNext) - r.position.Y) / r.direction.Y
}

func (r *BlockRay) xzIntersect() {
	r.xCurrent = float64(r.xPlaneNext)
	r.yCurrent = r.direction.Y*r.xPlaneT + r.position.Y
	r.zCurrent = float64(r.zPlaneNext)
	r.normalCurrent = r.getXZNormal()
	// Готовим следующие пересечения
	r.xPlaneNext += r.xPlaneIncrement
	r.zPlaneNext += r.zPlaneIncrement
	r.xPlaneT = (float64(r.xPlaneNext) - r.position.X) / r.direction.X
	r.zPlaneT = (float64(r.zPlaneNext) - r.position.Z) / r.direction.Z
}

func (r *BlockRay) yzIntersect() {
	r.xCurrent = r.direction.X*r.yPlaneT + r.position.X
	r.yCurrent = float64(r.yPlaneNext)
	r.zCurrent = float64(r.zPlaneNext)
	r.normalCurrent = r.getYZNormal()
	// Готовим следующие пересечения
	r.yPlaneNext += r.yPlaneIncrement
	r.zPlaneNext += r.zPlaneIncrement
	r.yPlaneT = (float64(r.yPlaneNext) - r.position.Y) / r.direction.Y
	r.zPlaneT = (float64(r.zPlaneNext) - r.position.Z) / r.direction.Z
}

func (r *BlockRay) xIntersect() {
	r.xCurrent = float64(r.xPlaneNext)
	r.yCurrent = r.direction.Y*r.xPlaneT + r.position.Y
	r.zCurrent = r.direction.Z*r.xPlaneT + r.position.Z
	r.normalCurrent = r.xNormal
	// Готовим следующее пересечение
	r.xPlaneNext += r.xPlaneIncrement
	r.xPlaneT = (float64(r.xPlaneNext) - r.position.X) / r.direction.X
}

func (r *BlockRay) yIntersect() {
	r.xCurrent = r.direction.X*r.yPlaneT + r.position.X
	r.yCurrent = float64(r.yPlaneNext)
	r.zCurrent = r.direction.Z*r.yPlaneT + r.position.Z
	r.normalCurrent = r.yNormal
	// Готовим следующее пересечение
	r.yPlaneNext += r.yPlaneIncrement
	r.yPlaneT = (float64(r.yPlaneNext) - r.position.Y) / r.direction.Y
}

func (r *BlockRay) zIntersect() {
	r.xCurrent = r.direction.X*r.zPlaneT + r.position.X
	r.yCurrent = r.direction.Y*r.zPlaneT + r.position.Y
	r.zCurrent = float64(r.zPlaneNext)
	r.normalCurrent = r.zNormal
	// Готовим следующее пересечение
	r.zPlaneNext += r.zPlaneIncrement
	r.zPlaneT = (float64(r.zPlaneNext) - r.position.Z) / r.direction.Z
}

func (r *BlockRay) getXYZNormal() vec.Vec3Float {
	if r.xyzNormal == nil {
		n := r.xNormal.Add(r.yNormal).Add(r.zNormal).Normalized()
		r.xyzNormal = &n
	}
	return *r.xyzNormal
}

func (r *BlockRay) getXYNormal() vec.Vec3Float {
	if r.xyNormal == nil {
		n := r.xNormal.Add(r.yNormal).Normalized()
		r.xyNormal = &n
	}
	return *r.xyNormal
}

func (r *BlockRay) getXZNormal() vec.Vec3Float {
	if r.xzNormal == nil {
		n := r.xNormal.Add(r.zNormal).Normalized()
		r.xzNormal = &n
	}
	return *r.xzNormal
}

func (r *BlockRay) getYZNormal() vec.Vec3Float {
	if r.yzNormal == nil {
		n := r.yNormal.Add(r.zNormal).Normalized()
		r.yzNormal = &n
	}
	return *r.yzNormal
}
