package blockray

import (
	"errors"
	"iter"

	"github.com/annel0/blockray/vec"
)

// Ошибки конфигурации билдера. Проверяются при Build():
// повторная установка поля или противоречивая комбинация полей
// делает билдер невалидным, первая ошибка запоминается.
var (
	ErrFilterAlreadySet     = errors.New("blockray: фильтр уже задан")
	ErrEndAlreadySet        = errors.New("blockray: конечная точка уже задана")
	ErrDirectionAlreadySet  = errors.New("blockray: направление уже задано")
	ErrBlockLimitAlreadySet = errors.New("blockray: лимит блоков уже задан")
	ErrEndAndDirection      = errors.New("blockray: конечная точка и направление взаимоисключающие")
	ErrNoEndOrDirection     = errors.New("blockray: нужно задать конечную точку или направление")
)

// Builder накапливает параметры луча. Обязательны стартовая точка и
// ровно одно из двух: конечная точка или направление. Фильтр и лимит
// блоков опциональны.
type Builder struct {
	start      Location
	filter     Filter
	end        *Location
	direction  *vec.Vec3Float
	blockLimit int
	limitSet   bool
	err        error
}

// From создаёт билдер луча со стартовой точкой
func From(start Location) *Builder {
	return &Builder{
		start:      start,
		blockLimit: DefaultBlockLimit,
	}
}

// Filter задаёт фильтр остановки. Опционально, не более одного раза;
// несколько условий объединяются комбинаторами And/Or/Not.
func (b *Builder) Filter(filter Filter) *Builder {
	if b.err != nil {
		return b
	}
	if b.filter != nil {
		b.err = ErrFilterAlreadySet
		return b
	}
	b.filter = filter
	return b
}

// To задаёт конечную точку. Это или Direction обязательно,
// но одновременно их задать нельзя.
func (b *Builder) To(end Location) *Builder {
	if b.err != nil {
		return b
	}
	if b.end != nil {
		b.err = ErrEndAlreadySet
		return b
	}
	if b.direction != nil {
		b.err = ErrEndAndDirection
		return b
	}
	b.end = &end
	return b
}

// Direction задаёт направление. Это или To обязательно,
// но одновременно их задать нельзя.
func (b *Builder) Direction(direction vec.Vec3Float) *Builder {
	if b.err != nil {
		return b
	}
	if b.direction != nil {
		b.err = ErrDirectionAlreadySet
		return b
	}
	if b.end != nil {
		b.err = ErrEndAndDirection
		return b
	}
	b.direction = &direction
	return b
}

// BlockLimit задаёт максимум пересечений до остановки. Опционально,
// не более одного раза; по умолчанию DefaultBlockLimit, отрицательное
// значение снимает лимит.
func (b *Builder) BlockLimit(blockLimit int) *Builder {
	if b.err != nil {
		return b
	}
	if b.limitSet {
		b.err = ErrBlockLimitAlreadySet
		return b
	}
	b.limitSet = true
	b.blockLimit = blockLimit
	return b
}

// Build создаёт луч из накопленных параметров
func (b *Builder) Build() (*BlockRay, error) {
	if b.err != nil {
		return nil, b.err
	}

	filter := b.filter
	if filter == nil {
		filter = All
	}

	var (
		ray *BlockRay
		err error
	)
	switch {
	case b.end != nil:
		ray, err = NewBlockRayBetween(filter, b.start, *b.end)
	case b.direction != nil:
		ray, err = NewBlockRay(filter, b.start, *b.direction)
	default:
		return nil, ErrNoEndOrDirection
	}
	if err != nil {
		return nil, err
	}

	ray.SetBlockLimit(b.blockLimit)
	return ray, nil
}

// Hits возвращает ленивую последовательность пересечений для
// range-итерации. Луч строится заново на каждый проход, поэтому одну
// последовательность можно итерировать несколько раз с самого начала.
func (b *Builder) Hits() (iter.Seq[*Hit], error) {
	// Параметры проверяются один раз, до первой итерации
	if _, err := b.Build(); err != nil {
		return nil, err
	}
	return func(yield func(*Hit) bool) {
		ray, err := b.Build()
		if err != nil {
			return
		}
		for ray.HasNext() {
			if !yield(ray.Next()) {
				return
			}
		}
	}, nil
}
