package world

import (
	"sync"

	"github.com/annel0/blockray/block"
	"github.com/annel0/blockray/vec"
)

// Размер чанка по каждой оси
const (
	ChunkSize  = 16
	chunkShift = 4
	chunkMask  = ChunkSize - 1
)

// chunk хранит блоки куба 16x16x16
type chunk struct {
	blocks [ChunkSize * ChunkSize * ChunkSize]block.BlockID
}

func (c *chunk) index(x, y, z int) int {
	return (y*ChunkSize+z)*ChunkSize + x
}

func (c *chunk) get(x, y, z int) block.BlockID {
	return c.blocks[c.index(x, y, z)]
}

func (c *chunk) set(x, y, z int, id block.BlockID) {
	c.blocks[c.index(x, y, z)] = id
}

// World — воксельный мир в памяти с ленивой генерацией чанков.
// Реализует blockray.Extent: луч читает блоки через GetBlockType.
type World struct {
	mu        sync.RWMutex
	seed      int64
	generator *Generator
	chunks    map[vec.Vec3]*chunk
}

// NewWorld создаёт мир с указанным сидом
func NewWorld(seed int64) *World {
	return &World{
		seed:      seed,
		generator: NewGenerator(seed),
		chunks:    make(map[vec.Vec3]*chunk),
	}
}

// NewWorldWithGenerator создаёт мир с настроенным генератором
func NewWorldWithGenerator(generator *Generator) *World {
	return &World{
		seed:      generator.Seed,
		generator: generator,
		chunks:    make(map[vec.Vec3]*chunk),
	}
}

// Seed возвращает сид мира
func (w *World) Seed() int64 {
	return w.seed
}

// GetBlockType возвращает тип блока в указанной позиции,
// генерируя чанк при первом обращении
func (w *World) GetBlockType(pos vec.Vec3) block.BlockID {
	chunkCoords, local := split(pos)

	w.mu.RLock()
	c, exists := w.chunks[chunkCoords]
	if !exists {
		w.mu.RUnlock()
		c = w.loadChunk(chunkCoords)
		w.mu.RLock()
	}

	// Массив чанка читается под блокировкой: SetBlock пишет в него под mu
	id := c.get(local.X, local.Y, local.Z)
	w.mu.RUnlock()
	return id
}

// SetBlock устанавливает блок в указанной позиции
func (w *World) SetBlock(pos vec.Vec3, id block.BlockID) {
	chunkCoords, local := split(pos)

	w.mu.RLock()
	c, exists := w.chunks[chunkCoords]
	w.mu.RUnlock()

	if !exists {
		c = w.loadChunk(chunkCoords)
	}

	w.mu.Lock()
	c.set(local.X, local.Y, local.Z, id)
	w.mu.Unlock()
}

// ChunkCount возвращает число загруженных чанков
func (w *World) ChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// loadChunk генерирует чанк и регистрирует его в мире
func (w *World) loadChunk(coords vec.Vec3) *chunk {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Другая горутина могла успеть сгенерировать чанк раньше
	if c, exists := w.chunks[coords]; exists {
		return c
	}

	c := w.generator.generateChunk(coords)
	w.chunks[coords] = c
	return c
}

// split разбивает мировую позицию на координаты чанка и локальные
// координаты внутри него. Арифметический сдвиг корректно обрабатывает
// отрицательные координаты.
func split(pos vec.Vec3) (chunkCoords, local vec.Vec3) {
	chunkCoords = vec.Vec3{
		X: pos.X >> chunkShift,
		Y: pos.Y >> chunkShift,
		Z: pos.Z >> chunkShift,
	}
	local = vec.Vec3{
		X: pos.X & chunkMask,
		Y: pos.Y & chunkMask,
		Z: pos.Z & chunkMask,
	}
	return chunkCoords, local
}
