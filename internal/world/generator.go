package world

import (
	"github.com/annel0/blockray/block"
	"github.com/annel0/blockray/internal/util"
	"github.com/annel0/blockray/vec"
)

// Константы генерации ландшафта
const (
	DefaultNoiseScale = 0.05 // Сглаженность ландшафта
	DefaultBaseHeight = 64   // Средняя высота поверхности
	DefaultHeightVar  = 24   // Амплитуда перепада высот
	DefaultWaterLevel = 60   // Уровень воды
	DeepWaterDepth    = 6    // Глубина, с которой вода считается глубинной
	DirtDepth         = 4    // Толщина слоя земли под поверхностью
)

// Generator генерирует ландшафт мира на основе шума Перлина.
// Генерация детерминирована: один сид — один и тот же мир.
type Generator struct {
	Seed       int64   // Сид для генерации шума
	NoiseScale float64 // Масштаб шума (высота)
	BaseHeight int     // Средняя высота поверхности
	HeightVar  int     // Амплитуда перепада высот
	WaterLevel int     // Уровень воды

	noise *util.NoiseGenerator
}

// NewGenerator создаёт новый генератор мира
func NewGenerator(seed int64) *Generator {
	return &Generator{
		Seed:       seed,
		NoiseScale: DefaultNoiseScale,
		BaseHeight: DefaultBaseHeight,
		HeightVar:  DefaultHeightVar,
		WaterLevel: DefaultWaterLevel,
		noise:      util.NewNoiseGenerator(seed),
	}
}

// SurfaceHeight возвращает высоту поверхности в колонке (x, z)
func (g *Generator) SurfaceHeight(x, z int) int {
	noiseX := float64(x) * g.NoiseScale
	noiseZ := float64(z) * g.NoiseScale

	// Шум даёт значение от 0 до 1, растягиваем на амплитуду высот
	height := g.noise.Noise2D(noiseX, noiseZ)
	return g.BaseHeight + int(height*float64(g.HeightVar)) - g.HeightVar/2
}

// BlockAt возвращает тип блока в указанной точке мира
func (g *Generator) BlockAt(pos vec.Vec3) block.BlockID {
	surface := g.SurfaceHeight(pos.X, pos.Z)

	switch {
	case pos.Y > surface:
		// Над поверхностью: вода до уровня воды, выше воздух
		if pos.Y <= g.WaterLevel {
			if pos.Y <= g.WaterLevel-DeepWaterDepth {
				return block.DeepWaterBlockID
			}
			return block.WaterBlockID
		}
		return block.AirBlockID
	case pos.Y == surface:
		// Поверхность: под водой песок, на суше трава
		if surface < g.WaterLevel {
			return block.SandBlockID
		}
		return block.GrassBlockID
	case pos.Y > surface-DirtDepth:
		return block.DirtBlockID
	default:
		return block.StoneBlockID
	}
}

// generateChunk заполняет чанк блоками ландшафта
func (g *Generator) generateChunk(coords vec.Vec3) *chunk {
	c := &chunk{}

	globalStartX := coords.X << chunkShift
	globalStartY := coords.Y << chunkShift
	globalStartZ := coords.Z << chunkShift

	for y := 0; y < ChunkSize; y++ {
		for z := 0; z < ChunkSize; z++ {
			for x := 0; x < ChunkSize; x++ {
				pos := vec.Vec3{
					X: globalStartX + x,
					Y: globalStartY + y,
					Z: globalStartZ + z,
				}
				c.set(x, y, z, g.BlockAt(pos))
			}
		}
	}

	return c
}
