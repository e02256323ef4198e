package util

import (
	"github.com/aquilax/go-perlin"
)

// NoiseGenerator генерирует двумерный шум Перлина, нормализованный в [0, 1].
// Экземпляр привязан к сиду, глобального состояния нет.
type NoiseGenerator struct {
	perlin *perlin.Perlin
}

// NewNoiseGenerator создаёт генератор шума с указанным сидом
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &NoiseGenerator{
		perlin: perlin.NewPerlin(alpha, beta, n, seed),
	}
}

// Noise2D возвращает значение шума для указанных координат (от 0 до 1)
func (g *NoiseGenerator) Noise2D(x, y float64) float64 {
	// Шум Перлина возвращает значение от -1 до 1, приводим к [0, 1]
	return (g.perlin.Noise2D(x, y) + 1.0) / 2.0
}
