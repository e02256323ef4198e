package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Operations(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 5, Z: 3}

	assert.Equal(t, Vec3{X: 0, Y: 7, Z: 6}, a.Add(b), "Сложение векторов должно быть покомпонентным")
	assert.Equal(t, Vec3{X: 2, Y: -3, Z: 0}, a.Sub(b), "Вычитание векторов должно быть покомпонентным")
	assert.True(t, a.Equals(Vec3{X: 1, Y: 2, Z: 3}), "Равные векторы должны считаться равными")
	assert.False(t, a.Equals(b), "Разные векторы не должны считаться равными")
	assert.Equal(t, Vec3Float{X: 1, Y: 2, Z: 3}, a.ToFloat(), "Преобразование в float должно сохранять координаты")
}

func TestVec3Float_Normalized(t *testing.T) {
	v := Vec3Float{X: 3, Y: 0, Z: 4}
	n := v.Normalized()

	assert.InDelta(t, 1.0, n.Length(), 1e-12, "Нормализованный вектор должен иметь единичную длину")
	assert.InDelta(t, 0.6, n.X, 1e-12, "X компонента нормализованного вектора")
	assert.InDelta(t, 0.8, n.Z, 1e-12, "Z компонента нормализованного вектора")

	// Нулевой вектор нормализуется в нулевой, без NaN
	zero := Vec3Float{}.Normalized()
	assert.True(t, zero.IsZero(), "Нормализация нулевого вектора должна давать нулевой вектор")
}

func TestVec3Float_Floor(t *testing.T) {
	// Округление вниз, в том числе для отрицательных координат
	assert.Equal(t, Vec3{X: 0, Y: 1, Z: -1}, Vec3Float{X: 0.5, Y: 1.9, Z: -0.5}.Floor(),
		"Floor должен округлять вниз")
	assert.Equal(t, Vec3{X: 1, Y: -1, Z: -2}, Vec3Float{X: 1.0, Y: -1.0, Z: -1.5}.Floor(),
		"Floor на целых значениях должен возвращать их же")
}

func TestVec3Float_Distance(t *testing.T) {
	a := Vec3Float{X: 1, Y: 2, Z: 3}
	b := Vec3Float{X: 4, Y: 6, Z: 3}

	assert.InDelta(t, 25.0, a.DistanceSquaredTo(b), 1e-12, "Квадрат расстояния должен быть 25")
	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-12, "Расстояние должно быть 5")
}

func TestVec3Float_DotAndNeg(t *testing.T) {
	a := Vec3Float{X: 1, Y: -2, Z: 3}
	b := Vec3Float{X: 2, Y: 1, Z: -1}

	assert.InDelta(t, -3.0, a.Dot(b), 1e-12, "Скалярное произведение")
	assert.Equal(t, Vec3Float{X: -1, Y: 2, Z: -3}, a.Neg(), "Отрицание вектора")
	assert.InDelta(t, math.Sqrt(14), a.Length(), 1e-12, "Длина вектора")
}
