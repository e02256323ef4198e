package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/annel0/blockray/vec"
)

// Config корневая структура сценария трассировки:
// параметры мира и список лучей.
type Config struct {
	World WorldConfig `yaml:"world"`
	Rays  []RayConfig `yaml:"rays"`
}

// WorldConfig параметры генерации мира
type WorldConfig struct {
	Seed       int64   `yaml:"seed"`
	NoiseScale float64 `yaml:"noise_scale"`
	WaterLevel int     `yaml:"water_level"`
}

// RayConfig описывает один луч сценария.
// Задаётся либо direction, либо to, но не оба сразу.
type RayConfig struct {
	From        [3]float64  `yaml:"from"`
	Direction   *[3]float64 `yaml:"direction,omitempty"`
	To          *[3]float64 `yaml:"to,omitempty"`
	BlockLimit  *int        `yaml:"block_limit,omitempty"`
	MaxDistance float64     `yaml:"max_distance,omitempty"`
	Through     []string    `yaml:"through,omitempty"`
}

// FromVec возвращает стартовую точку луча как вектор
func (r *RayConfig) FromVec() vec.Vec3Float {
	return toVec(r.From)
}

// DirectionVec возвращает направление луча, если оно задано
func (r *RayConfig) DirectionVec() (vec.Vec3Float, bool) {
	if r.Direction == nil {
		return vec.Vec3Float{}, false
	}
	return toVec(*r.Direction), true
}

// ToVec возвращает конечную точку луча, если она задана
func (r *RayConfig) ToVec() (vec.Vec3Float, bool) {
	if r.To == nil {
		return vec.Vec3Float{}, false
	}
	return toVec(*r.To), true
}

func toVec(coords [3]float64) vec.Vec3Float {
	return vec.Vec3Float{X: coords[0], Y: coords[1], Z: coords[2]}
}

// Load читает YAML файл сценария.
// Если path == "", пытается прочитать из ENV RAY_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("RAY_CONFIG")
		if path == "" {
			return nil, nil // сценарий не задан — использовать флаги
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора сценария %s: %w", path, err)
	}

	return &cfg, nil
}
