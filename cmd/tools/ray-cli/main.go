package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/annel0/blockray"
	"github.com/annel0/blockray/block"
	"github.com/annel0/blockray/internal/config"
	"github.com/annel0/blockray/internal/logging"
	"github.com/annel0/blockray/internal/world"
	"github.com/annel0/blockray/vec"
)

const defaultSeed = 12345

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML scenario (or RAY_CONFIG env)")
		seed       = flag.Int64("seed", defaultSeed, "World generation seed")
		from       = flag.String("from", "", "Ray origin, e.g. 0.5,70.5,0.5")
		dir        = flag.String("dir", "", "Ray direction, e.g. 1,-0.2,0.3")
		to         = flag.String("to", "", "Ray end point (mutually exclusive with -dir)")
		limit      = flag.Int("limit", blockray.DefaultBlockLimit, "Block limit (negative disables)")
		maxDist    = flag.Float64("max-dist", 0, "Stop past this distance from origin (0 disables)")
		through    = flag.String("through", "", "Block names the ray passes through (comma-separated)")
		verbose    = flag.Bool("v", false, "Log every hit")
	)
	flag.Parse()

	if err := logging.InitLogger(); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки сценария: %v", err)
	}

	if cfg == nil {
		// Сценарий не задан — собираем один луч из флагов
		cfg = &config.Config{
			World: config.WorldConfig{Seed: *seed},
		}
		ray, err := rayFromFlags(*from, *dir, *to, *limit, *maxDist, *through)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		cfg.Rays = append(cfg.Rays, ray)
	}

	w := buildWorld(&cfg.World)
	logging.LogInfo("Мир создан: seed=%d", w.Seed())

	for i := range cfg.Rays {
		if err := traceRay(w, &cfg.Rays[i], *verbose); err != nil {
			log.Fatalf("❌ Луч %d: %v", i, err)
		}
	}
}

// rayFromFlags собирает описание луча из флагов командной строки
func rayFromFlags(from, dir, to string, limit int, maxDist float64, through string) (config.RayConfig, error) {
	var ray config.RayConfig

	if from == "" {
		return ray, fmt.Errorf("не задана стартовая точка (-from или -config)")
	}
	origin, err := parseVec(from)
	if err != nil {
		return ray, fmt.Errorf("неверный формат -from: %w", err)
	}
	ray.From = origin

	if dir != "" {
		direction, err := parseVec(dir)
		if err != nil {
			return ray, fmt.Errorf("неверный формат -dir: %w", err)
		}
		ray.Direction = &direction
	}
	if to != "" {
		end, err := parseVec(to)
		if err != nil {
			return ray, fmt.Errorf("неверный формат -to: %w", err)
		}
		ray.To = &end
	}

	ray.BlockLimit = &limit
	ray.MaxDistance = maxDist
	ray.Through = parseStringList(through)
	return ray, nil
}

// buildWorld создаёт мир по настройкам сценария
func buildWorld(wc *config.WorldConfig) *world.World {
	generator := world.NewGenerator(wc.Seed)
	if wc.NoiseScale > 0 {
		generator.NoiseScale = wc.NoiseScale
	}
	if wc.WaterLevel > 0 {
		generator.WaterLevel = wc.WaterLevel
	}
	return world.NewWorldWithGenerator(generator)
}

// traceRay выполняет трассировку одного луча и печатает пересечения
func traceRay(w *world.World, rc *config.RayConfig, verbose bool) error {
	rayID := uuid.NewString()[:8]
	origin := rc.FromVec()

	builder := blockray.From(blockray.Location{Extent: w, Position: origin})

	if direction, ok := rc.DirectionVec(); ok {
		builder.Direction(direction)
	}
	if end, ok := rc.ToVec(); ok {
		builder.To(blockray.Location{Extent: w, Position: end})
	}
	if rc.BlockLimit != nil {
		builder.BlockLimit(*rc.BlockLimit)
	}

	filter, err := buildFilter(origin, rc)
	if err != nil {
		return err
	}
	if filter != nil {
		builder.Filter(filter)
	}

	ray, err := builder.Build()
	if err != nil {
		return err
	}

	direction := ray.Direction()
	logging.LogRayStart(rayID, origin.X, origin.Y, origin.Z,
		direction.X, direction.Y, direction.Z)

	fmt.Printf("=== Луч %s ===\n", rayID)
	count := 0
	for ray.HasNext() {
		hit := ray.Next()
		blockPos := hit.BlockPosition()
		name := hit.GetBlockType().Name()
		fmt.Printf("#%-4d (%8.3f, %8.3f, %8.3f)  блок (%4d, %4d, %4d)  %-10s  нормаль (%+.2f, %+.2f, %+.2f)\n",
			count, hit.X(), hit.Y(), hit.Z(),
			blockPos.X, blockPos.Y, blockPos.Z, name,
			hit.Normal().X, hit.Normal().Y, hit.Normal().Z)
		if verbose {
			logging.LogRayHit(rayID, count, hit.X(), hit.Y(), hit.Z(),
				blockPos.X, blockPos.Y, blockPos.Z, name)
		}
		count++
	}
	fmt.Printf("Всего пересечений: %d\n", count)
	logging.LogInfo("Ray %s: %d пересечений", rayID, count)
	return nil
}

// buildFilter собирает фильтр остановки из настроек луча
func buildFilter(origin vec.Vec3Float, rc *config.RayConfig) (blockray.Filter, error) {
	var filters []blockray.Filter

	if len(rc.Through) > 0 {
		var typeFilters []blockray.Filter
		for _, name := range rc.Through {
			id, ok := block.ByName(name)
			if !ok {
				return nil, fmt.Errorf("неизвестный тип блока: %q", name)
			}
			typeFilters = append(typeFilters, blockray.BlockTypeFilter(id))
		}
		filters = append(filters, blockray.Or(typeFilters...))
	}

	if rc.MaxDistance > 0 {
		filters = append(filters, blockray.MaxDistanceFilter(origin, rc.MaxDistance))
	}

	switch len(filters) {
	case 0:
		return nil, nil
	case 1:
		return filters[0], nil
	default:
		return blockray.And(filters...), nil
	}
}

// parseVec разбирает строку вида "x,y,z" в тройку координат
func parseVec(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("ожидалось три координаты, получено %d", len(parts))
	}
	var coords [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, err
		}
		coords[i] = v
	}
	return coords, nil
}

// parseStringList разбирает список имён через запятую
func parseStringList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
