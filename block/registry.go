package block

// BlockID представляет идентификатор типа блока
type BlockID uint16

// Константы ID блоков
const (
	// Базовые типы блоков
	AirBlockID   BlockID = iota // 0
	StoneBlockID                // 1
	GrassBlockID                // 2
	WaterBlockID                // 3
	SandBlockID                 // 4
	DirtBlockID                 // 5

	// Для возможности расширения оставляем промежутки между категориями

	// Глубинная вода (начиная с 100)
	DeepWaterBlockID BlockID = 100
)

// info описывает зарегистрированный тип блока
type info struct {
	name     string
	passable bool
}

var registry = map[BlockID]info{
	AirBlockID:       {name: "air", passable: true},
	StoneBlockID:     {name: "stone", passable: false},
	GrassBlockID:     {name: "grass", passable: false},
	WaterBlockID:     {name: "water", passable: true},
	SandBlockID:      {name: "sand", passable: false},
	DirtBlockID:      {name: "dirt", passable: false},
	DeepWaterBlockID: {name: "deep_water", passable: true},
}

var byName = func() map[string]BlockID {
	m := make(map[string]BlockID, len(registry))
	for id, inf := range registry {
		m[inf.name] = id
	}
	return m
}()

// Register добавляет тип блока в регистр
func Register(id BlockID, name string, passable bool) {
	registry[id] = info{name: name, passable: passable}
	byName[name] = id
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// Name возвращает имя блока или "unknown" для незарегистрированного ID
func (id BlockID) Name() string {
	if inf, exists := registry[id]; exists {
		return inf.name
	}
	return "unknown"
}

// IsPassable сообщает, проходим ли блок (воздух, вода и т.п.)
func (id BlockID) IsPassable() bool {
	inf, exists := registry[id]
	return exists && inf.passable
}

// ByName возвращает ID блока по имени
func ByName(name string) (BlockID, bool) {
	id, exists := byName[name]
	return id, exists
}
