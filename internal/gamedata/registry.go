package gamedata

import (
	"errors"
	"math/rand"
)

// weighted is the common weighted-selection core shared by the registries.
type weighted[T any] struct {
	defs        []T
	weights     []int
	totalWeight int
}

func newWeighted[T any](defs []T, weightOf func(T) int) weighted[T] {
	w := weighted[T]{defs: defs, weights: make([]int, len(defs))}
	for i, d := range defs {
		w.weights[i] = weightOf(d)
		w.totalWeight += w.weights[i]
	}
	return w
}

// spawnRandom selects a random definition using weighted probability.
// Definitions with higher spawnWeight are more likely to be selected.
func (w *weighted[T]) spawnRandom(rng *rand.Rand) *T {
	if w.totalWeight <= 0 || len(w.defs) == 0 {
		return nil
	}
	roll := rng.Intn(w.totalWeight)
	cumulative := 0
	for i := range w.defs {
		cumulative += w.weights[i]
		if roll < cumulative {
			return &w.defs[i]
		}
	}
	// Fallback (shouldn't happen)
	return &w.defs[0]
}

// =============================================================================
// EnemyRegistry
// =============================================================================

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	weighted[EnemyDef]
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	return &EnemyRegistry{newWeighted(enemies, func(e EnemyDef) int { return e.SpawnWeight })}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// SpawnRandom selects a random enemy definition using weighted probability.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	return r.spawnRandom(rng)
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.defs {
		if r.defs[i].ID == id {
			return &r.defs[i]
		}
	}
	return nil
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.defs
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.defs)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds loaded item definitions and provides spawning utilities.
type ItemRegistry struct {
	weighted[ItemDef]
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	return &ItemRegistry{newWeighted(items, func(i ItemDef) int { return i.SpawnWeight })}
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// SpawnRandom selects a random item definition using weighted probability.
func (r *ItemRegistry) SpawnRandom(rng *rand.Rand) *ItemDef {
	return r.spawnRandom(rng)
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	for i := range r.defs {
		if r.defs[i].ID == id {
			return &r.defs[i]
		}
	}
	return nil
}

// Count returns the number of item types in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.defs)
}

// =============================================================================
// TrapRegistry
// =============================================================================

// TrapRegistry holds loaded trap definitions and provides spawning utilities.
type TrapRegistry struct {
	weighted[TrapDef]
}

// NewTrapRegistry creates a registry from loaded trap definitions.
func NewTrapRegistry(traps []TrapDef) *TrapRegistry {
	return &TrapRegistry{newWeighted(traps, func(t TrapDef) int { return t.SpawnWeight })}
}

// LoadTrapRegistry loads and creates a registry from the embedded traps.json.
func LoadTrapRegistry() (*TrapRegistry, error) {
	traps, err := LoadTraps()
	if err != nil {
		return nil, err
	}
	if len(traps) == 0 {
		return nil, errors.New("no traps loaded from traps.json")
	}
	return NewTrapRegistry(traps), nil
}

// SpawnRandom selects a random trap definition using weighted probability.
func (r *TrapRegistry) SpawnRandom(rng *rand.Rand) *TrapDef {
	return r.spawnRandom(rng)
}

// Count returns the number of trap types in the registry.
func (r *TrapRegistry) Count() int {
	return len(r.defs)
}

// =============================================================================
// Picker
// =============================================================================

// Picker bundles the three registries behind the generator's EntityPicker
// contract: it assigns concrete enemy/item/trap identities to spawn records.
type Picker struct {
	Enemies *EnemyRegistry
	Items   *ItemRegistry
	Traps   *TrapRegistry
}

// LoadPicker loads all three registries from the embedded data files.
func LoadPicker() (*Picker, error) {
	enemies, err := LoadEnemyRegistry()
	if err != nil {
		return nil, err
	}
	items, err := LoadItemRegistry()
	if err != nil {
		return nil, err
	}
	traps, err := LoadTrapRegistry()
	if err != nil {
		return nil, err
	}
	return &Picker{Enemies: enemies, Items: items, Traps: traps}, nil
}

// PickEnemy returns a weighted-random enemy ID.
func (p *Picker) PickEnemy(rng *rand.Rand) string {
	if def := p.Enemies.SpawnRandom(rng); def != nil {
		return def.ID
	}
	return ""
}

// PickItem returns a weighted-random item ID.
func (p *Picker) PickItem(rng *rand.Rand) string {
	if def := p.Items.SpawnRandom(rng); def != nil {
		return def.ID
	}
	return ""
}

// PickTrap returns a weighted-random trap ID.
func (p *Picker) PickTrap(rng *rand.Rand) string {
	if def := p.Traps.SpawnRandom(rng); def != nil {
		return def.ID
	}
	return ""
}
