// Package food owns the live food items on the board, weighted type
// selection with the golden-food interval, and timed speed effects.
package food

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// Kind identifies a food type.
type Kind int

const (
	Normal Kind = iota
	Golden
	Bomb
	SpeedBoost
	SlowTime
)

var kindNames = map[Kind]string{
	Normal:     "normal",
	Golden:     "golden",
	Bomb:       "bomb",
	SpeedBoost: "speed_boost",
	SlowTime:   "slow_time",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind maps a configuration name to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, s := range kindNames {
		if s == name {
			return k, nil
		}
	}
	return Normal, fmt.Errorf("food: unknown kind %q", name)
}

// Effect types.
const (
	EffectSpeed = "speed"
	EffectSlow  = "slow"
)

// Effect is a timed speed modifier.
type Effect struct {
	Type       string
	Multiplier float64
	Duration   time.Duration
}

// Descriptor is the static definition of a food kind.
type Descriptor struct {
	Kind   Kind
	Score  int
	Growth int
	Weight int
	Effect *Effect
}

// Item is a live food on the board.
type Item struct {
	Kind Kind
	Pos  core.Point
}

// Consumed is what eating an item yields. The caller applies it.
type Consumed struct {
	Kind   Kind
	Score  int
	Growth int
	Effect *Effect
}

// ActiveEffect is an applied effect waiting to expire.
type ActiveEffect struct {
	Type       string
	Multiplier float64
	Expiry     time.Duration // Simulation time at which the effect ends
}

// Engine spawns, tracks and consumes food.
type Engine struct {
	grid        core.Grid
	rng         *rand.Rand
	maxItems    int
	goldenMin   int
	goldenMax   int
	descriptors []Descriptor // declaration order
	byKind      map[Kind]Descriptor

	items             []Item
	effects           []ActiveEffect
	normalSinceGolden int
}

// NewEngine builds an engine from the food configuration.
func NewEngine(cfg config.FoodConfig, grid core.Grid, rng *rand.Rand) (*Engine, error) {
	e := &Engine{
		grid:      grid,
		rng:       rng,
		maxItems:  cfg.MaxItems,
		goldenMin: cfg.GoldenInterval.Min,
		goldenMax: cfg.GoldenInterval.Max,
		byKind:    make(map[Kind]Descriptor, len(cfg.Kinds)),
	}
	for _, kc := range cfg.Kinds {
		k, err := ParseKind(kc.Name)
		if err != nil {
			return nil, err
		}
		if _, dup := e.byKind[k]; dup {
			return nil, fmt.Errorf("food: duplicate kind %q", kc.Name)
		}
		d := Descriptor{Kind: k, Score: kc.Score, Growth: kc.Growth, Weight: kc.Weight}
		if kc.Effect != nil {
			d.Effect = &Effect{
				Type:       kc.Effect.Type,
				Multiplier: kc.Effect.Multiplier,
				Duration:   kc.Effect.Duration(),
			}
		}
		e.descriptors = append(e.descriptors, d)
		e.byKind[k] = d
	}
	if _, ok := e.byKind[Normal]; !ok {
		return nil, fmt.Errorf("food: normal kind is required")
	}
	return e, nil
}

// Descriptor returns the static definition of a kind.
func (e *Engine) Descriptor(k Kind) (Descriptor, bool) {
	d, ok := e.byKind[k]
	return d, ok
}

// Spawn places one new item on a cell outside excluded and the live items.
// It refuses when the board already holds the maximum number of items.
// On a crowded board the cell may collide; see core.Grid.RandomPosition.
func (e *Engine) Spawn(excluded core.PointSet) (core.Point, bool) {
	if len(e.items) >= e.maxItems {
		return core.Point{}, false
	}
	kind := e.DetermineType()

	all := make(core.PointSet, len(excluded)+len(e.items))
	for p := range excluded {
		all.Add(p)
	}
	for _, it := range e.items {
		all.Add(it.Pos)
	}

	pos := e.grid.RandomPosition(e.rng, all)
	e.items = append(e.items, Item{Kind: kind, Pos: pos})
	return pos, true
}

// Place puts an item of kind at p without drawing a type. It refuses when the
// board is full or p already holds an item.
func (e *Engine) Place(kind Kind, p core.Point) bool {
	if len(e.items) >= e.maxItems {
		return false
	}
	if _, taken := e.CheckCollision(p); taken {
		return false
	}
	e.items = append(e.items, Item{Kind: kind, Pos: p})
	return true
}

// SpawnMultiple spawns up to count items, stopping at the board maximum.
func (e *Engine) SpawnMultiple(excluded core.PointSet, count int) []core.Point {
	var spawned []core.Point
	for i := 0; i < count && len(e.items) < e.maxItems; i++ {
		if pos, ok := e.Spawn(excluded); ok {
			spawned = append(spawned, pos)
		}
	}
	return spawned
}

// DetermineType picks the kind of the next spawn. Once the count of normal
// spawns since the last golden falls inside the golden interval, golden is
// forced and the count resets. Otherwise a weighted draw runs over the
// non-golden kinds in declaration order.
func (e *Engine) DetermineType() Kind {
	if _, ok := e.byKind[Golden]; ok &&
		e.normalSinceGolden >= e.goldenMin && e.normalSinceGolden <= e.goldenMax {
		e.normalSinceGolden = 0
		return Golden
	}

	total := 0
	for _, d := range e.descriptors {
		if d.Kind != Golden {
			total += d.Weight
		}
	}

	r := e.rng.Float64() * float64(total)
	for _, d := range e.descriptors {
		if d.Kind == Golden {
			continue
		}
		r -= float64(d.Weight)
		if r <= 0 {
			if d.Kind == Normal {
				e.normalSinceGolden++
			}
			return d.Kind
		}
	}

	e.normalSinceGolden++
	return Normal
}

// CheckCollision returns the item at head, if any.
func (e *Engine) CheckCollision(head core.Point) (Item, bool) {
	for _, it := range e.items {
		if it.Pos == head {
			return it, true
		}
	}
	return Item{}, false
}

// Consume removes the item and returns its descriptor values.
func (e *Engine) Consume(item Item) Consumed {
	for i, it := range e.items {
		if it == item {
			e.items = append(e.items[:i], e.items[i+1:]...)
			break
		}
	}
	d := e.byKind[item.Kind]
	return Consumed{Kind: item.Kind, Score: d.Score, Growth: d.Growth, Effect: d.Effect}
}

// ApplyEffect records effect until now+duration and returns currentSpeed
// scaled by its multiplier. A nil effect leaves the speed unchanged.
// The returned speed already carries the multiplier and UpdateEffects
// applies it again on top of the base speed, so overlapping effects compound.
func (e *Engine) ApplyEffect(effect *Effect, currentSpeed float64, now time.Duration) float64 {
	if effect == nil {
		return currentSpeed
	}
	e.effects = append(e.effects, ActiveEffect{
		Type:       effect.Type,
		Multiplier: effect.Multiplier,
		Expiry:     now + effect.Duration,
	})
	return currentSpeed * effect.Multiplier
}

// UpdateEffects drops effects whose expiry is at or before now, then folds the
// remaining multipliers onto baseSpeed.
func (e *Engine) UpdateEffects(baseSpeed float64, now time.Duration) float64 {
	kept := e.effects[:0]
	for _, ef := range e.effects {
		if ef.Expiry > now {
			kept = append(kept, ef)
		}
	}
	e.effects = kept

	speed := baseSpeed
	for _, ef := range e.effects {
		speed *= ef.Multiplier
	}
	return speed
}

// Items returns a copy of the live items.
func (e *Engine) Items() []Item {
	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}

// Positions returns the cells of the live items.
func (e *Engine) Positions() []core.Point {
	out := make([]core.Point, len(e.items))
	for i, it := range e.items {
		out[i] = it.Pos
	}
	return out
}

// First returns the earliest spawned live item.
func (e *Engine) First() (Item, bool) {
	if len(e.items) == 0 {
		return Item{}, false
	}
	return e.items[0], true
}

// ActiveEffects returns a copy of the unexpired effects as of the last update.
func (e *Engine) ActiveEffects() []ActiveEffect {
	out := make([]ActiveEffect, len(e.effects))
	copy(out, e.effects)
	return out
}

// Clear removes all items and effects. The golden counter survives.
func (e *Engine) Clear() {
	e.items = e.items[:0]
	e.effects = e.effects[:0]
}

// Reset clears the board and the golden counter.
func (e *Engine) Reset() {
	e.Clear()
	e.normalSinceGolden = 0
}
