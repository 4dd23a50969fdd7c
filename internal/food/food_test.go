package food

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

var testGrid = core.Grid{Width: 800, Height: 600, CellSize: 20}

func newTestEngine(t *testing.T, cfg config.FoodConfig, seed int64) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, testGrid, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return e
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewEngineRejectsUnknownKind(t *testing.T) {
	cfg := config.Default().Food
	cfg.Kinds = append(cfg.Kinds, config.FoodKindConfig{Name: "mushroom", Weight: 1})
	if _, err := NewEngine(cfg, testGrid, rand.New(rand.NewSource(1))); err == nil {
		t.Error("unknown kind should fail")
	}

	cfg = config.Default().Food
	cfg.Kinds = cfg.Kinds[1:] // drop normal
	if _, err := NewEngine(cfg, testGrid, rand.New(rand.NewSource(1))); err == nil {
		t.Error("missing normal kind should fail")
	}
}

func TestGoldenForcedAfterNormalRun(t *testing.T) {
	cfg := config.Default().Food
	for i := range cfg.Kinds {
		if cfg.Kinds[i].Name != "normal" && cfg.Kinds[i].Name != "golden" {
			cfg.Kinds[i].Weight = 0
		}
	}
	e := newTestEngine(t, cfg, 7)

	expected := []Kind{Normal, Normal, Normal, Normal, Normal, Golden, Normal, Normal, Normal, Normal, Normal, Golden}
	for i, want := range expected {
		if got := e.DetermineType(); got != want {
			t.Fatalf("draw %d: DetermineType() = %v, expected %v", i, got, want)
		}
	}
}

func TestGoldenIntervalWithMixedDraws(t *testing.T) {
	e := newTestEngine(t, config.Default().Food, 42)

	normals := 0
	goldens := 0
	for i := 0; i < 5000; i++ {
		k := e.DetermineType()
		switch k {
		case Golden:
			if normals < 5 || normals > 8 {
				t.Fatalf("draw %d: golden after %d normals, expected 5..8", i, normals)
			}
			normals = 0
			goldens++
		case Normal:
			normals++
			if normals > 8 {
				t.Fatalf("draw %d: %d normals without golden", i, normals)
			}
		}
	}
	if goldens == 0 {
		t.Error("expected at least one golden in 5000 draws")
	}
}

func TestWeightedDrawUsesAllKinds(t *testing.T) {
	e := newTestEngine(t, config.Default().Food, 3)
	seen := make(map[Kind]int)
	for i := 0; i < 5000; i++ {
		seen[e.DetermineType()]++
	}
	for _, k := range []Kind{Normal, Golden, Bomb, SpeedBoost, SlowTime} {
		if seen[k] == 0 {
			t.Errorf("kind %v never drawn", k)
		}
	}
	if seen[Normal] < seen[Bomb] {
		t.Errorf("normal (%d) should dominate bomb (%d)", seen[Normal], seen[Bomb])
	}
}

func TestSpawnRespectsMaxAndExclusion(t *testing.T) {
	e := newTestEngine(t, config.Default().Food, 11)
	excluded := core.NewPointSet([]core.Point{{X: 1, Y: 1}, {X: 2, Y: 2}})

	got := e.SpawnMultiple(excluded, 5)
	if len(got) != 3 {
		t.Fatalf("SpawnMultiple spawned %d items, expected max 3", len(got))
	}
	if _, ok := e.Spawn(excluded); ok {
		t.Error("Spawn should refuse once the board is full")
	}

	seen := make(core.PointSet)
	for _, it := range e.Items() {
		if excluded.Has(it.Pos) {
			t.Errorf("item spawned on excluded cell %v", it.Pos)
		}
		if seen.Has(it.Pos) {
			t.Errorf("two items share cell %v", it.Pos)
		}
		if !testGrid.InBounds(it.Pos) {
			t.Errorf("item out of bounds at %v", it.Pos)
		}
		seen.Add(it.Pos)
	}
}

func TestSpawnStarvationFallsBack(t *testing.T) {
	tiny := core.Grid{Width: 40, Height: 40, CellSize: 20}
	e, err := NewEngine(config.Default().Food, tiny, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	all := core.NewPointSet([]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}})

	pos, ok := e.Spawn(all)
	if !ok {
		t.Fatal("Spawn on a full board should still place an item")
	}
	if !all.Has(pos) {
		t.Errorf("fallback position %v should be one of the occupied cells", pos)
	}
}

func TestConsumeMatchesDescriptor(t *testing.T) {
	e := newTestEngine(t, config.Default().Food, 9)

	for i := 0; i < 50; i++ {
		pos, ok := e.Spawn(nil)
		if !ok {
			t.Fatalf("spawn %d refused", i)
		}
		item, hit := e.CheckCollision(pos)
		if !hit {
			t.Fatalf("CheckCollision(%v) missed the spawned item", pos)
		}
		got := e.Consume(item)
		want, _ := e.Descriptor(item.Kind)
		if got.Score != want.Score || got.Growth != want.Growth || got.Kind != item.Kind {
			t.Errorf("Consume(%v) = %+v, expected descriptor %+v", item.Kind, got, want)
		}
		if (got.Effect == nil) != (want.Effect == nil) {
			t.Errorf("Consume(%v) effect mismatch", item.Kind)
		}
		if len(e.Items()) != 0 {
			t.Fatalf("item not removed after consume")
		}
	}
}

func TestDefaultDescriptors(t *testing.T) {
	e := newTestEngine(t, config.Default().Food, 1)
	tests := []struct {
		kind          Kind
		score, growth int
		effect        string
	}{
		{Normal, 1, 1, ""},
		{Golden, 5, 2, ""},
		{Bomb, -2, -2, ""},
		{SpeedBoost, 2, 1, EffectSpeed},
		{SlowTime, 2, 1, EffectSlow},
	}
	for _, tc := range tests {
		d, ok := e.Descriptor(tc.kind)
		if !ok {
			t.Fatalf("no descriptor for %v", tc.kind)
		}
		if d.Score != tc.score || d.Growth != tc.growth {
			t.Errorf("%v: score/growth = %d/%d", tc.kind, d.Score, d.Growth)
		}
		if tc.effect == "" && d.Effect != nil {
			t.Errorf("%v should have no effect", tc.kind)
		}
		if tc.effect != "" && (d.Effect == nil || d.Effect.Type != tc.effect) {
			t.Errorf("%v effect = %+v, expected %s", tc.kind, d.Effect, tc.effect)
		}
	}
}

func TestEffectsCompoundAndExpire(t *testing.T) {
	e := newTestEngine(t, config.Default().Food, 1)
	speedUp, _ := e.Descriptor(SpeedBoost)
	slow, _ := e.Descriptor(SlowTime)
	base := 150.0

	current := e.ApplyEffect(speedUp.Effect, base, 0)
	if !approx(current, base*1.3) {
		t.Errorf("ApplyEffect speed = %v, expected %v", current, base*1.3)
	}
	current = e.ApplyEffect(slow.Effect, current, time.Second)
	if !approx(current, base*1.3*0.5) {
		t.Errorf("ApplyEffect slow = %v, expected %v", current, base*1.3*0.5)
	}

	tests := []struct {
		now      time.Duration
		expected float64
		active   int
	}{
		{2 * time.Second, base * 1.3 * 0.5, 2},
		{4 * time.Second, base * 1.3, 1}, // slow expires at exactly 1s+3s
		{4999 * time.Millisecond, base * 1.3, 1},
		{5 * time.Second, base, 0},
	}
	for _, tc := range tests {
		got := e.UpdateEffects(base, tc.now)
		if !approx(got, tc.expected) {
			t.Errorf("UpdateEffects(%v) = %v, expected %v", tc.now, got, tc.expected)
		}
		if n := len(e.ActiveEffects()); n != tc.active {
			t.Errorf("at %v: %d active effects, expected %d", tc.now, n, tc.active)
		}
	}

	if got := e.ApplyEffect(nil, 80, 0); got != 80 {
		t.Errorf("ApplyEffect(nil) = %v, expected unchanged 80", got)
	}
}

func TestClearAndReset(t *testing.T) {
	e := newTestEngine(t, config.Default().Food, 2)
	e.SpawnMultiple(nil, 3)
	slow, _ := e.Descriptor(SlowTime)
	e.ApplyEffect(slow.Effect, 100, 0)

	e.Clear()
	if len(e.Items()) != 0 || len(e.ActiveEffects()) != 0 {
		t.Error("Clear should drop items and effects")
	}
	if _, ok := e.First(); ok {
		t.Error("First() on empty board should report false")
	}
}

func TestPlace(t *testing.T) {
	e := newTestEngine(t, config.Default().Food, 3)
	p := core.Point{X: 4, Y: 4}

	if !e.Place(Golden, p) {
		t.Fatal("Place on an empty board should succeed")
	}
	if e.Place(Normal, p) {
		t.Error("Place on an occupied cell should fail")
	}
	item, ok := e.CheckCollision(p)
	if !ok || item.Kind != Golden {
		t.Errorf("CheckCollision(%v) = %v %v, expected golden", p, item, ok)
	}

	e.Place(Normal, core.Point{X: 5, Y: 4})
	e.Place(Normal, core.Point{X: 6, Y: 4})
	if e.Place(Normal, core.Point{X: 7, Y: 4}) {
		t.Error("Place beyond max items should fail")
	}
}
