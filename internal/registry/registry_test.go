package registry

import (
	"testing"

	"github.com/vovakirdan/snake-arena/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "stub " + g.id }
func (stubGame) Reset(core.RuntimeConfig) {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen) {}
func (stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterKeepsOrder(t *testing.T) {
	reset()
	t.Cleanup(reset)

	for _, id := range []string{"zeta", "alpha", "mid"} {
		Register(id, "T "+id, func() Game { return stubGame{id} })
	}
	got := List()
	want := []string{"zeta", "alpha", "mid"}
	if len(got) != len(want) {
		t.Fatalf("List() has %d entries, expected %d", len(got), len(want))
	}
	for i, info := range got {
		if info.ID != want[i] || info.Title != "T "+want[i] {
			t.Errorf("List()[%d] = %+v", i, info)
		}
	}
}

func TestCreate(t *testing.T) {
	reset()
	t.Cleanup(reset)
	Register("endless", "Endless", func() Game { return stubGame{"endless"} })

	g, err := Create("endless")
	if err != nil || g.ID() != "endless" {
		t.Fatalf("Create = %v, %v", g, err)
	}
	if _, err := Create("nope"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
	if !Exists("endless") || Exists("nope") {
		t.Error("Exists mismatch")
	}
}

func TestRegisterPanics(t *testing.T) {
	reset()
	t.Cleanup(reset)
	Register("x", "X", func() Game { return stubGame{"x"} })

	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "x", func() Game { return stubGame{"x"} }},
		{"empty id", "", func() Game { return stubGame{} }},
		{"nil factory", "y", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			Register(tc.id, "", tc.f)
		})
	}
}
