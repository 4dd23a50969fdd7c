// Package registry maps mode IDs to session factories so the terminal host
// and the CLI can start any mode without importing the game package.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// Game is a playable session driven by a fixed-tick host.
// Implementations hold no terminal state: the host maps keys to an
// InputFrame, calls Step once per tick and draws through Render.
type Game interface {
	// ID is the mode name, also used as the score key.
	ID() string
	Title() string

	// Reset starts a fresh match sized to cfg. It is called once before
	// the first Step and again on restart.
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the host has already cleared.
	Render(dst *core.Screen)
	State() core.GameState
}

// Resizer is implemented by sessions that follow terminal resizes
// without restarting.
type Resizer interface {
	Resize(width, height int)
}

// Factory creates a new session.
type Factory func() Game

// Info describes a registered mode.
type Info struct {
	ID    string
	Title string
}

type entry struct {
	Info
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
	index   = map[string]int{}
)

// Register adds a mode. Modes are listed in registration order.
// It panics on an empty ID, a nil factory or a duplicate ID.
func Register(id, title string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an id and a factory")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := index[id]; dup {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	index[id] = len(entries)
	entries = append(entries, entry{Info: Info{ID: id, Title: title}, factory: f})
}

// List returns the registered modes in registration order.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Info, len(entries))
	for i, e := range entries {
		out[i] = e.Info
	}
	return out
}

// Create starts a new session for id.
func Create(id string) (Game, error) {
	mu.RLock()
	i, ok := index[id]
	var f Factory
	if ok {
		f = entries[i].factory
	}
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := index[id]
	return ok
}

// reset clears the registry. Tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	entries = nil
	index = map[string]int{}
}
