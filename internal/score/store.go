package score

import "sync"

// HighScoreStore persists the best score under a fixed key.
// A store with nothing saved yet reports 0.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// MemoryStore is an in-process HighScoreStore.
type MemoryStore struct {
	mu    sync.Mutex
	value int
	saves int
}

// NewMemoryStore returns a store seeded with an initial high score.
func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{value: initial}
}

// LoadHighScore implements HighScoreStore.
func (m *MemoryStore) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

// SaveHighScore implements HighScoreStore.
func (m *MemoryStore) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = score
	m.saves++
	return nil
}

// Saves returns how many times SaveHighScore was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

var _ HighScoreStore = (*MemoryStore)(nil)
