package storage

import "github.com/vovakirdan/snake-arena/internal/score"

// HighScoreKV stores a high score under a fixed key in the kv table.
type HighScoreKV struct {
	store *Store
	key   string
}

var _ score.HighScoreStore = (*HighScoreKV)(nil)

// HighScoreStore returns a score.HighScoreStore backed by key.
func (s *Store) HighScoreStore(key string) *HighScoreKV {
	return &HighScoreKV{store: s, key: key}
}

// LoadHighScore implements score.HighScoreStore.
func (h *HighScoreKV) LoadHighScore() (int, error) {
	return h.store.GetInt(h.key)
}

// SaveHighScore implements score.HighScoreStore.
func (h *HighScoreKV) SaveHighScore(v int) error {
	return h.store.SetInt(h.key, v)
}
