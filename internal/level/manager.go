package level

// Manager tracks the current level number of a match.
type Manager struct {
	current int
	opts    Options
}

// NewManager starts at level 1.
func NewManager(opts Options) *Manager {
	return &Manager{current: 1, opts: opts}
}

// Set jumps to level n. Out-of-range numbers leave the manager unchanged.
func (m *Manager) Set(n int) error {
	if n < 1 || n > Count {
		return ErrInvalidLevel
	}
	m.current = n
	return nil
}

// Next moves to the following level. Returns false on the last level.
func (m *Manager) Next() bool {
	if m.current >= Count {
		return false
	}
	m.current++
	return true
}

// Number returns the current level number.
func (m *Manager) Number() int { return m.current }

// Reset returns to level 1.
func (m *Manager) Reset() { m.current = 1 }

// Current returns a fresh contract for the current level.
func (m *Manager) Current() *Contract {
	c, _ := New(m.current, m.opts)
	return c
}
