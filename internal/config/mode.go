package config

import "fmt"

// Mode names accepted by ModeSettings.
const (
	ModeEndless    = "endless"
	ModeTimeAttack = "timeAttack"
	ModeHard       = "hard"
	ModeKids       = "kids"
)

// ModeNames returns the known modes in menu order.
func ModeNames() []string {
	return []string{ModeEndless, ModeTimeAttack, ModeHard, ModeKids}
}

// ModeTitle returns a display name for a mode.
func ModeTitle(mode string) string {
	switch mode {
	case ModeEndless:
		return "Endless"
	case ModeTimeAttack:
		return "Time Attack"
	case ModeHard:
		return "Hard"
	case ModeKids:
		return "Kids"
	default:
		return mode
	}
}

// ModeSettings returns the settings for a mode.
func (c Config) ModeSettings(mode string) (ModeConfig, error) {
	m, ok := c.Modes[mode]
	if !ok {
		return ModeConfig{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return m, nil
}
