package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/score"
)

// SessionOptions configures sessions created through the registry.
type SessionOptions struct {
	Config     *config.Config       // nil uses config.Default()
	Store      score.HighScoreStore // nil keeps the high score in memory
	Logger     *log.Logger
	StartLevel int
	Saver      ResultSaver // records each finished match once; may be nil
}

// ResultSaver persists finished matches.
type ResultSaver interface {
	SaveMatchResult(r Result) error
}

var (
	defaultsMu sync.RWMutex
	defaults   SessionOptions
)

// SetDefaults sets the options used by registry-created sessions.
func SetDefaults(opts SessionOptions) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = opts
}

// Defaults returns the options set by SetDefaults.
func Defaults() SessionOptions {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

func init() {
	for _, mode := range config.ModeNames() {
		registry.Register(mode, config.ModeTitle(mode), func() registry.Game {
			return NewSession(mode, Defaults())
		})
	}
}

// Session adapts a Loop to the fixed-tick host: it converts ticks to
// simulated time, handles pause and restart, and renders the board.
type Session struct {
	mode  string
	opts  SessionOptions
	loop  *Loop
	err   error
	seeds *rand.Rand
	frame time.Duration

	screenW  int
	screenH  int
	paused   bool
	reported bool
}

var (
	_ registry.Game    = (*Session)(nil)
	_ registry.Resizer = (*Session)(nil)
)

// NewSession creates a session for mode. Call Reset before stepping.
func NewSession(mode string, opts SessionOptions) *Session {
	return &Session{mode: mode, opts: opts}
}

// ID returns the mode name.
func (s *Session) ID() string { return s.mode }

// Title returns the display name.
func (s *Session) Title() string { return "Snake: " + config.ModeTitle(s.mode) }

// Reset starts a new match.
func (s *Session) Reset(rt core.RuntimeConfig) {
	s.seeds = rand.New(rand.NewSource(rt.Seed))
	s.screenW, s.screenH = rt.ScreenW, rt.ScreenH
	rate := rt.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	s.frame = time.Second / time.Duration(rate)
	s.start(rt.Seed)
}

func (s *Session) start(seed int64) {
	cfg := config.Default()
	if s.opts.Config != nil {
		cfg = *s.opts.Config
	}
	s.loop, s.err = NewLoop(cfg, Options{
		Mode:       s.mode,
		StartLevel: s.opts.StartLevel,
		Seed:       seed,
		Store:      s.opts.Store,
		Logger:     s.opts.Logger,
	})
	if s.err != nil && s.opts.Logger != nil {
		s.opts.Logger.Error("start match", "mode", s.mode, "err", s.err)
	}
	s.paused = false
	s.reported = false
}

// Resize records the terminal size. Play pauses while the board does not fit.
func (s *Session) Resize(w, h int) {
	s.screenW, s.screenH = w, h
}

func (s *Session) fits() bool {
	if s.loop == nil {
		return true
	}
	w, h := boardSize(s.loop.Grid())
	return s.screenW >= w && s.screenH >= h
}

func (s *Session) finished() bool {
	return s.loop == nil || s.loop.Outcome() != OutcomeContinue
}

// Step advances the match by one host tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.loop == nil {
		return core.StepResult{State: s.State()}
	}
	if in.Has(core.ActionRestart) && s.finished() {
		s.start(s.seeds.Int63())
		return core.StepResult{State: s.State()}
	}
	if in.Has(core.ActionPause) && !s.finished() {
		s.paused = !s.paused
	}
	if s.paused || !s.fits() || s.finished() {
		return core.StepResult{State: s.State()}
	}

	if s.loop.AdvanceTick(s.frame, in.Direction()) != OutcomeContinue && !s.reported {
		s.reported = true
		s.save(s.loop.Result())
	}
	return core.StepResult{State: s.State()}
}

func (s *Session) save(r Result) {
	if s.opts.Saver == nil {
		return
	}
	if err := s.opts.Saver.SaveMatchResult(r); err != nil && s.opts.Logger != nil {
		s.opts.Logger.Warn("save match", "match", r.MatchID, "err", err)
	}
}

// State returns the host-facing state.
func (s *Session) State() core.GameState {
	if s.loop == nil {
		return core.GameState{GameOver: true, Cause: "error"}
	}
	snap := s.loop.Snapshot()
	return core.GameState{
		Score:     snap.Score,
		HighScore: snap.HighScore,
		Level:     snap.Level,
		GameOver:  snap.Outcome != OutcomeContinue,
		Victory:   snap.Outcome == OutcomeVictory,
		Paused:    s.paused,
		Cause:     string(snap.Cause),
	}
}

// Loop returns the running match, or nil if it failed to start.
func (s *Session) Loop() *Loop { return s.loop }

// Err returns the error that prevented the match from starting.
func (s *Session) Err() error { return s.err }
