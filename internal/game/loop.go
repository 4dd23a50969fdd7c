// Package game ties the snake, food, score, AI and level engines into one
// tick-driven match, and adapts that match to the terminal host.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snake-arena/internal/ai"
	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/food"
	"github.com/vovakirdan/snake-arena/internal/level"
	"github.com/vovakirdan/snake-arena/internal/score"
	"github.com/vovakirdan/snake-arena/internal/snake"
)

// Outcome is the result tag of one tick.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomePlayerDied
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerDied:
		return "died"
	case OutcomeVictory:
		return "victory"
	default:
		return "continue"
	}
}

// Cause records why a match ended.
type Cause string

const (
	CauseNone     Cause = ""
	CauseWall     Cause = "wall"
	CauseSelf     Cause = "self"
	CauseObstacle Cause = "obstacle"
	CauseEnemy    Cause = "enemy"
	CauseTimeUp   Cause = "time_up"
)

// spawnLane is how many cells ahead of the head must be free at spawn.
const spawnLane = 2

// Options selects the mode and starting point of a match.
type Options struct {
	Mode       string // one of config.ModeNames(); empty means endless
	StartLevel int    // 1..level.Count; 0 means 1
	Seed       int64
	Store      score.HighScoreStore // nil keeps the high score in memory
	Logger     *log.Logger          // nil discards
}

// Loop is one match. It is not safe for concurrent use; the host calls
// AdvanceTick from a single goroutine.
type Loop struct {
	cfg     config.Config
	mode    string
	modeCfg config.ModeConfig
	grid    core.Grid
	policy  snake.GrowthPolicy
	rng     *rand.Rand
	logger  *log.Logger
	matchID string
	started int

	levels *level.Manager
	level  *level.Contract
	player *snake.Snake
	enemy  *snake.Snake
	brain  *ai.Controller
	food   *food.Engine
	score  *score.Engine

	now       time.Duration
	moveTimer time.Duration
	speed     float64 // move interval in ms before active effects
	effective float64 // move interval in ms after active effects
	timeLeft  time.Duration
	ticks     uint64
	moves     uint64
	levelFood int
	cleared   int

	outcome Outcome
	cause   Cause
}

// NewLoop validates cfg and starts a match at the chosen level.
func NewLoop(cfg config.Config, opts Options) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode := opts.Mode
	if mode == "" {
		mode = config.ModeEndless
	}
	modeCfg, err := cfg.ModeSettings(mode)
	if err != nil {
		return nil, err
	}
	policy, err := snake.ParseGrowthPolicy(cfg.Snake.GrowthPolicy)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	grid := core.Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height, CellSize: cfg.Grid.CellSize}
	rng := rand.New(rand.NewSource(opts.Seed))

	foods, err := food.NewEngine(cfg.Food, grid, rng)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	start := opts.StartLevel
	if start == 0 {
		start = 1
	}
	levels := level.NewManager(level.Options{Boss: cfg.Boss})
	if err := levels.Set(start); err != nil {
		return nil, fmt.Errorf("game: start level %d: %w", start, err)
	}

	l := &Loop{
		cfg:     cfg,
		mode:    mode,
		modeCfg: modeCfg,
		grid:    grid,
		policy:  policy,
		rng:     rng,
		logger:  logger,
		matchID: uuid.NewString(),
		started: start,
		levels:  levels,
		food:    foods,
		score:   score.NewEngine(cfg.Score, opts.Store, logger),
	}
	if mode == config.ModeTimeAttack {
		l.timeLeft = cfg.TimeAttack.Duration()
	}
	l.loadLevel()
	return l, nil
}

// loadLevel builds the manager's current level and respawns everything on it.
// Score and combo carry over; speed, food and effects start fresh.
func (l *Loop) loadLevel() {
	l.level = l.levels.Current()

	playerHead := l.grid.Center()
	enemyHead := core.Point{X: l.grid.MaxX() / 4, Y: l.grid.MaxY() / 4}
	length := l.cfg.Snake.InitialLength
	reserved := core.NewPointSet(
		laneCells(playerHead, length),
		laneCells(enemyHead, length),
	)
	l.level.Initialize(l.rng, l.grid, reserved)

	blocked := core.NewPointSet(l.level.Obstacles(), l.level.PortalCells())
	playerHead = l.findLane(playerHead, length, blocked)

	opts := snake.Options{Policy: l.policy, MinLength: l.cfg.Snake.MinLength}
	l.player = snake.New(playerHead, core.DirRight, length, opts)

	l.enemy, l.brain = nil, nil
	if l.level.HasAI {
		opts.AI = true
		l.enemy = snake.New(enemyHead, core.DirRight, length, opts)
		l.brain = ai.New(l.cfg.AI, l.grid, l.rng)
	}

	l.food.Reset()
	l.speed = l.cfg.Speed.BaseMS / l.modeCfg.SpeedMultiplier / l.level.SpeedMultiplier
	l.effective = l.speed
	l.moveTimer = 0
	l.levelFood = 0
	l.food.SpawnMultiple(l.spawnExclusions(), l.cfg.Food.InitialSpawn)

	l.logger.Info("level start",
		"match", l.matchID,
		"level", l.level.Number,
		"name", l.level.Name,
		"speed_ms", l.speed,
		"ai", l.level.HasAI,
	)
}

// laneCells returns the body cells of a right-facing snake with the given
// head plus the cells it will enter first.
func laneCells(head core.Point, length int) []core.Point {
	cells := make([]core.Point, 0, length+spawnLane)
	for x := head.X - length + 1; x <= head.X+spawnLane; x++ {
		cells = append(cells, core.Point{X: x, Y: head.Y})
	}
	return cells
}

// findLane keeps head if its lane is clear, otherwise scans rows outward
// from it. Returns head unchanged when no row is clear.
func (l *Loop) findLane(head core.Point, length int, blocked core.PointSet) core.Point {
	clear := func(h core.Point) bool {
		for _, p := range laneCells(h, length) {
			if !l.grid.IsPositionValid(p, blocked) {
				return false
			}
		}
		return true
	}
	for r := 0; r < l.grid.MaxY(); r++ {
		for _, y := range []int{head.Y - r, head.Y + r} {
			candidate := core.Point{X: head.X, Y: y}
			if clear(candidate) {
				return candidate
			}
		}
	}
	return head
}

// spawnExclusions lists the cells food may not appear on.
func (l *Loop) spawnExclusions() core.PointSet {
	set := core.NewPointSet(l.player.Body(), l.level.Obstacles(), l.level.PortalCells())
	if l.enemy != nil && l.enemy.Alive() {
		set.Add(l.enemy.Body()...)
	}
	return set
}

// AdvanceTick runs one frame of delta simulated time. dir is the buffered
// steering intent, or core.DirNone. Once the match has ended every call is a
// no-op returning the final outcome.
func (l *Loop) AdvanceTick(delta time.Duration, dir core.Direction) Outcome {
	if l.outcome != OutcomeContinue {
		return l.outcome
	}
	l.ticks++
	l.now += delta

	if dir != core.DirNone {
		l.player.SetDirection(dir)
	}

	l.updateTimers(delta)
	if l.outcome != OutcomeContinue {
		return l.outcome
	}

	l.moveTimer += delta
	l.effective = l.food.UpdateEffects(l.speed, l.now)

	if l.brain != nil && l.enemy.Alive() {
		target, hasFood := l.food.First()
		l.brain.Update(delta, l.enemy, l.player, target.Pos, hasFood, l.level.ObstacleSet())
	}

	if l.moveTimer < msToDuration(l.effective) {
		return OutcomeContinue
	}
	elapsed := l.moveTimer
	l.moveTimer = 0
	l.moves++

	l.player.Advance()
	if l.enemy != nil {
		l.enemy.Advance()
	}
	l.checkCollisions()
	if l.outcome != OutcomeContinue {
		return l.outcome
	}
	l.updateLevelMechanics(elapsed)
	return l.outcome
}

// updateTimers counts down the time-attack clock and the level clock.
func (l *Loop) updateTimers(delta time.Duration) {
	if l.mode == config.ModeTimeAttack {
		l.timeLeft -= delta
		if l.timeLeft <= 0 {
			l.timeLeft = 0
			l.finish(OutcomePlayerDied, CauseTimeUp)
			return
		}
	}
	if l.level.UpdateTimer != nil {
		if left := l.level.UpdateTimer(delta); left <= 0 {
			bonus := l.score.AddLevelBonus(true)
			l.logger.Info("level survived", "level", l.level.Number, "bonus", bonus)
			l.advanceLevel()
		}
	}
}

// checkCollisions resolves one move in fixed priority: wall, self, obstacle,
// portal, opposing snake, food.
func (l *Loop) checkCollisions() {
	obstacles := l.level.ObstacleSet()

	switch {
	case l.player.WallCollision(l.grid):
		l.finish(OutcomePlayerDied, CauseWall)
		return
	case l.player.SelfCollision():
		l.finish(OutcomePlayerDied, CauseSelf)
		return
	case l.player.ObstacleCollision(obstacles):
		l.finish(OutcomePlayerDied, CauseObstacle)
		return
	}

	if l.level.CheckPortalCollision != nil {
		if target, ok := l.level.CheckPortalCollision(l.player.Head()); ok {
			l.player.Teleport(target)
			l.logger.Debug("teleport", "to", target)
		}
	}

	if l.enemy != nil && l.enemy.Alive() {
		if l.player.CollidesWith(l.enemy) {
			l.finish(OutcomePlayerDied, CauseEnemy)
			return
		}
		if l.enemy.CollidesWith(l.player) ||
			l.enemy.SelfCollision() ||
			l.enemy.WallCollision(l.grid) ||
			l.enemy.ObstacleCollision(obstacles) {
			l.enemy.Kill()
			l.score.AddBonus(l.cfg.Score.AIKillBonus)
			l.logger.Info("enemy down", "level", l.level.Number, "bonus", l.cfg.Score.AIKillBonus)
		}
	}

	if item, ok := l.food.CheckCollision(l.player.Head()); ok {
		l.eat(item)
	}
}

// eat applies a meal: score, growth, effect, speed ramp, goals, respawn.
func (l *Loop) eat(item food.Item) {
	meal := l.food.Consume(item)
	earned := l.score.AddFoodScore(meal.Score, l.now)

	switch {
	case meal.Growth > 0:
		l.player.Grow(meal.Growth)
	case meal.Growth < 0:
		l.player.Shrink(-meal.Growth)
	}
	if meal.Effect != nil {
		l.speed = l.food.ApplyEffect(meal.Effect, l.speed, l.now)
		l.logger.Debug("effect", "type", meal.Effect.Type, "multiplier", meal.Effect.Multiplier)
	}
	if l.modeCfg.SpeedIncrease && meal.Score > 0 {
		l.speed = max(l.cfg.Speed.MinMS, l.speed-l.cfg.Speed.IncreasePerFood)
	}
	if meal.Score > 0 {
		l.levelFood++
	}
	l.logger.Debug("eat",
		"kind", meal.Kind,
		"earned", earned,
		"score", l.score.Score(),
		"combo", l.score.Multiplier(),
		"length", l.player.Len(),
	)

	if l.mode == config.ModeTimeAttack && l.score.FoodEaten() >= l.cfg.TimeAttack.FoodTarget {
		l.score.AddLevelBonus(true)
		l.finish(OutcomeVictory, CauseNone)
		return
	}
	if target := l.cfg.Campaign.LevelFoodTarget; target > 0 && l.levelFood >= target {
		bonus := l.score.AddLevelBonus(true)
		l.logger.Info("level cleared", "level", l.level.Number, "bonus", bonus)
		l.advanceLevel()
		return
	}
	l.food.Spawn(l.spawnExclusions())
}

// updateLevelMechanics moves the level's dynamic obstacles after a move.
func (l *Loop) updateLevelMechanics(elapsed time.Duration) {
	if l.level.UpdateMovingObstacles != nil {
		l.level.UpdateMovingObstacles()
	}
	if l.level.UpdateBossObstacles != nil {
		l.level.UpdateBossObstacles(elapsed)
	}
}

// advanceLevel loads the next level, or wins the match after the last one.
func (l *Loop) advanceLevel() {
	l.cleared++
	if !l.levels.Next() {
		l.finish(OutcomeVictory, CauseNone)
		return
	}
	l.loadLevel()
}

func (l *Loop) finish(outcome Outcome, cause Cause) {
	l.outcome = outcome
	l.cause = cause
	if outcome == OutcomePlayerDied {
		l.player.Kill()
	}
	l.logger.Info("match over",
		"match", l.matchID,
		"outcome", outcome,
		"cause", cause,
		"level", l.level.Number,
		"score", l.score.Score(),
		"elapsed", l.now,
	)
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// MatchID identifies this match in logs and storage.
func (l *Loop) MatchID() string { return l.matchID }

// Mode returns the mode name.
func (l *Loop) Mode() string { return l.mode }

// Grid returns the play field.
func (l *Loop) Grid() core.Grid { return l.grid }

// Level returns the active level.
func (l *Loop) Level() *level.Contract { return l.level }

// Player returns the player snake.
func (l *Loop) Player() *snake.Snake { return l.player }

// Enemy returns the AI snake, or nil on levels without one.
func (l *Loop) Enemy() *snake.Snake { return l.enemy }

// Food returns the live food items.
func (l *Loop) Food() []food.Item { return l.food.Items() }

// Score returns the score engine.
func (l *Loop) Score() *score.Engine { return l.score }

// Outcome returns the current outcome.
func (l *Loop) Outcome() Outcome { return l.outcome }

// Cause returns why the match ended, if it has.
func (l *Loop) Cause() Cause { return l.cause }

// Elapsed returns the simulated time played.
func (l *Loop) Elapsed() time.Duration { return l.now }

// Speed returns the effective move interval.
func (l *Loop) Speed() time.Duration { return msToDuration(l.effective) }

// TimeLeft returns the most urgent running countdown: the time-attack clock
// or the level clock.
func (l *Loop) TimeLeft() (time.Duration, bool) {
	if l.mode == config.ModeTimeAttack {
		return l.timeLeft, true
	}
	return l.level.TimeRemaining()
}
