// Package loop runs the simulation for one game session.
package loop

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyquiz/internal/audio"
	"github.com/tomz197/skyquiz/internal/collision"
	"github.com/tomz197/skyquiz/internal/loop/config"
	"github.com/tomz197/skyquiz/internal/manager"
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/quiz"
	"github.com/tomz197/skyquiz/internal/state"
)

//go:generate go tool mockgen -destination=mocks/mock_loop.go -package=mocks . Effects,Quiz

// Effects is the presentation collaborator (particles, screen shake).
type Effects interface {
	EnemyDestroyed(x, y float64, class object.SizeClass)
	EnemyDamaged()
	AvatarHit(fatal bool)
	BombDetonated()
}

// Quiz is the external quiz subsystem. Answers come back through
// Controller.ResolveQuiz.
type Quiz interface {
	Ask(source quiz.Source, score int)
}

// Options configures a Controller. Zero fields get defaults.
type Options struct {
	Area       object.PlayArea
	Effects    Effects
	Audio      audio.Port
	Quiz       Quiz
	HighScores state.HighScoreStore
	Logger     *log.Logger
	Rand       manager.RandFunc
	Difficulty manager.DifficultyTable
}

// Controller owns every population and the state store of one session.
// It is not safe for concurrent use: only the owning goroutine may call it.
type Controller struct {
	area   object.PlayArea
	store  *state.Store
	avatar *object.Avatar
	stars  *object.Starfield

	projectiles *manager.ProjectileManager
	enemies     *manager.EnemyManager
	pickups     *manager.PickupManager
	resolver    *collision.Resolver

	fx         Effects
	audio      audio.Port
	quiz       Quiz
	highScores state.HighScoreStore
	logger     *log.Logger
	rand       manager.RandFunc

	clock     time.Duration // play time since Start
	intent    object.Intent
	milestone int // index of the next score milestone

	quizQueue  []quiz.Source
	quizOpen   bool
	openSource quiz.Source

	unsubscribe []func()
	closed      bool
}

// New creates a controller in the ready phase and loads the saved high score.
func New(opts Options) *Controller {
	if opts.Area.Width <= 0 || opts.Area.Height <= 0 {
		opts.Area = object.PlayArea{Width: config.AreaWidth, Height: config.AreaHeight}
	}
	if opts.Effects == nil {
		opts.Effects = nopEffects{}
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.HighScores == nil {
		opts.HighScores = &state.MemoryStore{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Rand == nil {
		opts.Rand = defaultRand
	}

	c := &Controller{
		area:        opts.Area,
		store:       state.NewStore(state.Initial()),
		avatar:      object.NewAvatar(opts.Area),
		stars:       object.NewStarfield(opts.Area, config.StarCount),
		projectiles: manager.NewProjectileManager(opts.Area),
		enemies:     manager.NewEnemyManager(opts.Area, opts.Difficulty, opts.Rand),
		pickups:     manager.NewPickupManager(opts.Area, opts.Rand),
		resolver:    collision.NewResolver(opts.Area),
		fx:          opts.Effects,
		audio:       opts.Audio,
		quiz:        opts.Quiz,
		highScores:  opts.HighScores,
		logger:      opts.Logger,
		rand:        opts.Rand,
	}

	c.loadHighScore()
	c.unsubscribe = append(c.unsubscribe,
		c.store.Subscribe(c.persistHighScore),
		c.store.Subscribe(c.logPhase),
	)
	return c
}

func (c *Controller) loadHighScore() {
	score, err := c.highScores.Load()
	switch {
	case errors.Is(err, state.ErrNoHighScore):
		return
	case err != nil:
		c.logger.Warn("could not load high score", "err", err)
		return
	}
	c.store.Dispatch(state.WithHighScore(score))
}

func (c *Controller) persistHighScore(next, prev state.State) {
	if next.HighScore <= prev.HighScore {
		return
	}
	if err := c.highScores.Save(next.HighScore); err != nil {
		c.logger.Warn("could not save high score", "score", next.HighScore, "err", err)
	}
}

func (c *Controller) logPhase(next, prev state.State) {
	if next.Phase != prev.Phase {
		c.logger.Debug("phase changed", "from", prev.Phase, "to", next.Phase, "score", next.Score)
	}
}

// Start begins a new game from a clean slate. It is accepted only from the
// ready and game-over phases and reports whether a game started.
func (c *Controller) Start() bool {
	if c.closed {
		return false
	}
	switch c.store.State().Phase {
	case state.PhaseReady, state.PhaseGameOver:
	default:
		return false
	}
	c.clearWorld()
	c.store.Dispatch(state.Start)
	return true
}

// Reset returns to the ready phase from any phase.
func (c *Controller) Reset() {
	if c.closed {
		return
	}
	c.clearWorld()
	c.store.Dispatch(state.Reset)
}

func (c *Controller) clearWorld() {
	c.projectiles.Clear()
	c.enemies.Clear()
	c.pickups.Clear()
	c.avatar.Reset(c.area)
	c.clock = 0
	c.intent = object.Intent{}
	c.milestone = 0
	c.quizQueue = c.quizQueue[:0]
	c.quizOpen = false
}

// Pause suspends a running game. Reports whether the phase changed.
func (c *Controller) Pause() bool {
	if c.closed {
		return false
	}
	return c.transition(state.Pause)
}

// Resume continues a paused game. It is refused while a quiz is pending.
func (c *Controller) Resume() bool {
	if c.closed || c.QuizPending() {
		return false
	}
	return c.transition(state.Resume)
}

// TogglePause pauses a running game or resumes a paused one.
func (c *Controller) TogglePause() bool {
	switch c.store.State().Phase {
	case state.PhasePlaying:
		return c.Pause()
	case state.PhasePaused:
		return c.Resume()
	}
	return false
}

func (c *Controller) transition(a state.Action) bool {
	prev := c.store.State().Phase
	return c.store.Dispatch(a).Phase != prev
}

// SetIntent sets the movement input used by following ticks.
func (c *Controller) SetIntent(in object.Intent) {
	c.intent = in
}

// Tick advances the simulation by delta. It does nothing unless playing.
func (c *Controller) Tick(delta time.Duration) {
	if c.closed || c.store.State().Phase != state.PhasePlaying {
		return
	}
	c.clock += delta

	before := c.store.State()
	speed := 1.0
	if before.PowerUps.SpeedBoost {
		speed = config.SpeedBoostMultiplier
	}

	c.stars.Update(delta, c.area)
	c.avatar.Update(object.UpdateContext{Delta: delta, Area: c.area}, c.intent, speed)
	c.projectiles.Update(delta, c.clock, c.avatar.Muzzle(), before.PowerUps.ExtraBullets)
	c.enemies.Update(delta, c.clock, before.Score)
	c.pickups.Update(delta, c.clock)

	h := &hooks{c: c}
	c.resolver.ResolveAll(
		c.projectiles.Active(),
		c.enemies.Active(),
		c.avatar,
		c.enemies.Shots(),
		c.pickups.Active(),
		h, h,
	)

	c.cull()
	c.afterTick(before.Lives)
}

func (c *Controller) cull() {
	c.projectiles.Cull()
	c.enemies.Cull()
	c.pickups.Cull()
}

// afterTick runs the checks that depend on the tick's combined effects.
func (c *Controller) afterTick(prevLives int) {
	s := c.store.State()

	if s.PowerUps.SpeedBoost && c.clock >= s.PowerUps.SpeedBoostUntil {
		s = c.store.Dispatch(state.DeactivateSpeedBoost)
	}

	if s.Phase == state.PhaseGameOver {
		c.quizQueue = c.quizQueue[:0]
		c.quizOpen = false
		return
	}

	if prevLives > 0 && s.Lives == 0 && !s.HasUsedRevive {
		c.enqueueQuiz(quiz.SourceRevive)
	}

	milestones := config.ScoreMilestones
	for c.milestone < len(milestones) && s.Score >= milestones[c.milestone] {
		c.milestone++
		c.enqueueQuiz(quiz.SourceMilestone)
	}

	c.askNext()
}

// Bomb detonates one bomb charge, clearing every enemy and enemy shot.
// Reports false (and changes nothing) when not playing or out of bombs.
func (c *Controller) Bomb() bool {
	if c.closed {
		return false
	}
	s := c.store.State()
	if s.Phase != state.PhasePlaying || s.PowerUps.Bombs == 0 {
		return false
	}

	c.store.Dispatch(state.UseBomb)
	n := c.enemies.Detonate(func(e *object.Enemy) {
		c.store.Dispatch(state.IncrementScore(e.Class.Spec().Score))
		c.fx.EnemyDestroyed(e.X, e.Y, e.Class)
	})
	c.fx.BombDetonated()
	c.audio.PlayExplosion()
	c.enemies.Cull()

	c.logger.Debug("bomb detonated", "enemies", n)
	return true
}

// Resize changes the play area for every population. Sizes above
// config.MaxAreaWidth/MaxAreaHeight are clamped; non-positive or NaN sizes
// are ignored.
func (c *Controller) Resize(width, height float64) {
	if !(width > 0) || !(height > 0) {
		return
	}
	width = min(width, config.MaxAreaWidth)
	height = min(height, config.MaxAreaHeight)
	c.area = object.PlayArea{Width: width, Height: height}
	c.projectiles.SetArea(c.area)
	c.enemies.SetArea(c.area)
	c.pickups.SetArea(c.area)
	c.resolver.SetArea(c.area)
	c.avatar.Clamp(c.area)
}

// State returns the current game record.
func (c *Controller) State() state.State {
	return c.store.State()
}

// Area returns the current play area.
func (c *Controller) Area() object.PlayArea {
	return c.area
}

// Clock returns the play time since Start.
func (c *Controller) Clock() time.Duration {
	return c.clock
}

// Subscribe registers an observer on the state store.
func (c *Controller) Subscribe(fn state.Observer) (unsubscribe func()) {
	return c.store.Subscribe(fn)
}

// Close disposes every population and detaches all collaborators.
// Later calls are no-ops.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true

	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil
	c.store.Close()

	c.projectiles.Clear()
	c.enemies.Clear()
	c.pickups.Clear()
	c.intent = object.Intent{}
	c.quizQueue = nil
	c.quizOpen = false
	c.quiz = nil
	c.fx = nopEffects{}
	c.audio = audio.Nop{}
}

type nopEffects struct{}

func (nopEffects) EnemyDestroyed(float64, float64, object.SizeClass) {}
func (nopEffects) EnemyDamaged()                                     {}
func (nopEffects) AvatarHit(bool)                                    {}
func (nopEffects) BombDetonated()                                    {}
