package server

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyquiz/internal/loop"
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/quiz"
	"github.com/tomz197/skyquiz/internal/state"
)

// Explosion tuning for the terminal renderer.
const (
	sparkSpeed    = 120.0 // px/s
	sparkLifetime = 0.6   // seconds
	hitFlash      = 250 * time.Millisecond
	deathFlash    = 600 * time.Millisecond
	bombFlash     = 400 * time.Millisecond
)

// sparks is the presentation side of one session: explosion particles and
// a screen flash.
type sparks struct {
	particles []*object.Particle
	flash     time.Duration
}

var _ loop.Effects = (*sparks)(nil)

func (s *sparks) add(p *object.Particle) {
	s.particles = append(s.particles, p)
}

func (s *sparks) EnemyDestroyed(x, y float64, class object.SizeClass) {
	object.SpawnExplosion(x, y, object.ExplosionSize(class), sparkSpeed, sparkLifetime, s.add)
}

// EnemyDamaged has no particle effect; the health bar shows it.
func (s *sparks) EnemyDamaged() {}

func (s *sparks) AvatarHit(fatal bool) {
	if fatal {
		s.flash = max(s.flash, deathFlash)
	} else {
		s.flash = max(s.flash, hitFlash)
	}
}

func (s *sparks) BombDetonated() {
	s.flash = max(s.flash, bombFlash)
}

func (s *sparks) update(delta time.Duration) {
	s.flash = max(s.flash-delta, 0)

	kept := s.particles[:0]
	for _, p := range s.particles {
		if p.Update(delta) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(s.particles[len(kept):])
	s.particles = kept
}

func (s *sparks) snapshot() []Spark {
	out := make([]Spark, 0, len(s.particles))
	for _, p := range s.particles {
		if !p.Visible() {
			continue
		}
		fade := 1.0
		if p.MaxLifetime > 0 {
			fade = p.Lifetime / p.MaxLifetime
		}
		out = append(out, Spark{X: p.X, Y: p.Y, Symbol: p.Symbol, Fade: fade})
	}
	return out
}

func (s *sparks) release() {
	for _, p := range s.particles {
		p.Release()
	}
	s.particles = nil
}

// session is one player's game. Only the hub's Run goroutine touches it.
type session struct {
	handle *Handle
	ctrl   *loop.Controller
	quiz   *quiz.Master
	fx     *sparks
	logger *log.Logger
	unsub  func()
}

func newSession(h *Handle, opts Options) *session {
	logger := opts.Logger.With("session", h.ID.String()[:8])
	if h.Name != "" {
		logger = logger.With("user", h.Name)
	}

	fx := &sparks{}
	master := quiz.NewMaster(opts.Bank, quiz.WithClock(opts.Clock), quiz.WithLogger(logger))
	ctrl := loop.New(loop.Options{
		Area:       opts.Area,
		Effects:    fx,
		Audio:      opts.Audio(),
		Quiz:       master,
		HighScores: opts.HighScores,
		Logger:     logger,
	})

	s := &session{handle: h, ctrl: ctrl, quiz: master, fx: fx, logger: logger}
	s.unsub = ctrl.Subscribe(func(next, prev state.State) {
		if next.Phase == prev.Phase {
			return
		}
		select {
		case h.Events <- Event{Type: EventPhase, Phase: next.Phase, Score: next.Score}:
		default:
		}
	})
	return s
}

func (s *session) apply(cmd Command) {
	switch cmd.Kind {
	case CmdIntent:
		s.ctrl.SetIntent(cmd.Intent)
	case CmdStart:
		if s.ctrl.Start() {
			s.quiz.Cancel()
		}
	case CmdTogglePause:
		s.ctrl.TogglePause()
	case CmdBomb:
		s.ctrl.Bomb()
	case CmdAnswer:
		if out, ok := s.quiz.Answer(cmd.Choice); ok {
			s.logger.Debug("quiz answered", "source", out.Source, "correct", out.Correct)
			s.ctrl.ResolveQuiz(out)
		}
	case CmdReset:
		s.quiz.Cancel()
		s.ctrl.Reset()
	case CmdResize:
		s.ctrl.Resize(cmd.Width, cmd.Height)
	}
}

// step times out the open question, then advances the simulation.
func (s *session) step(delta time.Duration, now time.Time) {
	if out, ok := s.quiz.Poll(now); ok {
		s.logger.Debug("quiz timed out", "source", out.Source)
		s.ctrl.ResolveQuiz(out)
	}
	s.ctrl.Tick(delta)
	s.fx.update(delta)
}

func (s *session) publish(now time.Time, sessions int) {
	f := &Frame{
		Snapshot: s.ctrl.Snapshot(),
		Sparks:   s.fx.snapshot(),
		Flash:    s.fx.flash,
		Sessions: sessions,
	}
	if p, ok := s.quiz.Pending(); ok {
		f.Prompt = &p
		f.Remaining = max(p.Deadline.Sub(now), 0)
	}
	s.handle.frame.Store(f)
}

func (s *session) close() {
	s.unsub()
	s.quiz.Cancel()
	s.ctrl.Close()
	s.fx.release()
}
