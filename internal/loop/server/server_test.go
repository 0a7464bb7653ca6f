package server

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/quiz"
	"github.com/tomz197/skyquiz/internal/state"
)

const tick = 16 * time.Millisecond

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func newTestHub() (*Hub, *testClock) {
	clock := &testClock{t: time.Unix(1_700_000_000, 0)}
	h := NewHub(Options{
		Logger: log.New(io.Discard),
		Clock:  clock.now,
	})
	return h, clock
}

func TestRegisterPublishesFrame(t *testing.T) {
	h, _ := newTestHub()
	c := h.Register("ada")

	if c.Frame() != nil {
		t.Fatal("frame published before the first tick")
	}
	h.step(tick)

	f := c.Frame()
	if f == nil {
		t.Fatal("no frame after tick")
	}
	if f.State.Phase != state.PhaseReady || f.Sessions != 1 {
		t.Errorf("frame phase=%s sessions=%d", f.State.Phase, f.Sessions)
	}
	if h.Count() != 1 {
		t.Errorf("Count = %d", h.Count())
	}
}

func TestCommandsDriveSession(t *testing.T) {
	h, _ := newTestHub()
	c := h.Register("")
	h.step(tick)

	c.Send(Command{Kind: CmdStart})
	h.step(tick)
	if got := c.Frame().State.Phase; got != state.PhasePlaying {
		t.Fatalf("phase after start = %s", got)
	}
	if ev := <-c.Events; ev.Type != EventPhase || ev.Phase != state.PhasePlaying {
		t.Errorf("event = %+v", ev)
	}

	c.Send(Command{Kind: CmdTogglePause})
	h.step(tick)
	if got := c.Frame().State.Phase; got != state.PhasePaused {
		t.Errorf("phase after toggle = %s", got)
	}

	c.Send(Command{Kind: CmdResize, Width: 400, Height: 300})
	h.step(tick)
	if got := c.Frame().Area; got != (object.PlayArea{Width: 400, Height: 300}) {
		t.Errorf("area = %+v", got)
	}

	c.Send(Command{Kind: CmdReset})
	h.step(tick)
	if got := c.Frame().State.Phase; got != state.PhaseReady {
		t.Errorf("phase after reset = %s", got)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	h, _ := newTestHub()
	a := h.Register("a")
	b := h.Register("b")
	h.step(tick)

	a.Send(Command{Kind: CmdStart})
	h.step(tick)

	if a.Frame().State.Phase != state.PhasePlaying || b.Frame().State.Phase != state.PhaseReady {
		t.Errorf("phases a=%s b=%s", a.Frame().State.Phase, b.Frame().State.Phase)
	}
	if a.Frame().Sessions != 2 {
		t.Errorf("Sessions = %d", a.Frame().Sessions)
	}
}

func TestPromptTimesOut(t *testing.T) {
	h, clock := newTestHub()
	c := h.Register("")
	h.step(tick)

	s := h.sessions[c.ID]
	s.quiz.Ask(quiz.SourceShield, 0)
	h.step(tick)

	f := c.Frame()
	if f.Prompt == nil || f.Remaining != 15*time.Second {
		t.Fatalf("prompt=%v remaining=%v", f.Prompt, f.Remaining)
	}

	clock.t = clock.t.Add(15 * time.Second)
	h.step(tick)
	if c.Frame().Prompt != nil {
		t.Error("prompt should be cleared after its deadline")
	}
}

func TestUnregisterClosesEvents(t *testing.T) {
	h, _ := newTestHub()
	c := h.Register("")
	h.step(tick)

	h.Unregister(c.ID)
	h.step(tick)

	if _, ok := <-c.Events; ok {
		t.Error("events channel should be closed")
	}
	if h.Count() != 0 || len(h.sessions) != 0 {
		t.Errorf("count=%d sessions=%d", h.Count(), len(h.sessions))
	}
}

func TestShutdownNotifiesClients(t *testing.T) {
	h, _ := newTestHub()
	c := h.Register("")
	h.step(tick)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	go func() {
		for ev := range c.Events {
			if ev.Type == EventShutdown {
				h.Unregister(c.ID)
			}
		}
	}()

	h.Shutdown(2 * time.Second)
	cancel()
	<-done

	if h.Count() != 0 {
		t.Errorf("Count = %d after shutdown", h.Count())
	}
}

func TestSparksFadeAndFlash(t *testing.T) {
	fx := &sparks{}
	fx.EnemyDestroyed(100, 100, object.ClassLarge)
	fx.AvatarHit(true)

	if len(fx.particles) != object.ExplosionSize(object.ClassLarge) {
		t.Fatalf("particles = %d", len(fx.particles))
	}
	if fx.flash != deathFlash {
		t.Errorf("flash = %v", fx.flash)
	}

	fx.update(time.Second)
	if len(fx.particles) != 0 || fx.flash != 0 {
		t.Errorf("after 1s: particles=%d flash=%v", len(fx.particles), fx.flash)
	}
}
