package ws

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/tomz197/skyquiz/internal/loop"
	"github.com/tomz197/skyquiz/internal/loop/server"
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/physics"
	"github.com/tomz197/skyquiz/internal/quiz"
	"github.com/tomz197/skyquiz/internal/state"
)

func TestInboundCommand(t *testing.T) {
	tests := []struct {
		msg  Inbound
		want server.Command
		ok   bool
	}{
		{Inbound{Type: "start"}, server.Command{Kind: server.CmdStart}, true},
		{Inbound{Type: "pause"}, server.Command{Kind: server.CmdTogglePause}, true},
		{Inbound{Type: "bomb"}, server.Command{Kind: server.CmdBomb}, true},
		{Inbound{Type: "reset"}, server.Command{Kind: server.CmdReset}, true},
		{Inbound{Type: "answer", Choice: 2}, server.Command{Kind: server.CmdAnswer, Choice: 2}, true},
		{Inbound{Type: "intent", Left: true, Up: true}, server.Command{Kind: server.CmdIntent, Intent: object.Intent{Left: true, Up: true}}, true},
		{Inbound{Type: "resize", Width: 640, Height: 480}, server.Command{Kind: server.CmdResize, Width: 640, Height: 480}, true},
		{Inbound{Type: "resize"}, server.Command{}, false},
		{Inbound{Type: "fly"}, server.Command{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.msg.Type, func(t *testing.T) {
			got, ok := tt.msg.Command()
			if ok != tt.ok || got.Kind != tt.want.Kind || got.Choice != tt.want.Choice ||
				got.Width != tt.want.Width || got.Height != tt.want.Height ||
				got.Intent.Left != tt.want.Intent.Left || got.Intent.Up != tt.want.Intent.Up {
				t.Errorf("Command() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestInboundPointerTarget(t *testing.T) {
	cmd, ok := Inbound{Type: "intent", Target: &[2]float64{120, 80}}.Command()
	if !ok || cmd.Intent.Target == nil {
		t.Fatalf("Command() = %+v, %v", cmd, ok)
	}
	if *cmd.Intent.Target != (physics.Point{X: 120, Y: 80}) {
		t.Errorf("target = %+v", *cmd.Intent.Target)
	}
}

func TestNewView(t *testing.T) {
	s := state.Initial()
	s.Phase = state.PhasePaused
	s.Score = 420
	s.PowerUps.ExtraBullets = 2
	s.PowerUps.SpeedBoost = true
	s.PowerUps.SpeedBoostUntil = 5 * time.Second

	f := &server.Frame{
		Snapshot: loop.Snapshot{
			State: s,
			Area:  object.PlayArea{Width: 800, Height: 600},
			Clock: 2 * time.Second,
			Sprites: []object.Sprite{
				{Kind: object.KindEnemy, X: 10, Y: 20, W: 30, H: 30, Class: object.ClassLarge, Health: 0.5},
				{Kind: object.KindPickup, X: 50, Y: 60, W: 12, H: 12, Reward: object.RewardBomb},
			},
			Stars: []object.Star{{X: 1, Y: 2}},
		},
		Sparks:    []server.Spark{{X: 3, Y: 4, Symbol: '*', Fade: 0.5}},
		Prompt:    &quiz.Prompt{Source: quiz.SourceRevive, Question: quiz.Question{Text: "?", Options: []string{"a", "b"}}},
		Remaining: 4 * time.Second,
	}

	v := NewView(f)
	if v.Phase != "paused" || v.Score != 420 || v.Guns != 3 {
		t.Errorf("header = %+v", v)
	}
	if v.Boost != 3 {
		t.Errorf("boost = %v, want 3", v.Boost)
	}
	if len(v.Sprites) != 2 || v.Sprites[0].Kind != "enemy" || v.Sprites[0].Tag != object.ClassLarge.String() || v.Sprites[0].Health != 0.5 {
		t.Errorf("enemy = %+v", v.Sprites)
	}
	if v.Sprites[1].Kind != "pickup" || v.Sprites[1].Tag != object.RewardBomb.String() {
		t.Errorf("pickup = %+v", v.Sprites[1])
	}
	if v.Sparks[0].Symbol != "*" || v.Stars[0] != [2]float64{1, 2} {
		t.Errorf("sparks=%+v stars=%+v", v.Sparks, v.Stars)
	}
	if v.Prompt == nil || v.Prompt.Source != "revive" || v.Prompt.Remaining != 4 || v.Prompt.Limit != quiz.SourceRevive.TimeLimit().Seconds() {
		t.Errorf("prompt = %+v", v.Prompt)
	}
}

func startServer(t *testing.T) (*server.Hub, string) {
	t.Helper()
	hub := server.NewHub(server.Options{Logger: log.New(io.Discard)})
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(NewHandler(hub,
		WithLogger(log.New(io.Discard)),
		WithFrameInterval(5*time.Millisecond),
	))
	t.Cleanup(srv.Close)
	t.Cleanup(cancel)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func readUntil(ctx context.Context, t *testing.T, conn *websocket.Conn, match func(Outbound) bool) Outbound {
	t.Helper()
	for {
		var msg Outbound
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if match(msg) {
			return msg
		}
	}
}

func inPhase(phase string) func(Outbound) bool {
	return func(m Outbound) bool { return m.Type == "frame" && m.Frame.Phase == phase }
}

func TestHandlerPlaysSession(t *testing.T) {
	hub, url := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url+"?name=ada", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	first := readUntil(ctx, t, conn, inPhase("ready"))
	if first.Frame.Lives == 0 || first.Frame.Width == 0 {
		t.Errorf("first frame = %+v", first.Frame)
	}

	if err := wsjson.Write(ctx, conn, Inbound{Type: "start"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	readUntil(ctx, t, conn, inPhase("playing"))

	if err := wsjson.Write(ctx, conn, Inbound{Type: "pause"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	readUntil(ctx, t, conn, inPhase("paused"))

	conn.Close(websocket.StatusNormalClosure, "")
	for hub.Count() != 0 {
		select {
		case <-ctx.Done():
			t.Fatal("session not unregistered after close")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestHandlerForwardsShutdown(t *testing.T) {
	hub, url := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()
	readUntil(ctx, t, conn, inPhase("ready"))

	go hub.Shutdown(2 * time.Second)
	readUntil(ctx, t, conn, func(m Outbound) bool { return m.Type == "shutdown" })

	var msg Outbound
	err = wsjson.Read(ctx, conn, &msg)
	if got := websocket.CloseStatus(err); got != websocket.StatusGoingAway {
		t.Errorf("close status = %v (err %v), want going away", got, err)
	}
}
