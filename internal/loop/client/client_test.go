package client

import (
	"reflect"
	"testing"

	"github.com/tomz197/skyquiz/internal/input"
	"github.com/tomz197/skyquiz/internal/loop"
	"github.com/tomz197/skyquiz/internal/loop/config"
	"github.com/tomz197/skyquiz/internal/loop/server"
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/quiz"
	"github.com/tomz197/skyquiz/internal/state"
)

func frameIn(phase state.Phase) *server.Frame {
	s := state.Initial()
	s.Phase = phase
	return &server.Frame{Snapshot: loop.Snapshot{State: s}}
}

func withPrompt(f *server.Frame) *server.Frame {
	f.Prompt = &quiz.Prompt{
		Source:   quiz.SourceShield,
		Question: quiz.Question{Text: "2+2?", Options: []string{"3", "4", "5"}, Answer: 1},
	}
	return f
}

func TestCommandsFor(t *testing.T) {
	none := input.Input{Number: -1}
	cmd := func(k server.CommandKind) server.Command { return server.Command{Kind: k} }

	tests := []struct {
		name  string
		in    input.Input
		frame *server.Frame
		want  []server.Command
	}{
		{"no frame yet, enter starts", input.Input{Enter: true, Number: -1}, nil, []server.Command{cmd(server.CmdStart)}},
		{"ready idle", none, frameIn(state.PhaseReady), nil},
		{"space starts from ready", input.Input{Bomb: true, Number: -1}, frameIn(state.PhaseReady), []server.Command{cmd(server.CmdStart)}},
		{"bomb while playing", input.Input{Bomb: true, Number: -1}, frameIn(state.PhasePlaying), []server.Command{cmd(server.CmdBomb)}},
		{"pause while playing", input.Input{Pause: true, Number: -1}, frameIn(state.PhasePlaying), []server.Command{cmd(server.CmdTogglePause)}},
		{"resume from pause", input.Input{Pause: true, Number: -1}, frameIn(state.PhasePaused), []server.Command{cmd(server.CmdTogglePause)}},
		{"reset from pause", input.Input{Reset: true, Number: -1}, frameIn(state.PhasePaused), []server.Command{cmd(server.CmdReset)}},
		{"restart after game over", input.Input{Enter: true, Number: -1}, frameIn(state.PhaseGameOver), []server.Command{cmd(server.CmdStart)}},
		{"title after game over", input.Input{Reset: true, Number: -1}, frameIn(state.PhaseGameOver), []server.Command{cmd(server.CmdReset)}},
		{"answer picks zero-based option", input.Input{Number: 2}, withPrompt(frameIn(state.PhasePaused)),
			[]server.Command{{Kind: server.CmdAnswer, Choice: 1}}},
		{"out of range answer ignored", input.Input{Number: 4}, withPrompt(frameIn(state.PhasePaused)), nil},
		{"pause ignored during quiz", input.Input{Pause: true, Number: -1}, withPrompt(frameIn(state.PhasePaused)), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := commandsFor(tt.in, tt.frame, object.Intent{})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("commandsFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCommandsForSendsIntentOnChange(t *testing.T) {
	playing := frameIn(state.PhasePlaying)
	left := input.Input{Left: true, Number: -1}

	cmds, intent := commandsFor(left, playing, object.Intent{})
	want := []server.Command{{Kind: server.CmdIntent, Intent: object.Intent{Left: true}}}
	if !reflect.DeepEqual(cmds, want) {
		t.Fatalf("first press = %+v", cmds)
	}

	cmds, intent = commandsFor(left, playing, intent)
	if len(cmds) != 0 {
		t.Errorf("held key resent intent: %+v", cmds)
	}

	// Leaving play drops any held movement.
	cmds, intent = commandsFor(left, frameIn(state.PhasePaused), intent)
	want = []server.Command{{Kind: server.CmdIntent, Intent: object.Intent{}}}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("paused = %+v", cmds)
	}
	if intent != (object.Intent{}) {
		t.Errorf("intent = %+v, want zero", intent)
	}
}

func TestScreenFor(t *testing.T) {
	tests := []struct {
		name         string
		frame        *server.Frame
		shuttingDown bool
		inactive     bool
		want         screen
	}{
		{"no frame", nil, false, false, screenTitle},
		{"ready", frameIn(state.PhaseReady), false, false, screenTitle},
		{"playing", frameIn(state.PhasePlaying), false, false, screenPlaying},
		{"paused", frameIn(state.PhasePaused), false, false, screenPaused},
		{"quiz over pause", withPrompt(frameIn(state.PhasePaused)), false, false, screenQuiz},
		{"game over", frameIn(state.PhaseGameOver), false, false, screenGameOver},
		{"inactive wins over play", frameIn(state.PhasePlaying), false, true, screenInactive},
		{"shutdown wins over all", withPrompt(frameIn(state.PhasePaused)), true, true, screenShutdown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := screenFor(tt.frame, tt.shuttingDown, tt.inactive); got != tt.want {
				t.Errorf("screenFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClampTermSize(t *testing.T) {
	w, h, col, row := clampTermSize(80, 24)
	if w != 80 || h != 24 || col != 0 || row != 0 {
		t.Errorf("small terminal = %d,%d,%d,%d", w, h, col, row)
	}

	w, h, col, row = clampTermSize(config.MaxTermWidth+40, config.MaxTermHeight+10)
	if w != config.MaxTermWidth || h != config.MaxTermHeight {
		t.Errorf("render size = %dx%d", w, h)
	}
	if col != 20 || row != 5 {
		t.Errorf("offset = %d,%d, want 20,5", col, row)
	}
}
