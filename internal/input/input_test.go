package input

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		check func(Input) bool
	}{
		{"arrow up", "\x1b[A", func(in Input) bool { return in.Up && !in.Pause }},
		{"arrow left", "\x1b[D", func(in Input) bool { return in.Left }},
		{"wasd right", "d", func(in Input) bool { return in.Right }},
		{"lone escape pauses", "\x1b", func(in Input) bool { return in.Pause }},
		{"p pauses", "p", func(in Input) bool { return in.Pause }},
		{"space bombs", " ", func(in Input) bool { return in.Bomb }},
		{"enter", "\r", func(in Input) bool { return in.Enter }},
		{"answer", "3", func(in Input) bool { return in.Number == 3 }},
		{"no number", "x", func(in Input) bool { return in.Number == -1 }},
		{"ctrl-c quits", "\x03", func(in Input) bool { return in.Quit }},
		{"combination", "wd", func(in Input) bool { return in.Up && in.Right && !in.Left }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stream{}
			if in := s.parse([]byte(tt.bytes), time.Now()); !tt.check(in) {
				t.Errorf("parse(%q) = %+v", tt.bytes, in)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.parse([]byte("a"), now)

	if in := s.parse(nil, now.Add(holdDuration/2)); !in.Left {
		t.Error("key should still be held")
	}
	if in := s.parse(nil, now.Add(holdDuration)); in.Left {
		t.Error("key should be released")
	}
}

func TestEdgeKeysDoNotRepeat(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.parse([]byte(" "), now)
	if in := s.parse(nil, now.Add(time.Millisecond)); in.Bomb {
		t.Error("bomb must only fire on the frame it was pressed")
	}
}

func TestReset(t *testing.T) {
	s := &Stream{}
	now := time.Now()
	s.parse([]byte("w"), now)
	s.Reset()
	if in := s.parse(nil, now); in.Up {
		t.Error("reset should drop held keys")
	}
}
