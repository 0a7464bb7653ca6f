// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// holdDuration is how long a movement key counts as held after its last byte.
// Terminals only send repeats, never key-up, so this bridges the repeat gap.
const holdDuration = 120 * time.Millisecond

// Input is one frame's key state. Movement keys are held; the rest are
// edge-triggered and only true on the frame their byte arrived.
type Input struct {
	Left, Right, Up, Down bool

	Quit   bool
	Bomb   bool // space
	Pause  bool // p or a lone escape
	Enter  bool
	Reset  bool // r
	Number int  // 1-9 pressed this frame, -1 otherwise

	Pressed []byte
}

type keyState struct {
	left, right, up, down time.Time
}

// Stream delivers input bytes via a channel and tracks held keys.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Reset forgets held keys, e.g. when changing screens.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// ReadInput drains all available bytes without blocking.
func ReadInput(s *Stream) Input {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	return s.parse(buf, time.Now())
}

func (s *Stream) parse(buf []byte, now time.Time) Input {
	in := Input{Number: -1, Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			// CSI arrow: ESC [ A..D
			if i+2 < len(buf) && buf[i+1] == '[' {
				switch buf[i+2] {
				case 'A':
					s.state.up = now
				case 'B':
					s.state.down = now
				case 'C':
					s.state.right = now
				case 'D':
					s.state.left = now
				}
				i += 2
				continue
			}
			in.Pause = true
			continue
		}

		switch b {
		case 'q', 'Q', 0x03: // ctrl-c
			in.Quit = true
		case 'a', 'A':
			s.state.left = now
		case 'd', 'D':
			s.state.right = now
		case 'w', 'W':
			s.state.up = now
		case 's', 'S':
			s.state.down = now
		case ' ':
			in.Bomb = true
		case 'p', 'P':
			in.Pause = true
		case 'r', 'R':
			in.Reset = true
		case '\n', '\r':
			in.Enter = true
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			in.Number = int(b - '0')
		}
	}

	held := func(t time.Time) bool { return now.Sub(t) < holdDuration }
	in.Left = held(s.state.left)
	in.Right = held(s.state.right)
	in.Up = held(s.state.up)
	in.Down = held(s.state.down)
	return in
}
