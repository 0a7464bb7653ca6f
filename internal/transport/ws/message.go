package ws

import (
	"github.com/tomz197/skyquiz/internal/loop/server"
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/physics"
)

// Inbound is a message from the browser.
type Inbound struct {
	Type   string      `json:"type"` // intent, start, pause, bomb, answer, reset, resize
	Left   bool        `json:"left,omitempty"`
	Right  bool        `json:"right,omitempty"`
	Up     bool        `json:"up,omitempty"`
	Down   bool        `json:"down,omitempty"`
	Target *[2]float64 `json:"target,omitempty"` // pointer position in logical px
	Choice int         `json:"choice,omitempty"`
	Width  float64     `json:"width,omitempty"`
	Height float64     `json:"height,omitempty"`
}

// Command converts a message into a hub command. ok is false for unknown types.
func (m Inbound) Command() (cmd server.Command, ok bool) {
	switch m.Type {
	case "intent":
		in := object.Intent{Left: m.Left, Right: m.Right, Up: m.Up, Down: m.Down}
		if m.Target != nil {
			in.Target = &physics.Point{X: m.Target[0], Y: m.Target[1]}
		}
		return server.Command{Kind: server.CmdIntent, Intent: in}, true
	case "start":
		return server.Command{Kind: server.CmdStart}, true
	case "pause":
		return server.Command{Kind: server.CmdTogglePause}, true
	case "bomb":
		return server.Command{Kind: server.CmdBomb}, true
	case "answer":
		return server.Command{Kind: server.CmdAnswer, Choice: m.Choice}, true
	case "reset":
		return server.Command{Kind: server.CmdReset}, true
	case "resize":
		if m.Width <= 0 || m.Height <= 0 {
			return server.Command{}, false
		}
		return server.Command{Kind: server.CmdResize, Width: m.Width, Height: m.Height}, true
	}
	return server.Command{}, false
}

// Outbound is a message to the browser.
type Outbound struct {
	Type  string `json:"type"` // frame or shutdown
	Frame *View  `json:"frame,omitempty"`
}

// View is a frame flattened for JSON.
type View struct {
	Phase     string       `json:"phase"`
	Score     int          `json:"score"`
	Lives     int          `json:"lives"`
	Level     int          `json:"level"`
	HighScore int          `json:"highScore"`
	Bombs     int          `json:"bombs"`
	Guns      int          `json:"guns"`
	Shield    bool         `json:"shield"`
	Boost     float64      `json:"boost"` // seconds left
	Width     float64      `json:"width"`
	Height    float64      `json:"height"`
	Avatar    Box          `json:"avatar"`
	Sprites   []Box        `json:"sprites"`
	Stars     [][2]float64 `json:"stars"`
	Sparks    []Spark      `json:"sparks"`
	Prompt    *Prompt      `json:"prompt,omitempty"`
	Flash     bool         `json:"flash"`
	Sessions  int          `json:"sessions"`
}

// Box is a sprite's rectangle and what it is.
type Box struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Tag    string  `json:"tag,omitempty"` // size class or reward
	Health float64 `json:"health,omitempty"`
}

type Spark struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Symbol string  `json:"symbol"`
	Fade   float64 `json:"fade"`
}

type Prompt struct {
	Source    string   `json:"source"`
	Text      string   `json:"text"`
	Options   []string `json:"options"`
	Remaining float64  `json:"remaining"` // seconds
	Limit     float64  `json:"limit"`     // seconds
}

var kindNames = [...]string{
	object.KindAvatar:          "avatar",
	object.KindProjectile:      "shot",
	object.KindEnemyProjectile: "enemy-shot",
	object.KindEnemy:           "enemy",
	object.KindPickup:          "pickup",
}

func box(s object.Sprite) Box {
	b := Box{Kind: kindNames[s.Kind], X: s.X, Y: s.Y, W: s.W, H: s.H}
	switch s.Kind {
	case object.KindEnemy:
		b.Tag = s.Class.String()
		b.Health = s.Health
	case object.KindPickup:
		b.Tag = s.Reward.String()
	}
	return b
}

// NewView flattens a hub frame.
func NewView(f *server.Frame) *View {
	s := f.State
	v := &View{
		Phase:     s.Phase.String(),
		Score:     s.Score,
		Lives:     s.Lives,
		Level:     s.Level,
		HighScore: s.HighScore,
		Bombs:     s.PowerUps.Bombs,
		Guns:      1 + s.PowerUps.ExtraBullets,
		Shield:    s.PowerUps.Shield,
		Width:     f.Area.Width,
		Height:    f.Area.Height,
		Avatar:    box(f.Avatar),
		Sprites:   make([]Box, 0, len(f.Sprites)),
		Stars:     make([][2]float64, 0, len(f.Stars)),
		Sparks:    make([]Spark, 0, len(f.Sparks)),
		Flash:     f.Flash > 0,
		Sessions:  f.Sessions,
	}
	if s.PowerUps.SpeedBoost {
		v.Boost = max(s.PowerUps.SpeedBoostUntil-f.Clock, 0).Seconds()
	}
	for _, sp := range f.Sprites {
		v.Sprites = append(v.Sprites, box(sp))
	}
	for _, st := range f.Stars {
		v.Stars = append(v.Stars, [2]float64{st.X, st.Y})
	}
	for _, sp := range f.Sparks {
		v.Sparks = append(v.Sparks, Spark{X: sp.X, Y: sp.Y, Symbol: string(sp.Symbol), Fade: sp.Fade})
	}
	if p := f.Prompt; p != nil {
		v.Prompt = &Prompt{
			Source:    p.Source.String(),
			Text:      p.Question.Text,
			Options:   p.Question.Options,
			Remaining: f.Remaining.Seconds(),
			Limit:     p.Source.TimeLimit().Seconds(),
		}
	}
	return v
}
