package object

import (
	"math/rand"
	"time"
)

// Star is one point of the scrolling background.
type Star struct {
	X, Y  float64
	Speed float64 // px/s
}

// Starfield is the cosmetic background. It scrolls downward and wraps.
type Starfield struct {
	Stars []Star
}

// NewStarfield scatters n stars over the area.
func NewStarfield(area PlayArea, n int) *Starfield {
	s := &Starfield{Stars: make([]Star, n)}
	for i := range s.Stars {
		s.Stars[i] = Star{
			X:     rand.Float64() * area.Width,
			Y:     rand.Float64() * area.Height,
			Speed: 20 + rand.Float64()*60,
		}
	}
	return s
}

// Update scrolls every star, wrapping at the bottom edge.
func (s *Starfield) Update(delta time.Duration, area PlayArea) {
	dt := delta.Seconds()
	for i := range s.Stars {
		st := &s.Stars[i]
		st.Y += st.Speed * dt
		if st.Y > area.Height {
			st.Y -= area.Height
			st.X = rand.Float64() * area.Width
		}
	}
}

// Snapshot returns a copy of the star positions.
func (s *Starfield) Snapshot() []Star {
	out := make([]Star, len(s.Stars))
	copy(out, s.Stars)
	return out
}
