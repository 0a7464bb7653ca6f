package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Synth plays generated tones through the system speaker.
// It is safe for concurrent use. Once the device fails to open every cue is skipped.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewSynth opens the speaker. If that fails the error is logged once and the
// returned Synth stays silent.
func NewSynth(logger *log.Logger, volume float64) *Synth {
	s := &Synth{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
	if err := s.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	return s
}

// Initialize sets up the speaker. Calling it again after success is a no-op.
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (s *Synth) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Close stops every playing cue.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

func (s *Synth) play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(newCue(c, sampleRate, s.volume))
	speaker.Unlock()
}

func (s *Synth) PlayExplosion() { s.play(CueExplosion) }
func (s *Synth) PlayHit()       { s.play(CueHit) }
func (s *Synth) PlayBulletHit() { s.play(CueBulletHit) }
func (s *Synth) PlayPowerUp()   { s.play(CuePowerUp) }
func (s *Synth) PlayRevive()    { s.play(CueRevive) }

var _ Port = (*Synth)(nil)
