package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
// A non-zero slide bends the frequency linearly over the duration.
type oscillator struct {
	freq     float64
	slide    float64 // Hz added by the end of the tone
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func newOscillator(freq, slide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		slide:    slide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.slide*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one shaped oscillator.
func tone(freq, slide float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(freq, slide, d, wave, rate)
	return newEnvelope(osc, d, d/10, d/2, rate)
}

// newCue builds the streamer for c at the given master volume.
func newCue(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueExplosion:
		// Noise burst over a falling rumble.
		s = beep.Mix(
			newVolume(tone(0, 0, 400*time.Millisecond, WaveNoise, rate), 0.6),
			newVolume(tone(110, -70, 400*time.Millisecond, WaveSaw, rate), 0.4),
		)
	case CueHit:
		s = tone(220, -80, 150*time.Millisecond, WaveSquare, rate)
	case CueBulletHit:
		s = newVolume(tone(1200, 400, 60*time.Millisecond, WaveSine, rate), 0.5)
	case CuePowerUp:
		// Rising arpeggio C5 E5 G5 C6.
		s = beep.Seq(
			tone(523.25, 0, 80*time.Millisecond, WaveSine, rate),
			tone(659.25, 0, 80*time.Millisecond, WaveSine, rate),
			tone(783.99, 0, 80*time.Millisecond, WaveSine, rate),
			tone(1046.50, 0, 160*time.Millisecond, WaveSine, rate),
		)
	case CueRevive:
		// Major chord swelling upward.
		d := 600 * time.Millisecond
		s = beep.Mix(
			newVolume(tone(261.63, 261.63, d, WaveSine, rate), 0.4),
			newVolume(tone(329.63, 329.63, d, WaveSine, rate), 0.3),
			newVolume(tone(392.00, 392.00, d, WaveSine, rate), 0.3),
		)
	default:
		s = beep.Silence(0)
	}
	return newVolume(s, volume)
}
