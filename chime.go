package main

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeRate     = beep.SampleRate(44100)
	chimeLength   = 180 * time.Millisecond
	chimeAttack   = 6 * time.Millisecond
	chimeFreq     = 1046.5 // C6
	chimeOvertone = 2093.0
)

// Chime plays a short synthesized ping when a card starts tilting. It goes
// silent instead of failing when no audio device is available.
type Chime struct {
	cfg ChimeConfig

	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewChime(cfg ChimeConfig) *Chime {
	return &Chime{cfg: cfg, mixer: &beep.Mixer{}}
}

func (c *Chime) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.cfg.Enabled {
		return
	}
	if err := speaker.Init(chimeRate, chimeRate.N(50*time.Millisecond)); err != nil {
		log.Printf("Audio unavailable, chime disabled: %v", err)
		return
	}
	speaker.Play(c.mixer)
	c.initialized = true
}

func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(chimeSound(c.cfg.Volume))
	speaker.Unlock()
}

func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	c.initialized = false
}

// chimeSound is a sine fundamental plus a softer octave, shaped with a fast
// attack and exponential decay.
func chimeSound(vol float64) beep.Streamer {
	mixed := beep.Mix(
		withVolume(sine(chimeFreq, chimeLength, chimeRate), 0.7),
		withVolume(sine(chimeOvertone, chimeLength, chimeRate), 0.3),
	)
	return withVolume(decay(mixed, chimeLength, chimeAttack, chimeRate), vol)
}

func sine(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			v := math.Sin(2 * math.Pi * phase)
			samples[i][0], samples[i][1] = v, v
			phase += freq / float64(rate)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	})
}

func decay(s beep.Streamer, d, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	att := rate.N(attack)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			var g float64
			switch {
			case pos < att:
				g = float64(pos) / float64(att)
			case total > att:
				g = math.Exp(-5 * float64(pos-att) / float64(total-att))
			}
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// log2 gain; zero volume means silent rather than -Inf
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
