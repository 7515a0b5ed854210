package main

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "FOLIO_"

// GlowConfig tunes the blob that trails the pointer.
type GlowConfig struct {
	Radius float32      `env:"GLOW_RADIUS"`
	Spring SpringParams `envPrefix:"GLOW_SPRING_"`
}

type ChimeConfig struct {
	Enabled bool    `env:"CHIME"`
	Volume  float64 `env:"CHIME_VOLUME"`
}

// Config is every tunable of the presentation. Defaults come from
// DefaultConfig; environment variables prefixed FOLIO_ override them.
type Config struct {
	Width     int     `env:"WIDTH"`
	Height    int     `env:"HEIGHT"`
	TargetFPS int     `env:"FPS"`
	StepHz    float32 `env:"STEP_HZ"` // integration rate of the spring clock

	Field FieldConfig
	Tilt  TiltConfig
	Glow  GlowConfig
	Chime ChimeConfig
}

func DefaultConfig() Config {
	return Config{
		Width:     1280,
		Height:    800,
		TargetFPS: 60,
		StepHz:    120,
		Field:     DefaultFieldConfig(),
		Tilt:      DefaultTiltConfig(),
		Glow: GlowConfig{
			Radius: 160,
			Spring: SpringParams{Stiffness: 150, Damping: 30, Mass: 0.5},
		},
		Chime: ChimeConfig{Enabled: true, Volume: 0.25},
	}
}

// LoadConfig overlays the environment on the defaults and repairs values
// that would break the simulation.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return DefaultConfig(), fmt.Errorf("parse env: %w", err)
	}
	cfg.validate()
	return cfg, nil
}

func (c *Config) validate() {
	def := DefaultConfig()

	if c.Width <= 0 || c.Height <= 0 {
		log.Printf("Invalid window size %dx%d, using %dx%d", c.Width, c.Height, def.Width, def.Height)
		c.Width, c.Height = def.Width, def.Height
	}
	if c.TargetFPS <= 0 {
		log.Printf("Invalid fps %d, using %d", c.TargetFPS, def.TargetFPS)
		c.TargetFPS = def.TargetFPS
	}
	if c.StepHz < 30 {
		log.Printf("Step rate %.1f too low for stable springs, using %.1f", c.StepHz, def.StepHz)
		c.StepHz = def.StepHz
	}

	f := &c.Field
	if f.Count < 0 {
		log.Printf("Invalid particle count %d, using %d", f.Count, def.Field.Count)
		f.Count = def.Field.Count
	}
	if f.RepelRadius <= 0 {
		log.Printf("Invalid repel radius %.2f, using %.2f", f.RepelRadius, def.Field.RepelRadius)
		f.RepelRadius = def.Field.RepelRadius
	}
	if f.SizeMin <= 0 || f.SizeMax < f.SizeMin {
		log.Printf("Invalid particle size range [%.2f, %.2f], using [%.2f, %.2f]",
			f.SizeMin, f.SizeMax, def.Field.SizeMin, def.Field.SizeMax)
		f.SizeMin, f.SizeMax = def.Field.SizeMin, def.Field.SizeMax
	}
	if f.Margin < 0 || f.Margin >= 0.5 {
		log.Printf("Invalid particle margin %.2f, must be in [0, 0.5), using %.2f", f.Margin, def.Field.Margin)
		f.Margin = def.Field.Margin
	}
	if f.MinDistance <= 0 {
		f.MinDistance = def.Field.MinDistance
	}
	validSpring("particle", &f.Spring, def.Field.Spring)

	t := &c.Tilt
	if t.InMin >= t.InMax {
		log.Printf("Invalid tilt input range [%.2f, %.2f], using [%.2f, %.2f]",
			t.InMin, t.InMax, def.Tilt.InMin, def.Tilt.InMax)
		t.InMin, t.InMax = def.Tilt.InMin, def.Tilt.InMax
	}
	if t.Perspective < 0 {
		t.Perspective = def.Tilt.Perspective
	}
	validSpring("tilt", &t.Spring, def.Tilt.Spring)
	validSpring("glow", &c.Glow.Spring, def.Glow.Spring)

	if c.Chime.Volume < 0 || c.Chime.Volume > 1 {
		log.Printf("Invalid chime volume %.2f, must be between 0.0 and 1.0, using %.2f", c.Chime.Volume, def.Chime.Volume)
		c.Chime.Volume = def.Chime.Volume
	}
}

func validSpring(name string, p *SpringParams, def SpringParams) {
	if p.valid() {
		return
	}
	log.Printf("Invalid %s spring %+v, using %+v", name, *p, def)
	*p = def
}
