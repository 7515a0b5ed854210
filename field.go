package main

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FieldConfig tunes the ambient particle field.
type FieldConfig struct {
	Count         int          `env:"PARTICLE_COUNT"`
	RepelRadius   float32      `env:"REPEL_RADIUS"`
	RepelStrength float32      `env:"REPEL_STRENGTH"`
	SizeMin       float32      `env:"PARTICLE_SIZE_MIN"`
	SizeMax       float32      `env:"PARTICLE_SIZE_MAX"`
	Margin        float32      `env:"PARTICLE_MARGIN"` // fraction of the viewport kept empty on each side
	MinDistance   float32      `env:"REPEL_MIN_DISTANCE"`
	Spring        SpringParams `envPrefix:"PARTICLE_SPRING_"`
}

func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:         100,
		RepelRadius:   120,
		RepelStrength: 100,
		SizeMin:       10,
		SizeMax:       30,
		Margin:        0.05,
		MinDistance:   0.001,
		Spring:        ParticleSpring,
	}
}

type FieldState int

const (
	FieldUninitialized FieldState = iota // mounted, viewport not known yet
	FieldSeeded                          // particles generated, nothing moved yet
	FieldActive
	FieldUnmounted
)

func (s FieldState) String() string {
	switch s {
	case FieldUninitialized:
		return "uninitialized"
	case FieldSeeded:
		return "seeded"
	case FieldActive:
		return "active"
	case FieldUnmounted:
		return "unmounted"
	}
	return "unknown"
}

type Particle struct {
	RestX, RestY float32
	Size         float32
	PosX, PosY   DampedValue

	Hovered bool    // visual only
	phase   float64 // noise offset for twinkle
}

func (p *Particle) Pos() rl.Vector2 { return rl.NewVector2(p.PosX.Current, p.PosY.Current) }

// randSource is the subset of *rand.Rand the field needs.
type randSource interface {
	Float32() float32
	Float64() float64
}

// globalRand uses the auto-seeded package source, so each mount lays out
// differently.
type globalRand struct{}

func (globalRand) Float32() float32 { return rand.Float32() }
func (globalRand) Float64() float64 { return rand.Float64() }

// AmbientParticleField keeps particles near their rest points and pushes
// them away from the pointer.
type AmbientParticleField struct {
	Config    FieldConfig
	Particles []Particle

	// Rand overrides the random source; nil means the package source.
	Rand randSource

	state      FieldState
	sub        Subscription
	untick     func()
	noise      *perlin.Perlin
	elapsed    float64
	lastPtr    rl.Vector2
	hasPointer bool
}

func NewAmbientParticleField(cfg FieldConfig) *AmbientParticleField {
	return &AmbientParticleField{Config: cfg, state: FieldUnmounted}
}

func (f *AmbientParticleField) State() FieldState { return f.state }

// Mount subscribes to the tracker and the clock. Particles are generated
// now if the viewport is measurable, otherwise on the first Resize that is.
func (f *AmbientParticleField) Mount(t *PointerTracker, c *Clock, viewport rl.Vector2) {
	if f.state != FieldUnmounted {
		return
	}
	f.state = FieldUninitialized
	f.Particles = nil
	f.elapsed = 0
	f.hasPointer = false
	f.sub = t.Subscribe(f.OnPointer)
	if c != nil {
		f.untick = c.Add(f)
	}
	f.Resize(viewport)
}

// Unmount drops the subscriptions and the particle batch.
func (f *AmbientParticleField) Unmount() {
	if f.state == FieldUnmounted {
		return
	}
	f.sub.Cancel()
	f.sub = Subscription{}
	if f.untick != nil {
		f.untick()
		f.untick = nil
	}
	f.Particles = nil
	f.state = FieldUnmounted
}

// Resize seeds the field the first time a usable viewport shows up. A
// seeded field is never regenerated.
func (f *AmbientParticleField) Resize(viewport rl.Vector2) {
	if f.state != FieldUninitialized {
		return
	}
	if viewport.X <= 0 || viewport.Y <= 0 {
		return
	}
	f.seed(viewport)
	f.state = FieldSeeded
}

func (f *AmbientParticleField) rng() randSource {
	if f.Rand != nil {
		return f.Rand
	}
	return globalRand{}
}

func (f *AmbientParticleField) seed(viewport rl.Vector2) {
	r := f.rng()
	cfg := f.Config
	span := 1 - 2*cfg.Margin

	f.Particles = make([]Particle, cfg.Count)
	for i := range f.Particles {
		rx := viewport.X * (cfg.Margin + r.Float32()*span)
		ry := viewport.Y * (cfg.Margin + r.Float32()*span)
		f.Particles[i] = Particle{
			RestX: rx,
			RestY: ry,
			Size:  cfg.SizeMin + r.Float32()*(cfg.SizeMax-cfg.SizeMin),
			PosX:  NewDampedValue(rx, cfg.Spring),
			PosY:  NewDampedValue(ry, cfg.Spring),
			phase: r.Float64() * 100,
		}
	}
	f.noise = perlin.NewPerlin(2, 2, 3, int64(r.Float64()*math.MaxInt32))
}

// Repel returns the spring target for a particle at current with the given
// rest point when the pointer is at p.
func Repel(current, rest, p rl.Vector2, cfg FieldConfig) rl.Vector2 {
	dx := current.X - p.X
	dy := current.Y - p.Y
	dist := float32(math.Hypot(float64(dx), float64(dy)))
	if dist >= cfg.RepelRadius {
		return rest
	}

	var ux, uy float32
	if dist < cfg.MinDistance {
		// coincident: push along +x at full strength
		dist = cfg.MinDistance
		ux, uy = 1, 0
	} else {
		ux, uy = dx/dist, dy/dist
	}
	force := cfg.RepelStrength * (1 - dist/cfg.RepelRadius)
	return rl.NewVector2(current.X+ux*force, current.Y+uy*force)
}

// OnPointer retargets every particle for pointer position p. Springs are not
// advanced here; the next Tick consumes the new targets.
func (f *AmbientParticleField) OnPointer(p rl.Vector2) {
	if f.state != FieldSeeded && f.state != FieldActive {
		return
	}
	f.state = FieldActive
	f.lastPtr = p
	f.hasPointer = true

	for i := range f.Particles {
		pt := &f.Particles[i]
		cur := pt.Pos()
		target := Repel(cur, rl.NewVector2(pt.RestX, pt.RestY), p, f.Config)
		pt.PosX.SetTarget(target.X)
		pt.PosY.SetTarget(target.Y)
	}
}

func (f *AmbientParticleField) Tick(dt float32) {
	if f.state != FieldSeeded && f.state != FieldActive {
		return
	}
	f.state = FieldActive
	f.elapsed += float64(dt)
	for i := range f.Particles {
		pt := &f.Particles[i]
		pt.PosX.Step(dt)
		pt.PosY.Step(dt)
		pt.Hovered = f.hasPointer && rl.Vector2Distance(pt.Pos(), f.lastPtr) <= pt.Size/2
	}
}

// Positions returns the current render position of every particle.
func (f *AmbientParticleField) Positions() []rl.Vector2 {
	out := make([]rl.Vector2, len(f.Particles))
	for i := range f.Particles {
		out[i] = f.Particles[i].Pos()
	}
	return out
}

// Twinkle is a render-only alpha in [0.2, 0.8] that drifts over time.
func (f *AmbientParticleField) Twinkle(i int) float32 {
	if f.noise == nil || i < 0 || i >= len(f.Particles) {
		return 0.5
	}
	n := f.noise.Noise2D(f.Particles[i].phase, f.elapsed*0.4)
	return clamp(0.5+float32(n)*0.6, 0.2, 0.8)
}

// Settled reports whether every particle is within eps of its target and
// nearly still.
func (f *AmbientParticleField) Settled(eps float32) bool {
	for i := range f.Particles {
		if !f.Particles[i].PosX.AtRest(eps) || !f.Particles[i].PosY.AtRest(eps) {
			return false
		}
	}
	return true
}
