package main

// SpringParams tunes a DampedValue. Stiffness pulls toward the target,
// damping bleeds velocity, mass slows both down.
type SpringParams struct {
	Stiffness float32 `env:"STIFFNESS"`
	Damping   float32 `env:"DAMPING"`
	Mass      float32 `env:"MASS"`
}

// slow, floaty settle for the ambient field
var ParticleSpring = SpringParams{Stiffness: 50, Damping: 15, Mass: 0.5}

// snappier response for card tilt
var TiltSpring = SpringParams{Stiffness: 150, Damping: 10, Mass: 1}

func (p SpringParams) valid() bool {
	return p.Stiffness > 0 && p.Damping >= 0 && p.Mass > 0
}

// DampedValue animates Current toward Target with a damped harmonic
// oscillator. Current and Velocity only change through Step or Reset.
type DampedValue struct {
	Current  float32
	Target   float32
	Velocity float32
	Params   SpringParams
}

func NewDampedValue(v float32, params SpringParams) DampedValue {
	return DampedValue{Current: v, Target: v, Params: params}
}

// SetTarget retargets the spring. Velocity is kept so motion stays
// continuous and may overshoot.
func (d *DampedValue) SetTarget(t float32) { d.Target = t }

// Reset snaps the value to v with no motion left.
func (d *DampedValue) Reset(v float32) {
	d.Current = v
	d.Target = v
	d.Velocity = 0
}

// Step advances one semi-implicit Euler increment of dt seconds.
func (d *DampedValue) Step(dt float32) {
	if dt <= 0 || d.Params.Mass <= 0 {
		return
	}
	accel := (d.Params.Stiffness*(d.Target-d.Current) - d.Params.Damping*d.Velocity) / d.Params.Mass
	d.Velocity += accel * dt
	d.Current += d.Velocity * dt
}

func (d *DampedValue) AtRest(eps float32) bool {
	return absf(d.Target-d.Current) <= eps && absf(d.Velocity) <= eps
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
