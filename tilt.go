package main

import rl "github.com/gen2brain/raylib-go/raylib"

// TiltConfig tunes hover tilt. Pointer offset from the card center is scaled
// by Sensitivity into a small proxy value, then mapped from the input range
// onto rotation degrees.
type TiltConfig struct {
	Sensitivity float32      `env:"TILT_SENSITIVITY"`
	InMin       float32      `env:"TILT_INPUT_MIN"`
	InMax       float32      `env:"TILT_INPUT_MAX"`
	RotXFrom    float32      `env:"TILT_ROTX_FROM"`
	RotXTo      float32      `env:"TILT_ROTX_TO"`
	RotYFrom    float32      `env:"TILT_ROTY_FROM"`
	RotYTo      float32      `env:"TILT_ROTY_TO"`
	Perspective float32      `env:"TILT_PERSPECTIVE"`
	Spring      SpringParams `envPrefix:"TILT_SPRING_"`
}

func DefaultTiltConfig() TiltConfig {
	return TiltConfig{
		Sensitivity: 0.02,
		InMin:       -5,
		InMax:       5,
		RotXFrom:    5,
		RotXTo:      -5,
		RotYFrom:    -5,
		RotYTo:      5,
		Perspective: 800,
		Spring:      TiltSpring,
	}
}

// BoundsFunc reports a card's current on-screen rectangle. ok is false when
// the card is not laid out.
type BoundsFunc func() (r rl.Rectangle, ok bool)

// TiltCard leans a card toward the pointer while hovered and lies flat
// otherwise.
type TiltCard struct {
	Config TiltConfig
	Bounds BoundsFunc

	// optional hover hooks
	OnEnter func()
	OnLeave func()

	proxyX, proxyY DampedValue
	hovered        bool
}

func NewTiltCard(bounds BoundsFunc, cfg TiltConfig) *TiltCard {
	return &TiltCard{
		Config: cfg,
		Bounds: bounds,
		proxyX: NewDampedValue(0, cfg.Spring),
		proxyY: NewDampedValue(0, cfg.Spring),
	}
}

func (c *TiltCard) Hovered() bool { return c.hovered }

// OnPointer updates hover state and proxy targets for pointer position p.
func (c *TiltCard) OnPointer(p rl.Vector2) {
	r, ok := rl.Rectangle{}, false
	if c.Bounds != nil {
		r, ok = c.Bounds()
	}
	if !ok || r.Width <= 0 || r.Height <= 0 {
		c.leave()
		return
	}

	inside := rl.CheckCollisionPointRec(p, r)
	switch {
	case inside && !c.hovered:
		c.hovered = true
		if c.OnEnter != nil {
			c.OnEnter()
		}
	case !inside && c.hovered:
		c.leave()
		return
	case !inside:
		return
	}

	cx := r.X + r.Width/2
	cy := r.Y + r.Height/2
	c.proxyX.SetTarget(-(p.X - cx) * c.Config.Sensitivity)
	c.proxyY.SetTarget(-(p.Y - cy) * c.Config.Sensitivity)
}

// leave snaps the proxies back to zero instead of springing: a card the
// pointer left quickly should not keep leaning.
func (c *TiltCard) leave() {
	wasHovered := c.hovered
	c.hovered = false
	c.proxyX.Reset(0)
	c.proxyY.Reset(0)
	if wasHovered && c.OnLeave != nil {
		c.OnLeave()
	}
}

func (c *TiltCard) Tick(dt float32) {
	if !c.hovered {
		return
	}
	c.proxyX.Step(dt)
	c.proxyY.Step(dt)
}

// Rotation returns the current rotation in degrees around X and Y.
func (c *TiltCard) Rotation() (rotX, rotY float32) {
	if !c.hovered {
		return 0, 0
	}
	return c.rotationFor(c.proxyX.Current, c.proxyY.Current)
}

// TargetRotation is the rotation the springs are heading for.
func (c *TiltCard) TargetRotation() (rotX, rotY float32) {
	if !c.hovered {
		return 0, 0
	}
	return c.rotationFor(c.proxyX.Target, c.proxyY.Target)
}

func (c *TiltCard) rotationFor(px, py float32) (rotX, rotY float32) {
	cfg := c.Config
	rotX = mapRange(py, cfg.InMin, cfg.InMax, cfg.RotXFrom, cfg.RotXTo)
	rotY = mapRange(px, cfg.InMin, cfg.InMax, cfg.RotYFrom, cfg.RotYTo)
	return rotX, rotY
}

// Project rotates a card-local point (origin at the card center, z toward
// the viewer) by the current tilt and returns its perspective-projected
// screen position.
func (c *TiltCard) Project(center rl.Vector2, local rl.Vector3) rl.Vector2 {
	rotX, rotY := c.Rotation()
	m := rl.MatrixRotateXYZ(rl.NewVector3(rotX*rl.Deg2rad, rotY*rl.Deg2rad, 0))
	v := rl.Vector3Transform(local, m)

	scale := float32(1)
	if c.Config.Perspective > 0 {
		den := c.Config.Perspective - v.Z
		if den < 1 {
			den = 1
		}
		scale = c.Config.Perspective / den
	}
	return rl.NewVector2(center.X+v.X*scale, center.Y+v.Y*scale)
}

// mapRange maps v from [inMin, inMax] onto [outFrom, outTo], clamped to the
// output range.
func mapRange(v, inMin, inMax, outFrom, outTo float32) float32 {
	if inMax == inMin {
		return outFrom
	}
	t := clamp((v-inMin)/(inMax-inMin), 0, 1)
	return outFrom + t*(outTo-outFrom)
}
