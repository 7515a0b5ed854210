package main

import (
	"math"

	"github.com/charmbracelet/harmonica"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Glow is the decorative blob that trails the pointer on a harmonica spring.
type Glow struct {
	Radius float32

	spring  harmonica.Spring
	x, y    float64
	vx, vy  float64
	tx, ty  float64
	sub     Subscription
	untick  func()
	mounted bool
}

// harmonicaParams converts stiffness/damping/mass into the angular frequency
// and damping ratio harmonica expects.
func harmonicaParams(p SpringParams) (omega, zeta float64) {
	k, c, m := float64(p.Stiffness), float64(p.Damping), float64(p.Mass)
	omega = math.Sqrt(k / m)
	zeta = c / (2 * math.Sqrt(k*m))
	return omega, zeta
}

func NewGlow(cfg GlowConfig, step float32) *Glow {
	omega, zeta := harmonicaParams(cfg.Spring)
	return &Glow{
		Radius: cfg.Radius,
		spring: harmonica.NewSpring(float64(step), omega, zeta),
	}
}

// Mount starts the blob at the tracker's current position.
func (g *Glow) Mount(t *PointerTracker, c *Clock) {
	if g.mounted {
		return
	}
	g.mounted = true
	p := t.Position()
	g.x, g.y = float64(p.X), float64(p.Y)
	g.tx, g.ty = g.x, g.y
	g.vx, g.vy = 0, 0
	g.sub = t.Subscribe(g.OnPointer)
	g.untick = c.Add(g)
}

func (g *Glow) Unmount() {
	if !g.mounted {
		return
	}
	g.sub.Cancel()
	g.untick()
	g.mounted = false
}

func (g *Glow) OnPointer(p rl.Vector2) {
	g.tx, g.ty = float64(p.X), float64(p.Y)
}

// Tick ignores dt: the spring was built for the clock's fixed step.
func (g *Glow) Tick(float32) {
	g.x, g.vx = g.spring.Update(g.x, g.vx, g.tx)
	g.y, g.vy = g.spring.Update(g.y, g.vy, g.ty)
}

// Center is where the blob is drawn, in viewport coordinates.
func (g *Glow) Center() rl.Vector2 {
	return rl.NewVector2(float32(g.x), float32(g.y))
}
