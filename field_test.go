package main

import (
	"math"
	"math/rand"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testViewport = rl.NewVector2(1000, 800)

func mountedField(t *testing.T, seed int64) (*AmbientParticleField, *PointerTracker, *Clock) {
	t.Helper()
	tr := NewPointerTracker()
	tr.Start(testViewport)
	c := NewClock(1.0 / 120)
	f := NewAmbientParticleField(DefaultFieldConfig())
	f.Rand = rand.New(rand.NewSource(seed))
	f.Mount(tr, c, testViewport)
	require.Equal(t, FieldSeeded, f.State())
	return f, tr, c
}

func TestFieldSeedsInsideMargin(t *testing.T) {
	f, _, _ := mountedField(t, 1)
	cfg := f.Config

	require.Len(t, f.Particles, cfg.Count)
	for i, p := range f.Particles {
		assert.GreaterOrEqual(t, p.RestX, float32(50), "particle %d", i)
		assert.LessOrEqual(t, p.RestX, float32(950), "particle %d", i)
		assert.GreaterOrEqual(t, p.RestY, float32(40), "particle %d", i)
		assert.LessOrEqual(t, p.RestY, float32(760), "particle %d", i)
		assert.GreaterOrEqual(t, p.Size, cfg.SizeMin)
		assert.LessOrEqual(t, p.Size, cfg.SizeMax)
		assert.Equal(t, rl.NewVector2(p.RestX, p.RestY), f.Positions()[i], "particles start at rest")
	}
}

func TestFieldRemountRegenerates(t *testing.T) {
	tr := NewPointerTracker()
	tr.Start(testViewport)
	f := NewAmbientParticleField(DefaultFieldConfig())
	f.Rand = rand.New(rand.NewSource(7))

	f.Mount(tr, nil, testViewport)
	first := append([]Particle(nil), f.Particles...)
	f.Unmount()
	assert.Nil(t, f.Particles)

	f.Mount(tr, nil, testViewport)
	require.Len(t, f.Particles, len(first))
	assert.NotEqual(t, first[0].RestX, f.Particles[0].RestX)
}

func TestFieldWaitsForViewport(t *testing.T) {
	tr := NewPointerTracker()
	f := NewAmbientParticleField(DefaultFieldConfig())
	f.Mount(tr, nil, rl.Vector2{})

	assert.Equal(t, FieldUninitialized, f.State())
	assert.Empty(t, f.Particles)

	f.Resize(rl.NewVector2(0, 500))
	assert.Equal(t, FieldUninitialized, f.State())

	f.Resize(testViewport)
	assert.Equal(t, FieldSeeded, f.State())
	assert.Len(t, f.Particles, 100)
}

func TestFieldResizeKeepsParticles(t *testing.T) {
	f, _, _ := mountedField(t, 2)
	before := f.Particles[3]

	f.Resize(rl.NewVector2(400, 300))
	assert.Equal(t, before.RestX, f.Particles[3].RestX)
	assert.Equal(t, before.RestY, f.Particles[3].RestY)
}

func TestRepel(t *testing.T) {
	cfg := DefaultFieldConfig()
	cur := rl.NewVector2(500, 500)
	rest := rl.NewVector2(480, 510)

	t.Run("pointer to the right pushes left", func(t *testing.T) {
		got := Repel(cur, rest, rl.NewVector2(600, 500), cfg)
		assert.InDelta(t, 500-100.0/6, got.X, 1e-3)
		assert.InDelta(t, 500, got.Y, 1e-3)
	})
	t.Run("pointer to the left pushes right", func(t *testing.T) {
		got := Repel(cur, rest, rl.NewVector2(400, 500), cfg)
		assert.InDelta(t, 500+100.0/6, got.X, 1e-3)
	})
	t.Run("outside radius returns rest", func(t *testing.T) {
		assert.Equal(t, rest, Repel(cur, rest, rl.NewVector2(700, 500), cfg))
	})
	t.Run("exactly at radius returns rest", func(t *testing.T) {
		assert.Equal(t, rest, Repel(cur, rest, rl.NewVector2(620, 500), cfg))
	})
	t.Run("just inside radius barely moves", func(t *testing.T) {
		got := Repel(cur, rest, rl.NewVector2(619.9, 500), cfg)
		assert.InDelta(t, 500, got.X, 0.1)
	})
	t.Run("coincident pointer stays finite", func(t *testing.T) {
		got := Repel(cur, rest, cur, cfg)
		assert.False(t, math.IsNaN(float64(got.X)) || math.IsInf(float64(got.X), 0))
		assert.InDelta(t, 600, got.X, 0.01)
		assert.Equal(t, float32(500), got.Y)
	})
	t.Run("closer pushes harder", func(t *testing.T) {
		prev := float32(math.MaxFloat32)
		for d := float32(1); d < cfg.RepelRadius; d++ {
			got := Repel(cur, rest, rl.NewVector2(cur.X-d, cur.Y), cfg)
			push := got.X - cur.X
			assert.Less(t, push, prev, "distance %v", d)
			prev = push
		}
	})
}

func TestFieldPointerOnlySetsTargets(t *testing.T) {
	f, tr, _ := mountedField(t, 3)
	p := f.Particles[0]

	tr.Move(rl.NewVector2(p.RestX+10, p.RestY))
	assert.Equal(t, FieldActive, f.State())
	assert.Equal(t, p.RestX, f.Particles[0].PosX.Current, "no integration on pointer events")
	assert.Less(t, f.Particles[0].PosX.Target, p.RestX)
}

func TestFieldSettlesBackToRest(t *testing.T) {
	f, tr, c := mountedField(t, 4)
	p := f.Particles[0]

	tr.Move(rl.NewVector2(p.RestX+20, p.RestY+5))
	for range 30 {
		c.Advance(c.Step)
	}
	require.False(t, f.Settled(0.01))

	tr.Move(rl.NewVector2(-10000, -10000))
	for range 2000 {
		c.Advance(c.Step)
	}
	assert.True(t, f.Settled(0.01))
	for _, p := range f.Particles {
		assert.InDelta(t, p.RestX, p.PosX.Current, 0.01)
		assert.InDelta(t, p.RestY, p.PosY.Current, 0.01)
	}
}

func TestFieldHoverFlag(t *testing.T) {
	f, tr, c := mountedField(t, 5)
	p := f.Particles[0]

	tr.Move(rl.NewVector2(p.RestX, p.RestY))
	c.Advance(c.Step)
	assert.True(t, f.Particles[0].Hovered)

	tr.Move(rl.NewVector2(-10000, -10000))
	c.Advance(c.Step)
	for _, p := range f.Particles {
		assert.False(t, p.Hovered)
	}
}

func TestFieldUnmountStopsCallbacks(t *testing.T) {
	f, tr, c := mountedField(t, 6)
	p := f.Particles[0]
	tr.Move(rl.NewVector2(p.RestX+5, p.RestY))
	c.Advance(c.Step)

	f.Unmount()
	assert.Equal(t, FieldUnmounted, f.State())
	assert.Empty(t, tr.subs)
	assert.Equal(t, 0, c.Len())

	// late events and ticks are no-ops
	tr.Move(rl.NewVector2(1, 1))
	f.OnPointer(rl.NewVector2(1, 1))
	f.Tick(c.Step)
	assert.Equal(t, FieldUnmounted, f.State())
	assert.Nil(t, f.Particles)
}

func TestFieldTwinkleRange(t *testing.T) {
	f, _, c := mountedField(t, 8)
	for range 240 {
		c.Advance(c.Step)
		for i := range f.Particles {
			a := f.Twinkle(i)
			assert.GreaterOrEqual(t, a, float32(0.2))
			assert.LessOrEqual(t, a, float32(0.8))
		}
	}
	assert.Equal(t, float32(0.5), f.Twinkle(-1))
}

func TestFieldStateString(t *testing.T) {
	assert.Equal(t, "seeded", FieldSeeded.String())
	assert.Equal(t, "unknown", FieldState(42).String())
}
