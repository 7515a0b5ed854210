package main

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T) (*Shell, *PointerTracker, *Clock) {
	t.Helper()
	tr := NewPointerTracker()
	c := NewClock(1.0 / 120)
	s := NewShell(DefaultConfig(), &portfolio, tr, c, nil)
	s.Mount(rl.NewVector2(1280, 800))
	t.Cleanup(s.Unmount)
	return s, tr, c
}

func TestShellMountAttachesEverything(t *testing.T) {
	s, tr, c := newTestShell(t)

	assert.True(t, tr.Started())
	assert.Equal(t, FieldSeeded, s.Field().State())
	assert.Len(t, s.Field().Particles, 100)
	require.Len(t, s.Cards(), len(portfolio.Projects))

	// field, glow and one per card
	want := 2 + len(portfolio.Projects)
	assert.Len(t, tr.subs, want)
	assert.Equal(t, want, c.Len())
}

func TestShellUnmountLeavesNothingBehind(t *testing.T) {
	s, tr, c := newTestShell(t)
	s.Unmount()

	assert.False(t, tr.Started())
	assert.Empty(t, tr.subs)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, FieldUnmounted, s.Field().State())
	assert.Nil(t, s.Cards())

	assert.NotPanics(t, func() {
		s.Update(Frame{Dt: 1.0 / 60, Viewport: rl.NewVector2(1280, 800)}, &fakePointer{})
	})
}

func TestShellCardBoundsFollowScroll(t *testing.T) {
	s, _, _ := newTestShell(t)
	src := &fakePointer{pos: rl.NewVector2(640, 400)}
	card := s.Layout().ProjectCards[0]

	r, ok := s.Cards()[0].Bounds()
	require.True(t, ok)
	assert.Equal(t, card.Y, r.Y)

	s.Update(Frame{Dt: 1.0 / 60, Viewport: rl.NewVector2(1280, 800), Wheel: -2}, src)
	for range 120 {
		s.Update(Frame{Dt: 1.0 / 60, Viewport: rl.NewVector2(1280, 800)}, src)
	}
	r, _ = s.Cards()[0].Bounds()
	assert.Equal(t, card.Y-2*wheelStep, r.Y)
}

func TestShellUpdateDrivesCards(t *testing.T) {
	s, tr, _ := newTestShell(t)
	r, _ := s.Cards()[0].Bounds()
	src := &fakePointer{pos: rl.NewVector2(r.X+r.Width-10, r.Y+r.Height/2)}

	for range 60 {
		s.Update(Frame{Dt: 1.0 / 60, Viewport: rl.NewVector2(1280, 800)}, src)
	}
	assert.Equal(t, src.pos, tr.Position())
	assert.True(t, s.Cards()[0].Hovered())
	assert.False(t, s.Cards()[1].Hovered())
	_, ry := s.Cards()[0].Rotation()
	assert.Less(t, ry, float32(0))
}

func TestShellResizeRelayouts(t *testing.T) {
	s, _, _ := newTestShell(t)
	first := s.Field().Particles[0]

	s.Update(Frame{Dt: 1.0 / 60, Viewport: rl.NewVector2(700, 800)}, &fakePointer{pos: rl.NewVector2(640, 400)})
	assert.Equal(t, float32(700), s.Layout().Width)
	assert.Equal(t, first.RestX, s.Field().Particles[0].RestX, "resize does not reseed")
}

func TestShellScrollTo(t *testing.T) {
	s, _, _ := newTestShell(t)
	s.ScrollTo(1e9)
	assert.Equal(t, s.Layout().Height-800, s.scroll)
	s.ScrollTo(-5)
	assert.Equal(t, float32(0), s.scroll)
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, int64(0x112233ff), colorHex(rl.NewColor(0x11, 0x22, 0x33, 0xff)))
}

func TestHoverScale(t *testing.T) {
	r := rl.NewRectangle(0, 0, 100, 40)
	assert.Equal(t, r, hoverScale(r, rl.NewVector2(200, 200)))
	got := hoverScale(r, rl.NewVector2(50, 20))
	assert.InDelta(t, 105, got.Width, 1e-3)
	assert.InDelta(t, -2.5, got.X, 1e-3)
}
