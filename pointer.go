package main

import rl "github.com/gen2brain/raylib-go/raylib"

// PointerSource is anything that can report where the pointer is right now.
type PointerSource interface {
	PointerPosition() rl.Vector2
}

// mouseSource reads the raylib mouse.
type mouseSource struct{}

func (mouseSource) PointerPosition() rl.Vector2 { return rl.GetMousePosition() }

type pointerSub struct {
	id uint32
	fn func(rl.Vector2)
}

// PointerTracker publishes the latest pointer position to subscribers.
// It has exactly one writer (Move) and is only touched from the render
// thread, so it carries no lock.
type PointerTracker struct {
	pos     rl.Vector2
	started bool
	subs    []pointerSub
	nextID  uint32
}

// process-wide tracker driven by the main loop
var pointer = NewPointerTracker()

func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Subscription removes one subscriber from its tracker.
type Subscription struct {
	id uint32
	t  *PointerTracker
}

func (s Subscription) Cancel() {
	if s.t == nil {
		return
	}
	s.t.remove(s.id)
}

// Start begins publishing. The initial position is the viewport center when
// the viewport is known, so the first real move does not snap from the
// corner.
func (t *PointerTracker) Start(viewport rl.Vector2) {
	if t.started {
		return
	}
	t.started = true
	if viewport.X > 0 && viewport.Y > 0 {
		t.pos = rl.NewVector2(viewport.X/2, viewport.Y/2)
	} else {
		t.pos = rl.Vector2{}
	}
}

// Stop ends publishing and drops every subscriber.
func (t *PointerTracker) Stop() {
	t.started = false
	t.subs = nil
}

func (t *PointerTracker) Started() bool { return t.started }

func (t *PointerTracker) Position() rl.Vector2 { return t.pos }

func (t *PointerTracker) Subscribe(fn func(rl.Vector2)) Subscription {
	t.nextID++
	t.subs = append(t.subs, pointerSub{id: t.nextID, fn: fn})
	return Subscription{id: t.nextID, t: t}
}

func (t *PointerTracker) remove(id uint32) {
	out := t.subs[:0]
	for _, s := range t.subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	// clear the tail so dropped closures can be collected
	for i := len(out); i < len(t.subs); i++ {
		t.subs[i] = pointerSub{}
	}
	t.subs = out
}

// Move records a new position and notifies subscribers in registration
// order. Ignored while stopped.
func (t *PointerTracker) Move(p rl.Vector2) {
	if !t.started {
		return
	}
	t.pos = p
	// copy: a callback may cancel itself
	subs := append([]pointerSub(nil), t.subs...)
	for _, s := range subs {
		s.fn(p)
	}
}

// Poll reads the device once and forwards it as a move if it changed.
func (t *PointerTracker) Poll(src PointerSource) bool {
	if !t.started {
		return false
	}
	p := src.PointerPosition()
	if p == t.pos {
		return false
	}
	t.Move(p)
	return true
}
