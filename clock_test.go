package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockRunsFixedSteps(t *testing.T) {
	c := NewClock(0.01)
	var got []float32
	c.Add(TickFunc(func(dt float32) { got = append(got, dt) }))

	assert.Equal(t, 0, c.Advance(0.005))
	assert.Equal(t, 1, c.Advance(0.006)) // 0.011 accumulated
	assert.Equal(t, 2, c.Advance(0.02))
	assert.Equal(t, []float32{0.01, 0.01, 0.01}, got)
}

func TestClockCapsStepsAfterStall(t *testing.T) {
	c := NewClock(0.01)
	n := 0
	c.Add(TickFunc(func(float32) { n++ }))

	assert.Equal(t, maxStepsPerFrame, c.Advance(5))
	// the backlog was dropped
	assert.Equal(t, 0, c.Advance(0.001))
	assert.Equal(t, maxStepsPerFrame, n)
}

func TestClockRemove(t *testing.T) {
	c := NewClock(0.01)
	a, b := 0, 0
	removeA := c.Add(TickFunc(func(float32) { a++ }))
	c.Add(TickFunc(func(float32) { b++ }))

	c.Advance(0.01)
	removeA()
	removeA()
	c.Advance(0.01)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 1, c.Len())
}

func TestClockDefaultStep(t *testing.T) {
	assert.InDelta(t, 1.0/120, NewClock(0).Step, 1e-9)
	assert.Equal(t, 0, NewClock(0.01).Advance(-1))
}
