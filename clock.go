package main

// Ticker is advanced by the Clock in fixed increments.
type Ticker interface {
	Tick(dt float32)
}

// TickFunc adapts a plain function to Ticker.
type TickFunc func(dt float32)

func (f TickFunc) Tick(dt float32) { f(dt) }

const maxStepsPerFrame = 8 // drop time rather than spiral after a stall

// Clock turns variable frame times into fixed integration steps. Pointer
// events only touch spring targets; the clock is the only thing that moves
// spring values.
type Clock struct {
	Step    float32
	accum   float32
	next    int
	tickers []clockEntry
}

type clockEntry struct {
	id int
	t  Ticker
}

func NewClock(step float32) *Clock {
	if step <= 0 {
		step = 1.0 / 120
	}
	return &Clock{Step: step}
}

// Add registers t and returns a function that unregisters it.
func (c *Clock) Add(t Ticker) (remove func()) {
	c.next++
	id := c.next
	c.tickers = append(c.tickers, clockEntry{id: id, t: t})
	return func() { c.remove(id) }
}

func (c *Clock) remove(id int) {
	for i, e := range c.tickers {
		if e.id == id {
			c.tickers = append(c.tickers[:i], c.tickers[i+1:]...)
			return
		}
	}
}

func (c *Clock) Len() int { return len(c.tickers) }

// Advance feeds dt seconds of frame time and runs as many whole steps as
// fit. It returns the number of steps run.
func (c *Clock) Advance(dt float32) int {
	if dt <= 0 {
		return 0
	}
	c.accum += dt
	steps := 0
	for c.accum >= c.Step && steps < maxStepsPerFrame {
		tickers := append([]clockEntry(nil), c.tickers...)
		for _, e := range tickers {
			e.t.Tick(c.Step)
		}
		c.accum -= c.Step
		steps++
	}
	if steps == maxStepsPerFrame && c.accum >= c.Step {
		c.accum = 0
	}
	return steps
}
