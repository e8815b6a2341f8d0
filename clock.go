package bstview

import (
	"time"

	"github.com/relistan/go-director"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clock paces animation replay. Start schedules tick to run once per interval
// until Stop is called. Reschedule changes the interval used from the next
// scheduled tick on; a tick that is already scheduled keeps its interval.
type Clock interface {
	Start(interval time.Duration, tick func())
	Reschedule(interval time.Duration)
	Stop()
	Running() bool
}

// FrameClock is a Clock advanced by the caller once per frame, the same way a
// TweenGroup is. Each interval is a gween tween running from 0 to 1; when it
// finishes the tick fires and the next tween starts.
//
// There is no goroutine and no wall-clock time: a FrameClock that is never
// updated never ticks.
type FrameClock struct {
	// Ease shapes Progress within each interval. Defaults to ease.Linear.
	Ease ease.TweenFunc

	tween    *gween.Tween
	tick     func()
	next     time.Duration
	progress float32
	running  bool
}

// NewFrameClock returns a stopped FrameClock.
func NewFrameClock() *FrameClock {
	return &FrameClock{Ease: ease.Linear}
}

// Start begins ticking every interval. Any previous schedule is replaced.
func (c *FrameClock) Start(interval time.Duration, tick func()) {
	c.next = interval
	c.tick = tick
	c.running = true
	c.progress = 0
	c.tween = c.newTween(interval)
}

// Reschedule sets the interval of every tween started after the current one.
func (c *FrameClock) Reschedule(interval time.Duration) {
	c.next = interval
}

// Stop cancels the schedule. The tick function is not called again.
func (c *FrameClock) Stop() {
	c.running = false
	c.tween = nil
	c.tick = nil
	c.progress = 0
}

// Running reports whether the clock is scheduled to tick.
func (c *FrameClock) Running() bool {
	return c.running
}

// Progress returns the eased fraction of the current interval that has
// elapsed, in [0, 1]. It is 0 while stopped.
func (c *FrameClock) Progress() float64 {
	return float64(c.progress)
}

// Update advances the clock by dt seconds. At most one tick fires per call.
func (c *FrameClock) Update(dt float32) {
	if !c.running {
		return
	}
	val, finished := c.tween.Update(dt)
	c.progress = val
	if !finished {
		return
	}
	// Arm the next interval before ticking; the tick may Stop or Start.
	tick := c.tick
	c.tween = c.newTween(c.next)
	c.progress = 0
	tick()
}

func (c *FrameClock) newTween(interval time.Duration) *gween.Tween {
	fn := c.Ease
	if fn == nil {
		fn = ease.Linear
	}
	return gween.New(0, 1, float32(interval.Seconds()), fn)
}

// TimedClock is a wall-clock Clock backed by a go-director TimedLooper. Ticks
// run on the goroutine that calls Run, which blocks until Stop is called from
// inside a tick (typically when the animation completes) or from elsewhere.
type TimedClock struct {
	interval time.Duration
	tick     func()
	running  bool
	restart  bool
	looper   *director.TimedLooper
}

// NewTimedClock returns a stopped TimedClock.
func NewTimedClock() *TimedClock {
	return &TimedClock{}
}

// Start records the schedule. Ticks are delivered by Run.
func (c *TimedClock) Start(interval time.Duration, tick func()) {
	c.interval = interval
	c.tick = tick
	c.running = true
	c.restart = c.looper != nil
}

// Reschedule changes the interval. A running looper finishes its current wait
// and is replaced by one using the new interval.
func (c *TimedClock) Reschedule(interval time.Duration) {
	if interval == c.interval {
		return
	}
	c.interval = interval
	c.restart = c.looper != nil
}

// Stop ends the schedule; Run returns after the current tick.
func (c *TimedClock) Stop() {
	c.running = false
	c.tick = nil
}

// Running reports whether the clock is scheduled to tick.
func (c *TimedClock) Running() bool {
	return c.running
}

// Run delivers ticks until the clock is stopped. It returns immediately when
// the clock was never started.
func (c *TimedClock) Run() {
	for c.running {
		c.restart = false
		looper := director.NewTimedLooper(director.FOREVER, c.interval, make(chan error, 2))
		c.looper = looper
		quit := false
		looper.Loop(func() error {
			if quit {
				return nil
			}
			if c.running && !c.restart {
				c.tick()
			}
			if !c.running || c.restart {
				quit = true
				looper.Quit()
			}
			return nil
		})
	}
	c.looper = nil
}
