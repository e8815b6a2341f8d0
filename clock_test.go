package bstview

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestFrameClockTicksOncePerInterval(t *testing.T) {
	c := NewFrameClock()
	ticks := 0
	c.Start(time.Second, func() { ticks++ })

	c.Update(0.5)
	if ticks != 0 {
		t.Fatalf("ticks = %d after half an interval, want 0", ticks)
	}
	if p := c.Progress(); p < 0.49 || p > 0.51 {
		t.Errorf("Progress() = %f, want ~0.5", p)
	}
	c.Update(0.5)
	if ticks != 1 {
		t.Fatalf("ticks = %d, want 1", ticks)
	}
	if c.Progress() != 0 {
		t.Errorf("Progress() = %f after tick, want 0", c.Progress())
	}
	// A long frame still fires a single tick.
	c.Update(10)
	if ticks != 2 {
		t.Errorf("ticks = %d after long frame, want 2", ticks)
	}
}

func TestFrameClockStop(t *testing.T) {
	c := NewFrameClock()
	ticks := 0
	c.Start(time.Second, func() {
		ticks++
		if ticks == 2 {
			c.Stop()
		}
	})
	for i := 0; i < 5; i++ {
		c.Update(1)
	}
	if ticks != 2 {
		t.Errorf("ticks = %d, want 2", ticks)
	}
	if c.Running() {
		t.Error("Running() should be false after Stop")
	}
	// Updating a stopped clock is a no-op.
	c.Update(1)
	if ticks != 2 {
		t.Errorf("ticks = %d after Update on stopped clock, want 2", ticks)
	}
}

func TestFrameClockNeverUpdatedNeverTicks(t *testing.T) {
	c := NewFrameClock()
	c.Start(MinInterval, func() { t.Fatal("unexpected tick") })
	time.Sleep(2 * MinInterval)
	if !c.Running() {
		t.Error("Running() should be true")
	}
}

func TestFrameClockReschedule(t *testing.T) {
	c := NewFrameClock()
	ticks := 0
	c.Start(time.Second, func() { ticks++ })

	// The current interval keeps its duration.
	c.Reschedule(500 * time.Millisecond)
	c.Update(0.5)
	if ticks != 0 {
		t.Fatalf("ticks = %d, want 0", ticks)
	}
	c.Update(0.5)
	if ticks != 1 {
		t.Fatalf("ticks = %d, want 1", ticks)
	}
	// Subsequent intervals use the new one.
	c.Update(0.5)
	if ticks != 2 {
		t.Errorf("ticks = %d, want 2", ticks)
	}
}

func TestFrameClockRestartFromTick(t *testing.T) {
	c := NewFrameClock()
	var got []string
	c.Start(time.Second, func() {
		got = append(got, "first")
		c.Start(time.Second, func() { got = append(got, "second") })
	})
	c.Update(1)
	c.Update(1)
	c.Update(1)
	want := []string{"first", "second", "second"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFrameClockEase(t *testing.T) {
	c := NewFrameClock()
	c.Ease = ease.InQuad
	c.Start(time.Second, func() {})
	c.Update(0.5)
	if p := c.Progress(); p < 0.24 || p > 0.26 {
		t.Errorf("Progress() = %f with InQuad, want ~0.25", p)
	}
}

func TestTimedClockRun(t *testing.T) {
	c := NewTimedClock()
	ticks := 0
	c.Start(10*time.Millisecond, func() {
		ticks++
		if ticks == 3 {
			c.Stop()
		}
	})

	done := make(chan struct{})
	go func() {
		c.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}
	if c.Running() {
		t.Error("Running() should be false")
	}
}

func TestTimedClockRunWhenStopped(t *testing.T) {
	c := NewTimedClock()
	done := make(chan struct{})
	go func() {
		c.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return immediately when never started")
	}
}

func TestTimedClockRescheduleFromTick(t *testing.T) {
	c := NewTimedClock()
	ticks := 0
	var stamps []time.Time
	c.Start(5*time.Millisecond, func() {
		ticks++
		stamps = append(stamps, time.Now())
		switch ticks {
		case 1:
			c.Reschedule(50 * time.Millisecond)
		case 3:
			c.Stop()
		}
	})

	done := make(chan struct{})
	go func() {
		c.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	if ticks != 3 {
		t.Fatalf("ticks = %d, want 3", ticks)
	}
	if gap := stamps[2].Sub(stamps[1]); gap < 40*time.Millisecond {
		t.Errorf("gap after reschedule = %s, want >= 40ms", gap)
	}
}
