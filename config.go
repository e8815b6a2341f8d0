package bstview

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultInterval is the time each animation step stays on screen.
	DefaultInterval = time.Second
	// MinInterval and MaxInterval bound the replay interval.
	MinInterval = 100 * time.Millisecond
	MaxInterval = 2 * time.Second
)

// Config configures a Visualizer. The zero value is usable: New fills in
// defaults for every unset field.
type Config struct {
	// Interval is the replay interval per animation step.
	Interval time.Duration

	// Debug enables invariant checks after every mutation. See
	// Visualizer.SetDebugMode.
	Debug bool

	// Logger receives lifecycle and debug-mode messages. Defaults to the
	// logrus standard logger with a "pkg" field.
	Logger logrus.FieldLogger

	// Metrics, when non-nil, is updated on every mutation and animation.
	Metrics *Metrics

	// Clock paces replay. Defaults to a FrameClock advanced by
	// Visualizer.Update.
	Clock Clock
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{
		Interval: DefaultInterval,
		Logger:   logrus.WithField("pkg", "bstview"),
		Clock:    NewFrameClock(),
	}
}

// Validate reports configuration errors. Unset fields are not errors.
func (c Config) Validate() error {
	if c.Interval == 0 {
		return nil
	}
	if c.Interval < MinInterval || c.Interval > MaxInterval {
		return errors.Wrapf(ErrInvalidInterval, "interval %s outside [%s, %s]",
			c.Interval, MinInterval, MaxInterval)
	}
	return nil
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Interval == 0 {
		c.Interval = d.Interval
	}
	if c.Logger == nil {
		c.Logger = d.Logger
	}
	if c.Clock == nil {
		c.Clock = d.Clock
	}
	return c
}

// clampInterval limits d to [MinInterval, MaxInterval].
func clampInterval(d time.Duration) time.Duration {
	switch {
	case d < MinInterval:
		return MinInterval
	case d > MaxInterval:
		return MaxInterval
	}
	return d
}
