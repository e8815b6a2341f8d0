package bstview

import (
	"time"

	"github.com/sirupsen/logrus"
)

// player replays a prepared animation one step per clock tick and commits the
// pending mutation once every step has been shown.
type player struct {
	seq      *Sequencer
	clock    Clock
	events   *handlerRegistry
	metrics  *Metrics
	log      logrus.FieldLogger
	interval time.Duration

	anim   *Animation
	cursor int

	// Transient highlight state, reset on completion and cancel.
	highlight    int
	hasHighlight bool
	path         []int
}

// animating reports whether an animation is in progress.
func (p *player) animating() bool {
	return p.anim != nil
}

// play cancels any animation in progress, then schedules a for replay. The
// first step is delivered on the first tick.
func (p *player) play(a *Animation) {
	p.cancel()
	p.anim = a
	p.cursor = 0
	p.metrics.animationStarted(a.Op)
	p.log.WithFields(logrus.Fields{"op": a.Op, "value": a.Value, "steps": len(a.Steps)}).
		Debug("animation started")
	p.clock.Start(p.interval, p.tick)
}

// tick delivers the next step, or finishes the animation when every step has
// already been delivered.
func (p *player) tick() {
	a := p.anim
	if a == nil {
		return
	}
	if p.cursor >= len(a.Steps) {
		p.finish()
		return
	}

	st := a.Steps[p.cursor]
	idx := p.cursor
	p.cursor++
	p.metrics.stepDelivered()

	p.events.emitStep(StepEvent{Op: a.Op, Index: idx, Total: len(a.Steps), Step: st})
	p.path = st.Path
	if len(st.Path) > 0 {
		p.events.emitHighlightPath(st.Path)
	}
	if st.Highlighted {
		p.highlight, p.hasHighlight = st.Node, true
		p.events.emitHighlightNode(st.Node)
	} else {
		p.highlight, p.hasHighlight = 0, false
		p.events.emitHighlightsCleared()
	}
}

func (p *player) finish() {
	a := p.anim
	p.clock.Stop()
	p.anim = nil
	p.cursor = 0
	p.clearHighlights()

	// The sequencer only holds a if no other Prepare call replaced it.
	if p.seq.Pending() == a {
		p.seq.Commit()
	}
	p.metrics.animationFinished(a.Op)
	p.log.WithFields(logrus.Fields{"op": a.Op, "value": a.Value}).Debug("animation finished")
	p.events.emitFinished(a)
}

// cancel aborts the animation in progress without mutating the tree. It
// reports whether there was anything to cancel.
func (p *player) cancel() bool {
	a := p.anim
	if a == nil {
		return false
	}
	p.clock.Stop()
	p.anim = nil
	p.cursor = 0
	if p.seq.Pending() == a {
		p.seq.Discard()
	}
	p.clearHighlights()
	p.metrics.animationCancelled(a.Op)
	p.log.WithFields(logrus.Fields{"op": a.Op, "value": a.Value}).Debug("animation cancelled")
	p.events.emitCancelled(a)
	return true
}

func (p *player) clearHighlights() {
	p.highlight, p.hasHighlight = 0, false
	p.path = nil
	p.events.emitHighlightsCleared()
}

// setInterval changes the replay interval from the next scheduled tick on.
func (p *player) setInterval(d time.Duration) {
	p.interval = d
	p.clock.Reschedule(d)
}
