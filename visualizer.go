package bstview

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

// Visualizer is the top-level object a renderer talks to. It owns the tree,
// the sequencer that prepares animations for it, the replay state, and the
// callback registry.
//
// A Visualizer is single-threaded: call every method from the goroutine that
// drives the clock (the game loop for a FrameClock, the goroutine in
// TimedClock.Run otherwise).
type Visualizer struct {
	tree     *Tree
	seq      *Sequencer
	player   player
	handlers handlerRegistry
	log      logrus.FieldLogger
	metrics  *Metrics
	debug    bool

	script *ScriptRunner
}

// New creates a Visualizer with an empty tree.
func New(cfg Config) (*Visualizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	tree := NewTree()
	v := &Visualizer{
		tree:    tree,
		seq:     NewSequencer(tree),
		log:     cfg.Logger,
		metrics: cfg.Metrics,
		debug:   cfg.Debug,
	}
	v.player = player{
		seq:      v.seq,
		clock:    cfg.Clock,
		events:   &v.handlers,
		metrics:  cfg.Metrics,
		log:      cfg.Logger,
		interval: cfg.Interval,
	}
	tree.OnChange = v.treeChanged
	return v, nil
}

func (v *Visualizer) treeChanged(e ChangeEvent) {
	v.metrics.mutation(e.Op, v.tree)
	v.log.WithFields(logrus.Fields{"op": e.Op, "value": e.Value, "nodes": v.tree.Len()}).
		Debug("tree changed")
	if v.debug {
		debugCheckTree(v.log, v.tree, e)
	}
	v.handlers.emitTreeChanged(e)
}

// Tree returns the underlying tree for read-only rendering.
func (v *Visualizer) Tree() *Tree {
	return v.tree
}

// Sequencer returns the sequencer used for animated operations.
func (v *Visualizer) Sequencer() *Sequencer {
	return v.seq
}

// SetDebugMode enables or disables debug mode. When enabled, every mutation
// is followed by an invariant check, and warnings are logged for violations
// and for trees taller than 32 levels.
func (v *Visualizer) SetDebugMode(enabled bool) {
	v.debug = enabled
}

// --- Direct operations ---

// Insert adds value immediately. See Tree.Insert.
func (v *Visualizer) Insert(value int) bool {
	return v.tree.Insert(value)
}

// Remove deletes value immediately. See Tree.Remove.
func (v *Visualizer) Remove(value int) bool {
	return v.tree.Remove(value)
}

// Clear drops every node.
func (v *Visualizer) Clear() {
	v.tree.Clear()
}

// Balance rebuilds the tree from its sorted values.
func (v *Visualizer) Balance() {
	v.tree.Balance()
}

// Build replaces the tree with values inserted in order.
func (v *Visualizer) Build(values []int) {
	v.tree.Build(values)
}

// RandomTree replaces the tree with count distinct random values drawn from
// rng and returns them in insertion order.
func (v *Visualizer) RandomTree(rng *rand.Rand, count int) ([]int, error) {
	values, err := RandomValues(rng, count)
	if err != nil {
		return nil, err
	}
	v.tree.Build(values)
	return values, nil
}

// Find returns the depth of value and whether it is present.
func (v *Visualizer) Find(value int) (depth int, found bool) {
	return v.tree.Find(value)
}

// Height returns the tree height.
func (v *Visualizer) Height() int {
	return v.tree.Height()
}

// IsEmpty reports whether the tree has no nodes.
func (v *Visualizer) IsEmpty() bool {
	return v.tree.IsEmpty()
}

// Describe returns the ordered value(depth) listing.
func (v *Visualizer) Describe() string {
	return v.tree.Describe()
}

// --- Animated operations ---

// AnimateFind prepares a find animation and starts replaying it, cancelling
// any animation in progress.
func (v *Visualizer) AnimateFind(value int) *Animation {
	return v.animate(func() *Animation { return v.seq.PrepareFind(value) })
}

// AnimateInsert prepares an insert animation and starts replaying it. The
// value is inserted after the last step has been replayed.
func (v *Visualizer) AnimateInsert(value int) *Animation {
	return v.animate(func() *Animation { return v.seq.PrepareInsert(value) })
}

// AnimateDelete prepares a delete animation and starts replaying it. The
// value is removed after the last step has been replayed.
func (v *Visualizer) AnimateDelete(value int) *Animation {
	return v.animate(func() *Animation { return v.seq.PrepareDelete(value) })
}

// AnimateBalance prepares a balance animation and starts replaying it. The
// tree is rebuilt after the last step has been replayed.
func (v *Visualizer) AnimateBalance() *Animation {
	return v.animate(v.seq.PrepareBalance)
}

// animate flushes the current animation before preparing the next one, so
// the new step list is computed against a tree no pending mutation will touch.
func (v *Visualizer) animate(prepare func() *Animation) *Animation {
	v.player.cancel()
	a := prepare()
	v.player.play(a)
	return a
}

// Cancel aborts the animation in progress. The tree is left unmutated and
// highlight state is cleared. Reports whether an animation was running.
func (v *Visualizer) Cancel() bool {
	return v.player.cancel()
}

// Animating reports whether an animation is being replayed. Callers should
// not issue direct mutations while it is true.
func (v *Visualizer) Animating() bool {
	return v.player.animating()
}

// Current returns the animation being replayed, or nil.
func (v *Visualizer) Current() *Animation {
	return v.player.anim
}

// SetSpeed sets the replay interval per step, clamped to
// [MinInterval, MaxInterval]. It takes effect from the next scheduled tick.
func (v *Visualizer) SetSpeed(d time.Duration) {
	v.player.setInterval(clampInterval(d))
}

// Speed returns the replay interval per step.
func (v *Visualizer) Speed() time.Duration {
	return v.player.interval
}

// Highlighted returns the value highlighted by the last delivered step.
func (v *Visualizer) Highlighted() (int, bool) {
	return v.player.highlight, v.player.hasHighlight
}

// Path returns the search path carried by the last delivered step, or nil.
// The slice MUST NOT be mutated.
func (v *Visualizer) Path() []int {
	return v.player.path
}

// Progress returns how far the current step interval has elapsed, in [0, 1],
// when the clock is a FrameClock; otherwise 0.
func (v *Visualizer) Progress() float64 {
	if fc, ok := v.player.clock.(*FrameClock); ok {
		return fc.Progress()
	}
	return 0
}

// Update advances one frame: the attached script runner acts first, then a
// FrameClock is advanced by dt seconds. With any other clock only the script
// runner is stepped.
func (v *Visualizer) Update(dt float32) {
	if v.script != nil {
		v.script.step(v)
	}
	if fc, ok := v.player.clock.(*FrameClock); ok {
		fc.Update(dt)
	}
}
