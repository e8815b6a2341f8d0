package bstview

// OpKind identifies a tree operation. It labels change notifications, pending
// mutations and metrics.
type OpKind uint8

const (
	OpNone    OpKind = iota // no operation (an animation that commits nothing)
	OpFind                  // read-only search
	OpInsert                // insert a value
	OpRemove                // delete a value
	OpClear                 // drop every node
	OpBalance               // rebuild from the sorted snapshot
	OpBuild                 // clear, then insert a batch of values
)

var opNames = [...]string{
	OpNone:    "none",
	OpFind:    "find",
	OpInsert:  "insert",
	OpRemove:  "remove",
	OpClear:   "clear",
	OpBalance: "balance",
	OpBuild:   "build",
}

// String returns the lowercase name of the operation.
func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// ChangeEvent describes a structural mutation of a Tree. Value is the operand
// for OpInsert and OpRemove and zero otherwise.
type ChangeEvent struct {
	Op    OpKind
	Value int
}

// EventType identifies a kind of notification dispatched by a Visualizer.
type EventType uint8

const (
	EventTreeChanged       EventType = iota // the tree was mutated; redraw
	EventStep                               // one animation step was delivered
	EventHighlightNode                      // a single node should be highlighted
	EventHighlightPath                      // a root-to-node path should be highlighted
	EventHighlightsCleared                  // all transient highlight state was dropped
	EventFinished                           // an animation completed and its mutation was applied
	EventCancelled                          // an animation was aborted before completion
)

// StepEvent carries one delivered animation step.
type StepEvent struct {
	Op    OpKind
	Index int // zero-based position of Step within the animation
	Total int // number of steps in the animation
	Step  Step
}
