// Package bstview is the engine behind an interactive binary search tree
// teaching tool: a tree whose every operation can be previewed as a sequence
// of animation steps before it is applied.
//
// # Quick start
//
// The simplest way to get started is [New], which creates a [Visualizer] with
// an empty tree and a [FrameClock]:
//
//	v, err := bstview.New(bstview.Config{})
//	if err != nil { ... }
//	v.Build([]int{5, 3, 8, 1, 4, 7, 9})
//	v.OnStep(func(e bstview.StepEvent) { fmt.Println(e.Step.Description) })
//	v.AnimateInsert(6)
//
//	// once per frame, from the game loop:
//	v.Update(1.0 / 60)
//
// # Tree engine
//
// [Tree] is a plain binary search tree with unique int keys. Every node
// records its 1-based depth, relabelled from the root after each structural
// change. Balance is a full rebuild from the sorted values, not a rotation
// scheme. All walks are iterative, so degenerate trees built from sorted
// input do not grow the goroutine stack.
//
// # Animations
//
// A [Sequencer] walks the tree read-only and returns an [Animation]: an
// eagerly built list of [Step] values (description, optional highlighted
// node, optional root-to-node path) plus one pending mutation. The mutation
// is applied only after the last step has been replayed; cancelling an
// animation never touches the tree.
//
// Replay is paced by a [Clock]. [FrameClock] is advanced by the caller once
// per frame (it is built on [gween] tweens, so it also reports an eased
// progress value for fading highlights). [TimedClock] paces replay with wall
// time for terminal front ends.
//
// # Notifications
//
// Renderers register callbacks on the Visualizer: [Visualizer.OnTreeChanged],
// [Visualizer.OnStep], [Visualizer.OnHighlightNode],
// [Visualizer.OnHighlightPath], [Visualizer.OnHighlightsCleared],
// [Visualizer.OnFinished] and [Visualizer.OnCancelled]. Each returns a
// [CallbackHandle] whose Remove method unregisters it.
//
// [gween]: https://github.com/tanema/gween
package bstview
