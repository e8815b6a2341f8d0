package bstview

import "fmt"

// Step is one replayable unit of an animation. Steps are immutable once an
// Animation has been prepared.
type Step struct {
	Description string
	Node        int  // highlighted value, meaningful only when Highlighted is set
	Highlighted bool // false means "no highlight"
	Path        []int
}

// Highlight returns the highlighted value and whether the step has one.
func (s Step) Highlight() (int, bool) {
	return s.Node, s.Highlighted
}

// String formats the step for logs and golden files.
func (s Step) String() string {
	hl := "none"
	if s.Highlighted {
		hl = fmt.Sprint(s.Node)
	}
	if len(s.Path) == 0 {
		return fmt.Sprintf("%s [highlight=%s]", s.Description, hl)
	}
	return fmt.Sprintf("%s [highlight=%s path=%v]", s.Description, hl, s.Path)
}

// Animation is a fully materialized step list plus the mutation to apply once
// every step has been replayed.
type Animation struct {
	Op    OpKind
	Value int
	Steps []Step

	mutates bool
}

// Mutates reports whether committing the animation changes the tree. It is
// false for find animations and for the single-step "nothing to do" cases.
func (a *Animation) Mutates() bool {
	return a.mutates
}

// Len returns the number of steps.
func (a *Animation) Len() int {
	return len(a.Steps)
}

// stepRecorder accumulates steps and the growing root-to-node path.
type stepRecorder struct {
	steps []Step
	path  []int
}

func (r *stepRecorder) note(format string, args ...any) {
	r.steps = append(r.steps, Step{Description: fmt.Sprintf(format, args...)})
}

func (r *stepRecorder) highlight(value int, format string, args ...any) {
	r.steps = append(r.steps, Step{
		Description: fmt.Sprintf(format, args...),
		Node:        value,
		Highlighted: true,
	})
}

// visit extends the path with value and records a step carrying a copy of it.
func (r *stepRecorder) visit(value int, format string, args ...any) {
	r.path = append(r.path, value)
	r.steps = append(r.steps, Step{
		Description: fmt.Sprintf(format, args...),
		Node:        value,
		Highlighted: true,
		Path:        append([]int(nil), r.path...),
	})
}

// done discards the path and returns the recorded steps.
func (r *stepRecorder) done() []Step {
	r.path = nil
	return r.steps
}
