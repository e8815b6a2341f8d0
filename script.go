package bstview

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Value  int    `json:"value,omitempty"`
	Values []int  `json:"values,omitempty"`
	Ms     int    `json:"ms,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"insert":          true,
	"remove":          true,
	"find":            true,
	"clear":           true,
	"balance":         true,
	"build":           true,
	"animate-find":    true,
	"animate-insert":  true,
	"animate-delete":  true,
	"animate-balance": true,
	"cancel":          true,
	"speed":           true,
	"wait":            true,
}

// ScriptRunner plays a scripted session against a Visualizer, one action per
// frame. It holds still while an animation is being replayed, so a script can
// queue animated operations back to back. Attach via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	// Found records the outcome of every "find" action in script order.
	Found []bool
}

// LoadScript parses a JSON script and returns a ScriptRunner ready to be
// attached to a Visualizer.
//
//	{"steps": [
//		{"action": "build", "values": [5, 3, 8]},
//		{"action": "speed", "ms": 200},
//		{"action": "animate-insert", "value": 6},
//		{"action": "wait", "frames": 10}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	if len(s.Steps) == 0 {
		return nil, errors.Wrap(ErrEmptyScript, "parse script")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, errors.Wrapf(ErrUnknownAction, "parse script: step %d: %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner. Its step method is called from
// Visualizer.Update before the clock advances. Pass nil to detach.
func (v *Visualizer) SetScriptRunner(runner *ScriptRunner) {
	v.script = runner
}

// Done reports whether every step of the script has been executed and no
// animation started by it is still running.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Visualizer.Update.
func (r *ScriptRunner) step(v *Visualizer) {
	if r.done {
		return
	}
	// Wait for the animation in progress to drain before advancing.
	if v.Animating() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "insert":
		v.Insert(st.Value)
	case "remove":
		v.Remove(st.Value)
	case "find":
		_, ok := v.Find(st.Value)
		r.Found = append(r.Found, ok)
	case "clear":
		v.Clear()
	case "balance":
		v.Balance()
	case "build":
		v.Build(st.Values)
	case "animate-find":
		v.AnimateFind(st.Value)
	case "animate-insert":
		v.AnimateInsert(st.Value)
	case "animate-delete":
		v.AnimateDelete(st.Value)
	case "animate-balance":
		v.AnimateBalance()
	case "cancel":
		v.Cancel()
	case "speed":
		v.SetSpeed(time.Duration(st.Ms) * time.Millisecond)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && !v.Animating() {
		r.done = true
	}
}
