package bstview

// --- Handler registry ---

type changeHandler struct {
	id uint32
	fn func(ChangeEvent)
}

type stepHandler struct {
	id uint32
	fn func(StepEvent)
}

type valueHandler struct {
	id uint32
	fn func(int)
}

type pathHandler struct {
	id uint32
	fn func([]int)
}

type animationHandler struct {
	id uint32
	fn func(*Animation)
}

type signalHandler struct {
	id uint32
	fn func()
}

type handlerRegistry struct {
	treeChanged       []changeHandler
	step              []stepHandler
	highlightNode     []valueHandler
	highlightPath     []pathHandler
	highlightsCleared []signalHandler
	finished          []animationHandler
	cancelled         []animationHandler
	nextID            uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice is
// harmless.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventTreeChanged:
		h.reg.treeChanged = removeHandler(h.reg.treeChanged, h.id, func(x changeHandler) uint32 { return x.id })
	case EventStep:
		h.reg.step = removeHandler(h.reg.step, h.id, func(x stepHandler) uint32 { return x.id })
	case EventHighlightNode:
		h.reg.highlightNode = removeHandler(h.reg.highlightNode, h.id, func(x valueHandler) uint32 { return x.id })
	case EventHighlightPath:
		h.reg.highlightPath = removeHandler(h.reg.highlightPath, h.id, func(x pathHandler) uint32 { return x.id })
	case EventHighlightsCleared:
		h.reg.highlightsCleared = removeHandler(h.reg.highlightsCleared, h.id, func(x signalHandler) uint32 { return x.id })
	case EventFinished:
		h.reg.finished = removeHandler(h.reg.finished, h.id, func(x animationHandler) uint32 { return x.id })
	case EventCancelled:
		h.reg.cancelled = removeHandler(h.reg.cancelled, h.id, func(x animationHandler) uint32 { return x.id })
	}
}

// removeHandler deletes the entry with the given id, zeroing the vacated slot
// so the backing array does not retain the closure.
func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			copy(s[i:], s[i+1:])
			var zero T
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType) CallbackHandle {
	r.nextID++
	return CallbackHandle{id: r.nextID, reg: r, event: event}
}

// --- Dispatch ---

func (r *handlerRegistry) emitTreeChanged(e ChangeEvent) {
	for _, h := range r.treeChanged {
		h.fn(e)
	}
}

func (r *handlerRegistry) emitStep(e StepEvent) {
	for _, h := range r.step {
		h.fn(e)
	}
}

func (r *handlerRegistry) emitHighlightNode(v int) {
	for _, h := range r.highlightNode {
		h.fn(v)
	}
}

func (r *handlerRegistry) emitHighlightPath(path []int) {
	for _, h := range r.highlightPath {
		h.fn(path)
	}
}

func (r *handlerRegistry) emitHighlightsCleared() {
	for _, h := range r.highlightsCleared {
		h.fn()
	}
}

func (r *handlerRegistry) emitFinished(a *Animation) {
	for _, h := range r.finished {
		h.fn(a)
	}
}

func (r *handlerRegistry) emitCancelled(a *Animation) {
	for _, h := range r.cancelled {
		h.fn(a)
	}
}

// --- Visualizer-level registration ---

// OnTreeChanged registers fn to run after every structural mutation.
func (v *Visualizer) OnTreeChanged(fn func(ChangeEvent)) CallbackHandle {
	h := v.handlers.add(EventTreeChanged)
	v.handlers.treeChanged = append(v.handlers.treeChanged, changeHandler{id: h.id, fn: fn})
	return h
}

// OnStep registers fn to run for every delivered animation step.
func (v *Visualizer) OnStep(fn func(StepEvent)) CallbackHandle {
	h := v.handlers.add(EventStep)
	v.handlers.step = append(v.handlers.step, stepHandler{id: h.id, fn: fn})
	return h
}

// OnHighlightNode registers fn to run when a step highlights a node.
func (v *Visualizer) OnHighlightNode(fn func(int)) CallbackHandle {
	h := v.handlers.add(EventHighlightNode)
	v.handlers.highlightNode = append(v.handlers.highlightNode, valueHandler{id: h.id, fn: fn})
	return h
}

// OnHighlightPath registers fn to run when a step carries a search path. The
// slice belongs to the step and MUST NOT be mutated.
func (v *Visualizer) OnHighlightPath(fn func([]int)) CallbackHandle {
	h := v.handlers.add(EventHighlightPath)
	v.handlers.highlightPath = append(v.handlers.highlightPath, pathHandler{id: h.id, fn: fn})
	return h
}

// OnHighlightsCleared registers fn to run whenever transient highlight state
// is dropped: on steps without a highlight, on completion and on cancel.
func (v *Visualizer) OnHighlightsCleared(fn func()) CallbackHandle {
	h := v.handlers.add(EventHighlightsCleared)
	v.handlers.highlightsCleared = append(v.handlers.highlightsCleared, signalHandler{id: h.id, fn: fn})
	return h
}

// OnFinished registers fn to run after an animation completed naturally and
// its pending mutation was applied.
func (v *Visualizer) OnFinished(fn func(*Animation)) CallbackHandle {
	h := v.handlers.add(EventFinished)
	v.handlers.finished = append(v.handlers.finished, animationHandler{id: h.id, fn: fn})
	return h
}

// OnCancelled registers fn to run when an animation is aborted, either by
// Cancel or by starting another animation.
func (v *Visualizer) OnCancelled(fn func(*Animation)) CallbackHandle {
	h := v.handlers.add(EventCancelled)
	v.handlers.cancelled = append(v.handlers.cancelled, animationHandler{id: h.id, fn: fn})
	return h
}
