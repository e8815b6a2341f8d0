package bstview

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors updated by a Visualizer. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	Mutations           *prometheus.CounterVec
	AnimationsStarted   *prometheus.CounterVec
	AnimationsFinished  *prometheus.CounterVec
	AnimationsCancelled *prometheus.CounterVec
	Steps               prometheus.Counter
	Nodes               prometheus.Gauge
	Height              prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bstview",
			Name:      "mutations_total",
			Help:      "Structural tree mutations by operation.",
		}, []string{"op"}),
		AnimationsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bstview",
			Name:      "animations_started_total",
			Help:      "Animations handed to the replay clock.",
		}, []string{"op"}),
		AnimationsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bstview",
			Name:      "animations_finished_total",
			Help:      "Animations replayed to completion.",
		}, []string{"op"}),
		AnimationsCancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bstview",
			Name:      "animations_cancelled_total",
			Help:      "Animations aborted before completion.",
		}, []string{"op"}),
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bstview",
			Name:      "animation_steps_total",
			Help:      "Animation steps delivered to observers.",
		}),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bstview",
			Name:      "tree_nodes",
			Help:      "Number of nodes in the tree.",
		}),
		Height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bstview",
			Name:      "tree_height",
			Help:      "Height of the tree.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.Mutations,
			m.AnimationsStarted,
			m.AnimationsFinished,
			m.AnimationsCancelled,
			m.Steps,
			m.Nodes,
			m.Height,
		)
	}
	return m
}

func (m *Metrics) mutation(op OpKind, t *Tree) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(op.String()).Inc()
	m.Nodes.Set(float64(t.Len()))
	m.Height.Set(float64(t.Height()))
}

func (m *Metrics) animationStarted(op OpKind) {
	if m == nil {
		return
	}
	m.AnimationsStarted.WithLabelValues(op.String()).Inc()
}

func (m *Metrics) animationFinished(op OpKind) {
	if m == nil {
		return
	}
	m.AnimationsFinished.WithLabelValues(op.String()).Inc()
}

func (m *Metrics) animationCancelled(op OpKind) {
	if m == nil {
		return
	}
	m.AnimationsCancelled.WithLabelValues(op.String()).Inc()
}

func (m *Metrics) stepDelivered() {
	if m == nil {
		return
	}
	m.Steps.Inc()
}
