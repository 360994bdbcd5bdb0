package inet

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics reports reduction activity to prometheus. A nil *Metrics reports
// nothing.
type Metrics struct {
	rules   [numRules]prometheus.Counter
	faults  *prometheus.CounterVec
	passes  prometheus.Counter
	allocs  prometheus.Counter
	frees   prometheus.Counter
	pending prometheus.Gauge
}

// NewMetrics creates and registers reduction metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	rewrites := factory.NewCounterVec(prometheus.CounterOpts{
		Name: "inet_rewrites_total",
		Help: "Interaction rules applied, by rule",
	}, []string{"rule"})

	var m Metrics
	for rule := Rule(0); rule < numRules; rule++ {
		m.rules[rule] = rewrites.WithLabelValues(rule.String())
	}
	m.faults = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "inet_faults_total",
		Help: "Faults raised while rewriting, by kind",
	}, []string{"kind"})
	m.passes = factory.NewCounter(prometheus.CounterOpts{
		Name: "inet_passes_total",
		Help: "Worklist snapshots drained",
	})
	m.allocs = factory.NewCounter(prometheus.CounterOpts{
		Name: "inet_node_allocs_total",
		Help: "Nodes allocated, fresh or reused",
	})
	m.frees = factory.NewCounter(prometheus.CounterOpts{
		Name: "inet_node_frees_total",
		Help: "Nodes returned to the free list",
	})
	m.pending = factory.NewGauge(prometheus.GaugeOpts{
		Name: "inet_redex_high_water",
		Help: "Largest worklist length seen by the last reduction",
	})
	return &m
}

func (m *Metrics) rewrite(rule Rule) {
	if m != nil {
		m.rules[rule].Inc()
	}
}

func (m *Metrics) fault(f *Fault) {
	if m != nil {
		m.faults.WithLabelValues(f.Kind.Error()).Inc()
	}
}

func (m *Metrics) pass(maxPending int) {
	if m != nil {
		m.passes.Inc()
		m.pending.Set(float64(maxPending))
	}
}

func (m *Metrics) alloc() {
	if m != nil {
		m.allocs.Inc()
	}
}

func (m *Metrics) free() {
	if m != nil {
		m.frees.Inc()
	}
}
