package metrics

import "github.com/prometheus/client_golang/prometheus"

// Match sources for MatchComputations.
const (
	SourceComputed = "computed"
	SourceMemo     = "memo"
	SourceCache    = "cache"
)

type Metrics struct {
	MatchComputations *prometheus.CounterVec
	MatchDuration     prometheus.Histogram
	MatchCandidates   prometheus.Histogram
	Assignments       *prometheus.CounterVec
	RosterRefreshes   *prometheus.CounterVec
	RosterEmployees   prometheus.Gauge
}

// New registers the Optiwork collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MatchComputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "optiwork",
			Name:      "match_computations_total",
			Help:      "Ranked match sets served, by where they came from.",
		}, []string{"source"}),
		MatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "optiwork",
			Name:      "match_duration_seconds",
			Help:      "Time spent scoring a roster against one requirement.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		MatchCandidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "optiwork",
			Name:      "match_candidates",
			Help:      "Number of employees ranked per computation.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		}),
		Assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "optiwork",
			Name:      "assignments_total",
			Help:      "Assignment attempts by result.",
		}, []string{"result"}),
		RosterRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "optiwork",
			Name:      "roster_refresh_total",
			Help:      "Roster snapshot refreshes by result.",
		}, []string{"result"}),
		RosterEmployees: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "optiwork",
			Name:      "roster_employees",
			Help:      "Employees in the current roster snapshot.",
		}),
	}
	reg.MustRegister(
		m.MatchComputations,
		m.MatchDuration,
		m.MatchCandidates,
		m.Assignments,
		m.RosterRefreshes,
		m.RosterEmployees,
	)
	return m
}

// Noop returns collectors registered nowhere, for tools and tests that don't export metrics.
func Noop() *Metrics {
	return New(prometheus.NewRegistry())
}
