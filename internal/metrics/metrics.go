// Package metrics exports Prometheus instrumentation for the deduction
// engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"svw.info/dedoku/internal/ports"
)

var (
	solvesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dedoku_solves_total",
		Help: "Solve requests driven to convergence.",
	})
	assignmentsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dedoku_forced_assignments_total",
		Help: "Forced assignments applied across all solves.",
	})
	solveRounds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dedoku_solve_rounds",
		Help:    "Deduction rounds needed to reach the fixpoint.",
		Buckets: prometheus.LinearBuckets(1, 2, 10),
	})
)

// Register installs the collectors on r.
func Register(r prometheus.Registerer) {
	r.MustRegister(solvesTotal, assignmentsTotal, solveRounds)
}

// ObserveSolve records one converged solve.
func ObserveSolve(st ports.Stats) {
	solvesTotal.Inc()
	assignmentsTotal.Add(float64(st.Assignments))
	solveRounds.Observe(float64(st.Rounds))
}
