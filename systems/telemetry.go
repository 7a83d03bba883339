package systems

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics with bounded cardinality: behavior and stage names are fixed sets.
var (
	stageTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "behavior_stage_transitions_total",
		Help: "Behavior stage transitions",
	}, []string{"behavior", "stage"})

	behaviorHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "behavior_hits_total",
		Help: "Hits recorded by attacking behaviors",
	}, []string{"behavior"})

	systemSkips = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "system_skips_total",
		Help: "System invocations skipped for a tick",
	}, []string{"reason"})

	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "simulation_tick_duration_seconds",
		Help:    "Time spent in one simulation tick",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025},
	})
)

func recordStage(behavior string, stage fmt.Stringer) {
	stageTransitions.WithLabelValues(behavior, stage.String()).Inc()
}

func recordHit(behavior string) {
	behaviorHits.WithLabelValues(behavior).Inc()
}

// ObserveTick records how long one pass of the pipeline took.
func ObserveTick(d time.Duration) {
	tickDuration.Observe(d.Seconds())
}
