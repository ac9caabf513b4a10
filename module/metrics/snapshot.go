package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SnapshotCollector implements module.SnapshotMetrics on top of prometheus.
type SnapshotCollector struct {
	stateToDiskDuration  prometheus.Histogram
	stateWriteDuration   prometheus.Histogram
	unsignedStateWritten prometheus.Counter
}

// NewSnapshotCollector creates a new snapshot collector and registers its
// metrics with the given registerer.
func NewSnapshotCollector(registerer prometheus.Registerer) *SnapshotCollector {
	stateToDiskDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespaceState,
		Subsystem: subsystemSnapshot,
		Name:      "state_to_disk_duration_seconds",
		Help:      "total duration of one state save operation in seconds",
	})
	stateWriteDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespaceState,
		Subsystem: subsystemSnapshot,
		Name:      "state_write_duration_seconds",
		Help:      "duration of serializing and writing one state to disk in seconds",
	})
	unsignedStateWritten := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespaceState,
		Subsystem: subsystemSnapshot,
		Name:      "unsigned_states_written_total",
		Help:      "the number of states written to disk without a supermajority of signatures",
	})
	registerer.MustRegister(stateToDiskDuration, stateWriteDuration, unsignedStateWritten)

	return &SnapshotCollector{
		stateToDiskDuration:  stateToDiskDuration,
		stateWriteDuration:   stateWriteDuration,
		unsignedStateWritten: unsignedStateWritten,
	}
}

func (sc *SnapshotCollector) StateToDiskDuration(duration time.Duration) {
	sc.stateToDiskDuration.Observe(duration.Seconds())
}

func (sc *SnapshotCollector) StateWriteDuration(duration time.Duration) {
	sc.stateWriteDuration.Observe(duration.Seconds())
}

func (sc *SnapshotCollector) UnsignedStateWritten() {
	sc.unsignedStateWritten.Inc()
}
