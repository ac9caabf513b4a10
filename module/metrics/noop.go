package metrics

import "time"

type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) StateToDiskDuration(duration time.Duration) {}
func (nc *NoopCollector) StateWriteDuration(duration time.Duration)  {}
func (nc *NoopCollector) UnsignedStateWritten()                      {}
