package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewSnapshotCollector(registry)

	collector.StateToDiskDuration(2 * time.Second)
	collector.StateWriteDuration(time.Second)
	collector.UnsignedStateWritten()
	collector.UnsignedStateWritten()

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.unsignedStateWritten))

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
}
