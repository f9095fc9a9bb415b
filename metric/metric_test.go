package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Register(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	// Double registration is rejected by the registry.
	assert.Error(t, m.Register(reg))
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, m.Register(reg))

	m.TriplesWritten.WithLabelValues("schema").Inc()
	m.TriplesWritten.WithLabelValues("schema").Inc()
	m.TriplesWritten.WithLabelValues("instance").Inc()
	m.SchemasMapped.Inc()
	m.InstancesMapped.WithLabelValues("entity").Inc()
	m.ValuesSkipped.WithLabelValues("invalid_guid").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TriplesWritten.WithLabelValues("schema")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TriplesWritten.WithLabelValues("instance")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SchemasMapped))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InstancesMapped.WithLabelValues("entity")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValuesSkipped.WithLabelValues("invalid_guid")))
}
