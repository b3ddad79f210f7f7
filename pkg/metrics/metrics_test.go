package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBusinessCounters(t *testing.T) {
	m := NewWithRegisterer("frontdesk-test", prometheus.NewRegistry())

	m.IncGuestRegistered("room")
	m.IncGuestRegistered("room")
	m.IncConflict("unit_unavailable")
	m.IncOccupancyResolve(true)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.GuestsRegisteredTotal.WithLabelValues("room")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GuestsConflictsTotal.WithLabelValues("unit_unavailable")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.OccupancyResolvesTotal.WithLabelValues("true")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncGuestRegistered("room")
		m.IncConflict("document_taken")
		m.IncOccupancyResolve(false)
	})
}
