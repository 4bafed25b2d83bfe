package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveGateway(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveGateway("select", "offices", nil, time.Millisecond)
	m.ObserveGateway("select", "offices", errors.New("boom"), time.Millisecond)
	m.ObserveGateway("select", "offices", nil, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GatewayRequestsTotal.WithLabelValues("select", "offices", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GatewayRequestsTotal.WithLabelValues("select", "offices", "error")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/x", 200, time.Second)
		m.IncBookingsCreated("dept-1", 3)
		m.IncReportLoad("history", false)
	})
}

func TestMetrics_IncBookingsCreated(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())
	m.IncBookingsCreated("dept-3", 3)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.BookingsCreatedTotal.WithLabelValues("dept-3")))
}
