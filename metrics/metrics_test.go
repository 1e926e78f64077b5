package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(bookingsCreated)
	IncBookingCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(bookingsCreated))

	failed := testutil.ToFloat64(notifications.WithLabelValues(NotificationFailed))
	ObserveNotification(NotificationFailed)
	assert.Equal(t, failed+1, testutil.ToFloat64(notifications.WithLabelValues(NotificationFailed)))
}
