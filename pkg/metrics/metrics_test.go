package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(bookingRequests.WithLabelValues(OutcomeAlreadyBooked))
	IncBookingRequest(OutcomeAlreadyBooked)
	assert.Equal(t, before+1, testutil.ToFloat64(bookingRequests.WithLabelValues(OutcomeAlreadyBooked)))

	paid := testutil.ToFloat64(paymentsConfirmed)
	revenue := testutil.ToFloat64(revenueConfirmed)
	ObservePaymentConfirmed(40)
	assert.Equal(t, paid+1, testutil.ToFloat64(paymentsConfirmed))
	assert.Equal(t, revenue+40, testutil.ToFloat64(revenueConfirmed))

	releases := testutil.ToFloat64(slotReleases)
	IncSlotRelease()
	assert.Equal(t, releases+1, testutil.ToFloat64(slotReleases))
}
