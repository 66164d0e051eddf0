package wire

import (
	"campus-parking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/parking/book/{slotId} - open a booking and get the payment redirect
	r.Post("/book/{slotId}", bookingHandler.BookSlot)

	// PUT /api/parking/confirm-payment/{txnId} - gateway callback
	r.Put("/confirm-payment/{txnId}", bookingHandler.ConfirmPayment)

	// PUT /api/parking/admin/release/{slotId} - free an occupied slot
	r.Put("/admin/release/{slotId}", bookingHandler.ReleaseSlot)
}
