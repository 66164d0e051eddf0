package wire

import (
	"campus-parking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSlot(r chi.Router, slotHandler *adaptor.SlotHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/parking/status - every slot with its occupancy
	r.Get("/status", slotHandler.ListSlots)

	// GET /api/parking/slots/{slotId} - one slot
	r.Get("/slots/{slotId}", slotHandler.GetSlot)

	// ==================== ADMIN ROUTES ====================
	r.Route("/admin/slots", func(r chi.Router) {
		r.Post("/", slotHandler.CreateSlot)
		r.Put("/{slotId}", slotHandler.UpdateSlot)
		r.Delete("/{slotId}", slotHandler.DeleteSlot)
	})
}
