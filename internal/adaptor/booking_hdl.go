package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"campus-parking/internal/dto/request"
	"campus-parking/internal/usecase"
	"campus-parking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// BookSlot handles POST /api/parking/book/{slotId}
func (h *BookingHandler) BookSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotId")

	var req request.BookSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.RequestBooking(r.Context(), slotID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "book slot", 0)
		return
	}

	utils.ResponseSuccess(w, "Payment initiated. Redirect to complete payment.", booking)
}

// ConfirmPayment handles PUT /api/parking/confirm-payment/{txnId}.
// An unknown transaction or slot is reported as 400 to the gateway callback.
func (h *BookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	txnID := chi.URLParam(r, "txnId")

	confirmation, err := h.service.ConfirmPayment(r.Context(), txnID)
	if err != nil {
		override := 0
		if errors.Is(err, usecase.ErrNotFound) {
			override = http.StatusBadRequest
		}
		writeServiceError(w, h.log, err, "confirm payment", override)
		return
	}

	utils.ResponseSuccess(w, "Payment confirmed. Slot "+confirmation.Slot.SlotID+" is now booked.", confirmation)
}

// ReleaseSlot handles PUT /api/parking/admin/release/{slotId}.
// Missing or free slots still answer 200; the message says what happened.
func (h *BookingHandler) ReleaseSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotId")

	result, err := h.service.ReleaseSlot(r.Context(), slotID)
	if err != nil {
		writeServiceError(w, h.log, err, "release slot", 0)
		return
	}

	utils.ResponseSuccess(w, result.Message, result)
}
