package adaptor

import (
	"encoding/json"
	"net/http"

	"campus-parking/internal/dto/request"
	"campus-parking/internal/usecase"
	"campus-parking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SlotHandler struct {
	service usecase.SlotService
	log     *zap.Logger
}

func NewSlotHandler(service usecase.SlotService, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log.With(zap.String("handler", "slot")),
	}
}

// ListSlots handles GET /api/parking/status
func (h *SlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.ListSlots(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list slots", 0)
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// GetSlot handles GET /api/parking/slots/{slotId}
func (h *SlotHandler) GetSlot(w http.ResponseWriter, r *http.Request) {
	slot, err := h.service.GetSlot(r.Context(), chi.URLParam(r, "slotId"))
	if err != nil {
		writeServiceError(w, h.log, err, "get slot", 0)
		return
	}

	utils.ResponseSuccess(w, "success", slot)
}

// CreateSlot handles POST /api/parking/admin/slots
func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.CreateSlot(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create slot", 0)
		return
	}

	utils.ResponseCreated(w, "Slot "+slot.SlotID+" created.", slot)
}

// UpdateSlot handles PUT /api/parking/admin/slots/{slotId}
func (h *SlotHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "slotId")

	var req request.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.UpdateSlotPrice(r.Context(), slotID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update slot", 0)
		return
	}

	utils.ResponseSuccess(w, "Slot "+slot.SlotID+" updated.", slot)
}

// DeleteSlot handles DELETE /api/parking/admin/slots/{slotId}
func (h *SlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.RemoveSlot(r.Context(), chi.URLParam(r, "slotId"))
	if err != nil {
		writeServiceError(w, h.log, err, "delete slot", 0)
		return
	}

	utils.ResponseSuccess(w, result.Message, result)
}
