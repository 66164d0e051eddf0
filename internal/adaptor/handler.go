package adaptor

import (
	"campus-parking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Slot    *SlotHandler
	Report  *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Slot:    NewSlotHandler(service.Slot, log),
		Report:  NewReportHandler(service.Report, log),
	}
}
