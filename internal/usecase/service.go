package usecase

import (
	"campus-parking/internal/data/repository"
	"campus-parking/internal/payment"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Slot    SlotService
	Report  ReportService
}

func NewService(repo *repository.Repository, provider payment.Provider, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, provider, log),
		Slot:    NewSlotService(repo, log),
		Report:  NewReportService(repo, log),
	}
}
