package usecase

import (
	"context"
	"fmt"

	"campus-parking/internal/data/entity"
	"campus-parking/internal/data/repository"
	"campus-parking/internal/dto/response"

	"go.uber.org/zap"
)

type ReportService interface {
	Report(ctx context.Context) (*response.ReportResponse, error)
	TransactionHistory(ctx context.Context) ([]response.TransactionResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

// Report summarises occupancy and the revenue of successful payments.
func (s *reportService) Report(ctx context.Context) (*response.ReportResponse, error) {
	slots, err := s.repo.Slot.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load slots for report", zap.Error(err))
		return nil, fmt.Errorf("load slots: %w", err)
	}

	revenue, err := s.repo.Transaction.SumAmountByStatus(ctx, entity.PaymentStatusSuccess)
	if err != nil {
		s.log.Error("Failed to sum revenue for report", zap.Error(err))
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	occupied := make([]*entity.ParkingSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Occupied {
			occupied = append(occupied, slot)
		}
	}

	return &response.ReportResponse{
		TotalSlots:     int64(len(slots)),
		AvailableSlots: int64(len(slots) - len(occupied)),
		RealRevenue:    revenue,
		OccupiedSlots:  response.SlotsToResponse(occupied),
	}, nil
}

// TransactionHistory returns every transaction, newest booking first.
func (s *reportService) TransactionHistory(ctx context.Context) ([]response.TransactionResponse, error) {
	txns, err := s.repo.Transaction.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list transactions", zap.Error(err))
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return response.TransactionsToResponse(txns), nil
}
