package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-parking/internal/data/entity"
	"campus-parking/internal/data/repository"
	"campus-parking/internal/dto/request"
	"campus-parking/internal/dto/response"
	"campus-parking/pkg/utils"

	"go.uber.org/zap"
)

type SlotService interface {
	// Public
	ListSlots(ctx context.Context) ([]response.SlotResponse, error)
	GetSlot(ctx context.Context, slotID string) (*response.SlotResponse, error)

	// Admin
	CreateSlot(ctx context.Context, req *request.CreateSlotRequest) (*response.SlotResponse, error)
	UpdateSlotPrice(ctx context.Context, slotID string, req *request.UpdateSlotRequest) (*response.SlotResponse, error)
	RemoveSlot(ctx context.Context, slotID string) (*response.MessageResponse, error)
}

type slotService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSlotService(repo *repository.Repository, log *zap.Logger) SlotService {
	return &slotService{
		repo: repo,
		log:  log.With(zap.String("service", "slot")),
	}
}

func (s *slotService) ListSlots(ctx context.Context) ([]response.SlotResponse, error) {
	slots, err := s.repo.Slot.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list slots", zap.Error(err))
		return nil, fmt.Errorf("list slots: %w", err)
	}

	return response.SlotsToResponse(slots), nil
}

func (s *slotService) GetSlot(ctx context.Context, slotID string) (*response.SlotResponse, error) {
	slotID = utils.NormalizeSlotID(slotID)

	slot, err := s.repo.Slot.FindByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("get slot %s: %w", slotID, err)
	}
	if slot == nil {
		return nil, fmt.Errorf("slot %s: %w", slotID, ErrNotFound)
	}

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

func (s *slotService) CreateSlot(ctx context.Context, req *request.CreateSlotRequest) (*response.SlotResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: slot details are required", ErrInvalidRequest)
	}

	// Validate the id as it will be stored
	normalized := *req
	normalized.SlotID = utils.NormalizeSlotID(req.SlotID)
	if errs := utils.ValidateStruct(&normalized); len(errs) > 0 {
		s.log.Warn("Create slot validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	slotID := normalized.SlotID

	exists, err := s.repo.Slot.Exists(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("check slot %s: %w", slotID, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: slot ID %s already exists", ErrConflict, slotID)
	}

	// New slots always start free, whatever the caller sent
	slot := entity.NewParkingSlot(slotID, normalized.BaseHourlyPrice, time.Now())
	if err := s.repo.Slot.Create(ctx, slot); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: slot ID %s already exists", ErrConflict, slotID)
		}
		s.log.Error("Failed to create slot", zap.String("slot_id", slotID), zap.Error(err))
		return nil, fmt.Errorf("create slot %s: %w", slotID, err)
	}

	s.log.Info("Slot created",
		zap.String("slot_id", slotID),
		zap.Float64("base_hourly_price", slot.BaseHourlyPrice),
	)

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

// UpdateSlotPrice changes the rate for future bookings; amounts already recorded on transactions are untouched.
func (s *slotService) UpdateSlotPrice(ctx context.Context, slotID string, req *request.UpdateSlotRequest) (*response.SlotResponse, error) {
	slotID = utils.NormalizeSlotID(slotID)
	if req == nil {
		return nil, fmt.Errorf("%w: slot details are required", ErrInvalidRequest)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update slot validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	var updated *entity.ParkingSlot
	err := s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		slot, err := s.repo.Slot.FindByIDForUpdate(ctx, slotID)
		if err != nil {
			return fmt.Errorf("find slot %s: %w", slotID, err)
		}
		if slot == nil {
			return fmt.Errorf("slot %s: %w", slotID, ErrNotFound)
		}

		slot.BaseHourlyPrice = req.BaseHourlyPrice
		slot.UpdatedAt = time.Now()
		if err := s.repo.Slot.Update(ctx, slot); err != nil {
			return fmt.Errorf("update slot %s: %w", slotID, err)
		}

		updated = slot
		return nil
	})
	if err != nil {
		if !isDomainError(err) {
			s.log.Error("Failed to update slot", zap.String("slot_id", slotID), zap.Error(err))
		}
		return nil, err
	}

	s.log.Info("Slot price updated",
		zap.String("slot_id", slotID),
		zap.Float64("base_hourly_price", updated.BaseHourlyPrice),
	)

	resp := response.SlotToResponse(updated)
	return &resp, nil
}

func (s *slotService) RemoveSlot(ctx context.Context, slotID string) (*response.MessageResponse, error) {
	slotID = utils.NormalizeSlotID(slotID)

	err := s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		slot, err := s.repo.Slot.FindByIDForUpdate(ctx, slotID)
		if err != nil {
			return fmt.Errorf("find slot %s: %w", slotID, err)
		}
		if slot == nil {
			return fmt.Errorf("slot %s: %w", slotID, ErrNotFound)
		}

		if slot.Occupied {
			return fmt.Errorf("%w: slot %s is currently occupied and cannot be removed", ErrConflict, slotID)
		}

		return s.repo.Slot.Delete(ctx, slotID)
	})
	if err != nil {
		if !isDomainError(err) {
			s.log.Error("Failed to remove slot", zap.String("slot_id", slotID), zap.Error(err))
		}
		return nil, err
	}

	s.log.Info("Slot removed", zap.String("slot_id", slotID))

	return &response.MessageResponse{
		SlotID:  slotID,
		Message: fmt.Sprintf("Slot %s successfully removed.", slotID),
	}, nil
}
