package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campus-parking/internal/data/entity"
	"campus-parking/internal/data/repository"
	"campus-parking/internal/dto/request"
	"campus-parking/internal/dto/response"
	"campus-parking/internal/payment"
	"campus-parking/pkg/metrics"
	"campus-parking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// Customer flow
	RequestBooking(ctx context.Context, slotID string, req *request.BookSlotRequest) (*response.BookingResponse, error)
	ConfirmPayment(ctx context.Context, transactionID string) (*response.ConfirmationResponse, error)

	// Admin
	ReleaseSlot(ctx context.Context, slotID string) (*response.ReleaseResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	provider payment.Provider
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, provider payment.Provider, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		provider: provider,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) RequestBooking(ctx context.Context, slotID string, req *request.BookSlotRequest) (*response.BookingResponse, error) {
	slotID = utils.NormalizeSlotID(slotID)
	if req == nil {
		metrics.IncBookingRequest(metrics.OutcomeInvalid)
		return nil, fmt.Errorf("%w: booking details are required", ErrInvalidRequest)
	}

	var txn *entity.Transaction
	err := s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		// Lock the slot row until the pending transaction is written
		slot, err := s.repo.Slot.FindByIDForUpdate(ctx, slotID)
		if err != nil {
			return fmt.Errorf("find slot %s: %w", slotID, err)
		}
		if slot == nil {
			return fmt.Errorf("slot %s: %w", slotID, ErrNotFound)
		}

		if slot.Occupied {
			return fmt.Errorf("slot %s is %w", slotID, ErrAlreadyBooked)
		}

		// Validate request
		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			s.log.Warn("Booking validation failed",
				zap.String("slot_id", slotID),
				zap.Any("errors", errs),
			)
			return &ValidationError{Fields: errs}
		}

		txn = entity.NewPendingTransaction(
			utils.GenerateTransactionID(),
			slot,
			strings.TrimSpace(req.VehiclePlate),
			req.MobileNumber,
			req.DurationHours,
			time.Now(),
		)

		if err := s.repo.Transaction.Create(ctx, txn); err != nil {
			return fmt.Errorf("save pending transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		metrics.IncBookingRequest(bookingOutcome(err))
		if isDomainError(err) {
			s.log.Info("Booking rejected", zap.String("slot_id", slotID), zap.Error(err))
		} else {
			s.log.Error("Failed to open booking", zap.String("slot_id", slotID), zap.Error(err))
		}
		return nil, err
	}

	// No row lock is held across the gateway call
	redirectURL, err := s.provider.Initiate(ctx, txn)
	if err != nil {
		s.log.Warn("Payment initiation failed",
			zap.String("transaction_id", txn.TransactionID),
			zap.String("slot_id", slotID),
			zap.Error(err),
		)

		// The caller may already be gone; the failure must still be recorded
		if uerr := s.repo.Transaction.UpdateStatus(context.WithoutCancel(ctx), txn.TransactionID, entity.PaymentStatusInitiationFailed); uerr != nil {
			s.log.Error("Failed to mark transaction as initiation failed",
				zap.String("transaction_id", txn.TransactionID),
				zap.Error(uerr),
			)
		}

		metrics.IncBookingRequest(metrics.OutcomeInitiationFailed)
		return nil, fmt.Errorf("%w: %v", ErrPaymentInitiationFailed, err)
	}

	// Best effort: a failure here does not undo the booking
	if err := s.repo.Slot.UpdateMobileNumber(ctx, slotID, txn.MobileNumber); err != nil {
		s.log.Warn("Failed to record mobile number on slot",
			zap.String("slot_id", slotID),
			zap.Error(err),
		)
	}

	metrics.IncBookingRequest(metrics.OutcomeInitiated)
	s.log.Info("Payment initiated",
		zap.String("transaction_id", txn.TransactionID),
		zap.String("slot_id", slotID),
		zap.Float64("amount", txn.AmountPaid),
	)

	return &response.BookingResponse{
		RedirectURL: redirectURL,
		Transaction: response.TransactionToResponse(txn),
	}, nil
}

func (s *bookingService) ConfirmPayment(ctx context.Context, transactionID string) (*response.ConfirmationResponse, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, fmt.Errorf("%w: transaction ID is required", ErrInvalidRequest)
	}

	var (
		txn        *entity.Transaction
		slot       *entity.ParkingSlot
		firstTime  bool
		superseded bool
	)

	err := s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		txn, err = s.repo.Transaction.FindByTransactionID(ctx, transactionID)
		if err != nil {
			return fmt.Errorf("find transaction %s: %w", transactionID, err)
		}
		if txn == nil {
			return fmt.Errorf("transaction %s: %w", transactionID, ErrNotFound)
		}

		if !txn.CanTransitionTo(entity.PaymentStatusSuccess) {
			return fmt.Errorf("%w: transaction %s is %s and cannot be confirmed",
				ErrInvalidRequest, transactionID, txn.PaymentStatus)
		}

		slot, err = s.repo.Slot.FindByIDForUpdate(ctx, txn.SlotID)
		if err != nil {
			return fmt.Errorf("find slot %s: %w", txn.SlotID, err)
		}
		if slot == nil {
			return fmt.Errorf("slot %s for transaction %s: %w", txn.SlotID, transactionID, ErrNotFound)
		}

		// Another booking of the same slot was confirmed first
		if slot.Occupied && (slot.TransactionID == nil || *slot.TransactionID != transactionID) {
			if txn.PaymentStatus != entity.PaymentStatusPending {
				return fmt.Errorf("slot %s is %w by another transaction", txn.SlotID, ErrAlreadyBooked)
			}

			superseded = true
			if err := s.repo.Transaction.UpdateStatus(ctx, transactionID, entity.PaymentStatusFailed); err != nil {
				return fmt.Errorf("mark transaction %s failed: %w", transactionID, err)
			}
			txn.PaymentStatus = entity.PaymentStatusFailed
			return nil
		}

		firstTime = txn.PaymentStatus == entity.PaymentStatusPending

		slot.Occupy(transactionID, time.Now())
		if err := s.repo.Slot.Update(ctx, slot); err != nil {
			return fmt.Errorf("occupy slot %s: %w", slot.SlotID, err)
		}

		if err := s.repo.Transaction.UpdateStatus(ctx, transactionID, entity.PaymentStatusSuccess); err != nil {
			return fmt.Errorf("mark transaction %s successful: %w", transactionID, err)
		}
		txn.PaymentStatus = entity.PaymentStatusSuccess

		return nil
	})
	if err != nil {
		if isDomainError(err) {
			s.log.Info("Payment confirmation rejected", zap.String("transaction_id", transactionID), zap.Error(err))
		} else {
			s.log.Error("Failed to confirm payment", zap.String("transaction_id", transactionID), zap.Error(err))
		}
		return nil, err
	}

	if superseded {
		s.log.Warn("Payment confirmed for a slot taken by another booking",
			zap.String("transaction_id", transactionID),
			zap.String("slot_id", txn.SlotID),
		)
		return nil, fmt.Errorf("slot %s is %w by another transaction", txn.SlotID, ErrAlreadyBooked)
	}

	if firstTime {
		metrics.ObservePaymentConfirmed(txn.AmountPaid)
	}

	s.log.Info("Payment confirmed",
		zap.String("transaction_id", transactionID),
		zap.String("slot_id", slot.SlotID),
		zap.Bool("reconfirmation", !firstTime),
	)

	return &response.ConfirmationResponse{
		Slot:        response.SlotToResponse(slot),
		Transaction: response.TransactionToResponse(txn),
	}, nil
}

// ReleaseSlot never fails for a missing or free slot; the outcome is carried in the message.
func (s *bookingService) ReleaseSlot(ctx context.Context, slotID string) (*response.ReleaseResponse, error) {
	slotID = utils.NormalizeSlotID(slotID)
	result := &response.ReleaseResponse{SlotID: slotID}

	err := s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		slot, err := s.repo.Slot.FindByIDForUpdate(ctx, slotID)
		if err != nil {
			return fmt.Errorf("find slot %s: %w", slotID, err)
		}

		if slot == nil {
			result.Message = fmt.Sprintf("Error: Slot %s not found.", slotID)
			return nil
		}

		if !slot.Occupied {
			result.Message = fmt.Sprintf("Slot %s is already available.", slotID)
			return nil
		}

		slot.Release(time.Now())
		if err := s.repo.Slot.Update(ctx, slot); err != nil {
			return fmt.Errorf("release slot %s: %w", slotID, err)
		}

		result.Released = true
		result.Message = fmt.Sprintf("Slot %s successfully released.", slotID)
		return nil
	})
	if err != nil {
		s.log.Error("Failed to release slot", zap.String("slot_id", slotID), zap.Error(err))
		return nil, err
	}

	if result.Released {
		metrics.IncSlotRelease()
		s.log.Info("Slot released", zap.String("slot_id", slotID))
	}

	return result, nil
}

func bookingOutcome(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrAlreadyBooked):
		return metrics.OutcomeAlreadyBooked
	case errors.Is(err, ErrInvalidRequest):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
