package usecase

import (
	"context"
	"testing"
	"time"

	"campus-parking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReportService_EmptyStore(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo(t), alwaysApprove(), zap.NewNop())

	report, err := svc.Report.Report(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, report.TotalSlots)
	assert.EqualValues(t, 3, report.AvailableSlots)
	assert.Zero(t, report.RealRevenue)
	assert.NotNil(t, report.OccupiedSlots)
	assert.Empty(t, report.OccupiedSlots)

	history, err := svc.Report.TransactionHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestReportService_RevenueCountsOnlySuccessfulPayments(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	svc := NewService(repo, alwaysApprove(), zap.NewNop())

	paid, err := svc.Booking.RequestBooking(ctx, "A1", validBooking(2))
	require.NoError(t, err)
	_, err = svc.Booking.ConfirmPayment(ctx, paid.Transaction.TransactionID)
	require.NoError(t, err)

	// Pending booking never confirmed
	_, err = svc.Booking.RequestBooking(ctx, "B1", validBooking(4))
	require.NoError(t, err)

	declined := NewService(repo, alwaysDecline(), zap.NewNop())
	_, err = declined.Booking.RequestBooking(ctx, "A2", validBooking(5))
	require.ErrorIs(t, err, ErrPaymentInitiationFailed)

	report, err := svc.Report.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40.0, report.RealRevenue)
	assert.EqualValues(t, report.TotalSlots-int64(len(report.OccupiedSlots)), report.AvailableSlots)
	assert.EqualValues(t, 2, report.AvailableSlots)

	history, err := svc.Report.TransactionHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestReportService_TransactionHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	svc := NewReportService(repo, zap.NewNop())

	base := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Transaction.Create(ctx, &entity.Transaction{
			TransactionID: id,
			SlotID:        "A1",
			AmountPaid:    20,
			DurationHours: 1,
			BookingTime:   base.Add(time.Duration(i) * time.Hour),
			PaymentStatus: entity.PaymentStatusPending,
		}))
	}

	history, err := svc.TransactionHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "third", history[0].TransactionID)
	assert.Equal(t, "second", history[1].TransactionID)
	assert.Equal(t, "first", history[2].TransactionID)
}
