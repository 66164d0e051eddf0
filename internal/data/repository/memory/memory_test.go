package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-parking/internal/data/entity"
	"campus-parking/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRepo(t *testing.T) *repository.Repository {
	t.Helper()
	return NewRepository(NewStore(zap.NewNop()))
}

func TestSlotRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	now := time.Now()

	require.NoError(t, repo.Slot.Create(ctx, entity.NewParkingSlot("B1", 35, now)))
	require.NoError(t, repo.Slot.Create(ctx, entity.NewParkingSlot("A1", 20, now)))

	err := repo.Slot.Create(ctx, entity.NewParkingSlot("A1", 20, now))
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	slots, err := repo.Slot.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "A1", slots[0].SlotID)
	assert.Equal(t, "B1", slots[1].SlotID)

	missing, err := repo.Slot.FindByID(ctx, "Z9")
	require.NoError(t, err)
	assert.Nil(t, missing)

	count, err := repo.Slot.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, repo.Slot.Delete(ctx, "B1"))
	exists, err := repo.Slot.Exists(ctx, "B1")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Error(t, repo.Slot.Delete(ctx, "B1"))
}

func TestSlotRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	require.NoError(t, repo.Slot.Create(ctx, entity.NewParkingSlot("A1", 20, time.Now())))

	slot, err := repo.Slot.FindByID(ctx, "A1")
	require.NoError(t, err)
	slot.Occupied = true

	again, err := repo.Slot.FindByID(ctx, "A1")
	require.NoError(t, err)
	assert.False(t, again.Occupied)
}

func TestTransactionRepository_OrderingAndRevenue(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	txns := []*entity.Transaction{
		{TransactionID: "t1", SlotID: "A1", AmountPaid: 40, BookingTime: base, PaymentStatus: entity.PaymentStatusSuccess},
		{TransactionID: "t2", SlotID: "A2", AmountPaid: 20, BookingTime: base.Add(time.Hour), PaymentStatus: entity.PaymentStatusPending},
		{TransactionID: "t3", SlotID: "B1", AmountPaid: 105, BookingTime: base.Add(2 * time.Hour), PaymentStatus: entity.PaymentStatusSuccess},
	}
	for _, txn := range txns {
		require.NoError(t, repo.Transaction.Create(ctx, txn))
	}
	assert.EqualValues(t, 1, txns[0].ID)
	assert.EqualValues(t, 3, txns[2].ID)

	all, err := repo.Transaction.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "t3", all[0].TransactionID)
	assert.Equal(t, "t1", all[2].TransactionID)

	revenue, err := repo.Transaction.SumAmountByStatus(ctx, entity.PaymentStatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, 145.0, revenue)

	require.NoError(t, repo.Transaction.UpdateStatus(ctx, "t2", entity.PaymentStatusSuccess))
	revenue, err = repo.Transaction.SumAmountByStatus(ctx, entity.PaymentStatusSuccess)
	require.NoError(t, err)
	assert.Equal(t, 165.0, revenue)

	assert.Error(t, repo.Transaction.UpdateStatus(ctx, "nope", entity.PaymentStatusSuccess))
}

func TestStore_WithinTxRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	require.NoError(t, repo.Slot.Create(ctx, entity.NewParkingSlot("A1", 20, time.Now())))

	boom := errors.New("boom")
	err := repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		slot, err := repo.Slot.FindByIDForUpdate(ctx, "A1")
		require.NoError(t, err)
		slot.Occupy("txn", time.Now())
		require.NoError(t, repo.Slot.Update(ctx, slot))
		require.NoError(t, repo.Transaction.Create(ctx, &entity.Transaction{TransactionID: "txn"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	slot, err := repo.Slot.FindByID(ctx, "A1")
	require.NoError(t, err)
	assert.False(t, slot.Occupied)

	txn, err := repo.Transaction.FindByTransactionID(ctx, "txn")
	require.NoError(t, err)
	assert.Nil(t, txn)
}

func TestStore_NestedWithinTxReusesOuter(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	calls := 0
	err := repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		return repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestStore_WriteDuringRolledBackTxSurvives(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name  string
		setup func(t *testing.T, repo *repository.Repository)
		write func(ctx context.Context, repo *repository.Repository) error
		check func(t *testing.T, repo *repository.Repository)
	}{
		{
			name: "slot create",
			write: func(ctx context.Context, repo *repository.Repository) error {
				return repo.Slot.Create(ctx, entity.NewParkingSlot("Z1", 20, time.Now()))
			},
			check: func(t *testing.T, repo *repository.Repository) {
				exists, err := repo.Slot.Exists(context.Background(), "Z1")
				require.NoError(t, err)
				assert.True(t, exists)
			},
		},
		{
			name: "transaction status update",
			setup: func(t *testing.T, repo *repository.Repository) {
				require.NoError(t, repo.Transaction.Create(context.Background(), &entity.Transaction{
					TransactionID: "txn",
					SlotID:        "A1",
					PaymentStatus: entity.PaymentStatusPending,
				}))
			},
			write: func(ctx context.Context, repo *repository.Repository) error {
				return repo.Transaction.UpdateStatus(ctx, "txn", entity.PaymentStatusInitiationFailed)
			},
			check: func(t *testing.T, repo *repository.Repository) {
				txn, err := repo.Transaction.FindByTransactionID(context.Background(), "txn")
				require.NoError(t, err)
				require.NotNil(t, txn)
				assert.Equal(t, entity.PaymentStatusInitiationFailed, txn.PaymentStatus)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)
			if tt.setup != nil {
				tt.setup(t, repo)
			}

			inTx := make(chan struct{})
			release := make(chan struct{})
			txErr := make(chan error, 1)
			go func() {
				txErr <- repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
					close(inTx)
					<-release
					return boom
				})
			}()

			<-inTx
			writeErr := make(chan error, 1)
			go func() {
				writeErr <- tt.write(ctx, repo)
			}()

			time.Sleep(20 * time.Millisecond)
			close(release)

			assert.ErrorIs(t, <-txErr, boom)
			require.NoError(t, <-writeErr)
			tt.check(t, repo)
		})
	}
}
