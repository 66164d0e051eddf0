package repository

import (
	"context"
	"errors"

	"campus-parking/internal/data/entity"
	"campus-parking/pkg/database"

	"go.uber.org/zap"
)

// ErrDuplicate is returned when an insert collides with an existing key.
var ErrDuplicate = errors.New("record already exists")

type SlotRepository interface {
	Create(ctx context.Context, slot *entity.ParkingSlot) error
	CreateBatch(ctx context.Context, slots []*entity.ParkingSlot) error
	FindByID(ctx context.Context, slotID string) (*entity.ParkingSlot, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, slotID string) (*entity.ParkingSlot, error)
	FindAll(ctx context.Context) ([]*entity.ParkingSlot, error)
	Exists(ctx context.Context, slotID string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, slot *entity.ParkingSlot) error
	UpdateMobileNumber(ctx context.Context, slotID, mobileNumber string) error
	Delete(ctx context.Context, slotID string) error
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.Transaction) error
	FindByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error)
	FindAll(ctx context.Context) ([]*entity.Transaction, error)
	UpdateStatus(ctx context.Context, transactionID string, status entity.PaymentStatus) error
	SumAmountByStatus(ctx context.Context, status entity.PaymentStatus) (float64, error)
}

// Transactor runs fn as one unit of work against the store.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Repository struct {
	Tx          Transactor
	Slot        SlotRepository
	Transaction TransactionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Tx:          NewTransactor(db),
		Slot:        NewSlotRepository(db, log),
		Transaction: NewTransactionRepository(db, log),
	}
}

type pgTransactor struct {
	db database.PgxIface
}

func NewTransactor(db database.PgxIface) Transactor {
	return &pgTransactor{db: db}
}

func (t *pgTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return database.WithTx(ctx, t.db, fn)
}
