// Package memory is an in-process implementation of the repository
// interfaces, used for local runs without postgres and as the store in tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"campus-parking/internal/data/entity"
	"campus-parking/internal/data/repository"

	"go.uber.org/zap"
)

type txKey struct{}

// Store keeps slots and transactions in maps guarded by one mutex.
// WithinTx serialises units of work and restores a snapshot when fn fails.
type Store struct {
	txMu sync.Mutex

	mu     sync.RWMutex
	slots  map[string]*entity.ParkingSlot
	txns   map[string]*entity.Transaction
	nextID int64

	log *zap.Logger
}

func NewStore(log *zap.Logger) *Store {
	return &Store{
		slots: make(map[string]*entity.ParkingSlot),
		txns:  make(map[string]*entity.Transaction),
		log:   log.With(zap.String("repository", "memory")),
	}
}

// NewRepository exposes a Store through the repository interfaces.
func NewRepository(store *Store) *repository.Repository {
	return &repository.Repository{
		Tx:          store,
		Slot:        &slotRepository{store: store},
		Transaction: &transactionRepository{store: store},
	}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(bool); ok {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	slots, txns, nextID := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.slots, s.txns, s.nextID = slots, txns, nextID
		s.mu.Unlock()
		s.log.Debug("Unit of work rolled back", zap.Error(err))
		return err
	}

	return nil
}

// lockOutsideTx serialises a single write with any running unit of work so
// a rollback cannot discard it. Inside WithinTx the lock is already held.
func (s *Store) lockOutsideTx(ctx context.Context) func() {
	if _, ok := ctx.Value(txKey{}).(bool); ok {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

func (s *Store) snapshot() (map[string]*entity.ParkingSlot, map[string]*entity.Transaction, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slots := make(map[string]*entity.ParkingSlot, len(s.slots))
	for k, v := range s.slots {
		slots[k] = v.Clone()
	}
	txns := make(map[string]*entity.Transaction, len(s.txns))
	for k, v := range s.txns {
		c := *v
		txns[k] = &c
	}
	return slots, txns, s.nextID
}

type slotRepository struct {
	store *Store
}

func (r *slotRepository) Create(ctx context.Context, slot *entity.ParkingSlot) error {
	defer r.store.lockOutsideTx(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.slots[slot.SlotID]; ok {
		return fmt.Errorf("create slot %s: %w", slot.SlotID, repository.ErrDuplicate)
	}
	r.store.slots[slot.SlotID] = slot.Clone()
	return nil
}

func (r *slotRepository) CreateBatch(ctx context.Context, slots []*entity.ParkingSlot) error {
	defer r.store.lockOutsideTx(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, slot := range slots {
		if _, ok := r.store.slots[slot.SlotID]; ok {
			return fmt.Errorf("create batch slots: slot %s: %w", slot.SlotID, repository.ErrDuplicate)
		}
	}
	for _, slot := range slots {
		r.store.slots[slot.SlotID] = slot.Clone()
	}
	return nil
}

func (r *slotRepository) FindByID(ctx context.Context, slotID string) (*entity.ParkingSlot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	slot, ok := r.store.slots[slotID]
	if !ok {
		return nil, nil
	}
	return slot.Clone(), nil
}

// FindByIDForUpdate relies on WithinTx serialisation for the lock.
func (r *slotRepository) FindByIDForUpdate(ctx context.Context, slotID string) (*entity.ParkingSlot, error) {
	return r.FindByID(ctx, slotID)
}

func (r *slotRepository) FindAll(ctx context.Context) ([]*entity.ParkingSlot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	slots := make([]*entity.ParkingSlot, 0, len(r.store.slots))
	for _, slot := range r.store.slots {
		slots = append(slots, slot.Clone())
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].SlotID < slots[j].SlotID })
	return slots, nil
}

func (r *slotRepository) Exists(ctx context.Context, slotID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.slots[slotID]
	return ok, nil
}

func (r *slotRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return int64(len(r.store.slots)), nil
}

func (r *slotRepository) Update(ctx context.Context, slot *entity.ParkingSlot) error {
	defer r.store.lockOutsideTx(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.slots[slot.SlotID]; !ok {
		return fmt.Errorf("slot %s not found", slot.SlotID)
	}
	r.store.slots[slot.SlotID] = slot.Clone()
	return nil
}

func (r *slotRepository) UpdateMobileNumber(ctx context.Context, slotID, mobileNumber string) error {
	defer r.store.lockOutsideTx(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	slot, ok := r.store.slots[slotID]
	if !ok {
		return fmt.Errorf("slot %s not found", slotID)
	}
	slot.MobileNumber = &mobileNumber
	slot.UpdatedAt = time.Now()
	return nil
}

func (r *slotRepository) Delete(ctx context.Context, slotID string) error {
	defer r.store.lockOutsideTx(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.slots[slotID]; !ok {
		return fmt.Errorf("slot %s not found", slotID)
	}
	delete(r.store.slots, slotID)
	return nil
}

type transactionRepository struct {
	store *Store
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	defer r.store.lockOutsideTx(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.txns[txn.TransactionID]; ok {
		return fmt.Errorf("create transaction %s: %w", txn.TransactionID, repository.ErrDuplicate)
	}

	r.store.nextID++
	txn.ID = r.store.nextID
	c := *txn
	r.store.txns[txn.TransactionID] = &c
	return nil
}

func (r *transactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	txn, ok := r.store.txns[transactionID]
	if !ok {
		return nil, nil
	}
	c := *txn
	return &c, nil
}

func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	txns := make([]*entity.Transaction, 0, len(r.store.txns))
	for _, txn := range r.store.txns {
		c := *txn
		txns = append(txns, &c)
	}
	sort.Slice(txns, func(i, j int) bool {
		if txns[i].BookingTime.Equal(txns[j].BookingTime) {
			return txns[i].ID > txns[j].ID
		}
		return txns[i].BookingTime.After(txns[j].BookingTime)
	})
	return txns, nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, transactionID string, status entity.PaymentStatus) error {
	defer r.store.lockOutsideTx(ctx)()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	txn, ok := r.store.txns[transactionID]
	if !ok {
		return fmt.Errorf("transaction %s not found", transactionID)
	}
	txn.PaymentStatus = status
	return nil
}

func (r *transactionRepository) SumAmountByStatus(ctx context.Context, status entity.PaymentStatus) (float64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var total float64
	for _, txn := range r.store.txns {
		if txn.PaymentStatus == status {
			total += txn.AmountPaid
		}
	}
	return total, nil
}
