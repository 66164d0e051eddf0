package repository

import (
	"context"
	"errors"
	"fmt"

	"campus-parking/internal/data/entity"
	"campus-parking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const transactionColumns = `id, transaction_id, slot_id, vehicle_plate, mobile_number, amount_paid, duration_hours, booking_time, payment_status`

type transactionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactionRepository(db database.PgxIface, log *zap.Logger) TransactionRepository {
	return &transactionRepository{
		db:  db,
		log: log.With(zap.String("repository", "transaction")),
	}
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, slot_id, vehicle_plate, mobile_number, amount_paid, duration_hours, booking_time, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := database.Conn(ctx, r.db).QueryRow(ctx, query,
		txn.TransactionID,
		txn.SlotID,
		txn.VehiclePlate,
		txn.MobileNumber,
		txn.AmountPaid,
		txn.DurationHours,
		txn.BookingTime,
		txn.PaymentStatus,
	).Scan(&txn.ID)

	if err != nil {
		r.log.Error("Failed to create transaction",
			zap.Error(err),
			zap.String("transaction_id", txn.TransactionID),
			zap.String("slot_id", txn.SlotID),
		)
		return fmt.Errorf("create transaction for slot %s: %w", txn.SlotID, err)
	}

	return nil
}

func (r *transactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`

	txn, err := scanTransaction(database.Conn(ctx, r.db).QueryRow(ctx, query, transactionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find transaction",
			zap.Error(err),
			zap.String("transaction_id", transactionID),
		)
		return nil, fmt.Errorf("find transaction %s: %w", transactionID, err)
	}

	return txn, nil
}

func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY booking_time DESC, id DESC`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all transactions", zap.Error(err))
		return nil, fmt.Errorf("find all transactions: %w", err)
	}
	defer rows.Close()

	txns := []*entity.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			r.log.Error("Failed to scan transaction row", zap.Error(err))
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return txns, nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, transactionID string, status entity.PaymentStatus) error {
	query := `UPDATE transactions SET payment_status = $2 WHERE transaction_id = $1`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, transactionID, status)
	if err != nil {
		r.log.Error("Failed to update transaction status",
			zap.Error(err),
			zap.String("transaction_id", transactionID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update transaction %s status to %s: %w", transactionID, status, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s not found", transactionID)
	}

	return nil
}

func (r *transactionRepository) SumAmountByStatus(ctx context.Context, status entity.PaymentStatus) (float64, error) {
	query := `SELECT COALESCE(SUM(amount_paid), 0)::float8 FROM transactions WHERE payment_status = $1`

	var total float64
	if err := database.Conn(ctx, r.db).QueryRow(ctx, query, status).Scan(&total); err != nil {
		r.log.Error("Failed to sum transaction amounts",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("sum transactions with status %s: %w", status, err)
	}

	return total, nil
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := row.Scan(
		&txn.ID,
		&txn.TransactionID,
		&txn.SlotID,
		&txn.VehiclePlate,
		&txn.MobileNumber,
		&txn.AmountPaid,
		&txn.DurationHours,
		&txn.BookingTime,
		&txn.PaymentStatus,
	)
	if err != nil {
		return nil, err
	}

	return &txn, nil
}
