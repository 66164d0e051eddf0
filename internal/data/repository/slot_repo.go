package repository

import (
	"context"
	"errors"
	"fmt"

	"campus-parking/internal/data/entity"
	"campus-parking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const slotColumns = `slot_id, occupied, vehicle_plate, base_hourly_price, mobile_number, start_time, transaction_id, created_at, updated_at`

// pgUniqueViolation is the SQLSTATE postgres reports for a unique/primary key collision.
const pgUniqueViolation = "23505"

type slotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSlotRepository(db database.PgxIface, log *zap.Logger) SlotRepository {
	return &slotRepository{
		db:  db,
		log: log.With(zap.String("repository", "slot")),
	}
}

func (r *slotRepository) Create(ctx context.Context, slot *entity.ParkingSlot) error {
	query := `
		INSERT INTO parking_slots (` + slotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		slot.SlotID,
		slot.Occupied,
		slot.VehiclePlate,
		slot.BaseHourlyPrice,
		slot.MobileNumber,
		slot.StartTime,
		slot.TransactionID,
		slot.CreatedAt,
		slot.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("create slot %s: %w", slot.SlotID, ErrDuplicate)
		}

		r.log.Error("Failed to create slot",
			zap.Error(err),
			zap.String("slot_id", slot.SlotID),
		)
		return fmt.Errorf("create slot %s: %w", slot.SlotID, err)
	}

	return nil
}

func (r *slotRepository) CreateBatch(ctx context.Context, slots []*entity.ParkingSlot) error {
	if len(slots) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, slot := range slots {
		batch.Queue(`
			INSERT INTO parking_slots (`+slotColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
			slot.SlotID,
			slot.Occupied,
			slot.VehiclePlate,
			slot.BaseHourlyPrice,
			slot.MobileNumber,
			slot.StartTime,
			slot.TransactionID,
			slot.CreatedAt,
			slot.UpdatedAt,
		)
	}

	return database.WithTx(ctx, r.db, func(ctx context.Context) error {
		tx, ok := database.Conn(ctx, r.db).(pgx.Tx)
		if !ok {
			return fmt.Errorf("create batch slots: no transaction in context")
		}

		results := tx.SendBatch(ctx, batch)
		for range slots {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				r.log.Error("Failed to create batch slots",
					zap.Error(err),
					zap.Int("count", len(slots)),
				)
				return fmt.Errorf("create batch slots: %w", err)
			}
		}

		return results.Close()
	})
}

func (r *slotRepository) FindByID(ctx context.Context, slotID string) (*entity.ParkingSlot, error) {
	return r.findOne(ctx, `SELECT `+slotColumns+` FROM parking_slots WHERE slot_id = $1`, slotID)
}

func (r *slotRepository) FindByIDForUpdate(ctx context.Context, slotID string) (*entity.ParkingSlot, error) {
	return r.findOne(ctx, `SELECT `+slotColumns+` FROM parking_slots WHERE slot_id = $1 FOR UPDATE`, slotID)
}

func (r *slotRepository) findOne(ctx context.Context, query, slotID string) (*entity.ParkingSlot, error) {
	slot, err := scanSlot(database.Conn(ctx, r.db).QueryRow(ctx, query, slotID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find slot by ID",
			zap.Error(err),
			zap.String("slot_id", slotID),
		)
		return nil, fmt.Errorf("find slot by ID %s: %w", slotID, err)
	}

	return slot, nil
}

func (r *slotRepository) FindAll(ctx context.Context) ([]*entity.ParkingSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM parking_slots ORDER BY slot_id ASC`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all slots", zap.Error(err))
		return nil, fmt.Errorf("find all slots: %w", err)
	}
	defer rows.Close()

	slots := []*entity.ParkingSlot{}
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			r.log.Error("Failed to scan slot row", zap.Error(err))
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate slot rows: %w", err)
	}

	return slots, nil
}

func (r *slotRepository) Exists(ctx context.Context, slotID string) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM parking_slots WHERE slot_id = $1)`, slotID,
	).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check slot existence",
			zap.Error(err),
			zap.String("slot_id", slotID),
		)
		return false, fmt.Errorf("check slot %s exists: %w", slotID, err)
	}

	return exists, nil
}

func (r *slotRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := database.Conn(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM parking_slots`).Scan(&total); err != nil {
		r.log.Error("Failed to count slots", zap.Error(err))
		return 0, fmt.Errorf("count slots: %w", err)
	}

	return total, nil
}

func (r *slotRepository) Update(ctx context.Context, slot *entity.ParkingSlot) error {
	query := `
		UPDATE parking_slots
		SET occupied = $2, vehicle_plate = $3, base_hourly_price = $4, mobile_number = $5,
		    start_time = $6, transaction_id = $7, updated_at = $8
		WHERE slot_id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query,
		slot.SlotID,
		slot.Occupied,
		slot.VehiclePlate,
		slot.BaseHourlyPrice,
		slot.MobileNumber,
		slot.StartTime,
		slot.TransactionID,
		slot.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update slot",
			zap.Error(err),
			zap.String("slot_id", slot.SlotID),
		)
		return fmt.Errorf("update slot %s: %w", slot.SlotID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("slot %s not found", slot.SlotID)
	}

	return nil
}

func (r *slotRepository) UpdateMobileNumber(ctx context.Context, slotID, mobileNumber string) error {
	query := `UPDATE parking_slots SET mobile_number = $2, updated_at = NOW() WHERE slot_id = $1`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, slotID, mobileNumber)
	if err != nil {
		r.log.Error("Failed to update slot mobile number",
			zap.Error(err),
			zap.String("slot_id", slotID),
		)
		return fmt.Errorf("update slot %s mobile number: %w", slotID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("slot %s not found", slotID)
	}

	return nil
}

func (r *slotRepository) Delete(ctx context.Context, slotID string) error {
	result, err := database.Conn(ctx, r.db).Exec(ctx, `DELETE FROM parking_slots WHERE slot_id = $1`, slotID)
	if err != nil {
		r.log.Error("Failed to delete slot",
			zap.Error(err),
			zap.String("slot_id", slotID),
		)
		return fmt.Errorf("delete slot %s: %w", slotID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("slot %s not found", slotID)
	}

	r.log.Info("Slot deleted", zap.String("slot_id", slotID))
	return nil
}

func scanSlot(row pgx.Row) (*entity.ParkingSlot, error) {
	var slot entity.ParkingSlot
	err := row.Scan(
		&slot.SlotID,
		&slot.Occupied,
		&slot.VehiclePlate,
		&slot.BaseHourlyPrice,
		&slot.MobileNumber,
		&slot.StartTime,
		&slot.TransactionID,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}
