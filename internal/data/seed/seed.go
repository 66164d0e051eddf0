// Package seed fills an empty slot table with the campus lot layout.
package seed

import (
	"context"
	"fmt"
	"time"

	"campus-parking/internal/data/entity"
	"campus-parking/internal/data/repository"

	"go.uber.org/zap"
)

type slotDef struct {
	ID    string
	Price float64
}

// defaultSlots is the lot layout; C1 is the reserved bay.
var defaultSlots = []slotDef{
	{ID: "A1", Price: 20.0},
	{ID: "A2", Price: 20.0},
	{ID: "A3", Price: 20.0},
	{ID: "A4", Price: 20.0},
	{ID: "B1", Price: 35.0},
	{ID: "B2", Price: 35.0},
	{ID: "C1", Price: 20.0},
}

// Run inserts the default slots only when the store holds none and reports how many were added.
func Run(ctx context.Context, repo *repository.Repository, log *zap.Logger) (int, error) {
	log = log.With(zap.String("component", "seed"))

	inserted := 0
	err := repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		count, err := repo.Slot.Count(ctx)
		if err != nil {
			return fmt.Errorf("count slots: %w", err)
		}

		if count > 0 {
			log.Info("Slots already present, skipping seed", zap.Int64("count", count))
			return nil
		}

		now := time.Now()
		slots := make([]*entity.ParkingSlot, len(defaultSlots))
		for i, def := range defaultSlots {
			slots[i] = entity.NewParkingSlot(def.ID, def.Price, now)
		}

		if err := repo.Slot.CreateBatch(ctx, slots); err != nil {
			return fmt.Errorf("insert default slots: %w", err)
		}

		inserted = len(slots)
		return nil
	})
	if err != nil {
		log.Error("Failed to seed slots", zap.Error(err))
		return 0, err
	}

	if inserted > 0 {
		log.Info("Seeded parking slots", zap.Int("count", inserted))
	}
	return inserted, nil
}
