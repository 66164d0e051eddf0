package entity

import "time"

// DefaultHourlyPrice is applied when a slot is created without a rate.
const DefaultHourlyPrice = 20.0

type ParkingSlot struct {
	Timestamps
	SlotID          string     `db:"slot_id"` // A1, B2, ...
	Occupied        bool       `db:"occupied"`
	VehiclePlate    *string    `db:"vehicle_plate"`
	BaseHourlyPrice float64    `db:"base_hourly_price"`
	MobileNumber    *string    `db:"mobile_number"`
	StartTime       *time.Time `db:"start_time"`
	TransactionID   *string    `db:"transaction_id"`
}

// NewParkingSlot returns a free slot; a zero price means "unset" and falls back to DefaultHourlyPrice.
func NewParkingSlot(slotID string, baseHourlyPrice float64, now time.Time) *ParkingSlot {
	if baseHourlyPrice == 0 {
		baseHourlyPrice = DefaultHourlyPrice
	}

	return &ParkingSlot{
		Timestamps: Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
		SlotID:          slotID,
		BaseHourlyPrice: baseHourlyPrice,
	}
}

// PriceFor returns the amount charged for a booking of the given length.
func (s *ParkingSlot) PriceFor(durationHours int) float64 {
	return s.BaseHourlyPrice * float64(durationHours)
}

// Occupy binds the slot to a confirmed transaction. The vehicle plate is left untouched.
func (s *ParkingSlot) Occupy(transactionID string, now time.Time) {
	s.Occupied = true
	s.StartTime = &now
	s.TransactionID = &transactionID
	s.UpdatedAt = now
}

// Release returns the slot to the free pool and clears every booking field.
func (s *ParkingSlot) Release(now time.Time) {
	s.Occupied = false
	s.VehiclePlate = nil
	s.StartTime = nil
	s.TransactionID = nil
	s.MobileNumber = nil
	s.UpdatedAt = now
}

// Clone returns a deep copy so callers can mutate it without aliasing.
func (s *ParkingSlot) Clone() *ParkingSlot {
	if s == nil {
		return nil
	}

	c := *s
	c.VehiclePlate = cloneString(s.VehiclePlate)
	c.MobileNumber = cloneString(s.MobileNumber)
	c.TransactionID = cloneString(s.TransactionID)
	if s.StartTime != nil {
		t := *s.StartTime
		c.StartTime = &t
	}
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
