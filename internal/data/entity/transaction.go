package entity

import "time"

type PaymentStatus string

const (
	PaymentStatusPending          PaymentStatus = "PENDING"
	PaymentStatusSuccess          PaymentStatus = "SUCCESS"
	PaymentStatusFailed           PaymentStatus = "FAILED"
	PaymentStatusInitiationFailed PaymentStatus = "INITIATION_FAILED"
)

// Transaction records one booking attempt and its payment outcome.
// AmountPaid is fixed when the row is created.
type Transaction struct {
	ID            int64         `db:"id"`
	TransactionID string        `db:"transaction_id"`
	SlotID        string        `db:"slot_id"`
	VehiclePlate  string        `db:"vehicle_plate"`
	MobileNumber  string        `db:"mobile_number"`
	AmountPaid    float64       `db:"amount_paid"`
	DurationHours int           `db:"duration_hours"`
	BookingTime   time.Time     `db:"booking_time"`
	PaymentStatus PaymentStatus `db:"payment_status"`
}

// CanTransitionTo reports whether the status may move to next.
// Statuses only move forward out of PENDING; re-confirming a SUCCESS is tolerated.
func (t *Transaction) CanTransitionTo(next PaymentStatus) bool {
	switch t.PaymentStatus {
	case PaymentStatusPending:
		return next == PaymentStatusSuccess ||
			next == PaymentStatusFailed ||
			next == PaymentStatusInitiationFailed
	case PaymentStatusSuccess:
		return next == PaymentStatusSuccess
	default:
		return false
	}
}

// NewPendingTransaction prices a booking of slot for durationHours and opens it as PENDING.
func NewPendingTransaction(transactionID string, slot *ParkingSlot, vehiclePlate, mobileNumber string, durationHours int, now time.Time) *Transaction {
	return &Transaction{
		TransactionID: transactionID,
		SlotID:        slot.SlotID,
		VehiclePlate:  vehiclePlate,
		MobileNumber:  mobileNumber,
		AmountPaid:    slot.PriceFor(durationHours),
		DurationHours: durationHours,
		BookingTime:   now,
		PaymentStatus: PaymentStatusPending,
	}
}
