package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParkingSlot_DefaultPrice(t *testing.T) {
	now := time.Now()

	assert.Equal(t, DefaultHourlyPrice, NewParkingSlot("A1", 0, now).BaseHourlyPrice)
	assert.Equal(t, 35.0, NewParkingSlot("B1", 35, now).BaseHourlyPrice)
	assert.False(t, NewParkingSlot("B1", 35, now).Occupied)
}

func TestParkingSlot_OccupyAndRelease(t *testing.T) {
	now := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	plate := "KA01AB1234"
	mobile := "9876543210"

	slot := NewParkingSlot("A1", 20, now)
	slot.VehiclePlate = &plate
	slot.MobileNumber = &mobile

	slot.Occupy("txn-1", now)
	assert.True(t, slot.Occupied)
	require.NotNil(t, slot.StartTime)
	require.NotNil(t, slot.TransactionID)
	assert.Equal(t, "txn-1", *slot.TransactionID)
	assert.Equal(t, now, *slot.StartTime)

	slot.Release(now.Add(time.Hour))
	assert.False(t, slot.Occupied)
	assert.Nil(t, slot.StartTime)
	assert.Nil(t, slot.TransactionID)
	assert.Nil(t, slot.VehiclePlate)
	assert.Nil(t, slot.MobileNumber)
}

func TestParkingSlot_CloneDoesNotAlias(t *testing.T) {
	slot := NewParkingSlot("A1", 20, time.Now())
	slot.Occupy("txn-1", time.Now())

	c := slot.Clone()
	*c.TransactionID = "changed"
	c.Occupied = false

	assert.Equal(t, "txn-1", *slot.TransactionID)
	assert.True(t, slot.Occupied)
	assert.Nil(t, (*ParkingSlot)(nil).Clone())
}

func TestNewPendingTransaction_Price(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		hours int
		want  float64
	}{
		{"two hours at default", 20, 2, 40},
		{"three hours premium", 35, 3, 105},
		{"one hour", 20, 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := NewParkingSlot("A1", tt.price, time.Now())
			txn := NewPendingTransaction("txn", slot, "KA01", "9876543210", tt.hours, time.Now())

			assert.Equal(t, tt.want, txn.AmountPaid)
			assert.Equal(t, PaymentStatusPending, txn.PaymentStatus)
			assert.Equal(t, "A1", txn.SlotID)
			assert.Equal(t, tt.hours, txn.DurationHours)
		})
	}
}

func TestTransaction_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from PaymentStatus
		to   PaymentStatus
		want bool
	}{
		{PaymentStatusPending, PaymentStatusSuccess, true},
		{PaymentStatusPending, PaymentStatusInitiationFailed, true},
		{PaymentStatusPending, PaymentStatusFailed, true},
		{PaymentStatusPending, PaymentStatusPending, false},
		{PaymentStatusSuccess, PaymentStatusSuccess, true},
		{PaymentStatusSuccess, PaymentStatusPending, false},
		{PaymentStatusInitiationFailed, PaymentStatusSuccess, false},
		{PaymentStatusFailed, PaymentStatusSuccess, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			txn := &Transaction{PaymentStatus: tt.from}
			assert.Equal(t, tt.want, txn.CanTransitionTo(tt.to))
		})
	}
}
