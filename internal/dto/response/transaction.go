package response

import (
	"time"

	"campus-parking/internal/data/entity"
)

type TransactionResponse struct {
	ID            int64                `json:"id"`
	TransactionID string               `json:"transactionId"`
	SlotID        string               `json:"slotId"`
	VehiclePlate  string               `json:"vehiclePlate"`
	MobileNumber  string               `json:"mobileNumber"`
	AmountPaid    float64              `json:"amountPaid"`
	DurationHours int                  `json:"durationHours"`
	BookingTime   time.Time            `json:"bookingTime"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
}

// BookingResponse answers a booking request with the gateway redirect.
type BookingResponse struct {
	RedirectURL string              `json:"redirectUrl"`
	Transaction TransactionResponse `json:"transaction"`
}

type ConfirmationResponse struct {
	Slot        SlotResponse        `json:"slot"`
	Transaction TransactionResponse `json:"transaction"`
}

func TransactionToResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            txn.ID,
		TransactionID: txn.TransactionID,
		SlotID:        txn.SlotID,
		VehiclePlate:  txn.VehiclePlate,
		MobileNumber:  txn.MobileNumber,
		AmountPaid:    txn.AmountPaid,
		DurationHours: txn.DurationHours,
		BookingTime:   txn.BookingTime,
		PaymentStatus: txn.PaymentStatus,
	}
}

func TransactionsToResponse(txns []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		out[i] = TransactionToResponse(txn)
	}
	return out
}
