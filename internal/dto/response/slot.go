package response

import (
	"time"

	"campus-parking/internal/data/entity"
)

type SlotResponse struct {
	SlotID          string     `json:"slotId"`
	Occupied        bool       `json:"occupied"`
	VehiclePlate    *string    `json:"vehiclePlate"`
	BaseHourlyPrice float64    `json:"baseHourlyPrice"`
	MobileNumber    *string    `json:"mobileNumber"`
	StartTime       *time.Time `json:"startTime"`
	TransactionID   *string    `json:"transactionId"`
}

func SlotToResponse(slot *entity.ParkingSlot) SlotResponse {
	return SlotResponse{
		SlotID:          slot.SlotID,
		Occupied:        slot.Occupied,
		VehiclePlate:    slot.VehiclePlate,
		BaseHourlyPrice: slot.BaseHourlyPrice,
		MobileNumber:    slot.MobileNumber,
		StartTime:       slot.StartTime,
		TransactionID:   slot.TransactionID,
	}
}

func SlotsToResponse(slots []*entity.ParkingSlot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, slot := range slots {
		out[i] = SlotToResponse(slot)
	}
	return out
}

// MessageResponse carries the outcome text of a slot removal.
type MessageResponse struct {
	SlotID  string `json:"slotId"`
	Message string `json:"message"`
}

// ReleaseResponse reports a release attempt. Released is false when the slot
// was missing or already free; Message explains which.
type ReleaseResponse struct {
	SlotID   string `json:"slotId"`
	Released bool   `json:"released"`
	Message  string `json:"message"`
}
