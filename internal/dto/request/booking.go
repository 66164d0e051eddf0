package request

// BookSlotRequest is the body of POST /book/{slotId}.
type BookSlotRequest struct {
	VehiclePlate  string `json:"vehiclePlate" validate:"required,max=20"`
	MobileNumber  string `json:"mobileNumber" validate:"required,numeric,len=10"`
	DurationHours int    `json:"durationHours" validate:"required,min=1"`
}
