package request

// CreateSlotRequest is the body of POST /admin/slots. A zero price selects the default rate.
type CreateSlotRequest struct {
	SlotID          string  `json:"slotId" validate:"required,alphanum,max=20"`
	BaseHourlyPrice float64 `json:"baseHourlyPrice" validate:"gte=0"`
}

type UpdateSlotRequest struct {
	BaseHourlyPrice float64 `json:"baseHourlyPrice" validate:"required,gt=0"`
}
