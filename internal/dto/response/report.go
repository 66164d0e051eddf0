package response

type ReportResponse struct {
	TotalSlots     int64          `json:"totalSlots"`
	AvailableSlots int64          `json:"availableSlots"`
	RealRevenue    float64        `json:"realRevenue"`
	OccupiedSlots  []SlotResponse `json:"occupiedSlots"`
}
