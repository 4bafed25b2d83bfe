package departments

// DepartmentInput данные формы отдела
type DepartmentInput struct {
	OfficeID        string   `json:"office_id"`
	Name            string   `json:"name"`
	BookingStrategy string   `json:"booking_strategy"`
	SeatCapacity    *float64 `json:"seat_capacity"`
	IsActive        *bool    `json:"is_active"`
}
