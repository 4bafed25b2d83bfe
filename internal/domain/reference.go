package domain

// Office офис компании
type Office struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Seat место, закреплённое за отделом (актуально для стратегии ASSIGNED)
type Seat struct {
	ID           string `json:"id"`
	SeatCode     string `json:"seat_code"`
	DepartmentID string `json:"department_id"`
}

// Purpose цель бронирования, справочник без ограничений
type Purpose struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StrategyInfo описание стратегии бронирования из справочника
type StrategyInfo struct {
	Code        BookingStrategy `json:"code"`
	DisplayName string          `json:"display_name"`
	Description string          `json:"description"`
}
