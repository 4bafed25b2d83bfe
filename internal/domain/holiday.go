package domain

import "github.com/m04kA/SMC-OfficeBooking/pkg/types"

// Holiday праздничный день. Пустой OfficeID означает все офисы.
type Holiday struct {
	ID          string     `json:"id"`
	HolidayDate types.Date `json:"holiday_date"`
	Name        string     `json:"name"`
	OfficeID    *string    `json:"office_id"`
	Description *string    `json:"description"`
}

// AppliesToAllOffices сообщает, действует ли праздник во всех офисах
func (h *Holiday) AppliesToAllOffices() bool {
	return h.OfficeID == nil || *h.OfficeID == ""
}
