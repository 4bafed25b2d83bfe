package holidays

import "github.com/m04kA/SMC-OfficeBooking/internal/domain"

// HolidayListResponse HTTP response model
type HolidayListResponse struct {
	Holidays []domain.HolidayOverviewRow `json:"holidays"`
	Total    int                         `json:"total"`
}

// CreatedResponse HTTP response model
type CreatedResponse struct {
	ID string `json:"id"`
}
