package holidays

// HolidayInput данные формы праздника
type HolidayInput struct {
	HolidayDate string `json:"holiday_date"`
	Name        string `json:"name"`
	OfficeID    string `json:"office_id"`
	Description string `json:"description"`
}
