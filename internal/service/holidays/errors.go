package holidays

import "errors"

var (
	// ErrNameRequired возвращается, если название праздника пустое
	ErrNameRequired = errors.New("holidays: holiday name is required")

	// ErrHolidayNotFound возвращается, если праздник не найден
	ErrHolidayNotFound = errors.New("holidays: holiday not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("holidays: internal error")
)
