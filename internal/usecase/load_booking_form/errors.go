package load_booking_form

import "errors"

var (
	// ErrMissingBookingID возвращается, если идентификатор бронирования не передан
	ErrMissingBookingID = errors.New("load_booking_form: booking id is required")

	// ErrBookingNotFound возвращается, если бронирование не найдено
	ErrBookingNotFound = errors.New("load_booking_form: booking not found")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("load_booking_form: internal error")
)
