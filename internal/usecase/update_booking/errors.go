package update_booking

import "errors"

var (
	// ErrMissingBookingID возвращается, если идентификатор не передан ни в пути, ни в форме
	ErrMissingBookingID = errors.New("update_booking: booking id is required")

	// ErrBookingNotUpdated возвращается, если обновление не затронуло ни одной строки:
	// бронирования нет или доступ к строке запрещён
	ErrBookingNotUpdated = errors.New("update_booking: booking not found or not permitted")

	// ErrInternal источник данных отклонил обновление или недоступен
	ErrInternal = errors.New("update_booking: internal error")
)
