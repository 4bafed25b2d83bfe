package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrNoRowsAffected возвращается, когда обновление не затронуло ни одной строки
	// (строки нет или доступ к ней закрыт политикой на стороне источника)
	ErrNoRowsAffected = errors.New("booking.repository: no rows affected")

	// ErrExecQuery возвращается при ошибке выполнения запроса к источнику данных
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrDecode возвращается при ошибке преобразования строк
	ErrDecode = errors.New("booking.repository: failed to decode rows")
)
