package holiday

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда праздник не найден
	ErrHolidayNotFound = errors.New("holiday.repository: holiday not found")

	// ErrExecQuery возвращается при ошибке выполнения запроса к источнику данных
	ErrExecQuery = errors.New("holiday.repository: failed to execute query")

	// ErrDecode возвращается при ошибке преобразования строк
	ErrDecode = errors.New("holiday.repository: failed to decode rows")
)
