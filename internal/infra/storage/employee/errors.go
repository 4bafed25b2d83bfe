package employee

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee.repository: employee not found")

	// ErrExecQuery возвращается при ошибке выполнения запроса к источнику данных
	ErrExecQuery = errors.New("employee.repository: failed to execute query")

	// ErrDecode возвращается при ошибке преобразования строк
	ErrDecode = errors.New("employee.repository: failed to decode rows")
)
