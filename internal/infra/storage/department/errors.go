package department

import "errors"

var (
	// ErrDepartmentNotFound возвращается, когда отдел не найден
	ErrDepartmentNotFound = errors.New("department.repository: department not found")

	// ErrExecQuery возвращается при ошибке выполнения запроса к источнику данных
	ErrExecQuery = errors.New("department.repository: failed to execute query")

	// ErrDecode возвращается при ошибке преобразования строк
	ErrDecode = errors.New("department.repository: failed to decode rows")
)
