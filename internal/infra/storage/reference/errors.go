package reference

import "errors"

var (
	// ErrExecQuery возвращается при ошибке выполнения запроса к источнику данных
	ErrExecQuery = errors.New("reference.repository: failed to execute query")

	// ErrDecode возвращается при ошибке преобразования строк
	ErrDecode = errors.New("reference.repository: failed to decode rows")
)
