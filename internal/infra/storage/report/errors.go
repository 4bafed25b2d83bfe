package report

import "errors"

var (
	// ErrExecQuery возвращается при ошибке чтения представления
	ErrExecQuery = errors.New("report.repository: failed to execute query")

	// ErrDecode возвращается при ошибке преобразования строк
	ErrDecode = errors.New("report.repository: failed to decode rows")
)
