package lookup

import "errors"

var (
	// ErrLoadFailed возвращается, когда справочники не удалось загрузить; предыдущий снимок сохраняется
	ErrLoadFailed = errors.New("lookup: failed to load reference data")
)
