package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured запись отклонена: источник данных не настроен
	ErrNotConfigured = errors.New("gateway: data source is not configured")

	// ErrTransport сетевая ошибка или ошибка соединения с источником данных
	ErrTransport = errors.New("gateway: transport failure")

	// ErrUnknownResource таблица или представление не входит в каталог
	ErrUnknownResource = errors.New("gateway: unknown resource")

	// ErrReadOnlyResource попытка записи в представление
	ErrReadOnlyResource = errors.New("gateway: resource is read-only")

	// ErrDecode строки не удалось преобразовать в целевой тип
	ErrDecode = errors.New("gateway: failed to decode rows")

	// ErrEmptyFilter изменение без фильтра запрещено
	ErrEmptyFilter = errors.New("gateway: update and delete require a filter")
)

// BackendError операция отклонена источником данных (нарушение ограничения,
// отказ контроля доступа). Message передаётся пользователю как есть.
type BackendError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected operation (status %d, code %s)", e.Status, e.Code)
	}
	return e.Message
}

// AsBackendError извлекает BackendError из цепочки ошибок
func AsBackendError(err error) (*BackendError, bool) {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr, true
	}
	return nil, false
}
