package dataapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (построение запроса, сериализация)
	ErrInternal = errors.New("dataapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("dataapi client: invalid response")
)
