package create_booking

import "errors"

var (
	// ErrInternal возвращается, когда источник данных отклонил вставку или недоступен.
	// Исходная ошибка (в том числе сообщение backend) остаётся в цепочке.
	ErrInternal = errors.New("create_booking: internal error")
)
