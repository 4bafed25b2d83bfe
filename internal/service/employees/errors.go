package employees

import "errors"

var (
	// ErrRequiredFields возвращается, если не заполнены код, имя или фамилия
	ErrRequiredFields = errors.New("employees: employee code, first name and last name are required")

	// ErrEmployeeNotFound возвращается, если сотрудник не найден
	ErrEmployeeNotFound = errors.New("employees: employee not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("employees: internal error")
)
