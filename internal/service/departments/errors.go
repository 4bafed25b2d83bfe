package departments

import "errors"

var (
	// ErrNameRequired возвращается, если название отдела пустое
	ErrNameRequired = errors.New("departments: department name is required")

	// ErrInvalidStrategy возвращается для неизвестной стратегии бронирования
	ErrInvalidStrategy = errors.New("departments: unknown booking strategy")

	// ErrCapacityRequired возвращается, если для стратегии CAPACITY не указана вместимость
	ErrCapacityRequired = errors.New("departments: seat capacity is required for capacity-limited departments")

	// ErrInvalidCapacity возвращается, если вместимость не целое число больше 0
	ErrInvalidCapacity = errors.New("departments: seat capacity must be a whole number greater than 0")

	// ErrDepartmentNotFound возвращается, если отдел не найден
	ErrDepartmentNotFound = errors.New("departments: department not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("departments: internal error")
)
