package domain

import "errors"

// Ошибки валидации черновика бронирования и набора дат
var (
	// ErrEmployeeRequired сотрудник не выбран
	ErrEmployeeRequired = errors.New("domain: employee is not selected")

	// ErrDepartmentRequired отдел не выбран
	ErrDepartmentRequired = errors.New("domain: department is not selected")

	// ErrSeatRequired отдел со стратегией ASSIGNED требует выбора места
	ErrSeatRequired = errors.New("domain: seat is required for seat-assigned department")

	// ErrInvalidDateRange дата начала или окончания не задана или некорректна
	ErrInvalidDateRange = errors.New("domain: start or end date is missing or invalid")

	// ErrEndBeforeStart дата окончания раньше даты начала
	ErrEndBeforeStart = errors.New("domain: end date precedes start date")

	// ErrEmptyDateSet набор дат пуст
	ErrEmptyDateSet = errors.New("domain: date set is empty")

	// ErrDateRequired дата для добавления не указана
	ErrDateRequired = errors.New("domain: date is required")

	// ErrInvalidDate дата не разбирается
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrDuplicateDate дата уже добавлена
	ErrDuplicateDate = errors.New("domain: date already selected")

	// ErrUnknownOffice офис не найден в справочнике
	ErrUnknownOffice = errors.New("domain: unknown office")

	// ErrUnknownDepartment отдел не найден в справочнике
	ErrUnknownDepartment = errors.New("domain: unknown department")

	// ErrUnknownEmployee сотрудник не найден среди допустимых
	ErrUnknownEmployee = errors.New("domain: unknown employee")

	// ErrDepartmentMismatch отдел бронирования не совпадает с отделом сотрудника
	ErrDepartmentMismatch = errors.New("domain: department does not match employee's department")

	// ErrSeatNotInDepartment место не принадлежит выбранному отделу
	ErrSeatNotInDepartment = errors.New("domain: seat does not belong to selected department")

	// ErrUnknownPurpose цель бронирования не найдена
	ErrUnknownPurpose = errors.New("domain: unknown purpose")

	// ErrInvalidMode неизвестный режим выбора дат
	ErrInvalidMode = errors.New("domain: unknown booking mode")

	// ErrUnknownAction неизвестное действие над черновиком
	ErrUnknownAction = errors.New("domain: unknown draft action")
)
