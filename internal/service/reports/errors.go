package reports

import "errors"

var (
	// ErrUnknownReport возвращается для неизвестного имени отчёта
	ErrUnknownReport = errors.New("reports: unknown report")

	// ErrInvalidMonth возвращается, если месяц не в формате YYYY-MM
	ErrInvalidMonth = errors.New("reports: month must be in YYYY-MM format")

	// ErrExport возвращается при ошибке формирования файла выгрузки
	ErrExport = errors.New("reports: failed to export report")
)
