package domain

// Формат даты
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// DefaultHistoryLimit число строк отчёта истории бронирований по умолчанию
const DefaultHistoryLimit = 20

// Подписи для денормализованного названия офиса праздника
const (
	AllOfficesLabel    = "All Offices"
	UnknownOfficeLabel = "-"
)

// ConfigurationHint сообщение пользователю, когда подключение к данным не настроено
const ConfigurationHint = "please set DATA_API_URL and DATA_API_KEY in the environment or in a .env / .env.local file before making changes"

// DefaultStrategies используются, если справочник стратегий пуст
var DefaultStrategies = []StrategyInfo{
	{
		Code:        StrategyUnlimited,
		DisplayName: "Unlimited",
		Description: "Employees may book without a seat or capacity limit",
	},
	{
		Code:        StrategyCapacity,
		DisplayName: "Capacity Limited",
		Description: "Daily bookings are limited by the department seat capacity",
	},
	{
		Code:        StrategyAssigned,
		DisplayName: "Seat Assigned",
		Description: "Every booking must reference one of the department seats",
	},
}
