package domain

// BookingStrategy политика бронирования отдела
type BookingStrategy string

const (
	// StrategyUnlimited бронирование без ограничений
	StrategyUnlimited BookingStrategy = "UNLIMITED"
	// StrategyCapacity бронирование ограничено вместимостью отдела
	StrategyCapacity BookingStrategy = "CAPACITY"
	// StrategyAssigned бронирование требует выбора закреплённого места
	StrategyAssigned BookingStrategy = "ASSIGNED"
)

// IsValid проверяет, что стратегия известна
func (s BookingStrategy) IsValid() bool {
	switch s {
	case StrategyUnlimited, StrategyCapacity, StrategyAssigned:
		return true
	}
	return false
}

// RequiresSeat сообщает, нужен ли выбор места
func (s BookingStrategy) RequiresSeat() bool {
	return s == StrategyAssigned
}

// Department отдел. SeatCapacity имеет смысл только для стратегии CAPACITY.
type Department struct {
	ID              string          `json:"id"`
	OfficeID        string          `json:"office_id"`
	Name            string          `json:"name"`
	BookingStrategy BookingStrategy `json:"booking_strategy"`
	SeatCapacity    *int            `json:"seat_capacity"`
	IsActive        bool            `json:"is_active"`
}
