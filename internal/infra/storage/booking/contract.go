package booking

import "github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"

// Gateway источник данных для таблицы bookings
type Gateway = gateway.Gateway
