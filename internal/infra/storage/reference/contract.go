package reference

import "github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"

// Gateway источник данных справочников
type Gateway = gateway.Gateway
