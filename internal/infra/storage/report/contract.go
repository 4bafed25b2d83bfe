package report

import "github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"

// Gateway источник данных
type Gateway = gateway.Gateway
