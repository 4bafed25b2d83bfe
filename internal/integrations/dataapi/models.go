package dataapi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

// Заголовки протокола data API
const (
	headerAPIKey         = "apikey"
	headerAuthorization  = "Authorization"
	headerAcceptProfile  = "Accept-Profile"
	headerContentProfile = "Content-Profile"
	headerPrefer         = "Prefer"

	preferRepresentation = "return=representation"
	preferMinimal        = "return=minimal"
)

// errorBody тело ответа с ошибкой
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (b *errorBody) toBackendError(status int) *gateway.BackendError {
	return &gateway.BackendError{
		Status:  status,
		Code:    b.Code,
		Message: b.Message,
		Details: b.Details,
		Hint:    b.Hint,
	}
}

// encodeQuery кодирует параметры чтения: select, фильтры eq., order, limit
func encodeQuery(q gateway.Query) url.Values {
	values := url.Values{}

	selectCols := "*"
	if len(q.Columns) > 0 {
		selectCols = strings.Join(q.Columns, ",")
	}
	values.Set("select", selectCols)

	addFilters(values, q.Filters)

	if len(q.Order) > 0 {
		orders := make([]string, 0, len(q.Order))
		for _, o := range q.Order {
			direction := "asc"
			if o.Descending {
				direction = "desc"
			}
			orders = append(orders, o.Column+"."+direction)
		}
		values.Set("order", strings.Join(orders, ","))
	}

	if q.Limit > 0 {
		values.Set("limit", fmt.Sprintf("%d", q.Limit))
	}
	return values
}

func addFilters(values url.Values, filters []gateway.Filter) {
	for _, f := range filters {
		if f.Value == nil {
			values.Add(f.Column, "is.null")
			continue
		}
		values.Add(f.Column, "eq."+formatValue(f.Value))
	}
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case types.Date:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
