package create_booking

import (
	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

// checkPreconditions проверяет черновик в фиксированном порядке:
// сотрудник, источник данных, набор дат, место, отдел, согласованность со справочниками.
// Возвращает нормализованный черновик: место снимается, если отдел его не требует.
func checkPreconditions(
	draft domain.BookingDraft,
	lookup *domain.Lookup,
	configured bool,
) (domain.BookingDraft, *domain.Employee, []types.Date, error) {
	draft = draft.Normalize(lookup)

	employee, ok := lookup.Employee(draft.EmployeeID)
	if !ok {
		return draft, nil, nil, domain.ErrEmployeeRequired
	}

	if !configured {
		return draft, nil, nil, gateway.ErrNotConfigured
	}

	dates, err := draft.DateSet()
	if err != nil {
		return draft, nil, nil, err
	}

	if draft.SeatRequired(lookup) && draft.SeatID == "" {
		return draft, nil, nil, domain.ErrSeatRequired
	}

	if draft.DepartmentID == "" {
		return draft, nil, nil, domain.ErrDepartmentRequired
	}

	if err := draft.CheckConsistency(lookup, employee); err != nil {
		return draft, nil, nil, err
	}

	return draft, employee, dates, nil
}
