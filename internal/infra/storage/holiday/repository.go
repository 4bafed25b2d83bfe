package holiday

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
)

// Repository репозиторий праздничных дней (company_holidays)
type Repository struct {
	gw Gateway
}

// NewRepository создает новый экземпляр репозитория праздников
func NewRepository(gw Gateway) *Repository {
	return &Repository{gw: gw}
}

// List возвращает праздники по дате, затем по офису
func (r *Repository) List(ctx context.Context) ([]domain.Holiday, error) {
	rows, err := r.gw.Select(ctx, gateway.TableCompanyHolidays, gateway.Query{
		Columns: []string{"id", "holiday_date", "name", "description", "office_id"},
		Order:   []gateway.Order{gateway.Asc("holiday_date"), gateway.Asc("office_id")},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: List - select: %w", ErrExecQuery, err)
	}

	var holidays []domain.Holiday
	if err := gateway.Decode(rows, &holidays); err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrDecode, err)
	}
	return holidays, nil
}

// Create создает праздник и возвращает его ID
func (r *Repository) Create(ctx context.Context, h *domain.Holiday) (string, error) {
	ids, err := r.gw.Insert(ctx, gateway.TableCompanyHolidays, []gateway.Row{toRow(h)})
	if err != nil {
		return "", fmt.Errorf("%w: Create - insert: %w", ErrExecQuery, err)
	}
	if len(ids) == 0 {
		return "", nil
	}
	return ids[0], nil
}

// Update обновляет праздник по ID
func (r *Repository) Update(ctx context.Context, id string, h *domain.Holiday) error {
	ids, err := r.gw.Update(ctx, gateway.TableCompanyHolidays, []gateway.Filter{gateway.Eq("id", id)}, toRow(h))
	if err != nil {
		return fmt.Errorf("%w: Update - id=%s: %w", ErrExecQuery, id, err)
	}
	if len(ids) == 0 {
		return ErrHolidayNotFound
	}
	return nil
}

// Delete удаляет праздник по ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.gw.Delete(ctx, gateway.TableCompanyHolidays, []gateway.Filter{gateway.Eq("id", id)}); err != nil {
		return fmt.Errorf("%w: Delete - id=%s: %w", ErrExecQuery, id, err)
	}
	return nil
}

func toRow(h *domain.Holiday) gateway.Row {
	return gateway.Row{
		"holiday_date": h.HolidayDate.String(),
		"name":         h.Name,
		"office_id":    h.OfficeID,
		"description":  h.Description,
	}
}
