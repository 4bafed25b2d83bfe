package reference

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
)

// Repository чтение справочников, которые не редактируются в приложении:
// офисы, места, цели бронирования и стратегии
type Repository struct {
	gw Gateway
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(gw Gateway) *Repository {
	return &Repository{gw: gw}
}

// ListOffices возвращает офисы по названию
func (r *Repository) ListOffices(ctx context.Context) ([]domain.Office, error) {
	var offices []domain.Office
	if err := r.list(ctx, "ListOffices", gateway.TableOffices, "name", &offices); err != nil {
		return nil, err
	}
	return offices, nil
}

// ListSeats возвращает места по коду
func (r *Repository) ListSeats(ctx context.Context) ([]domain.Seat, error) {
	var seats []domain.Seat
	if err := r.list(ctx, "ListSeats", gateway.TableDepartmentSeats, "seat_code", &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// ListPurposes возвращает цели бронирования по названию
func (r *Repository) ListPurposes(ctx context.Context) ([]domain.Purpose, error) {
	var purposes []domain.Purpose
	if err := r.list(ctx, "ListPurposes", gateway.TableBookingPurposes, "name", &purposes); err != nil {
		return nil, err
	}
	return purposes, nil
}

// ListStrategies возвращает стратегии бронирования по коду
func (r *Repository) ListStrategies(ctx context.Context) ([]domain.StrategyInfo, error) {
	var strategies []domain.StrategyInfo
	if err := r.list(ctx, "ListStrategies", gateway.TableBookingStrategies, "code", &strategies); err != nil {
		return nil, err
	}
	return strategies, nil
}

func (r *Repository) list(ctx context.Context, op, table, orderColumn string, dest interface{}) error {
	rows, err := r.gw.Select(ctx, table, gateway.Query{Order: []gateway.Order{gateway.Asc(orderColumn)}})
	if err != nil {
		return fmt.Errorf("%w: %s - select %s: %w", ErrExecQuery, op, table, err)
	}
	if err := gateway.Decode(rows, dest); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, op, err)
	}
	return nil
}
