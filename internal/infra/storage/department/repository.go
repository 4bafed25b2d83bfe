package department

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	"github.com/m04kA/SMC-OfficeBooking/pkg/ptr"
)

// Repository репозиторий отделов и их политики бронирования
type Repository struct {
	gw Gateway
}

// NewRepository создает новый экземпляр репозитория отделов
func NewRepository(gw Gateway) *Repository {
	return &Repository{gw: gw}
}

// List возвращает отделы по названию
func (r *Repository) List(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.gw.Select(ctx, gateway.TableDepartments, gateway.Query{
		Order: []gateway.Order{gateway.Asc("name")},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: List - select: %w", ErrExecQuery, err)
	}

	var departments []domain.Department
	if err := gateway.Decode(rows, &departments); err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrDecode, err)
	}
	return departments, nil
}

// Create создает отдел и возвращает его ID
func (r *Repository) Create(ctx context.Context, dept *domain.Department) (string, error) {
	ids, err := r.gw.Insert(ctx, gateway.TableDepartments, []gateway.Row{toRow(dept)})
	if err != nil {
		return "", fmt.Errorf("%w: Create - insert: %w", ErrExecQuery, err)
	}
	if len(ids) == 0 {
		return "", nil
	}
	return ids[0], nil
}

// Update обновляет отдел по ID
func (r *Repository) Update(ctx context.Context, id string, dept *domain.Department) error {
	ids, err := r.gw.Update(ctx, gateway.TableDepartments, []gateway.Filter{gateway.Eq("id", id)}, toRow(dept))
	if err != nil {
		return fmt.Errorf("%w: Update - id=%s: %w", ErrExecQuery, id, err)
	}
	if len(ids) == 0 {
		return ErrDepartmentNotFound
	}
	return nil
}

// Delete удаляет отдел по ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.gw.Delete(ctx, gateway.TableDepartments, []gateway.Filter{gateway.Eq("id", id)}); err != nil {
		return fmt.Errorf("%w: Delete - id=%s: %w", ErrExecQuery, id, err)
	}
	return nil
}

func toRow(dept *domain.Department) gateway.Row {
	return gateway.Row{
		"office_id":        ptr.NilIfEmpty(dept.OfficeID),
		"name":             dept.Name,
		"booking_strategy": string(dept.BookingStrategy),
		"seat_capacity":    dept.SeatCapacity,
		"is_active":        dept.IsActive,
	}
}
