package employee

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
)

// Repository репозиторий профилей сотрудников (ключ user_id)
type Repository struct {
	gw Gateway
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(gw Gateway) *Repository {
	return &Repository{gw: gw}
}

// List возвращает сотрудников по табельному коду
func (r *Repository) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.gw.Select(ctx, gateway.TableEmployeeProfiles, gateway.Query{
		Order: []gateway.Order{gateway.Asc("employee_code")},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: List - select: %w", ErrExecQuery, err)
	}

	var employees []domain.Employee
	if err := gateway.Decode(rows, &employees); err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrDecode, err)
	}
	return employees, nil
}

// Create создает профиль сотрудника и возвращает его user_id.
// Пустой UserID оставляет выбор ключа источнику данных.
func (r *Repository) Create(ctx context.Context, emp *domain.Employee) (string, error) {
	row := toRow(emp)
	if emp.UserID != "" {
		row["user_id"] = emp.UserID
	}

	ids, err := r.gw.Insert(ctx, gateway.TableEmployeeProfiles, []gateway.Row{row})
	if err != nil {
		return "", fmt.Errorf("%w: Create - insert: %w", ErrExecQuery, err)
	}
	if len(ids) == 0 {
		return emp.UserID, nil
	}
	return ids[0], nil
}

// Update обновляет профиль сотрудника по user_id
func (r *Repository) Update(ctx context.Context, userID string, emp *domain.Employee) error {
	ids, err := r.gw.Update(ctx, gateway.TableEmployeeProfiles, []gateway.Filter{gateway.Eq("user_id", userID)}, toRow(emp))
	if err != nil {
		return fmt.Errorf("%w: Update - user_id=%s: %w", ErrExecQuery, userID, err)
	}
	if len(ids) == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// Delete удаляет профиль сотрудника по user_id
func (r *Repository) Delete(ctx context.Context, userID string) error {
	if err := r.gw.Delete(ctx, gateway.TableEmployeeProfiles, []gateway.Filter{gateway.Eq("user_id", userID)}); err != nil {
		return fmt.Errorf("%w: Delete - user_id=%s: %w", ErrExecQuery, userID, err)
	}
	return nil
}

func toRow(emp *domain.Employee) gateway.Row {
	var startDate interface{}
	if !emp.StartDate.IsZero() {
		startDate = emp.StartDate.String()
	}
	return gateway.Row{
		"employee_code": emp.EmployeeCode,
		"first_name":    emp.FirstName,
		"last_name":     emp.LastName,
		"email":         emp.Email,
		"department_id": emp.DepartmentID,
		"start_date":    startDate,
		"is_active":     emp.IsActive,
	}
}
