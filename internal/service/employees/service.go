package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	employeeRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/employee"
	"github.com/m04kA/SMC-OfficeBooking/pkg/ptr"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

// Service сервис управления профилями сотрудников
type Service struct {
	repo    EmployeeRepository
	lookups LookupService
	source  DataSource
	logger  Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(repo EmployeeRepository, lookups LookupService, source DataSource, logger Logger) *Service {
	return &Service{
		repo:    repo,
		lookups: lookups,
		source:  source,
		logger:  logger,
	}
}

// List возвращает сотрудников из текущего снимка справочников
func (s *Service) List() []domain.Employee {
	employees := s.lookups.Snapshot().Employees
	if employees == nil {
		return []domain.Employee{}
	}
	return employees
}

// Create создает профиль сотрудника
func (s *Service) Create(ctx context.Context, input *EmployeeInput) (string, error) {
	emp, err := s.validate(input)
	if err != nil {
		s.logger.Warn("Create: invalid employee: %v", err)
		return "", err
	}
	emp.UserID = strings.TrimSpace(input.UserID)

	userID, err := s.repo.Create(ctx, emp)
	if err != nil {
		s.logger.Error("Create: repository error for code=%s: %v", emp.EmployeeCode, err)
		return "", fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.reload(ctx, "Create")
	s.logger.Info("Create: employee code=%s created (user_id=%s)", emp.EmployeeCode, userID)
	return userID, nil
}

// Update изменяет профиль сотрудника по user_id
func (s *Service) Update(ctx context.Context, userID string, input *EmployeeInput) error {
	emp, err := s.validate(input)
	if err != nil {
		s.logger.Warn("Update: invalid employee user_id=%s: %v", userID, err)
		return err
	}

	if err := s.repo.Update(ctx, userID, emp); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("Update: employee user_id=%s not found", userID)
			return ErrEmployeeNotFound
		}
		s.logger.Error("Update: repository error for user_id=%s: %v", userID, err)
		return fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	s.reload(ctx, "Update")
	s.logger.Info("Update: employee user_id=%s updated", userID)
	return nil
}

// Delete удаляет профиль сотрудника по user_id
func (s *Service) Delete(ctx context.Context, userID string) error {
	if !s.source.Configured() {
		return gateway.ErrNotConfigured
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		s.logger.Error("Delete: repository error for user_id=%s: %v", userID, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.reload(ctx, "Delete")
	s.logger.Info("Delete: employee user_id=%s deleted", userID)
	return nil
}

func (s *Service) reload(ctx context.Context, op string) {
	if err := s.lookups.ReloadEmployees(ctx); err != nil {
		s.logger.Warn("%s: failed to reload employees: %v", op, err)
	}
}

// validate проверяет наличие источника данных, затем форму
func (s *Service) validate(input *EmployeeInput) (*domain.Employee, error) {
	if !s.source.Configured() {
		return nil, gateway.ErrNotConfigured
	}

	code := strings.TrimSpace(input.EmployeeCode)
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if code == "" || firstName == "" || lastName == "" {
		return nil, ErrRequiredFields
	}

	var startDate types.Date
	if raw := strings.TrimSpace(input.StartDate); raw != "" {
		parsed, err := types.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDate, raw)
		}
		startDate = parsed
	}

	emp := &domain.Employee{
		EmployeeCode: code,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        ptr.NilIfEmpty(strings.TrimSpace(input.Email)),
		DepartmentID: ptr.NilIfEmpty(strings.TrimSpace(input.DepartmentID)),
		StartDate:    startDate,
		IsActive:     true,
	}
	if input.IsActive != nil {
		emp.IsActive = *input.IsActive
	}
	return emp, nil
}
