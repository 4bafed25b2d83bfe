package departments

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	departmentRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/department"
)

// Service сервис управления отделами и их политикой бронирования
type Service struct {
	repo    DepartmentRepository
	lookups LookupService
	source  DataSource
	logger  Logger
}

// NewService создает новый экземпляр сервиса отделов
func NewService(repo DepartmentRepository, lookups LookupService, source DataSource, logger Logger) *Service {
	return &Service{
		repo:    repo,
		lookups: lookups,
		source:  source,
		logger:  logger,
	}
}

// List возвращает отделы из текущего снимка справочников
func (s *Service) List() []domain.Department {
	departments := s.lookups.Snapshot().Departments
	if departments == nil {
		return []domain.Department{}
	}
	return departments
}

// Create создает отдел
func (s *Service) Create(ctx context.Context, input *DepartmentInput) (string, error) {
	dept, err := s.validate(input)
	if err != nil {
		s.logger.Warn("Create: invalid department: %v", err)
		return "", err
	}

	id, err := s.repo.Create(ctx, dept)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return "", fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.reload(ctx, "Create")
	s.logger.Info("Create: department id=%s name=%s strategy=%s created", id, dept.Name, dept.BookingStrategy)
	return id, nil
}

// Update изменяет отдел
func (s *Service) Update(ctx context.Context, id string, input *DepartmentInput) error {
	dept, err := s.validate(input)
	if err != nil {
		s.logger.Warn("Update: invalid department id=%s: %v", id, err)
		return err
	}

	if err := s.repo.Update(ctx, id, dept); err != nil {
		if errors.Is(err, departmentRepo.ErrDepartmentNotFound) {
			s.logger.Warn("Update: department id=%s not found", id)
			return ErrDepartmentNotFound
		}
		s.logger.Error("Update: repository error for department id=%s: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	s.reload(ctx, "Update")
	s.logger.Info("Update: department id=%s updated", id)
	return nil
}

// Delete удаляет отдел
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.source.Configured() {
		return gateway.ErrNotConfigured
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for department id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.reload(ctx, "Delete")
	s.logger.Info("Delete: department id=%s deleted", id)
	return nil
}

// reload перечитывает отделы; ошибка только логируется, запись уже выполнена
func (s *Service) reload(ctx context.Context, op string) {
	if err := s.lookups.ReloadDepartments(ctx); err != nil {
		s.logger.Warn("%s: failed to reload departments: %v", op, err)
	}
}

// validate проверяет наличие источника данных, затем форму
func (s *Service) validate(input *DepartmentInput) (*domain.Department, error) {
	if !s.source.Configured() {
		return nil, gateway.ErrNotConfigured
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	strategy := domain.BookingStrategy(strings.TrimSpace(input.BookingStrategy))
	if strategy == "" {
		strategy = domain.StrategyUnlimited
	}
	if !strategy.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStrategy, strategy)
	}

	dept := &domain.Department{
		OfficeID:        strings.TrimSpace(input.OfficeID),
		Name:            name,
		BookingStrategy: strategy,
		IsActive:        true,
	}
	if input.IsActive != nil {
		dept.IsActive = *input.IsActive
	}

	// Вместимость хранится только для CAPACITY
	if strategy == domain.StrategyCapacity {
		if input.SeatCapacity == nil {
			return nil, ErrCapacityRequired
		}
		capacity := *input.SeatCapacity
		if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity <= 0 || capacity != math.Trunc(capacity) {
			return nil, ErrInvalidCapacity
		}
		value := int(capacity)
		dept.SeatCapacity = &value
	}

	return dept, nil
}
