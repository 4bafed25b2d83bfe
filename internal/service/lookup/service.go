package lookup

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
)

// Service хранит снимок справочников. Снимок неизменяем и заменяется целиком.
type Service struct {
	refs      ReferenceRepository
	depts     DepartmentRepository
	employees EmployeeRepository
	logger    Logger

	mu       sync.RWMutex
	snapshot *domain.Lookup
}

// NewService создает сервис с пустым снимком (стратегии по умолчанию)
func NewService(
	refs ReferenceRepository,
	depts DepartmentRepository,
	employees EmployeeRepository,
	logger Logger,
) *Service {
	return &Service{
		refs:      refs,
		depts:     depts,
		employees: employees,
		logger:    logger,
		snapshot:  &domain.Lookup{Strategies: defaultStrategies()},
	}
}

// Snapshot возвращает текущий снимок справочников. Вызывающий не должен его изменять.
func (s *Service) Snapshot() *domain.Lookup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Load загружает все шесть справочников параллельно.
// При ошибке любого из них предыдущий снимок сохраняется.
func (s *Service) Load(ctx context.Context) error {
	s.logger.Info("Load: loading reference data")

	var next domain.Lookup
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		next.Offices, err = s.refs.ListOffices(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.Departments, err = s.depts.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.Seats, err = s.refs.ListSeats(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.Purposes, err = s.refs.ListPurposes(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.Employees, err = s.employees.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		next.Strategies, err = s.refs.ListStrategies(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Load: failed to load reference data, keeping previous snapshot: %v", err)
		return fmt.Errorf("%w: Load: %w", ErrLoadFailed, err)
	}

	if len(next.Strategies) == 0 {
		next.Strategies = defaultStrategies()
	}

	s.swap(func(*domain.Lookup) *domain.Lookup { return &next })

	s.logger.Info("Load: loaded %d offices, %d departments, %d seats, %d purposes, %d employees, %d strategies",
		len(next.Offices), len(next.Departments), len(next.Seats), len(next.Purposes), len(next.Employees), len(next.Strategies))
	return nil
}

// ReloadDepartments перечитывает только отделы
func (s *Service) ReloadDepartments(ctx context.Context) error {
	departments, err := s.depts.List(ctx)
	if err != nil {
		s.logger.Error("ReloadDepartments: failed to reload departments: %v", err)
		return fmt.Errorf("%w: ReloadDepartments: %w", ErrLoadFailed, err)
	}

	s.swap(func(prev *domain.Lookup) *domain.Lookup {
		next := *prev
		next.Departments = departments
		return &next
	})
	s.logger.Info("ReloadDepartments: loaded %d departments", len(departments))
	return nil
}

// ReloadEmployees перечитывает только сотрудников
func (s *Service) ReloadEmployees(ctx context.Context) error {
	employees, err := s.employees.List(ctx)
	if err != nil {
		s.logger.Error("ReloadEmployees: failed to reload employees: %v", err)
		return fmt.Errorf("%w: ReloadEmployees: %w", ErrLoadFailed, err)
	}

	s.swap(func(prev *domain.Lookup) *domain.Lookup {
		next := *prev
		next.Employees = employees
		return &next
	})
	s.logger.Info("ReloadEmployees: loaded %d employees", len(employees))
	return nil
}

func (s *Service) swap(build func(prev *domain.Lookup) *domain.Lookup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = build(s.snapshot)
}

func defaultStrategies() []domain.StrategyInfo {
	out := make([]domain.StrategyInfo, len(domain.DefaultStrategies))
	copy(out, domain.DefaultStrategies)
	return out
}
