package holidays

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	holidayRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/holiday"
	"github.com/m04kA/SMC-OfficeBooking/pkg/ptr"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

// Service сервис управления праздниками
type Service struct {
	repo     HolidayRepository
	overview OverviewProvider
	source   DataSource
	logger   Logger
}

// NewService создает новый экземпляр сервиса праздников
func NewService(repo HolidayRepository, overview OverviewProvider, source DataSource, logger Logger) *Service {
	return &Service{
		repo:     repo,
		overview: overview,
		source:   source,
		logger:   logger,
	}
}

// List возвращает обзор праздников
func (s *Service) List(ctx context.Context) []domain.HolidayOverviewRow {
	return s.overview.Holidays(ctx)
}

// Create добавляет праздник и перечитывает обзор
func (s *Service) Create(ctx context.Context, input *HolidayInput) (string, error) {
	holiday, err := s.validate(input)
	if err != nil {
		s.logger.Warn("Create: invalid holiday: %v", err)
		return "", err
	}

	id, err := s.repo.Create(ctx, holiday)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return "", fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.overview.ReloadHolidays(ctx)
	s.logger.Info("Create: holiday id=%s created for %s", id, holiday.HolidayDate)
	return id, nil
}

// Update изменяет праздник и перечитывает обзор
func (s *Service) Update(ctx context.Context, id string, input *HolidayInput) error {
	holiday, err := s.validate(input)
	if err != nil {
		s.logger.Warn("Update: invalid holiday id=%s: %v", id, err)
		return err
	}

	if err := s.repo.Update(ctx, id, holiday); err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			s.logger.Warn("Update: holiday id=%s not found", id)
			return ErrHolidayNotFound
		}
		s.logger.Error("Update: repository error for holiday id=%s: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	s.overview.ReloadHolidays(ctx)
	s.logger.Info("Update: holiday id=%s updated", id)
	return nil
}

// Delete удаляет праздник и перечитывает обзор
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.source.Configured() {
		s.logger.Warn("Delete: data source is not configured")
		return gateway.ErrNotConfigured
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for holiday id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.overview.ReloadHolidays(ctx)
	s.logger.Info("Delete: holiday id=%s deleted", id)
	return nil
}

// validate проверяет форму, затем наличие источника данных
func (s *Service) validate(input *HolidayInput) (*domain.Holiday, error) {
	rawDate := strings.TrimSpace(input.HolidayDate)
	name := strings.TrimSpace(input.Name)
	if rawDate == "" {
		return nil, domain.ErrDateRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}

	date, err := types.ParseDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDate, rawDate)
	}

	if !s.source.Configured() {
		return nil, gateway.ErrNotConfigured
	}

	return &domain.Holiday{
		HolidayDate: date,
		Name:        name,
		OfficeID:    ptr.NilIfEmpty(strings.TrimSpace(input.OfficeID)),
		Description: ptr.NilIfEmpty(strings.TrimSpace(input.Description)),
	}, nil
}
