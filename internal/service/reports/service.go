package reports

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

// reportState состояние одного отчёта, защищено собственным мьютексом
type reportState struct {
	mu       sync.RWMutex
	loading  bool
	loaded   bool
	month    string
	rows     interface{}
	count    int
	loadedAt time.Time
}

// Service хранит последние загруженные строки каждого отчёта.
// Ошибки загрузки не возвращаются: отчёт деградирует до пустого списка.
type Service struct {
	reports      ReportRepository
	holidays     HolidayRepository
	lookups      LookupProvider
	source       DataSource
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
	historyLimit int

	states map[Name]*reportState
}

// NewService создает сервис отчётов
func NewService(
	reports ReportRepository,
	holidays HolidayRepository,
	lookups LookupProvider,
	source DataSource,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	logger Logger,
	historyLimit int,
) *Service {
	if historyLimit <= 0 {
		historyLimit = domain.DefaultHistoryLimit
	}

	states := make(map[Name]*reportState, len(AllReports))
	for _, name := range AllReports {
		states[name] = &reportState{}
	}
	states[ReportCalendar].month = timeProvider.Now().Format(domain.MonthFormat)

	return &Service{
		reports:      reports,
		holidays:     holidays,
		lookups:      lookups,
		source:       source,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		historyLimit: historyLimit,
		states:       states,
	}
}

// Get возвращает текущее состояние отчёта, загружая его при первом обращении
func (s *Service) Get(ctx context.Context, name Name) (*Snapshot, error) {
	state, ok := s.states[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReport, name)
	}

	state.mu.RLock()
	loaded := state.loaded
	state.mu.RUnlock()

	if !loaded {
		return s.Reload(ctx, name, nil)
	}
	return s.snapshot(name, state), nil
}

// Reload перечитывает отчёт. month (YYYY-MM) применяется к календарю и помесячной посещаемости;
// nil оставляет текущий фильтр, пустая строка снимает фильтр (календарь возвращается к текущему месяцу).
func (s *Service) Reload(ctx context.Context, name Name, month *string) (*Snapshot, error) {
	state, ok := s.states[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReport, name)
	}

	state.mu.Lock()
	filter := state.month
	if month != nil && name.usesMonth() {
		filter = strings.TrimSpace(*month)
		if filter == "" && name == ReportCalendar {
			filter = s.timeProvider.Now().Format(domain.MonthFormat)
		}
		if filter != "" {
			if _, _, err := types.MonthRange(filter); err != nil {
				state.mu.Unlock()
				return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, filter)
			}
		}
	}
	state.loading = true
	state.month = filter
	state.mu.Unlock()

	rows, count, err := s.load(ctx, name, filter)
	if err != nil {
		s.logger.Warn("Reload: report=%s failed, showing empty rows: %v", name, err)
		rows, count = emptyRows(name), 0
	} else {
		s.logger.Info("Reload: report=%s loaded %d rows", name, count)
	}
	if s.metrics != nil {
		s.metrics.IncReportLoad(string(name), err == nil)
	}

	state.mu.Lock()
	state.loading = false
	state.loaded = true
	state.rows = rows
	state.count = count
	state.loadedAt = s.timeProvider.Now()
	state.mu.Unlock()

	return s.snapshot(name, state), nil
}

// RefreshBookingReports параллельно перечитывает календарь, историю, статусы и загрузку отделов.
// Отмена ctx не прерывает обновление.
func (s *Service) RefreshBookingReports(ctx context.Context) {
	s.refresh(context.WithoutCancel(ctx), BookingReports)
}

// LoadAll параллельно загружает все отчёты
func (s *Service) LoadAll(ctx context.Context) {
	s.refresh(ctx, AllReports)
}

// Holidays возвращает текущие строки обзора праздников
func (s *Service) Holidays(ctx context.Context) []domain.HolidayOverviewRow {
	snap, err := s.Get(ctx, ReportHolidays)
	if err != nil {
		return []domain.HolidayOverviewRow{}
	}
	rows, _ := snap.Rows.([]domain.HolidayOverviewRow)
	return rows
}

// ReloadHolidays перечитывает обзор праздников и возвращает его строки
func (s *Service) ReloadHolidays(ctx context.Context) []domain.HolidayOverviewRow {
	snap, err := s.Reload(ctx, ReportHolidays, nil)
	if err != nil {
		return []domain.HolidayOverviewRow{}
	}
	rows, _ := snap.Rows.([]domain.HolidayOverviewRow)
	return rows
}

// CalendarRows возвращает строки календаря за текущий выбранный месяц
func (s *Service) CalendarRows(ctx context.Context) []domain.BookingHistoryRow {
	snap, err := s.Get(ctx, ReportCalendar)
	if err != nil {
		return []domain.BookingHistoryRow{}
	}
	rows, _ := snap.Rows.([]domain.BookingHistoryRow)
	return rows
}

func (s *Service) refresh(ctx context.Context, names []Name) {
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			_, err := s.Reload(gctx, name, nil)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("refresh: %v", err)
	}
}

func (s *Service) snapshot(name Name, state *reportState) *Snapshot {
	state.mu.RLock()
	defer state.mu.RUnlock()

	snap := &Snapshot{
		Report:  name,
		Loading: state.loading,
		Month:   state.month,
		Count:   state.count,
		Rows:    state.rows,
	}
	if snap.Rows == nil {
		snap.Rows = emptyRows(name)
	}
	if !state.loadedAt.IsZero() {
		loadedAt := state.loadedAt
		snap.LoadedAt = &loadedAt
	}
	return snap
}

// load читает строки отчёта и применяет фильтр месяца
func (s *Service) load(ctx context.Context, name Name, month string) (interface{}, int, error) {
	switch name {
	case ReportCalendar:
		rows, err := s.reports.CalendarBookings(ctx)
		if err != nil {
			return nil, 0, err
		}
		filtered, err := filterCalendar(rows, month)
		return filtered, len(filtered), err
	case ReportHistory:
		rows, err := s.reports.BookingHistory(ctx, s.historyLimit)
		return nonNil(rows), len(rows), err
	case ReportDailyStatus:
		rows, err := s.reports.DailyStatus(ctx)
		return nonNil(rows), len(rows), err
	case ReportCapacity:
		rows, err := s.reports.CapacityUsage(ctx)
		if err != nil {
			return nil, 0, err
		}
		for i := range rows {
			rows[i].RemainingCapacity = rows[i].Remaining()
		}
		return nonNil(rows), len(rows), nil
	case ReportDeptMonthly:
		rows, err := s.reports.DepartmentMonthly(ctx)
		if err != nil {
			return nil, 0, err
		}
		filtered := filterMonthly(rows, month)
		return filtered, len(filtered), nil
	case ReportEmployeeYearly:
		rows, err := s.reports.EmployeeYearly(ctx)
		return nonNil(rows), len(rows), err
	case ReportHolidays:
		rows, err := s.loadHolidays(ctx)
		return nonNil(rows), len(rows), err
	}
	return nil, 0, fmt.Errorf("%w: %s", ErrUnknownReport, name)
}

// loadHolidays при настроенном источнике читает company_holidays и подставляет название офиса,
// иначе использует демонстрационное представление с синтетическими идентификаторами
func (s *Service) loadHolidays(ctx context.Context) ([]domain.HolidayOverviewRow, error) {
	if !s.source.Configured() {
		rows, err := s.reports.HolidayOverview(ctx)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = fmt.Sprintf("sample-holiday-%d", i)
			}
		}
		return rows, nil
	}

	holidays, err := s.holidays.List(ctx)
	if err != nil {
		return nil, err
	}

	lookup := s.lookups.Snapshot()
	rows := make([]domain.HolidayOverviewRow, 0, len(holidays))
	for _, h := range holidays {
		rows = append(rows, domain.HolidayOverviewRow{
			ID:          h.ID,
			HolidayDate: h.HolidayDate,
			OfficeID:    h.OfficeID,
			OfficeName:  lookup.OfficeName(h.OfficeID),
			HolidayName: h.Name,
			Description: h.Description,
		})
	}
	return rows, nil
}

// filterCalendar оставляет строки в полуинтервале [начало месяца, начало следующего)
func filterCalendar(rows []domain.BookingHistoryRow, month string) ([]domain.BookingHistoryRow, error) {
	start, end, err := types.MonthRange(month)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.BookingHistoryRow, 0, len(rows))
	for _, row := range rows {
		if row.BookingDate.IsZero() {
			continue
		}
		if !row.BookingDate.Before(start) && row.BookingDate.Before(end) {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

// filterMonthly оставляет строки месяца; пустой месяц - все строки
func filterMonthly(rows []domain.DepartmentMonthlyRow, month string) []domain.DepartmentMonthlyRow {
	if month == "" {
		return nonNil(rows)
	}
	filtered := make([]domain.DepartmentMonthlyRow, 0, len(rows))
	for _, row := range rows {
		if row.MonthStart.MonthKey() == month {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

func emptyRows(name Name) interface{} {
	switch name {
	case ReportCalendar, ReportHistory:
		return []domain.BookingHistoryRow{}
	case ReportDailyStatus:
		return []domain.DailyStatusRow{}
	case ReportCapacity:
		return []domain.CapacityUsageRow{}
	case ReportDeptMonthly:
		return []domain.DepartmentMonthlyRow{}
	case ReportEmployeeYearly:
		return []domain.EmployeeYearlyRow{}
	case ReportHolidays:
		return []domain.HolidayOverviewRow{}
	}
	return []interface{}{}
}
