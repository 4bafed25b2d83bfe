package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/pkg/ptr"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

// UseCase use case для создания бронирований по черновику
type UseCase struct {
	bookingRepo  BookingRepository
	lookups      LookupProvider
	reports      ReportRefresher
	source       DataSource
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	lookups LookupProvider,
	reports ReportRefresher,
	source DataSource,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		lookups:      lookups,
		reports:      reports,
		source:       source,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает по одному бронированию на каждую дату черновика одной пакетной вставкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	draft := req.Draft
	uc.logger.Info("CreateBooking: employee=%s, department=%s, seat=%s, mode=%s",
		draft.EmployeeID, draft.DepartmentID, draft.SeatID, draft.Mode)

	// 1. Проверяем черновик в фиксированном порядке
	lookup := uc.lookups.Snapshot()
	draft, employee, dates, err := checkPreconditions(draft, lookup, uc.source.Configured())
	if err != nil {
		uc.logger.Warn("CreateBooking: precondition failed: %v", err)
		return nil, err
	}

	// 2. Одна строка на каждую дату
	bookings := make([]*domain.Booking, 0, len(dates))
	for _, date := range dates {
		bookings = append(bookings, &domain.Booking{
			BookingDate:  date,
			DepartmentID: draft.DepartmentID,
			SeatID:       ptr.NilIfEmpty(draft.SeatID),
			PurposeID:    ptr.NilIfEmpty(draft.PurposeID),
			Note:         ptr.NilIfEmpty(draft.Note),
			UserID:       ptr.Ptr(employee.UserID),
			Status:       domain.StatusBooked,
		})
	}

	// 3. Пакетная вставка: либо все строки, либо ни одной
	ids, err := uc.bookingRepo.CreateBatch(ctx, bookings)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to insert %d bookings for employee=%s: %v", len(bookings), employee.UserID, err)
		return nil, fmt.Errorf("%w: CreateBooking - insert: %w", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingsCreated(draft.DepartmentID, len(bookings))
	}

	// 4. Обновляем отчёты, зависящие от бронирований
	uc.reports.RefreshBookingReports(ctx)

	uc.logger.Info("CreateBooking: created %d bookings for employee=%s (%s..%s)",
		len(bookings), employee.UserID, dates[0], dates[len(dates)-1])

	today := types.DateOf(uc.timeProvider.Now())
	return &Response{
		IDs:   ids,
		Dates: domain.DateStrings(dates),
		Draft: draft.AfterSubmit(today),
	}, nil
}
