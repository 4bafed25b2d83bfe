package load_booking_form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-OfficeBooking/pkg/ptr"
)

// UseCase use case для загрузки бронирования в форму редактирования
type UseCase struct {
	bookingRepo BookingRepository
	calendar    CalendarProvider
	lookups     LookupProvider
	source      DataSource
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	calendar CalendarProvider,
	lookups LookupProvider,
	source DataSource,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		calendar:    calendar,
		lookups:     lookups,
		source:      source,
		logger:      logger,
	}
}

// Execute читает бронирование из таблицы, а без настроенного источника
// восстанавливает форму по строке календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	id := strings.TrimSpace(req.BookingID)
	if id == "" {
		return nil, ErrMissingBookingID
	}

	// 1. Источник настроен: читаем строку bookings
	if uc.source.Configured() {
		booking, err := uc.bookingRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("LoadBookingForm: booking id=%s not found", id)
				return nil, ErrBookingNotFound
			}
			uc.logger.Error("LoadBookingForm: failed to get booking id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: LoadBookingForm - get: %w", ErrInternal, err)
		}
		return &Response{Form: domain.FormFromBooking(booking), Source: SourceDatabase}, nil
	}

	// 2. Иначе ищем строку в календаре
	for _, row := range uc.calendar.CalendarRows(ctx) {
		if row.BookingID == id {
			uc.logger.Info("LoadBookingForm: booking id=%s restored from calendar", id)
			return &Response{Form: formFromCalendar(row, uc.lookups.Snapshot()), Source: SourceCalendar}, nil
		}
	}

	uc.logger.Warn("LoadBookingForm: booking id=%s not found in calendar", id)
	return nil, ErrBookingNotFound
}

// formFromCalendar предпочитает идентификаторы строки; если их нет,
// отдел и цель ищутся по названию, место по коду
func formFromCalendar(row domain.BookingHistoryRow, lookup *domain.Lookup) *domain.BookingForm {
	form := &domain.BookingForm{
		ID:           row.BookingID,
		BookingDate:  row.BookingDate,
		DepartmentID: ptr.Deref(row.DepartmentID),
		SeatID:       ptr.Deref(row.SeatID),
		PurposeID:    ptr.Deref(row.PurposeID),
		Note:         ptr.Deref(row.Note),
		Status:       row.Status,
		UserID:       ptr.Deref(row.UserID),
	}

	if form.DepartmentID == "" {
		form.DepartmentID = lookup.DepartmentIDByName(row.DepartmentName)
	}
	if form.PurposeID == "" {
		form.PurposeID = lookup.PurposeIDByName(ptr.Deref(row.PurposeName))
	}
	if form.SeatID == "" {
		form.SeatID = lookup.SeatIDByCode(ptr.Deref(row.SeatCode))
	}
	if form.Status == "" {
		form.Status = domain.StatusBooked
	}
	return form
}
