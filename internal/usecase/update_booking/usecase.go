package update_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	bookingRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/booking"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo BookingRepository
	reports     ReportRefresher
	source      DataSource
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	reports ReportRefresher,
	source DataSource,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		reports:     reports,
		source:      source,
		logger:      logger,
	}
}

// Execute записывает все поля формы в строку бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Запись возможна только при настроенном источнике
	if !uc.source.Configured() {
		return nil, gateway.ErrNotConfigured
	}

	// 2. ID из пути, иначе из формы
	id := strings.TrimSpace(req.BookingID)
	if id == "" {
		id = strings.TrimSpace(req.Form.ID)
	}
	if id == "" {
		return nil, ErrMissingBookingID
	}

	form := req.Form
	form.ID = id
	if form.Status == "" {
		form.Status = domain.StatusBooked
	}

	uc.logger.Info("UpdateBooking: id=%s, date=%s, department=%s, status=%s",
		id, form.BookingDate, form.DepartmentID, form.Status)

	// 3. Обновляем строку
	if err := uc.bookingRepo.Update(ctx, id, &form); err != nil {
		if errors.Is(err, bookingRepo.ErrNoRowsAffected) {
			uc.logger.Warn("UpdateBooking: id=%s not updated, no rows affected", id)
			return nil, ErrBookingNotUpdated
		}
		uc.logger.Error("UpdateBooking: failed to update id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateBooking - id=%s: %w", ErrInternal, id, err)
	}

	// 4. Обновляем отчёты, зависящие от бронирований
	uc.reports.RefreshBookingReports(ctx)

	uc.logger.Info("UpdateBooking: id=%s updated", id)
	return &Response{Form: form}, nil
}
