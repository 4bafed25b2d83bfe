package booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	"github.com/m04kA/SMC-OfficeBooking/pkg/ptr"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	gw Gateway
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(gw Gateway) *Repository {
	return &Repository{gw: gw}
}

// CreateBatch вставляет по одной строке на каждое бронирование одним запросом.
// Частичного успеха нет: либо вставлены все строки, либо возвращается ошибка.
func (r *Repository) CreateBatch(ctx context.Context, bookings []*domain.Booking) ([]string, error) {
	rows := make([]gateway.Row, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, gateway.Row{
			"booking_date":  b.BookingDate.String(),
			"department_id": b.DepartmentID,
			"seat_id":       b.SeatID,
			"purpose_id":    b.PurposeID,
			"note":          b.Note,
			"user_id":       b.UserID,
		})
	}

	ids, err := r.gw.Insert(ctx, gateway.TableBookings, rows)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - insert %d rows: %w", ErrExecQuery, len(rows), err)
	}
	return ids, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	rows, err := r.gw.Select(ctx, gateway.TableBookings, gateway.Query{
		Filters: []gateway.Filter{gateway.Eq("id", id)},
		Limit:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - select: %w", ErrExecQuery, err)
	}

	var bookings []domain.Booking
	if err := gateway.Decode(rows, &bookings); err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrDecode, err)
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}
	return &bookings[0], nil
}

// Update обновляет бронирование по ID всеми полями формы.
// Пустые значения формы записываются как NULL, пустой статус как BOOKED.
func (r *Repository) Update(ctx context.Context, id string, form *domain.BookingForm) error {
	status := form.Status
	if status == "" {
		status = domain.StatusBooked
	}

	var bookingDate interface{}
	if !form.BookingDate.IsZero() {
		bookingDate = form.BookingDate.String()
	}

	patch := gateway.Row{
		"booking_date":  bookingDate,
		"department_id": ptr.NilIfEmpty(form.DepartmentID),
		"seat_id":       ptr.NilIfEmpty(form.SeatID),
		"purpose_id":    ptr.NilIfEmpty(form.PurposeID),
		"note":          ptr.NilIfEmpty(form.Note),
		"status":        string(status),
		"user_id":       ptr.NilIfEmpty(form.UserID),
	}

	ids, err := r.gw.Update(ctx, gateway.TableBookings, []gateway.Filter{gateway.Eq("id", id)}, patch)
	if err != nil {
		return fmt.Errorf("%w: Update - id=%s: %w", ErrExecQuery, id, err)
	}
	if len(ids) == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
