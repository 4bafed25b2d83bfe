package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway/mocks"
	"github.com/m04kA/SMC-OfficeBooking/pkg/ptr"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

func TestCreateBatch_OneRowPerBooking(t *testing.T) {
	gw := &mocks.Gateway{}
	repo := NewRepository(gw)

	bookings := []*domain.Booking{
		{BookingDate: types.MustParseDate("2024-06-10"), DepartmentID: "dept-1", SeatID: ptr.Ptr("seat-1"), UserID: ptr.Ptr("user-1")},
		{BookingDate: types.MustParseDate("2024-06-11"), DepartmentID: "dept-1", SeatID: ptr.Ptr("seat-1"), UserID: ptr.Ptr("user-1")},
	}

	gw.On("Insert", mock.Anything, gateway.TableBookings, mock.MatchedBy(func(rows []gateway.Row) bool {
		return len(rows) == 2 && rows[0]["booking_date"] == "2024-06-10" && rows[1]["booking_date"] == "2024-06-11"
	})).Return([]string{"b1", "b2"}, nil).Once()

	ids, err := repo.CreateBatch(context.Background(), bookings)
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, ids)
	gw.AssertExpectations(t)
}

func TestCreateBatch_KeepsBackendError(t *testing.T) {
	gw := &mocks.Gateway{}
	repo := NewRepository(gw)

	backendErr := &gateway.BackendError{Status: 409, Message: "duplicate key value violates unique constraint"}
	gw.On("Insert", mock.Anything, gateway.TableBookings, mock.Anything).Return(nil, backendErr)

	_, err := repo.CreateBatch(context.Background(), []*domain.Booking{{BookingDate: types.MustParseDate("2024-06-10")}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)

	got, ok := gateway.AsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, "duplicate key value violates unique constraint", got.Message)
}

func TestGetByID(t *testing.T) {
	gw := &mocks.Gateway{}
	repo := NewRepository(gw)

	gw.On("Select", mock.Anything, gateway.TableBookings, mock.MatchedBy(func(q gateway.Query) bool {
		return len(q.Filters) == 1 && q.Filters[0].Value == "b1" && q.Limit == 1
	})).Return([]gateway.Row{{
		"id": "b1", "booking_date": "2024-06-10T00:00:00+00:00", "department_id": "dept-2",
		"seat_id": nil, "purpose_id": "purpose-1", "note": "standup", "user_id": "user-3", "status": "BOOKED",
	}}, nil)
	gw.On("Select", mock.Anything, gateway.TableBookings, mock.Anything).Return([]gateway.Row{}, nil)

	b, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", b.BookingDate.String())
	assert.Nil(t, b.SeatID)
	assert.Equal(t, "standup", ptr.Deref(b.Note))

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdate(t *testing.T) {
	form := &domain.BookingForm{
		BookingDate:  types.MustParseDate("2024-06-12"),
		DepartmentID: "dept-2",
		Note:         "",
	}

	t.Run("empty values become null and status defaults to booked", func(t *testing.T) {
		gw := &mocks.Gateway{}
		repo := NewRepository(gw)

		gw.On("Update", mock.Anything, gateway.TableBookings, []gateway.Filter{gateway.Eq("id", "b1")},
			mock.MatchedBy(func(patch gateway.Row) bool {
				note, _ := patch["note"].(*string)
				seat, _ := patch["seat_id"].(*string)
				return note == nil && seat == nil && patch["status"] == "BOOKED" && patch["booking_date"] == "2024-06-12"
			})).Return([]string{"b1"}, nil)

		require.NoError(t, repo.Update(context.Background(), "b1", form))
		gw.AssertExpectations(t)
	})

	t.Run("zero affected rows", func(t *testing.T) {
		gw := &mocks.Gateway{}
		repo := NewRepository(gw)
		gw.On("Update", mock.Anything, gateway.TableBookings, mock.Anything, mock.Anything).Return([]string{}, nil)

		err := repo.Update(context.Background(), "b1", form)
		assert.ErrorIs(t, err, ErrNoRowsAffected)
	})

	t.Run("transport failure", func(t *testing.T) {
		gw := &mocks.Gateway{}
		repo := NewRepository(gw)
		gw.On("Update", mock.Anything, gateway.TableBookings, mock.Anything, mock.Anything).
			Return(nil, errors.Join(gateway.ErrTransport, context.DeadlineExceeded))

		err := repo.Update(context.Background(), "b1", form)
		assert.ErrorIs(t, err, ErrExecQuery)
		assert.ErrorIs(t, err, gateway.ErrTransport)
	})
}

