package update_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	bookingRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-OfficeBooking/pkg/logger"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Update(ctx context.Context, id string, form *domain.BookingForm) error {
	return m.Called(ctx, id, form).Error(0)
}

type mockRefresher struct {
	mock.Mock
}

func (m *mockRefresher) RefreshBookingReports(ctx context.Context) {
	m.Called(ctx)
}

type staticSource bool

func (s staticSource) Configured() bool { return bool(s) }

func newUseCase(configured bool) (*UseCase, *mockBookingRepo, *mockRefresher) {
	repo := &mockBookingRepo{}
	reports := &mockRefresher{}
	return NewUseCase(repo, reports, staticSource(configured), logger.NewNop()), repo, reports
}

func sampleForm() domain.BookingForm {
	return domain.BookingForm{
		BookingDate:  types.MustParseDate("2024-06-14"),
		DepartmentID: "dept-2",
		PurposeID:    "purpose-1",
		UserID:       "user-3",
	}
}

func TestExecute_Success(t *testing.T) {
	uc, repo, reports := newUseCase(true)
	repo.On("Update", mock.Anything, "b-7", mock.MatchedBy(func(form *domain.BookingForm) bool {
		return form.ID == "b-7" && form.Status == domain.StatusBooked && form.DepartmentID == "dept-2"
	})).Return(nil).Once()
	reports.On("RefreshBookingReports", mock.Anything).Once()

	resp, err := uc.Execute(context.Background(), &Request{BookingID: "b-7", Form: sampleForm()})
	require.NoError(t, err)
	assert.Equal(t, "b-7", resp.Form.ID)
	assert.Equal(t, domain.StatusBooked, resp.Form.Status)

	repo.AssertExpectations(t)
	reports.AssertExpectations(t)
}

func TestExecute_IDFallsBackToForm(t *testing.T) {
	uc, repo, reports := newUseCase(true)
	repo.On("Update", mock.Anything, "b-9", mock.Anything).Return(nil)
	reports.On("RefreshBookingReports", mock.Anything)

	form := sampleForm()
	form.ID = "b-9"
	form.Status = domain.StatusCancelled

	resp, err := uc.Execute(context.Background(), &Request{Form: form})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, resp.Form.Status)
	repo.AssertCalled(t, "Update", mock.Anything, "b-9", mock.Anything)
}

func TestExecute_Errors(t *testing.T) {
	backendErr := &gateway.BackendError{Status: 400, Code: "23503", Message: "insert or update on table \"bookings\" violates foreign key constraint"}

	tests := []struct {
		name       string
		configured bool
		bookingID  string
		repoErr    error
		wantErr    error
	}{
		{name: "not configured", configured: false, bookingID: "b-1", wantErr: gateway.ErrNotConfigured},
		{name: "missing id", configured: true, wantErr: ErrMissingBookingID},
		{name: "zero rows", configured: true, bookingID: "b-1", repoErr: bookingRepo.ErrNoRowsAffected, wantErr: ErrBookingNotUpdated},
		{name: "backend rejection", configured: true, bookingID: "b-1", repoErr: backendErr, wantErr: ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, reports := newUseCase(tt.configured)
			if tt.repoErr != nil {
				repo.On("Update", mock.Anything, tt.bookingID, mock.Anything).Return(tt.repoErr)
			}

			_, err := uc.Execute(context.Background(), &Request{BookingID: tt.bookingID, Form: sampleForm()})
			assert.ErrorIs(t, err, tt.wantErr)
			reports.AssertNotCalled(t, "RefreshBookingReports", mock.Anything)
		})
	}

	t.Run("backend message kept in chain", func(t *testing.T) {
		uc, repo, _ := newUseCase(true)
		repo.On("Update", mock.Anything, "b-1", mock.Anything).Return(backendErr)

		_, err := uc.Execute(context.Background(), &Request{BookingID: "b-1", Form: sampleForm()})
		got, ok := gateway.AsBackendError(err)
		require.True(t, ok)
		assert.Equal(t, backendErr.Message, got.Message)
	})
}
