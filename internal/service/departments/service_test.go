package departments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	departmentRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/department"
	"github.com/m04kA/SMC-OfficeBooking/pkg/logger"
	"github.com/m04kA/SMC-OfficeBooking/pkg/ptr"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, dept *domain.Department) (string, error) {
	args := m.Called(ctx, dept)
	return args.String(0), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, id string, dept *domain.Department) error {
	return m.Called(ctx, id, dept).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockLookups struct {
	mock.Mock
}

func (m *mockLookups) Snapshot() *domain.Lookup {
	return m.Called().Get(0).(*domain.Lookup)
}

func (m *mockLookups) ReloadDepartments(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type staticSource bool

func (s staticSource) Configured() bool { return bool(s) }

func newService(configured bool) (*Service, *mockRepo, *mockLookups) {
	repo := &mockRepo{}
	lookups := &mockLookups{}
	return NewService(repo, lookups, staticSource(configured), logger.NewNop()), repo, lookups
}

func TestCreate_Defaults(t *testing.T) {
	svc, repo, lookups := newService(true)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *domain.Department) bool {
		return d.Name == "Finance" && d.BookingStrategy == domain.StrategyUnlimited &&
			d.SeatCapacity == nil && d.IsActive && d.OfficeID == ""
	})).Return("dept-9", nil)
	lookups.On("ReloadDepartments", mock.Anything).Return(nil).Once()

	id, err := svc.Create(context.Background(), &DepartmentInput{Name: " Finance "})
	require.NoError(t, err)
	assert.Equal(t, "dept-9", id)
	lookups.AssertExpectations(t)
}

func TestCreate_CapacityRules(t *testing.T) {
	tests := []struct {
		name     string
		input    DepartmentInput
		wantErr  error
		capacity *int
	}{
		{name: "capacity missing", input: DepartmentInput{Name: "Support", BookingStrategy: "CAPACITY"}, wantErr: ErrCapacityRequired},
		{name: "capacity zero", input: DepartmentInput{Name: "Support", BookingStrategy: "CAPACITY", SeatCapacity: ptr.Ptr(0.0)}, wantErr: ErrInvalidCapacity},
		{name: "capacity fractional", input: DepartmentInput{Name: "Support", BookingStrategy: "CAPACITY", SeatCapacity: ptr.Ptr(2.5)}, wantErr: ErrInvalidCapacity},
		{name: "capacity valid", input: DepartmentInput{Name: "Support", BookingStrategy: "CAPACITY", SeatCapacity: ptr.Ptr(20.0)}, capacity: ptr.Ptr(20)},
		{name: "capacity ignored for assigned", input: DepartmentInput{Name: "Eng", BookingStrategy: "ASSIGNED", SeatCapacity: ptr.Ptr(5.0)}},
		{name: "unknown strategy", input: DepartmentInput{Name: "Eng", BookingStrategy: "FLEX"}, wantErr: ErrInvalidStrategy},
		{name: "blank name", input: DepartmentInput{Name: " "}, wantErr: ErrNameRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, lookups := newService(true)
			lookups.On("ReloadDepartments", mock.Anything).Return(nil).Maybe()

			var created *domain.Department
			repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
				created = args.Get(1).(*domain.Department)
			}).Return("dept-1", nil).Maybe()

			_, err := svc.Create(context.Background(), &tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, tt.capacity, created.SeatCapacity)
		})
	}
}

func TestCreate_NotConfiguredBeforeValidation(t *testing.T) {
	svc, _, _ := newService(false)

	_, err := svc.Create(context.Background(), &DepartmentInput{})
	assert.ErrorIs(t, err, gateway.ErrNotConfigured)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, repo, lookups := newService(true)
	repo.On("Update", mock.Anything, "dept-x", mock.Anything).Return(departmentRepo.ErrDepartmentNotFound)

	err := svc.Update(context.Background(), "dept-x", &DepartmentInput{Name: "X", IsActive: ptr.Ptr(false)})
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
	lookups.AssertNotCalled(t, "ReloadDepartments", mock.Anything)
}

func TestDelete_ReloadFailureIsNotSurfaced(t *testing.T) {
	svc, repo, lookups := newService(true)
	repo.On("Delete", mock.Anything, "dept-1").Return(nil)
	lookups.On("ReloadDepartments", mock.Anything).Return(errors.New("timeout"))

	require.NoError(t, svc.Delete(context.Background(), "dept-1"))
}

func TestList(t *testing.T) {
	svc, _, lookups := newService(false)
	lookups.On("Snapshot").Return(&domain.Lookup{Departments: []domain.Department{{ID: "dept-1"}}})

	assert.Len(t, svc.List(), 1)
}
