package employees

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfficeBooking/internal/api/handlers"
	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	employeesService "github.com/m04kA/SMC-OfficeBooking/internal/service/employees"
	"github.com/m04kA/SMC-OfficeBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List() []domain.Employee {
	rows, _ := m.Called().Get(0).([]domain.Employee)
	return rows
}

func (m *mockService) Create(ctx context.Context, input *employeesService.EmployeeInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, userID string, input *employeesService.EmployeeInput) error {
	return m.Called(ctx, userID, input).Error(0)
}

func (m *mockService) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func newRouter(svc *mockService) *mux.Router {
	h := NewHandler(svc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/employees", h.HandleList).Methods(http.MethodGet)
	r.HandleFunc("/employees", h.HandleCreate).Methods(http.MethodPost)
	r.HandleFunc("/employees/{userId}", h.HandleUpdate).Methods(http.MethodPut)
	r.HandleFunc("/employees/{userId}", h.HandleDelete).Methods(http.MethodDelete)
	return r
}

func do(r http.Handler, method, target, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(payload)))
	return rec
}

func TestHandleCreate(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(input *employeesService.EmployeeInput) bool {
		return input.EmployeeCode == "E-042" && input.FirstName == "Ann" && input.UserID == ""
	})).Return("user-42", nil)

	rec := do(newRouter(svc), http.MethodPost, "/employees",
		`{"employee_code":"E-042","first_name":"Ann","last_name":"Lee","department_id":"dept-1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"user_id":"user-42"}`, rec.Body.String())
}

func TestHandleCreate_InvalidBody(t *testing.T) {
	svc := &mockService{}

	rec := do(newRouter(svc), http.MethodPost, "/employees", `{"employee_code":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleUpdate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"required fields", employeesService.ErrRequiredFields, http.StatusBadRequest},
		{"not found", employeesService.ErrEmployeeNotFound, http.StatusNotFound},
		{"not configured", gateway.ErrNotConfigured, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Update", mock.Anything, "user-1", mock.Anything).Return(tt.err)

			rec := do(newRouter(svc), http.MethodPut, "/employees/user-1", `{"employee_code":"E-001"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleUpdate_RequiredFieldsMessage(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", mock.Anything, "user-1", mock.Anything).Return(employeesService.ErrRequiredFields)

	rec := do(newRouter(svc), http.MethodPut, "/employees/user-1", `{}`)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgRequiredFields, resp.Error)
}

func TestHandleDelete(t *testing.T) {
	svc := &mockService{}
	svc.On("Delete", mock.Anything, "user-7").Return(nil)

	rec := do(newRouter(svc), http.MethodDelete, "/employees/user-7", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}
