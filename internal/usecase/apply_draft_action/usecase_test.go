package apply_draft_action

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfficeBooking/internal/domain"
	"github.com/m04kA/SMC-OfficeBooking/pkg/logger"
	"github.com/m04kA/SMC-OfficeBooking/pkg/ptr"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

type staticLookup struct {
	lookup *domain.Lookup
}

func (s staticLookup) Snapshot() *domain.Lookup { return s.lookup }

type fixedTime struct{}

func (fixedTime) Now() time.Time { return time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC) }

func newUseCase() *UseCase {
	lookup := &domain.Lookup{
		Offices: []domain.Office{{ID: "office-1", Name: "Bangkok HQ"}, {ID: "office-2", Name: "Chiang Mai"}},
		Departments: []domain.Department{
			{ID: "dept-1", OfficeID: "office-1", Name: "Engineering", BookingStrategy: domain.StrategyAssigned},
			{ID: "dept-2", OfficeID: "office-1", Name: "HR", BookingStrategy: domain.StrategyUnlimited},
			{ID: "dept-4", OfficeID: "office-2", Name: "Support", BookingStrategy: domain.StrategyCapacity, SeatCapacity: ptr.Ptr(15)},
		},
		Seats: []domain.Seat{
			{ID: "seat-1", SeatCode: "ENG-01", DepartmentID: "dept-1"},
			{ID: "seat-2", SeatCode: "ENG-02", DepartmentID: "dept-1"},
		},
		Purposes: []domain.Purpose{{ID: "purpose-1", Name: "Team meeting"}},
		Employees: []domain.Employee{
			{UserID: "user-1", EmployeeCode: "EMP001", FirstName: "Arthit", LastName: "Prasert", DepartmentID: ptr.Ptr("dept-1")},
			{UserID: "user-3", EmployeeCode: "EMP003", FirstName: "Nicha", LastName: "Rattanakorn", DepartmentID: ptr.Ptr("dept-2")},
			{UserID: "user-4", EmployeeCode: "EMP004", FirstName: "Kanya", LastName: "Suk", DepartmentID: ptr.Ptr("dept-4")},
		},
	}
	uc := NewUseCase(staticLookup{lookup}, logger.NewNop())
	uc.timeProvider = fixedTime{}
	return uc
}

func TestExecute_NilDraftStartsFresh(t *testing.T) {
	uc := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Action: domain.DraftAction{Type: domain.ActionSelectOffice, Value: "office-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "office-1", resp.Draft.OfficeID)
	assert.Equal(t, domain.ModeRange, resp.Draft.Mode)
	assert.Equal(t, []string{"2024-06-10"}, resp.Dates)
	assert.Empty(t, resp.DateError)

	require.Len(t, resp.Eligibility.Departments, 2)
	assert.Equal(t, []string{"EMP001 - Arthit Prasert", "EMP003 - Nicha Rattanakorn"}, resp.EmployeeOptions)
}

func TestExecute_SelectEmployeeFollowsDepartment(t *testing.T) {
	uc := newUseCase()
	draft := domain.NewDraft(types.MustParseDate("2024-06-10"))

	resp, err := uc.Execute(context.Background(), &Request{
		Draft:  &draft,
		Action: domain.DraftAction{Type: domain.ActionSelectEmployee, Value: "user-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "dept-1", resp.Draft.DepartmentID)
	assert.Equal(t, "office-1", resp.Draft.OfficeID)
	assert.Equal(t, "EMP001 - Arthit Prasert", resp.Draft.EmployeeSearch)
	assert.True(t, resp.Eligibility.SeatRequired)
	assert.Len(t, resp.Eligibility.Seats, 2)
	assert.Equal(t, []string{"EMP001 - Arthit Prasert"}, resp.EmployeeOptions)
}

func TestExecute_RejectedActionKeepsDraft(t *testing.T) {
	uc := newUseCase()
	draft := domain.NewDraft(types.MustParseDate("2024-06-10"))
	draft.DepartmentID = "dept-2"

	tests := []struct {
		name    string
		action  domain.DraftAction
		wantErr error
	}{
		{"seat from another department", domain.DraftAction{Type: domain.ActionSelectSeat, Value: "seat-1"}, domain.ErrSeatNotInDepartment},
		{"unknown office", domain.DraftAction{Type: domain.ActionSelectOffice, Value: "office-9"}, domain.ErrUnknownOffice},
		{"invalid date", domain.DraftAction{Type: domain.ActionAddDate, Value: "2024-13-01"}, domain.ErrInvalidDate},
		{"unknown action", domain.DraftAction{Type: "teleport"}, domain.ErrUnknownAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{Draft: &draft, Action: tt.action})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
			assert.Equal(t, "dept-2", draft.DepartmentID)
		})
	}
}

func TestExecute_IncomingDraftNormalized(t *testing.T) {
	uc := newUseCase()
	draft := domain.NewDraft(types.MustParseDate("2024-06-10"))
	draft.DepartmentID = "dept-2"
	draft.SeatID = "seat-1"
	draft.Mode = ""

	resp, err := uc.Execute(context.Background(), &Request{
		Draft:  &draft,
		Action: domain.DraftAction{Type: domain.ActionSetNote, Value: "quarterly review"},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Draft.SeatID)
	assert.Equal(t, domain.ModeRange, resp.Draft.Mode)
	assert.Equal(t, "quarterly review", resp.Draft.Note)
	assert.Equal(t, "seat-1", draft.SeatID)
}

func TestExecute_DatePreview(t *testing.T) {
	uc := newUseCase()
	draft := domain.NewDraft(types.MustParseDate("2024-06-10"))

	resp, err := uc.Execute(context.Background(), &Request{
		Draft:  &draft,
		Action: domain.DraftAction{Type: domain.ActionSetRange, Start: "2024-06-12", End: "2024-06-10"},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
	assert.Equal(t, domain.ErrEndBeforeStart.Error(), resp.DateError)

	resp, err = uc.Execute(context.Background(), &Request{
		Draft:  &resp.Draft,
		Action: domain.DraftAction{Type: domain.ActionSetMode, Value: string(domain.ModeMulti)},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ErrEmptyDateSet.Error(), resp.DateError)

	for _, d := range []string{"2024-06-20", "2024-06-03"} {
		resp, err = uc.Execute(context.Background(), &Request{
			Draft:  &resp.Draft,
			Action: domain.DraftAction{Type: domain.ActionAddDate, Value: d},
		})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"2024-06-03", "2024-06-20"}, resp.Dates)
	assert.Empty(t, resp.DateError)
}
