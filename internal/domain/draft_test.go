package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_SelectEmployeeForcesDepartmentAndOffice(t *testing.T) {
	l := testLookup()

	for _, emp := range l.Employees {
		if emp.DepartmentID == nil {
			continue
		}
		t.Run(emp.EmployeeCode, func(t *testing.T) {
			d, err := NewDraft(testToday).SelectOffice(l, "office-2")
			require.NoError(t, err)

			d, err = d.SelectEmployee(l, emp.UserID)
			require.NoError(t, err)

			dept, ok := l.Department(*emp.DepartmentID)
			require.True(t, ok)
			assert.Equal(t, emp.UserID, d.EmployeeID)
			assert.Equal(t, dept.ID, d.DepartmentID)
			assert.Equal(t, dept.OfficeID, d.OfficeID)
			assert.Equal(t, FormatEmployeeOption(emp), d.EmployeeSearch)
		})
	}
}

func TestDraft_SelectDepartmentClearsForeignEmployee(t *testing.T) {
	l := testLookup()
	d, err := NewDraft(testToday).SelectEmployee(l, "user-1")
	require.NoError(t, err)

	d, err = d.SelectDepartment(l, "dept-4")
	require.NoError(t, err)

	assert.Equal(t, "dept-4", d.DepartmentID)
	assert.Equal(t, "office-2", d.OfficeID)
	assert.Empty(t, d.EmployeeID)
	assert.Empty(t, d.EmployeeSearch)
}

func TestDraft_SelectDepartmentKeepsOwnEmployee(t *testing.T) {
	l := testLookup()
	d, err := NewDraft(testToday).SelectEmployee(l, "user-2")
	require.NoError(t, err)

	d, err = d.SelectDepartment(l, "dept-3")
	require.NoError(t, err)
	assert.Equal(t, "user-2", d.EmployeeID)
}

func TestDraft_SelectOfficeClearsEverythingBelow(t *testing.T) {
	l := testLookup()
	d, err := NewDraft(testToday).SelectEmployee(l, "user-1")
	require.NoError(t, err)
	d, err = d.SelectSeat(l, "seat-1")
	require.NoError(t, err)

	d, err = d.SelectOffice(l, "office-1")
	require.NoError(t, err)

	assert.Equal(t, "office-1", d.OfficeID)
	assert.Empty(t, d.DepartmentID)
	assert.Empty(t, d.SeatID)
	assert.Empty(t, d.EmployeeID)
	assert.Empty(t, d.EmployeeSearch)
}

func TestDraft_SeatClearedWhenStrategyNoLongerAssigned(t *testing.T) {
	l := testLookup()
	d, err := NewDraft(testToday).SelectDepartment(l, "dept-1")
	require.NoError(t, err)
	require.True(t, d.SeatRequired(l))

	d, err = d.SelectSeat(l, "seat-2")
	require.NoError(t, err)
	assert.Equal(t, "seat-2", d.SeatID)

	d, err = d.SelectDepartment(l, "dept-3")
	require.NoError(t, err)
	assert.False(t, d.SeatRequired(l))
	assert.Empty(t, d.SeatID)
}

func TestDraft_SelectSeatFromOtherDepartment(t *testing.T) {
	l := testLookup()
	d, err := NewDraft(testToday).SelectDepartment(l, "dept-1")
	require.NoError(t, err)

	_, err = d.SelectSeat(l, "seat-3")
	assert.ErrorIs(t, err, ErrSeatNotInDepartment)
}

func TestDraft_SearchEmployee(t *testing.T) {
	l := testLookup()
	l.Employees = []Employee{l.Employees[0], l.Employees[1], l.Employees[4]}

	t.Run("exact code selects and forces department", func(t *testing.T) {
		d := NewDraft(testToday).SearchEmployee(l, "EMP001")
		assert.Equal(t, "user-1", d.EmployeeID)
		assert.Equal(t, "dept-1", d.DepartmentID)
		assert.Equal(t, "office-1", d.OfficeID)
		assert.Equal(t, "EMP001 - Arthit Prasert", d.EmployeeSearch)
	})

	t.Run("ambiguous prefix selects nobody", func(t *testing.T) {
		d := NewDraft(testToday).SearchEmployee(l, "EMP0")
		assert.Empty(t, d.EmployeeID)
		assert.Equal(t, "EMP0", d.EmployeeSearch)
	})

	t.Run("empty input clears selection", func(t *testing.T) {
		d := NewDraft(testToday).SearchEmployee(l, "EMP001")
		d = d.SearchEmployee(l, "")
		assert.Empty(t, d.EmployeeID)
		assert.Empty(t, d.EmployeeSearch)
	})
}

func TestDraft_TransitionsDoNotMutateReceiver(t *testing.T) {
	l := testLookup()
	original := NewDraft(testToday)
	original, _ = original.AddDate("2024-06-10")

	_, err := original.SelectEmployee(l, "user-1")
	require.NoError(t, err)
	_, _ = original.AddDate("2024-06-11")

	assert.Empty(t, original.EmployeeID)
	assert.Len(t, original.MultiDates, 1)
}

func TestDraft_UnknownReferences(t *testing.T) {
	l := testLookup()
	d := NewDraft(testToday)

	_, err := d.SelectOffice(l, "office-x")
	assert.ErrorIs(t, err, ErrUnknownOffice)
	_, err = d.SelectDepartment(l, "dept-x")
	assert.ErrorIs(t, err, ErrUnknownDepartment)
	_, err = d.SelectEmployee(l, "user-x")
	assert.ErrorIs(t, err, ErrUnknownEmployee)
	_, err = d.SelectPurpose(l, "purpose-x")
	assert.ErrorIs(t, err, ErrUnknownPurpose)
	_, err = d.SetMode("weekly", testToday)
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestDraft_Apply(t *testing.T) {
	l := testLookup()
	d := NewDraft(testToday)

	d, err := d.Apply(l, DraftAction{Type: ActionSearchEmployee, Value: "EMP002"}, testToday)
	require.NoError(t, err)
	assert.Equal(t, "dept-3", d.DepartmentID)

	d, err = d.Apply(l, DraftAction{Type: ActionSetRange, Start: "2024-06-10", End: "2024-06-12"}, testToday)
	require.NoError(t, err)
	dates, err := d.DateSet()
	require.NoError(t, err)
	assert.Len(t, dates, 3)

	d, err = d.Apply(l, DraftAction{Type: ActionReset}, testToday)
	require.NoError(t, err)
	assert.Equal(t, NewDraft(testToday), d)

	_, err = d.Apply(l, DraftAction{Type: "teleport"}, testToday)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestDraft_AfterSubmitKeepsSelection(t *testing.T) {
	l := testLookup()
	d, err := NewDraft(testToday).SelectEmployee(l, "user-2")
	require.NoError(t, err)
	d, err = d.SelectPurpose(l, "purpose-1")
	require.NoError(t, err)
	d = d.SetNote("quarterly review").SetRange("2024-06-11", "2024-06-13")

	next := d.AfterSubmit(testToday)
	assert.Equal(t, "user-2", next.EmployeeID)
	assert.Equal(t, "dept-3", next.DepartmentID)
	assert.Empty(t, next.PurposeID)
	assert.Empty(t, next.Note)
	assert.Equal(t, testToday.String(), next.StartDate)
	assert.Equal(t, testToday.String(), next.EndDate)
	assert.Empty(t, next.MultiDates)
}

func TestDraft_CheckConsistency(t *testing.T) {
	l := testLookup()
	user1, _ := l.Employee("user-1")
	user5, _ := l.Employee("user-5")

	tests := []struct {
		name     string
		draft    BookingDraft
		employee *Employee
		wantErr  error
	}{
		{"own department with own seat", BookingDraft{DepartmentID: "dept-1", SeatID: "seat-1"}, user1, nil},
		{"employee without department", BookingDraft{DepartmentID: "dept-2"}, user5, nil},
		{"foreign department", BookingDraft{DepartmentID: "dept-2"}, user1, ErrDepartmentMismatch},
		{"unknown department", BookingDraft{DepartmentID: "dept-9"}, user5, ErrUnknownDepartment},
		{"seat of another department", BookingDraft{DepartmentID: "dept-4", SeatID: "seat-1"}, user5, ErrSeatNotInDepartment},
		{"unknown seat", BookingDraft{DepartmentID: "dept-1", SeatID: "seat-9"}, user1, ErrSeatNotInDepartment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.CheckConsistency(l, tt.employee)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDraft_NormalizeDropsSeatOutsideAssigned(t *testing.T) {
	l := testLookup()

	d := BookingDraft{DepartmentID: "dept-2", SeatID: "seat-1"}.Normalize(l)
	assert.Empty(t, d.SeatID)
	assert.Equal(t, ModeRange, d.Mode)

	kept := BookingDraft{DepartmentID: "dept-1", SeatID: "seat-1", Mode: ModeMulti}.Normalize(l)
	assert.Equal(t, "seat-1", kept.SeatID)
}

func TestDraft_DateSetRejectsZeroDate(t *testing.T) {
	var d BookingDraft
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"multi","multi_dates":["2024-06-10",""]}`), &d))

	_, err := d.DateSet()
	assert.ErrorIs(t, err, ErrInvalidDate)
}
