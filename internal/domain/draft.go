package domain

import (
	"strings"

	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

// BookingMode режим выбора дат
type BookingMode string

const (
	// ModeRange непрерывный диапазон дат
	ModeRange BookingMode = "range"
	// ModeMulti набор отдельных дат
	ModeMulti BookingMode = "multi"
)

// IsValid проверяет, что режим известен
func (m BookingMode) IsValid() bool {
	return m == ModeRange || m == ModeMulti
}

// BookingDraft черновик бронирования.
// Значение неизменяемо: каждое действие пользователя возвращает новый черновик.
// Даты диапазона хранятся как введённые строки, разбор выполняется в DateSet.
type BookingDraft struct {
	OfficeID       string       `json:"office_id"`
	DepartmentID   string       `json:"department_id"`
	SeatID         string       `json:"seat_id"`
	PurposeID      string       `json:"purpose_id"`
	EmployeeID     string       `json:"employee_id"`
	EmployeeSearch string       `json:"employee_search"`
	Note           string       `json:"note"`
	Mode           BookingMode  `json:"mode"`
	StartDate      string       `json:"start_date"`
	EndDate        string       `json:"end_date"`
	MultiDates     []types.Date `json:"multi_dates"`
}

// NewDraft создает пустой черновик с диапазоном на сегодня
func NewDraft(today types.Date) BookingDraft {
	return BookingDraft{
		Mode:       ModeRange,
		StartDate:  today.String(),
		EndDate:    today.String(),
		MultiDates: []types.Date{},
	}
}

func (d BookingDraft) clone() BookingDraft {
	next := d
	next.MultiDates = append([]types.Date{}, d.MultiDates...)
	return next
}

// Normalize снимает выбор места, если отдел не требует места
func (d BookingDraft) Normalize(l *Lookup) BookingDraft {
	if d.SeatID != "" && !d.SeatRequired(l) {
		d.SeatID = ""
	}
	if d.Mode == "" {
		d.Mode = ModeRange
	}
	return d
}

// Eligibility возвращает допустимые варианты выбора для черновика
func (d BookingDraft) Eligibility(l *Lookup) Eligibility {
	return ResolveEligibility(l, d.OfficeID, d.DepartmentID)
}

// SeatRequired сообщает, требует ли выбранный отдел выбора места
func (d BookingDraft) SeatRequired(l *Lookup) bool {
	dept, ok := l.Department(d.DepartmentID)
	return ok && dept.BookingStrategy.RequiresSeat()
}

// CheckConsistency сверяет черновик со справочниками:
// отдел должен существовать и совпадать с отделом сотрудника, место должно принадлежать отделу
func (d BookingDraft) CheckConsistency(l *Lookup, employee *Employee) error {
	if _, ok := l.Department(d.DepartmentID); !ok {
		return ErrUnknownDepartment
	}
	if employee != nil && employee.DepartmentID != nil && *employee.DepartmentID != d.DepartmentID {
		return ErrDepartmentMismatch
	}
	if d.SeatID != "" {
		seat, ok := l.Seat(d.SeatID)
		if !ok || seat.DepartmentID != d.DepartmentID {
			return ErrSeatNotInDepartment
		}
	}
	return nil
}

// SelectOffice выбирает офис и сбрасывает отдел, место и сотрудника
func (d BookingDraft) SelectOffice(l *Lookup, officeID string) (BookingDraft, error) {
	if officeID != "" {
		if _, ok := l.Office(officeID); !ok {
			return d, ErrUnknownOffice
		}
	}
	next := d.clone()
	next.OfficeID = officeID
	next.DepartmentID = ""
	next.SeatID = ""
	next.EmployeeID = ""
	next.EmployeeSearch = ""
	return next.Normalize(l), nil
}

// SelectDepartment выбирает отдел, переводит офис на офис отдела и
// сбрасывает сотрудника из другого отдела
func (d BookingDraft) SelectDepartment(l *Lookup, departmentID string) (BookingDraft, error) {
	dept, found := l.Department(departmentID)
	if departmentID != "" && !found {
		return d, ErrUnknownDepartment
	}

	next := d.clone()
	next.DepartmentID = departmentID
	next.SeatID = ""

	if emp, ok := l.Employee(next.EmployeeID); ok && emp.Department() != departmentID {
		next.EmployeeID = ""
		next.EmployeeSearch = ""
	} else if !ok {
		next.EmployeeID = ""
	}

	if found {
		next.OfficeID = dept.OfficeID
	}
	return next.Normalize(l), nil
}

// SelectEmployee выбирает сотрудника; отдел и офис следуют за сотрудником
func (d BookingDraft) SelectEmployee(l *Lookup, userID string) (BookingDraft, error) {
	next := d.clone()
	if userID == "" {
		next.EmployeeID = ""
		next.EmployeeSearch = ""
		return next.Normalize(l), nil
	}

	emp, ok := l.Employee(userID)
	if !ok {
		return d, ErrUnknownEmployee
	}

	next.EmployeeID = emp.UserID
	next.EmployeeSearch = FormatEmployeeOption(*emp)
	if next.DepartmentID != emp.Department() {
		next.SeatID = ""
	}
	next.DepartmentID = emp.Department()
	if dept, found := l.Department(next.DepartmentID); found {
		next.OfficeID = dept.OfficeID
	}
	return next.Normalize(l), nil
}

// SearchEmployee сопоставляет введённый текст с допустимыми сотрудниками.
// Пустой ввод и неоднозначное совпадение снимают выбор сотрудника.
func (d BookingDraft) SearchEmployee(l *Lookup, input string) BookingDraft {
	next := d.clone()
	next.EmployeeSearch = input
	if input == "" {
		next.EmployeeID = ""
		return next.Normalize(l)
	}

	candidates := d.Eligibility(l).Employees
	match, ok := MatchEmployee(candidates, input)
	if !ok {
		next.EmployeeID = ""
		return next.Normalize(l)
	}

	selected, err := next.SelectEmployee(l, match.UserID)
	if err != nil {
		next.EmployeeID = ""
		return next.Normalize(l)
	}
	return selected
}

// SelectSeat выбирает место; место должно принадлежать выбранному отделу
func (d BookingDraft) SelectSeat(l *Lookup, seatID string) (BookingDraft, error) {
	next := d.clone()
	if seatID == "" {
		next.SeatID = ""
		return next.Normalize(l), nil
	}
	seat, ok := l.Seat(seatID)
	if !ok || d.DepartmentID == "" || seat.DepartmentID != d.DepartmentID {
		return d, ErrSeatNotInDepartment
	}
	next.SeatID = seatID
	return next.Normalize(l), nil
}

// SelectPurpose выбирает цель бронирования
func (d BookingDraft) SelectPurpose(l *Lookup, purposeID string) (BookingDraft, error) {
	if purposeID != "" {
		if _, ok := l.Purpose(purposeID); !ok {
			return d, ErrUnknownPurpose
		}
	}
	next := d.clone()
	next.PurposeID = purposeID
	return next.Normalize(l), nil
}

// SetNote задаёт комментарий
func (d BookingDraft) SetNote(note string) BookingDraft {
	next := d.clone()
	next.Note = note
	return next
}

// SetMode переключает режим выбора дат; пустые даты диапазона заполняются сегодняшней
func (d BookingDraft) SetMode(mode BookingMode, today types.Date) (BookingDraft, error) {
	if !mode.IsValid() {
		return d, ErrInvalidMode
	}
	next := d.clone()
	next.Mode = mode
	if mode == ModeRange {
		if next.StartDate == "" {
			next.StartDate = today.String()
		}
		if next.EndDate == "" {
			next.EndDate = today.String()
		}
	}
	return next, nil
}

// SetRange задаёт даты диапазона как есть; проверка выполняется в DateSet
func (d BookingDraft) SetRange(start, end string) BookingDraft {
	next := d.clone()
	next.StartDate = start
	next.EndDate = end
	return next
}

// AddDate добавляет дату в набор; набор остаётся отсортированным
func (d BookingDraft) AddDate(raw string) (BookingDraft, error) {
	if strings.TrimSpace(raw) == "" {
		return d, ErrDateRequired
	}
	date, err := types.ParseDate(raw)
	if err != nil {
		return d, ErrInvalidDate
	}
	if containsDate(d.MultiDates, date) {
		return d, ErrDuplicateDate
	}
	next := d.clone()
	next.MultiDates = append(next.MultiDates, date)
	sortDates(next.MultiDates)
	return next, nil
}

// RemoveDate удаляет дату из набора по точному совпадению
func (d BookingDraft) RemoveDate(raw string) BookingDraft {
	next := d.clone()
	date, err := types.ParseDate(raw)
	if err != nil {
		return next
	}
	kept := next.MultiDates[:0]
	for _, existing := range next.MultiDates {
		if !existing.Equal(date) {
			kept = append(kept, existing)
		}
	}
	next.MultiDates = kept
	return next
}

// Reset возвращает черновик в исходное состояние
func (d BookingDraft) Reset(today types.Date) BookingDraft {
	return NewDraft(today)
}

// AfterSubmit очищает цель, комментарий и выбор дат после успешного бронирования
func (d BookingDraft) AfterSubmit(today types.Date) BookingDraft {
	next := d.clone()
	next.PurposeID = ""
	next.Note = ""
	next.StartDate = today.String()
	next.EndDate = today.String()
	next.MultiDates = []types.Date{}
	return next
}

// DateSet возвращает отсортированный набор дат без повторов для текущего режима
func (d BookingDraft) DateSet() ([]types.Date, error) {
	if d.Mode == ModeMulti {
		if len(d.MultiDates) == 0 {
			return nil, ErrEmptyDateSet
		}
		for _, date := range d.MultiDates {
			if date.IsZero() {
				return nil, ErrInvalidDate
			}
		}
		return NormalizeDates(d.MultiDates), nil
	}
	dates, err := RangeDates(d.StartDate, d.EndDate)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, ErrEmptyDateSet
	}
	return dates, nil
}
