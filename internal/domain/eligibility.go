package domain

import "strings"

// Eligibility допустимые варианты выбора для текущего черновика
type Eligibility struct {
	Employees    []Employee   `json:"employees"`
	Departments  []Department `json:"departments"`
	Seats        []Seat       `json:"seats"`
	SeatRequired bool         `json:"seat_required"`
}

// ResolveEligibility вычисляет допустимых сотрудников, отделы и места
// для выбранных офиса и отдела
func ResolveEligibility(l *Lookup, officeID, departmentID string) Eligibility {
	result := Eligibility{
		Employees:   eligibleEmployees(l, officeID, departmentID),
		Departments: eligibleDepartments(l, officeID),
		Seats:       []Seat{},
	}

	if departmentID != "" {
		for _, seat := range l.Seats {
			if seat.DepartmentID == departmentID {
				result.Seats = append(result.Seats, seat)
			}
		}
	}

	if dept, ok := l.Department(departmentID); ok {
		result.SeatRequired = dept.BookingStrategy.RequiresSeat()
	}

	return result
}

func eligibleDepartments(l *Lookup, officeID string) []Department {
	if officeID == "" {
		return append([]Department{}, l.Departments...)
	}
	result := []Department{}
	for _, d := range l.Departments {
		if d.OfficeID == officeID {
			result = append(result, d)
		}
	}
	return result
}

func eligibleEmployees(l *Lookup, officeID, departmentID string) []Employee {
	// Выбран отдел: только его сотрудники
	if departmentID != "" {
		result := []Employee{}
		for _, e := range l.Employees {
			if e.Department() == departmentID {
				result = append(result, e)
			}
		}
		return result
	}

	// Выбран только офис: сотрудники любого отдела этого офиса
	if officeID != "" {
		deptIDs := make(map[string]struct{})
		for _, d := range l.Departments {
			if d.OfficeID == officeID {
				deptIDs[d.ID] = struct{}{}
			}
		}
		result := []Employee{}
		for _, e := range l.Employees {
			if _, ok := deptIDs[e.Department()]; ok && e.Department() != "" {
				result = append(result, e)
			}
		}
		return result
	}

	return append([]Employee{}, l.Employees...)
}

// MatchEmployee ищет сотрудника по введённому тексту среди кандидатов:
// точное совпадение с "код - имя", затем с кодом, затем единственное частичное
// совпадение (код начинается с текста или имя содержит текст). Регистр не учитывается.
func MatchEmployee(candidates []Employee, input string) (*Employee, bool) {
	if input == "" {
		return nil, false
	}
	lower := strings.ToLower(input)

	for i := range candidates {
		if strings.ToLower(FormatEmployeeOption(candidates[i])) == lower {
			return &candidates[i], true
		}
	}
	for i := range candidates {
		if strings.ToLower(candidates[i].EmployeeCode) == lower {
			return &candidates[i], true
		}
	}

	var partial []*Employee
	for i := range candidates {
		e := &candidates[i]
		name := strings.ToLower(e.FirstName + " " + e.LastName)
		if strings.HasPrefix(strings.ToLower(e.EmployeeCode), lower) || strings.Contains(name, lower) {
			partial = append(partial, e)
		}
	}
	if len(partial) == 1 {
		return partial[0], true
	}
	return nil, false
}
