package domain

// Lookup снимок справочников, загруженный при старте.
// Значение неизменяемо: обновление заменяет снимок целиком.
type Lookup struct {
	Offices     []Office       `json:"offices"`
	Departments []Department   `json:"departments"`
	Seats       []Seat         `json:"seats"`
	Purposes    []Purpose      `json:"purposes"`
	Employees   []Employee     `json:"employees"`
	Strategies  []StrategyInfo `json:"strategies"`
}

// Office ищет офис по идентификатору
func (l *Lookup) Office(id string) (*Office, bool) {
	for i := range l.Offices {
		if l.Offices[i].ID == id {
			return &l.Offices[i], true
		}
	}
	return nil, false
}

// Department ищет отдел по идентификатору
func (l *Lookup) Department(id string) (*Department, bool) {
	if id == "" {
		return nil, false
	}
	for i := range l.Departments {
		if l.Departments[i].ID == id {
			return &l.Departments[i], true
		}
	}
	return nil, false
}

// Seat ищет место по идентификатору
func (l *Lookup) Seat(id string) (*Seat, bool) {
	for i := range l.Seats {
		if l.Seats[i].ID == id {
			return &l.Seats[i], true
		}
	}
	return nil, false
}

// Purpose ищет цель по идентификатору
func (l *Lookup) Purpose(id string) (*Purpose, bool) {
	for i := range l.Purposes {
		if l.Purposes[i].ID == id {
			return &l.Purposes[i], true
		}
	}
	return nil, false
}

// Employee ищет сотрудника по user_id
func (l *Lookup) Employee(userID string) (*Employee, bool) {
	if userID == "" {
		return nil, false
	}
	for i := range l.Employees {
		if l.Employees[i].UserID == userID {
			return &l.Employees[i], true
		}
	}
	return nil, false
}

// OfficeName возвращает название офиса для отображения:
// AllOfficesLabel для пустого идентификатора, UnknownOfficeLabel для неизвестного
func (l *Lookup) OfficeName(officeID *string) string {
	if officeID == nil || *officeID == "" {
		return AllOfficesLabel
	}
	if office, ok := l.Office(*officeID); ok {
		return office.Name
	}
	return UnknownOfficeLabel
}

// DepartmentIDByName обратное сопоставление по названию (первое совпадение)
func (l *Lookup) DepartmentIDByName(name string) string {
	for _, d := range l.Departments {
		if name != "" && d.Name == name {
			return d.ID
		}
	}
	return ""
}

// PurposeIDByName обратное сопоставление по названию (первое совпадение)
func (l *Lookup) PurposeIDByName(name string) string {
	for _, p := range l.Purposes {
		if name != "" && p.Name == name {
			return p.ID
		}
	}
	return ""
}

// SeatIDByCode обратное сопоставление по коду места (первое совпадение)
func (l *Lookup) SeatIDByCode(code string) string {
	for _, s := range l.Seats {
		if code != "" && s.SeatCode == code {
			return s.ID
		}
	}
	return ""
}
