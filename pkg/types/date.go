package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout формат календарной даты без времени
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается, если строку не удалось разобрать как дату
var ErrInvalidDate = errors.New("types: invalid date")

// Date календарная дата (YYYY-MM-DD) без времени и часового пояса.
// Нулевое значение означает отсутствие даты.
type Date struct {
	t time.Time
}

// NewDate создает дату из года, месяца и дня
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf возвращает календарную дату момента времени в его часовом поясе
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate разбирает строку вида YYYY-MM-DD.
// Допускается суффикс времени, начинающийся с 'T' или пробела
// (например, "2024-06-10T00:00:00Z"), он отбрасывается.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		switch s[len(DateLayout)] {
		case 'T', ' ':
			s = s[:len(DateLayout)]
		}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

// MustParseDate как ParseDate, но паникует при ошибке (для констант и тестов)
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero возвращает true, если дата не задана
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// String возвращает дату в формате YYYY-MM-DD (пустая строка для нулевой даты)
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Time возвращает полночь даты в UTC
func (d Date) Time() time.Time {
	return d.t
}

// AddDays возвращает дату, сдвинутую на n дней
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Before сообщает, предшествует ли дата другой
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After сообщает, следует ли дата за другой
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal сообщает, совпадают ли даты
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// MonthStart возвращает первый день месяца даты
func (d Date) MonthStart() Date {
	return NewDate(d.t.Year(), d.t.Month(), 1)
}

// MonthKey возвращает месяц в формате YYYY-MM
func (d Date) MonthKey() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format("2006-01")
}

// MarshalJSON сериализует дату в "YYYY-MM-DD" или null
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON разбирает "YYYY-MM-DD", строку с временем, пустую строку или null
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan реализует sql.Scanner
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, src)
	}
}

// MonthRange возвращает полуинтервал [начало месяца, начало следующего месяца)
// для месяца в формате YYYY-MM
func MonthRange(month string) (Date, Date, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(month))
	if err != nil {
		return Date{}, Date{}, fmt.Errorf("%w: month %q", ErrInvalidDate, month)
	}
	start := NewDate(t.Year(), t.Month(), 1)
	return start, NewDate(t.Year(), t.Month()+1, 1), nil
}
