package domain

import (
	"sort"
	"strings"

	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

// RangeDates возвращает все даты от start до end включительно по возрастанию
func RangeDates(start, end string) ([]types.Date, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return nil, ErrInvalidDateRange
	}
	from, err := types.ParseDate(start)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	to, err := types.ParseDate(end)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if to.Before(from) {
		return nil, ErrEndBeforeStart
	}

	var dates []types.Date
	for cursor := from; !cursor.After(to); cursor = cursor.AddDays(1) {
		dates = append(dates, cursor)
	}
	return dates, nil
}

// NormalizeDates возвращает отсортированную копию набора дат без повторов
func NormalizeDates(dates []types.Date) []types.Date {
	sorted := append([]types.Date{}, dates...)
	sortDates(sorted)

	result := make([]types.Date, 0, len(sorted))
	for i, d := range sorted {
		if i > 0 && d.Equal(sorted[i-1]) {
			continue
		}
		result = append(result, d)
	}
	return result
}

func sortDates(dates []types.Date) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
}

func containsDate(dates []types.Date, target types.Date) bool {
	for _, d := range dates {
		if d.Equal(target) {
			return true
		}
	}
	return false
}

// DateStrings форматирует даты как YYYY-MM-DD
func DateStrings(dates []types.Date) []string {
	result := make([]string, len(dates))
	for i, d := range dates {
		result[i] = d.String()
	}
	return result
}
