package sample

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
)

// Gateway статический демонстрационный набор данных для работы без подключения.
// Чтение применяет фильтры, сортировку и лимит в памяти, запись всегда отклоняется.
type Gateway struct {
	data map[string][]gateway.Row
}

// NewGateway создает шлюз с набором данных относительно now
func NewGateway(now time.Time) *Gateway {
	return &Gateway{data: buildDataset(now)}
}

// Configured всегда false
func (g *Gateway) Configured() bool {
	return false
}

// Select читает копию строк демонстрационного набора
func (g *Gateway) Select(_ context.Context, resource string, q gateway.Query) ([]gateway.Row, error) {
	if err := gateway.CheckReadable(resource); err != nil {
		return nil, err
	}

	result := []gateway.Row{}
	for _, row := range g.data[resource] {
		if matches(row, q.Filters) {
			result = append(result, project(row, q.Columns))
		}
	}

	if len(q.Order) > 0 {
		sort.SliceStable(result, func(i, j int) bool {
			for _, o := range q.Order {
				c := compare(result[i][o.Column], result[j][o.Column])
				if c == 0 {
					continue
				}
				if o.Descending {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}

	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}
	return result, nil
}

// Insert отклоняется: источник данных не настроен
func (g *Gateway) Insert(_ context.Context, table string, _ []gateway.Row) ([]string, error) {
	if _, err := gateway.CheckWritable(table); err != nil {
		return nil, err
	}
	return nil, gateway.ErrNotConfigured
}

// Update отклоняется: источник данных не настроен
func (g *Gateway) Update(_ context.Context, table string, _ []gateway.Filter, _ gateway.Row) ([]string, error) {
	if _, err := gateway.CheckWritable(table); err != nil {
		return nil, err
	}
	return nil, gateway.ErrNotConfigured
}

// Delete отклоняется: источник данных не настроен
func (g *Gateway) Delete(_ context.Context, table string, _ []gateway.Filter) error {
	if _, err := gateway.CheckWritable(table); err != nil {
		return err
	}
	return gateway.ErrNotConfigured
}

func matches(row gateway.Row, filters []gateway.Filter) bool {
	for _, f := range filters {
		value, ok := row[f.Column]
		if f.Value == nil {
			if ok && value != nil {
				return false
			}
			continue
		}
		if !ok || value == nil || fmt.Sprint(value) != fmt.Sprint(f.Value) {
			return false
		}
	}
	return true
}

func project(row gateway.Row, columns []string) gateway.Row {
	out := make(gateway.Row, len(row))
	if len(columns) == 0 {
		for k, v := range row {
			out[k] = v
		}
		return out
	}
	for _, col := range columns {
		out[col] = row[col]
	}
	return out
}

// compare упорядочивает значения: nil последним, числа численно, остальное как строки
func compare(a, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	ai, aInt := a.(int)
	bi, bInt := b.(int)
	if aInt && bInt {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}
