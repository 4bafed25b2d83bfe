package gateway

import (
	"context"
)

// Row строка таблицы или представления: имя колонки -> значение
type Row map[string]interface{}

// Filter условие равенства колонки значению
type Filter struct {
	Column string
	Value  interface{}
}

// Eq создает фильтр равенства
func Eq(column string, value interface{}) Filter {
	return Filter{Column: column, Value: value}
}

// Order сортировка по колонке
type Order struct {
	Column     string
	Descending bool
}

// Asc создает сортировку по возрастанию
func Asc(column string) Order {
	return Order{Column: column}
}

// Query параметры чтения. Пустой Columns означает все колонки, Limit 0 - без ограничения.
type Query struct {
	Columns []string
	Filters []Filter
	Order   []Order
	Limit   int
}

// Gateway доступ к именованным таблицам и представлениям источника данных
type Gateway interface {
	// Configured сообщает, выполняются ли реальные вызовы
	Configured() bool
	// Select читает строки таблицы или представления
	Select(ctx context.Context, resource string, q Query) ([]Row, error)
	// Insert вставляет строки и возвращает их первичные ключи
	Insert(ctx context.Context, table string, rows []Row) ([]string, error)
	// Update обновляет строки по фильтру и возвращает ключи затронутых строк
	Update(ctx context.Context, table string, filters []Filter, patch Row) ([]string, error)
	// Delete удаляет строки по фильтру
	Delete(ctx context.Context, table string, filters []Filter) error
}
