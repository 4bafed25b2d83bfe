package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
)

// Gateway прямой доступ к PostgreSQL для развёртываний рядом с базой.
// Реализует gateway.Gateway поверх той же схемы, что и hosted data API.
type Gateway struct {
	db     DBExecutor
	schema string
}

// NewGateway создает шлюз PostgreSQL для указанной схемы
func NewGateway(db DBExecutor, schema string) *Gateway {
	return &Gateway{db: db, schema: schema}
}

// Configured всегда true: соединение установлено при старте
func (g *Gateway) Configured() bool {
	return true
}

// Select читает строки таблицы или представления
func (g *Gateway) Select(ctx context.Context, resource string, q gateway.Query) ([]gateway.Row, error) {
	if err := gateway.CheckReadable(resource); err != nil {
		return nil, err
	}

	query, args, err := buildSelect(g.schema, resource, q)
	if err != nil {
		return nil, err
	}

	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("Select", resource, err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// Insert вставляет строки одним запросом и возвращает первичные ключи
func (g *Gateway) Insert(ctx context.Context, table string, rows []gateway.Row) ([]string, error) {
	key, err := gateway.CheckWritable(table)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []string{}, nil
	}

	query, args, err := buildInsert(g.schema, table, key, rows)
	if err != nil {
		return nil, err
	}
	return g.queryKeys(ctx, "Insert", table, query, args)
}

// Update обновляет строки по фильтру и возвращает ключи затронутых строк
func (g *Gateway) Update(ctx context.Context, table string, filters []gateway.Filter, patch gateway.Row) ([]string, error) {
	key, err := gateway.CheckWritable(table)
	if err != nil {
		return nil, err
	}
	if len(filters) == 0 {
		return nil, gateway.ErrEmptyFilter
	}

	query, args, err := buildUpdate(g.schema, table, key, filters, patch)
	if err != nil {
		return nil, err
	}
	return g.queryKeys(ctx, "Update", table, query, args)
}

// Delete удаляет строки по фильтру
func (g *Gateway) Delete(ctx context.Context, table string, filters []gateway.Filter) error {
	if _, err := gateway.CheckWritable(table); err != nil {
		return err
	}
	if len(filters) == 0 {
		return gateway.ErrEmptyFilter
	}

	query, args, err := buildDelete(g.schema, table, filters)
	if err != nil {
		return err
	}
	if _, err := g.db.ExecContext(ctx, query, args...); err != nil {
		return mapError("Delete", table, err)
	}
	return nil
}

func (g *Gateway) queryKeys(ctx context.Context, op, table, query string, args []interface{}) ([]string, error) {
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(op, table, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id interface{}
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %s - %s: %v", ErrScanRow, op, table, err)
		}
		ids = append(ids, gateway.KeyString(id))
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(op, table, err)
	}
	return ids, nil
}

func scanRows(rows *sql.Rows) ([]gateway.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: columns: %v", ErrScanRow, err)
	}

	result := []gateway.Row{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
		}

		row := make(gateway.Row, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}
	return result, nil
}

// normalizeValue приводит []byte (uuid, numeric, text) к строке
func normalizeValue(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// mapError переводит ошибки драйвера в таксономию шлюза:
// *pq.Error -> BackendError, остальное -> ErrTransport
func mapError(op, resource string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &gateway.BackendError{
			Code:    string(pqErr.Code),
			Message: pqErr.Message,
			Details: pqErr.Detail,
			Hint:    pqErr.Hint,
		}
	}
	return fmt.Errorf("%w: %s - %s: %v", gateway.ErrTransport, op, resource, err)
}
