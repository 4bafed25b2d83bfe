package postgres

import (
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	"github.com/m04kA/SMC-OfficeBooking/pkg/psqlbuilder"
)

// qualify возвращает имя ресурса со схемой в кавычках
func qualify(schema, resource string) string {
	if schema == "" {
		return pq.QuoteIdentifier(resource)
	}
	return pq.QuoteIdentifier(schema) + "." + pq.QuoteIdentifier(resource)
}

func whereEq(filters []gateway.Filter) squirrel.Eq {
	eq := squirrel.Eq{}
	for _, f := range filters {
		eq[f.Column] = f.Value
	}
	return eq
}

func buildSelect(schema, resource string, q gateway.Query) (string, []interface{}, error) {
	columns := q.Columns
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	b := psqlbuilder.Select(columns...).From(qualify(schema, resource))
	if len(q.Filters) > 0 {
		b = b.Where(whereEq(q.Filters))
	}
	for _, o := range q.Order {
		direction := "ASC"
		if o.Descending {
			direction = "DESC"
		}
		b = b.OrderBy(o.Column + " " + direction)
	}
	if q.Limit > 0 {
		b = b.Limit(uint64(q.Limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Select - %s: %v", ErrBuildQuery, resource, err)
	}
	return query, args, nil
}

// buildInsert строит многострочный INSERT по объединению колонок всех строк;
// отсутствующие значения передаются как NULL
func buildInsert(schema, table, key string, rows []gateway.Row) (string, []interface{}, error) {
	columnSet := make(map[string]struct{})
	for _, row := range rows {
		for col := range row {
			columnSet[col] = struct{}{}
		}
	}
	columns := make([]string, 0, len(columnSet))
	for col := range columnSet {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	b := psqlbuilder.Insert(qualify(schema, table)).Columns(columns...)
	for _, row := range rows {
		values := make([]interface{}, len(columns))
		for i, col := range columns {
			values[i] = row[col]
		}
		b = b.Values(values...)
	}
	b = b.Suffix("RETURNING " + pq.QuoteIdentifier(key))

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Insert - %s: %v", ErrBuildQuery, table, err)
	}
	return query, args, nil
}

func buildUpdate(schema, table, key string, filters []gateway.Filter, patch gateway.Row) (string, []interface{}, error) {
	query, args, err := psqlbuilder.Update(qualify(schema, table)).
		SetMap(map[string]interface{}(patch)).
		Where(whereEq(filters)).
		Suffix("RETURNING " + pq.QuoteIdentifier(key)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Update - %s: %v", ErrBuildQuery, table, err)
	}
	return query, args, nil
}

func buildDelete(schema, table string, filters []gateway.Filter) (string, []interface{}, error) {
	query, args, err := psqlbuilder.Delete(qualify(schema, table)).
		Where(whereEq(filters)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Delete - %s: %v", ErrBuildQuery, table, err)
	}
	return query, args, nil
}
