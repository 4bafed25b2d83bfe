// Package mocks содержит testify-моки шлюза данных для тестов репозиториев и сервисов
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
)

// Gateway мок gateway.Gateway
type Gateway struct {
	mock.Mock
}

var _ gateway.Gateway = (*Gateway)(nil)

// Configured мок
func (m *Gateway) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

// Select мок
func (m *Gateway) Select(ctx context.Context, resource string, q gateway.Query) ([]gateway.Row, error) {
	args := m.Called(ctx, resource, q)
	rows, _ := args.Get(0).([]gateway.Row)
	return rows, args.Error(1)
}

// Insert мок
func (m *Gateway) Insert(ctx context.Context, table string, rows []gateway.Row) ([]string, error) {
	args := m.Called(ctx, table, rows)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

// Update мок
func (m *Gateway) Update(ctx context.Context, table string, filters []gateway.Filter, patch gateway.Row) ([]string, error) {
	args := m.Called(ctx, table, filters, patch)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

// Delete мок
func (m *Gateway) Delete(ctx context.Context, table string, filters []gateway.Filter) error {
	args := m.Called(ctx, table, filters)
	return args.Error(0)
}
