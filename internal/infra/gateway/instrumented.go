package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-OfficeBooking/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Instrumented декоратор шлюза: метрики длительности и логирование ошибок
type Instrumented struct {
	next    Gateway
	metrics *metrics.Metrics
	logger  Logger
}

// NewInstrumented оборачивает шлюз. metrics может быть nil.
func NewInstrumented(next Gateway, m *metrics.Metrics, logger Logger) *Instrumented {
	return &Instrumented{next: next, metrics: m, logger: logger}
}

// Configured делегирует вызов
func (g *Instrumented) Configured() bool {
	return g.next.Configured()
}

// Select читает строки с замером длительности
func (g *Instrumented) Select(ctx context.Context, resource string, q Query) ([]Row, error) {
	start := time.Now()
	rows, err := g.next.Select(ctx, resource, q)
	g.observe("select", resource, err, start)
	return rows, err
}

// Insert вставляет строки с замером длительности
func (g *Instrumented) Insert(ctx context.Context, table string, rows []Row) ([]string, error) {
	start := time.Now()
	ids, err := g.next.Insert(ctx, table, rows)
	g.observe("insert", table, err, start)
	return ids, err
}

// Update обновляет строки с замером длительности
func (g *Instrumented) Update(ctx context.Context, table string, filters []Filter, patch Row) ([]string, error) {
	start := time.Now()
	ids, err := g.next.Update(ctx, table, filters, patch)
	g.observe("update", table, err, start)
	return ids, err
}

// Delete удаляет строки с замером длительности
func (g *Instrumented) Delete(ctx context.Context, table string, filters []Filter) error {
	start := time.Now()
	err := g.next.Delete(ctx, table, filters)
	g.observe("delete", table, err, start)
	return err
}

func (g *Instrumented) observe(op, resource string, err error, start time.Time) {
	elapsed := time.Since(start)
	g.metrics.ObserveGateway(op, resource, err, elapsed)

	if err == nil {
		return
	}
	switch {
	case errors.Is(err, ErrNotConfigured):
		g.logger.Warn("Gateway: %s %s rejected, data source not configured", op, resource)
	case errors.Is(err, ErrTransport):
		g.logger.Error("Gateway: %s %s transport failure after %s: %v", op, resource, elapsed, err)
	default:
		g.logger.Warn("Gateway: %s %s failed: %v", op, resource, err)
	}
}
