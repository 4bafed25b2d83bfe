package postgres

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
)

func TestBuildSelect(t *testing.T) {
	query, args, err := buildSelect("boksite", gateway.ViewEmployeeBookingHistory, gateway.Query{
		Filters: []gateway.Filter{gateway.Eq("status", "BOOKED")},
		Order:   []gateway.Order{gateway.Asc("booking_date")},
		Limit:   20,
	})
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT * FROM "boksite"."employee_booking_history" WHERE status = $1 ORDER BY booking_date ASC LIMIT 20`,
		query)
	assert.Equal(t, []interface{}{"BOOKED"}, args)
}

func TestBuildSelect_NullFilter(t *testing.T) {
	query, args, err := buildSelect("", gateway.TableCompanyHolidays, gateway.Query{
		Columns: []string{"id", "name"},
		Filters: []gateway.Filter{gateway.Eq("office_id", nil)},
	})
	require.NoError(t, err)
	assert.Equal(t, `SELECT id, name FROM "company_holidays" WHERE office_id IS NULL`, query)
	assert.Empty(t, args)
}

func TestBuildInsert_UnionOfColumns(t *testing.T) {
	query, args, err := buildInsert("boksite", gateway.TableBookings, "id", []gateway.Row{
		{"booking_date": "2024-06-10", "user_id": "user-1"},
		{"booking_date": "2024-06-11", "user_id": "user-1", "note": "remote"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		`INSERT INTO "boksite"."bookings" (booking_date,note,user_id) VALUES ($1,$2,$3),($4,$5,$6) RETURNING "id"`,
		query)
	assert.Equal(t, []interface{}{"2024-06-10", nil, "user-1", "2024-06-11", "remote", "user-1"}, args)
}

func TestBuildUpdate(t *testing.T) {
	query, args, err := buildUpdate("boksite", gateway.TableBookings, "id",
		[]gateway.Filter{gateway.Eq("id", "b1")}, gateway.Row{"status": "CANCELLED"})
	require.NoError(t, err)
	assert.Equal(t, `UPDATE "boksite"."bookings" SET status = $1 WHERE id = $2 RETURNING "id"`, query)
	assert.Equal(t, []interface{}{"CANCELLED", "b1"}, args)
}

func TestBuildDelete(t *testing.T) {
	query, args, err := buildDelete("boksite", gateway.TableCompanyHolidays, []gateway.Filter{gateway.Eq("id", "h1")})
	require.NoError(t, err)
	assert.Equal(t, `DELETE FROM "boksite"."company_holidays" WHERE id = $1`, query)
	assert.Equal(t, []interface{}{"h1"}, args)
}

func TestMapError(t *testing.T) {
	err := mapError("Insert", "bookings", &pq.Error{Code: "23505", Message: "duplicate key", Detail: "Key exists"})
	backendErr, ok := gateway.AsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, "23505", backendErr.Code)
	assert.Equal(t, "duplicate key", backendErr.Error())

	err = mapError("Select", "offices", errors.New("connection refused"))
	assert.ErrorIs(t, err, gateway.ErrTransport)
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "3f1c", normalizeValue([]byte("3f1c")))
	assert.Equal(t, int64(4), normalizeValue(int64(4)))
	assert.Nil(t, normalizeValue(nil))
}
