package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfficeBooking/pkg/logger"
	"github.com/m04kA/SMC-OfficeBooking/pkg/metrics"
	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

func TestDecode(t *testing.T) {
	rows := []Row{
		{"id": "h1", "holiday_date": time.Date(2024, 4, 13, 0, 0, 0, 0, time.UTC), "seats": json.Number("20")},
		{"id": "h2", "holiday_date": "2024-12-31", "seats": nil},
	}

	var dest []struct {
		ID          string     `json:"id"`
		HolidayDate types.Date `json:"holiday_date"`
		Seats       *int       `json:"seats"`
	}
	require.NoError(t, Decode(rows, &dest))
	require.Len(t, dest, 2)
	assert.Equal(t, "2024-04-13", dest[0].HolidayDate.String())
	require.NotNil(t, dest[0].Seats)
	assert.Equal(t, 20, *dest[0].Seats)
	assert.Nil(t, dest[1].Seats)
}

func TestDecode_TypeMismatch(t *testing.T) {
	var dest []struct {
		Total int `json:"total"`
	}
	err := Decode([]Row{{"total": "many"}}, &dest)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestResources(t *testing.T) {
	key, err := PrimaryKey(TableEmployeeProfiles)
	require.NoError(t, err)
	assert.Equal(t, "user_id", key)

	_, err = PrimaryKey(ViewOfficeHolidayOverview)
	assert.ErrorIs(t, err, ErrReadOnlyResource)

	_, err = PrimaryKey("salaries")
	assert.ErrorIs(t, err, ErrUnknownResource)

	assert.NoError(t, CheckReadable(ViewDepartmentDailyCapacity))
	assert.True(t, IsView(ViewEmployeeYearlyAttendance))
	assert.False(t, IsView(TableBookings))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "42", KeyString(float64(42)))
	assert.Equal(t, "42", KeyString(json.Number("42")))
	assert.Equal(t, "abc", KeyString([]byte("abc")))
	assert.Equal(t, "7", KeyString(int64(7)))
	assert.Equal(t, "", KeyString(nil))
}

type stubGateway struct {
	err error
}

func (s *stubGateway) Configured() bool { return true }

func (s *stubGateway) Select(context.Context, string, Query) ([]Row, error) {
	return []Row{}, s.err
}

func (s *stubGateway) Insert(context.Context, string, []Row) ([]string, error) {
	return []string{"1"}, s.err
}

func (s *stubGateway) Update(context.Context, string, []Filter, Row) ([]string, error) {
	return nil, s.err
}

func (s *stubGateway) Delete(context.Context, string, []Filter) error {
	return s.err
}

func TestInstrumented_RecordsOutcome(t *testing.T) {
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	stub := &stubGateway{}
	g := NewInstrumented(stub, m, logger.NewNop())

	_, err := g.Select(context.Background(), TableOffices, Query{})
	require.NoError(t, err)

	stub.err = errors.New("boom")
	_, err = g.Insert(context.Background(), TableBookings, []Row{{}})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GatewayRequestsTotal.WithLabelValues("select", TableOffices, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GatewayRequestsTotal.WithLabelValues("insert", TableBookings, "error")))
	assert.True(t, g.Configured())
}
