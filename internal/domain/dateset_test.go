package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfficeBooking/pkg/types"
)

func TestRangeDates(t *testing.T) {
	dates, err := RangeDates("2024-06-10", "2024-06-12")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-10", "2024-06-11", "2024-06-12"}, DateStrings(dates))
}

func TestRangeDates_SingleDay(t *testing.T) {
	dates, err := RangeDates("2024-06-10", "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-10"}, DateStrings(dates))
}

func TestRangeDates_AcrossMonthEnd(t *testing.T) {
	dates, err := RangeDates("2024-01-30", "2024-02-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}, DateStrings(dates))
}

func TestRangeDates_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{name: "end before start", start: "2024-06-12", end: "2024-06-10", wantErr: ErrEndBeforeStart},
		{name: "missing start", start: "", end: "2024-06-10", wantErr: ErrInvalidDateRange},
		{name: "missing end", start: "2024-06-10", end: " ", wantErr: ErrInvalidDateRange},
		{name: "unparseable", start: "2024-02-30", end: "2024-03-01", wantErr: ErrInvalidDateRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := RangeDates(tt.start, tt.end)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, dates)
		})
	}
}

func TestDraft_MultiSelectKeepsSortedUniqueSet(t *testing.T) {
	d, err := NewDraft(testToday).SetMode(ModeMulti, testToday)
	require.NoError(t, err)

	for _, raw := range []string{"2024-06-14", "2024-06-10", "2024-06-12"} {
		d, err = d.AddDate(raw)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"2024-06-10", "2024-06-12", "2024-06-14"}, DateStrings(d.MultiDates))

	again, err := d.AddDate("2024-06-12")
	assert.ErrorIs(t, err, ErrDuplicateDate)
	assert.Equal(t, DateStrings(d.MultiDates), DateStrings(again.MultiDates))

	set, err := d.DateSet()
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-10", "2024-06-12", "2024-06-14"}, DateStrings(set))
}

func TestDraft_AddDateRejectsBadInput(t *testing.T) {
	d := NewDraft(testToday)

	_, err := d.AddDate("")
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = d.AddDate("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = d.AddDate("2024-06-10garbage")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDraft_RemoveDate(t *testing.T) {
	d := NewDraft(testToday)
	d, _ = d.AddDate("2024-06-10")
	d, _ = d.AddDate("2024-06-11")

	removed := d.RemoveDate("2024-06-10")
	assert.Equal(t, []string{"2024-06-11"}, DateStrings(removed.MultiDates))
	// исходный черновик не меняется
	assert.Len(t, d.MultiDates, 2)

	assert.Len(t, d.RemoveDate("2024-07-01").MultiDates, 2)
}

func TestDraft_DateSetEmptyMulti(t *testing.T) {
	d, err := NewDraft(testToday).SetMode(ModeMulti, testToday)
	require.NoError(t, err)

	_, err = d.DateSet()
	assert.ErrorIs(t, err, ErrEmptyDateSet)
}

func TestNormalizeDates(t *testing.T) {
	in := []types.Date{
		types.MustParseDate("2024-06-12"),
		types.MustParseDate("2024-06-10"),
		types.MustParseDate("2024-06-12"),
	}
	assert.Equal(t, []string{"2024-06-10", "2024-06-12"}, DateStrings(NormalizeDates(in)))
	assert.Equal(t, "2024-06-12", in[0].String())
}
