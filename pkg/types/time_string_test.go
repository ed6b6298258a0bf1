package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	require.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("9am")
	require.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, "00:00", ts.String())

	ts, err = NewTimeStringFromMinutes(9*60 + 5)
	require.NoError(t, err)
	assert.Equal(t, "09:05", ts.String())

	ts, err = NewTimeStringFromMinutes(23*60 + 59)
	require.NoError(t, err)
	assert.Equal(t, "23:59", ts.String())

	_, err = NewTimeStringFromMinutes(24 * 60)
	require.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = NewTimeStringFromMinutes(-1)
	require.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_MinutesOfDay(t *testing.T) {
	minutes, err := TimeString("14:45").MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 14*60+45, minutes)

	_, err = TimeString("garbage").MinutesOfDay()
	require.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("10:00").AddMinutes(75)
	require.NoError(t, err)
	assert.Equal(t, "11:15", ts.String())

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	require.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
	assert.True(t, TimeString("11:00").IsAfter(TimeString("10:59")))
	assert.False(t, TimeString("11:00").IsAfter(TimeString("11:00")))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 8, 7, 33, 0, time.UTC))
	assert.Equal(t, "08:07", ts.String())
}

func TestTimeString_Clock12(t *testing.T) {
	assert.Equal(t, "9:00 AM", TimeString("09:00").Clock12())
	assert.Equal(t, "12:00 PM", TimeString("12:00").Clock12())
	assert.Equal(t, "4:30 PM", TimeString("16:30").Clock12())
	assert.Equal(t, "12:05 AM", TimeString("00:05").Clock12())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("10:30"))
	assert.Equal(t, "10:30", ts.String())

	// Postgres TIME приходит как HH:MM:SS
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, "10:30", ts.String())

	require.NoError(t, ts.Scan([]byte("08:15:30")))
	assert.Equal(t, "08:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}
