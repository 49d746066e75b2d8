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

	_, err = NewTimeStringFromString("9:30am")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 10, 14, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(moment))
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("10:45").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 10*60+45, minutes)

	_, err = TimeString("garbage").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), result)

	result, err = TimeString("23:00").AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), result)

	_, err = TimeString("23:30").AddMinutes(45)
	assert.Error(t, err, "переход через полночь недопустим")

	_, err = TimeString("00:30").AddMinutes(-45)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}
