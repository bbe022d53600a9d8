package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBack(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Not/AZone"))

	loc := Location("Not/AZone")
	require.NotNil(t, loc)
	assert.Equal(t, Location(""), loc)
}

func TestParseDay(t *testing.T) {
	loc := time.FixedZone("PHT", 8*60*60)

	day, ok := ParseDay("2024-10-31", loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 10, 30, 16, 0, 0, 0, time.UTC), day.UTC())

	_, ok = ParseDay("31/10/2024", loc)
	assert.False(t, ok)
}

func TestDayRange(t *testing.T) {
	loc := time.FixedZone("PHT", 8*60*60)

	start, end := DayRange("2024-10-01", "2024-10-31", loc)
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, loc), *start)
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, loc), *end)

	start, end = DayRange("", "garbage", loc)
	assert.Nil(t, start)
	assert.Nil(t, end)
}
