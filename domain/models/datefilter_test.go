package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, March 12 2025, mid-afternoon.
var testNow = time.Date(2025, time.March, 12, 15, 30, 45, 0, time.UTC)

func TestDateFilterValid(t *testing.T) {
	for _, f := range DateFilters() {
		assert.True(t, f.Valid(), "filter %q should be valid", f)
	}
	assert.False(t, DateFilter("yesterday").Valid())
	assert.False(t, DateFilter("Today").Valid())
	assert.False(t, DateFilter("").Valid())
}

func TestResolveToday(t *testing.T) {
	r := FilterToday.Resolve(testNow)

	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Nil(t, r.Before)

	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), *r.Start)
	assert.Equal(t, time.Date(2025, time.March, 12, 23, 59, 59, 999_000_000, time.UTC), *r.End)
}

func TestResolveWeek(t *testing.T) {
	r := FilterWeek.Resolve(testNow)

	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)

	// Week starts on the preceding Sunday and runs six days.
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), *r.Start)
	assert.Equal(t, time.Date(2025, time.March, 15, 23, 59, 59, 999_000_000, time.UTC), *r.End)
	assert.Equal(t, time.Sunday, r.Start.Weekday())
	assert.Equal(t, time.Saturday, r.End.Weekday())
}

func TestResolveWeekOnSunday(t *testing.T) {
	sunday := time.Date(2025, time.March, 9, 8, 0, 0, 0, time.UTC)
	r := FilterWeek.Resolve(sunday)

	require.NotNil(t, r.Start)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), *r.Start)
}

func TestResolveMonth(t *testing.T) {
	r := FilterMonth.Resolve(testNow)

	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), *r.Start)
	assert.Equal(t, time.Date(2025, time.March, 31, 23, 59, 59, 999_000_000, time.UTC), *r.End)
}

func TestResolveMonthAcrossLengths(t *testing.T) {
	feb := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
	r := FilterMonth.Resolve(feb)

	require.NotNil(t, r.End)
	// 2024 is a leap year.
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999_000_000, time.UTC), *r.End)
}

func TestResolveOverdue(t *testing.T) {
	r := FilterOverdue.Resolve(testNow)

	assert.Nil(t, r.Start)
	assert.Nil(t, r.End)
	require.NotNil(t, r.Before)
	assert.Equal(t, testNow, *r.Before)
}
