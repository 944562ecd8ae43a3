package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestAgeInMonthsWHO tests the WHO month conversion with various scenarios
func TestAgeInMonthsWHO(t *testing.T) {
	tests := []struct {
		name     string
		birth    time.Time
		ref      time.Time
		expected float64
	}{
		{
			name:     "Same day",
			birth:    date(2024, 3, 1),
			ref:      date(2024, 3, 1),
			expected: 0,
		},
		{
			name:     "One WHO month of days",
			birth:    date(2024, 1, 1),
			ref:      date(2024, 1, 31),
			expected: 30 / WHOMonthDays,
		},
		{
			name:     "Leap year span",
			birth:    date(2020, 1, 1),
			ref:      date(2021, 1, 1),
			expected: 366 / WHOMonthDays,
		},
		{
			name:     "Reference before birth uses magnitude",
			birth:    date(2024, 1, 31),
			ref:      date(2024, 1, 1),
			expected: 30 / WHOMonthDays,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AgeInMonthsWHO(tt.birth, tt.ref), 1e-12)
		})
	}
}

func TestAgeInMonthsWHO_CeilsDayCount(t *testing.T) {
	birth := date(2024, 1, 1)
	ref := birth.Add(10*24*time.Hour + time.Hour)

	// 10 days and one hour counts as 11 whole days
	assert.InDelta(t, 11/WHOMonthDays, AgeInMonthsWHO(birth, ref), 1e-12)
}

func TestCeilDays(t *testing.T) {
	from := date(2025, 1, 28)
	assert.Equal(t, 78.0, CeilDays(from, date(2025, 4, 16), false))
	assert.Equal(t, -78.0, CeilDays(date(2025, 4, 16), from, false))
	assert.Equal(t, 78.0, CeilDays(date(2025, 4, 16), from, true))
}

func TestAddMonthsOverflow(t *testing.T) {
	assert.Equal(t, date(2025, 3, 3), AddMonths(date(2025, 1, 31), 1))
	assert.Equal(t, date(2025, 2, 28), AddMonths(date(2024, 11, 28), 3))
}

func TestWithDayKeepsClock(t *testing.T) {
	in := time.Date(2025, 6, 3, 9, 30, 0, 0, time.UTC)
	got := WithDay(in, 28)
	assert.Equal(t, time.Date(2025, 6, 28, 9, 30, 0, 0, time.UTC), got)
}

func TestPaymentDate(t *testing.T) {
	tests := []struct {
		name     string
		purchase time.Time
		expected time.Time
	}{
		{"Mid month", date(2025, 1, 10), date(2025, 4, 15)},
		{"Year rollover", date(2025, 11, 2), date(2026, 2, 15)},
		{"Overflowing month end", date(2025, 11, 30), date(2026, 3, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PaymentDate(tt.purchase))
		})
	}
}

func TestFormatAndParse(t *testing.T) {
	d := date(2025, 4, 5)
	assert.Equal(t, "05.04.2025", FormatTR(d))

	for _, in := range []string{"2025-04-05", "05.04.2025", " 2025-04-05 "} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, d, got)
	}

	_, err := ParseDate("April 5th")
	assert.Error(t, err)
}
