package dateutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// WHOMonthDays is the average month length used by the WHO growth standards.
const WHOMonthDays = 30.4375

// DisplayLayout is the tr-TR short date layout (dd.MM.yyyy).
const DisplayLayout = "02.01.2006"

// ISOLayout is the layout used by date inputs and configuration files.
const ISOLayout = "2006-01-02"

// AgeInMonthsWHO returns the age between birthDate and refDate in WHO months.
// The day count is rounded up before dividing, and the order of the two dates
// does not matter.
func AgeInMonthsWHO(birthDate, refDate time.Time) float64 {
	return CeilDays(birthDate, refDate, true) / WHOMonthDays
}

// CeilDays returns the number of days from `from` to `to`, rounded up.
// With abs set, the magnitude of the difference is used.
func CeilDays(from, to time.Time, abs bool) float64 {
	days := to.Sub(from).Hours() / 24
	if abs {
		days = math.Abs(days)
	}
	return math.Ceil(days)
}

// AddMonths adds a specified number of months to a date.
// Day overflow rolls into the following month (Jan 31 + 1 month = Mar 3).
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// WithDay returns date with its day-of-month replaced, keeping the clock time.
func WithDay(date time.Time, day int) time.Time {
	return time.Date(date.Year(), date.Month(), day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// PaymentDate returns the invoice due date for a purchase: three calendar
// months later, on the 15th.
func PaymentDate(purchaseDate time.Time) time.Time {
	return WithDay(AddMonths(purchaseDate, 3), 15)
}

// FormatTR formats a date as dd.MM.yyyy.
func FormatTR(date time.Time) string {
	return date.Format(DisplayLayout)
}

// ParseDate accepts either ISO (2006-01-02) or Turkish (02.01.2006) dates.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{ISOLayout, DisplayLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or DD.MM.YYYY", s)
}
