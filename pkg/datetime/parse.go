// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/stevenkilzer/calc/pkg/constants"
)

// DateTimeLayout is the format for project start dates and is also the
// output date format.
const DateTimeLayout = constants.DateTimeLayout

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// MonthLabel returns the calendar label for a 1-based schedule month
// relative to a project start date, or empty when no start date is known.
// Month 1 is the start date itself.
func MonthLabel(startDate string, month int) string {
	if startDate == "" {
		return ""
	}
	label, err := OffsetDate(startDate, DateTimeLayout, month-1)
	if err != nil {
		return ""
	}
	return label
}
