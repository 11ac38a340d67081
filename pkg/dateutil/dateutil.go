package dateutil

import (
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// YearsToAge returns the whole years from atDate until the person born on
// birthDate reaches targetAge. Already past the target yields 0.
func YearsToAge(birthDate time.Time, targetAge int, atDate time.Time) int {
	years := targetAge - Age(birthDate, atDate)
	if years < 0 {
		return 0
	}
	return years
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// CalendarYears labels offsets 0..n from start with their calendar year.
func CalendarYears(start time.Time, n int) []int {
	if n < 0 {
		return nil
	}
	years := make([]int, n+1)
	for i := range years {
		years[i] = AddYears(start, i).Year()
	}
	return years
}
