package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeCalculation(t *testing.T) {
	tests := []struct {
		name      string
		birthDate time.Time
		atDate    time.Time
		expected  int
	}{
		{"Birthday today", date(1985, 6, 15), date(2025, 6, 15), 40},
		{"Day before birthday", date(1985, 6, 15), date(2025, 6, 14), 39},
		{"Earlier month", date(1985, 6, 15), date(2025, 3, 1), 39},
		{"Later month", date(1985, 6, 15), date(2025, 9, 1), 40},
		{"Leap day birthday", date(1988, 2, 29), date(2025, 2, 28), 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Age(tt.birthDate, tt.atDate))
		})
	}
}

func TestYearsToAge(t *testing.T) {
	birth := date(1985, 6, 15)
	assert.Equal(t, 25, YearsToAge(birth, 65, date(2025, 6, 15)))
	assert.Equal(t, 26, YearsToAge(birth, 65, date(2025, 6, 14)))
	assert.Equal(t, 0, YearsToAge(birth, 65, date(2060, 1, 1)))
	assert.Equal(t, 0, YearsToAge(birth, 40, date(2030, 1, 1)))
}

func TestCalendarYears(t *testing.T) {
	assert.Equal(t, []int{2025, 2026, 2027}, CalendarYears(date(2025, 1, 1), 2))
	assert.Equal(t, []int{2024}, CalendarYears(date(2024, 2, 29), 0))
	assert.Nil(t, CalendarYears(date(2025, 1, 1), -1))
}

func TestDateArithmetic(t *testing.T) {
	assert.Equal(t, date(2029, 3, 1), AddYears(date(2024, 2, 29), 5))
	assert.Equal(t, date(2020, 5, 10), AddYears(date(2025, 5, 10), -5))
}
