package schedule

import (
	"testing"
	"time"

	"github.com/cedricmorin1/Ordermanagement/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday stays", date(2025, time.January, 6), date(2025, time.January, 6)},
		{"wednesday shifts back", date(2025, time.January, 8), date(2025, time.January, 6)},
		{"saturday shifts back", date(2025, time.January, 11), date(2025, time.January, 6)},
		{"sunday belongs to the previous monday", date(2025, time.January, 12), date(2025, time.January, 6)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WeekStart(tc.in))
		})
	}
}

func TestDeliveryDateForDay(t *testing.T) {
	monday := date(2025, time.January, 6)

	tests := []struct {
		day  string
		want time.Time
	}{
		{model.DayMercredi, date(2025, time.January, 8)},
		{model.DayJeudi, date(2025, time.January, 9)},
		{model.DayVendredi, date(2025, time.January, 10)},
		{model.DaySamedi, date(2025, time.January, 11)},
	}
	for _, tc := range tests {
		t.Run(tc.day, func(t *testing.T) {
			got, err := DeliveryDateForDay(monday, tc.day)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := DeliveryDateForDay(monday, "dimanche")
	assert.Error(t, err)
}

func TestDayForDate(t *testing.T) {
	assert.Equal(t, model.DayMercredi, DayForDate(date(2025, time.January, 8)))  // Wednesday
	assert.Equal(t, model.DayJeudi, DayForDate(date(2025, time.January, 9)))     // Thursday
	assert.Equal(t, model.DayVendredi, DayForDate(date(2025, time.January, 10))) // Friday
	assert.Equal(t, model.DaySamedi, DayForDate(date(2025, time.January, 11)))   // Saturday

	// Days outside the delivery set fall back to mercredi.
	assert.Equal(t, model.DayMercredi, DayForDate(date(2025, time.January, 6)))  // Monday
	assert.Equal(t, model.DayMercredi, DayForDate(date(2025, time.January, 12))) // Sunday
}

func TestWeekNumber(t *testing.T) {
	// 2025-01-01 is a Wednesday (weekday 3):
	// ceil((0 + 3 + 1) / 7) = 1 for Jan 1, ceil((5 + 3 + 1) / 7) = 2 for Jan 6.
	assert.Equal(t, 1, WeekNumber(date(2025, time.January, 1)))
	assert.Equal(t, 2, WeekNumber(date(2025, time.January, 6)))
}

func TestNextWeeks(t *testing.T) {
	weeks := NextWeeks(date(2025, time.January, 8), 3)
	require.Len(t, weeks, 3)

	assert.Equal(t, date(2025, time.January, 6), weeks[0].StartDate)
	assert.Equal(t, date(2025, time.January, 12), weeks[0].EndDate)
	assert.Equal(t, date(2025, time.January, 13), weeks[1].StartDate)
	assert.Equal(t, date(2025, time.January, 20), weeks[2].StartDate)

	assert.Equal(t, 2, weeks[0].WeekNumber)
	assert.Equal(t, "Semaine 2 (6 janv. - 12 janv.)", weeks[0].Label)
}

func TestNextWeeksLabelAcrossMonths(t *testing.T) {
	// Week of 2025-08-26 runs 25 août to 31 août; the next one crosses
	// into September.
	weeks := NextWeeks(date(2025, time.August, 26), 2)
	require.Len(t, weeks, 2)
	assert.Equal(t, "Semaine 35 (25 août - 31 août)", weeks[0].Label)
	assert.Equal(t, "Semaine 36 (1 sept. - 7 sept.)", weeks[1].Label)
}
