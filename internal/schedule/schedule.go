// Package schedule maps abstract delivery days (weekday names) onto
// concrete calendar dates, anchored to Monday-aligned weeks.
package schedule

import (
	"fmt"
	"time"

	"github.com/cedricmorin1/Ordermanagement/internal/model"
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// dayOffsets holds the distance in days from a week's Monday start to
// each delivery day.
var dayOffsets = map[string]int{
	model.DayMercredi: 2,
	model.DayJeudi:    3,
	model.DayVendredi: 4,
	model.DaySamedi:   5,
}

// frenchMonths are the abbreviated fr-FR month names used in week labels.
var frenchMonths = [12]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// WeekInfo identifies one selectable production week.
type WeekInfo struct {
	WeekNumber int
	StartDate  time.Time
	EndDate    time.Time
	Label      string
}

// WeekStart shifts a date back to the Monday of its week. Sunday belongs
// to the week that started six days earlier.
func WeekStart(date time.Time) time.Time {
	d := truncate(date)
	switch wd := int(d.Weekday()); wd {
	case 0:
		return d.AddDate(0, 0, -6)
	default:
		return d.AddDate(0, 0, 1-wd)
	}
}

// WeekNumber computes a year-relative week index:
// ceil((daysSinceJan1 + weekday(Jan1) + 1) / 7). This is the numbering
// the shop has always displayed, not ISO-8601.
func WeekNumber(date time.Time) int {
	jan1 := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	pastDays := date.YearDay() - 1
	return (pastDays + int(jan1.Weekday()) + 1 + 6) / 7
}

// NextWeeks returns the week containing today plus the following n-1
// weeks, each anchored to its Monday.
func NextWeeks(today time.Time, n int) []WeekInfo {
	weeks := make([]WeekInfo, 0, n)
	for i := 0; i < n; i++ {
		start := WeekStart(today.AddDate(0, 0, 7*i))
		end := start.AddDate(0, 0, 6)
		num := WeekNumber(start)
		weeks = append(weeks, WeekInfo{
			WeekNumber: num,
			StartDate:  start,
			EndDate:    end,
			Label:      fmt.Sprintf("Semaine %d (%s - %s)", num, displayDate(start), displayDate(end)),
		})
	}
	return weeks
}

// DeliveryDateForDay resolves a delivery day within the week starting at
// weekStart to its calendar date.
func DeliveryDateForDay(weekStart time.Time, day string) (time.Time, error) {
	offset, ok := dayOffsets[day]
	if !ok {
		return time.Time{}, fmt.Errorf("jour de livraison inconnu: %q", day)
	}
	return truncate(weekStart).AddDate(0, 0, offset), nil
}

// DayForDate is the inverse lookup by weekday. Dates outside the shop's
// delivery weekdays (Sunday, Monday, Tuesday) fall back to mercredi
// instead of returning an error.
func DayForDate(date time.Time) string {
	switch date.Weekday() {
	case time.Wednesday:
		return model.DayMercredi
	case time.Thursday:
		return model.DayJeudi
	case time.Friday:
		return model.DayVendredi
	case time.Saturday:
		return model.DaySamedi
	default:
		return model.DayMercredi
	}
}

func displayDate(d time.Time) string {
	return fmt.Sprintf("%d %s", d.Day(), frenchMonths[d.Month()-1])
}

func truncate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
