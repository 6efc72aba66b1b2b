package slot

import (
	"clinic-booking-service/internal/app/models"
	"strings"
	"time"
)

// ResolveWorkingHours returns the working-hours interval of the first row whose
// DayOfWeek matches the weekday of date. The second result is false when no row
// matches or when the first matching row carries unusable times, in which case
// the day is not bookable.
func ResolveWorkingHours(date time.Time, rows []models.WeeklyScheduleRow) (TimeInterval, bool) {
	weekday := date.Weekday()
	for _, row := range rows {
		wd, ok := parseWeekday(row.DayOfWeek)
		if !ok || wd != weekday {
			continue
		}
		hours, err := IntervalBetween(row.StartTime, row.EndTime)
		if err != nil {
			return TimeInterval{}, false
		}
		return hours, true
	}
	return TimeInterval{}, false
}

func parseWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mon", "monday":
		return time.Monday, true
	case "tue", "tues", "tuesday":
		return time.Tuesday, true
	case "wed", "wednesday":
		return time.Wednesday, true
	case "thu", "thur", "thurs", "thursday":
		return time.Thursday, true
	case "fri", "friday":
		return time.Friday, true
	case "sat", "saturday":
		return time.Saturday, true
	case "sun", "sunday":
		return time.Sunday, true
	}
	return 0, false
}
