package slot

import (
	"clinic-booking-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	monday  = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.Local)
	tuesday = monday.AddDate(0, 0, 1)
)

func mondayMorning() []models.WeeklyScheduleRow {
	return []models.WeeklyScheduleRow{
		{DayOfWeek: "Monday", StartTime: "09:00:00", EndTime: "12:00:00"},
	}
}

func TestResolveWorkingHours(t *testing.T) {
	t.Run("matches full weekday name", func(t *testing.T) {
		hours, ok := ResolveWorkingHours(monday, mondayMorning())
		assert.True(t, ok)
		assert.Equal(t, TimeInterval{Start: 540, End: 720}, hours)
	})

	t.Run("matches case-insensitively and abbreviations", func(t *testing.T) {
		for _, day := range []string{"monday", "MONDAY", "Mon", "mon"} {
			rows := []models.WeeklyScheduleRow{{DayOfWeek: day, StartTime: "08:00", EndTime: "10:00"}}
			_, ok := ResolveWorkingHours(monday, rows)
			assert.True(t, ok, day)
		}
		for _, day := range []string{"Tue", "tues", "TUESDAY"} {
			rows := []models.WeeklyScheduleRow{{DayOfWeek: day, StartTime: "08:00", EndTime: "10:00"}}
			_, ok := ResolveWorkingHours(tuesday, rows)
			assert.True(t, ok, day)
		}
	})

	t.Run("no row for weekday", func(t *testing.T) {
		_, ok := ResolveWorkingHours(tuesday, mondayMorning())
		assert.False(t, ok)
	})

	t.Run("first matching row wins", func(t *testing.T) {
		rows := []models.WeeklyScheduleRow{
			{DayOfWeek: "Friday", StartTime: "07:00", EndTime: "08:00"},
			{DayOfWeek: "Monday", StartTime: "13:00:00", EndTime: "17:00:00"},
			{DayOfWeek: "Monday", StartTime: "09:00:00", EndTime: "12:00:00"},
		}
		hours, ok := ResolveWorkingHours(monday, rows)
		assert.True(t, ok)
		assert.Equal(t, TimeInterval{Start: 780, End: 1020}, hours)
	})

	t.Run("malformed first match closes the day", func(t *testing.T) {
		rows := []models.WeeklyScheduleRow{
			{DayOfWeek: "Monday", StartTime: "12:00", EndTime: "09:00"},
			{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00"},
		}
		_, ok := ResolveWorkingHours(monday, rows)
		assert.False(t, ok)
	})

	t.Run("unknown weekday token is skipped", func(t *testing.T) {
		rows := []models.WeeklyScheduleRow{
			{DayOfWeek: "Someday", StartTime: "07:00", EndTime: "08:00"},
			{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00"},
		}
		hours, ok := ResolveWorkingHours(monday, rows)
		assert.True(t, ok)
		assert.Equal(t, 540, hours.Start)
	})
}
