package slot

import (
	"clinic-booking-service/internal/app/models"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	"github.com/goccy/go-json"
)

type cacheKeyInput struct {
	DoctorID     string                     `json:"d"`
	Date         string                     `json:"t"`
	Rows         []models.WeeklyScheduleRow `json:"r"`
	Capacity     int                        `json:"c"`
	Appointments []cacheKeyAppointment      `json:"a"`
}

type cacheKeyAppointment struct {
	ID       string `json:"i"`
	Time     string `json:"t"`
	Duration int    `json:"d"`
	Status   string `json:"s"`
}

// CacheKey derives a stable key from every input GenerateSlots reads, so a
// cached slot list is reused only while schedule, session length and the
// appointment snapshot are unchanged. Row order is significant because the
// first matching row wins; appointment order is not.
func CacheKey(doctorID string, date time.Time, rows []models.WeeklyScheduleRow, capacity models.TreatmentCapacity, appointments []ExistingAppointment) string {
	appts := make([]cacheKeyAppointment, 0, len(appointments))
	for _, a := range appointments {
		appts = append(appts, cacheKeyAppointment{
			ID:       a.ID,
			Time:     a.ScheduledTime,
			Duration: a.DurationMinutes,
			Status:   string(a.Status),
		})
	}
	sort.Slice(appts, func(i, j int) bool {
		if appts[i].Time != appts[j].Time {
			return appts[i].Time < appts[j].Time
		}
		return appts[i].ID < appts[j].ID
	})

	payload, _ := json.Marshal(cacheKeyInput{
		DoctorID:     doctorID,
		Date:         date.Format("2006-01-02"),
		Rows:         rows,
		Capacity:     capacity.SessionDurationMinutes,
		Appointments: appts,
	})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
