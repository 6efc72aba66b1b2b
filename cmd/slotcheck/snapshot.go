package main

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/app/services/core/slot"
	"clinic-booking-service/internal/pkg/constvars"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// Snapshot is everything the engine needs for one doctor on one date,
// in the same shapes the clinic API returns.
type Snapshot struct {
	DoctorID     string                     `json:"doctorId"`
	Date         string                     `json:"date"`
	Schedule     []models.WeeklyScheduleRow `json:"schedule"`
	Capacity     models.TreatmentCapacity   `json:"capacity"`
	Appointments []models.Appointment       `json:"appointments"`
}

type slotsResult struct {
	DoctorID     string   `json:"doctorId"`
	Date         string   `json:"date"`
	WorkingHours string   `json:"workingHours,omitempty"`
	Slots        []string `json:"slots"`
	CacheKey     string   `json:"cacheKey"`
}

func loadSnapshot(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	snapshot := new(Snapshot)
	if err := json.Unmarshal(raw, snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return snapshot, nil
}

func (s *Snapshot) day() (time.Time, error) {
	date, err := time.ParseInLocation(constvars.DateLayout, s.Date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("snapshot date %q: %w", s.Date, err)
	}
	return date, nil
}

// existing narrows the snapshot's appointments to its own doctor and date.
func (s *Snapshot) existing(date time.Time) []slot.ExistingAppointment {
	return slot.ExistingFromAppointments(slot.OnDoctorAndDate(s.Appointments, s.DoctorID, date))
}

func computeSlots(s *Snapshot) (*slotsResult, error) {
	date, err := s.day()
	if err != nil {
		return nil, err
	}
	existing := s.existing(date)

	result := &slotsResult{
		DoctorID: s.DoctorID,
		Date:     s.Date,
		Slots:    slot.GenerateSlots(date, s.Schedule, s.Capacity, existing),
		CacheKey: slot.CacheKey(s.DoctorID, date, s.Schedule, s.Capacity, existing),
	}
	if hours, ok := slot.ResolveWorkingHours(date, s.Schedule); ok {
		result.WorkingHours = hours.String()
	}
	return result, nil
}

func validateSnapshot(s *Snapshot, clock string, durationMinutes int) (slot.Verdict, error) {
	date, err := s.day()
	if err != nil {
		return slot.Verdict{}, err
	}
	if durationMinutes == 0 {
		durationMinutes = s.Capacity.SessionDurationMinutes
	}
	candidate := slot.BookingCandidate{Date: date, Time: clock, DurationMinutes: durationMinutes}
	return slot.ValidateBooking(candidate, s.Schedule, s.existing(date)), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
