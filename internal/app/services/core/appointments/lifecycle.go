package appointments

import (
	"clinic-booking-service/internal/app/models"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTransitionNotAllowed = errors.New("appointment status transition not allowed")
	ErrDiagnosisRequired    = errors.New("completing an appointment requires a diagnosis")
)

// TransitionError reports a rejected status change. It matches
// ErrTransitionNotAllowed under errors.Is.
type TransitionError struct {
	From models.AppointmentStatus
	To   models.AppointmentStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("appointment status %s cannot move to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrTransitionNotAllowed
}

var transitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.AppointmentStatusPending: {
		models.AppointmentStatusConfirmed,
		models.AppointmentStatusCancelled,
	},
	models.AppointmentStatusConfirmed: {
		models.AppointmentStatusCompleted,
		models.AppointmentStatusCancelled,
		models.AppointmentStatusNoShow,
	},
}

// AllowedTransitions lists the statuses reachable from current in display
// order. Terminal and unknown statuses have none.
func AllowedTransitions(current models.AppointmentStatus) []models.AppointmentStatus {
	next := transitions[current]
	out := make([]models.AppointmentStatus, len(next))
	copy(out, next)
	return out
}

func CanTransition(from, to models.AppointmentStatus) bool {
	for _, candidate := range transitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

func IsTerminal(status models.AppointmentStatus) bool {
	switch status {
	case models.AppointmentStatusCompleted, models.AppointmentStatusCancelled, models.AppointmentStatusNoShow:
		return true
	}
	return false
}

// Transition checks a status change, including the diagnosis needed to
// complete an appointment, and returns the new status.
func Transition(from, to models.AppointmentStatus, diagnosis string) (models.AppointmentStatus, error) {
	if !CanTransition(from, to) {
		return from, &TransitionError{From: from, To: to}
	}
	if to == models.AppointmentStatusCompleted && strings.TrimSpace(diagnosis) == "" {
		return from, ErrDiagnosisRequired
	}
	return to, nil
}
