package appointments

import (
	"clinic-booking-service/internal/app/models"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []models.AppointmentStatus{
	models.AppointmentStatusPending,
	models.AppointmentStatusConfirmed,
	models.AppointmentStatusCompleted,
	models.AppointmentStatusCancelled,
	models.AppointmentStatusNoShow,
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]models.AppointmentStatus]bool{
		{models.AppointmentStatusPending, models.AppointmentStatusConfirmed}:   true,
		{models.AppointmentStatusPending, models.AppointmentStatusCancelled}:   true,
		{models.AppointmentStatusConfirmed, models.AppointmentStatusCompleted}: true,
		{models.AppointmentStatusConfirmed, models.AppointmentStatusCancelled}: true,
		{models.AppointmentStatusConfirmed, models.AppointmentStatusNoShow}:    true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[[2]models.AppointmentStatus{from, to}]
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestAllowedTransitions(t *testing.T) {
	assert.Equal(t, []models.AppointmentStatus{models.AppointmentStatusConfirmed, models.AppointmentStatusCancelled}, AllowedTransitions(models.AppointmentStatusPending))
	assert.Equal(t, []models.AppointmentStatus{models.AppointmentStatusCompleted, models.AppointmentStatusCancelled, models.AppointmentStatusNoShow}, AllowedTransitions(models.AppointmentStatusConfirmed))

	for _, terminal := range []models.AppointmentStatus{models.AppointmentStatusCompleted, models.AppointmentStatusCancelled, models.AppointmentStatusNoShow, "Unknown"} {
		assert.Empty(t, AllowedTransitions(terminal), string(terminal))
	}

	got := AllowedTransitions(models.AppointmentStatusPending)
	got[0] = models.AppointmentStatusNoShow
	assert.Equal(t, models.AppointmentStatusConfirmed, AllowedTransitions(models.AppointmentStatusPending)[0], "callers must not mutate the table")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.AppointmentStatusPending))
	assert.False(t, IsTerminal(models.AppointmentStatusConfirmed))
	assert.True(t, IsTerminal(models.AppointmentStatusCompleted))
	assert.True(t, IsTerminal(models.AppointmentStatusCancelled))
	assert.True(t, IsTerminal(models.AppointmentStatusNoShow))
}

func TestTransition(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		got, err := Transition(models.AppointmentStatusPending, models.AppointmentStatusConfirmed, "")
		assert.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusConfirmed, got)
	})

	t.Run("completion needs diagnosis", func(t *testing.T) {
		got, err := Transition(models.AppointmentStatusConfirmed, models.AppointmentStatusCompleted, "  ")
		assert.ErrorIs(t, err, ErrDiagnosisRequired)
		assert.Equal(t, models.AppointmentStatusConfirmed, got)

		got, err = Transition(models.AppointmentStatusConfirmed, models.AppointmentStatusCompleted, "migraine")
		assert.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusCompleted, got)
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		_, err := Transition(models.AppointmentStatusPending, models.AppointmentStatusCompleted, "migraine")
		assert.ErrorIs(t, err, ErrTransitionNotAllowed)

		var transitionErr *TransitionError
		assert.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, models.AppointmentStatusPending, transitionErr.From)
		assert.Equal(t, models.AppointmentStatusCompleted, transitionErr.To)
	})

	t.Run("terminal states are final", func(t *testing.T) {
		_, err := Transition(models.AppointmentStatusCancelled, models.AppointmentStatusConfirmed, "")
		assert.ErrorIs(t, err, ErrTransitionNotAllowed)
		_, err = Transition(models.AppointmentStatusNoShow, models.AppointmentStatusCompleted, "x")
		assert.ErrorIs(t, err, ErrTransitionNotAllowed)
	})

	t.Run("self transition rejected", func(t *testing.T) {
		_, err := Transition(models.AppointmentStatusConfirmed, models.AppointmentStatusConfirmed, "")
		assert.ErrorIs(t, err, ErrTransitionNotAllowed)
	})
}
