package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Ações de domínio
// ===============================

// Apply valida a transição pedida e grava o novo status junto com o
// timestamp correspondente. Não toca storage.
func Apply(ap *models.Appointment, to Status, now time.Time) error {
	if err := Transition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)

	switch to {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}

func Confirm(ap *models.Appointment, now time.Time) error {
	return Apply(ap, StatusConfirmed, now)
}

func Cancel(ap *models.Appointment, now time.Time) error {
	return Apply(ap, StatusCancelled, now)
}

func Complete(ap *models.Appointment, now time.Time) error {
	return Apply(ap, StatusCompleted, now)
}

// Reschedule recalcula start/end/duração a partir de um draft já
// validado. O chamador refaz a checagem de conflito antes de persistir.
func Reschedule(ap *models.Appointment, d *Draft) error {
	if IsTerminal(Status(ap.Status)) {
		return &InvalidTransitionError{
			From:    Status(ap.Status),
			To:      Status(ap.Status),
			Allowed: AllowedTransitions(Status(ap.Status)),
		}
	}

	ap.StartTime = d.StartTime
	ap.EndTime = d.EndTime
	ap.DurationMinutes = d.DurationMinutes
	ap.ServiceType = string(d.ServiceType)
	return nil
}
