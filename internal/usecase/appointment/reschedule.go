package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleInput struct {
	ProviderID    uint
	AppointmentID uint

	Date string
	Time string

	// 0 mantém a duração atual
	DurationMinutes int
}

// ======================================================
// USE CASE
// ======================================================

// Reschedule refaz validação e conflito para o novo horário,
// excluindo o próprio agendamento da varredura.
type Reschedule struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	cache     cache.AvailabilityCache
	catalog   *catalog.Catalog
	rules     domain.Rules
	tz        string
	txTimeout time.Duration
}

func NewReschedule(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	availCache cache.AvailabilityCache,
	cat *catalog.Catalog,
	rules domain.Rules,
	tz string,
	txTimeout time.Duration,
) *Reschedule {
	return &Reschedule{
		repo:      repo,
		audit:     auditD,
		cache:     availCache,
		catalog:   cat,
		rules:     rules,
		tz:        tz,
		txTimeout: txTimeout,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	loc := timezone.Location(uc.tz)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := timezone.NowIn(uc.tz)

	txCtx, cancel := context.WithTimeout(ctx, uc.txTimeout)
	defer cancel()

	var ap *models.Appointment
	var oldDay string

	err = uc.repo.InTx(txCtx, func(tx domain.Repository) error {

		var err error
		ap, err = tx.GetAppointmentForProvider(
			txCtx,
			in.AppointmentID,
			in.ProviderID,
		)
		if err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		oldDay = ap.StartTime.Format("2006-01-02")

		duration := in.DurationMinutes
		if duration <= 0 {
			duration = ap.DurationMinutes
		}

		draft, err := domain.Validate(now, domain.Candidate{
			StartTime:       start,
			DurationMinutes: duration,
			ServiceType:     catalog.ServiceType(ap.ServiceType),
		}, uc.rules, uc.catalog)
		if err != nil {
			return err
		}

		if err := tx.LockProviderSchedule(txCtx, in.ProviderID); err != nil {
			return err
		}

		blocking, err := tx.FirstConflict(
			txCtx,
			in.ProviderID,
			draft.StartTime,
			draft.EndTime,
			ap.ID,
		)
		if err != nil {
			return err
		}
		if blocking != nil {
			return &domain.ConflictError{BlockingStart: *blocking}
		}

		if err := domain.Reschedule(ap, draft); err != nil {
			return err
		}

		return tx.UpdateAppointment(txCtx, ap)
	})
	if err != nil {
		return nil, err
	}

	newDay := ap.StartTime.Format("2006-01-02")
	uc.cache.InvalidateDay(ctx, in.ProviderID, oldDay)
	if newDay != oldDay {
		uc.cache.InvalidateDay(ctx, in.ProviderID, newDay)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ProviderID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
