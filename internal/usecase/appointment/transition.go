package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/servicepackage"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

// TransitionAppointment dirige a máquina de status. Cancelamento de
// reserva com sessão consumida devolve a sessão ao pacote na mesma
// transação. COMPLETED passa pelo CompleteService, que carrega o
// trabalho de ledger.
type TransitionAppointment struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	cache     cache.AvailabilityCache
	complete  *CompleteService
	tz        string
	txTimeout time.Duration
}

func NewTransitionAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	availCache cache.AvailabilityCache,
	complete *CompleteService,
	tz string,
	txTimeout time.Duration,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:      repo,
		audit:     auditD,
		cache:     availCache,
		complete:  complete,
		tz:        tz,
		txTimeout: txTimeout,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	providerID uint,
	appointmentID uint,
	to domain.Status,
) (*models.Appointment, error) {

	if !domain.IsValidStatus(to) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if to == domain.StatusCompleted {
		out, err := uc.complete.Execute(ctx, CompleteServiceInput{
			ProviderID:    providerID,
			AppointmentID: appointmentID,
		})
		if err != nil {
			return nil, err
		}
		return out.Appointment, nil
	}

	now := timezone.NowIn(uc.tz)

	txCtx, cancel := context.WithTimeout(ctx, uc.txTimeout)
	defer cancel()

	var ap *models.Appointment

	err := uc.repo.InTx(txCtx, func(tx domain.Repository) error {

		var err error
		ap, err = tx.GetAppointmentForProvider(txCtx, appointmentID, providerID)
		if err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		if err := domain.Apply(ap, to, now); err != nil {
			return err
		}

		// cancelamento devolve a sessão reservada ao pacote
		if to == domain.StatusCancelled && ap.SessionConsumed && ap.PackageID != nil {
			pkg, err := tx.GetPackageForClient(txCtx, *ap.PackageID, ap.ClientID)
			if err != nil {
				return err
			}

			servicepackage.RestoreSession(pkg)

			if err := tx.UpdatePackage(txCtx, pkg); err != nil {
				return err
			}
			ap.SessionConsumed = false
		}

		return tx.UpdateAppointment(txCtx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(
		ctx,
		providerID,
		ap.StartTime.Format("2006-01-02"),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &providerID,
		Action:   "appointment_" + string(to),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
