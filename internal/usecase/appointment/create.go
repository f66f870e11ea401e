package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/servicepackage"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ProviderID uint
	CreatorID  uint

	Title       string
	Description string

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceType string

	Date string
	Time string

	// 0 usa a duração padrão do serviço
	DurationMinutes int

	// Pacote do cliente a consumir nesta reserva, se houver
	PackageID *uint

	AttendeeIDs []uint
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment é o pipeline explícito de booking:
// validate → lock → check_conflicts → (reserva de sessão) → persist,
// tudo dentro de uma transação.
type CreateAppointment struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	cache     cache.AvailabilityCache
	catalog   *catalog.Catalog
	rules     domain.Rules
	tz        string
	txTimeout time.Duration
}

func NewCreateAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	availCache cache.AvailabilityCache,
	cat *catalog.Catalog,
	rules domain.Rules,
	tz string,
	txTimeout time.Duration,
) *CreateAppointment {
	return &CreateAppointment{
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

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
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

	serviceType := catalog.ServiceType(in.ServiceType)

	duration := in.DurationMinutes
	if duration <= 0 {
		duration = uc.catalog.DefaultDurationMin(serviceType)
	}

	// --------------------------------------------------
	// 1. Regras estáticas (puras, sem storage)
	// --------------------------------------------------
	now := timezone.NowIn(uc.tz)

	draft, err := domain.Validate(now, domain.Candidate{
		StartTime:       start,
		DurationMinutes: duration,
		ServiceType:     serviceType,
	}, uc.rules, uc.catalog)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Conflito + persistência, atômicos
	// --------------------------------------------------
	txCtx, cancel := context.WithTimeout(ctx, uc.txTimeout)
	defer cancel()

	var ap *models.Appointment

	err = uc.repo.InTx(txCtx, func(tx domain.Repository) error {

		// serializa escritores na agenda deste prestador
		if err := tx.LockProviderSchedule(txCtx, in.ProviderID); err != nil {
			return err
		}

		blocking, err := tx.FirstConflict(
			txCtx,
			in.ProviderID,
			draft.StartTime,
			draft.EndTime,
			0,
		)
		if err != nil {
			return err
		}
		if blocking != nil {
			return &domain.ConflictError{BlockingStart: *blocking}
		}

		client, err := tx.GetOrCreateClient(
			txCtx,
			in.ClientName,
			in.ClientPhone,
			in.ClientEmail,
		)
		if err != nil {
			return err
		}

		ap = &models.Appointment{
			Reference:       uuid.NewString(),
			Title:           in.Title,
			Description:     in.Description,
			ProviderID:      in.ProviderID,
			ClientID:        client.ID,
			CreatorID:       in.CreatorID,
			ServiceType:     string(draft.ServiceType),
			StartTime:       draft.StartTime,
			DurationMinutes: draft.DurationMinutes,
			EndTime:         draft.EndTime,
			Status:          string(domain.InitialStatus()),
		}

		// reserva de sessão de pacote na mesma transação
		if in.PackageID != nil {
			pkg, err := tx.GetPackageForClient(txCtx, *in.PackageID, client.ID)
			if err != nil {
				return httperr.ErrBusiness("package_not_found")
			}
			if pkg.ServiceType != string(draft.ServiceType) {
				return &servicepackage.PackageUnavailableError{
					Reason: "package covers a different service type",
				}
			}
			if err := servicepackage.UseSession(pkg, now); err != nil {
				return err
			}
			if err := tx.UpdatePackage(txCtx, pkg); err != nil {
				return err
			}

			ap.PackageID = &pkg.ID
			ap.SessionConsumed = true
		}

		for _, id := range in.AttendeeIDs {
			ap.Attendees = append(ap.Attendees, models.User{ID: id})
		}

		return tx.CreateAppointment(txCtx, ap)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Pós-commit: cache e auditoria
	// --------------------------------------------------
	uc.cache.InvalidateDay(ctx, in.ProviderID, draft.StartTime.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CreatorID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
