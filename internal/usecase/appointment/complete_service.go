package appointment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CompleteServiceInput struct {
	ProviderID    uint
	AppointmentID uint

	SatisfactionRating *int
	Feedback           string
	Notes              string

	// Pontos a resgatar nesta visita; 0 não resgata
	RedeemPoints int
}

type CompleteServiceOutput struct {
	Appointment *models.Appointment
	History     *models.ServiceHistory
	Category    loyalty.Category
}

// ======================================================
// USE CASE
// ======================================================

// CompleteService fecha o ciclo do atendimento: transição para
// COMPLETED, registro imutável de histórico, acúmulo/resgate de pontos
// e métricas de visita — tudo ou nada, numa transação só.
type CompleteService struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	cache      cache.AvailabilityCache
	catalog    *catalog.Catalog
	thresholds loyalty.Thresholds
	tz         string
	txTimeout  time.Duration
}

func NewCompleteService(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	availCache cache.AvailabilityCache,
	cat *catalog.Catalog,
	thresholds loyalty.Thresholds,
	tz string,
	txTimeout time.Duration,
) *CompleteService {
	return &CompleteService{
		repo:       repo,
		audit:      auditD,
		cache:      availCache,
		catalog:    cat,
		thresholds: thresholds,
		tz:         tz,
		txTimeout:  txTimeout,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CompleteService) Execute(
	ctx context.Context,
	in CompleteServiceInput,
) (*CompleteServiceOutput, error) {

	now := timezone.NowIn(uc.tz)

	txCtx, cancel := context.WithTimeout(ctx, uc.txTimeout)
	defer cancel()

	var out CompleteServiceOutput

	err := uc.repo.InTx(txCtx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointmentForProvider(
			txCtx,
			in.AppointmentID,
			in.ProviderID,
		)
		if err != nil {
			return httperr.ErrBusiness("appointment_not_found")
		}

		if err := domain.Complete(ap, now); err != nil {
			return err
		}

		provider, err := tx.GetProvider(txCtx, ap.ProviderID)
		if err != nil {
			return err
		}

		client, err := tx.GetClient(txCtx, ap.ClientID)
		if err != nil {
			return err
		}

		serviceType := catalog.ServiceType(ap.ServiceType)

		// visita coberta por pacote não gera nova cobrança
		cost := uc.catalog.ServiceCost(serviceType, ap.DurationMinutes)
		if ap.PackageID != nil && ap.SessionConsumed {
			cost = decimal.Zero
		}

		points := uc.catalog.LoyaltyPoints(serviceType)

		loyalty.Accrue(client, points)
		if err := loyalty.Redeem(client, in.RedeemPoints); err != nil {
			return err
		}
		loyalty.RecordVisit(client, cost, now)

		history := &models.ServiceHistory{
			ClientID:            client.ID,
			AppointmentID:       &ap.ID,
			ServiceType:         ap.ServiceType,
			ProviderName:        provider.Name,
			DateOfService:       now,
			ServiceDuration:     ap.DurationMinutes,
			ServiceCost:         cost,
			LoyaltyPointsEarned: points,
			PointsRedeemed:      in.RedeemPoints,
			SatisfactionRating:  in.SatisfactionRating,
			Feedback:            in.Feedback,
			Notes:               in.Notes,
			PackageID:           ap.PackageID,
		}

		if err := tx.CreateHistory(txCtx, history); err != nil {
			return err
		}
		if err := tx.UpdateClient(txCtx, client); err != nil {
			return err
		}
		if err := tx.UpdateAppointment(txCtx, ap); err != nil {
			return err
		}

		out = CompleteServiceOutput{
			Appointment: ap,
			History:     history,
			Category:    loyalty.CategoryFor(client, uc.thresholds),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateDay(
		ctx,
		in.ProviderID,
		out.Appointment.StartTime.Format("2006-01-02"),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ProviderID,
		Action:   "service_completed",
		Entity:   "appointment",
		EntityID: &out.Appointment.ID,
	})

	return &out, nil
}
