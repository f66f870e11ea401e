package servicepackage

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	appt "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/servicepackage"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/payments"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type PurchaseInput struct {
	ClientID    uint
	RequestedBy uint

	ServiceType     string
	TotalSessions   int
	ExpiryDate      string // 2006-01-02
	PackageCost     decimal.Decimal
	MinimumInterval int
}

type PurchaseOutput struct {
	Package *models.ServicePackage

	// URL de checkout quando o gateway está configurado
	PaymentURL string
}

// ======================================================
// USE CASE
// ======================================================

// Purchase valida e persiste a compra do pacote; o checkout é
// colaborador externo e roda depois do commit (falha no gateway não
// desfaz a compra, só deixa a cobrança pendente).
type Purchase struct {
	repo    appt.Repository
	audit   *audit.Dispatcher
	gateway payments.Gateway
	catalog *catalog.Catalog
	rules   domain.PurchaseRules
	tz      string
}

func NewPurchase(
	repo appt.Repository,
	auditD *audit.Dispatcher,
	gateway payments.Gateway,
	cat *catalog.Catalog,
	rules domain.PurchaseRules,
	tz string,
) *Purchase {
	return &Purchase{
		repo:    repo,
		audit:   auditD,
		gateway: gateway,
		catalog: cat,
		rules:   rules,
		tz:      tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Purchase) Execute(
	ctx context.Context,
	in PurchaseInput,
) (*PurchaseOutput, error) {

	loc := timezone.Location(uc.tz)

	expiry, err := time.ParseInLocation("2006-01-02", in.ExpiryDate, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_expiry_date")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	now := timezone.NowIn(uc.tz)

	pkg, err := domain.ValidatePurchase(now, domain.PurchaseSpec{
		ClientID:        client.ID,
		ServiceType:     catalog.ServiceType(in.ServiceType),
		TotalSessions:   in.TotalSessions,
		ExpiryDate:      expiry,
		PackageCost:     in.PackageCost,
		MinimumInterval: in.MinimumInterval,
	}, uc.rules, uc.catalog)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreatePackage(ctx, pkg); err != nil {
		return nil, err
	}

	out := &PurchaseOutput{Package: pkg}

	if uc.gateway != nil {
		url, err := uc.gateway.CreatePackageCheckout(ctx, pkg, client)
		if err != nil {
			// cobrança fica pendente; a compra já está registrada
			log.Println("package checkout error:", err)
		} else {
			out.PaymentURL = url
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.RequestedBy,
		Action:   "package_purchased",
		Entity:   "service_package",
		EntityID: &pkg.ID,
	})

	return out, nil
}
