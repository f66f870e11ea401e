package servicepackage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Compra de pacote
// ===============================

// PurchaseRules vem da configuração; a variante hard-coded antiga era
// duplicação, a tabela configurada é a autoridade.
type PurchaseRules struct {
	MinSessions     int
	MaxSessions     int
	MinPackageDays  int
	DiscountPercent int
}

func DefaultPurchaseRules() PurchaseRules {
	return PurchaseRules{
		MinSessions:     1,
		MaxSessions:     52,
		MinPackageDays:  30,
		DiscountPercent: 20,
	}
}

// PurchaseSpec é o pedido de compra antes da validação.
type PurchaseSpec struct {
	ClientID        uint
	ServiceType     catalog.ServiceType
	TotalSessions   int
	ExpiryDate      time.Time
	PackageCost     decimal.Decimal
	MinimumInterval int
}

// MinPackageCost é o piso de preço: custo base com desconto por
// sessão vezes o número de sessões.
func MinPackageCost(
	cat *catalog.Catalog,
	st catalog.ServiceType,
	totalSessions int,
	rules PurchaseRules,
) decimal.Decimal {

	discount := decimal.NewFromInt(int64(100 - rules.DiscountPercent)).
		Div(decimal.NewFromInt(100))

	perSession := cat.BaseCost(st).Mul(discount)
	return perSession.Mul(decimal.NewFromInt(int64(totalSessions))).Round(2)
}

// ValidatePurchase aplica as regras de compra e devolve o modelo
// pronto para persistir, com sessions_remaining = total_sessions.
func ValidatePurchase(
	now time.Time,
	spec PurchaseSpec,
	rules PurchaseRules,
	cat *catalog.Catalog,
) (*models.ServicePackage, error) {

	if !catalog.IsValid(spec.ServiceType) {
		return nil, &PackageValidationError{
			Field:   "service_type",
			Message: "unknown service type",
		}
	}

	if spec.TotalSessions < rules.MinSessions {
		return nil, &PackageValidationError{
			Field:   "total_sessions",
			Message: "package must include at least 1 session",
		}
	}
	if spec.TotalSessions > rules.MaxSessions {
		return nil, &PackageValidationError{
			Field:   "total_sessions",
			Message: "package cannot exceed 52 sessions",
		}
	}

	minExpiry := now.AddDate(0, 0, rules.MinPackageDays)
	if spec.ExpiryDate.Before(minExpiry) {
		return nil, &PackageValidationError{
			Field:   "expiry_date",
			Message: "package expiry must be at least 30 days in the future",
		}
	}

	minCost := MinPackageCost(cat, spec.ServiceType, spec.TotalSessions, rules)
	if spec.PackageCost.LessThan(minCost) {
		return nil, &PackageValidationError{
			Field:   "package_cost",
			Message: "package cost is below minimum allowed value",
		}
	}

	interval := spec.MinimumInterval
	if interval < 1 {
		interval = 1
	}

	return &models.ServicePackage{
		ClientID:          spec.ClientID,
		ServiceType:       string(spec.ServiceType),
		TotalSessions:     spec.TotalSessions,
		SessionsRemaining: spec.TotalSessions,
		PurchaseDate:      now,
		ExpiryDate:        spec.ExpiryDate,
		PackageCost:       spec.PackageCost,
		MinimumInterval:   interval,
	}, nil
}
