package loyalty

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Ledger de fidelidade
// ===============================

// Accrue credita pontos no saldo do cliente. Pontos negativos nunca
// entram no ledger; o registro de ServiceHistory correspondente é
// responsabilidade do caso de uso, na mesma transação.
func Accrue(c *models.Client, points int) {
	if points <= 0 {
		return
	}
	c.LoyaltyPoints += points
}

// Redeem debita pontos; falha sem mutar estado quando o saldo não
// cobre o pedido.
func Redeem(c *models.Client, points int) error {
	if points <= 0 {
		return nil
	}
	if points > c.LoyaltyPoints {
		return &InsufficientPointsError{
			Requested: points,
			Balance:   c.LoyaltyPoints,
		}
	}
	c.LoyaltyPoints -= points
	return nil
}

// RecordVisit atualiza as métricas de visita quando um atendimento é
// concluído.
func RecordVisit(c *models.Client, amountSpent decimal.Decimal, now time.Time) {
	c.VisitCount++
	c.TotalSpent = c.TotalSpent.Add(amountSpent)
	c.LastVisit = &now
}

// ===============================
// Categoria derivada
// ===============================

type Category string

const (
	CategoryNew     Category = "NEW"
	CategoryRegular Category = "REGULAR"
	CategoryVIP     Category = "VIP"
	CategoryPremium Category = "PREMIUM"
)

// Thresholds parametriza a derivação de categoria. Os valores padrão
// seguem a tabela do salão.
type Thresholds struct {
	PremiumSpent  decimal.Decimal
	PremiumVisits int
	VIPSpent      decimal.Decimal
	VIPVisits     int
	RegularVisits int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		PremiumSpent:  decimal.NewFromInt(1000),
		PremiumVisits: 20,
		VIPSpent:      decimal.NewFromInt(500),
		VIPVisits:     10,
		RegularVisits: 3,
	}
}

// CategoryFor deriva a categoria a partir de gasto e visitas.
// Sempre recalculada; nunca tratada como fonte de verdade armazenada.
func CategoryFor(c *models.Client, t Thresholds) Category {
	switch {
	case c.TotalSpent.GreaterThanOrEqual(t.PremiumSpent) && c.VisitCount >= t.PremiumVisits:
		return CategoryPremium
	case c.TotalSpent.GreaterThanOrEqual(t.VIPSpent) && c.VisitCount >= t.VIPVisits:
		return CategoryVIP
	case c.VisitCount >= t.RegularVisits:
		return CategoryRegular
	default:
		return CategoryNew
	}
}
