package client

import (
	"context"

	appt "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/loyalty"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// OUTPUT
// ======================================================

type LoyaltySummary struct {
	Client   *models.Client   `json:"client"`
	Category loyalty.Category `json:"category"`

	// Saldo reconstruído do histórico: sum(earned) - sum(redeemed).
	// Deve bater com loyalty_points; divergência indica escrita fora
	// da transação do ledger.
	LedgerEarned   int  `json:"ledger_earned"`
	LedgerRedeemed int  `json:"ledger_redeemed"`
	LedgerBalance  int  `json:"ledger_balance"`
	Consistent     bool `json:"consistent"`
}

// ======================================================
// USE CASE
// ======================================================

type GetLoyaltySummary struct {
	repo       appt.Repository
	thresholds loyalty.Thresholds
}

func NewGetLoyaltySummary(
	repo appt.Repository,
	thresholds loyalty.Thresholds,
) *GetLoyaltySummary {
	return &GetLoyaltySummary{
		repo:       repo,
		thresholds: thresholds,
	}
}

func (uc *GetLoyaltySummary) Execute(
	ctx context.Context,
	clientID uint,
) (*LoyaltySummary, error) {

	cl, err := uc.repo.GetClient(ctx, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	earned, redeemed, err := uc.repo.LoyaltyLedgerTotals(ctx, clientID)
	if err != nil {
		return nil, err
	}

	balance := earned - redeemed

	return &LoyaltySummary{
		Client:         cl,
		Category:       loyalty.CategoryFor(cl, uc.thresholds),
		LedgerEarned:   earned,
		LedgerRedeemed: redeemed,
		LedgerBalance:  balance,
		Consistent:     balance == cl.LoyaltyPoints,
	}, nil
}
