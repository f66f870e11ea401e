package loyalty

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestAccrue(t *testing.T) {
	c := &models.Client{LoyaltyPoints: 5}

	Accrue(c, 10)
	assert.Equal(t, 15, c.LoyaltyPoints)

	// pontos não positivos nunca entram no ledger
	Accrue(c, 0)
	Accrue(c, -3)
	assert.Equal(t, 15, c.LoyaltyPoints)
}

func TestRedeem(t *testing.T) {
	c := &models.Client{LoyaltyPoints: 20}

	require.NoError(t, Redeem(c, 15))
	assert.Equal(t, 5, c.LoyaltyPoints)

	// zero é no-op
	require.NoError(t, Redeem(c, 0))
	assert.Equal(t, 5, c.LoyaltyPoints)
}

func TestRedeemInsufficientBalance(t *testing.T) {
	c := &models.Client{LoyaltyPoints: 5}

	err := Redeem(c, 10)

	var ie *InsufficientPointsError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 10, ie.Requested)
	assert.Equal(t, 5, ie.Balance)

	// saldo intacto após a falha
	assert.Equal(t, 5, c.LoyaltyPoints)
}

func TestRecordVisit(t *testing.T) {
	now := time.Date(2030, 6, 12, 15, 0, 0, 0, time.UTC)

	c := &models.Client{
		VisitCount: 2,
		TotalSpent: decimal.NewFromInt(100),
	}

	RecordVisit(c, decimal.NewFromFloat(30.50), now)

	assert.Equal(t, 3, c.VisitCount)
	assert.True(t, c.TotalSpent.Equal(decimal.NewFromFloat(130.50)))
	require.NotNil(t, c.LastVisit)
	assert.Equal(t, now, *c.LastVisit)
}

func TestCategoryFor(t *testing.T) {
	th := DefaultThresholds()

	cases := []struct {
		name     string
		spent    int64
		visits   int
		expected Category
	}{
		{"new client", 0, 0, CategoryNew},
		{"two visits still new", 50, 2, CategoryNew},
		{"regular by visits", 100, 3, CategoryRegular},
		{"vip", 500, 10, CategoryVIP},
		{"high spend low visits stays regular", 2000, 5, CategoryRegular},
		{"premium", 1000, 20, CategoryPremium},
		{"many visits low spend stays regular", 300, 30, CategoryRegular},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &models.Client{
				TotalSpent: decimal.NewFromInt(tc.spent),
				VisitCount: tc.visits,
			}
			assert.Equal(t, tc.expected, CategoryFor(c, th))
		})
	}
}
