package servicepackage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
)

func validSpec() PurchaseSpec {
	return PurchaseSpec{
		ClientID:        1,
		ServiceType:     catalog.ServiceHaircut,
		TotalSessions:   10,
		ExpiryDate:      now.AddDate(0, 6, 0),
		PackageCost:     decimal.NewFromInt(250),
		MinimumInterval: 7,
	}
}

func TestValidatePurchaseBuildsPackage(t *testing.T) {
	pkg, err := ValidatePurchase(now, validSpec(), DefaultPurchaseRules(), catalog.Default())
	require.NoError(t, err)

	assert.Equal(t, 10, pkg.TotalSessions)
	assert.Equal(t, 10, pkg.SessionsRemaining)
	assert.Equal(t, now, pkg.PurchaseDate)
	assert.Equal(t, 7, pkg.MinimumInterval)
	assert.Equal(t, "haircut", pkg.ServiceType)
}

func TestValidatePurchaseSessionBounds(t *testing.T) {
	spec := validSpec()
	spec.TotalSessions = 0
	_, err := ValidatePurchase(now, spec, DefaultPurchaseRules(), catalog.Default())

	var pe *PackageValidationError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "total_sessions", pe.Field)

	spec = validSpec()
	spec.TotalSessions = 53
	spec.PackageCost = decimal.NewFromInt(5000)
	_, err = ValidatePurchase(now, spec, DefaultPurchaseRules(), catalog.Default())
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "total_sessions", pe.Field)
}

func TestValidatePurchaseRejectsShortExpiry(t *testing.T) {
	spec := validSpec()
	spec.ExpiryDate = now.AddDate(0, 0, 29)

	_, err := ValidatePurchase(now, spec, DefaultPurchaseRules(), catalog.Default())

	var pe *PackageValidationError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "expiry_date", pe.Field)
}

func TestValidatePurchaseRejectsUnknownService(t *testing.T) {
	spec := validSpec()
	spec.ServiceType = catalog.ServiceType("tattoo")

	_, err := ValidatePurchase(now, spec, DefaultPurchaseRules(), catalog.Default())

	var pe *PackageValidationError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "service_type", pe.Field)
}

func TestMinPackageCostFloor(t *testing.T) {
	// haircut: 30.00 por sessão, 20% de desconto → 24.00 × 10 = 240.00
	minCost := MinPackageCost(catalog.Default(), catalog.ServiceHaircut, 10, DefaultPurchaseRules())
	assert.True(t, minCost.Equal(decimal.NewFromInt(240)), "got %s", minCost)

	spec := validSpec()
	spec.PackageCost = decimal.NewFromFloat(239.99)
	_, err := ValidatePurchase(now, spec, DefaultPurchaseRules(), catalog.Default())

	var pe *PackageValidationError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "package_cost", pe.Field)

	spec.PackageCost = decimal.NewFromInt(240)
	_, err = ValidatePurchase(now, spec, DefaultPurchaseRules(), catalog.Default())
	assert.NoError(t, err)
}

func TestValidatePurchaseDefaultsInterval(t *testing.T) {
	spec := validSpec()
	spec.MinimumInterval = 0

	pkg, err := ValidatePurchase(now, spec, DefaultPurchaseRules(), catalog.Default())
	require.NoError(t, err)
	assert.Equal(t, 1, pkg.MinimumInterval)
}
