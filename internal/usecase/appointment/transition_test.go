package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestConfirmThenCancel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ap, err := env.create.Execute(ctx, env.bookInput("14:00"))
	require.NoError(t, err)

	ap, err = env.transition.Execute(ctx, env.provider.ID, ap.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.NotNil(t, ap.ConfirmedAt)

	ap, err = env.transition.Execute(ctx, env.provider.ID, ap.ID, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	assert.NotNil(t, ap.CancelledAt)
}

func TestTransitionRejectsIllegalEdge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ap, err := env.create.Execute(ctx, env.bookInput("14:00"))
	require.NoError(t, err)

	_, err = env.transition.Execute(ctx, env.provider.ID, ap.ID, domain.StatusCancelled)
	require.NoError(t, err)

	// cancelado é terminal
	_, err = env.transition.Execute(ctx, env.provider.ID, ap.ID, domain.StatusConfirmed)

	var te *domain.InvalidTransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, domain.StatusCancelled, te.From)

	// status persistido não mudou
	var stored models.Appointment
	require.NoError(t, env.db.First(&stored, ap.ID).Error)
	assert.Equal(t, string(domain.StatusCancelled), stored.Status)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ap, err := env.create.Execute(ctx, env.bookInput("14:00"))
	require.NoError(t, err)

	_, err = env.transition.Execute(ctx, env.provider.ID, ap.ID, domain.Status("NO_SHOW"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestTransitionScopedToProvider(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ap, err := env.create.Execute(ctx, env.bookInput("14:00"))
	require.NoError(t, err)

	_, err = env.transition.Execute(ctx, env.provider.ID+99, ap.ID, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancelRestoresPackageSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.seedClient(t, "11988880000")
	pkg := env.seedPackage(t, client.ID, "haircut")

	in := env.bookInput("14:00")
	in.ClientPhone = client.Phone
	in.PackageID = &pkg.ID

	ap, err := env.create.Execute(ctx, in)
	require.NoError(t, err)

	var midway models.ServicePackage
	require.NoError(t, env.db.First(&midway, pkg.ID).Error)
	require.Equal(t, 9, midway.SessionsRemaining)

	ap, err = env.transition.Execute(ctx, env.provider.ID, ap.ID, domain.StatusCancelled)
	require.NoError(t, err)
	assert.False(t, ap.SessionConsumed)

	var restored models.ServicePackage
	require.NoError(t, env.db.First(&restored, pkg.ID).Error)
	assert.Equal(t, 10, restored.SessionsRemaining)
}
