package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

func TestRescheduleMovesAppointment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ap, err := env.create.Execute(ctx, env.bookInput("14:00"))
	require.NoError(t, err)

	moved, err := env.reschedule.Execute(ctx, RescheduleInput{
		ProviderID:    env.provider.ID,
		AppointmentID: ap.ID,
		Date:          testDay,
		Time:          "16:00",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2030, 6, 12, 16, 0, 0, 0, time.UTC), moved.StartTime.UTC())
	assert.Equal(t, ap.DurationMinutes, moved.DurationMinutes)
}

func TestRescheduleRejectsConflictWithOtherAppointment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.bookInput("14:00")
	first.DurationMinutes = 60
	_, err := env.create.Execute(ctx, first)
	require.NoError(t, err)

	second := env.bookInput("16:00")
	second.DurationMinutes = 60
	ap, err := env.create.Execute(ctx, second)
	require.NoError(t, err)

	_, err = env.reschedule.Execute(ctx, RescheduleInput{
		ProviderID:    env.provider.ID,
		AppointmentID: ap.ID,
		Date:          testDay,
		Time:          "14:30",
	})

	var ce *domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t,
		time.Date(2030, 6, 12, 14, 0, 0, 0, time.UTC),
		ce.BlockingStart.UTC(),
	)
}

func TestRescheduleIgnoresOwnWindow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := env.bookInput("14:00")
	in.DurationMinutes = 60
	ap, err := env.create.Execute(ctx, in)
	require.NoError(t, err)

	// o novo horário sobrepõe o antigo do próprio agendamento
	moved, err := env.reschedule.Execute(ctx, RescheduleInput{
		ProviderID:    env.provider.ID,
		AppointmentID: ap.ID,
		Date:          testDay,
		Time:          "14:30",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 6, 12, 14, 30, 0, 0, time.UTC), moved.StartTime.UTC())
}

func TestRescheduleRejectsTerminalAppointment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ap, err := env.create.Execute(ctx, env.bookInput("14:00"))
	require.NoError(t, err)

	_, err = env.transition.Execute(ctx, env.provider.ID, ap.ID, domain.StatusCancelled)
	require.NoError(t, err)

	_, err = env.reschedule.Execute(ctx, RescheduleInput{
		ProviderID:    env.provider.ID,
		AppointmentID: ap.ID,
		Date:          testDay,
		Time:          "16:00",
	})

	var te *domain.InvalidTransitionError
	require.ErrorAs(t, err, &te)
}

func TestRescheduleRevalidatesRules(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ap, err := env.create.Execute(ctx, env.bookInput("14:00"))
	require.NoError(t, err)

	// sábado continua proibido na remarcação
	_, err = env.reschedule.Execute(ctx, RescheduleInput{
		ProviderID:    env.provider.ID,
		AppointmentID: ap.ID,
		Date:          "2030-06-15",
		Time:          "14:00",
	})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
}
