package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

func slotStarts(slots []domain.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

func TestAvailabilityFullDay(t *testing.T) {
	env := newTestEnv(t)

	slots, err := env.avail.Execute(context.Background(), domain.AvailabilityInput{
		ProviderID:  env.provider.ID,
		ServiceType: "haircut",
		Date:        time.Date(2030, 6, 12, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// 9h-19h em passos de 30min (padrão do haircut) = 20 janelas
	assert.Len(t, slots, 20)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "18:30", slots[len(slots)-1].Start)
}

func TestAvailabilityExcludesBookedWindows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := env.bookInput("14:00")
	in.DurationMinutes = 60
	_, err := env.create.Execute(ctx, in)
	require.NoError(t, err)

	slots, err := env.avail.Execute(ctx, domain.AvailabilityInput{
		ProviderID:  env.provider.ID,
		ServiceType: "haircut",
		Date:        time.Date(2030, 6, 12, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.NotContains(t, starts, "14:00")
	assert.NotContains(t, starts, "14:30")
	assert.Contains(t, starts, "13:30")
	assert.Contains(t, starts, "15:00")
}

func TestAvailabilityEmptyOnWeekend(t *testing.T) {
	env := newTestEnv(t)

	slots, err := env.avail.Execute(context.Background(), domain.AvailabilityInput{
		ProviderID:  env.provider.ID,
		ServiceType: "haircut",
		Date:        time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC), // sábado
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailabilityUnknownServiceIsEmpty(t *testing.T) {
	env := newTestEnv(t)

	slots, err := env.avail.Execute(context.Background(), domain.AvailabilityInput{
		ProviderID:  env.provider.ID,
		ServiceType: "tattoo",
		Date:        time.Date(2030, 6, 12, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailabilityStepFollowsServiceDuration(t *testing.T) {
	env := newTestEnv(t)

	slots, err := env.avail.Execute(context.Background(), domain.AvailabilityInput{
		ProviderID:  env.provider.ID,
		ServiceType: "hair_color", // 120min
		Date:        time.Date(2030, 6, 12, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// 9h-19h em passos de 2h = 5 janelas
	assert.Len(t, slots, 5)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "11:00", slots[0].End)
}
