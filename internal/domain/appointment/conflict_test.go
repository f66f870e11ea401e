package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2030, 6, 12, hour, min, 0, 0, time.UTC)
}

func TestOverlapsHalfOpenIntervals(t *testing.T) {
	// sobreposição parcial
	assert.True(t, Overlaps(at(14, 0), at(15, 0), at(14, 30), at(15, 30)))

	// contenção total
	assert.True(t, Overlaps(at(14, 0), at(16, 0), at(14, 30), at(15, 0)))

	// intervalos encostados não conflitam
	assert.False(t, Overlaps(at(14, 0), at(15, 0), at(15, 0), at(16, 0)))
	assert.False(t, Overlaps(at(15, 0), at(16, 0), at(14, 0), at(15, 0)))

	// disjuntos
	assert.False(t, Overlaps(at(9, 0), at(10, 0), at(11, 0), at(12, 0)))
}

func TestFirstConflictReturnsEarliestBlocking(t *testing.T) {
	existing := []Interval{
		{ID: 1, StartTime: at(15, 0), EndTime: at(16, 0), Status: StatusScheduled},
		{ID: 2, StartTime: at(14, 0), EndTime: at(15, 0), Status: StatusConfirmed},
	}

	blocking, found := FirstConflict(at(14, 30), at(15, 30), 0, existing)
	require.True(t, found)
	assert.Equal(t, at(14, 0), blocking)
}

func TestFirstConflictIgnoresCancelled(t *testing.T) {
	existing := []Interval{
		{ID: 1, StartTime: at(14, 0), EndTime: at(15, 0), Status: StatusCancelled},
	}

	_, found := FirstConflict(at(14, 30), at(15, 30), 0, existing)
	assert.False(t, found)
}

func TestFirstConflictExcludesSelf(t *testing.T) {
	existing := []Interval{
		{ID: 7, StartTime: at(14, 0), EndTime: at(15, 0), Status: StatusScheduled},
	}

	// remarcação do próprio 7 não conflita consigo mesma
	_, found := FirstConflict(at(14, 30), at(15, 30), 7, existing)
	assert.False(t, found)

	// mas outro candidato ainda é bloqueado
	_, found = FirstConflict(at(14, 30), at(15, 30), 0, existing)
	assert.True(t, found)
}

func TestFirstConflictEmptySchedule(t *testing.T) {
	_, found := FirstConflict(at(14, 0), at(15, 0), 0, nil)
	assert.False(t, found)
}
