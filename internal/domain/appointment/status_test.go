package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionMatrix(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusScheduled, StatusConfirmed, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusCompleted, false},
		{StatusScheduled, StatusDeclined, false},
		{StatusScheduled, StatusScheduled, false},

		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusScheduled, false},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusConfirmed, StatusDeclined, false},

		{StatusCancelled, StatusScheduled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},

		{StatusCompleted, StatusScheduled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},

		{StatusDeclined, StatusScheduled, false},
		{StatusDeclined, StatusConfirmed, false},
		{StatusDeclined, StatusCancelled, false},
		{StatusDeclined, StatusCompleted, false},
	}

	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		assert.Equalf(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionReturnsTypedError(t *testing.T) {
	err := Transition(StatusCancelled, StatusScheduled)
	require.Error(t, err)

	var te *InvalidTransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, StatusCancelled, te.From)
	assert.Equal(t, StatusScheduled, te.To)
	assert.Empty(t, te.Allowed)
}

func TestTransitionAllowedSetInError(t *testing.T) {
	err := Transition(StatusScheduled, StatusCompleted)
	require.Error(t, err)

	var te *InvalidTransitionError
	require.ErrorAs(t, err, &te)
	assert.ElementsMatch(t, []Status{StatusConfirmed, StatusCancelled}, te.Allowed)
}

func TestTerminalStates(t *testing.T) {
	assert.False(t, IsTerminal(StatusScheduled))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusDeclined))
}

func TestDeclinedHasNoInboundEdge(t *testing.T) {
	// DECLINED existe na máquina mas nenhum status chega nele
	for from := range transitions {
		assert.Falsef(t, CanTransition(from, StatusDeclined), "%s -> DECLINED", from)
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusScheduled, InitialStatus())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusScheduled))
	assert.True(t, IsValidStatus(StatusDeclined))
	assert.False(t, IsValidStatus(Status("NO_SHOW")))
	assert.False(t, IsValidStatus(Status("scheduled")))
}
