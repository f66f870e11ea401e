package cache

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

// AvailabilityCache guarda os horários livres derivados da agenda de
// um prestador. Injetado nos casos de uso; o core não segura cache
// global mutável. Toda escrita que toca a agenda do dia invalida a
// entrada após o commit.
type AvailabilityCache interface {
	GetSlots(
		ctx context.Context,
		providerID uint,
		day string,
		serviceType string,
	) ([]domain.TimeSlot, bool)

	SetSlots(
		ctx context.Context,
		providerID uint,
		day string,
		serviceType string,
		slots []domain.TimeSlot,
	)

	// InvalidateDay remove todas as entradas do prestador no dia
	// (todos os tipos de serviço).
	InvalidateDay(ctx context.Context, providerID uint, day string)
}

// Noop desliga o cache (testes e ambientes sem redis).
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (Noop) GetSlots(context.Context, uint, string, string) ([]domain.TimeSlot, bool) {
	return nil, false
}

func (Noop) SetSlots(context.Context, uint, string, string, []domain.TimeSlot) {}

func (Noop) InvalidateDay(context.Context, uint, string) {}

var _ AvailabilityCache = Noop{}
