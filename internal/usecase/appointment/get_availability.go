package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

// GetAvailability lista os horários livres de um prestador num dia,
// andando pela janela de expediente em passos do tamanho do serviço.
// Resultado derivado da agenda; cacheado com invalidação pós-commit.
type GetAvailability struct {
	repo    domain.Repository
	cache   cache.AvailabilityCache
	catalog *catalog.Catalog
	rules   domain.Rules
}

func NewGetAvailability(
	repo domain.Repository,
	availCache cache.AvailabilityCache,
	cat *catalog.Catalog,
	rules domain.Rules,
) *GetAvailability {
	return &GetAvailability{
		repo:    repo,
		cache:   availCache,
		catalog: cat,
		rules:   rules,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	serviceType := catalog.ServiceType(in.ServiceType)
	if !catalog.IsValid(serviceType) {
		return []domain.TimeSlot{}, nil
	}

	if !uc.rules.AllowWeekends {
		wd := in.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			return []domain.TimeSlot{}, nil
		}
	}

	day := in.Date.Format("2006-01-02")
	if slots, ok := uc.cache.GetSlots(ctx, in.ProviderID, day, in.ServiceType); ok {
		return slots, nil
	}

	loc := in.Date.Location()

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		uc.rules.BusinessHourStart, 0, 0, 0,
		loc,
	)
	dayEnd := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		uc.rules.BusinessHourEnd, 0, 0, 0,
		loc,
	)

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.ProviderID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(uc.catalog.DefaultDurationMin(serviceType)) * time.Minute
	slots := []domain.TimeSlot{}

	apIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		// avança agendamentos já encerrados
		for apIdx < len(appointments) && !appointments[apIdx].EndTime.After(slotStart) {
			apIdx++
		}

		conflict := false
		if apIdx < len(appointments) {
			ap := appointments[apIdx]
			if domain.Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
				conflict = true
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	uc.cache.SetSlots(ctx, in.ProviderID, day, in.ServiceType, slots)

	return slots, nil
}
