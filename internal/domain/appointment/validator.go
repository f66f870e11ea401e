package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
)

// ===============================
// Regras de agendamento
// ===============================

// Rules é o conjunto configurável de regras estáticas. Vem da
// configuração do salão; o validador não lê estado global.
type Rules struct {
	MinNoticeHours    int
	BusinessHourStart int
	BusinessHourEnd   int
	MinDurationMin    int
	MaxDurationMin    int
	AllowWeekends     bool
}

// DefaultRules reflete o expediente padrão: 9h às 19h, seg-sex,
// antecedência de 2h, duração entre 15min e 8h.
func DefaultRules() Rules {
	return Rules{
		MinNoticeHours:    2,
		BusinessHourStart: 9,
		BusinessHourEnd:   19,
		MinDurationMin:    15,
		MaxDurationMin:    480,
		AllowWeekends:     false,
	}
}

// Candidate é a proposta de agendamento antes de qualquer persistência.
type Candidate struct {
	StartTime       time.Time
	DurationMinutes int
	ServiceType     catalog.ServiceType
}

// Draft é a proposta validada e normalizada, com end_time derivado.
type Draft struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	ServiceType     catalog.ServiceType
}

// Validate aplica as regras estáticas, cada uma independente, e deriva
// end_time. Função pura sobre (now, candidato, regras, catálogo);
// não toca storage.
func Validate(
	now time.Time,
	c Candidate,
	rules Rules,
	cat *catalog.Catalog,
) (*Draft, error) {

	if !catalog.IsValid(c.ServiceType) {
		return nil, NewValidationError(
			"service_type",
			"unknown service type %q", c.ServiceType,
		)
	}

	// Antecedência mínima
	minStart := now.Add(time.Duration(rules.MinNoticeHours) * time.Hour)
	if c.StartTime.Before(minStart) {
		return nil, NewValidationError(
			"start_time",
			"appointments must be scheduled at least %d hours in advance",
			rules.MinNoticeHours,
		)
	}

	// Fim de semana
	if !rules.AllowWeekends {
		wd := c.StartTime.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			return nil, NewValidationError(
				"start_time",
				"appointments cannot be scheduled on weekends",
			)
		}
	}

	// Duração: limites globais e mínimo do tipo de serviço
	if c.DurationMinutes < rules.MinDurationMin {
		return nil, NewValidationError(
			"duration_minutes",
			"duration must be at least %d minutes", rules.MinDurationMin,
		)
	}
	if c.DurationMinutes > rules.MaxDurationMin {
		return nil, NewValidationError(
			"duration_minutes",
			"duration cannot exceed %d minutes", rules.MaxDurationMin,
		)
	}
	if min := cat.DefaultDurationMin(c.ServiceType); c.DurationMinutes < min {
		return nil, NewValidationError(
			"duration_minutes",
			"duration cannot be less than %d minutes for %s",
			min, c.ServiceType,
		)
	}

	end := c.StartTime.Add(time.Duration(c.DurationMinutes) * time.Minute)

	// Expediente: início e fim dentro da janela do mesmo dia
	sameDay := c.StartTime.Year() == end.Year() &&
		c.StartTime.YearDay() == end.YearDay()

	if !sameDay ||
		c.StartTime.Hour() < rules.BusinessHourStart ||
		c.StartTime.Hour() >= rules.BusinessHourEnd ||
		end.Hour() >= rules.BusinessHourEnd {
		return nil, NewValidationError(
			"start_time",
			"appointments must be between %d:00 and %d:00",
			rules.BusinessHourStart, rules.BusinessHourEnd,
		)
	}

	return &Draft{
		StartTime:       c.StartTime,
		EndTime:         end,
		DurationMinutes: c.DurationMinutes,
		ServiceType:     c.ServiceType,
	}, nil
}
