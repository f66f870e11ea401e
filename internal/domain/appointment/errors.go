package appointment

import (
	"fmt"
	"time"
)

// ===============================
// Erros tipados do domínio
// ===============================

// ValidationError indica violação de regra estática de agendamento
// (antecedência, expediente, duração). Sempre recuperável pelo caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// ConflictError indica sobreposição temporal com outro agendamento do
// mesmo prestador. Carrega o início do primeiro agendamento bloqueante
// (menor start_time entre os conflitos).
type ConflictError struct {
	BlockingStart time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"time slot conflicts with an appointment starting at %s",
		e.BlockingStart.Format(time.RFC3339),
	)
}

// InvalidTransitionError indica aresta ilegal na máquina de status.
type InvalidTransitionError struct {
	From    Status
	To      Status
	Allowed []Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf(
		"invalid transition from %s to %s (allowed: %v)",
		e.From, e.To, e.Allowed,
	)
}
