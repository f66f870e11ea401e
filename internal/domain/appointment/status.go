package appointment

// ===============================
// Status do Agendamento
// ===============================

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
	StatusDeclined  Status = "DECLINED"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted, StatusDeclined:
		return true
	}
	return false
}

// InitialStatus é o status de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Máquina de transições
// ===============================

// transitions é o grafo completo do ciclo de vida. CANCELLED, COMPLETED
// e DECLINED são terminais (sem arestas de saída).
var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
	StatusDeclined:  {},
}

// AllowedTransitions retorna as transições legais a partir de um status.
func AllowedTransitions(from Status) []Status {
	allowed := transitions[from]
	out := make([]Status, len(allowed))
	copy(out, allowed)
	return out
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition valida a aresta pedida; devolve InvalidTransitionError
// com o conjunto permitido quando a aresta não existe.
func Transition(from, to Status) error {
	if !CanTransition(from, to) {
		return &InvalidTransitionError{
			From:    from,
			To:      to,
			Allowed: AllowedTransitions(from),
		}
	}
	return nil
}

func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}
