package loyalty

import "fmt"

// InsufficientPointsError indica resgate maior que o saldo do cliente.
type InsufficientPointsError struct {
	Requested int
	Balance   int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf(
		"insufficient loyalty points: requested %d, balance %d",
		e.Requested, e.Balance,
	)
}
