package servicepackage

import "fmt"

// PackageUnavailableError indica que a sessão não pode ser usada:
// pacote esgotado, expirado ou intervalo mínimo não decorrido.
type PackageUnavailableError struct {
	Reason string
}

func (e *PackageUnavailableError) Error() string {
	return fmt.Sprintf("package unavailable: %s", e.Reason)
}

// PackageValidationError indica violação de regra na compra do pacote.
type PackageValidationError struct {
	Field   string
	Message string
}

func (e *PackageValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
