// Package apperror defines the canonical error kinds surfaced by the stock
// ledger. Callers match them with errors.Is; the concrete storage error is
// preserved in the wrap chain for logging but never shown to the user.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is returned when registering a medication whose
	// name is already taken (names are unique, case-sensitive).
	ErrDuplicateName = errors.New("remédio já cadastrado")

	// ErrNotFound is returned when an operation references an unknown
	// medication id.
	ErrNotFound = errors.New("remédio não encontrado")

	// ErrInvalidInput covers non-positive doses, negative stock values and
	// empty names.
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrStorage wraps I/O or transaction failures from the persistence
	// layer. Mutating operations abort with no partial state.
	ErrStorage = errors.New("falha de banco de dados")

	// ErrDelivery marks a failed notification delivery. Always swallowed
	// by the scanner; it never affects ledger state.
	ErrDelivery = errors.New("falha ao entregar notificação")
)

// InvalidInputf builds an ErrInvalidInput with a caller message.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Storage wraps err as an ErrStorage, keeping the cause in the chain.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
