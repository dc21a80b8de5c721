package ledger

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Failure taxonomy surfaced by the engine and query facade. Callers match
// with errors.Is and translate to user-facing responses; the engine never
// renders text and never leaks driver detail.
var (
	ErrInvalidAmount       = errors.New("amount must be positive with at most two decimal places")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidQuantity     = errors.New("position quantity cannot go negative")
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStorage             = errors.New("storage error")
)

// classify maps gorm errors onto the ledger taxonomy. Anything the store
// cannot name becomes ErrStorage with the cause attached for logs.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConstraintViolation), errors.Is(err, ErrStorage):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
}
