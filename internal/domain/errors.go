package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound                = errors.New("resource not found")
	ErrPartyNotFound           = errors.New("party not found")
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrValidation              = errors.New("validation failed")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUserInactive            = errors.New("user is inactive")
	ErrDuplicateEmail          = errors.New("email already registered")
	ErrStoreUnavailable        = errors.New("document store unavailable")
	ErrUpstreamFormat          = errors.New("recommendation service returned an unexpected format")
	ErrSocialAuthTokenInvalid  = errors.New("social authentication token is invalid or expired")
	ErrPasswordLoginNotAllowed = errors.New("account uses social login")
)

// StoreError wraps a driver-level failure so callers can classify it with
// errors.Is(err, ErrStoreUnavailable) while the underlying cause stays in the chain.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: store unavailable: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// NewStoreError wraps err as a StoreError for the given operation.
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// ValidationErrorf returns an ErrValidation with a user-facing detail message.
func ValidationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
