package service

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors shared across services. Handlers translate these into
// response codes with errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked")
	ErrAccountInactive    = errors.New("account inactive")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("password does not meet policy")
	ErrNotFound           = errors.New("resource not found")
	ErrRelatedNotFound    = errors.New("related resource not found")
	ErrConflict           = errors.New("resource conflict")
	ErrForbidden          = errors.New("forbidden")
)

// AccountLockedError carries the lock expiry so callers can report when
// the account becomes available again. errors.Is(err, ErrAccountLocked)
// matches it.
type AccountLockedError struct {
	Until time.Time
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked until %s", e.Until.UTC().Format(time.RFC3339))
}

func (e *AccountLockedError) Is(target error) bool {
	return target == ErrAccountLocked
}
