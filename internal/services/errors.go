package services

import (
	"errors"
	"fmt"
	"gorm.io/gorm"
	"strings"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrDependencyInUse = errors.New("dependency in use")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrCleaningRunning = errors.New("cleaning is in progress")
)

// newError wraps kind with a message safe to show to the caller.
func newError(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// translateError maps store errors onto service kinds; what is left is an
// internal failure.
func translateError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return newError(ErrNotFound, "%s not found", entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return newError(ErrConflict, "%s already exists", entity)
	}
	return err
}

// Message returns the caller-facing part of a service error.
func Message(err error) string {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrDependencyInUse, ErrUnauthorized, ErrCleaningRunning} {
		if errors.Is(err, kind) {
			return strings.TrimPrefix(err.Error(), kind.Error()+": ")
		}
	}
	return "Internal server error"
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
