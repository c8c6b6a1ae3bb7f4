package services

import (
	"errors"

	"ledger/internal/log"
)

// Every failed operation leaves the ledger and its history untouched.
var (
	ErrValidation = errors.New("validation error")
	ErrDuplicate  = errors.New("duplicate expense")
	ErrIndex      = errors.New("invalid index")
	ErrSchema     = errors.New("schema error")
	ErrIO         = errors.New("io error")
)

// errorType maps a manager error to its log category.
func errorType(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return log.ErrorTypeValidation
	case errors.Is(err, ErrDuplicate):
		return log.ErrorTypeDuplicate
	case errors.Is(err, ErrIndex):
		return log.ErrorTypeIndex
	case errors.Is(err, ErrSchema):
		return log.ErrorTypeSchema
	default:
		return log.ErrorTypeIO
	}
}
