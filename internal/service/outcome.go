package service

import (
	"errors"

	"github.com/dtroode/authkeeper/internal/model"
)

// Outcome labels recorded per lifecycle operation.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid_input"
	OutcomeRejected    = "rejected"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// OutcomeRecorder counts the result of each lifecycle operation.
type OutcomeRecorder interface {
	RecordOutcome(operation, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordOutcome(string, string) {}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, model.ErrValidation):
		return OutcomeInvalid
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrInvalidRefreshToken),
		errors.Is(err, model.ErrInvalidOrExpiredToken),
		errors.Is(err, model.ErrInvalidAccessToken):
		return OutcomeRejected
	case errors.Is(err, model.ErrUserNotFound), errors.Is(err, model.ErrRoleNotFound):
		return OutcomeNotFound
	case errors.Is(err, model.ErrStorageUnavailable):
		return OutcomeUnavailable
	default:
		return OutcomeError
	}
}
