package storage

import "reddy-infra/internal/apperr"

var (
	// -- Resource State --
	ErrNotFound = apperr.New(apperr.CodeNotFound, "snapshot not found")

	// -- Validation & Input --
	ErrEmptyKey      = apperr.New(apperr.CodeInvalidArgument, "storage key must not be empty")
	ErrUnknownDriver = apperr.New(apperr.CodeInvalidArgument, "unknown storage driver")

	// -- Database & Operation Failures --
	ErrFailedLoad   = apperr.New(apperr.CodeInternal, "failed to load snapshot")
	ErrFailedSave   = apperr.New(apperr.CodeInternal, "failed to save snapshot")
	ErrFailedDelete = apperr.New(apperr.CodeInternal, "failed to delete snapshot")
)
