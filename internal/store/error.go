package store

import "reddy-infra/internal/apperr"

var (
	// -- Persisted State --
	ErrCorruptSnapshot     = apperr.New(apperr.CodeInvalidArgument, "corrupt state snapshot")
	ErrUnsupportedSnapshot = apperr.New(apperr.CodeInvalidArgument, "unsupported snapshot version")

	// -- Database & Operation Failures --
	ErrFailedPersist = apperr.New(apperr.CodeInternal, "failed to persist state")
	ErrFailedRestore = apperr.New(apperr.CodeInternal, "failed to restore state")
)
