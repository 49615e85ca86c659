package money

import "reddy-infra/internal/apperr"

var (
	// -- Validation & Input --
	ErrNonPositiveRetail = apperr.New(apperr.CodeInvalidArgument, "retail price must be greater than zero")
	ErrNonPositiveWhole  = apperr.New(apperr.CodeInvalidArgument, "percentage base must be greater than zero")
)
