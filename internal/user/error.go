package user

import "reddy-infra/internal/apperr"

var (
	// -- Validation & Input --
	ErrInvalidProfile = apperr.New(apperr.CodeInvalidArgument, "invalid profile")
	ErrInvalidPhone   = apperr.New(apperr.CodeInvalidArgument, "phone number must be 10 digits")
	ErrInvalidOTP     = apperr.New(apperr.CodeInvalidArgument, "otp must be 4 digits")
)
