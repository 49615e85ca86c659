package cart

import "reddy-infra/internal/apperr"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = apperr.New(apperr.CodeInvalidArgument, "quantity must be greater than zero")
	ErrInvalidProduct  = apperr.New(apperr.CodeInvalidArgument, "product id is required")
	ErrDuplicateItem   = apperr.New(apperr.CodeInvalidArgument, "product appears on more than one line")

	// -- Resource State --
	ErrItemNotFound = apperr.New(apperr.CodeNotFound, "cart item not found")
)
