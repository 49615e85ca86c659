package order

import "reddy-infra/internal/apperr"

var (
	// -- Validation & Input --
	ErrEmptyCart     = apperr.New(apperr.CodeInvalidArgument, "cannot place an order from an empty cart")
	ErrUnknownStatus = apperr.New(apperr.CodeInvalidArgument, "unknown order status")
	ErrInvalidDates  = apperr.New(apperr.CodeInvalidArgument, "order dates must satisfy createdAt <= dispatchDate <= deliveryDate")
	ErrMissingID     = apperr.New(apperr.CodeInvalidArgument, "order id is required")

	// -- Resource State --
	ErrOrderNotFound = apperr.New(apperr.CodeNotFound, "order not found")
)
