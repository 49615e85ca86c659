package catalog

import "reddy-infra/internal/apperr"

var (
	// -- Resource State --
	ErrCategoryNotFound = apperr.New(apperr.CodeNotFound, "category not found")
	ErrProductNotFound  = apperr.New(apperr.CodeNotFound, "product not found")

	// -- Data Integrity --
	ErrInvalidCatalog = apperr.New(apperr.CodeInvalidArgument, "invalid catalog data")
)
