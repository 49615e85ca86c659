package cart

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"reddy-infra/internal/catalog"
)

// The functions below never modify the slice they are given.

// Add puts quantity of product in the cart. An existing line for the same
// product id grows by quantity and keeps its original snapshot.
func Add(items []Item, product catalog.Product, quantity int) ([]Item, error) {
	if product.ID == "" {
		return nil, ErrInvalidProduct
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	out := Clone(items)
	if i := index(out, product.ID); i >= 0 {
		out[i].Quantity += quantity
		return out, nil
	}
	return append(out, Item{Product: product.Clone(), Quantity: quantity}), nil
}

// Remove drops the line for productID. Unknown ids leave the cart unchanged.
func Remove(items []Item, productID string) []Item {
	return slices.DeleteFunc(Clone(items), func(it Item) bool {
		return it.Product.ID == productID
	})
}

// SetQuantity replaces the quantity of an existing line. Unknown ids leave
// the cart unchanged. Quantities are not aligned to MOQ.
func SetQuantity(items []Item, productID string, quantity int) ([]Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	out := Clone(items)
	if i := index(out, productID); i >= 0 {
		out[i].Quantity = quantity
	}
	return out, nil
}

func Find(items []Item, productID string) (Item, error) {
	if i := index(items, productID); i >= 0 {
		return Clone(items[i : i+1])[0], nil
	}
	return Item{}, fmt.Errorf("%w: %q", ErrItemNotFound, productID)
}

// Total is the sum of pooled line totals.
func Total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

// Savings is the sum of retail minus pooled over every line.
func Savings(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineSavings())
	}
	return sum
}

// Count is the number of units in the cart, shown on the cart badge.
func Count(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func index(items []Item, productID string) int {
	return slices.IndexFunc(items, func(it Item) bool {
		return it.Product.ID == productID
	})
}

// Clone deep-copies items, product snapshots included.
func Clone(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = Item{Product: it.Product.Clone(), Quantity: it.Quantity}
	}
	return out
}

// Validate checks that every line has a product id and a positive quantity,
// and that no product id appears twice.
func Validate(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it.Product.ID == "" {
			return ErrInvalidProduct
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: %q has quantity %d", ErrInvalidQuantity, it.Product.ID, it.Quantity)
		}
		if _, dup := seen[it.Product.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateItem, it.Product.ID)
		}
		seen[it.Product.ID] = struct{}{}
	}
	return nil
}
