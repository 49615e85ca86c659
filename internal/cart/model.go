package cart

import (
	"github.com/shopspring/decimal"

	"reddy-infra/internal/catalog"
	"reddy-infra/internal/money"
)

// Item is one cart line. Product is a snapshot taken when the line was
// added; later catalog changes do not reach it.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// LineTotal is the pooled price of the line.
func (i Item) LineTotal() decimal.Decimal {
	return money.LineTotal(i.Product.PooledPrice, i.Quantity)
}

// LineSavings is what the line saves against retail.
func (i Item) LineSavings() decimal.Decimal {
	return money.LineTotal(i.Product.RetailPrice.Sub(i.Product.PooledPrice), i.Quantity)
}
