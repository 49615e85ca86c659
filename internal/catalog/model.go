package catalog

import (
	"slices"

	"github.com/shopspring/decimal"

	"reddy-infra/internal/money"
)

type Category struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Icon         string `json:"icon" yaml:"icon"`
	ProductCount int    `json:"productCount" yaml:"productCount"`
	Image        string `json:"image" yaml:"image"`
}

// Spec is one row of a product's specification table.
type Spec struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Specs keeps specification rows in display order.
type Specs []Spec

// Get returns the value for name and whether it was present.
func (s Specs) Get(name string) (string, bool) {
	for _, spec := range s {
		if spec.Name == name {
			return spec.Value, true
		}
	}
	return "", false
}

type Product struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Brand          string          `json:"brand" yaml:"brand"`
	Category       string          `json:"category" yaml:"category"`
	Image          string          `json:"image" yaml:"image"`
	RetailPrice    decimal.Decimal `json:"retailPrice" yaml:"retailPrice"`
	PooledPrice    decimal.Decimal `json:"pooledPrice" yaml:"pooledPrice"`
	Unit           string          `json:"unit" yaml:"unit"`
	MOQ            int             `json:"moq" yaml:"moq"`
	CurrentPoolQty int             `json:"currentPoolQty" yaml:"currentPoolQty"`
	TargetPoolQty  int             `json:"targetPoolQty" yaml:"targetPoolQty"`
	Specs          Specs           `json:"specs" yaml:"specs"`
	EMIAvailable   bool            `json:"emiAvailable" yaml:"emiAvailable"`
	DeliveryDays   int             `json:"deliveryDays" yaml:"deliveryDays"`
}

// Clone returns a copy of p that shares no memory with it.
func (p Product) Clone() Product {
	p.Specs = slices.Clone(p.Specs)
	return p
}

type EducationCard struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

// SavingsPercent is the whole-percent discount of the pooled price.
func (p Product) SavingsPercent() (int, error) {
	return money.SavingsPercent(p.RetailPrice, p.PooledPrice)
}

// PoolFillPercent is how full the pool is. It can exceed 100.
func (p Product) PoolFillPercent() int {
	pct, err := money.Percent(p.CurrentPoolQty, p.TargetPoolQty)
	if err != nil {
		return 0
	}
	return pct
}

// PoolBarPercent is PoolFillPercent capped at 100 for progress bars.
func (p Product) PoolBarPercent() int {
	return min(p.PoolFillPercent(), 100)
}

// StepUp and StepDown move a quantity by one MOQ unit; StepDown never goes
// below a single MOQ.
func (p Product) StepUp(quantity int) int {
	return quantity + p.MOQ
}

func (p Product) StepDown(quantity int) int {
	return max(p.MOQ, quantity-p.MOQ)
}

func (p Product) CanStepDown(quantity int) bool {
	return quantity > p.MOQ
}

// LineQuote prices a quantity of a product at retail and pooled rates.
type LineQuote struct {
	Quantity int
	Retail   decimal.Decimal
	Pooled   decimal.Decimal
	Savings  decimal.Decimal
}

func (p Product) Quote(quantity int) LineQuote {
	retail := money.LineTotal(p.RetailPrice, quantity)
	pooled := money.LineTotal(p.PooledPrice, quantity)
	return LineQuote{
		Quantity: quantity,
		Retail:   retail,
		Pooled:   pooled,
		Savings:  retail.Sub(pooled),
	}
}

// CategorySummary is a category card as shown on the categories screen.
type CategorySummary struct {
	Category
	LiveProductCount  int
	AvgSavingsPercent int
}
