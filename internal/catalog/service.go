package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"reddy-infra/internal/logger"
	"reddy-infra/internal/money"
)

const maxTrending = 5

// Service defines the read paths screens use to render the catalog.
type Service interface {
	ListCategories(ctx context.Context) []CategorySummary
	GetCategory(ctx context.Context, id string) (CategorySummary, []Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	TrendingProducts(ctx context.Context) []Product
	EducationCards(ctx context.Context) []EducationCard
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListCategories returns every category with its live product count and
// average pooled discount. The live count is what screens show; the static
// ProductCount stays available on the embedded Category.
func (s *service) ListCategories(ctx context.Context) []CategorySummary {
	categories := s.repo.Categories()
	out := make([]CategorySummary, 0, len(categories))
	for _, c := range categories {
		out = append(out, s.summarize(ctx, c))
	}
	return out
}

func (s *service) GetCategory(ctx context.Context, id string) (CategorySummary, []Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetCategory"),
		zap.String("category_id", id),
	)

	c, err := s.repo.CategoryByID(id)
	if err != nil {
		log.Warn("category lookup failed", zap.Error(err))
		return CategorySummary{}, nil, err
	}
	return s.summarize(ctx, c), s.repo.ProductsByCategory(id), nil
}

func (s *service) GetProduct(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.ProductByID(id)
	if err != nil {
		logger.FromCtx(ctx).Warn("product lookup failed",
			zap.String("layer", "service"),
			zap.String("method", "GetProduct"),
			zap.String("product_id", id),
			zap.Error(err),
		)
		return Product{}, err
	}
	return p, nil
}

// TrendingProducts picks the first product of each category, in category order.
func (s *service) TrendingProducts(ctx context.Context) []Product {
	out := make([]Product, 0, maxTrending)
	for _, c := range s.repo.Categories() {
		if len(out) == maxTrending {
			break
		}
		products := s.repo.ProductsByCategory(c.ID)
		if len(products) > 0 {
			out = append(out, products[0])
		}
	}
	return out
}

func (s *service) EducationCards(ctx context.Context) []EducationCard {
	return s.repo.EducationCards()
}

func (s *service) summarize(ctx context.Context, c Category) CategorySummary {
	products := s.repo.ProductsByCategory(c.ID)
	summary := CategorySummary{Category: c, LiveProductCount: len(products)}
	if len(products) == 0 {
		return summary
	}

	sum := decimal.Zero
	counted := 0
	for _, p := range products {
		ratio, err := money.SavingsRatio(p.RetailPrice, p.PooledPrice)
		if err != nil {
			logger.FromCtx(ctx).Warn("skipping product in savings average",
				zap.String("product_id", p.ID),
				zap.Error(err),
			)
			continue
		}
		sum = sum.Add(ratio)
		counted++
	}
	if counted > 0 {
		summary.AvgSavingsPercent = int(sum.Div(decimal.NewFromInt(int64(counted))).Round(0).IntPart())
	}
	return summary
}
