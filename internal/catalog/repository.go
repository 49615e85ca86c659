package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Repository is read-only access to the catalog. Returned slices are copies.
type Repository interface {
	Categories() []Category
	Products() []Product
	EducationCards() []EducationCard
	CategoryByID(id string) (Category, error)
	ProductByID(id string) (Product, error)
	ProductsByCategory(categoryID string) []Product
}

type document struct {
	Categories     []Category      `yaml:"categories"`
	Products       []Product       `yaml:"products"`
	EducationCards []EducationCard `yaml:"educationCards"`
}

type repository struct {
	doc        document
	categories map[string]int
	products   map[string]int
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (Repository, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	r := &repository{
		doc:        doc,
		categories: make(map[string]int, len(doc.Categories)),
		products:   make(map[string]int, len(doc.Products)),
	}
	for i, c := range doc.Categories {
		r.categories[c.ID] = i
	}
	for i, p := range doc.Products {
		r.products[p.ID] = i
	}
	return r, nil
}

var (
	defaultOnce sync.Once
	defaultRepo Repository
)

// Default returns the compiled-in catalog. Broken embedded data is a build
// defect, so it panics rather than returning an error.
func Default() Repository {
	defaultOnce.Do(func() {
		repo, err := Parse(embeddedCatalog)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultRepo = repo
	})
	return defaultRepo
}

func (r *repository) Categories() []Category {
	return slices.Clone(r.doc.Categories)
}

func (r *repository) Products() []Product {
	out := make([]Product, len(r.doc.Products))
	for i, p := range r.doc.Products {
		out[i] = p.Clone()
	}
	return out
}

func (r *repository) EducationCards() []EducationCard {
	return slices.Clone(r.doc.EducationCards)
}

func (r *repository) CategoryByID(id string) (Category, error) {
	i, ok := r.categories[id]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, id)
	}
	return r.doc.Categories[i], nil
}

func (r *repository) ProductByID(id string) (Product, error) {
	i, ok := r.products[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: %q", ErrProductNotFound, id)
	}
	return r.doc.Products[i].Clone(), nil
}

func (r *repository) ProductsByCategory(categoryID string) []Product {
	out := make([]Product, 0)
	for _, p := range r.doc.Products {
		if p.Category == categoryID {
			out = append(out, p.Clone())
		}
	}
	return out
}

func validate(doc document) error {
	categoryIDs := make(map[string]struct{}, len(doc.Categories))
	for _, c := range doc.Categories {
		if c.ID == "" {
			return fmt.Errorf("%w: category with empty id", ErrInvalidCatalog)
		}
		if _, dup := categoryIDs[c.ID]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, c.ID)
		}
		categoryIDs[c.ID] = struct{}{}
	}

	productIDs := make(map[string]struct{}, len(doc.Products))
	for _, p := range doc.Products {
		if p.ID == "" {
			return fmt.Errorf("%w: product with empty id", ErrInvalidCatalog)
		}
		if _, dup := productIDs[p.ID]; dup {
			return fmt.Errorf("%w: duplicate product %q", ErrInvalidCatalog, p.ID)
		}
		productIDs[p.ID] = struct{}{}

		if _, ok := categoryIDs[p.Category]; !ok {
			return fmt.Errorf("%w: product %q references unknown category %q", ErrInvalidCatalog, p.ID, p.Category)
		}
		if p.PooledPrice.IsNegative() || p.PooledPrice.GreaterThan(p.RetailPrice) {
			return fmt.Errorf("%w: product %q needs 0 <= pooledPrice <= retailPrice", ErrInvalidCatalog, p.ID)
		}
		if p.MOQ <= 0 || p.TargetPoolQty <= 0 {
			return fmt.Errorf("%w: product %q needs positive moq and targetPoolQty", ErrInvalidCatalog, p.ID)
		}
		if p.CurrentPoolQty < 0 || p.DeliveryDays < 0 {
			return fmt.Errorf("%w: product %q has negative pool or delivery days", ErrInvalidCatalog, p.ID)
		}
	}
	return nil
}
