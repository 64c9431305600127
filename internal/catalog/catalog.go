// Package catalog enumerates product categories and enriches raw product rows
// with a category, its copy and imagery, and a rating.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"clinicart/internal/domain"
)

//go:embed categories.yaml
var categoriesYAML []byte

// DefaultMaxRating bounds the random rating: ratings fall in [1, 1+max).
const DefaultMaxRating = 5.0

type Category struct {
	Name        string   `yaml:"name"`
	Description []string `yaml:"description"`
	Images      []string `yaml:"images"`
}

type Categories []Category

// Parse decodes a category document. Names must be unique and non-empty.
func Parse(b []byte) (Categories, error) {
	var doc struct {
		Categories Categories `yaml:"categories"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, errors.New("parse categories: no categories defined")
	}
	seen := make(map[string]bool, len(doc.Categories))
	for _, c := range doc.Categories {
		if c.Name == "" {
			return nil, errors.New("parse categories: category without a name")
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("parse categories: duplicate category %q", c.Name)
		}
		seen[c.Name] = true
	}
	return doc.Categories, nil
}

// Default returns the built-in clinic categories.
func Default() Categories {
	cs, err := Parse(categoriesYAML)
	if err != nil {
		panic(err)
	}
	return cs
}

func (cs Categories) Names() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func (cs Categories) Lookup(name string) (Category, bool) {
	for _, c := range cs {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Source draws the random values used during enrichment. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Enricher turns raw product rows into catalog products. Not safe for
// concurrent use; the product loader is its only caller.
type Enricher struct {
	cats      Categories
	src       Source
	maxRating float64
}

func NewEnricher(cats Categories, src Source, maxRating float64) *Enricher {
	if len(cats) == 0 {
		cats = Default()
	}
	if maxRating <= 0 {
		maxRating = DefaultMaxRating
	}
	return &Enricher{cats: cats, src: src, maxRating: maxRating}
}

// Enrich assigns a random category and rating to a product row. Offers are
// attached later, per request.
func (e *Enricher) Enrich(id int, name string, price decimal.Decimal) domain.Product {
	c := e.cats[e.src.Intn(len(e.cats))]
	return domain.Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Category:    c.Name,
		Description: slices.Clone(c.Description),
		Images:      slices.Clone(c.Images),
		Rating:      e.src.Float64()*e.maxRating + 1,
	}
}
