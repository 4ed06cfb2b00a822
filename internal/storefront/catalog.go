package storefront

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/themizzi/swagtest/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ErrUnknownProduct is returned for product ids missing from the catalog
var ErrUnknownProduct = errors.New("unknown product")

// Product is one catalog entry
type Product struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	PriceCents  int64  `yaml:"price_cents"`
	Image       string `yaml:"image"`
}

// Slug is the suffix of the product's add and remove button ids
func (p Product) Slug() string {
	return strings.ReplaceAll(strings.ToLower(p.Name), " ", "-")
}

// Price renders the price the way the inventory shows it
func (p Product) Price() string {
	return models.FormatCents(p.PriceCents)
}

// LineItem converts the product into an order line
func (p Product) LineItem() models.LineItem {
	return models.LineItem{ProductID: p.ID, Name: p.Name, PriceCents: p.PriceCents}
}

// Catalog holds the products the storefront sells
type Catalog struct {
	Products []Product `yaml:"products"`

	byID map[int]Product
}

// LoadCatalog parses the embedded catalog
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog parses a YAML catalog and sorts it by name
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Products) == 0 {
		return nil, errors.New("catalog has no products")
	}

	c.byID = make(map[int]Product, len(c.Products))
	for _, p := range c.Products {
		if p.Name == "" || p.PriceCents <= 0 {
			return nil, fmt.Errorf("invalid catalog entry %d: name and positive price required", p.ID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog id %d", p.ID)
		}
		c.byID[p.ID] = p
	}
	sort.SliceStable(c.Products, func(i, j int) bool {
		return c.Products[i].Name < c.Products[j].Name
	})
	return &c, nil
}

// Product returns the product with id
func (c *Catalog) Product(id int) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: %d", ErrUnknownProduct, id)
	}
	return p, nil
}

// Lookup parses a product id from a query value
func (c *Catalog) Lookup(raw string) (Product, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return Product{}, fmt.Errorf("%w: %q", ErrUnknownProduct, raw)
	}
	return c.Product(id)
}

// Resolve maps cart ids to products, skipping ids the catalog does not know
func (c *Catalog) Resolve(ids []int) []Product {
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
