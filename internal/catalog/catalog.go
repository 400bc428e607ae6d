// Package catalog owns the static product list the storefront sells from.
// The catalog is immutable configuration loaded once at process start and
// injected into its consumers, so tests can substitute their own product
// set.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"mesnato/internal/domain"

	"gopkg.in/yaml.v3"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog is an ordered, read-only collection of products.
type Catalog struct {
	products []domain.Product
}

// New builds a catalog from the given products. The slice is copied so the
// caller cannot mutate the catalog afterwards.
func New(products []domain.Product) *Catalog {
	copied := make([]domain.Product, len(products))
	copy(copied, products)
	return &Catalog{products: copied}
}

// Default returns the shop's built-in product list.
func Default() *Catalog {
	return New([]domain.Product{
		{
			Name:        "Suvi Vrat",
			Cut:         "Suvo meso",
			Price:       "1500 RSD",
			Origin:      "Srbija",
			Badge:       "Popularno",
			Description: "Nežno suvo meso od vrata bogatog ukusa. Idealno predjelo ili meze uz rakiju.",
			Image:       "/vrat.jpeg",
		},
		{
			Name:        "Pečenica",
			Cut:         "Suvo meso",
			Price:       "1500 RSD",
			Origin:      "Srbija",
			Description: "Klasična pečenica od biranog mesa. Bogat ukus i meka tekstura.",
			Image:       "/pecenica.jpeg",
		},
		{
			Name:        "Dimljena Butkica",
			Cut:         "Dimljeno meso",
			Price:       "850 RSD",
			Origin:      "Srbija",
			Description: "Dimljeno meso od zadnje noge sa karakterističnim ukusom, gurmanski izbor.",
			Image:       "/butkica.jpeg",
		},
		{
			Name:        "Dimljena Kolenica",
			Cut:         "Dimljeno meso",
			Price:       "850 RSD",
			Origin:      "Srbija",
			Description: "Fina kolenica sa bogatim ukusom i nežnom teksturom, za posebne prilike.",
			Image:       "/kolenica.jpeg",
		},
		{
			Name:        "Sušeni But",
			Cut:         "Suvo meso",
			Price:       "1500 RSD",
			Origin:      "Srbija",
			Description: "Suvo meso od zadnje noge sa izraženim ukusom, delicija za poznavaoce.",
			Image:       "/but.jpeg",
		},
		{
			Name:        "Mast",
			Cut:         "Tradicionalna mast",
			Price:       "250 RSD",
			Origin:      "Srbija",
			Description: "Tradicionalna mast od svinjskog sala sa začinima, za kuvanje ili kao predjelo.",
			Image:       "/mast.jpg",
		},
	})
}

type catalogFile struct {
	Products []domain.Product `yaml:"products"`
}

// LoadFile reads a catalog from a YAML file with a top-level "products" list.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no products", path)
	}

	return New(file.Products), nil
}

// Products returns a copy of the full product list in catalog order.
func (c *Catalog) Products() []domain.Product {
	copied := make([]domain.Product, len(c.products))
	copy(copied, c.products)
	return copied
}

// FindByName looks a product up by its unique name.
func (c *Catalog) FindByName(name string) (domain.Product, error) {
	for _, p := range c.products {
		if p.Name == name {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// BestSellers returns the first three products, the storefront's featured
// selection.
func (c *Catalog) BestSellers() []domain.Product {
	n := 3
	if len(c.products) < n {
		n = len(c.products)
	}
	copied := make([]domain.Product, n)
	copy(copied, c.products[:n])
	return copied
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
