// Package catalog serves the read-only shoe listing the storefront renders.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"shoecard/models"
)

// ErrNotFound is returned by BySlug for an unknown slug.
var ErrNotFound = errors.New("shoe not found")

// Sort orders offered by the storefront.
const (
	SortNewest = "newest"
	SortPrice  = "price"
)

type file struct {
	Shoes []models.Shoe `yaml:"shoes"`
}

// Catalog is an immutable, ordered set of shoes.
type Catalog struct {
	shoes  []models.Shoe
	bySlug map[string]int
}

// Load reads a YAML listing from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML listing. Slugs must be present and unique.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Shoes)
}

// New builds a catalog from shoes, keeping their order.
func New(shoes []models.Shoe) (*Catalog, error) {
	c := &Catalog{
		shoes:  make([]models.Shoe, len(shoes)),
		bySlug: make(map[string]int, len(shoes)),
	}
	copy(c.shoes, shoes)

	for i, s := range c.shoes {
		if s.Slug == "" {
			return nil, fmt.Errorf("shoe %d: empty slug", i)
		}
		if s.NumOfColors < 0 {
			return nil, fmt.Errorf("shoe %s: negative num_of_colors", s.Slug)
		}
		if _, dup := c.bySlug[s.Slug]; dup {
			return nil, fmt.Errorf("shoe %s: duplicate slug", s.Slug)
		}
		c.bySlug[s.Slug] = i
	}
	return c, nil
}

// Len returns the number of shoes.
func (c *Catalog) Len() int { return len(c.shoes) }

// All returns a copy of every shoe in listing order.
func (c *Catalog) All() []models.Shoe {
	out := make([]models.Shoe, len(c.shoes))
	copy(out, c.shoes)
	return out
}

func (c *Catalog) BySlug(slug string) (models.Shoe, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return models.Shoe{}, fmt.Errorf("%s: %w", slug, ErrNotFound)
	}
	return c.shoes[i], nil
}

// Sorted returns every shoe in the given order. An empty order keeps listing order.
func (c *Catalog) Sorted(order string) ([]models.Shoe, error) {
	out := c.All()
	switch order {
	case "":
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ReleaseDate.After(out[j].ReleaseDate)
		})
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice() < out[j].EffectivePrice()
		})
	default:
		return nil, fmt.Errorf("unknown sort order %q", order)
	}
	return out, nil
}
