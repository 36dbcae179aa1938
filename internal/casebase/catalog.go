// Package casebase holds the dish/beverage catalog and the in-memory
// case store with its retrieval indices.
//
// The store carries no internal locking: the engine serializes access.
package casebase

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"traiteur/internal/models"
)

// Catalog is the immutable collection of dishes and beverages menus are
// assembled from.
type Catalog struct {
	dishes    map[string]models.Dish
	beverages map[string]models.Beverage
	dishOrder []string
	bevOrder  []string
}

// NewCatalog builds an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		dishes:    make(map[string]models.Dish),
		beverages: make(map[string]models.Beverage),
	}
}

// catalogFile is the YAML shape of a catalog file.
type catalogFile struct {
	Dishes    []models.Dish     `yaml:"dishes"`
	Beverages []models.Beverage `yaml:"beverages"`
}

// LoadCatalog reads dishes and beverages from a YAML file, validating
// every entry. Malformed catalog data is the one condition that aborts
// startup.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	c := NewCatalog()
	for i := range file.Dishes {
		if err := c.AddDish(file.Dishes[i]); err != nil {
			return nil, err
		}
	}
	for i := range file.Beverages {
		if err := c.AddBeverage(file.Beverages[i]); err != nil {
			return nil, err
		}
	}
	if len(c.dishOrder) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no dishes", path)
	}
	return c, nil
}

// AddDish validates and stores a dish.
func (c *Catalog) AddDish(d models.Dish) error {
	if err := models.ValidateDish(&d); err != nil {
		return err
	}
	if _, exists := c.dishes[d.ID]; exists {
		return fmt.Errorf("duplicate dish id %s", d.ID)
	}
	c.dishes[d.ID] = d
	c.dishOrder = append(c.dishOrder, d.ID)
	return nil
}

// AddBeverage validates and stores a beverage.
func (c *Catalog) AddBeverage(b models.Beverage) error {
	if b.ID == "" || b.Name == "" {
		return fmt.Errorf("beverage needs id and name")
	}
	if b.Price <= 0 {
		return fmt.Errorf("beverage %s: price must be greater than 0", b.ID)
	}
	if _, exists := c.beverages[b.ID]; exists {
		return fmt.Errorf("duplicate beverage id %s", b.ID)
	}
	c.beverages[b.ID] = b
	c.bevOrder = append(c.bevOrder, b.ID)
	return nil
}

// Dish returns a dish by id.
func (c *Catalog) Dish(id string) (models.Dish, bool) {
	d, ok := c.dishes[id]
	return d, ok
}

// Beverage returns a beverage by id.
func (c *Catalog) Beverage(id string) (models.Beverage, bool) {
	b, ok := c.beverages[id]
	return b, ok
}

// DishesByType returns all dishes serving a course, in catalog order.
func (c *Catalog) DishesByType(t models.DishType) []models.Dish {
	var out []models.Dish
	for _, id := range c.dishOrder {
		if d := c.dishes[id]; d.Type == t {
			out = append(out, d)
		}
	}
	return out
}

// Dishes returns every dish in catalog order.
func (c *Catalog) Dishes() []models.Dish {
	out := make([]models.Dish, 0, len(c.dishOrder))
	for _, id := range c.dishOrder {
		out = append(out, c.dishes[id])
	}
	return out
}

// BeveragesByPreference returns alcoholic beverages when wine is
// wanted, non-alcoholic ones otherwise.
func (c *Catalog) BeveragesByPreference(wantsWine bool) []models.Beverage {
	var out []models.Beverage
	for _, id := range c.bevOrder {
		if b := c.beverages[id]; b.Alcoholic == wantsWine {
			out = append(out, b)
		}
	}
	return out
}

// Beverages returns every beverage in catalog order.
func (c *Catalog) Beverages() []models.Beverage {
	out := make([]models.Beverage, 0, len(c.bevOrder))
	for _, id := range c.bevOrder {
		out = append(out, c.beverages[id])
	}
	return out
}

// DishCount returns the number of dishes.
func (c *Catalog) DishCount() int { return len(c.dishes) }

// BeverageCount returns the number of beverages.
func (c *Catalog) BeverageCount() int { return len(c.beverages) }
