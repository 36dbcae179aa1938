package models

import "fmt"

// Dish represents a dish in the catalog.
//
// Catalog dishes are immutable: adaptation works on copies produced by
// Clone and never mutates the original entry.
type Dish struct {
	ID                  string              `yaml:"id" json:"id"`
	Name                string              `yaml:"name" json:"name"`
	Type                DishType            `yaml:"dish_type" json:"dish_type"`
	Price               float64             `yaml:"price" json:"price"`
	Category            DishCategory        `yaml:"category" json:"category"`
	Styles              []CulinaryStyle     `yaml:"styles" json:"styles"`
	Seasons             []Season            `yaml:"seasons" json:"seasons"`
	Temperature         Temperature         `yaml:"temperature" json:"temperature"`
	Complexity          Complexity          `yaml:"complexity" json:"complexity"`
	Calories            int                 `yaml:"calories" json:"calories"`
	MaxGuests           int                 `yaml:"max_guests" json:"max_guests"`
	Flavors             []Flavor            `yaml:"flavors" json:"flavors"`
	Diets               []string            `yaml:"diets" json:"diets"`
	Ingredients         []string            `yaml:"ingredients" json:"ingredients"`
	CompatibleBeverages []string            `yaml:"compatible_beverages" json:"compatible_beverages"`
	CulturalTraditions  []CulturalTradition `yaml:"cultural_traditions" json:"cultural_traditions"`
}

// ValidateDish checks that a catalog dish carries the minimum usable data
func ValidateDish(d *Dish) error {
	if d.ID == "" {
		return fmt.Errorf("dish id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("dish %s: name is required", d.ID)
	}
	switch d.Type {
	case DishStarter, DishMain, DishDessert:
	default:
		return fmt.Errorf("dish %s: unknown dish type %q", d.ID, d.Type)
	}
	if d.Price <= 0 {
		return fmt.Errorf("dish %s: price must be greater than 0", d.ID)
	}
	if len(d.Ingredients) == 0 {
		return fmt.Errorf("dish %s: at least one ingredient is required", d.ID)
	}
	return nil
}

// AvailableInSeason checks if the dish can be served in the given season
func (d *Dish) AvailableInSeason(season Season) bool {
	for _, s := range d.Seasons {
		if s == SeasonAll || s == season {
			return true
		}
	}
	return false
}

// MeetsDiets checks if the dish satisfies every required diet
func (d *Dish) MeetsDiets(required []string) bool {
	for _, diet := range required {
		if !contains(d.Diets, diet) {
			return false
		}
	}
	return true
}

// HasIngredient checks if the dish contains a specific ingredient
func (d *Dish) HasIngredient(ingredient string) bool {
	return contains(d.Ingredients, ingredient)
}

// HasAnyIngredient checks if the dish contains any of the given ingredients
func (d *Dish) HasAnyIngredient(ingredients []string) bool {
	for _, ing := range ingredients {
		if contains(d.Ingredients, ing) {
			return true
		}
	}
	return false
}

// HasFlavor checks if the dish carries a specific flavor
func (d *Dish) HasFlavor(flavor Flavor) bool {
	for _, f := range d.Flavors {
		if f == flavor {
			return true
		}
	}
	return false
}

// HasStyle checks if the dish is associated with a culinary style
func (d *Dish) HasStyle(style CulinaryStyle) bool {
	for _, s := range d.Styles {
		if s == style {
			return true
		}
	}
	return false
}

// HasTradition checks if the dish belongs to a cultural tradition
func (d *Dish) HasTradition(tradition CulturalTradition) bool {
	for _, t := range d.CulturalTraditions {
		if t == tradition {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the dish safe to modify.
func (d *Dish) Clone() Dish {
	out := *d
	out.Styles = append([]CulinaryStyle(nil), d.Styles...)
	out.Seasons = append([]Season(nil), d.Seasons...)
	out.Flavors = append([]Flavor(nil), d.Flavors...)
	out.Diets = append([]string(nil), d.Diets...)
	out.Ingredients = append([]string(nil), d.Ingredients...)
	out.CompatibleBeverages = append([]string(nil), d.CompatibleBeverages...)
	out.CulturalTraditions = append([]CulturalTradition(nil), d.CulturalTraditions...)
	return out
}

// Beverage represents a drink or wine pairing option
type Beverage struct {
	ID        string  `yaml:"id" json:"id"`
	Name      string  `yaml:"name" json:"name"`
	Alcoholic bool    `yaml:"alcoholic" json:"alcoholic"`
	Price     float64 `yaml:"price" json:"price"`
	Type      string  `yaml:"type" json:"type"`
	Subtype   string  `yaml:"subtype,omitempty" json:"subtype,omitempty"`
}

// IsWine reports whether the beverage is a wine of any kind
func (b *Beverage) IsWine() bool {
	switch b.Type {
	case "red-wine", "white-wine", "rose-wine", "sparkling-wine", "dessert-wine":
		return true
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
