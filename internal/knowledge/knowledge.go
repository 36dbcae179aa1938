// Package knowledge holds the declarative gastronomic domain knowledge:
// flavor compatibilities, category incompatibilities, wine pairings,
// styles and complexity per event, calorie ranges, and the ingredient
// substitution tables.
//
// The tables ship with built-in defaults and can be overridden from
// YAML configuration files.
package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"traiteur/internal/models"
)

// PriceProportion holds per-course price share bounds for a price band.
type PriceProportion struct {
	StarterMin float64 `yaml:"starter_min"`
	StarterMax float64 `yaml:"starter_max"`
	MainMin    float64 `yaml:"main_min"`
	MainMax    float64 `yaml:"main_max"`
	DessertMin float64 `yaml:"dessert_min"`
	DessertMax float64 `yaml:"dessert_max"`
}

// CultureProfile describes what characterizes a culinary tradition.
type CultureProfile struct {
	KeyIngredients    []string               `yaml:"key_ingredients"`
	TypicalCategories []models.DishCategory  `yaml:"typical_categories"`
	Styles            []models.CulinaryStyle `yaml:"styles"`
}

// Base is the declarative knowledge base consulted by the similarity
// engine, the adapter and the reviser.
type Base struct {
	FlavorCompatibility     map[models.Flavor][]models.Flavor          `yaml:"flavor_compatibility"`
	IncompatibleCategories  [][]models.DishCategory                    `yaml:"incompatible_categories"`
	WineFlavorCompatibility map[string][]models.Flavor                 `yaml:"wine_flavor_compatibility"`
	EventStyles             map[models.EventType][]models.CulinaryStyle `yaml:"event_styles"`
	EventComplexity         map[models.EventType][]models.Complexity   `yaml:"event_complexity"`
	CalorieRanges           map[models.Season][]int                    `yaml:"calorie_ranges"`
	StarterTemperatures     map[models.Season][]models.Temperature     `yaml:"starter_temperatures"`
	GoodProgressions        map[models.DishCategory][]models.DishCategory `yaml:"good_progressions"`
	PriceProportions        map[string]PriceProportion                 `yaml:"price_proportions"`
	CulturalCharacteristics map[models.CulturalTradition]CultureProfile `yaml:"cultural_characteristics"`
}

// NewBase returns a knowledge base populated with the built-in tables.
func NewBase() *Base {
	return defaultBase()
}

// LoadBase reads a knowledge base from a YAML file, filling any table
// the file omits from the built-in defaults.
func LoadBase(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge file: %w", err)
	}
	kb := defaultBase()
	if err := yaml.Unmarshal(data, kb); err != nil {
		return nil, fmt.Errorf("parsing knowledge file %s: %w", path, err)
	}
	return kb, nil
}

// AreFlavorsCompatible checks if two flavors work together.
func (b *Base) AreFlavorsCompatible(f1, f2 models.Flavor) bool {
	if f1 == f2 {
		return true
	}
	for _, f := range b.FlavorCompatibility[f1] {
		if f == f2 {
			return true
		}
	}
	return false
}

// AreCategoriesCompatible checks if two dish categories may appear in
// the same menu.
func (b *Base) AreCategoriesCompatible(c1, c2 models.DishCategory) bool {
	for _, pair := range b.IncompatibleCategories {
		if len(pair) != 2 {
			continue
		}
		if (pair[0] == c1 && pair[1] == c2) || (pair[0] == c2 && pair[1] == c1) {
			return false
		}
	}
	return true
}

// IsWineCompatibleWithFlavors checks if a wine subtype pairs with at
// least one of the dish flavors. Desserts only take sweet or sparkling
// wines.
func (b *Base) IsWineCompatibleWithFlavors(subtype string, flavors []models.Flavor, isDessert bool) bool {
	if isDessert && subtype != "sweet" && subtype != "sparkling" {
		return false
	}
	compatible := b.WineFlavorCompatibility[subtype]
	for _, f := range flavors {
		for _, c := range compatible {
			if f == c {
				return true
			}
		}
	}
	return false
}

// WinePriority ranks wine subtypes for selection, higher is better.
func (b *Base) WinePriority(subtype string, isDessert bool) int {
	if isDessert {
		switch subtype {
		case "sweet":
			return 50
		case "sparkling":
			return 40
		}
		return 5
	}
	switch subtype {
	case "full-bodied":
		return 25
	case "fruity":
		return 20
	case "rose":
		return 18
	case "dry":
		return 15
	case "young":
		return 12
	case "sparkling", "aged":
		return 10
	}
	return 5
}

// PreferredStylesForEvent returns the styles suited to an event type,
// best first.
func (b *Base) PreferredStylesForEvent(event models.EventType) []models.CulinaryStyle {
	return b.EventStyles[event]
}

// IsStyleAppropriateForEvent checks if a style suits an event type.
func (b *Base) IsStyleAppropriateForEvent(style models.CulinaryStyle, event models.EventType) bool {
	for _, s := range b.EventStyles[event] {
		if s == style {
			return true
		}
	}
	return false
}

// IsComplexityAppropriate checks if a preparation complexity suits the
// event and budget. Low-budget weddings avoid high complexity.
func (b *Base) IsComplexityAppropriate(c models.Complexity, event models.EventType, budget float64) bool {
	if event == models.EventWedding && budget > 0 && budget < 50 && c == models.ComplexityHigh {
		return false
	}
	allowed, ok := b.EventComplexity[event]
	if !ok {
		return c == models.ComplexityMedium
	}
	for _, a := range allowed {
		if a == c {
			return true
		}
	}
	return false
}

// CalorieRange returns the recommended (min, max) calories for a
// season.
func (b *Base) CalorieRange(season models.Season) (int, int) {
	r, ok := b.CalorieRanges[season]
	if !ok || len(r) != 2 {
		return 650, 1250
	}
	return r[0], r[1]
}

// IsCalorieCountAppropriate checks if total calories fit the season.
func (b *Base) IsCalorieCountAppropriate(calories int, season models.Season) bool {
	min, max := b.CalorieRange(season)
	return calories >= min && calories <= max
}

// IsStarterTemperatureAppropriate checks if a starter temperature fits
// the season.
func (b *Base) IsStarterTemperatureAppropriate(temp models.Temperature, season models.Season) bool {
	allowed, ok := b.StarterTemperatures[season]
	if !ok {
		return temp == models.TemperatureWarm
	}
	for _, t := range allowed {
		if t == temp {
			return true
		}
	}
	return false
}

// IsGoodProgression checks if the starter category leads well into the
// main course category. Unknown starters are not penalized.
func (b *Base) IsGoodProgression(starter, main models.DishCategory) bool {
	mains, ok := b.GoodProgressions[starter]
	if !ok {
		return true
	}
	for _, m := range mains {
		if m == main {
			return true
		}
	}
	return false
}

// IsDessertAppropriateAfterFatty checks that a dessert cleanses the
// palate after a fatty main. Fruit and sour desserts always do; sweet
// and fatty ones do not.
func (b *Base) IsDessertAppropriateAfterFatty(mainIsFatty bool, dessert *models.Dish) bool {
	if !mainIsFatty {
		return true
	}
	if dessert.Category == models.CategoryFruit {
		return true
	}
	if dessert.HasFlavor(models.FlavorSour) {
		return true
	}
	if dessert.HasFlavor(models.FlavorFatty) && dessert.HasFlavor(models.FlavorSweet) {
		return false
	}
	return true
}

// ClassifyPriceBand classifies a menu price within a request band as
// budget, mid or premium.
func (b *Base) ClassifyPriceBand(price, min, max float64) string {
	if max <= min {
		return "mid"
	}
	position := (price - min) / (max - min)
	switch {
	case position < 0.33:
		return "budget"
	case position < 0.67:
		return "mid"
	}
	return "premium"
}

// ValidatePriceProportions checks that the share of the total paid for
// each course stays within the band's expected proportions, with an
// extra tolerance.
func (b *Base) ValidatePriceProportions(starter, main, dessert float64, band string, tolerance float64) bool {
	total := starter + main + dessert
	if total == 0 {
		return false
	}
	p, ok := b.PriceProportions[band]
	if !ok {
		p = b.PriceProportions["mid"]
	}
	sProp, mProp, dProp := starter/total, main/total, dessert/total
	return sProp >= p.StarterMin-tolerance && sProp <= p.StarterMax+tolerance &&
		mProp >= p.MainMin-tolerance && mProp <= p.MainMax+tolerance &&
		dProp >= p.DessertMin-tolerance && dProp <= p.DessertMax+tolerance
}

// CulturalProfile returns the characteristics of a tradition.
func (b *Base) CulturalProfile(t models.CulturalTradition) (CultureProfile, bool) {
	p, ok := b.CulturalCharacteristics[t]
	return p, ok
}
