package casebase

import (
	"fmt"
	"time"

	"traiteur/internal/models"
)

// SampleCatalog returns the built-in catalog used when no catalog file
// is configured. It is also the fixture data for the test suites.
func SampleCatalog() *Catalog {
	c := NewCatalog()
	for _, d := range sampleDishes() {
		if err := c.AddDish(d); err != nil {
			panic(fmt.Sprintf("sample catalog: %v", err))
		}
	}
	for _, b := range sampleBeverages() {
		if err := c.AddBeverage(b); err != nil {
			panic(fmt.Sprintf("sample catalog: %v", err))
		}
	}
	return c
}

func sampleDishes() []models.Dish {
	return []models.Dish{
		// Starters
		{
			ID: "st-gazpacho", Name: "Gazpacho Andaluz", Type: models.DishStarter,
			Price: 8, Category: models.CategorySoup,
			Styles:      []models.CulinaryStyle{models.StyleRegional, models.StyleClassic},
			Seasons:     []models.Season{models.SeasonSummer},
			Temperature: models.TemperatureCold, Complexity: models.ComplexityLow,
			Calories: 180, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSour, models.FlavorSalty},
			Diets:       []string{"vegan", "vegetarian", "gluten-free", "lactose-free"},
			Ingredients: []string{"tomato", "garlic", "olive_oil"},
			CompatibleBeverages: []string{"bv-albarino-white", "bv-sparkling-water"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureSpanish, models.CultureMediterranean},
		},
		{
			ID: "st-pumpkin-cream", Name: "Pumpkin Cream with Brown Butter", Type: models.DishStarter,
			Price: 9, Category: models.CategoryCream,
			Styles:      []models.CulinaryStyle{models.StyleClassic, models.StyleSuave},
			Seasons:     []models.Season{models.SeasonAutumn, models.SeasonWinter},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityLow,
			Calories: 260, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSweet, models.FlavorFatty},
			Diets:       []string{"vegetarian", "gluten-free"},
			Ingredients: []string{"root_vegetables", "cream", "butter"},
			CompatibleBeverages: []string{"bv-albarino-white"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureFrench},
		},
		{
			ID: "st-burrata", Name: "Burrata with Heirloom Tomato", Type: models.DishStarter,
			Price: 12, Category: models.CategorySalad,
			Styles:      []models.CulinaryStyle{models.StyleModern, models.StyleGourmet},
			Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer},
			Temperature: models.TemperatureCold, Complexity: models.ComplexityLow,
			Calories: 320, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorFatty, models.FlavorSour},
			Diets:       []string{"vegetarian", "gluten-free"},
			Ingredients: []string{"mozzarella", "tomato", "basil", "olive_oil"},
			CompatibleBeverages: []string{"bv-cava-sparkling", "bv-rose"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureItalian},
		},
		{
			ID: "st-miso-soup", Name: "Miso Soup with Silken Tofu", Type: models.DishStarter,
			Price: 7, Category: models.CategorySoup,
			Styles:      []models.CulinaryStyle{models.StyleModern},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityLow,
			Calories: 120, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorUmami, models.FlavorSalty},
			Diets:       []string{"vegan", "vegetarian", "gluten-free", "lactose-free"},
			Ingredients: []string{"miso", "seaweed", "tofu"},
			CompatibleBeverages: []string{"bv-herbal-tea"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureJapanese},
		},
		{
			ID: "st-hummus-mezze", Name: "Hummus Mezze Platter", Type: models.DishStarter,
			Price: 8, Category: models.CategoryTapas,
			Styles:      []models.CulinaryStyle{models.StyleRegional, models.StyleFusion},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureCold, Complexity: models.ComplexityLow,
			Calories: 280, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSalty, models.FlavorFatty},
			Diets:       []string{"vegan", "vegetarian", "gluten-free", "lactose-free", "halal"},
			Ingredients: []string{"chickpeas", "olive_oil", "lemon", "cumin"},
			CompatibleBeverages: []string{"bv-sparkling-water", "bv-orange-juice"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureLebanese, models.CultureMoroccan},
		},
		{
			ID: "st-seafood-tapas", Name: "Seared Squid and Prawn Tapas", Type: models.DishStarter,
			Price: 14, Category: models.CategoryTapas,
			Styles:      []models.CulinaryStyle{models.StyleGourmet, models.StyleRegional},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureWarm, Complexity: models.ComplexityMedium,
			Calories: 240, MaxGuests: 250,
			Flavors:     []models.Flavor{models.FlavorSalty, models.FlavorUmami},
			Diets:       []string{"gluten-free", "lactose-free"},
			Ingredients: []string{"prawns", "squid", "olive_oil", "garlic"},
			CompatibleBeverages: []string{"bv-albarino-white", "bv-cava-sparkling"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureBasque, models.CultureSpanish},
		},
		{
			ID: "st-onion-soup", Name: "French Onion Soup", Type: models.DishStarter,
			Price: 9, Category: models.CategorySoup,
			Styles:      []models.CulinaryStyle{models.StyleClassic},
			Seasons:     []models.Season{models.SeasonWinter, models.SeasonAutumn},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityMedium,
			Calories: 310, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorUmami, models.FlavorFatty, models.FlavorSweet},
			Diets:       []string{"vegetarian"},
			Ingredients: []string{"onion", "butter", "parmesan"},
			CompatibleBeverages: []string{"bv-rioja-red"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureFrench},
		},
		{
			ID: "st-nordic-salad", Name: "Cured Salmon and Dill Salad", Type: models.DishStarter,
			Price: 11, Category: models.CategorySalad,
			Styles:      []models.CulinaryStyle{models.StyleModern, models.StyleRegional},
			Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer},
			Temperature: models.TemperatureCold, Complexity: models.ComplexityMedium,
			Calories: 230, MaxGuests: 350,
			Flavors:     []models.Flavor{models.FlavorSalty, models.FlavorSour},
			Diets:       []string{"gluten-free", "lactose-free"},
			Ingredients: []string{"salmon", "dill", "root_vegetables"},
			CompatibleBeverages: []string{"bv-albarino-white"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureNordic},
		},

		{
			ID: "st-oysters", Name: "Oysters with Champagne Mignonette", Type: models.DishStarter,
			Price: 26, Category: models.CategoryTapas,
			Styles:      []models.CulinaryStyle{models.StyleGourmet, models.StyleSibarita},
			Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer},
			Temperature: models.TemperatureCold, Complexity: models.ComplexityMedium,
			Calories: 140, MaxGuests: 200,
			Flavors:     []models.Flavor{models.FlavorSalty, models.FlavorUmami},
			Diets:       []string{"gluten-free", "lactose-free"},
			Ingredients: []string{"oysters", "shallot", "lemon"},
			CompatibleBeverages: []string{"bv-champagne", "bv-albarino-white"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureFrench},
		},
		{
			ID: "st-lobster-bisque", Name: "Lobster Bisque", Type: models.DishStarter,
			Price: 22, Category: models.CategoryCream,
			Styles:      []models.CulinaryStyle{models.StyleGourmet, models.StyleClassic},
			Seasons:     []models.Season{models.SeasonAutumn, models.SeasonWinter},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityHigh,
			Calories: 320, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorUmami, models.FlavorFatty},
			Diets:       []string{"gluten-free"},
			Ingredients: []string{"lobster", "cream", "butter"},
			CompatibleBeverages: []string{"bv-albarino-white", "bv-champagne"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureFrench},
		},

		// Main courses
		{
			ID: "mn-paella", Name: "Seafood Paella", Type: models.DishMain,
			Price: 18, Category: models.CategoryRice,
			Styles:      []models.CulinaryStyle{models.StyleRegional, models.StyleClassic},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityMedium,
			Calories: 620, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorUmami, models.FlavorSalty},
			Diets:       []string{"gluten-free", "lactose-free"},
			Ingredients: []string{"rice", "prawns", "saffron", "olive_oil"},
			CompatibleBeverages: []string{"bv-albarino-white", "bv-rose"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureSpanish, models.CultureMediterranean},
		},
		{
			ID: "mn-beef-wellington", Name: "Beef Wellington", Type: models.DishMain,
			Price: 28, Category: models.CategoryMeat,
			Styles:      []models.CulinaryStyle{models.StyleGourmet, models.StyleClassic},
			Seasons:     []models.Season{models.SeasonAutumn, models.SeasonWinter},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityHigh,
			Calories: 780, MaxGuests: 200,
			Flavors:     []models.Flavor{models.FlavorFatty, models.FlavorUmami},
			Diets:       []string{},
			Ingredients: []string{"beef", "mushrooms", "butter", "egg"},
			CompatibleBeverages: []string{"bv-rioja-red"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureFrench},
		},
		{
			ID: "mn-seabass", Name: "Grilled Sea Bass with Lemon", Type: models.DishMain,
			Price: 24, Category: models.CategoryFish,
			Styles:      []models.CulinaryStyle{models.StyleClassic, models.StyleGourmet},
			Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityMedium,
			Calories: 480, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorSalty, models.FlavorSour},
			Diets:       []string{"gluten-free", "lactose-free"},
			Ingredients: []string{"sea_bass", "olive_oil", "lemon", "parsley"},
			CompatibleBeverages: []string{"bv-albarino-white", "bv-cava-sparkling"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureMediterranean, models.CultureGreek},
		},
		{
			ID: "mn-risotto", Name: "Wild Mushroom Risotto", Type: models.DishMain,
			Price: 16, Category: models.CategoryRice,
			Styles:      []models.CulinaryStyle{models.StyleClassic, models.StyleRegional},
			Seasons:     []models.Season{models.SeasonAutumn, models.SeasonWinter},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityMedium,
			Calories: 560, MaxGuests: 350,
			Flavors:     []models.Flavor{models.FlavorUmami, models.FlavorFatty},
			Diets:       []string{"vegetarian", "gluten-free"},
			Ingredients: []string{"rice", "mushrooms", "parmesan", "butter"},
			CompatibleBeverages: []string{"bv-rioja-red", "bv-albarino-white"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureItalian},
		},
		{
			ID: "mn-lamb-tagine", Name: "Lamb Tagine with Dates", Type: models.DishMain,
			Price: 22, Category: models.CategoryMeat,
			Styles:      []models.CulinaryStyle{models.StyleFusion, models.StyleRegional},
			Seasons:     []models.Season{models.SeasonAutumn, models.SeasonWinter},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityMedium,
			Calories: 680, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorSweet, models.FlavorSpicy, models.FlavorFatty},
			Diets:       []string{"halal", "gluten-free", "lactose-free"},
			Ingredients: []string{"lamb", "dates", "ras_el_hanout", "almond"},
			CompatibleBeverages: []string{"bv-rioja-red", "bv-orange-juice"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureMoroccan},
		},
		{
			ID: "mn-veg-curry", Name: "Chickpea and Spinach Curry", Type: models.DishMain,
			Price: 14, Category: models.CategoryVegetable,
			Styles:      []models.CulinaryStyle{models.StyleFusion},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityLow,
			Calories: 520, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSpicy, models.FlavorUmami},
			Diets:       []string{"vegan", "vegetarian", "gluten-free", "lactose-free", "halal"},
			Ingredients: []string{"chickpeas", "spinach", "coconut_milk", "curry_powder"},
			CompatibleBeverages: []string{"bv-herbal-tea", "bv-sparkling-water"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureIndian},
		},
		{
			ID: "mn-roast-chicken", Name: "Herb Roasted Chicken", Type: models.DishMain,
			Price: 15, Category: models.CategoryPoultry,
			Styles:      []models.CulinaryStyle{models.StyleClassic, models.StyleSuave},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityLow,
			Calories: 540, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSalty, models.FlavorUmami},
			Diets:       []string{"gluten-free", "lactose-free", "halal"},
			Ingredients: []string{"chicken", "garlic", "root_vegetables", "olive_oil"},
			CompatibleBeverages: []string{"bv-rioja-red", "bv-rose"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureMediterranean},
		},
		{
			ID: "mn-teriyaki-salmon", Name: "Teriyaki Glazed Salmon", Type: models.DishMain,
			Price: 23, Category: models.CategoryFish,
			Styles:      []models.CulinaryStyle{models.StyleModern, models.StyleFusion},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityMedium,
			Calories: 510, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorUmami, models.FlavorSweet, models.FlavorSalty},
			Diets:       []string{"lactose-free"},
			Ingredients: []string{"salmon", "soy_sauce", "ginger", "rice"},
			CompatibleBeverages: []string{"bv-albarino-white"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureJapanese},
		},
		{
			ID: "mn-truffle-pasta", Name: "Truffled Tagliatelle", Type: models.DishMain,
			Price: 19, Category: models.CategoryPasta,
			Styles:      []models.CulinaryStyle{models.StyleGourmet, models.StyleSibarita},
			Seasons:     []models.Season{models.SeasonWinter},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityHigh,
			Calories: 640, MaxGuests: 250,
			Flavors:     []models.Flavor{models.FlavorUmami, models.FlavorFatty},
			Diets:       []string{"vegetarian"},
			Ingredients: []string{"pasta", "mushrooms", "cream", "parmesan"},
			CompatibleBeverages: []string{"bv-rioja-red", "bv-cava-sparkling"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureItalian},
		},
		{
			ID: "mn-pad-thai", Name: "Tofu Pad Thai", Type: models.DishMain,
			Price: 13, Category: models.CategoryPasta,
			Styles:      []models.CulinaryStyle{models.StyleFusion, models.StyleModern},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityLow,
			Calories: 490, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSour, models.FlavorSpicy, models.FlavorSalty},
			Diets:       []string{"vegan", "vegetarian", "gluten-free", "lactose-free"},
			Ingredients: []string{"tofu", "rice_noodles", "lemongrass", "ginger"},
			CompatibleBeverages: []string{"bv-herbal-tea", "bv-sparkling-water"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureThai},
		},

		{
			ID: "mn-lobster-thermidor", Name: "Lobster Thermidor", Type: models.DishMain,
			Price: 48, Category: models.CategoryFish,
			Styles:      []models.CulinaryStyle{models.StyleGourmet, models.StyleSibarita},
			Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityHigh,
			Calories: 520, MaxGuests: 180,
			Flavors:     []models.Flavor{models.FlavorFatty, models.FlavorUmami},
			Diets:       []string{"gluten-free"},
			Ingredients: []string{"lobster", "butter", "cream", "tarragon"},
			CompatibleBeverages: []string{"bv-champagne", "bv-albarino-white"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureFrench},
		},
		{
			ID: "mn-chateaubriand", Name: "Chateaubriand with Roasted Roots", Type: models.DishMain,
			Price: 52, Category: models.CategoryMeat,
			Styles:      []models.CulinaryStyle{models.StyleGourmet, models.StyleClassic},
			Seasons:     []models.Season{models.SeasonAutumn, models.SeasonWinter},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityHigh,
			Calories: 660, MaxGuests: 160,
			Flavors:     []models.Flavor{models.FlavorUmami, models.FlavorSalty},
			Diets:       []string{"gluten-free"},
			Ingredients: []string{"beef", "butter", "root_vegetables"},
			CompatibleBeverages: []string{"bv-rioja-red"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureFrench},
		},

		// Desserts
		{
			ID: "ds-crema-catalana", Name: "Crema Catalana", Type: models.DishDessert,
			Price: 7, Category: models.CategoryPastry,
			Styles:      []models.CulinaryStyle{models.StyleClassic, models.StyleRegional},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureCold, Complexity: models.ComplexityMedium,
			Calories: 310, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSweet},
			Diets:       []string{"vegetarian", "gluten-free"},
			Ingredients: []string{"cream", "egg", "sugar", "cinnamon"},
			CompatibleBeverages: []string{"bv-moscatel-sweet", "bv-cava-sparkling"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureCatalan, models.CultureSpanish},
		},
		{
			ID: "ds-fruit-salad", Name: "Citrus and Berry Salad", Type: models.DishDessert,
			Price: 6, Category: models.CategoryFruit,
			Styles:      []models.CulinaryStyle{models.StyleSuave, models.StyleModern},
			Seasons:     []models.Season{models.SeasonSummer, models.SeasonSpring},
			Temperature: models.TemperatureCold, Complexity: models.ComplexityLow,
			Calories: 150, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSweet, models.FlavorSour},
			Diets:       []string{"vegan", "vegetarian", "gluten-free", "lactose-free", "halal"},
			Ingredients: []string{"berries", "orange", "mango", "mint"},
			CompatibleBeverages: []string{"bv-cava-sparkling", "bv-orange-juice"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureMediterranean},
		},
		{
			ID: "ds-fondant", Name: "Warm Chocolate Fondant", Type: models.DishDessert,
			Price: 8, Category: models.CategoryPastry,
			Styles:      []models.CulinaryStyle{models.StyleGourmet, models.StyleModern},
			Seasons:     []models.Season{models.SeasonWinter, models.SeasonAutumn},
			Temperature: models.TemperatureHot, Complexity: models.ComplexityHigh,
			Calories: 450, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorSweet, models.FlavorFatty, models.FlavorBitter},
			Diets:       []string{"vegetarian"},
			Ingredients: []string{"butter", "egg", "sugar"},
			CompatibleBeverages: []string{"bv-moscatel-sweet"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureFrench},
		},
		{
			ID: "ds-lemon-sorbet", Name: "Lemon Sorbet", Type: models.DishDessert,
			Price: 5, Category: models.CategoryIceCream,
			Styles:      []models.CulinaryStyle{models.StyleClassic, models.StyleSuave},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureCold, Complexity: models.ComplexityLow,
			Calories: 140, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSour, models.FlavorSweet},
			Diets:       []string{"vegan", "vegetarian", "gluten-free", "lactose-free", "halal"},
			Ingredients: []string{"lemon", "sugar"},
			CompatibleBeverages: []string{"bv-cava-sparkling", "bv-sparkling-water"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureMediterranean, models.CultureItalian},
		},
		{
			ID: "ds-baklava", Name: "Pistachio Baklava", Type: models.DishDessert,
			Price: 6, Category: models.CategoryPastry,
			Styles:      []models.CulinaryStyle{models.StyleRegional, models.StyleFusion},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureWarm, Complexity: models.ComplexityMedium,
			Calories: 380, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSweet, models.FlavorFatty},
			Diets:       []string{"vegetarian", "halal"},
			Ingredients: []string{"honey", "walnut", "pistachio"},
			CompatibleBeverages: []string{"bv-herbal-tea", "bv-moscatel-sweet"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureTurkish, models.CultureLebanese, models.CultureGreek},
		},
		{
			ID: "ds-mochi", Name: "Matcha Mochi", Type: models.DishDessert,
			Price: 6, Category: models.CategoryIceCream,
			Styles:      []models.CulinaryStyle{models.StyleModern, models.StyleSibarita},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureCold, Complexity: models.ComplexityMedium,
			Calories: 210, MaxGuests: 350,
			Flavors:     []models.Flavor{models.FlavorSweet, models.FlavorBitter},
			Diets:       []string{"vegan", "vegetarian", "gluten-free", "lactose-free"},
			Ingredients: []string{"rice", "sugar"},
			CompatibleBeverages: []string{"bv-herbal-tea"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureJapanese},
		},
		{
			ID: "ds-tiramisu", Name: "Tiramisu", Type: models.DishDessert,
			Price: 7, Category: models.CategoryPastry,
			Styles:      []models.CulinaryStyle{models.StyleClassic},
			Seasons:     []models.Season{models.SeasonAll},
			Temperature: models.TemperatureCold, Complexity: models.ComplexityMedium,
			Calories: 420, MaxGuests: 400,
			Flavors:     []models.Flavor{models.FlavorSweet, models.FlavorFatty, models.FlavorBitter},
			Diets:       []string{"vegetarian"},
			Ingredients: []string{"cream", "egg", "sugar"},
			CompatibleBeverages: []string{"bv-moscatel-sweet"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureItalian},
		},
		{
			ID: "ds-pavlova", Name: "Passion Fruit Pavlova", Type: models.DishDessert,
			Price: 14, Category: models.CategoryFruit,
			Styles:      []models.CulinaryStyle{models.StyleGourmet, models.StyleModern},
			Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer},
			Temperature: models.TemperatureCold, Complexity: models.ComplexityMedium,
			Calories: 280, MaxGuests: 300,
			Flavors:     []models.Flavor{models.FlavorSweet, models.FlavorSour},
			Diets:       []string{"vegetarian", "gluten-free"},
			Ingredients: []string{"egg", "sugar", "passion_fruit", "berries"},
			CompatibleBeverages: []string{"bv-champagne", "bv-moscatel-sweet"},
			CulturalTraditions:  []models.CulturalTradition{models.CultureFrench},
		},
	}
}

func sampleBeverages() []models.Beverage {
	return []models.Beverage{
		{ID: "bv-rioja-red", Name: "Rioja Reserva", Alcoholic: true, Price: 8, Type: "red-wine", Subtype: "full-bodied"},
		{ID: "bv-albarino-white", Name: "Albariño", Alcoholic: true, Price: 7, Type: "white-wine", Subtype: "dry"},
		{ID: "bv-cava-sparkling", Name: "Cava Brut", Alcoholic: true, Price: 9, Type: "sparkling-wine", Subtype: "sparkling"},
		{ID: "bv-moscatel-sweet", Name: "Moscatel", Alcoholic: true, Price: 6, Type: "dessert-wine", Subtype: "sweet"},
		{ID: "bv-rose", Name: "Provence Rosé", Alcoholic: true, Price: 7, Type: "rose-wine", Subtype: "rose"},
		{ID: "bv-champagne", Name: "Vintage Champagne", Alcoholic: true, Price: 18, Type: "sparkling-wine", Subtype: "sparkling"},
		{ID: "bv-sparkling-water", Name: "Sparkling Water", Alcoholic: false, Price: 2, Type: "water"},
		{ID: "bv-orange-juice", Name: "Fresh Orange Juice", Alcoholic: false, Price: 3, Type: "juice"},
		{ID: "bv-herbal-tea", Name: "Herbal Tea Selection", Alcoholic: false, Price: 2.5, Type: "herbal-tea"},
	}
}

// SeedCases builds the initial experience base over a catalog. Menus
// reference catalog dishes by id; unknown ids are skipped.
func SeedCases(c *Catalog) []*models.Case {
	type seed struct {
		id       string
		request  models.Request
		starter  string
		main     string
		dessert  string
		beverage string
		style    models.CulinaryStyle
		theme    models.CulturalTradition
		score    float64
		success  bool
		negative bool
	}
	seeds := []seed{
		{
			id: "case-wedding-classic",
			request: models.Request{
				ID: "seed-01", EventType: models.EventWedding, Season: models.SeasonSummer,
				Guests: 120, PriceMin: 40, PriceMax: 70, WantsWine: true,
				PreferredStyle: models.StyleGourmet,
			},
			starter: "st-burrata", main: "mn-seabass", dessert: "ds-fondant",
			beverage: "bv-cava-sparkling", style: models.StyleGourmet,
			score: 4.6, success: true,
		},
		{
			id: "case-wedding-winter",
			request: models.Request{
				ID: "seed-02", EventType: models.EventWedding, Season: models.SeasonWinter,
				Guests: 90, PriceMin: 45, PriceMax: 80, WantsWine: true,
			},
			starter: "st-onion-soup", main: "mn-beef-wellington", dessert: "ds-fondant",
			beverage: "bv-rioja-red", style: models.StyleClassic,
			theme: models.CultureFrench, score: 4.4, success: true,
		},
		{
			id: "case-corporate-mediterranean",
			request: models.Request{
				ID: "seed-03", EventType: models.EventCorporate, Season: models.SeasonAll,
				Guests: 60, PriceMin: 25, PriceMax: 45, WantsWine: true,
			},
			starter: "st-gazpacho", main: "mn-paella", dessert: "ds-crema-catalana",
			beverage: "bv-albarino-white", style: models.StyleRegional,
			theme: models.CultureSpanish, score: 4.2, success: true,
		},
		{
			id: "case-familiar-vegan",
			request: models.Request{
				ID: "seed-04", EventType: models.EventFamiliar, Season: models.SeasonAll,
				Guests: 30, PriceMin: 15, PriceMax: 35,
				RequiredDiets: []string{"vegan"},
			},
			starter: "st-miso-soup", main: "mn-veg-curry", dessert: "ds-lemon-sorbet",
			beverage: "bv-herbal-tea", style: models.StyleFusion,
			score: 4.5, success: true,
		},
		{
			id: "case-communion-suave",
			request: models.Request{
				ID: "seed-05", EventType: models.EventCommunion, Season: models.SeasonSpring,
				Guests: 45, PriceMin: 20, PriceMax: 40,
			},
			starter: "st-nordic-salad", main: "mn-roast-chicken", dessert: "ds-fruit-salad",
			beverage: "bv-orange-juice", style: models.StyleSuave,
			score: 4.1, success: true,
		},
		{
			id: "case-congress-japanese",
			request: models.Request{
				ID: "seed-06", EventType: models.EventCongress, Season: models.SeasonAll,
				Guests: 150, PriceMin: 30, PriceMax: 50, WantsWine: true,
				CulturalPreference: models.CultureJapanese,
			},
			starter: "st-miso-soup", main: "mn-teriyaki-salmon", dessert: "ds-mochi",
			beverage: "bv-albarino-white", style: models.StyleModern,
			theme: models.CultureJapanese, score: 4.3, success: true,
		},
		{
			id: "case-familiar-moroccan",
			request: models.Request{
				ID: "seed-07", EventType: models.EventFamiliar, Season: models.SeasonAutumn,
				Guests: 25, PriceMin: 20, PriceMax: 45,
				CulturalPreference: models.CultureMoroccan,
				RequiredDiets:      []string{"halal"},
			},
			starter: "st-hummus-mezze", main: "mn-lamb-tagine", dessert: "ds-baklava",
			beverage: "bv-orange-juice", style: models.StyleRegional,
			theme: models.CultureMoroccan, score: 4.7, success: true,
		},
		{
			id: "case-wedding-gala",
			request: models.Request{
				ID: "seed-09", EventType: models.EventWedding, Season: models.SeasonSummer,
				Guests: 100, PriceMin: 80, PriceMax: 120, WantsWine: true,
				PreferredStyle: models.StyleGourmet,
			},
			starter: "st-oysters", main: "mn-lobster-thermidor", dessert: "ds-pavlova",
			beverage: "bv-champagne", style: models.StyleGourmet,
			theme: models.CultureFrench, score: 4.8, success: true,
		},
		{
			id: "case-corporate-gala",
			request: models.Request{
				ID: "seed-10", EventType: models.EventCorporate, Season: models.SeasonWinter,
				Guests: 80, PriceMin: 70, PriceMax: 110, WantsWine: true,
			},
			starter: "st-lobster-bisque", main: "mn-chateaubriand", dessert: "ds-fondant",
			beverage: "bv-rioja-red", style: models.StyleGourmet,
			theme: models.CultureFrench, score: 4.0, success: true,
		},
		{
			id: "case-corporate-overbudget",
			request: models.Request{
				ID: "seed-08", EventType: models.EventCorporate, Season: models.SeasonWinter,
				Guests: 40, PriceMin: 20, PriceMax: 35, WantsWine: true,
			},
			starter: "st-seafood-tapas", main: "mn-truffle-pasta", dessert: "ds-tiramisu",
			beverage: "bv-rioja-red", style: models.StyleSibarita,
			score: 2.1, success: false, negative: true,
		},
	}

	var cases []*models.Case
	for _, s := range seeds {
		starter, ok1 := c.Dish(s.starter)
		main, ok2 := c.Dish(s.main)
		dessert, ok3 := c.Dish(s.dessert)
		beverage, ok4 := c.Beverage(s.beverage)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		menu := models.NewMenu("menu-"+s.id, starter, main, dessert, beverage)
		menu.DominantStyle = s.style
		menu.CulturalTheme = s.theme
		cases = append(cases, &models.Case{
			ID:            s.id,
			Request:       s.request,
			Menu:          menu,
			Success:       s.success,
			FeedbackScore: s.score,
			Negative:      s.negative,
			Source:        models.SourceManual,
			CreatedAt:     time.Now(),
		})
	}
	return cases
}
