package knowledge

import "traiteur/internal/models"

// Built-in knowledge tables. Config files override these wholesale per
// table.

func defaultBase() *Base {
	return &Base{
		FlavorCompatibility: map[models.Flavor][]models.Flavor{
			models.FlavorSweet:  {models.FlavorSour, models.FlavorBitter, models.FlavorFatty, models.FlavorSpicy},
			models.FlavorSalty:  {models.FlavorUmami, models.FlavorFatty, models.FlavorSour, models.FlavorSpicy},
			models.FlavorSour:   {models.FlavorSweet, models.FlavorSalty, models.FlavorFatty},
			models.FlavorBitter: {models.FlavorSweet, models.FlavorFatty},
			models.FlavorUmami:  {models.FlavorSalty, models.FlavorFatty, models.FlavorSpicy},
			models.FlavorFatty:  {models.FlavorSour, models.FlavorSalty, models.FlavorSweet, models.FlavorUmami, models.FlavorBitter},
			models.FlavorSpicy:  {models.FlavorSweet, models.FlavorSalty, models.FlavorUmami},
		},
		IncompatibleCategories: [][]models.DishCategory{
			{models.CategorySoup, models.CategoryCream},
			{models.CategorySoup, models.CategoryBroth},
			{models.CategoryCream, models.CategoryBroth},
			{models.CategoryPasta, models.CategoryRice},
			{models.CategoryFruit, models.CategoryIceCream},
		},
		WineFlavorCompatibility: map[string][]models.Flavor{
			"full-bodied": {models.FlavorFatty, models.FlavorUmami, models.FlavorSalty},
			"fruity":      {models.FlavorSweet, models.FlavorSalty, models.FlavorSpicy},
			"rose":        {models.FlavorSalty, models.FlavorSour, models.FlavorSweet},
			"dry":         {models.FlavorSalty, models.FlavorUmami, models.FlavorFatty, models.FlavorSour},
			"young":       {models.FlavorSalty, models.FlavorSour},
			"sparkling":   {models.FlavorSweet, models.FlavorSalty, models.FlavorSour},
			"aged":        {models.FlavorUmami, models.FlavorFatty},
			"sweet":       {models.FlavorSweet, models.FlavorSour, models.FlavorBitter},
		},
		EventStyles: map[models.EventType][]models.CulinaryStyle{
			models.EventWedding: {models.StyleSibarita, models.StyleGourmet,
				models.StyleClassic, models.StyleFusion, models.StyleModern},
			models.EventChristening: {models.StyleClassic, models.StyleRegional, models.StyleModern},
			models.EventCommunion: {models.StyleClassic, models.StyleRegional,
				models.StyleFusion, models.StyleSuave},
			models.EventFamiliar: {models.StyleRegional, models.StyleClassic, models.StyleFusion},
			models.EventCongress: {models.StyleClassic, models.StyleModern,
				models.StyleFusion, models.StyleGourmet},
			models.EventCorporate: {models.StyleClassic, models.StyleModern,
				models.StyleFusion, models.StyleGourmet},
		},
		EventComplexity: map[models.EventType][]models.Complexity{
			models.EventWedding:     {models.ComplexityMedium, models.ComplexityHigh},
			models.EventChristening: {models.ComplexityLow, models.ComplexityMedium},
			models.EventCommunion:   {models.ComplexityLow, models.ComplexityMedium},
			models.EventFamiliar:    {models.ComplexityLow, models.ComplexityMedium},
			models.EventCongress:    {models.ComplexityMedium},
			models.EventCorporate:   {models.ComplexityMedium},
		},
		CalorieRanges: map[models.Season][]int{
			models.SeasonSummer: {550, 950},
			models.SeasonWinter: {850, 1450},
			models.SeasonSpring: {650, 1250},
			models.SeasonAutumn: {650, 1250},
			models.SeasonAll:    {550, 1450},
		},
		StarterTemperatures: map[models.Season][]models.Temperature{
			models.SeasonSummer: {models.TemperatureCold, models.TemperatureWarm},
			models.SeasonWinter: {models.TemperatureHot},
			models.SeasonSpring: {models.TemperatureWarm, models.TemperatureCold, models.TemperatureHot},
			models.SeasonAutumn: {models.TemperatureWarm, models.TemperatureHot},
			models.SeasonAll:    {models.TemperatureHot, models.TemperatureWarm, models.TemperatureCold},
		},
		GoodProgressions: map[models.DishCategory][]models.DishCategory{
			models.CategorySalad:     {models.CategoryMeat, models.CategoryFish, models.CategoryPoultry},
			models.CategoryVegetable: {models.CategoryMeat, models.CategoryFish, models.CategoryPoultry},
			models.CategorySoup:      {models.CategoryMeat, models.CategoryPasta, models.CategoryRice},
			models.CategoryCream:     {models.CategoryFish, models.CategoryPoultry},
			models.CategoryTapas:     {models.CategoryMeat, models.CategoryFish},
		},
		PriceProportions: map[string]PriceProportion{
			"budget":  {StarterMin: 0.10, StarterMax: 0.30, MainMin: 0.30, MainMax: 0.50, DessertMin: 0.08, DessertMax: 0.25},
			"mid":     {StarterMin: 0.15, StarterMax: 0.30, MainMin: 0.35, MainMax: 0.50, DessertMin: 0.12, DessertMax: 0.25},
			"premium": {StarterMin: 0.12, StarterMax: 0.25, MainMin: 0.35, MainMax: 0.50, DessertMin: 0.12, DessertMax: 0.25},
		},
		CulturalCharacteristics: map[models.CulturalTradition]CultureProfile{
			models.CultureMediterranean: {
				KeyIngredients:    []string{"olive_oil", "tomato", "garlic", "herbs"},
				TypicalCategories: []models.DishCategory{models.CategoryFish, models.CategorySalad, models.CategoryVegetable},
				Styles:            []models.CulinaryStyle{models.StyleClassic, models.StyleRegional},
			},
			models.CultureCatalan: {
				KeyIngredients:    []string{"olive_oil", "tomato", "garlic", "almond", "romesco"},
				TypicalCategories: []models.DishCategory{models.CategoryFish, models.CategoryMeat, models.CategoryVegetable},
				Styles:            []models.CulinaryStyle{models.StyleRegional, models.StyleSibarita},
			},
			models.CultureBasque: {
				KeyIngredients:    []string{"salt_cod", "pintxos", "txakoli", "idiazabal"},
				TypicalCategories: []models.DishCategory{models.CategoryFish, models.CategoryTapas, models.CategoryMeat},
				Styles:            []models.CulinaryStyle{models.StyleGourmet, models.StyleRegional},
			},
			models.CultureItalian: {
				KeyIngredients:    []string{"pasta", "olive_oil", "tomato", "parmesan", "basil"},
				TypicalCategories: []models.DishCategory{models.CategoryPasta, models.CategoryMeat, models.CategoryVegetable},
				Styles:            []models.CulinaryStyle{models.StyleClassic, models.StyleRegional},
			},
			models.CultureFrench: {
				KeyIngredients:    []string{"butter", "cream", "wine", "herbs"},
				TypicalCategories: []models.DishCategory{models.CategoryCream, models.CategoryMeat, models.CategoryPastry},
				Styles:            []models.CulinaryStyle{models.StyleClassic, models.StyleGourmet},
			},
			models.CultureMoroccan: {
				KeyIngredients:    []string{"spices", "lamb", "couscous", "dates", "almonds"},
				TypicalCategories: []models.DishCategory{models.CategoryMeat, models.CategoryLegume},
				Styles:            []models.CulinaryStyle{models.StyleFusion, models.StyleRegional},
			},
			models.CultureJapanese: {
				KeyIngredients:    []string{"soy", "rice", "fish", "seaweed", "miso"},
				TypicalCategories: []models.DishCategory{models.CategoryFish, models.CategoryRice},
				Styles:            []models.CulinaryStyle{models.StyleModern, models.StyleSibarita},
			},
			models.CultureNordic: {
				KeyIngredients:    []string{"fish", "berries", "root_vegetables", "rye"},
				TypicalCategories: []models.DishCategory{models.CategoryFish, models.CategoryVegetable},
				Styles:            []models.CulinaryStyle{models.StyleModern, models.StyleRegional},
			},
		},
	}
}
