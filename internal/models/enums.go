package models

// EventType represents the kind of event being catered
type EventType string

const (
	// Supported event types
	EventWedding     EventType = "wedding"
	EventFamiliar    EventType = "familiar"
	EventCongress    EventType = "congress"
	EventCorporate   EventType = "corporate"
	EventChristening EventType = "christening"
	EventCommunion   EventType = "communion"
)

// Season represents a season of the year
type Season string

const (
	// Seasons; SeasonAll marks year-round availability
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
	SeasonAll    Season = "all"
)

// seasonOrder gives each concrete season a cyclic index
var seasonOrder = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// CyclicIndex returns the position of a concrete season in the yearly
// cycle, or -1 for SeasonAll and unknown values.
func (s Season) CyclicIndex() int {
	for i, season := range seasonOrder {
		if s == season {
			return i
		}
	}
	return -1
}

// DishType represents the course a dish belongs to
type DishType string

const (
	// Menu courses
	DishStarter DishType = "starter"
	DishMain    DishType = "main_course"
	DishDessert DishType = "dessert"
)

// DishCategory represents the gastronomic category of a dish
type DishCategory string

const (
	// Dish categories
	CategorySoup      DishCategory = "soup"
	CategoryCream     DishCategory = "cream"
	CategoryBroth     DishCategory = "broth"
	CategorySalad     DishCategory = "salad"
	CategoryVegetable DishCategory = "vegetable"
	CategoryLegume    DishCategory = "legume"
	CategoryPasta     DishCategory = "pasta"
	CategoryRice      DishCategory = "rice"
	CategoryMeat      DishCategory = "meat"
	CategoryPoultry   DishCategory = "poultry"
	CategoryFish      DishCategory = "fish"
	CategorySeafood   DishCategory = "seafood"
	CategoryEgg       DishCategory = "egg"
	CategoryTapas     DishCategory = "tapas"
	CategorySnack     DishCategory = "snack"
	CategoryFruit     DishCategory = "fruit"
	CategoryPastry    DishCategory = "pastry"
	CategoryIceCream  DishCategory = "ice_cream"
)

// CulinaryStyle represents a culinary style
type CulinaryStyle string

const (
	// Culinary styles
	StyleClassic  CulinaryStyle = "classic"
	StyleModern   CulinaryStyle = "modern"
	StyleFusion   CulinaryStyle = "fusion"
	StyleRegional CulinaryStyle = "regional"
	StyleSibarita CulinaryStyle = "sibarita"
	StyleGourmet  CulinaryStyle = "gourmet"
	StyleSuave    CulinaryStyle = "suave"
)

// CulturalTradition represents a culinary cultural tradition
type CulturalTradition string

const (
	// Cultural traditions
	CultureMediterranean CulturalTradition = "mediterranean"
	CultureCatalan       CulturalTradition = "catalan"
	CultureBasque        CulturalTradition = "basque"
	CultureGalician      CulturalTradition = "galician"
	CultureItalian       CulturalTradition = "italian"
	CultureFrench        CulturalTradition = "french"
	CultureGreek         CulturalTradition = "greek"
	CultureMoroccan      CulturalTradition = "moroccan"
	CultureTurkish       CulturalTradition = "turkish"
	CultureLebanese      CulturalTradition = "lebanese"
	CultureNordic        CulturalTradition = "nordic"
	CultureRussian       CulturalTradition = "russian"
	CultureJapanese      CulturalTradition = "japanese"
	CultureChinese       CulturalTradition = "chinese"
	CultureKorean        CulturalTradition = "korean"
	CultureThai          CulturalTradition = "thai"
	CultureVietnamese    CulturalTradition = "vietnamese"
	CultureIndian        CulturalTradition = "indian"
	CultureMexican       CulturalTradition = "mexican"
	CultureAmerican      CulturalTradition = "american"
	CultureSpanish       CulturalTradition = "spanish"
)

// Temperature represents the serving temperature of a dish
type Temperature string

const (
	// Serving temperatures
	TemperatureHot  Temperature = "hot"
	TemperatureWarm Temperature = "warm"
	TemperatureCold Temperature = "cold"
)

// Complexity represents how elaborate a dish is to prepare
type Complexity string

const (
	// Preparation complexity levels
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Rank returns the ordinal of a complexity level, or -1 if unknown.
func (c Complexity) Rank() int {
	switch c {
	case ComplexityLow:
		return 0
	case ComplexityMedium:
		return 1
	case ComplexityHigh:
		return 2
	}
	return -1
}

// Flavor represents a primary flavor of a dish
type Flavor string

const (
	// Primary flavors
	FlavorSweet  Flavor = "sweet"
	FlavorSalty  Flavor = "salty"
	FlavorSour   Flavor = "sour"
	FlavorBitter Flavor = "bitter"
	FlavorUmami  Flavor = "umami"
	FlavorFatty  Flavor = "fatty"
	FlavorSpicy  Flavor = "spicy"
)

// CaseSource represents where a stored case came from
type CaseSource string

const (
	// Case provenance
	SourceManual    CaseSource = "manual"
	SourceGenerated CaseSource = "generated"
	SourceAdapted   CaseSource = "adapted"
	SourceRetained  CaseSource = "retained"
)
