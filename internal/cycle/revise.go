package cycle

import (
	"fmt"
	"sort"

	"traiteur/internal/knowledge"
	"traiteur/internal/models"
)

// Issue severity levels. Errors invalidate a menu outright, warnings
// accumulate toward the limit, infos only dent the score.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// ValidationStatus is the overall verdict on one proposal.
type ValidationStatus string

const (
	StatusValid             ValidationStatus = "valid"
	StatusValidWithWarnings ValidationStatus = "valid_with_warnings"
	StatusInvalid           ValidationStatus = "invalid"
)

// ValidationIssue is one problem found while validating a menu.
type ValidationIssue struct {
	Severity   string `json:"severity"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ValidationResult is a revised proposal with its verdict and score.
type ValidationResult struct {
	Proposal     AdaptationResult  `json:"proposal"`
	Status       ValidationStatus  `json:"status"`
	Issues       []ValidationIssue `json:"issues,omitempty"`
	Score        float64           `json:"score"`
	Explanations []string          `json:"explanations,omitempty"`
}

// IsValid reports whether the menu can be presented to the client.
func (v *ValidationResult) IsValid() bool {
	return v.Status == StatusValid || v.Status == StatusValidWithWarnings
}

// RejectionReason returns the first error message, or a generic note
// when the rejection came from accumulated warnings.
func (v *ValidationResult) RejectionReason() string {
	for _, i := range v.Issues {
		if i.Severity == SeverityError {
			return i.Message
		}
	}
	return "rejected on accumulated warnings"
}

// Reviser validates adapted proposals against the knowledge base.
type Reviser struct {
	kb          *knowledge.Base
	ingredients *knowledge.Ingredients

	// Strict mode turns any warning into a rejection.
	strict      bool
	maxWarnings int

	propTolerance float64
}

// NewReviser builds a reviser; strict invalidates on any warning.
func NewReviser(kb *knowledge.Base, ingredients *knowledge.Ingredients, strict bool) *Reviser {
	return &Reviser{
		kb:            kb,
		ingredients:   ingredients,
		strict:        strict,
		maxWarnings:   3,
		propTolerance: 0.25,
	}
}

// Revise validates every proposal and returns only the valid ones,
// best score first.
func (r *Reviser) Revise(proposals []AdaptationResult, request *models.Request) []ValidationResult {
	results := make([]ValidationResult, 0, len(proposals))

	for _, p := range proposals {
		v := r.validate(&p, request)
		for _, note := range p.Notes {
			v.Explanations = append(v.Explanations, "adaptation: "+note)
		}
		v.Proposal = p
		results = append(results, v)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	valid := results[:0]
	for _, v := range results {
		if v.IsValid() {
			valid = append(valid, v)
		}
	}
	return valid
}

func (r *Reviser) validate(p *AdaptationResult, request *models.Request) ValidationResult {
	menu := &p.Menu
	var issues []ValidationIssue
	var explanations []string

	collect := func(is []ValidationIssue, exp []string) {
		issues = append(issues, is...)
		explanations = append(explanations, exp...)
	}

	collect(r.validatePrice(menu, request))
	collect(r.validateCulture(menu, request))
	collect(r.validateTemperature(menu, request))
	collect(r.validateFlavors(menu))
	collect(r.validateCategories(menu))
	collect(r.validateCalories(menu, request))
	collect(r.validateDessertAfterFatty(menu))
	collect(r.validateComplexity(menu, request))
	collect(r.validateProportions(menu, request))
	collect(r.validateDiets(menu, request))
	collect(r.validateIngredients(menu, request))

	errors, warnings := 0, 0
	for _, i := range issues {
		switch i.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	var status ValidationStatus
	switch {
	case errors > 0:
		status = StatusInvalid
	case warnings > r.maxWarnings || (r.strict && warnings > 0):
		status = StatusInvalid
	case warnings > 0:
		status = StatusValidWithWarnings
	default:
		status = StatusValid
	}

	return ValidationResult{
		Status:       status,
		Issues:       issues,
		Score:        r.score(p, request, issues),
		Explanations: append(explanations, p.Explanations...),
	}
}

func (r *Reviser) validatePrice(menu *models.Menu, request *models.Request) ([]ValidationIssue, []string) {
	if !request.HasPriceBand() {
		return nil, nil
	}
	if menu.TotalPrice < request.PriceMin {
		return []ValidationIssue{{
			Severity:   SeverityWarning,
			Category:   "price",
			Message:    fmt.Sprintf("total %.2f is below the %.2f minimum", menu.TotalPrice, request.PriceMin),
			Suggestion: "consider premium options to reach the budget",
		}}, nil
	}
	if menu.TotalPrice > request.PriceMax {
		return []ValidationIssue{{
			Severity:   SeverityError,
			Category:   "price",
			Message:    fmt.Sprintf("total %.2f exceeds the %.2f maximum", menu.TotalPrice, request.PriceMax),
			Suggestion: "look for cheaper alternatives",
		}}, nil
	}
	return nil, []string{fmt.Sprintf("total %.2f fits the budget", menu.TotalPrice)}
}

func (r *Reviser) validateCulture(menu *models.Menu, request *models.Request) ([]ValidationIssue, []string) {
	if !request.HasCulture() || menu.CulturalTheme == "" {
		return nil, nil
	}
	if menu.CulturalTheme == request.CulturalPreference {
		return nil, []string{fmt.Sprintf("menu themed for the %s tradition", request.CulturalPreference)}
	}

	var total float64
	var counted int
	for _, dish := range menu.Courses() {
		if len(dish.Ingredients) == 0 {
			continue
		}
		total += r.ingredients.CulturalScore(dish.Ingredients, request.CulturalPreference)
		counted++
	}
	if counted == 0 {
		return nil, nil
	}

	avg := total / float64(counted)
	switch {
	case avg >= 0.6:
		return nil, []string{fmt.Sprintf("menu adapts well to %s (%.0f%% cultural fit)",
			request.CulturalPreference, avg*100)}
	case avg >= 0.4:
		return []ValidationIssue{{
			Severity: SeverityInfo,
			Category: "culture",
			Message:  fmt.Sprintf("moderate cultural adaptation (%.0f%%)", avg*100),
		}}, nil
	default:
		return []ValidationIssue{{
			Severity:   SeverityWarning,
			Category:   "culture",
			Message:    fmt.Sprintf("limited cultural adaptation (%.0f%%)", avg*100),
			Suggestion: "consider dishes more representative of the tradition",
		}}, nil
	}
}

func (r *Reviser) validateTemperature(menu *models.Menu, request *models.Request) ([]ValidationIssue, []string) {
	if request.Season == models.SeasonAll {
		return nil, nil
	}
	if r.kb.IsStarterTemperatureAppropriate(menu.Starter.Temperature, request.Season) {
		return nil, []string{fmt.Sprintf("%s starter appropriate for %s",
			menu.Starter.Temperature, request.Season)}
	}
	return []ValidationIssue{{
		Severity:   SeverityWarning,
		Category:   "temperature",
		Message:    fmt.Sprintf("%s starter is not ideal for %s", menu.Starter.Temperature, request.Season),
		Suggestion: "consider a starter served at a better suited temperature",
	}}, nil
}

func (r *Reviser) validateFlavors(menu *models.Menu) ([]ValidationIssue, []string) {
	if len(menu.Starter.Flavors) == 0 || len(menu.Main.Flavors) == 0 {
		return nil, nil
	}
	for _, sf := range menu.Starter.Flavors {
		for _, mf := range menu.Main.Flavors {
			if r.kb.AreFlavorsCompatible(sf, mf) {
				return nil, []string{fmt.Sprintf("flavor harmony: %s complements %s", sf, mf)}
			}
		}
	}
	return []ValidationIssue{{
		Severity:   SeverityWarning,
		Category:   "flavors",
		Message:    "starter and main flavors may not harmonize",
		Suggestion: "look for dishes with complementary flavors",
	}}, nil
}

func (r *Reviser) validateCategories(menu *models.Menu) ([]ValidationIssue, []string) {
	var issues []ValidationIssue
	var explanations []string

	if !r.kb.AreCategoriesCompatible(menu.Starter.Category, menu.Main.Category) {
		issues = append(issues, ValidationIssue{
			Severity:   SeverityError,
			Category:   "categories",
			Message:    fmt.Sprintf("incompatible categories: %s and %s", menu.Starter.Category, menu.Main.Category),
			Suggestion: "choose dishes from complementary categories",
		})
	} else {
		explanations = append(explanations, fmt.Sprintf("good progression: %s then %s",
			menu.Starter.Category, menu.Main.Category))
	}

	if !r.kb.AreCategoriesCompatible(menu.Main.Category, menu.Dessert.Category) {
		issues = append(issues, ValidationIssue{
			Severity: SeverityWarning,
			Category: "categories",
			Message:  "main and dessert categories may feel repetitive",
		})
	}
	return issues, explanations
}

func (r *Reviser) validateCalories(menu *models.Menu, request *models.Request) ([]ValidationIssue, []string) {
	if request.Season == models.SeasonAll {
		return nil, nil
	}
	total := menu.TotalCalories
	min, _ := r.kb.CalorieRange(request.Season)

	if r.kb.IsCalorieCountAppropriate(total, request.Season) {
		switch request.Season {
		case models.SeasonSummer:
			return nil, []string{fmt.Sprintf("light menu (%d kcal) ideal for summer", total)}
		case models.SeasonWinter:
			return nil, []string{fmt.Sprintf("hearty menu (%d kcal) perfect for winter", total)}
		}
		return nil, []string{fmt.Sprintf("balanced menu (%d kcal)", total)}
	}

	if total < min {
		return []ValidationIssue{{
			Severity:   SeverityInfo,
			Category:   "calories",
			Message:    fmt.Sprintf("light menu (%d kcal) for %s", total, request.Season),
			Suggestion: "a more substantial course could be added",
		}}, nil
	}
	return []ValidationIssue{{
		Severity:   SeverityInfo,
		Category:   "calories",
		Message:    fmt.Sprintf("heavy menu (%d kcal) for %s", total, request.Season),
		Suggestion: "consider lighter options",
	}}, nil
}

func (r *Reviser) validateDessertAfterFatty(menu *models.Menu) ([]ValidationIssue, []string) {
	if !menu.Main.HasFlavor(models.FlavorFatty) {
		return nil, nil
	}
	if r.kb.IsDessertAppropriateAfterFatty(true, &menu.Dessert) {
		if menu.Dessert.Category == models.CategoryFruit {
			return nil, []string{"fruit dessert refreshes the palate after a rich main"}
		}
		if menu.Dessert.HasFlavor(models.FlavorSour) {
			return nil, []string{"a sour note in the dessert cleans the palate"}
		}
		return nil, nil
	}
	return []ValidationIssue{{
		Severity:   SeverityWarning,
		Category:   "dessert",
		Message:    "the dessert may feel heavy after a fatty main",
		Suggestion: "consider a lighter or more acidic dessert",
	}}, nil
}

func (r *Reviser) validateComplexity(menu *models.Menu, request *models.Request) ([]ValidationIssue, []string) {
	if r.kb.IsComplexityAppropriate(menu.Main.Complexity, request.EventType, request.EffectiveMax()) {
		switch menu.Main.Complexity {
		case models.ComplexityHigh:
			return nil, []string{"haute cuisine main course"}
		case models.ComplexityLow:
			return nil, []string{"approachable, familiar main course"}
		}
		return nil, nil
	}
	return []ValidationIssue{{
		Severity:   SeverityWarning,
		Category:   "complexity",
		Message:    fmt.Sprintf("%s complexity may not suit a %s", menu.Main.Complexity, request.EventType),
		Suggestion: "match dish complexity to the event",
	}}, nil
}

func (r *Reviser) validateProportions(menu *models.Menu, request *models.Request) ([]ValidationIssue, []string) {
	band := "mid"
	if request.HasPriceBand() {
		band = r.kb.ClassifyPriceBand(menu.TotalPrice, request.PriceMin, request.PriceMax)
	}

	ok := r.kb.ValidatePriceProportions(menu.Starter.Price, menu.Main.Price, menu.Dessert.Price,
		band, r.propTolerance)
	if ok {
		if menu.Main.Price > menu.Starter.Price && menu.Main.Price > menu.Dessert.Price {
			return nil, []string{"course prices are well balanced"}
		}
		return nil, nil
	}
	if menu.Starter.Price > menu.Main.Price {
		return []ValidationIssue{{
			Severity:   SeverityWarning,
			Category:   "proportions",
			Message:    "the starter costs more than the main course",
			Suggestion: "the main course should carry the menu",
		}}, nil
	}
	return nil, nil
}

func (r *Reviser) validateDiets(menu *models.Menu, request *models.Request) ([]ValidationIssue, []string) {
	if len(request.RequiredDiets) == 0 {
		return nil, nil
	}
	satisfied := menu.DietsSatisfied()

	var missing, fulfilled []string
	for _, d := range request.RequiredDiets {
		if satisfied[d] {
			fulfilled = append(fulfilled, d)
		} else {
			missing = append(missing, d)
		}
	}
	if len(missing) > 0 {
		return []ValidationIssue{{
			Severity:   SeverityError,
			Category:   "dietary",
			Message:    fmt.Sprintf("required diets not met: %v", missing),
			Suggestion: "look for alternatives meeting these diets",
		}}, nil
	}
	return nil, []string{fmt.Sprintf("required diets met: %v", fulfilled)}
}

func (r *Reviser) validateIngredients(menu *models.Menu, request *models.Request) ([]ValidationIssue, []string) {
	if len(request.RestrictedIngredients) == 0 {
		return nil, nil
	}
	all := menu.AllIngredients()

	var found []string
	for _, ing := range request.RestrictedIngredients {
		if all[ing] {
			found = append(found, ing)
		}
	}
	if len(found) > 0 {
		return []ValidationIssue{{
			Severity:   SeverityError,
			Category:   "ingredients",
			Message:    fmt.Sprintf("contains restricted ingredients: %v", found),
			Suggestion: "look for dishes without these ingredients",
		}}, nil
	}
	return nil, []string{"no restricted ingredients present"}
}

// score grades a proposal from 0 to 100 as a weighted composite of
// compliance, gastronomic quality, cultural fidelity, event fit and
// price efficiency, plus a small bonus for a well-rated source case.
// The components pull the score across a wide range instead of
// clustering everything near one value.
func (r *Reviser) score(p *AdaptationResult, request *models.Request, issues []ValidationIssue) float64 {
	menu := &p.Menu

	compliance := 1.0
	for _, i := range issues {
		switch i.Severity {
		case SeverityError:
			compliance -= 0.5
		case SeverityWarning:
			compliance -= 0.15
		case SeverityInfo:
			compliance -= 0.03
		}
	}
	if compliance < 0 {
		compliance = 0
	}

	gastronomy := 0.0
	if r.flavorsHarmonize(menu) {
		gastronomy += 0.35
	}
	if r.kb.IsGoodProgression(menu.Starter.Category, menu.Main.Category) {
		gastronomy += 0.25
	}
	if r.kb.IsDessertAppropriateAfterFatty(menu.Main.HasFlavor(models.FlavorFatty), &menu.Dessert) {
		gastronomy += 0.2
	}
	if r.kb.IsCalorieCountAppropriate(menu.TotalCalories, request.Season) {
		gastronomy += 0.2
	}

	cultural := 1.0
	if request.HasCulture() {
		if menu.CulturalTheme == request.CulturalPreference {
			cultural = 1.0
		} else {
			var total float64
			var counted int
			for _, dish := range menu.Courses() {
				if len(dish.Ingredients) == 0 {
					continue
				}
				total += r.ingredients.CulturalScore(dish.Ingredients, request.CulturalPreference)
				counted++
			}
			if counted > 0 {
				cultural = total / float64(counted)
			}
		}
	}

	eventFit := 0.0
	if r.kb.IsStyleAppropriateForEvent(menu.DominantStyle, request.EventType) {
		eventFit += 0.5
	}
	if r.kb.IsComplexityAppropriate(menu.Main.Complexity, request.EventType, request.EffectiveMax()) {
		eventFit += 0.5
	}

	priceEfficiency := 0.7
	if request.HasPriceBand() && request.PriceMax > request.PriceMin {
		center := (request.PriceMin + request.PriceMax) / 2
		deviation := (menu.TotalPrice - center) / (request.PriceMax - request.PriceMin)
		if deviation < 0 {
			deviation = -deviation
		}
		priceEfficiency = 1 - 2*deviation
		if priceEfficiency < 0 {
			priceEfficiency = 0
		}
	}

	score := 100 * (0.35*compliance + 0.20*gastronomy + 0.15*cultural +
		0.15*eventFit + 0.15*priceEfficiency)

	if p.SourceCase != nil {
		score += p.SourceCase.FeedbackScore
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func (r *Reviser) flavorsHarmonize(menu *models.Menu) bool {
	if len(menu.Starter.Flavors) == 0 || len(menu.Main.Flavors) == 0 {
		return false
	}
	for _, sf := range menu.Starter.Flavors {
		for _, mf := range menu.Main.Flavors {
			if r.kb.AreFlavorsCompatible(sf, mf) {
				return true
			}
		}
	}
	return false
}
