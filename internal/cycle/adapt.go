package cycle

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"traiteur/internal/casebase"
	"traiteur/internal/knowledge"
	"traiteur/internal/models"
	"traiteur/internal/similarity"
)

const (
	// Combined request+menu similarity to a failed case above which a
	// candidate is rejected outright.
	negativePatternThreshold = 0.80

	// Courses scoring below this cultural fit get replaced whole
	// instead of patched ingredient by ingredient.
	culturalRefitThreshold = 0.4

	// Minimum confidence for an ingredient-level cultural swap.
	culturalSubstitutionConfidence = 0.6

	// Attempts at assembling a menu from scratch before giving up.
	maxGenerationAttempts = 50

	// Base adaptation score assigned to generated menus.
	generatedMenuScore = 0.7
)

// AdaptationResult is one adapted (or generated) proposal.
type AdaptationResult struct {
	SourceCase      *models.Case  `json:"source_case,omitempty"`
	Menu            models.Menu   `json:"menu"`
	Notes           []string      `json:"notes"`
	Warnings        []string      `json:"warnings,omitempty"`
	PreSimilarity   float64       `json:"pre_similarity"`
	PostSimilarity  float64       `json:"post_similarity"`
	AdaptationScore float64       `json:"adaptation_score"`
	PriceBucket     string        `json:"price_bucket"`
	Explanations    []string      `json:"explanations,omitempty"`
}

// Adapter transforms retrieved menus until they satisfy a request.
type Adapter struct {
	catalog     *casebase.Catalog
	store       *casebase.Store
	calc        *similarity.Calculator
	kb          *knowledge.Base
	ingredients *knowledge.Ingredients
	rng         *rand.Rand
}

// NewAdapter builds an adapter over the dish catalog and case pool.
func NewAdapter(catalog *casebase.Catalog, store *casebase.Store, calc *similarity.Calculator,
	kb *knowledge.Base, ingredients *knowledge.Ingredients, rng *rand.Rand) *Adapter {
	return &Adapter{
		catalog:     catalog,
		store:       store,
		calc:        calc,
		kb:          kb,
		ingredients: ingredients,
		rng:         rng,
	}
}

// Adapt runs the adaptation pipeline over the retrieved candidates and
// returns up to n proposals ranked by their post-adaptation similarity.
// When fewer than n candidates survive, from-scratch generation fills
// the gap.
func (a *Adapter) Adapt(retrieved []RetrievalResult, request *models.Request, n int) []AdaptationResult {
	results := make([]AdaptationResult, 0, n)

	for _, r := range retrieved {
		if len(results) >= n {
			break
		}
		adapted, ok := a.adaptCase(r, request)
		if ok {
			results = append(results, adapted)
		}
	}

	for len(results) < n {
		generated, ok := a.generateMenu(request)
		if !ok {
			break
		}
		results = append(results, generated)
	}

	for i := range results {
		results[i].PriceBucket = a.priceBucket(results[i].Menu.TotalPrice, request)
	}

	// Adaptation can move a menu a long way from the retrieved case,
	// so the ranking uses the recomputed similarity, not the stale
	// retrieval score.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PostSimilarity > results[j].PostSimilarity
	})

	if len(results) > n {
		results = results[:n]
	}
	return results
}

func (a *Adapter) adaptCase(r RetrievalResult, request *models.Request) (AdaptationResult, bool) {
	// Work on deep copies so ingredient-level edits never reach the
	// stored case.
	menu := r.Case.Menu
	menu.Starter = r.Case.Menu.Starter.Clone()
	menu.Main = r.Case.Menu.Main.Clone()
	menu.Dessert = r.Case.Menu.Dessert.Clone()
	menu.ID = fmt.Sprintf("adapted-%s-%04d", r.Case.ID, a.rng.Intn(10000))
	menu.Adaptations = nil
	var notes, warnings []string

	if a.matchesNegativePattern(&menu, request) {
		return AdaptationResult{}, false
	}

	dietNotes, ok := a.adaptForDiets(&menu, request.RequiredDiets)
	if !ok {
		return AdaptationResult{}, false
	}
	notes = append(notes, dietNotes...)

	// Allergens are filtered at retrieval; anything still here after
	// the dietary substitutions is a hard rejection.
	if menu.ContainsAnyIngredient(request.RestrictedIngredients) {
		return AdaptationResult{}, false
	}

	priceNotes, priceWarnings := a.adaptForPrice(&menu, request)
	notes = append(notes, priceNotes...)
	warnings = append(warnings, priceWarnings...)

	notes = append(notes, a.adaptForSeason(&menu, request)...)
	notes = append(notes, a.adaptBeverage(&menu, request.WantsWine)...)
	notes = append(notes, a.adaptCulture(&menu, request)...)
	notes = append(notes, a.adaptStyle(&menu, request)...)

	for _, note := range notes {
		menu = menu.WithAdaptation(note)
	}

	score := a.adaptationScore(&r.Case.Menu, &menu, request)

	shadow := *r.Case
	shadow.Menu = menu

	return AdaptationResult{
		SourceCase:      r.Case,
		Menu:            menu,
		Notes:           notes,
		Warnings:        warnings,
		PreSimilarity:   r.Similarity,
		PostSimilarity:  a.calc.Score(request, &shadow),
		AdaptationScore: score,
		Explanations:    a.explainMenu(&menu, request),
	}, true
}

// matchesNegativePattern reports whether the menu resembles a stored
// failure for a similar request.
func (a *Adapter) matchesNegativePattern(menu *models.Menu, request *models.Request) bool {
	for _, c := range a.store.All() {
		if !c.Negative {
			continue
		}
		combined := 0.6*a.calc.Score(request, c) + 0.4*similarity.MenuSimilarity(menu, &c.Menu)
		if combined >= negativePatternThreshold {
			return true
		}
	}
	return false
}

// adaptForDiets patches each course at the ingredient level: every
// ingredient violating a required diet is swapped for a same-group
// compliant alternative. A course with an unfixable ingredient sinks
// the whole candidate.
func (a *Adapter) adaptForDiets(menu *models.Menu, required []string) ([]string, bool) {
	if len(required) == 0 {
		return nil, true
	}

	var notes []string
	for _, t := range []models.DishType{models.DishStarter, models.DishMain, models.DishDessert} {
		dish := menu.Course(t)
		if dish.MeetsDiets(required) {
			continue
		}

		changed := false
		for i, ing := range dish.Ingredients {
			sub, fixable := a.ingredients.FindDietarySubstitution(ing, required)
			if !fixable {
				return nil, false
			}
			if sub == nil {
				continue
			}
			dish.Ingredients[i] = sub.Replacement
			changed = true
			notes = append(notes, fmt.Sprintf("in %s, replaced %s with %s (%s)",
				dish.Name, sub.Original, sub.Replacement, sub.Reason))
		}

		if changed {
			for _, diet := range required {
				if !dish.MeetsDiets([]string{diet}) {
					dish.Diets = append(dish.Diets, diet)
				}
			}
			*menu = menu.WithCourse(dish)
		}
	}
	return notes, true
}

// adaptForPrice swaps courses until the total lands inside the band.
// Going over budget swaps the costliest course for a cheaper one,
// under budget upgrades the main course first. A residual gap is a
// warning, never a rejection.
func (a *Adapter) adaptForPrice(menu *models.Menu, request *models.Request) (notes, warnings []string) {
	if !request.HasPriceBand() {
		return nil, nil
	}
	if menu.TotalPrice >= request.PriceMin && menu.TotalPrice <= request.PriceMax {
		return nil, nil
	}

	if menu.TotalPrice > request.PriceMax {
		courses := menu.Courses()
		sort.SliceStable(courses, func(i, j int) bool { return courses[i].Price > courses[j].Price })

		for _, dish := range courses {
			if menu.TotalPrice <= request.PriceMax {
				break
			}
			alt, ok := a.bestSwap(&dish, request, func(d *models.Dish) bool { return d.Price < dish.Price })
			if !ok {
				continue
			}
			*menu = menu.WithCourse(alt)
			notes = append(notes, fmt.Sprintf("replaced %s with %s (saves %.2f)",
				dish.Name, alt.Name, dish.Price-alt.Price))
		}
	} else {
		order := []models.DishType{models.DishMain, models.DishStarter, models.DishDessert}
		for _, t := range order {
			if menu.TotalPrice >= request.PriceMin {
				break
			}
			dish := menu.Course(t)
			alt, ok := a.bestSwap(&dish, request, func(d *models.Dish) bool { return d.Price > dish.Price })
			if !ok {
				continue
			}
			*menu = menu.WithCourse(alt)
			notes = append(notes, fmt.Sprintf("upgraded %s to %s (+%.2f)",
				dish.Name, alt.Name, alt.Price-dish.Price))
		}
	}

	if menu.TotalPrice < request.PriceMin || menu.TotalPrice > request.PriceMax {
		warnings = append(warnings, fmt.Sprintf("total %.2f remains outside the %.2f-%.2f band",
			menu.TotalPrice, request.PriceMin, request.PriceMax))
	}
	return notes, warnings
}

// bestSwap finds the most similar same-type alternative that passes
// the price predicate and the request's hard constraints.
func (a *Adapter) bestSwap(dish *models.Dish, request *models.Request, pricePred func(*models.Dish) bool) (models.Dish, bool) {
	var best models.Dish
	bestSim := -1.0
	for _, cand := range a.catalog.DishesByType(dish.Type) {
		if cand.ID == dish.ID || !pricePred(&cand) {
			continue
		}
		if !a.compliant(&cand, request) {
			continue
		}
		if sim := similarity.DishSimilarity(dish, &cand); sim > bestSim {
			bestSim = sim
			best = cand
		}
	}
	return best, bestSim >= 0
}

// compliant checks a catalog dish against the request's hard limits.
func (a *Adapter) compliant(d *models.Dish, request *models.Request) bool {
	if !d.MeetsDiets(request.RequiredDiets) {
		return false
	}
	if d.HasAnyIngredient(request.RestrictedIngredients) {
		return false
	}
	if d.MaxGuests > 0 && d.MaxGuests < request.Guests {
		return false
	}
	return true
}

func (a *Adapter) adaptForSeason(menu *models.Menu, request *models.Request) []string {
	if request.Season == models.SeasonAll {
		return nil
	}
	if a.kb.IsStarterTemperatureAppropriate(menu.Starter.Temperature, request.Season) {
		return nil
	}

	var best models.Dish
	bestSim := -1.0
	for _, cand := range a.catalog.DishesByType(models.DishStarter) {
		if !a.kb.IsStarterTemperatureAppropriate(cand.Temperature, request.Season) {
			continue
		}
		if !cand.AvailableInSeason(request.Season) || !a.compliant(&cand, request) {
			continue
		}
		if sim := similarity.DishSimilarity(&menu.Starter, &cand); sim > bestSim {
			bestSim = sim
			best = cand
		}
	}
	if bestSim < 0 {
		return nil
	}
	old := menu.Starter.Name
	*menu = menu.WithStarter(best)
	return []string{fmt.Sprintf("replaced %s with %s (suits %s)", old, best.Name, request.Season)}
}

func (a *Adapter) adaptBeverage(menu *models.Menu, wantsWine bool) []string {
	if wantsWine == menu.Beverage.Alcoholic {
		return nil
	}

	options := a.catalog.BeveragesByPreference(wantsWine)
	if len(options) == 0 {
		return nil
	}

	old := menu.Beverage.Name
	if wantsWine {
		best := a.selectBestWine(menu, options)
		*menu = menu.WithBeverage(best)
		return []string{fmt.Sprintf("paired %s instead of %s", best.Name, old)}
	}
	pick := options[a.rng.Intn(len(options))]
	*menu = menu.WithBeverage(pick)
	return []string{fmt.Sprintf("swapped %s for %s (alcohol-free)", old, pick.Name)}
}

// selectBestWine ranks wines by how well their subtype pairs with the
// main course, with the dessert pairing as a smaller bonus.
func (a *Adapter) selectBestWine(menu *models.Menu, wines []models.Beverage) models.Beverage {
	best := wines[0]
	bestScore := -1
	for _, w := range wines {
		score := 0
		if a.kb.IsWineCompatibleWithFlavors(w.Subtype, menu.Main.Flavors, false) {
			score += a.kb.WinePriority(w.Subtype, false)
		}
		if a.kb.IsWineCompatibleWithFlavors(w.Subtype, menu.Dessert.Flavors, true) {
			score += a.kb.WinePriority(w.Subtype, true) / 2
		}
		if score > bestScore {
			bestScore = score
			best = w
		}
	}
	return best
}

// adaptCulture re-themes the menu toward the requested tradition.
// Courses with a very poor fit are replaced whole; the rest get
// ingredient-level substitutions that strictly improve the fit.
func (a *Adapter) adaptCulture(menu *models.Menu, request *models.Request) []string {
	if !request.HasCulture() || menu.CulturalTheme == request.CulturalPreference {
		return nil
	}
	target := request.CulturalPreference
	related := a.calc.RelatedCultures(target, 0.6)

	var notes []string
	changed := false

	for _, t := range []models.DishType{models.DishStarter, models.DishMain, models.DishDessert} {
		dish := menu.Course(t)
		fit := a.ingredients.CulturalScore(dish.Ingredients, target)

		if fit < culturalRefitThreshold {
			alt, ok := a.bestCulturalReplacement(&dish, target, request)
			if !ok {
				continue
			}
			*menu = menu.WithCourse(alt)
			changed = true
			notes = append(notes, fmt.Sprintf("dish replacement: %s for %s (%s theme)",
				alt.Name, dish.Name, target))
			continue
		}

		_, subs := a.ingredients.AdaptIngredients(dish.Ingredients, target, related, culturalSubstitutionConfidence)
		if len(subs) == 0 {
			continue
		}
		adapted := dish.Clone()
		for _, sub := range subs {
			for i, ing := range adapted.Ingredients {
				if ing == sub.Original {
					adapted.Ingredients[i] = sub.Replacement
				}
			}
		}
		if a.ingredients.CulturalScore(adapted.Ingredients, target) <= fit {
			continue
		}
		if adapted.HasAnyIngredient(request.RestrictedIngredients) {
			continue
		}
		*menu = menu.WithCourse(adapted)
		changed = true
		for _, sub := range subs {
			notes = append(notes, fmt.Sprintf("in %s, used %s instead of %s (%s)",
				dish.Name, sub.Replacement, sub.Original, sub.Reason))
		}
	}

	if changed {
		menu.CulturalTheme = target
	}
	return notes
}

// bestCulturalReplacement ranks compliant same-type candidates by a
// blend of cultural fit, similarity to the original and temperature.
func (a *Adapter) bestCulturalReplacement(dish *models.Dish, target models.CulturalTradition,
	request *models.Request) (models.Dish, bool) {
	var best models.Dish
	bestScore := -1.0
	for _, cand := range a.catalog.DishesByType(dish.Type) {
		if cand.ID == dish.ID || !a.compliant(&cand, request) {
			continue
		}
		score := 0.5 * a.ingredients.CulturalScore(cand.Ingredients, target)
		score += 0.35 * similarity.DishSimilarity(dish, &cand)
		if cand.Temperature == dish.Temperature {
			score += 0.15
		}
		if score > bestScore {
			bestScore = score
			best = cand
		}
	}
	return best, bestScore >= 0
}

func (a *Adapter) adaptStyle(menu *models.Menu, request *models.Request) []string {
	if !request.HasStyle() || menu.DominantStyle == request.PreferredStyle {
		return nil
	}
	if a.kb.IsStyleAppropriateForEvent(menu.DominantStyle, request.EventType) {
		return nil
	}

	order := []models.DishType{models.DishMain, models.DishStarter, models.DishDessert}
	for _, t := range order {
		dish := menu.Course(t)
		if dish.HasStyle(request.PreferredStyle) {
			continue
		}

		var best models.Dish
		bestSim := -1.0
		for _, cand := range a.catalog.DishesByType(t) {
			if !cand.HasStyle(request.PreferredStyle) || !a.compliant(&cand, request) {
				continue
			}
			if sim := similarity.DishSimilarity(&dish, &cand); sim > bestSim {
				bestSim = sim
				best = cand
			}
		}
		if bestSim < 0 {
			continue
		}
		*menu = menu.WithCourse(best)
		menu.DominantStyle = request.PreferredStyle
		return []string{fmt.Sprintf("adapted style to %s", request.PreferredStyle)}
	}
	return nil
}

// adaptationScore measures how intact the original menu arrived:
// price misses and course changes cost, met diets earn a bonus.
func (a *Adapter) adaptationScore(original, adapted *models.Menu, request *models.Request) float64 {
	score := 1.0

	if request.HasPriceBand() {
		if adapted.TotalPrice < request.PriceMin {
			score -= 0.2
		} else if adapted.TotalPrice > request.PriceMax {
			score -= 0.3
		}
	}

	changes := 0.0
	if adapted.Starter.ID != original.Starter.ID {
		changes++
	}
	if adapted.Main.ID != original.Main.ID {
		changes++
	}
	if adapted.Dessert.ID != original.Dessert.ID {
		changes++
	}
	if adapted.Beverage.ID != original.Beverage.ID {
		changes += 0.5
	}
	score -= changes * 0.1

	if adapted.SatisfiesDiets(request.RequiredDiets) {
		score += 0.1
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// generateMenu assembles a menu from scratch by constrained random
// sampling over the catalog.
func (a *Adapter) generateMenu(request *models.Request) (AdaptationResult, bool) {
	filter := func(dishes []models.Dish) []models.Dish {
		var out []models.Dish
		for _, d := range dishes {
			if !a.compliant(&d, request) {
				continue
			}
			if request.Season != models.SeasonAll && !d.AvailableInSeason(request.Season) {
				continue
			}
			out = append(out, d)
		}
		return out
	}

	starters := filter(a.catalog.DishesByType(models.DishStarter))
	mains := filter(a.catalog.DishesByType(models.DishMain))
	desserts := filter(a.catalog.DishesByType(models.DishDessert))
	beverages := a.catalog.BeveragesByPreference(request.WantsWine)

	if len(starters) == 0 || len(mains) == 0 || len(desserts) == 0 || len(beverages) == 0 {
		return AdaptationResult{}, false
	}

	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		starter := starters[a.rng.Intn(len(starters))]
		main := mains[a.rng.Intn(len(mains))]
		dessert := desserts[a.rng.Intn(len(desserts))]
		beverage := beverages[a.rng.Intn(len(beverages))]

		total := starter.Price + main.Price + dessert.Price + beverage.Price
		if request.HasPriceBand() && (total < request.PriceMin || total > request.PriceMax) {
			continue
		}
		if !a.kb.AreCategoriesCompatible(starter.Category, main.Category) {
			continue
		}
		if !a.flavorsMesh(starter.Flavors, main.Flavors) {
			continue
		}
		mainFatty := main.HasFlavor(models.FlavorFatty)
		if !a.kb.IsDessertAppropriateAfterFatty(mainFatty, &dessert) {
			continue
		}

		menu := models.NewMenu(fmt.Sprintf("generated-%05d", a.rng.Intn(100000)),
			starter, main, dessert, beverage)
		for _, style := range a.kb.PreferredStylesForEvent(request.EventType) {
			if starter.HasStyle(style) || main.HasStyle(style) || dessert.HasStyle(style) {
				menu.DominantStyle = style
				break
			}
		}

		if a.matchesNegativePattern(&menu, request) {
			continue
		}

		shadow := models.Case{Request: *request, Menu: menu, Success: true}
		return AdaptationResult{
			Menu:            menu,
			Notes:           []string{"menu assembled from scratch"},
			PostSimilarity:  a.calc.Score(request, &shadow),
			AdaptationScore: generatedMenuScore,
			Explanations:    a.explainMenu(&menu, request),
		}, true
	}
	return AdaptationResult{}, false
}

func (a *Adapter) flavorsMesh(starterFlavors, mainFlavors []models.Flavor) bool {
	if len(starterFlavors) == 0 || len(mainFlavors) == 0 {
		return true
	}
	for _, sf := range starterFlavors {
		for _, mf := range mainFlavors {
			if a.kb.AreFlavorsCompatible(sf, mf) {
				return true
			}
		}
	}
	return false
}

func (a *Adapter) priceBucket(price float64, request *models.Request) string {
	if !request.HasPriceBand() {
		return "mid"
	}
	return a.kb.ClassifyPriceBand(price, request.PriceMin, request.PriceMax)
}

// explainMenu builds client-facing reasons the proposal hangs together.
func (a *Adapter) explainMenu(menu *models.Menu, request *models.Request) []string {
	var out []string

	if request.Season != models.SeasonAll &&
		a.kb.IsStarterTemperatureAppropriate(menu.Starter.Temperature, request.Season) {
		out = append(out, fmt.Sprintf("%s starter suits %s", menu.Starter.Temperature, request.Season))
	}

	for _, sf := range menu.Starter.Flavors {
		matched := false
		for _, mf := range menu.Main.Flavors {
			if a.kb.AreFlavorsCompatible(sf, mf) {
				out = append(out, fmt.Sprintf("%s notes in the starter complement the %s main", sf, mf))
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}

	if menu.Main.HasFlavor(models.FlavorFatty) {
		if menu.Dessert.Category == models.CategoryFruit {
			out = append(out, "fruit dessert refreshes the palate after a rich main")
		} else if menu.Dessert.HasFlavor(models.FlavorSour) {
			out = append(out, "a touch of acidity in the dessert cleans the palate")
		}
	}

	if a.kb.IsCalorieCountAppropriate(menu.TotalCalories, request.Season) {
		out = append(out, fmt.Sprintf("menu weight sits well within the %s range",
			strings.ToLower(string(request.Season))))
	}

	return out
}
