package similarity

import "traiteur/internal/models"

// DishSimilarity scores how alike two dishes of the same course are, in
// [0, 1]. Dishes of different courses score 0.
func DishSimilarity(a, b *models.Dish) float64 {
	if a.Type != b.Type {
		return 0.0
	}
	var parts []float64

	if a.Category == b.Category {
		parts = append(parts, 1.0)
	} else {
		parts = append(parts, 0.3)
	}

	parts = append(parts, ratio(a.Price, b.Price))

	ra, rb := a.Complexity.Rank(), b.Complexity.Rank()
	if ra < 0 || rb < 0 {
		parts = append(parts, 0.5)
	} else {
		d := ra - rb
		if d < 0 {
			d = -d
		}
		parts = append(parts, 1.0-float64(d)/2.0)
	}

	parts = append(parts, flavorJaccard(a.Flavors, b.Flavors))
	parts = append(parts, styleJaccard(a.Styles, b.Styles))
	parts = append(parts, ratio(float64(a.Calories), float64(b.Calories)))

	total := 0.0
	for _, p := range parts {
		total += p
	}
	return total / float64(len(parts))
}

// MenuSimilarity scores how alike two complete menus are, in [0, 1].
// The main course dominates the weighting.
func MenuSimilarity(a, b *models.Menu) float64 {
	starterSim := DishSimilarity(&a.Starter, &b.Starter)
	mainSim := DishSimilarity(&a.Main, &b.Main)
	dessertSim := DishSimilarity(&a.Dessert, &b.Dessert)
	priceSim := ratio(a.TotalPrice, b.TotalPrice)

	styleSim := 0.5
	if a.DominantStyle == b.DominantStyle {
		styleSim = 1.0
	}

	return 0.20*starterSim + 0.35*mainSim + 0.20*dessertSim +
		0.15*priceSim + 0.10*styleSim
}

// ratio returns min/max for two non-negative magnitudes, treating two
// zeros as identical.
func ratio(a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b == 0 {
		return 1.0
	}
	return a / b
}

func flavorJaccard(a, b []models.Flavor) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.5
	}
	set := make(map[models.Flavor]int)
	for _, f := range a {
		set[f] |= 1
	}
	for _, f := range b {
		set[f] |= 2
	}
	common := 0
	for _, mask := range set {
		if mask == 3 {
			common++
		}
	}
	return float64(common) / float64(len(set))
}

func styleJaccard(a, b []models.CulinaryStyle) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.5
	}
	set := make(map[models.CulinaryStyle]int)
	for _, s := range a {
		set[s] |= 1
	}
	for _, s := range b {
		set[s] |= 2
	}
	common := 0
	for _, mask := range set {
		if mask == 3 {
			common++
		}
	}
	return float64(common) / float64(len(set))
}
