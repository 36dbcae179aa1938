// Package cycle implements the four phases of the reasoning loop:
// retrieve, adapt, revise and retain. Each phase is a small service
// wired together by the engine; none of them locks, callers serialize.
package cycle

import (
	"fmt"
	"sort"

	"traiteur/internal/casebase"
	"traiteur/internal/knowledge"
	"traiteur/internal/models"
	"traiteur/internal/similarity"
)

const (
	// Candidates below this similarity are still returned, the
	// threshold only feeds retrieval statistics.
	minSimilarityThreshold = 0.3

	// Cap on candidates scored in detail per retrieval.
	maxCandidates = 50

	// Requests at least this similar to a failed case trigger a
	// negative warning.
	negativeWarningThreshold = 0.80
)

// RetrievalResult is one retrieved case with its similarity breakdown.
type RetrievalResult struct {
	Case       *models.Case       `json:"case"`
	Similarity float64            `json:"similarity"`
	Details    map[string]float64 `json:"details"`
	Rank       int                `json:"rank"`
}

// Explanation renders a human-readable account of why the case matched.
func (r *RetrievalResult) Explanation() string {
	out := fmt.Sprintf("case %s matched at %.0f%%", r.Case.ID, r.Similarity*100)
	if r.Details[similarity.DimEvent] > 0.8 {
		out += ", same kind of event"
	}
	if r.Details[similarity.DimPrice] > 0.9 {
		out += ", price on target"
	} else if r.Details[similarity.DimPrice] > 0.7 {
		out += ", price close"
	}
	if r.Details[similarity.DimSeason] > 0.9 {
		out += ", same season"
	}
	if r.Details[similarity.DimStyle] > 0.8 {
		out += ", matching style"
	}
	if r.Details[similarity.DimSuccess] > 0.8 {
		out += ", proven success"
	}
	return out
}

// NegativeWarning flags a stored failure that closely resembles the
// incoming request.
type NegativeWarning struct {
	Case       *models.Case `json:"case"`
	Similarity float64      `json:"similarity"`
}

// RetrievalStatistics summarizes how the whole pool scores against one
// request, for diagnostics.
type RetrievalStatistics struct {
	TotalCases       int       `json:"total_cases"`
	AboveThreshold   int       `json:"above_threshold"`
	MaxSimilarity    float64   `json:"max_similarity"`
	MinSimilarity    float64   `json:"min_similarity"`
	AvgSimilarity    float64   `json:"avg_similarity"`
	MedianSimilarity float64   `json:"median_similarity"`
	TopSimilarities  []float64 `json:"top_similarities"`
}

// Retriever finds the stored cases most similar to a request.
type Retriever struct {
	store       *casebase.Store
	calc        *similarity.Calculator
	ingredients *knowledge.Ingredients
}

// NewRetriever builds a retriever over the given case pool.
func NewRetriever(store *casebase.Store, calc *similarity.Calculator, ingredients *knowledge.Ingredients) *Retriever {
	return &Retriever{store: store, calc: calc, ingredients: ingredients}
}

// Retrieve returns the k most similar positive cases.
//
// The pipeline is: index pre-filter, negative drop, critical
// constraint filter (diets with fallback, allergens without), detailed
// scoring with a cultural boost, ranking.
func (r *Retriever) Retrieve(request *models.Request, k int) []RetrievalResult {
	candidates := r.prefilter(request)
	if len(candidates) == 0 {
		candidates = r.store.All()
	}

	// Failed cases only serve as warnings, never as adaptation sources.
	positives := candidates[:0:0]
	for _, c := range candidates {
		if !c.Negative {
			positives = append(positives, c)
		}
	}
	candidates = r.filterByCriticalConstraints(positives, request)

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	scored := make([]RetrievalResult, 0, len(candidates))
	for _, c := range candidates {
		details := r.calc.Breakdown(request, c)
		sim := details["total"]

		if request.HasCulture() && c.Menu.CulturalTheme != "" {
			if request.CulturalPreference == c.Menu.CulturalTheme {
				sim = min(1.0, sim+0.2)
				details["cultural_match"] = 1.0
			} else {
				// Different theme: record how adaptable the menu's
				// ingredients are so the adapter can use it.
				var total float64
				var counted int
				for _, dish := range c.Menu.Courses() {
					if len(dish.Ingredients) == 0 {
						continue
					}
					total += r.ingredients.CulturalScore(dish.Ingredients, request.CulturalPreference)
					counted++
				}
				if counted > 0 {
					details["cultural_adaptability"] = total / float64(counted)
				}
			}
		}

		scored = append(scored, RetrievalResult{Case: c, Similarity: sim, Details: details})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// RetrieveDiverse returns k cases balancing similarity against mutual
// diversity using maximal marginal relevance. The best match is always
// kept; each further pick maximizes
// (1-w)*similarity - w*maxSimilarityToSelected.
func (r *Retriever) RetrieveDiverse(request *models.Request, k int, diversityWeight float64) []RetrievalResult {
	all := r.Retrieve(request, k*3)
	if len(all) <= k {
		return all
	}

	selected := []RetrievalResult{all[0]}
	remaining := all[1:]

	for len(selected) < k && len(remaining) > 0 {
		bestIdx := -1
		bestScore := -1.0

		for i, cand := range remaining {
			maxSim := 0.0
			for _, sel := range selected {
				sim := similarity.MenuSimilarity(&cand.Case.Menu, &sel.Case.Menu)
				if sim > maxSim {
					maxSim = sim
				}
			}
			mmr := (1-diversityWeight)*cand.Similarity - diversityWeight*maxSim
			if mmr > bestScore {
				bestScore = mmr
				bestIdx = i
			}
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	for i := range selected {
		selected[i].Rank = i + 1
	}
	return selected
}

// CheckNegatives reports stored failures whose request closely matches
// the incoming one, most similar first.
func (r *Retriever) CheckNegatives(request *models.Request) []NegativeWarning {
	var warnings []NegativeWarning
	for _, c := range r.store.All() {
		if !c.Negative {
			continue
		}
		sim := r.calc.Score(request, c)
		if sim >= negativeWarningThreshold {
			warnings = append(warnings, NegativeWarning{Case: c, Similarity: sim})
		}
	}
	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Similarity > warnings[j].Similarity
	})
	return warnings
}

// Statistics scores every stored case against the request.
func (r *Retriever) Statistics(request *models.Request) RetrievalStatistics {
	all := r.store.All()
	stats := RetrievalStatistics{TotalCases: len(all)}
	if len(all) == 0 {
		return stats
	}

	sims := make([]float64, 0, len(all))
	for _, c := range all {
		sims = append(sims, r.calc.Score(request, c))
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sims)))

	var sum float64
	for _, s := range sims {
		sum += s
		if s >= minSimilarityThreshold {
			stats.AboveThreshold++
		}
	}
	stats.MaxSimilarity = sims[0]
	stats.MinSimilarity = sims[len(sims)-1]
	stats.AvgSimilarity = sum / float64(len(sims))
	stats.MedianSimilarity = sims[len(sims)/2]
	top := 5
	if len(sims) < top {
		top = len(sims)
	}
	stats.TopSimilarities = append([]float64(nil), sims[:top]...)
	return stats
}

// prefilter collects candidates from the event, price band and season
// indexes, deduplicated in that order. The price window takes a 20%
// margin on each side.
func (r *Retriever) prefilter(request *models.Request) []*models.Case {
	var candidates []*models.Case
	seen := make(map[string]bool)

	add := func(cases []*models.Case) {
		for _, c := range cases {
			if !seen[c.ID] {
				candidates = append(candidates, c)
				seen[c.ID] = true
			}
		}
	}

	add(r.store.ByEvent(request.EventType))
	if request.HasPriceBand() {
		margin := (request.PriceMax - request.PriceMin) * 0.2
		add(r.store.ByPriceRange(request.PriceMin-margin, request.PriceMax+margin))
	}
	add(r.store.BySeason(request.Season))

	return candidates
}

// filterByCriticalConstraints drops candidates that break hard
// constraints. The dietary filter falls back to the unfiltered list
// when nothing survives so the adapter can try substitutions; the
// allergen filter never falls back.
func (r *Retriever) filterByCriticalConstraints(candidates []*models.Case, request *models.Request) []*models.Case {
	filtered := candidates

	if len(request.RequiredDiets) > 0 {
		var byDiet []*models.Case
		for _, c := range filtered {
			if c.Menu.SatisfiesDiets(request.RequiredDiets) {
				byDiet = append(byDiet, c)
			}
		}
		if len(byDiet) > 0 {
			filtered = byDiet
		}
	}

	if len(request.RestrictedIngredients) > 0 {
		var safe []*models.Case
		for _, c := range filtered {
			if !c.Menu.ContainsAnyIngredient(request.RestrictedIngredients) {
				safe = append(safe, c)
			}
		}
		filtered = safe
	}

	return filtered
}
