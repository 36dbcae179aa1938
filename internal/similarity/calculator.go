package similarity

import (
	"log"
	"sort"

	"traiteur/internal/knowledge"
	"traiteur/internal/models"
)

// eventAffinity scores how close two different event types are. Pairs
// not listed fall back to 0.3.
var eventAffinity = map[[2]models.EventType]float64{
	{models.EventWedding, models.EventCommunion}:     0.6,
	{models.EventWedding, models.EventChristening}:   0.5,
	{models.EventCommunion, models.EventChristening}: 0.8,
	{models.EventFamiliar, models.EventChristening}:  0.7,
	{models.EventFamiliar, models.EventCommunion}:    0.7,
	{models.EventCongress, models.EventCorporate}:    0.9,
}

// cultureAffinity scores how related two different culinary traditions
// are, based on shared ingredients and techniques. Pairs not listed
// fall back to 0.3.
var cultureAffinity = map[[2]models.CulturalTradition]float64{
	{models.CultureItalian, models.CultureSpanish}:    0.8,
	{models.CultureItalian, models.CultureFrench}:     0.7,
	{models.CultureSpanish, models.CultureFrench}:     0.6,
	{models.CultureLebanese, models.CultureItalian}:   0.5,
	{models.CultureChinese, models.CultureJapanese}:   0.7,
	{models.CultureChinese, models.CultureKorean}:     0.8,
	{models.CultureJapanese, models.CultureKorean}:    0.7,
	{models.CultureThai, models.CultureVietnamese}:    0.9,
	{models.CultureMexican, models.CultureSpanish}:    0.5,
	{models.CultureFrench, models.CultureVietnamese}:  0.4,
	{models.CultureFrench, models.CultureLebanese}:    0.4,
	{models.CultureIndian, models.CultureLebanese}:    0.5,
	{models.CultureAmerican, models.CultureMexican}:   0.6,
	{models.CultureMediterranean, models.CultureGreek}: 0.8,
	{models.CultureMediterranean, models.CultureItalian}: 0.8,
	{models.CultureMediterranean, models.CultureSpanish}: 0.8,
	{models.CultureCatalan, models.CultureSpanish}:    0.8,
	{models.CultureBasque, models.CultureSpanish}:     0.7,
	{models.CultureGalician, models.CultureSpanish}:   0.7,
}

// Calculator scores the similarity between a new request and stored
// cases across nine weighted dimensions.
type Calculator struct {
	weights  Weights
	kb       *knowledge.Base
	embedder *Embedder
}

// NewCalculator builds a calculator with the given weights, normalized
// before use. A nil embedder disables the semantic cultural
// refinement.
func NewCalculator(weights Weights, kb *knowledge.Base, embedder *Embedder) *Calculator {
	return &Calculator{
		weights:  weights.Normalized(),
		kb:       kb,
		embedder: embedder,
	}
}

// SetWeights replaces the calculator's weight profile.
func (c *Calculator) SetWeights(w Weights) {
	c.weights = w.Normalized()
}

// Weights returns the current weight profile.
func (c *Calculator) Weights() Weights {
	return c.weights
}

// Score computes the weighted similarity between a request and a case,
// in [0, 1]. Internal faults degrade to the neutral value 0.5 instead
// of failing the whole retrieval.
func (c *Calculator) Score(request *models.Request, cs *models.Case) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("similarity: recovered from %v, returning neutral score", r)
			score = 0.5
		}
	}()
	b := c.Breakdown(request, cs)
	return b["total"]
}

// Breakdown computes the per-dimension similarity scores plus the
// weighted total under the "total" key. The weights used are a derived
// copy in which dimensions the request leaves unspecified are zeroed
// and the rest renormalized; the calculator's base weights are never
// modified. Internal faults degrade to a neutral breakdown, matching
// Score.
func (c *Calculator) Breakdown(request *models.Request, cs *models.Case) (parts map[string]float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("similarity: recovered from %v, returning neutral breakdown", r)
			parts = map[string]float64{"total": 0.5}
		}
	}()
	parts = map[string]float64{
		DimEvent:   c.eventSimilarity(request.EventType, cs.Request.EventType, cs.Menu.DominantStyle),
		DimSeason:  c.seasonSimilarity(request.Season, cs.Request.Season),
		DimPrice:   c.priceSimilarity(request, cs.Menu.TotalPrice),
		DimStyle:   c.styleSimilarity(request, cs.Menu.DominantStyle),
		DimCulture: c.culturalSimilarity(request.CulturalPreference, cs.Menu.CulturalTheme),
		DimDietary: c.dietarySimilarity(request.RequiredDiets, &cs.Menu),
		DimGuests:  c.guestsSimilarity(request.Guests, cs.Request.Guests, &cs.Menu),
		DimWine:    c.wineSimilarity(request.WantsWine, cs),
	}
	if cs.Success {
		parts[DimSuccess] = cs.FeedbackScore / 5.0
	} else {
		parts[DimSuccess] = 0.0
	}

	weights := c.effectiveWeights(request)
	total := 0.0
	for dim, value := range parts {
		total += weights[dim] * value
	}
	parts["total"] = total
	return parts
}

// effectiveWeights derives the per-call weight map, dropping the
// dimensions the request says nothing about.
func (c *Calculator) effectiveWeights(request *models.Request) map[string]float64 {
	// Style is never dropped: without a preference it still measures
	// event appropriateness of the case's dominant style.
	m := c.weights.Map()
	changed := false
	if !request.HasPriceBand() {
		m[DimPrice] = 0
		changed = true
	}
	if !request.HasCulture() {
		m[DimCulture] = 0
		changed = true
	}
	if len(request.RequiredDiets) == 0 {
		m[DimDietary] = 0
		changed = true
	}
	if !changed {
		return m
	}
	total := 0.0
	for _, v := range m {
		total += v
	}
	if total > 0 {
		for k, v := range m {
			m[k] = v / total
		}
	}
	return m
}

func (c *Calculator) eventSimilarity(a, b models.EventType, caseStyle models.CulinaryStyle) float64 {
	if a == b {
		// An exact event match still loses a little when the matched
		// menu's dominant style is off for the event.
		if caseStyle != "" && !c.kb.IsStyleAppropriateForEvent(caseStyle, a) {
			return 0.9
		}
		return 1.0
	}
	if s, ok := eventAffinity[[2]models.EventType{a, b}]; ok {
		return s
	}
	if s, ok := eventAffinity[[2]models.EventType{b, a}]; ok {
		return s
	}
	return 0.3
}

func (c *Calculator) seasonSimilarity(a, b models.Season) float64 {
	if a == b {
		return 1.0
	}
	if a == models.SeasonAll || b == models.SeasonAll {
		return 0.9
	}
	ia, ib := a.CyclicIndex(), b.CyclicIndex()
	if ia < 0 || ib < 0 {
		return 0.5
	}
	distance := ia - ib
	if distance < 0 {
		distance = -distance
	}
	if 4-distance < distance {
		distance = 4 - distance
	}
	switch distance {
	case 1:
		return 0.7
	case 2:
		return 0.3
	}
	return 0.5
}

func (c *Calculator) priceSimilarity(request *models.Request, casePrice float64) float64 {
	min, max := request.PriceMin, request.PriceMax
	if max <= 0 {
		// Open-ended band: anything at or above the minimum fits.
		max = casePrice
		if casePrice < min {
			max = min
		}
	}
	if min <= casePrice && casePrice <= max {
		return 1.0
	}
	var distance float64
	if casePrice < min {
		distance = min - casePrice
	} else {
		distance = casePrice - max
	}
	tolerance := (max - min) * 0.2
	if tolerance <= 0 {
		tolerance = 10
	}
	s := 1 - distance/tolerance
	if s < 0 {
		return 0
	}
	return s
}

func (c *Calculator) styleSimilarity(request *models.Request, caseStyle models.CulinaryStyle) float64 {
	reqStyle := request.PreferredStyle
	if reqStyle == "" && caseStyle == "" {
		return 0.8
	}
	if reqStyle != "" && reqStyle == caseStyle {
		return 1.0
	}
	if reqStyle == "" {
		if c.kb.IsStyleAppropriateForEvent(caseStyle, request.EventType) {
			return 0.9
		}
		return 0.5
	}
	if caseStyle != "" {
		reqFits := c.kb.IsStyleAppropriateForEvent(reqStyle, request.EventType)
		caseFits := c.kb.IsStyleAppropriateForEvent(caseStyle, request.EventType)
		switch {
		case reqFits && caseFits:
			return 0.7
		case caseFits:
			return 0.5
		}
		return 0.3
	}
	return 0.5
}

func (c *Calculator) culturalSimilarity(req, cs models.CulturalTradition) float64 {
	if req == "" {
		return 0.8
	}
	if req == cs {
		return 1.0
	}
	if cs == "" {
		return 0.6
	}
	return c.CulturalAffinity(req, cs)
}

// CulturalAffinity scores how related two distinct traditions are.
// When an embedder is configured its cosine similarity refines the
// lookup table; otherwise the table alone decides.
func (c *Calculator) CulturalAffinity(a, b models.CulturalTradition) float64 {
	if a == b {
		return 1.0
	}
	base := 0.3
	if s, ok := cultureAffinity[[2]models.CulturalTradition{a, b}]; ok {
		base = s
	} else if s, ok := cultureAffinity[[2]models.CulturalTradition{b, a}]; ok {
		base = s
	}
	if c.embedder == nil {
		return base
	}
	semantic := c.embedder.CultureSimilarity(a, b, c.kb)
	// Blend, keeping the curated table dominant.
	return 0.7*base + 0.3*semantic
}

// RelatedCultures returns the traditions related to the target at or
// above the threshold, best first.
func (c *Calculator) RelatedCultures(target models.CulturalTradition, threshold float64) []models.CulturalTradition {
	type scored struct {
		culture models.CulturalTradition
		score   float64
	}
	var related []scored
	seen := map[models.CulturalTradition]bool{target: true}
	consider := func(culture models.CulturalTradition, score float64) {
		if seen[culture] || score < threshold {
			return
		}
		seen[culture] = true
		related = append(related, scored{culture, score})
	}
	for pair, score := range cultureAffinity {
		if pair[0] == target {
			consider(pair[1], score)
		}
		if pair[1] == target {
			consider(pair[0], score)
		}
	}
	sort.Slice(related, func(i, j int) bool { return related[i].score > related[j].score })
	out := make([]models.CulturalTradition, len(related))
	for i, r := range related {
		out[i] = r.culture
	}
	return out
}

func (c *Calculator) dietarySimilarity(required []string, menu *models.Menu) float64 {
	if len(required) == 0 {
		return 1.0
	}
	satisfied := menu.DietsSatisfied()
	fulfilled := 0
	for _, diet := range required {
		if satisfied[diet] {
			fulfilled++
		}
	}
	if fulfilled == len(required) {
		return 1.0
	}
	if fulfilled == 0 {
		return 0.1
	}
	return float64(fulfilled) / float64(len(required)) * 0.8
}

func (c *Calculator) guestsSimilarity(reqGuests, caseGuests int, menu *models.Menu) float64 {
	if reqGuests > menu.MaxCapacity() {
		return 0.2
	}
	if reqGuests <= 0 || caseGuests <= 0 {
		return 0.5
	}
	lo, hi := reqGuests, caseGuests
	if lo > hi {
		lo, hi = hi, lo
	}
	return float64(lo) / float64(hi)
}

// wineSimilarity compares wine preferences, and when alcohol is wanted
// also checks that the matched menu actually serves it: a case flagged
// for wine whose stored beverage is alcohol-free, or carries no
// subtype to pair against, scores below a full match.
func (c *Calculator) wineSimilarity(reqWine bool, cs *models.Case) float64 {
	if reqWine != cs.Request.WantsWine {
		return 0.5
	}
	if !reqWine {
		return 1.0
	}
	if !cs.Menu.Beverage.Alcoholic {
		return 0.4
	}
	if cs.Menu.Beverage.Subtype == "" {
		return 0.8
	}
	return 1.0
}
