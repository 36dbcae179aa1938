package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traiteur/internal/models"
)

// overbudgetRequest closely matches the stored corporate failure,
// price band included.
func overbudgetRequest() *models.Request {
	return &models.Request{
		ID:        "req-overbudget",
		EventType: models.EventCorporate,
		Season:    models.SeasonWinter,
		Guests:    40,
		PriceMin:  40,
		PriceMax:  60,
		WantsWine: true,
	}
}

func TestRetrieveRanksAndCaps(t *testing.T) {
	f := newFixture(t)
	results := f.retriever().Retrieve(weddingRequest(), 3)

	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 3)
	for i, r := range results {
		assert.Equal(t, i+1, r.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].Similarity, r.Similarity)
		}
		assert.GreaterOrEqual(t, r.Similarity, 0.0)
		assert.LessOrEqual(t, r.Similarity, 1.0)
	}
}

func TestRetrieveSkipsNegativeCases(t *testing.T) {
	f := newFixture(t)
	results := f.retriever().Retrieve(overbudgetRequest(), 10)

	for _, r := range results {
		if r.Case.Negative {
			t.Errorf("retrieved negative case %s", r.Case.ID)
		}
	}
}

func TestRetrieveFiltersRestrictedIngredients(t *testing.T) {
	f := newFixture(t)
	req := weddingRequest()
	req.RestrictedIngredients = []string{"beef", "burrata"}

	results := f.retriever().Retrieve(req, 10)
	for _, r := range results {
		assert.False(t, r.Case.Menu.ContainsAnyIngredient(req.RestrictedIngredients),
			"case %s contains a restricted ingredient", r.Case.ID)
	}
}

func TestRetrieveDietFallbackKeepsCandidates(t *testing.T) {
	f := newFixture(t)
	req := weddingRequest()
	req.RequiredDiets = []string{"vegan"}

	// No stored wedding menu is vegan; the dietary filter must fall
	// back so the adapter gets material to substitute on.
	results := f.retriever().Retrieve(req, 5)
	assert.NotEmpty(t, results)
}

func TestRetrieveCulturalMatchBoost(t *testing.T) {
	f := newFixture(t)
	req := &models.Request{
		ID:                 "req-congress-jp",
		EventType:          models.EventCongress,
		Season:             models.SeasonAll,
		Guests:             140,
		PriceMin:           30,
		PriceMax:           50,
		WantsWine:          true,
		CulturalPreference: models.CultureJapanese,
	}
	results := f.retriever().Retrieve(req, 5)
	require.NotEmpty(t, results)

	top := results[0]
	assert.Equal(t, "case-congress-japanese", top.Case.ID)
	assert.Equal(t, 1.0, top.Details["cultural_match"])
}

func TestRetrieveDiverseKeepsBestFirst(t *testing.T) {
	f := newFixture(t)
	r := f.retriever()
	req := weddingRequest()

	plain := r.Retrieve(req, 2)
	diverse := r.RetrieveDiverse(req, 2, 0.3)

	require.NotEmpty(t, plain)
	require.NotEmpty(t, diverse)
	assert.LessOrEqual(t, len(diverse), 2)
	assert.Equal(t, plain[0].Case.ID, diverse[0].Case.ID)

	seen := map[string]bool{}
	for i, d := range diverse {
		assert.Equal(t, i+1, d.Rank)
		if seen[d.Case.ID] {
			t.Errorf("case %s selected twice", d.Case.ID)
		}
		seen[d.Case.ID] = true
	}
}

func TestCheckNegatives(t *testing.T) {
	f := newFixture(t)
	r := f.retriever()

	warnings := r.CheckNegatives(overbudgetRequest())
	require.NotEmpty(t, warnings)
	assert.Equal(t, "case-corporate-overbudget", warnings[0].Case.ID)
	assert.GreaterOrEqual(t, warnings[0].Similarity, 0.80)

	// A wedding request bears no resemblance to the stored failure.
	assert.Empty(t, r.CheckNegatives(weddingRequest()))
}

func TestStatistics(t *testing.T) {
	f := newFixture(t)
	stats := f.retriever().Statistics(weddingRequest())

	assert.Equal(t, f.store.Len(), stats.TotalCases)
	assert.GreaterOrEqual(t, stats.MaxSimilarity, stats.AvgSimilarity)
	assert.GreaterOrEqual(t, stats.AvgSimilarity, stats.MinSimilarity)
	assert.LessOrEqual(t, stats.AboveThreshold, stats.TotalCases)
	assert.Len(t, stats.TopSimilarities, 5)
}
