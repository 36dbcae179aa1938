package cycle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traiteur/internal/casebase"
	"traiteur/internal/models"
)

func TestAdaptProducesRankedProposals(t *testing.T) {
	f := newFixture(t)
	req := weddingRequest()
	retrieved := f.retriever().Retrieve(req, 5)
	results := f.adapter().Adapt(retrieved, req, 3)

	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 3)
	for i, r := range results {
		assert.GreaterOrEqual(t, r.PostSimilarity, 0.0)
		assert.LessOrEqual(t, r.PostSimilarity, 1.0)
		assert.NotEmpty(t, r.PriceBucket)
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].PostSimilarity, r.PostSimilarity)
		}
	}
}

func TestAdaptSubstitutesForRequiredDiets(t *testing.T) {
	f := newFixture(t)
	req := &models.Request{
		ID:            "req-vegan",
		EventType:     models.EventFamiliar,
		Season:        models.SeasonAll,
		Guests:        30,
		PriceMin:      15,
		PriceMax:      40,
		RequiredDiets: []string{"vegan"},
	}
	retrieved := f.retriever().Retrieve(req, 5)
	require.NotEmpty(t, retrieved)

	results := f.adapter().Adapt(retrieved, req, 3)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.True(t, r.Menu.SatisfiesDiets(req.RequiredDiets),
			"menu %s is not vegan after adaptation", r.Menu.ID)
	}
}

func TestAdaptLeavesSourceCaseUntouched(t *testing.T) {
	f := newFixture(t)
	req := weddingRequest()
	req.RequiredDiets = []string{"vegetarian"}

	retrieved := f.retriever().Retrieve(req, 5)
	require.NotEmpty(t, retrieved)

	before := make(map[string][]string)
	for _, r := range retrieved {
		before[r.Case.ID] = append([]string(nil), r.Case.Menu.Main.Ingredients...)
	}

	f.adapter().Adapt(retrieved, req, 3)

	for _, r := range retrieved {
		assert.Equal(t, before[r.Case.ID], r.Case.Menu.Main.Ingredients,
			"adaptation mutated stored case %s", r.Case.ID)
	}
}

func TestAdaptRejectsRestrictedIngredients(t *testing.T) {
	f := newFixture(t)
	req := weddingRequest()
	req.RestrictedIngredients = []string{"beef", "shellfish", "prawns"}

	retrieved := f.retriever().Retrieve(req, 5)
	results := f.adapter().Adapt(retrieved, req, 3)
	for _, r := range results {
		assert.False(t, r.Menu.ContainsAnyIngredient(req.RestrictedIngredients),
			"menu %s contains a restricted ingredient", r.Menu.ID)
	}
}

func TestAdaptBeverageFollowsWinePreference(t *testing.T) {
	f := newFixture(t)

	for _, wantsWine := range []bool{true, false} {
		req := weddingRequest()
		req.WantsWine = wantsWine

		retrieved := f.retriever().Retrieve(req, 5)
		results := f.adapter().Adapt(retrieved, req, 3)
		require.NotEmpty(t, results)
		for _, r := range results {
			assert.Equal(t, wantsWine, r.Menu.Beverage.Alcoholic,
				"menu %s beverage %s does not match wants_wine=%v",
				r.Menu.ID, r.Menu.Beverage.Name, wantsWine)
		}
	}
}

func TestAdaptWarnsOnResidualPriceGap(t *testing.T) {
	f := newFixture(t)
	req := weddingRequest()

	retrieved := f.retriever().Retrieve(req, 5)
	results := f.adapter().Adapt(retrieved, req, 3)
	for _, r := range results {
		if r.SourceCase == nil {
			continue
		}
		inBand := r.Menu.TotalPrice >= req.PriceMin && r.Menu.TotalPrice <= req.PriceMax
		if !inBand {
			assert.NotEmpty(t, r.Warnings,
				"menu %s is out of band at %.2f with no warning", r.Menu.ID, r.Menu.TotalPrice)
		}
	}
}

func TestAdaptConformingMenuIsUntouched(t *testing.T) {
	f := newFixture(t)
	source, ok := f.store.Get("case-wedding-classic")
	require.True(t, ok)

	// The case's own request is already satisfied by its menu, so the
	// pipeline must pass it through without a single change.
	req := source.Request
	retrieved := f.retriever().Retrieve(&req, 5)

	var match *RetrievalResult
	for i := range retrieved {
		if retrieved[i].Case.ID == source.ID {
			match = &retrieved[i]
			break
		}
	}
	require.NotNil(t, match, "the source case was not retrieved for its own request")

	results := f.adapter().Adapt([]RetrievalResult{*match}, &req, 1)
	require.Len(t, results, 1)

	r := results[0]
	assert.Empty(t, r.Notes)
	assert.Empty(t, r.Warnings)
	assert.Empty(t, r.Menu.Adaptations)
	assert.Equal(t, source.Menu.Starter.ID, r.Menu.Starter.ID)
	assert.Equal(t, source.Menu.Main.ID, r.Menu.Main.ID)
	assert.Equal(t, source.Menu.Dessert.ID, r.Menu.Dessert.ID)
	assert.Equal(t, source.Menu.Beverage.ID, r.Menu.Beverage.ID)
	assert.Equal(t, source.Menu.TotalPrice, r.Menu.TotalPrice)
}

func TestAdaptGeneratesWhenNothingRetrieved(t *testing.T) {
	f := newFixture(t)
	empty := casebase.NewStore()
	adapter := NewAdapter(f.catalog, empty, f.calc, f.kb, f.ingredients, rand.New(rand.NewSource(1)))

	req := &models.Request{
		ID:        "req-generated",
		EventType: models.EventCorporate,
		Season:    models.SeasonSummer,
		Guests:    50,
		PriceMin:  30,
		PriceMax:  70,
	}
	results := adapter.Adapt(nil, req, 2)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Nil(t, r.SourceCase)
		assert.InDelta(t, generatedMenuScore, r.AdaptationScore, 1e-9)
		assert.NotEmpty(t, r.Menu.Starter.ID)
		assert.NotEmpty(t, r.Menu.Main.ID)
		assert.NotEmpty(t, r.Menu.Dessert.ID)
		assert.GreaterOrEqual(t, r.Menu.TotalPrice, req.PriceMin)
		assert.LessOrEqual(t, r.Menu.TotalPrice, req.PriceMax)
	}
}
