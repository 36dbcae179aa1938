package cycle

import (
	"math/rand"
	"testing"

	"traiteur/internal/casebase"
	"traiteur/internal/knowledge"
	"traiteur/internal/models"
	"traiteur/internal/similarity"
)

// fixture wires the sample catalog and seed cases into every cycle
// stage so individual tests only pick the piece they need.
type fixture struct {
	catalog     *casebase.Catalog
	store       *casebase.Store
	calc        *similarity.Calculator
	kb          *knowledge.Base
	ingredients *knowledge.Ingredients
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog := casebase.SampleCatalog()
	store := casebase.NewStore()
	for _, c := range casebase.SeedCases(catalog) {
		store.Add(c)
	}
	kb := knowledge.NewBase()
	return &fixture{
		catalog:     catalog,
		store:       store,
		calc:        similarity.NewCalculator(similarity.DefaultWeights(), kb, nil),
		kb:          kb,
		ingredients: knowledge.NewIngredients(),
	}
}

func (f *fixture) retriever() *Retriever {
	return NewRetriever(f.store, f.calc, f.ingredients)
}

func (f *fixture) adapter() *Adapter {
	return NewAdapter(f.catalog, f.store, f.calc, f.kb, f.ingredients, rand.New(rand.NewSource(1)))
}

func (f *fixture) reviser(strict bool) *Reviser {
	return NewReviser(f.kb, f.ingredients, strict)
}

func (f *fixture) retainer() *Retainer {
	return NewRetainer(f.store, f.calc)
}

func weddingRequest() *models.Request {
	return &models.Request{
		ID:        "req-wedding",
		EventType: models.EventWedding,
		Season:    models.SeasonSummer,
		Guests:    110,
		PriceMin:  40,
		PriceMax:  70,
		WantsWine: true,
	}
}
