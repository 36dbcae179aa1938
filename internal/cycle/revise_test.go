package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traiteur/internal/casebase"
	"traiteur/internal/models"
)

func catalogMenu(t *testing.T, c *casebase.Catalog, starterID, mainID, dessertID, beverageID string) models.Menu {
	t.Helper()
	starter, ok := c.Dish(starterID)
	require.True(t, ok, "missing dish %s", starterID)
	main, ok := c.Dish(mainID)
	require.True(t, ok, "missing dish %s", mainID)
	dessert, ok := c.Dish(dessertID)
	require.True(t, ok, "missing dish %s", dessertID)
	beverage, ok := c.Beverage(beverageID)
	require.True(t, ok, "missing beverage %s", beverageID)
	return models.NewMenu("menu-under-test", starter, main, dessert, beverage)
}

// mediterraneanMenu totals 40 with a cold starter.
func mediterraneanMenu(t *testing.T, c *casebase.Catalog) models.Menu {
	return catalogMenu(t, c, "st-gazpacho", "mn-paella", "ds-crema-catalana", "bv-albarino-white")
}

func TestReviseDropsOverBudgetMenus(t *testing.T) {
	f := newFixture(t)
	menu := mediterraneanMenu(t, f.catalog)
	req := &models.Request{
		ID: "req-tight", EventType: models.EventCorporate, Season: models.SeasonSummer,
		Guests: 40, PriceMin: 10, PriceMax: 25,
	}

	out := f.reviser(false).Revise([]AdaptationResult{{Menu: menu, AdaptationScore: 0.8}}, req)
	assert.Empty(t, out)
}

func TestReviseDropsDietViolations(t *testing.T) {
	f := newFixture(t)
	menu := mediterraneanMenu(t, f.catalog)
	req := &models.Request{
		ID: "req-vegan", EventType: models.EventCorporate, Season: models.SeasonSummer,
		Guests: 40, PriceMin: 30, PriceMax: 50,
		RequiredDiets: []string{"vegan"},
	}

	out := f.reviser(false).Revise([]AdaptationResult{{Menu: menu, AdaptationScore: 0.8}}, req)
	assert.Empty(t, out)
}

func TestReviseKeepsMenuWithFewWarnings(t *testing.T) {
	f := newFixture(t)
	menu := mediterraneanMenu(t, f.catalog)
	// Cold gazpacho in winter draws a temperature warning but nothing
	// worse.
	req := &models.Request{
		ID: "req-winter", EventType: models.EventCorporate, Season: models.SeasonWinter,
		Guests: 40, PriceMin: 30, PriceMax: 50,
	}

	out := f.reviser(false).Revise([]AdaptationResult{{Menu: menu, AdaptationScore: 0.8}}, req)
	require.Len(t, out, 1)
	assert.Equal(t, StatusValidWithWarnings, out[0].Status)
	assert.True(t, out[0].IsValid())

	hasTempWarning := false
	for _, issue := range out[0].Issues {
		if issue.Severity == SeverityWarning && issue.Category == "temperature" {
			hasTempWarning = true
		}
	}
	assert.True(t, hasTempWarning, "expected a temperature warning, got %+v", out[0].Issues)
}

func TestReviseStrictRejectsWarnings(t *testing.T) {
	f := newFixture(t)
	menu := mediterraneanMenu(t, f.catalog)
	req := &models.Request{
		ID: "req-winter-strict", EventType: models.EventCorporate, Season: models.SeasonWinter,
		Guests: 40, PriceMin: 30, PriceMax: 50,
	}

	proposals := []AdaptationResult{{Menu: menu, AdaptationScore: 0.8}}
	require.NotEmpty(t, f.reviser(false).Revise(proposals, req))
	assert.Empty(t, f.reviser(true).Revise(proposals, req))
}

func TestReviseSortsByScore(t *testing.T) {
	f := newFixture(t)
	req := weddingRequest()
	retrieved := f.retriever().Retrieve(req, 5)
	proposals := f.adapter().Adapt(retrieved, req, 3)

	out := f.reviser(false).Revise(proposals, req)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Score, out[i].Score)
	}
	for _, v := range out {
		assert.GreaterOrEqual(t, v.Score, 0.0)
		assert.LessOrEqual(t, v.Score, 100.0)
	}
}

func TestRevisePrefixesAdaptationNotes(t *testing.T) {
	f := newFixture(t)
	menu := mediterraneanMenu(t, f.catalog)
	req := &models.Request{
		ID: "req-notes", EventType: models.EventCorporate, Season: models.SeasonSummer,
		Guests: 40, PriceMin: 30, PriceMax: 50,
	}

	out := f.reviser(false).Revise([]AdaptationResult{{
		Menu: menu, AdaptationScore: 0.8,
		Notes: []string{"swapped the dessert"},
	}}, req)
	require.NotEmpty(t, out)
	assert.Contains(t, out[0].Explanations, "adaptation: swapped the dessert")
}

func TestRejectionReason(t *testing.T) {
	v := ValidationResult{Issues: []ValidationIssue{
		{Severity: SeverityWarning, Category: "price", Message: "a bit cheap"},
		{Severity: SeverityError, Category: "diet", Message: "main is not vegan"},
	}}
	if got := v.RejectionReason(); got != "main is not vegan" {
		t.Errorf("RejectionReason() = %q, want first error message", got)
	}

	v.Issues = v.Issues[:1]
	if got := v.RejectionReason(); got != "rejected on accumulated warnings" {
		t.Errorf("RejectionReason() = %q", got)
	}
}
