package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traiteur/internal/casebase"
	"traiteur/internal/cycle"
	"traiteur/internal/knowledge"
	"traiteur/internal/learning"
	"traiteur/internal/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	catalog := casebase.SampleCatalog()
	store := casebase.NewStore()
	for _, c := range casebase.SeedCases(catalog) {
		store.Add(c)
	}
	cfg := DefaultConfig()
	cfg.Seed = 1
	return New(catalog, store, knowledge.NewBase(), knowledge.NewIngredients(),
		nil, cfg, learning.DefaultConfig(), nil)
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

func TestProposeReturnsValidMenus(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.Propose(weddingRequest())
	require.NoError(t, err)
	require.NotEmpty(t, res.Proposals)
	assert.LessOrEqual(t, len(res.Proposals), 3)

	for _, p := range res.Proposals {
		assert.NotEmpty(t, p.Menu.Starter.ID)
		assert.NotEmpty(t, p.Menu.Main.ID)
		assert.NotEmpty(t, p.Menu.Dessert.ID)
		assert.GreaterOrEqual(t, p.Score, 0.0)
		assert.LessOrEqual(t, p.Score, 100.0)
		assert.Contains(t, []cycle.ValidationStatus{
			cycle.StatusValid, cycle.StatusValidWithWarnings,
		}, p.Status)
	}
}

func TestProposePremiumWeddingBudget(t *testing.T) {
	e := newTestEngine(t)
	require.GreaterOrEqual(t, e.Store().Len(), 10)

	req := &models.Request{
		ID:        "req-wedding-gala",
		EventType: models.EventWedding,
		Season:    models.SeasonSummer,
		Guests:    100,
		PriceMin:  80,
		PriceMax:  120,
		WantsWine: true,
	}
	res, err := e.Propose(req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Proposals)

	inBand := false
	for _, p := range res.Proposals {
		if p.Menu.TotalPrice >= req.PriceMin && p.Menu.TotalPrice <= req.PriceMax {
			inBand = true
		}
	}
	assert.True(t, inBand, "no proposal priced within [%.0f, %.0f]", req.PriceMin, req.PriceMax)
}

func TestProposeRespectsDietsAndRestrictions(t *testing.T) {
	e := newTestEngine(t)
	req := &models.Request{
		ID:                    "req-vegan",
		EventType:             models.EventFamiliar,
		Season:                models.SeasonAll,
		Guests:                30,
		PriceMin:              15,
		PriceMax:              40,
		RequiredDiets:         []string{"vegan"},
		RestrictedIngredients: []string{"peanuts"},
	}

	res, err := e.Propose(req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Proposals)
	for _, p := range res.Proposals {
		assert.True(t, p.Menu.SatisfiesDiets(req.RequiredDiets),
			"menu %s is not vegan", p.Menu.ID)
		assert.False(t, p.Menu.ContainsAnyIngredient(req.RestrictedIngredients))
	}
}

func TestProposeImpossibleBudget(t *testing.T) {
	e := newTestEngine(t)
	req := weddingRequest()
	req.PriceMin = 1
	req.PriceMax = 5

	_, err := e.Propose(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoProposals))

	var noProposals *NoProposalsError
	require.True(t, errors.As(err, &noProposals))
	assert.NotEmpty(t, noProposals.Reasons)
}

func TestProposeRejectsInvalidRequest(t *testing.T) {
	e := newTestEngine(t)
	req := weddingRequest()
	req.Guests = 0

	_, err := e.Propose(req)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoProposals))
}

func TestProposeWarnsAboutSimilarFailures(t *testing.T) {
	e := newTestEngine(t)
	req := &models.Request{
		ID:        "req-risky",
		EventType: models.EventCorporate,
		Season:    models.SeasonWinter,
		Guests:    40,
		PriceMin:  40,
		PriceMax:  60,
		WantsWine: true,
	}

	res, err := e.Propose(req)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Warnings)
}

func TestSubmitFeedbackUpdatesWeightsAndPool(t *testing.T) {
	e := newTestEngine(t)
	c, err := e.Case("case-wedding-classic")
	require.NoError(t, err)

	var notified []learning.Snapshot
	e.Subscribe(func(s learning.Snapshot) { notified = append(notified, s) })

	res, err := e.SubmitFeedback(&c.Request, &c.Menu, &models.Feedback{
		Score: 5.0, PriceScore: 5.0, Success: true,
	})
	require.NoError(t, err)
	assert.Equal(t, cycle.ActionUpdateExisting, res.Retention.Action)
	require.NotNil(t, res.RetainedCase)
	assert.Equal(t, "case-wedding-classic", res.RetainedCase.ID)

	sum := 0.0
	for _, v := range res.Weights.Map() {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-6)

	require.Len(t, notified, 1)
	assert.Equal(t, 1, notified[0].Iteration)
}

func TestSubmitFeedbackRejectsOutOfScaleScore(t *testing.T) {
	e := newTestEngine(t)
	c, err := e.Case("case-wedding-classic")
	require.NoError(t, err)

	_, err = e.SubmitFeedback(&c.Request, &c.Menu, &models.Feedback{Score: 0})
	assert.Error(t, err)
}

func TestUpdateCaseFeedback(t *testing.T) {
	e := newTestEngine(t)

	c, err := e.UpdateCaseFeedback("case-wedding-classic", &models.Feedback{Score: 4.0, Success: true})
	require.NoError(t, err)
	assert.Equal(t, 4.0, c.FeedbackScore)

	_, err = e.UpdateCaseFeedback("case-missing", &models.Feedback{Score: 4.0})
	assert.True(t, errors.Is(err, ErrUnknownCase))
}

func TestCaseAccessors(t *testing.T) {
	e := newTestEngine(t)

	assert.NotEmpty(t, e.Cases())
	assert.Equal(t, e.Store().Len(), len(e.Cases()))

	_, err := e.Case("case-missing")
	assert.True(t, errors.Is(err, ErrUnknownCase))

	stats := e.CaseStats()
	assert.Equal(t, e.Store().Len(), stats.TotalCases)
}
