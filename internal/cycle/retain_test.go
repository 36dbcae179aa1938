package cycle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traiteur/internal/models"
)

func TestEvaluateFailureIsAlwaysKept(t *testing.T) {
	f := newFixture(t)
	c, ok := f.store.Get("case-wedding-classic")
	require.True(t, ok)

	d := f.retainer().Evaluate(&c.Request, &c.Menu, &models.Feedback{Score: 2.0, Success: false})
	assert.True(t, d.Retain)
	assert.Equal(t, ActionAddNegative, d.Action)
}

func TestEvaluateMiddlingFeedbackIsDiscarded(t *testing.T) {
	f := newFixture(t)
	c, ok := f.store.Get("case-wedding-classic")
	require.True(t, ok)

	d := f.retainer().Evaluate(&c.Request, &c.Menu, &models.Feedback{Score: 3.2, Success: true})
	assert.False(t, d.Retain)
	assert.Equal(t, ActionDiscard, d.Action)
}

func TestEvaluateNovelEpisodeIsAdded(t *testing.T) {
	f := newFixture(t)
	menu := catalogMenu(t, f.catalog, "st-pumpkin-cream", "mn-pad-thai", "ds-tiramisu", "bv-sparkling-water")
	req := &models.Request{
		ID: "req-novel", EventType: models.EventChristening, Season: models.SeasonWinter,
		Guests: 200, PriceMin: 25, PriceMax: 40,
	}

	d := f.retainer().Evaluate(req, &menu, &models.Feedback{Score: 4.5, Success: true})
	assert.True(t, d.Retain)
	assert.Equal(t, ActionAddNew, d.Action)
	assert.Less(t, d.Similarity, 0.85)
}

func TestEvaluateNearDuplicate(t *testing.T) {
	f := newFixture(t)
	c, ok := f.store.Get("case-wedding-classic")
	require.True(t, ok)

	// Same request, same menu, better feedback: update in place.
	better := f.retainer().Evaluate(&c.Request, &c.Menu, &models.Feedback{Score: 5.0, Success: true})
	assert.Equal(t, ActionUpdateExisting, better.Action)
	assert.Equal(t, c.ID, better.MostSimilarCase.ID)

	// Worse feedback on the same episode adds nothing.
	worse := f.retainer().Evaluate(&c.Request, &c.Menu, &models.Feedback{Score: 4.0, Success: true})
	assert.Equal(t, ActionDiscard, worse.Action)
}

func TestRetainStoresNegativeCase(t *testing.T) {
	f := newFixture(t)
	c, ok := f.store.Get("case-wedding-classic")
	require.True(t, ok)
	before := f.store.Len()

	d, stored := f.retainer().Retain(&c.Request, &c.Menu, &models.Feedback{
		Score: 1.5, Success: false, Comment: "guests went home hungry",
	})
	require.NotNil(t, stored)
	assert.Equal(t, ActionAddNegative, d.Action)
	assert.Equal(t, before+1, f.store.Len())
	assert.True(t, stored.Negative)
	assert.Equal(t, models.SourceRetained, stored.Source)
	assert.True(t, strings.HasPrefix(stored.ID, "case-"))
	assert.Equal(t, "guests went home hungry", stored.FeedbackComments)
}

func TestRetainUpdatesExistingCase(t *testing.T) {
	f := newFixture(t)
	c, ok := f.store.Get("case-wedding-classic")
	require.True(t, ok)
	before := f.store.Len()

	d, updated := f.retainer().Retain(&c.Request, &c.Menu, &models.Feedback{Score: 5.0, Success: true})
	require.NotNil(t, updated)
	assert.Equal(t, ActionUpdateExisting, d.Action)
	assert.Equal(t, before, f.store.Len())
	assert.Equal(t, "case-wedding-classic", updated.ID)

	stored, ok := f.store.Get("case-wedding-classic")
	require.True(t, ok)
	assert.Equal(t, 5.0, stored.FeedbackScore)
	assert.Equal(t, 1, stored.UsageCount)
}

func TestUpdateFeedbackWeightedAverage(t *testing.T) {
	f := newFixture(t)
	r := f.retainer()

	first, err := r.UpdateFeedback("case-wedding-classic", &models.Feedback{Score: 3.0, Success: true})
	require.NoError(t, err)
	assert.Equal(t, 3.0, first.FeedbackScore)
	assert.Equal(t, 1, first.UsageCount)

	second, err := r.UpdateFeedback("case-wedding-classic", &models.Feedback{
		Score: 5.0, Success: false, Comment: "second time around",
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, second.FeedbackScore, 1e-9)
	assert.False(t, second.Success)
	assert.Equal(t, "second time around", second.FeedbackComments)

	_, err = r.UpdateFeedback("case-missing", &models.Feedback{Score: 4.0})
	assert.Error(t, err)
}
