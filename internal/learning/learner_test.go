package learning

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traiteur/internal/knowledge"
	"traiteur/internal/models"
	"traiteur/internal/similarity"
)

func testLearner(cfg Config) *Learner {
	return NewLearner(similarity.DefaultWeights(), knowledge.NewBase(), cfg)
}

func weightsSum(w similarity.Weights) float64 {
	var sum float64
	for _, v := range w.Map() {
		sum += v
	}
	return sum
}

func TestBadPriceFeedbackShiftsWeightToPrice(t *testing.T) {
	l := testLearner(DefaultConfig())
	before := l.Weights().Map()

	req := &models.Request{EventType: models.EventWedding, Guests: 80, PriceMin: 30, PriceMax: 50}
	applied := l.UpdateFromFeedback(&models.Feedback{Score: 2.0, PriceScore: 1.5}, req, nil)

	assert.Greater(t, applied[similarity.DimPrice], 0.0)
	assert.Less(t, applied[similarity.DimSeason], 0.0)

	after := l.Weights().Map()
	assert.Greater(t, after[similarity.DimPrice], before[similarity.DimPrice])
	assert.Less(t, after[similarity.DimSeason], before[similarity.DimSeason])
	assert.InDelta(t, 1.0, weightsSum(l.Weights()), 1e-6)
}

func TestDietaryFailureGetsTheBiggestCorrection(t *testing.T) {
	l := testLearner(DefaultConfig())
	before := l.Weights().Map()

	req := &models.Request{
		EventType: models.EventFamiliar, Guests: 30,
		RequiredDiets: []string{"vegan"},
	}
	applied := l.UpdateFromFeedback(&models.Feedback{Score: 1.5, DietaryScore: 1.0}, req, nil)

	require.Contains(t, applied, similarity.DimDietary)
	assert.InDelta(t, 0.12*l.cfg.LearningRate, applied[similarity.DimDietary], 1e-9)
	assert.Greater(t, l.Weights().Map()[similarity.DimDietary], before[similarity.DimDietary])
}

func TestGoodFeedbackReinforcesWhatWorked(t *testing.T) {
	l := testLearner(DefaultConfig())

	req := &models.Request{
		EventType: models.EventCongress, Guests: 150,
		PriceMin: 30, PriceMax: 50,
		CulturalPreference: models.CultureJapanese,
	}
	applied := l.UpdateFromFeedback(&models.Feedback{
		Score: 4.6, PriceScore: 4.5, CulturalScore: 5.0, Success: true,
	}, req, nil)

	assert.Greater(t, applied[similarity.DimCulture], 0.0)
	assert.Greater(t, applied[similarity.DimPrice], 0.0)
	assert.Greater(t, applied[similarity.DimGuests], 0.0, "large events reinforce the guest dimension")
	assert.InDelta(t, 1.0, weightsSum(l.Weights()), 1e-6)
}

func TestMiddlingFeedbackNudgesOnlyTheWorstDimension(t *testing.T) {
	l := testLearner(DefaultConfig())

	req := &models.Request{EventType: models.EventWedding, Guests: 80, PriceMin: 30, PriceMax: 50}
	applied := l.UpdateFromFeedback(&models.Feedback{
		Score: 3.5, PriceScore: 3.0, CulturalScore: 3.4,
	}, req, nil)

	require.Len(t, applied, 1)
	assert.InDelta(t, 0.03*l.cfg.LearningRate, applied[similarity.DimPrice], 1e-9)
}

func TestNeutralFeedbackLeavesWeightsAlone(t *testing.T) {
	l := testLearner(DefaultConfig())
	before := l.Weights().Map()

	req := &models.Request{EventType: models.EventWedding, Guests: 80}
	applied := l.UpdateFromFeedback(&models.Feedback{Score: 3.5}, req, nil)

	assert.Empty(t, applied)
	after := l.Weights().Map()
	for dim, v := range before {
		assert.InDelta(t, v, after[dim], 1e-9, dim)
	}
	assert.Equal(t, 1, l.Iteration())
}

func TestAdjustmentsAreClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LearningRate = 10 // force deltas past both bounds
	l := testLearner(cfg)
	before := l.Weights().Map()

	req := &models.Request{EventType: models.EventWedding, Guests: 80, PriceMin: 30, PriceMax: 50}
	applied := l.UpdateFromFeedback(&models.Feedback{Score: 2.0, PriceScore: 1.0}, req, nil)

	assert.InDelta(t, cfg.MaxWeight-before[similarity.DimPrice], applied[similarity.DimPrice], 1e-9)
	assert.InDelta(t, cfg.MinWeight-before[similarity.DimSeason], applied[similarity.DimSeason], 1e-9)
}

func TestHistoryGrowsWithEveryUpdate(t *testing.T) {
	l := testLearner(DefaultConfig())
	require.Len(t, l.History(), 1)

	req := &models.Request{EventType: models.EventWedding, Guests: 80, PriceMin: 30, PriceMax: 50}
	for i := 0; i < 3; i++ {
		l.UpdateFromFeedback(&models.Feedback{Score: 2.0, PriceScore: 1.0}, req, nil)
	}

	history := l.History()
	require.Len(t, history, 4)
	assert.Equal(t, 3, history[3].Iteration)
	assert.Equal(t, 3, l.Iteration())
}

func TestSummarize(t *testing.T) {
	l := testLearner(DefaultConfig())
	req := &models.Request{EventType: models.EventWedding, Guests: 80, PriceMin: 30, PriceMax: 50}
	l.UpdateFromFeedback(&models.Feedback{Score: 2.0, PriceScore: 1.0}, req, nil)
	l.UpdateFromFeedback(&models.Feedback{Score: 2.0, PriceScore: 1.0}, req, nil)

	s := l.Summarize()
	assert.Equal(t, 2, s.TotalIterations)
	assert.LessOrEqual(t, len(s.MostChanged), 3)
	assert.Positive(t, s.TotalAdjustments)
	assert.Equal(t, similarity.DimPrice, s.MostChanged[0].Weight)
	assert.Greater(t, s.WeightChanges[similarity.DimPrice].Change, 0.0)
}

func TestSaveHistory(t *testing.T) {
	l := testLearner(DefaultConfig())
	req := &models.Request{EventType: models.EventWedding, Guests: 80, PriceMin: 30, PriceMax: 50}
	l.UpdateFromFeedback(&models.Feedback{Score: 2.0, PriceScore: 1.0}, req, nil)

	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, l.SaveHistory(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var data struct {
		Metadata struct {
			TotalIterations int `json:"total_iterations"`
		} `json:"metadata"`
		History []Snapshot `json:"history"`
	}
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Equal(t, 1, data.Metadata.TotalIterations)
	assert.Len(t, data.History, 2)
}
