package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"traiteur/internal/models"
)

// advance absorbs n neutral feedback rounds, enough to tick the
// iteration counter without moving any weight.
func advance(l *Learner, n int) {
	req := &models.Request{EventType: models.EventWedding, Guests: 80}
	for i := 0; i < n; i++ {
		l.UpdateFromFeedback(&models.Feedback{Score: 3.5}, req, nil)
	}
}

func TestConstantSchedulerKeepsTheRate(t *testing.T) {
	cfg := DefaultConfig()
	l := testLearner(cfg)

	advance(l, 25)
	assert.Equal(t, cfg.LearningRate, l.LearningRate())
}

func TestExponentialDecay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LearningRate = 0.1
	cfg.Scheduler = SchedulerExponential
	cfg.DecayRate = 0.5
	l := testLearner(cfg)

	advance(l, 1)
	assert.InDelta(t, 0.05, l.LearningRate(), 1e-9)

	advance(l, 1)
	assert.InDelta(t, 0.025, l.LearningRate(), 1e-9)

	// Deep into the schedule the floor holds.
	advance(l, 30)
	assert.Equal(t, cfg.MinRate, l.LearningRate())
}

func TestLinearDecay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LearningRate = 0.1
	cfg.Scheduler = SchedulerLinear
	cfg.MinRate = 0.01
	l := testLearner(cfg)

	advance(l, 50)
	assert.InDelta(t, 0.055, l.LearningRate(), 1e-9)

	advance(l, 100)
	assert.InDelta(t, cfg.MinRate, l.LearningRate(), 1e-9)
}

func TestStepDecay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LearningRate = 0.1
	cfg.Scheduler = SchedulerStep
	cfg.DecayRate = 0.5
	l := testLearner(cfg)

	advance(l, 9)
	assert.InDelta(t, 0.1, l.LearningRate(), 1e-9)

	advance(l, 1)
	assert.InDelta(t, 0.05, l.LearningRate(), 1e-9)

	advance(l, 10)
	assert.InDelta(t, 0.025, l.LearningRate(), 1e-9)
}
