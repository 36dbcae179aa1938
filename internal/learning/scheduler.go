package learning

import (
	"math"
	"time"
)

// SchedulerKind selects how the learning rate decays over iterations.
type SchedulerKind string

const (
	SchedulerConstant    SchedulerKind = ""
	SchedulerExponential SchedulerKind = "exponential"
	SchedulerLinear      SchedulerKind = "linear"
	SchedulerStep        SchedulerKind = "step"
)

// Linear decay reaches the minimum rate after this many iterations;
// step decay drops the rate every stepSize iterations.
const (
	linearHorizon = 100
	stepSize      = 10
)

func (l *Learner) updateLearningRate() {
	if l.cfg.Scheduler == SchedulerConstant {
		return
	}

	old := l.learningRate
	switch l.cfg.Scheduler {
	case SchedulerExponential:
		l.learningRate = l.initialRate * math.Pow(l.cfg.DecayRate, float64(l.iteration))
		if l.learningRate < l.cfg.MinRate {
			l.learningRate = l.cfg.MinRate
		}
	case SchedulerLinear:
		progress := float64(l.iteration) / linearHorizon
		if progress > 1 {
			progress = 1
		}
		l.learningRate = l.initialRate - (l.initialRate-l.cfg.MinRate)*progress
	case SchedulerStep:
		l.learningRate = l.initialRate * math.Pow(l.cfg.DecayRate, float64(l.iteration/stepSize))
		if l.learningRate < l.cfg.MinRate {
			l.learningRate = l.cfg.MinRate
		}
	}

	if diff := l.learningRate - old; diff > 0.0001 || diff < -0.0001 {
		l.adjustments = append(l.adjustments, Adjustment{
			Timestamp: time.Now(),
			Weight:    "learning_rate",
			Delta:     diff,
			Reason:    string(l.cfg.Scheduler) + " schedule",
		})
	}
}

