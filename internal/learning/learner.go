// Package learning adjusts the similarity weights from client
// feedback. The approach is incremental feature weighting: after each
// rated menu the weights of the criteria that mattered move a little,
// bounded per dimension and renormalized to sum one.
package learning

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"traiteur/internal/knowledge"
	"traiteur/internal/models"
	"traiteur/internal/similarity"
)

// Adjustment records one weight nudge.
type Adjustment struct {
	Timestamp     time.Time `json:"timestamp"`
	Weight        string    `json:"weight"`
	Delta         float64   `json:"delta"`
	Reason        string    `json:"reason"`
	FeedbackScore float64   `json:"feedback_score"`
}

// Snapshot freezes the learner state after one update.
type Snapshot struct {
	Timestamp     time.Time          `json:"timestamp"`
	Iteration     int                `json:"iteration"`
	Weights       map[string]float64 `json:"weights"`
	FeedbackScore float64            `json:"feedback_score"`
	Adjustments   []string           `json:"adjustments"`
}

// Config tunes the learner.
type Config struct {
	LearningRate float64       `yaml:"learning_rate"`
	MinWeight    float64       `yaml:"min_weight"`
	MaxWeight    float64       `yaml:"max_weight"`
	Scheduler    SchedulerKind `yaml:"scheduler"`
	DecayRate    float64       `yaml:"decay_rate"`
	MinRate      float64       `yaml:"min_rate"`
}

// DefaultConfig returns the learner defaults.
func DefaultConfig() Config {
	return Config{
		LearningRate: 0.05,
		MinWeight:    0.02,
		MaxWeight:    0.50,
		Scheduler:    SchedulerConstant,
		DecayRate:    0.95,
		MinRate:      0.001,
	}
}

// Learner adapts the similarity weights to observed satisfaction.
type Learner struct {
	weights similarity.Weights
	kb      *knowledge.Base
	cfg     Config

	initialRate  float64
	learningRate float64
	iteration    int

	history     []Snapshot
	adjustments []Adjustment
}

// NewLearner starts from the given weights, normalized.
func NewLearner(initial similarity.Weights, kb *knowledge.Base, cfg Config) *Learner {
	l := &Learner{
		weights:      initial.Normalized(),
		kb:           kb,
		cfg:          cfg,
		initialRate:  cfg.LearningRate,
		learningRate: cfg.LearningRate,
	}
	l.record(0, []string{"initialized"})
	return l
}

// Weights returns the current weight set.
func (l *Learner) Weights() similarity.Weights { return l.weights }

// LearningRate returns the current, possibly decayed, rate.
func (l *Learner) LearningRate() float64 { return l.learningRate }

// Iteration returns how many feedback updates have been absorbed.
func (l *Learner) Iteration() int { return l.iteration }

// History returns the recorded snapshots, oldest first.
func (l *Learner) History() []Snapshot {
	return append([]Snapshot(nil), l.history...)
}

// UpdateFromFeedback moves the weights according to one rated menu and
// returns the applied deltas per dimension.
//
// Low overall scores raise the weight of whichever criterion failed
// (diets hardest, then price, culture, style, season), trading off
// against less critical ones. High scores gently reinforce what
// worked. Middling scores only fine-tune price.
func (l *Learner) UpdateFromFeedback(fb *models.Feedback, request *models.Request, menu *models.Menu) map[string]float64 {
	l.iteration++
	m := l.weights.Map()
	applied := make(map[string]float64)
	var reasons []string

	adjust := func(dim string, delta float64, reason string) {
		next := m[dim] + delta
		if next < l.cfg.MinWeight {
			next = l.cfg.MinWeight
		}
		if next > l.cfg.MaxWeight {
			next = l.cfg.MaxWeight
		}
		applied[dim] += next - m[dim]
		l.adjustments = append(l.adjustments, Adjustment{
			Timestamp:     time.Now(),
			Weight:        dim,
			Delta:         next - m[dim],
			Reason:        reason,
			FeedbackScore: fb.Score,
		})
		m[dim] = next
	}

	switch {
	case fb.Score < 3:
		if rated(fb.PriceScore) && fb.PriceScore < 3 {
			adjust(similarity.DimPrice, 0.10*l.learningRate, "price was critical and missed")
			adjust(similarity.DimSeason, -0.05*l.learningRate, "deprioritize season")
			reasons = append(reasons, "prioritize price")
		}
		if rated(fb.CulturalScore) && fb.CulturalScore < 3 && request.HasCulture() {
			adjust(similarity.DimCulture, 0.08*l.learningRate, "cultural preference unmet")
			adjust(similarity.DimGuests, -0.04*l.learningRate, "deprioritize guest count")
			reasons = append(reasons, "prioritize culture")
		}
		if rated(fb.FlavorScore) && fb.FlavorScore < 3 {
			// A pairing miss and a bad dish look the same here, so
			// wine stays untouched.
			reasons = append(reasons, "flavor dissatisfaction noted for adaptation")
		}
		if rated(fb.DietaryScore) && fb.DietaryScore < 3 {
			adjust(similarity.DimDietary, 0.12*l.learningRate, "required diets unmet")
			reasons = append(reasons, "reinforce dietary constraints")
		}
		if menu != nil {
			if l.menuStyleMismatch(menu, request) {
				adjust(similarity.DimStyle, 0.08*l.learningRate, "style unsuited to the event")
				reasons = append(reasons, "prioritize style matching")
			}
			if !l.kb.IsCalorieCountAppropriate(menu.TotalCalories, request.Season) {
				adjust(similarity.DimSeason, 0.06*l.learningRate, "menu weight unsuited to the season")
				reasons = append(reasons, "prioritize season matching")
			}
		}

	case fb.Score >= 4:
		if rated(fb.CulturalScore) && fb.CulturalScore >= 4 && request.HasCulture() {
			adjust(similarity.DimCulture, 0.03*l.learningRate, "culture was valued")
			reasons = append(reasons, "reinforce cultural matching")
		}
		if rated(fb.PriceScore) && fb.PriceScore >= 4 {
			adjust(similarity.DimPrice, 0.02*l.learningRate, "price was on target")
			reasons = append(reasons, "keep price precision")
		}
		if menu != nil && l.menuStyleMatches(menu, request) {
			adjust(similarity.DimStyle, 0.03*l.learningRate, "style suited the event")
			reasons = append(reasons, "reinforce style matching")
		}
		if rated(fb.FlavorScore) && fb.FlavorScore >= 4 && request.WantsWine {
			adjust(similarity.DimWine, 0.03*l.learningRate, "wine pairing worked")
			reasons = append(reasons, "reinforce pairing importance")
		}
		if menu != nil && rated(fb.FlavorScore) && fb.FlavorScore >= 4 &&
			l.kb.IsCalorieCountAppropriate(menu.TotalCalories, request.Season) {
			adjust(similarity.DimSeason, 0.02*l.learningRate, "menu weight suited the season")
			reasons = append(reasons, "reinforce season matching")
		}
		if rated(fb.DietaryScore) && fb.DietaryScore >= 4 && len(request.RequiredDiets) > 0 {
			adjust(similarity.DimDietary, 0.03*l.learningRate, "diets well covered")
			reasons = append(reasons, "reinforce dietary importance")
		}
		if request.Guests > 100 {
			adjust(similarity.DimGuests, 0.02*l.learningRate, "large event handled well")
			reasons = append(reasons, "reinforce guest-scale matching")
		}

	default:
		// Middling feedback only nudges the single weakest-trailing
		// sub-dimension.
		if dim, name, ok := worstTrailing(fb, request); ok {
			adjust(dim, 0.03*l.learningRate, name+" slightly under expectations")
			reasons = append(reasons, "fine-tune "+name)
		}
	}

	l.weights = similarity.FromMap(m).Normalized()
	l.updateLearningRate()

	if len(reasons) == 0 {
		reasons = []string{"no adjustments (neutral feedback)"}
	}
	l.record(fb.Score, reasons)
	return applied
}

func (l *Learner) menuStyleMismatch(menu *models.Menu, request *models.Request) bool {
	preferred := l.kb.PreferredStylesForEvent(request.EventType)
	styles := menuStyles(menu)
	if len(styles) == 0 {
		return false
	}
	for _, p := range preferred {
		if styles[p] {
			return false
		}
	}
	return true
}

func (l *Learner) menuStyleMatches(menu *models.Menu, request *models.Request) bool {
	styles := menuStyles(menu)
	if len(styles) == 0 {
		return false
	}
	for _, p := range l.kb.PreferredStylesForEvent(request.EventType) {
		if styles[p] {
			return true
		}
	}
	return false
}

func menuStyles(menu *models.Menu) map[models.CulinaryStyle]bool {
	styles := make(map[models.CulinaryStyle]bool)
	for _, dish := range menu.Courses() {
		for _, s := range dish.Styles {
			styles[s] = true
		}
	}
	return styles
}

func rated(v float64) bool { return v > 0 }

// worstTrailing picks the rated sub-dimension furthest below the
// overall score. Flavor only maps to a weight when wine was requested.
func worstTrailing(fb *models.Feedback, request *models.Request) (dim, name string, ok bool) {
	worst := fb.Score
	check := func(score float64, d, n string) {
		if rated(score) && score < worst {
			worst, dim, name, ok = score, d, n, true
		}
	}
	check(fb.PriceScore, similarity.DimPrice, "price")
	check(fb.CulturalScore, similarity.DimCulture, "culture")
	check(fb.DietaryScore, similarity.DimDietary, "diets")
	if request.WantsWine {
		check(fb.FlavorScore, similarity.DimWine, "pairing")
	}
	return dim, name, ok
}

func (l *Learner) record(score float64, adjustments []string) {
	l.history = append(l.history, Snapshot{
		Timestamp:     time.Now(),
		Iteration:     l.iteration,
		Weights:       l.weights.Map(),
		FeedbackScore: score,
		Adjustments:   adjustments,
	})
}

// WeightChange summarizes one dimension's drift since initialization.
type WeightChange struct {
	Weight    string  `json:"weight"`
	Initial   float64 `json:"initial"`
	Current   float64 `json:"current"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
}

// Summary reports the overall learning progress.
type Summary struct {
	TotalIterations  int                     `json:"total_iterations"`
	TotalAdjustments int                     `json:"total_adjustments"`
	WeightChanges    map[string]WeightChange `json:"weight_changes"`
	MostChanged      []WeightChange          `json:"most_changed"`
	CurrentWeights   map[string]float64      `json:"current_weights"`
	LearningRate     float64                 `json:"learning_rate"`
	InitialRate      float64                 `json:"initial_rate"`
	Scheduler        SchedulerKind           `json:"scheduler"`
}

// Summarize compares the current weights against the initial snapshot.
func (l *Learner) Summarize() Summary {
	initial := l.history[0].Weights
	current := l.weights.Map()

	changes := make(map[string]WeightChange, len(initial))
	ranked := make([]WeightChange, 0, len(initial))
	for _, dim := range similarity.Dimensions {
		c := WeightChange{
			Weight:  dim,
			Initial: initial[dim],
			Current: current[dim],
			Change:  current[dim] - initial[dim],
		}
		if c.Initial > 0 {
			c.ChangePct = c.Change / c.Initial * 100
		}
		changes[dim] = c
		ranked = append(ranked, c)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return abs(ranked[i].Change) > abs(ranked[j].Change)
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	return Summary{
		TotalIterations:  l.iteration,
		TotalAdjustments: len(l.adjustments),
		WeightChanges:    changes,
		MostChanged:      ranked,
		CurrentWeights:   current,
		LearningRate:     l.learningRate,
		InitialRate:      l.initialRate,
		Scheduler:        l.cfg.Scheduler,
	}
}

// SaveHistory writes the learning history and summary to a JSON file.
func (l *Learner) SaveHistory(path string) error {
	data := struct {
		Metadata struct {
			TotalIterations int     `json:"total_iterations"`
			LearningRate    float64 `json:"learning_rate"`
			MinWeight       float64 `json:"min_weight"`
			MaxWeight       float64 `json:"max_weight"`
		} `json:"metadata"`
		History []Snapshot `json:"history"`
		Summary Summary    `json:"summary"`
	}{History: l.history, Summary: l.Summarize()}
	data.Metadata.TotalIterations = l.iteration
	data.Metadata.LearningRate = l.learningRate
	data.Metadata.MinWeight = l.cfg.MinWeight
	data.Metadata.MaxWeight = l.cfg.MaxWeight

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding learning history: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing learning history: %w", err)
	}
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
