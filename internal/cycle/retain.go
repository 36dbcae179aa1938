package cycle

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"traiteur/internal/casebase"
	"traiteur/internal/models"
	"traiteur/internal/similarity"
)

// Retention actions.
const (
	ActionAddNew         = "add_new"
	ActionAddNegative    = "add_negative"
	ActionUpdateExisting = "update_existing"
	ActionDiscard        = "discard"
)

// RetentionDecision explains what the retainer will do with a solved
// episode.
type RetentionDecision struct {
	Retain          bool         `json:"retain"`
	Action          string       `json:"action"`
	Reason          string       `json:"reason"`
	Similarity      float64      `json:"similarity_to_existing"`
	MostSimilarCase *models.Case `json:"-"`
}

// Retainer decides which solved episodes enter the case pool and keeps
// the pool from silting up with redundant entries.
type Retainer struct {
	store *casebase.Store
	calc  *similarity.Calculator

	noveltyThreshold  float64
	qualityThreshold  float64
	negativeThreshold float64
	maxCasesPerEvent  int

	// Maintenance runs every maintenanceFrequency insertions, not on
	// every add.
	maintenanceFrequency int
	sinceMaintenance     int

	redundancyThreshold float64
}

// NewRetainer builds a retainer over the case pool.
func NewRetainer(store *casebase.Store, calc *similarity.Calculator) *Retainer {
	return &Retainer{
		store:                store,
		calc:                 calc,
		noveltyThreshold:     0.85,
		qualityThreshold:     3.5,
		negativeThreshold:    3.0,
		maxCasesPerEvent:     50,
		maintenanceFrequency: 10,
		redundancyThreshold:  0.90,
	}
}

// Evaluate decides what to do with a solved episode without touching
// the pool.
//
// Scores below the negative threshold are always kept as failures to
// avoid. Scores in the middle band teach nothing and are discarded.
// Good episodes are kept only when novel, or when they improve on a
// near-duplicate.
func (t *Retainer) Evaluate(request *models.Request, menu *models.Menu, feedback *models.Feedback) RetentionDecision {
	if feedback.Score < t.negativeThreshold {
		return RetentionDecision{
			Retain: true,
			Action: ActionAddNegative,
			Reason: fmt.Sprintf("failure worth remembering (%.1f/5)", feedback.Score),
		}
	}
	if feedback.Score < t.qualityThreshold {
		return RetentionDecision{
			Action: ActionDiscard,
			Reason: fmt.Sprintf("middling feedback teaches nothing (%.1f/5)", feedback.Score),
		}
	}

	existing := t.store.All()
	if len(existing) == 0 {
		return RetentionDecision{
			Retain: true,
			Action: ActionAddNew,
			Reason: "first case for this configuration",
		}
	}

	maxSim := 0.0
	var mostSimilar *models.Case
	for _, c := range existing {
		combined := t.combinedSimilarity(request, menu, c)
		if combined > maxSim {
			maxSim = combined
			mostSimilar = c
		}
	}

	if maxSim >= t.noveltyThreshold {
		if mostSimilar != nil && feedback.Score > mostSimilar.FeedbackScore {
			return RetentionDecision{
				Retain:          true,
				Action:          ActionUpdateExisting,
				Reason:          "improves on an existing case",
				Similarity:      maxSim,
				MostSimilarCase: mostSimilar,
			}
		}
		return RetentionDecision{
			Action:          ActionDiscard,
			Reason:          "a similar case with equal or better feedback already exists",
			Similarity:      maxSim,
			MostSimilarCase: mostSimilar,
		}
	}

	return RetentionDecision{
		Retain:          true,
		Action:          ActionAddNew,
		Reason:          "novel case for the pool",
		Similarity:      maxSim,
		MostSimilarCase: mostSimilar,
	}
}

// Retain applies the retention decision to the pool. It returns the
// decision taken and the affected case, nil when nothing was stored.
func (t *Retainer) Retain(request *models.Request, menu *models.Menu, feedback *models.Feedback) (RetentionDecision, *models.Case) {
	decision := t.Evaluate(request, menu, feedback)
	if !decision.Retain {
		return decision, nil
	}

	switch decision.Action {
	case ActionAddNew, ActionAddNegative:
		c := &models.Case{
			ID:               "case-" + uuid.NewString(),
			Request:          *request,
			Menu:             *menu,
			Success:          feedback.Success,
			FeedbackScore:    feedback.Score,
			FeedbackComments: feedback.Comment,
			CreatedAt:        time.Now(),
			Source:           models.SourceRetained,
			Negative:         decision.Action == ActionAddNegative,
		}
		t.store.Add(c)

		t.sinceMaintenance++
		if t.sinceMaintenance >= t.maintenanceFrequency {
			t.maintain(request.EventType)
			t.sinceMaintenance = 0
		}
		return decision, c

	case ActionUpdateExisting:
		c := decision.MostSimilarCase
		c.Menu = *menu
		c.FeedbackScore = feedback.Score
		c.FeedbackComments = feedback.Comment
		c.MarkUsed()
		c.AdaptationNotes = append(c.AdaptationNotes,
			fmt.Sprintf("updated with better feedback (%.1f/5)", feedback.Score))
		t.store.Replace(c.ID, c)
		return decision, c
	}

	return decision, nil
}

// UpdateFeedback folds a later rating into an existing case using a
// usage-count weighted average. Success only survives when every
// rating agreed.
func (t *Retainer) UpdateFeedback(caseID string, feedback *models.Feedback) (*models.Case, error) {
	c, ok := t.store.Get(caseID)
	if !ok {
		return nil, fmt.Errorf("case %s not found", caseID)
	}

	oldWeight := float64(c.UsageCount)
	c.FeedbackScore = (c.FeedbackScore*oldWeight + feedback.Score) / (oldWeight + 1)
	c.Success = c.Success && feedback.Success
	c.MarkUsed()
	if feedback.Comment != "" {
		c.FeedbackComments = feedback.Comment
	}
	return c, nil
}

func (t *Retainer) combinedSimilarity(request *models.Request, menu *models.Menu, c *models.Case) float64 {
	reqSim := t.calc.Score(request, c)
	menuSim := similarity.MenuSimilarity(menu, &c.Menu)
	return 0.6*reqSim + 0.4*menuSim
}

// maintain prunes the event's partition when it outgrows the cap,
// removing redundant cases first and falling back to a utility cut.
func (t *Retainer) maintain(event models.EventType) {
	eventCases := t.store.ByEvent(event)
	if len(eventCases) <= t.maxCasesPerEvent {
		return
	}

	toRemove := t.identifyRedundant(eventCases)
	if len(toRemove) > 0 {
		t.store.Remove(toRemove)
		return
	}
	t.removeByUtility(eventCases)
}

// identifyRedundant groups near-duplicate cases and keeps one per
// group: the most useful positive, or the worst-scored negative (the
// clearest record of the mistake).
func (t *Retainer) identifyRedundant(cases []*models.Case) map[string]bool {
	toRemove := make(map[string]bool)

	var positives, negatives []*models.Case
	for _, c := range cases {
		if c.Negative {
			negatives = append(negatives, c)
		} else {
			positives = append(positives, c)
		}
	}

	t.condense(positives, t.redundancyThreshold, toRemove, func(group []*models.Case) {
		sort.SliceStable(group, func(i, j int) bool {
			return t.utility(group[i]) > t.utility(group[j])
		})
	})

	// Failures are condensed less aggressively: several distinct
	// mistakes are worth more than one.
	t.condense(negatives, 0.95, toRemove, func(group []*models.Case) {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].FeedbackScore < group[j].FeedbackScore
		})
	})

	return toRemove
}

// condense finds groups of mutually similar cases and marks all but
// the first (after ordering by keepFirst) for removal.
func (t *Retainer) condense(cases []*models.Case, threshold float64, toRemove map[string]bool, keepFirst func([]*models.Case)) {
	processed := make(map[string]bool)

	for i, c1 := range cases {
		if processed[c1.ID] || toRemove[c1.ID] {
			continue
		}

		group := []*models.Case{c1}
		for _, c2 := range cases[i+1:] {
			if toRemove[c2.ID] {
				continue
			}
			if t.combinedSimilarity(&c1.Request, &c1.Menu, c2) >= threshold {
				group = append(group, c2)
			}
		}

		if len(group) > 1 {
			keepFirst(group)
			for _, c := range group[1:] {
				toRemove[c.ID] = true
				processed[c.ID] = true
			}
		}
		processed[c1.ID] = true
	}
}

// removeByUtility keeps only the top cases of the event by utility.
func (t *Retainer) removeByUtility(eventCases []*models.Case) {
	scored := append([]*models.Case(nil), eventCases...)
	sort.SliceStable(scored, func(i, j int) bool {
		return t.utility(scored[i]) > t.utility(scored[j])
	})

	toRemove := make(map[string]bool)
	for _, c := range scored[t.maxCasesPerEvent:] {
		toRemove[c.ID] = true
	}
	t.store.Remove(toRemove)
}

// utility weighs feedback, usage, success and recency.
func (t *Retainer) utility(c *models.Case) float64 {
	u := c.FeedbackScore * 10

	usage := float64(c.UsageCount) * 2
	if usage > 20 {
		usage = 20
	}
	u += usage

	if c.Success {
		u += 10
	}

	if !c.LastUsed.IsZero() {
		days := time.Since(c.LastUsed).Hours() / 24
		if recency := 20 - days; recency > 0 {
			u += recency
		}
	}
	return u
}
