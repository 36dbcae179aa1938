// Package engine wires the reasoning phases into the two operations
// the outside world calls: Propose and SubmitFeedback. The engine is
// synchronous and holds no locks; callers serialize access.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"traiteur/internal/casebase"
	"traiteur/internal/cycle"
	"traiteur/internal/knowledge"
	"traiteur/internal/learning"
	"traiteur/internal/models"
	"traiteur/internal/monitoring"
	"traiteur/internal/similarity"
)

// Sentinel errors callers branch on.
var (
	ErrNoProposals = errors.New("no valid proposals")
	ErrUnknownCase = errors.New("unknown case")
)

// NoProposalsError carries the constraints that could not be met.
type NoProposalsError struct {
	Reasons []string
}

func (e *NoProposalsError) Error() string {
	return "no valid proposals: " + strings.Join(e.Reasons, "; ")
}

func (e *NoProposalsError) Unwrap() error { return ErrNoProposals }

// Config tunes the engine.
type Config struct {
	Proposals       int     `yaml:"proposals"`
	RetrievalK      int     `yaml:"retrieval_k"`
	Diverse         bool    `yaml:"diverse_retrieval"`
	DiversityWeight float64 `yaml:"diversity_weight"`
	StrictRevision  bool    `yaml:"strict_revision"`
	Seed            int64   `yaml:"seed"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Proposals:       3,
		RetrievalK:      5,
		Diverse:         true,
		DiversityWeight: 0.3,
	}
}

// Proposal is one validated menu offered to the client.
type Proposal struct {
	Menu          models.Menu             `json:"menu"`
	Score         float64                 `json:"score"`
	Status        cycle.ValidationStatus  `json:"status"`
	Issues        []cycle.ValidationIssue `json:"issues,omitempty"`
	Explanations  []string                `json:"explanations,omitempty"`
	Notes         []string                `json:"adaptation_notes,omitempty"`
	Similarity    float64                 `json:"similarity"`
	PriceBucket   string                  `json:"price_bucket"`
	SourceCaseID  string                  `json:"source_case_id,omitempty"`
	FromGenerated bool                    `json:"generated"`
}

// ProposeResult bundles proposals with the warnings and diagnostics
// gathered along the way.
type ProposeResult struct {
	Proposals []Proposal `json:"proposals"`
	Warnings  []string   `json:"warnings,omitempty"`
}

// FeedbackResult reports what learning and retention did with one
// rated menu.
type FeedbackResult struct {
	Retention    cycle.RetentionDecision `json:"retention"`
	RetainedCase *models.Case            `json:"retained_case,omitempty"`
	WeightDeltas map[string]float64      `json:"weight_deltas"`
	Weights      similarity.Weights      `json:"weights"`
}

// SnapshotListener receives a learning snapshot after each feedback.
type SnapshotListener func(learning.Snapshot)

// Engine orchestrates the full reasoning loop.
type Engine struct {
	catalog     *casebase.Catalog
	store       *casebase.Store
	kb          *knowledge.Base
	ingredients *knowledge.Ingredients
	calc        *similarity.Calculator

	retriever *cycle.Retriever
	adapter   *cycle.Adapter
	reviser   *cycle.Reviser
	retainer  *cycle.Retainer
	learner   *learning.Learner

	cfg       Config
	metrics   *monitoring.Metrics
	listeners []SnapshotListener
}

// New assembles an engine from its collaborators. metrics may be nil.
func New(catalog *casebase.Catalog, store *casebase.Store, kb *knowledge.Base,
	ingredients *knowledge.Ingredients, embedder *similarity.Embedder,
	cfg Config, learnCfg learning.Config, metrics *monitoring.Metrics) *Engine {

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	calc := similarity.NewCalculator(similarity.DefaultWeights(), kb, embedder)

	return &Engine{
		catalog:     catalog,
		store:       store,
		kb:          kb,
		ingredients: ingredients,
		calc:        calc,
		retriever:   cycle.NewRetriever(store, calc, ingredients),
		adapter:     cycle.NewAdapter(catalog, store, calc, kb, ingredients, rng),
		reviser:     cycle.NewReviser(kb, ingredients, cfg.StrictRevision),
		retainer:    cycle.NewRetainer(store, calc),
		learner:     learning.NewLearner(similarity.DefaultWeights(), kb, learnCfg),
		cfg:         cfg,
		metrics:     metrics,
	}
}

// Subscribe registers a listener for learning snapshots.
func (e *Engine) Subscribe(l SnapshotListener) {
	e.listeners = append(e.listeners, l)
}

// Propose runs retrieve, adapt and revise for one request.
func (e *Engine) Propose(request *models.Request) (*ProposeResult, error) {
	if err := models.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	e.metrics.ObserveRequest()

	var warnings []string
	for _, w := range e.retriever.CheckNegatives(request) {
		warnings = append(warnings, fmt.Sprintf(
			"a similar configuration failed before (case %s, %.0f%% similar): %s",
			w.Case.ID, w.Similarity*100, w.Case.FeedbackComments))
	}

	var retrieved []cycle.RetrievalResult
	if e.cfg.Diverse {
		retrieved = e.retriever.RetrieveDiverse(request, e.cfg.RetrievalK, e.cfg.DiversityWeight)
	} else {
		retrieved = e.retriever.Retrieve(request, e.cfg.RetrievalK)
	}
	top := 0.0
	if len(retrieved) > 0 {
		top = retrieved[0].Similarity
	}
	e.metrics.ObserveRetrieval(len(retrieved), top)

	adapted := e.adapter.Adapt(retrieved, request, e.cfg.Proposals)
	for _, a := range adapted {
		if a.SourceCase == nil {
			e.metrics.ObserveAdaptation("generated")
		} else if len(a.Notes) == 0 {
			e.metrics.ObserveAdaptation("reused")
		} else {
			e.metrics.ObserveAdaptation("adapted")
		}
	}

	validated := e.reviser.Revise(adapted, request)
	if len(validated) == 0 {
		e.metrics.ObserveNoProposals()
		return nil, &NoProposalsError{Reasons: e.diagnose(request, len(retrieved))}
	}

	proposals := make([]Proposal, 0, len(validated))
	for _, v := range validated {
		p := Proposal{
			Menu:          v.Proposal.Menu,
			Score:         v.Score,
			Status:        v.Status,
			Issues:        v.Issues,
			Explanations:  v.Explanations,
			Notes:         v.Proposal.Notes,
			Similarity:    v.Proposal.PostSimilarity,
			PriceBucket:   v.Proposal.PriceBucket,
			FromGenerated: v.Proposal.SourceCase == nil,
		}
		if v.Proposal.SourceCase != nil {
			p.SourceCaseID = v.Proposal.SourceCase.ID
			v.Proposal.SourceCase.MarkUsed()
		}
		e.metrics.ObserveProposal(p.PriceBucket, p.Score)
		proposals = append(proposals, p)
	}

	return &ProposeResult{Proposals: proposals, Warnings: warnings}, nil
}

// diagnose names the constraints that most plausibly emptied the
// proposal list.
func (e *Engine) diagnose(request *models.Request, retrieved int) []string {
	var reasons []string

	for _, t := range []models.DishType{models.DishStarter, models.DishMain, models.DishDessert} {
		compliant := 0
		for _, d := range e.catalog.DishesByType(t) {
			if d.MeetsDiets(request.RequiredDiets) && !d.HasAnyIngredient(request.RestrictedIngredients) {
				compliant++
			}
		}
		if compliant == 0 {
			reasons = append(reasons, fmt.Sprintf(
				"no %s in the catalog satisfies the required diets and restrictions", t))
		}
	}

	if request.HasPriceBand() {
		cheapest := e.cheapestMenuPrice(request)
		if cheapest > request.PriceMax {
			reasons = append(reasons, fmt.Sprintf(
				"cheapest compliant menu costs %.2f, above the %.2f maximum", cheapest, request.PriceMax))
		}
	}

	if retrieved == 0 {
		reasons = append(reasons, "no stored case resembles this request")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "every candidate failed validation")
	}
	return reasons
}

func (e *Engine) cheapestMenuPrice(request *models.Request) float64 {
	total := 0.0
	for _, t := range []models.DishType{models.DishStarter, models.DishMain, models.DishDessert} {
		best := -1.0
		for _, d := range e.catalog.DishesByType(t) {
			if !d.MeetsDiets(request.RequiredDiets) || d.HasAnyIngredient(request.RestrictedIngredients) {
				continue
			}
			if best < 0 || d.Price < best {
				best = d.Price
			}
		}
		if best < 0 {
			return 0
		}
		total += best
	}
	bev := -1.0
	for _, b := range e.catalog.BeveragesByPreference(request.WantsWine) {
		if bev < 0 || b.Price < bev {
			bev = b.Price
		}
	}
	if bev > 0 {
		total += bev
	}
	return total
}

// SubmitFeedback folds a rated menu back into the system: retention,
// weight learning and listener notification.
func (e *Engine) SubmitFeedback(request *models.Request, menu *models.Menu, fb *models.Feedback) (*FeedbackResult, error) {
	if err := models.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	if fb.Score < 1 || fb.Score > 5 {
		return nil, fmt.Errorf("feedback score %.1f outside the 1-5 scale", fb.Score)
	}

	decision, retained := e.retainer.Retain(request, menu, fb)
	e.metrics.ObserveRetention(decision.Action, e.store.Len())

	deltas := e.learner.UpdateFromFeedback(fb, request, menu)
	e.calc.SetWeights(e.learner.Weights())
	e.metrics.ObserveLearning(e.learner.Iteration())

	history := e.learner.History()
	latest := history[len(history)-1]
	for _, l := range e.listeners {
		l(latest)
	}

	return &FeedbackResult{
		Retention:    decision,
		RetainedCase: retained,
		WeightDeltas: deltas,
		Weights:      e.learner.Weights(),
	}, nil
}

// UpdateCaseFeedback blends a later rating into a stored case.
func (e *Engine) UpdateCaseFeedback(caseID string, fb *models.Feedback) (*models.Case, error) {
	c, err := e.retainer.UpdateFeedback(caseID, fb)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCase, caseID)
	}
	return c, nil
}

// Case returns one stored case.
func (e *Engine) Case(id string) (*models.Case, error) {
	c, ok := e.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCase, id)
	}
	return c, nil
}

// Cases returns all stored cases.
func (e *Engine) Cases() []*models.Case { return e.store.All() }

// Weights returns the current similarity weights.
func (e *Engine) Weights() similarity.Weights { return e.learner.Weights() }

// CaseStats summarizes the case pool.
func (e *Engine) CaseStats() casebase.Statistics { return e.store.Stats() }

// RetrievalStats scores the whole pool against one request.
func (e *Engine) RetrievalStats(request *models.Request) cycle.RetrievalStatistics {
	return e.retriever.Statistics(request)
}

// LearningSummary reports the weight learner's progress.
func (e *Engine) LearningSummary() learning.Summary { return e.learner.Summarize() }

// LearningHistory returns the learner's snapshots.
func (e *Engine) LearningHistory() []learning.Snapshot { return e.learner.History() }

// SaveLearningHistory writes the learner's snapshots to a JSON file.
func (e *Engine) SaveLearningHistory(path string) error { return e.learner.SaveHistory(path) }

// Store exposes the case pool for persistence snapshots.
func (e *Engine) Store() *casebase.Store { return e.store }
