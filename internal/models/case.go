package models

import "time"

// Case represents one stored reasoning experience: the client context
// (Request) together with the solution served (Menu) and its outcome.
type Case struct {
	ID               string     `json:"id"`
	Request          Request    `json:"request"`
	Menu             Menu       `json:"menu"`
	Success          bool       `json:"success"`
	FeedbackScore    float64    `json:"feedback_score"`
	FeedbackComments string     `json:"feedback_comments"`
	UsageCount       int        `json:"usage_count"`
	CreatedAt        time.Time  `json:"created_at"`
	LastUsed         time.Time  `json:"last_used"`
	AdaptationNotes  []string   `json:"adaptation_notes,omitempty"`
	Source           CaseSource `json:"source"`
	Negative         bool       `json:"is_negative"`
}

// NewCase builds a positive case with sensible defaults.
func NewCase(id string, request Request, menu Menu) *Case {
	return &Case{
		ID:            id,
		Request:       request,
		Menu:          menu,
		Success:       true,
		FeedbackScore: 4.0,
		CreatedAt:     time.Now(),
		Source:        SourceManual,
	}
}

// MarkUsed increments the usage counter and stamps the last-used time.
func (c *Case) MarkUsed() {
	c.UsageCount++
	c.LastUsed = time.Now()
}

// Feedback carries a client's assessment of a served menu. Scores are
// on a 1-5 scale; the sub-scores break the overall judgement down by
// dimension so the weight learner can tell what went wrong.
type Feedback struct {
	Score        float64 `json:"score"`
	PriceScore   float64 `json:"price_score,omitempty"`
	CulturalScore float64 `json:"cultural_score,omitempty"`
	FlavorScore  float64 `json:"flavor_score,omitempty"`
	DietaryScore float64 `json:"dietary_score,omitempty"`
	Success      bool    `json:"success"`
	Comment      string  `json:"comment,omitempty"`
}

// Dimensions returns the named sub-scores that were actually provided
// (zero means the client did not rate that dimension).
func (f *Feedback) Dimensions() map[string]float64 {
	dims := make(map[string]float64)
	if f.PriceScore > 0 {
		dims["price"] = f.PriceScore
	}
	if f.CulturalScore > 0 {
		dims["cultural"] = f.CulturalScore
	}
	if f.FlavorScore > 0 {
		dims["flavor"] = f.FlavorScore
	}
	if f.DietaryScore > 0 {
		dims["dietary"] = f.DietaryScore
	}
	return dims
}
