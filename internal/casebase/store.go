package casebase

import (
	"traiteur/internal/models"
)

// Store is the in-memory case base. Cases are indexed by event type,
// season and dominant style for fast pre-filtering during retrieval.
type Store struct {
	cases   []*models.Case
	byID    map[string]*models.Case
	byEvent map[models.EventType][]*models.Case
	bySeason map[models.Season][]*models.Case
	byStyle map[models.CulinaryStyle][]*models.Case
}

// NewStore builds an empty case store.
func NewStore() *Store {
	s := &Store{}
	s.resetIndexes()
	return s
}

func (s *Store) resetIndexes() {
	s.byID = make(map[string]*models.Case)
	s.byEvent = make(map[models.EventType][]*models.Case)
	s.bySeason = make(map[models.Season][]*models.Case)
	s.byStyle = make(map[models.CulinaryStyle][]*models.Case)
}

// Add appends a case and indexes it.
func (s *Store) Add(c *models.Case) {
	s.cases = append(s.cases, c)
	s.index(c)
}

func (s *Store) index(c *models.Case) {
	s.byID[c.ID] = c
	s.byEvent[c.Request.EventType] = append(s.byEvent[c.Request.EventType], c)
	s.bySeason[c.Request.Season] = append(s.bySeason[c.Request.Season], c)
	if c.Menu.DominantStyle != "" {
		s.byStyle[c.Menu.DominantStyle] = append(s.byStyle[c.Menu.DominantStyle], c)
	}
}

// Get returns a case by id.
func (s *Store) Get(id string) (*models.Case, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Len returns the number of stored cases.
func (s *Store) Len() int { return len(s.cases) }

// All returns a copy of the case list.
func (s *Store) All() []*models.Case {
	return append([]*models.Case(nil), s.cases...)
}

// ByEvent returns the cases stored for an event type.
func (s *Store) ByEvent(e models.EventType) []*models.Case {
	return s.byEvent[e]
}

// BySeason returns the cases for a season, always including year-round
// cases, deduplicated in insertion order.
func (s *Store) BySeason(season models.Season) []*models.Case {
	cases := append([]*models.Case(nil), s.bySeason[season]...)
	if season != models.SeasonAll {
		cases = append(cases, s.bySeason[models.SeasonAll]...)
	}
	seen := make(map[string]bool, len(cases))
	out := cases[:0]
	for _, c := range cases {
		if !seen[c.ID] {
			seen[c.ID] = true
			out = append(out, c)
		}
	}
	return out
}

// ByPriceRange returns the cases whose menu price falls inside the
// bounds, inclusive.
func (s *Store) ByPriceRange(min, max float64) []*models.Case {
	var out []*models.Case
	for _, c := range s.cases {
		if c.Menu.TotalPrice >= min && c.Menu.TotalPrice <= max {
			out = append(out, c)
		}
	}
	return out
}

// Remove drops the cases with the given ids and rebuilds the indexes.
func (s *Store) Remove(ids map[string]bool) int {
	if len(ids) == 0 {
		return 0
	}
	kept := s.cases[:0]
	removed := 0
	for _, c := range s.cases {
		if ids[c.ID] {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	s.cases = kept
	s.rebuildIndexes()
	return removed
}

// Replace swaps the stored case with the given id for a new value,
// keeping its position. Indexes are rebuilt since the replacement may
// change index keys.
func (s *Store) Replace(id string, c *models.Case) bool {
	for i, old := range s.cases {
		if old.ID == id {
			s.cases[i] = c
			s.rebuildIndexes()
			return true
		}
	}
	return false
}

func (s *Store) rebuildIndexes() {
	s.resetIndexes()
	for _, c := range s.cases {
		s.index(c)
	}
}

// Statistics summarizes the contents of the store.
type Statistics struct {
	TotalCases      int                      `json:"total_cases"`
	SuccessfulCases int                      `json:"successful_cases"`
	NegativeCases   int                      `json:"negative_cases"`
	CasesByEvent    map[models.EventType]int `json:"cases_by_event"`
	CasesBySource   map[models.CaseSource]int `json:"cases_by_source"`
	AverageFeedback float64                  `json:"average_feedback"`
}

// Stats computes summary statistics over the stored cases.
func (s *Store) Stats() Statistics {
	stats := Statistics{
		TotalCases:    len(s.cases),
		CasesByEvent:  make(map[models.EventType]int),
		CasesBySource: make(map[models.CaseSource]int),
	}
	sum := 0.0
	for _, c := range s.cases {
		if c.Success {
			stats.SuccessfulCases++
		}
		if c.Negative {
			stats.NegativeCases++
		}
		stats.CasesByEvent[c.Request.EventType]++
		stats.CasesBySource[c.Source]++
		sum += c.FeedbackScore
	}
	if len(s.cases) > 0 {
		stats.AverageFeedback = sum / float64(len(s.cases))
	}
	return stats
}
