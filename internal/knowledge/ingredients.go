package knowledge

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"traiteur/internal/models"
)

// IngredientInfo records which cuisines an ingredient belongs to and
// which dietary labels it breaks. The culture list may contain
// "universal" for ingredients at home in any cuisine.
type IngredientInfo struct {
	Cultures     []string `yaml:"cultures"`
	NonCompliant []string `yaml:"non_compliant_labels"`
}

// Substitution represents one ingredient swap with the rationale and a
// confidence in how well it preserves the dish.
type Substitution struct {
	Original    string  `json:"original"`
	Replacement string  `json:"replacement"`
	Reason      string  `json:"reason"`
	Confidence  float64 `json:"confidence"`
}

// IngredientsConfig is the YAML shape of the ingredient knowledge.
type IngredientsConfig struct {
	Groups      map[string][]string       `yaml:"groups"`
	Ingredients map[string]IngredientInfo `yaml:"ingredients"`
}

// Ingredients answers substitution queries over groups of
// interchangeable ingredients. Swaps stay within a group so the dish
// keeps its gastronomic role.
type Ingredients struct {
	groups       map[string][]string
	info         map[string]IngredientInfo
	cultureIndex map[string]map[string]bool
	groupOf      map[string]string
}

// NewIngredients builds the service from the built-in ingredient
// tables.
func NewIngredients() *Ingredients {
	return newIngredients(defaultIngredients())
}

// LoadIngredients reads ingredient knowledge from a YAML file.
func LoadIngredients(path string) (*Ingredients, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ingredients file: %w", err)
	}
	cfg := defaultIngredients()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing ingredients file %s: %w", path, err)
	}
	return newIngredients(cfg), nil
}

func newIngredients(cfg IngredientsConfig) *Ingredients {
	s := &Ingredients{
		groups:       cfg.Groups,
		info:         cfg.Ingredients,
		cultureIndex: make(map[string]map[string]bool),
		groupOf:      make(map[string]string),
	}
	for name, members := range cfg.Groups {
		for _, ing := range members {
			s.groupOf[ing] = name
		}
	}
	for ing, info := range cfg.Ingredients {
		for _, culture := range info.Cultures {
			key := strings.ToLower(culture)
			if s.cultureIndex[key] == nil {
				s.cultureIndex[key] = make(map[string]bool)
			}
			s.cultureIndex[key][ing] = true
		}
	}
	return s
}

// Known reports whether the ingredient appears in the knowledge base.
func (s *Ingredients) Known(ingredient string) bool {
	_, ok := s.info[ingredient]
	return ok
}

// GroupOf returns the interchange group an ingredient belongs to.
func (s *Ingredients) GroupOf(ingredient string) (string, bool) {
	g, ok := s.groupOf[ingredient]
	return g, ok
}

// CulturalIngredients returns the ingredients characteristic of a
// tradition.
func (s *Ingredients) CulturalIngredients(t models.CulturalTradition) map[string]bool {
	return s.cultureIndex[strings.ToLower(string(t))]
}

// IsCultural reports whether an ingredient fits a tradition, counting
// universal ingredients as fitting everywhere. Unknown ingredients are
// treated as neutral and fit.
func (s *Ingredients) IsCultural(ingredient string, t models.CulturalTradition) bool {
	info, ok := s.info[ingredient]
	if !ok {
		return true
	}
	target := strings.ToLower(string(t))
	for _, c := range info.Cultures {
		lc := strings.ToLower(c)
		if lc == target || lc == "universal" {
			return true
		}
	}
	return false
}

// CulturalScore returns the fraction of ingredients fitting a
// tradition, in [0, 1]. An empty list scores 1.
func (s *Ingredients) CulturalScore(ingredients []string, t models.CulturalTradition) float64 {
	if len(ingredients) == 0 {
		return 1.0
	}
	fit := 0
	for _, ing := range ingredients {
		if s.IsCultural(ing, t) {
			fit++
		}
	}
	return float64(fit) / float64(len(ingredients))
}

// ViolatesDiet reports whether an ingredient breaks a dietary label.
func (s *Ingredients) ViolatesDiet(ingredient, label string) bool {
	info, ok := s.info[ingredient]
	if !ok {
		return false
	}
	for _, l := range info.NonCompliant {
		if l == label {
			return true
		}
	}
	return false
}

// ViolatedDiets returns the subset of labels an ingredient breaks.
func (s *Ingredients) ViolatedDiets(ingredient string, labels []string) []string {
	var violated []string
	for _, label := range labels {
		if s.ViolatesDiet(ingredient, label) {
			violated = append(violated, label)
		}
	}
	return violated
}

// FindDietarySubstitution looks for a same-group replacement compliant
// with every label. Returns nil when the ingredient already complies,
// and ok=false when it violates a label but no same-group substitute
// exists (the dish cannot be fixed).
func (s *Ingredients) FindDietarySubstitution(ingredient string, labels []string) (*Substitution, bool) {
	violated := s.ViolatedDiets(ingredient, labels)
	if len(violated) == 0 {
		return nil, true
	}
	group, ok := s.groupOf[ingredient]
	if !ok {
		return nil, false
	}
	for _, candidate := range s.groups[group] {
		if candidate == ingredient {
			continue
		}
		if len(s.ViolatedDiets(candidate, labels)) == 0 {
			return &Substitution{
				Original:    ingredient,
				Replacement: candidate,
				Reason:      fmt.Sprintf("violates %s, same group (%s)", strings.Join(violated, ", "), group),
				Confidence:  0.9,
			}, true
		}
	}
	return nil, false
}

func (s *Ingredients) isUniversal(ingredient string) bool {
	info, ok := s.info[ingredient]
	if !ok {
		return false
	}
	for _, c := range info.Cultures {
		if strings.EqualFold(c, "universal") {
			return true
		}
	}
	return false
}

// FindCulturalSubstitution looks for a same-group replacement closer to
// the target tradition. relatedCultures holds traditions similar to the
// target, best first, and may be empty. Returns nil when no swap is
// needed or none is available.
func (s *Ingredients) FindCulturalSubstitution(ingredient string, target models.CulturalTradition,
	relatedCultures []models.CulturalTradition) *Substitution {

	if s.IsCultural(ingredient, target) {
		return nil
	}
	group, ok := s.groupOf[ingredient]
	if !ok {
		return nil
	}
	members := s.groups[group]
	targetName := strings.ToLower(string(target))

	// Prefer an ingredient specific to the target cuisine.
	for _, candidate := range members {
		if candidate != ingredient && s.cultureIndex[targetName][candidate] {
			return &Substitution{
				Original:    ingredient,
				Replacement: candidate,
				Reason:      fmt.Sprintf("same group (%s), specific to %s cuisine", group, targetName),
				Confidence:  0.9,
			}
		}
	}

	// Next, an ingredient from a related cuisine.
	for _, related := range relatedCultures {
		relName := strings.ToLower(string(related))
		for _, candidate := range members {
			if candidate != ingredient && s.cultureIndex[relName][candidate] {
				return &Substitution{
					Original:    ingredient,
					Replacement: candidate,
					Reason:      fmt.Sprintf("same group (%s), from related %s cuisine", group, relName),
					Confidence:  0.8,
				}
			}
		}
	}

	// Fall back to a universal member of the group.
	for _, candidate := range members {
		if candidate != ingredient && s.isUniversal(candidate) {
			return &Substitution{
				Original:    ingredient,
				Replacement: candidate,
				Reason:      fmt.Sprintf("same group (%s), universal ingredient", group),
				Confidence:  0.7,
			}
		}
	}
	return nil
}

// AdaptIngredients rewrites an ingredient list toward a target
// tradition, applying only substitutions at or above minConfidence.
func (s *Ingredients) AdaptIngredients(ingredients []string, target models.CulturalTradition,
	relatedCultures []models.CulturalTradition, minConfidence float64) ([]string, []Substitution) {

	adapted := make([]string, 0, len(ingredients))
	var subs []Substitution
	for _, ing := range ingredients {
		sub := s.FindCulturalSubstitution(ing, target, relatedCultures)
		if sub != nil && sub.Confidence >= minConfidence {
			adapted = append(adapted, sub.Replacement)
			subs = append(subs, *sub)
			continue
		}
		adapted = append(adapted, ing)
	}
	return adapted, subs
}
