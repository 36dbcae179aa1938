package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traiteur/internal/models"
)

func TestFindDietarySubstitutionCompliant(t *testing.T) {
	s := NewIngredients()
	sub, ok := s.FindDietarySubstitution("tomato", []string{"vegan"})
	assert.True(t, ok)
	assert.Nil(t, sub)
}

func TestFindDietarySubstitutionSwap(t *testing.T) {
	s := NewIngredients()
	sub, ok := s.FindDietarySubstitution("butter", []string{"vegan"})
	require.True(t, ok)
	require.NotNil(t, sub)
	assert.Equal(t, "butter", sub.Original)
	// The replacement comes from the same group and is vegan.
	group, _ := s.GroupOf("butter")
	replGroup, _ := s.GroupOf(sub.Replacement)
	assert.Equal(t, group, replGroup)
	assert.Empty(t, s.ViolatedDiets(sub.Replacement, []string{"vegan"}))
	assert.InDelta(t, 0.9, sub.Confidence, 1e-9)
}

func TestFindDietarySubstitutionUnfixable(t *testing.T) {
	s := NewIngredients()
	sub, ok := s.FindDietarySubstitution("almond", []string{"nut-free"})
	if ok && sub != nil {
		// The substitute itself must not be a nut.
		assert.Empty(t, s.ViolatedDiets(sub.Replacement, []string{"nut-free"}))
	}
	// An ingredient outside any group cannot be fixed.
	s2 := newIngredients(IngredientsConfig{
		Groups: map[string][]string{},
		Ingredients: map[string]IngredientInfo{
			"lard": {NonCompliant: []string{"vegan"}},
		},
	})
	sub2, ok2 := s2.FindDietarySubstitution("lard", []string{"vegan"})
	assert.False(t, ok2)
	assert.Nil(t, sub2)
}

func TestCulturalScore(t *testing.T) {
	s := NewIngredients()
	// soy_sauce and miso are Japanese, parmesan is not.
	japanese := s.CulturalScore([]string{"soy_sauce", "miso"}, models.CultureJapanese)
	assert.Equal(t, 1.0, japanese)

	mixed := s.CulturalScore([]string{"miso", "parmesan"}, models.CultureJapanese)
	assert.Equal(t, 0.5, mixed)

	assert.Equal(t, 1.0, s.CulturalScore(nil, models.CultureJapanese))
}

func TestIsCulturalUniversal(t *testing.T) {
	s := NewIngredients()
	// Universal ingredients fit every tradition.
	assert.True(t, s.IsCultural("rice", models.CultureMexican))
	assert.True(t, s.IsCultural("rice", models.CultureJapanese))
	// Unknown ingredients are neutral.
	assert.True(t, s.IsCultural("unicorn_dust", models.CultureFrench))
	// Cuisine-specific ones do not travel.
	assert.False(t, s.IsCultural("parmesan", models.CultureJapanese))
}

func TestFindCulturalSubstitution(t *testing.T) {
	s := NewIngredients()
	// Parmesan has no Japanese same-group substitute, but a universal
	// one exists (vegan_cheese).
	sub := s.FindCulturalSubstitution("parmesan", models.CultureJapanese, nil)
	require.NotNil(t, sub)
	group, _ := s.GroupOf("parmesan")
	replGroup, _ := s.GroupOf(sub.Replacement)
	assert.Equal(t, group, replGroup)

	// Already-fitting ingredients need no swap.
	assert.Nil(t, s.FindCulturalSubstitution("miso", models.CultureJapanese, nil))
}

func TestAdaptIngredientsRespectsConfidence(t *testing.T) {
	s := NewIngredients()
	in := []string{"parmesan", "garlic"}

	// At confidence 0.95 nothing qualifies and the list is unchanged.
	adapted, subs := s.AdaptIngredients(in, models.CultureJapanese, nil, 0.95)
	assert.Equal(t, in, adapted)
	assert.Empty(t, subs)

	// At 0.6 the universal fallback kicks in.
	adapted, subs = s.AdaptIngredients(in, models.CultureJapanese, nil, 0.6)
	assert.Len(t, adapted, 2)
	assert.NotEmpty(t, subs)
	assert.Equal(t, "garlic", adapted[1])
}
