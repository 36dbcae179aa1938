package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"traiteur/internal/models"
)

func TestClassifyPriceBand(t *testing.T) {
	b := NewBase()
	tests := []struct {
		price, min, max float64
		want            string
	}{
		{42, 40, 80, "budget"},
		{60, 40, 80, "mid"},
		{78, 40, 80, "premium"},
		{50, 50, 50, "mid"}, // degenerate band
	}
	for _, tt := range tests {
		got := b.ClassifyPriceBand(tt.price, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("ClassifyPriceBand(%.0f, %.0f, %.0f) = %q, want %q", tt.price, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestValidatePriceProportions(t *testing.T) {
	b := NewBase()
	// Typical split: starter ~20%, main ~55%, dessert ~25%.
	assert.True(t, b.ValidatePriceProportions(10, 28, 12, "mid", 0.25))
	// Starter more expensive than everything else.
	assert.False(t, b.ValidatePriceProportions(40, 10, 5, "mid", 0.0))
	// Zero total never validates.
	assert.False(t, b.ValidatePriceProportions(0, 0, 0, "mid", 0.25))
}

func TestFlavorCompatibility(t *testing.T) {
	b := NewBase()
	// A flavor always works with itself.
	assert.True(t, b.AreFlavorsCompatible(models.FlavorSweet, models.FlavorSweet))
	assert.True(t, b.AreFlavorsCompatible(models.FlavorSour, models.FlavorSweet))
	assert.False(t, b.AreFlavorsCompatible(models.FlavorBitter, models.FlavorSour))
}

func TestEventStyleAppropriateness(t *testing.T) {
	b := NewBase()
	styles := b.PreferredStylesForEvent(models.EventWedding)
	assert.NotEmpty(t, styles)
	for _, s := range styles {
		assert.True(t, b.IsStyleAppropriateForEvent(s, models.EventWedding))
	}
}

func TestCalorieRange(t *testing.T) {
	b := NewBase()
	lo, hi := b.CalorieRange(models.SeasonSummer)
	assert.Greater(t, hi, lo)
	assert.True(t, b.IsCalorieCountAppropriate((lo+hi)/2, models.SeasonSummer))
	assert.False(t, b.IsCalorieCountAppropriate(hi*10, models.SeasonSummer))
}

func TestStarterTemperature(t *testing.T) {
	b := NewBase()
	// Cold starters belong to the warm half of the year.
	assert.True(t, b.IsStarterTemperatureAppropriate(models.TemperatureCold, models.SeasonSummer))
	assert.False(t, b.IsStarterTemperatureAppropriate(models.TemperatureCold, models.SeasonWinter))
	assert.True(t, b.IsStarterTemperatureAppropriate(models.TemperatureHot, models.SeasonWinter))
}

func TestDessertAfterFatty(t *testing.T) {
	b := NewBase()
	heavy := &models.Dish{
		Type: models.DishDessert, Calories: 600,
		Flavors: []models.Flavor{models.FlavorFatty, models.FlavorSweet},
	}
	light := &models.Dish{
		Type: models.DishDessert, Calories: 150,
		Flavors: []models.Flavor{models.FlavorSour},
	}
	assert.False(t, b.IsDessertAppropriateAfterFatty(true, heavy))
	assert.True(t, b.IsDessertAppropriateAfterFatty(true, light))
	// After a light main anything goes.
	assert.True(t, b.IsDessertAppropriateAfterFatty(false, heavy))
}

func TestWinePriority(t *testing.T) {
	b := NewBase()
	// Sweet wines outrank dry ones with dessert, not with the main.
	assert.Greater(t, b.WinePriority("sweet", true), b.WinePriority("dry", true))
	assert.Greater(t, b.WinePriority("full-bodied", false), b.WinePriority("sweet", false))
}
