// Package similarity implements the similarity metrics between client
// requests and stored cases, the dish and menu similarity helpers used
// during adaptation, and the optional embedding-based cultural
// refinement.
package similarity

// Weight dimension names as used in breakdowns and by the weight
// learner.
const (
	DimEvent   = "event_type"
	DimSeason  = "season"
	DimPrice   = "price_range"
	DimStyle   = "style"
	DimCulture = "cultural"
	DimDietary = "dietary"
	DimGuests  = "guests"
	DimWine    = "wine_preference"
	DimSuccess = "success_bonus"
)

// Dimensions lists every weight dimension in canonical order.
var Dimensions = []string{
	DimEvent, DimSeason, DimPrice, DimStyle, DimCulture,
	DimDietary, DimGuests, DimWine, DimSuccess,
}

// Weights holds the relative importance of each similarity dimension.
// A usable set of weights is non-negative and sums to 1.
type Weights struct {
	EventType      float64 `yaml:"event_type" json:"event_type"`
	Season         float64 `yaml:"season" json:"season"`
	PriceRange     float64 `yaml:"price_range" json:"price_range"`
	Style          float64 `yaml:"style" json:"style"`
	Cultural       float64 `yaml:"cultural" json:"cultural"`
	Dietary        float64 `yaml:"dietary" json:"dietary"`
	Guests         float64 `yaml:"guests" json:"guests"`
	WinePreference float64 `yaml:"wine_preference" json:"wine_preference"`
	SuccessBonus   float64 `yaml:"success_bonus" json:"success_bonus"`
}

// DefaultWeights returns the baseline weight profile.
func DefaultWeights() Weights {
	return Weights{
		EventType:      0.20,
		Season:         0.12,
		PriceRange:     0.18,
		Style:          0.12,
		Cultural:       0.08,
		Dietary:        0.15,
		Guests:         0.05,
		WinePreference: 0.05,
		SuccessBonus:   0.05,
	}
}

// Map returns the weights keyed by dimension name.
func (w Weights) Map() map[string]float64 {
	return map[string]float64{
		DimEvent:   w.EventType,
		DimSeason:  w.Season,
		DimPrice:   w.PriceRange,
		DimStyle:   w.Style,
		DimCulture: w.Cultural,
		DimDietary: w.Dietary,
		DimGuests:  w.Guests,
		DimWine:    w.WinePreference,
		DimSuccess: w.SuccessBonus,
	}
}

// FromMap builds a Weights value from a dimension map. Missing
// dimensions stay zero.
func FromMap(m map[string]float64) Weights {
	return Weights{
		EventType:      m[DimEvent],
		Season:         m[DimSeason],
		PriceRange:     m[DimPrice],
		Style:          m[DimStyle],
		Cultural:       m[DimCulture],
		Dietary:        m[DimDietary],
		Guests:         m[DimGuests],
		WinePreference: m[DimWine],
		SuccessBonus:   m[DimSuccess],
	}
}

// Sum returns the total of all dimensions.
func (w Weights) Sum() float64 {
	return w.EventType + w.Season + w.PriceRange + w.Style + w.Cultural +
		w.Dietary + w.Guests + w.WinePreference + w.SuccessBonus
}

// Normalized returns a copy scaled so the dimensions sum to 1. A zero
// vector is returned unchanged.
func (w Weights) Normalized() Weights {
	total := w.Sum()
	if total <= 0 {
		return w
	}
	w.EventType /= total
	w.Season /= total
	w.PriceRange /= total
	w.Style /= total
	w.Cultural /= total
	w.Dietary /= total
	w.Guests /= total
	w.WinePreference /= total
	w.SuccessBonus /= total
	return w
}
