package models

import "fmt"

// Request represents a client request for a catering menu.
//
// Optional fields use their zero value to mean "unspecified":
// PreferredStyle and CulturalPreference as empty strings, PriceMin and
// PriceMax as 0. Unspecified fields relax the matching criteria that
// depend on them.
type Request struct {
	ID                 string            `yaml:"id" json:"id"`
	EventType          EventType         `yaml:"event_type" json:"event_type"`
	Season             Season            `yaml:"season" json:"season"`
	Guests             int               `yaml:"num_guests" json:"num_guests"`
	PriceMin           float64           `yaml:"price_min" json:"price_min"`
	PriceMax           float64           `yaml:"price_max" json:"price_max"`
	WantsWine          bool              `yaml:"wants_wine" json:"wants_wine"`
	PreferredStyle     CulinaryStyle     `yaml:"preferred_style,omitempty" json:"preferred_style,omitempty"`
	CulturalPreference CulturalTradition `yaml:"cultural_preference,omitempty" json:"cultural_preference,omitempty"`
	RequiredDiets      []string          `yaml:"required_diets" json:"required_diets"`
	SoftDiets          []string          `yaml:"soft_diets" json:"soft_diets"`
	RestrictedIngredients     []string   `yaml:"restricted_ingredients" json:"restricted_ingredients"`
	SoftRestrictedIngredients []string   `yaml:"soft_restricted_ingredients" json:"soft_restricted_ingredients"`
}

// ValidateRequest checks a request for usable values
func ValidateRequest(r *Request) error {
	if r.Guests <= 0 {
		return fmt.Errorf("number of guests must be greater than 0")
	}
	if r.PriceMin < 0 || r.PriceMax < 0 {
		return fmt.Errorf("price bounds must not be negative")
	}
	if r.PriceMin > 0 && r.PriceMax > 0 && r.PriceMin > r.PriceMax {
		return fmt.Errorf("price_min %.2f exceeds price_max %.2f", r.PriceMin, r.PriceMax)
	}
	switch r.EventType {
	case EventWedding, EventFamiliar, EventCongress, EventCorporate, EventChristening, EventCommunion:
	default:
		return fmt.Errorf("unknown event type %q", r.EventType)
	}
	return nil
}

// HasPriceBand reports whether any price bound was given
func (r *Request) HasPriceBand() bool {
	return r.PriceMin > 0 || r.PriceMax > 0
}

// HasStyle reports whether a preferred style was given
func (r *Request) HasStyle() bool {
	return r.PreferredStyle != ""
}

// HasCulture reports whether a cultural preference was given
func (r *Request) HasCulture() bool {
	return r.CulturalPreference != ""
}

// EffectiveMax returns the upper price bound, deriving one from the
// lower bound when only that was given.
func (r *Request) EffectiveMax() float64 {
	if r.PriceMax > 0 {
		return r.PriceMax
	}
	if r.PriceMin > 0 {
		return r.PriceMin * 2
	}
	return 0
}
