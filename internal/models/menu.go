package models

// Menu represents a complete menu proposal: one starter, one main
// course, one dessert and a beverage.
//
// Menu values are updated immutably: the With* methods return a new
// Menu with totals recomputed, leaving the receiver untouched.
type Menu struct {
	ID            string            `json:"id"`
	Starter       Dish              `json:"starter"`
	Main          Dish              `json:"main_course"`
	Dessert       Dish              `json:"dessert"`
	Beverage      Beverage          `json:"beverage"`
	TotalPrice    float64           `json:"total_price"`
	TotalCalories int               `json:"total_calories"`
	DominantStyle CulinaryStyle     `json:"dominant_style,omitempty"`
	CulturalTheme CulturalTradition `json:"cultural_theme,omitempty"`
	Adaptations   []string          `json:"adaptations,omitempty"`
}

// NewMenu builds a menu from its four components with totals computed.
func NewMenu(id string, starter, main, dessert Dish, beverage Beverage) Menu {
	m := Menu{
		ID:       id,
		Starter:  starter,
		Main:     main,
		Dessert:  dessert,
		Beverage: beverage,
	}
	m.recompute()
	return m
}

func (m *Menu) recompute() {
	m.TotalPrice = m.Starter.Price + m.Main.Price + m.Dessert.Price + m.Beverage.Price
	m.TotalCalories = m.Starter.Calories + m.Main.Calories + m.Dessert.Calories
}

// WithStarter returns a copy of the menu with the starter replaced.
func (m Menu) WithStarter(d Dish) Menu {
	m.Starter = d
	m.recompute()
	return m
}

// WithMain returns a copy of the menu with the main course replaced.
func (m Menu) WithMain(d Dish) Menu {
	m.Main = d
	m.recompute()
	return m
}

// WithDessert returns a copy of the menu with the dessert replaced.
func (m Menu) WithDessert(d Dish) Menu {
	m.Dessert = d
	m.recompute()
	return m
}

// WithBeverage returns a copy of the menu with the beverage replaced.
func (m Menu) WithBeverage(b Beverage) Menu {
	m.Beverage = b
	m.recompute()
	return m
}

// WithCourse returns a copy of the menu with the course matching the
// dish type replaced.
func (m Menu) WithCourse(d Dish) Menu {
	switch d.Type {
	case DishStarter:
		return m.WithStarter(d)
	case DishMain:
		return m.WithMain(d)
	case DishDessert:
		return m.WithDessert(d)
	}
	return m
}

// WithAdaptation returns a copy of the menu with a note appended to the
// adaptation audit trail.
func (m Menu) WithAdaptation(note string) Menu {
	m.Adaptations = append(append([]string(nil), m.Adaptations...), note)
	return m
}

// Course returns the dish serving the given course.
func (m *Menu) Course(t DishType) Dish {
	switch t {
	case DishStarter:
		return m.Starter
	case DishMain:
		return m.Main
	}
	return m.Dessert
}

// Courses returns the three dishes in serving order.
func (m *Menu) Courses() []Dish {
	return []Dish{m.Starter, m.Main, m.Dessert}
}

// AllIngredients returns the union of ingredients across all courses.
func (m *Menu) AllIngredients() map[string]bool {
	out := make(map[string]bool)
	for _, d := range m.Courses() {
		for _, ing := range d.Ingredients {
			out[ing] = true
		}
	}
	return out
}

// DietsSatisfied returns the diets every course complies with
// (the intersection across starter, main and dessert).
func (m *Menu) DietsSatisfied() map[string]bool {
	out := make(map[string]bool)
	for _, diet := range m.Starter.Diets {
		if contains(m.Main.Diets, diet) && contains(m.Dessert.Diets, diet) {
			out[diet] = true
		}
	}
	return out
}

// SatisfiesDiets checks if every required diet is satisfied by the
// whole menu.
func (m *Menu) SatisfiesDiets(required []string) bool {
	satisfied := m.DietsSatisfied()
	for _, diet := range required {
		if !satisfied[diet] {
			return false
		}
	}
	return true
}

// ContainsAnyIngredient checks if any course contains one of the given
// ingredients.
func (m *Menu) ContainsAnyIngredient(ingredients []string) bool {
	for _, d := range m.Courses() {
		if d.HasAnyIngredient(ingredients) {
			return true
		}
	}
	return false
}

// MaxCapacity returns the largest number of guests every course can
// serve.
func (m *Menu) MaxCapacity() int {
	capacity := m.Starter.MaxGuests
	if m.Main.MaxGuests < capacity {
		capacity = m.Main.MaxGuests
	}
	if m.Dessert.MaxGuests < capacity {
		capacity = m.Dessert.MaxGuests
	}
	return capacity
}
