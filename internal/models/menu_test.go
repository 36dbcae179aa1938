package models

import "testing"

func fixtureMenu() Menu {
	starter := Dish{
		ID: "st", Name: "Salad", Type: DishStarter, Price: 10, Calories: 200, MaxGuests: 300,
		Diets: []string{"vegetarian", "vegan"}, Ingredients: []string{"tomato", "olive_oil"},
	}
	main := Dish{
		ID: "mn", Name: "Paella", Type: DishMain, Price: 25, Calories: 600, MaxGuests: 200,
		Diets: []string{"vegetarian"}, Ingredients: []string{"rice", "saffron"},
	}
	dessert := Dish{
		ID: "ds", Name: "Sorbet", Type: DishDessert, Price: 7, Calories: 150, MaxGuests: 400,
		Diets: []string{"vegetarian", "vegan"}, Ingredients: []string{"lemon", "sugar"},
	}
	return NewMenu("m1", starter, main, dessert, Beverage{ID: "bv", Name: "Water", Price: 2})
}

func TestNewMenuComputesTotals(t *testing.T) {
	m := fixtureMenu()
	if m.TotalPrice != 44 {
		t.Errorf("TotalPrice = %f, want 44", m.TotalPrice)
	}
	if m.TotalCalories != 950 {
		t.Errorf("TotalCalories = %d, want 950", m.TotalCalories)
	}
}

func TestWithCourseRecomputesAndLeavesOriginal(t *testing.T) {
	m := fixtureMenu()
	replacement := Dish{
		ID: "mn2", Name: "Curry", Type: DishMain, Price: 18, Calories: 500, MaxGuests: 200,
		Ingredients: []string{"chickpeas"},
	}
	updated := m.WithCourse(replacement)

	if updated.Main.ID != "mn2" {
		t.Fatalf("WithCourse did not replace the main, got %s", updated.Main.ID)
	}
	if updated.TotalPrice != 37 {
		t.Errorf("updated TotalPrice = %f, want 37", updated.TotalPrice)
	}
	if m.Main.ID != "mn" || m.TotalPrice != 44 {
		t.Error("WithCourse mutated the original menu")
	}
}

func TestDietsSatisfiedIsIntersection(t *testing.T) {
	m := fixtureMenu()
	satisfied := m.DietsSatisfied()
	if !satisfied["vegetarian"] {
		t.Error("vegetarian satisfied by every course but not reported")
	}
	if satisfied["vegan"] {
		t.Error("vegan reported satisfied although the main is not vegan")
	}
	if m.SatisfiesDiets([]string{"vegetarian"}) != true {
		t.Error("SatisfiesDiets(vegetarian) = false, want true")
	}
	if m.SatisfiesDiets([]string{"vegan"}) {
		t.Error("SatisfiesDiets(vegan) = true, want false")
	}
}

func TestContainsAnyIngredient(t *testing.T) {
	m := fixtureMenu()
	if !m.ContainsAnyIngredient([]string{"saffron"}) {
		t.Error("saffron present in the main but not found")
	}
	if m.ContainsAnyIngredient([]string{"peanut"}) {
		t.Error("peanut reported although absent")
	}
}

func TestMaxCapacity(t *testing.T) {
	m := fixtureMenu()
	if got := m.MaxCapacity(); got != 200 {
		t.Errorf("MaxCapacity = %d, want 200 (limited by the main)", got)
	}
}

func TestWithAdaptationAppends(t *testing.T) {
	m := fixtureMenu()
	updated := m.WithAdaptation("swapped beverage")
	if len(updated.Adaptations) != 1 {
		t.Fatalf("len(Adaptations) = %d, want 1", len(updated.Adaptations))
	}
	if len(m.Adaptations) != 0 {
		t.Error("WithAdaptation mutated the original menu")
	}
}
