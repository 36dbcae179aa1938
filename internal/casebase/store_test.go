package casebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traiteur/internal/models"
)

func seededStore(t *testing.T) (*Store, *Catalog) {
	t.Helper()
	catalog := SampleCatalog()
	store := NewStore()
	for _, c := range SeedCases(catalog) {
		store.Add(c)
	}
	require.Greater(t, store.Len(), 0)
	return store, catalog
}

func TestSeedCasesReferenceCatalog(t *testing.T) {
	store, catalog := seededStore(t)
	for _, c := range store.All() {
		_, ok := catalog.Dish(c.Menu.Starter.ID)
		assert.True(t, ok, "case %s references unknown starter %s", c.ID, c.Menu.Starter.ID)
		assert.Greater(t, c.Menu.TotalPrice, 0.0)
	}
}

func TestByEventIndex(t *testing.T) {
	store, _ := seededStore(t)
	weddings := store.ByEvent(models.EventWedding)
	require.NotEmpty(t, weddings)
	for _, c := range weddings {
		assert.Equal(t, models.EventWedding, c.Request.EventType)
	}
}

func TestByPriceRange(t *testing.T) {
	store, _ := seededStore(t)
	for _, c := range store.ByPriceRange(30, 60) {
		price := c.Menu.TotalPrice
		assert.True(t, price >= 30 && price <= 60, "case %s priced %.2f outside [30, 60]", c.ID, price)
	}
}

func TestRemoveRebuildsIndexes(t *testing.T) {
	store, _ := seededStore(t)
	before := store.Len()
	victim := store.All()[0]

	removed := store.Remove(map[string]bool{victim.ID: true})
	assert.Equal(t, 1, removed)
	assert.Equal(t, before-1, store.Len())

	_, ok := store.Get(victim.ID)
	assert.False(t, ok)
	for _, c := range store.ByEvent(victim.Request.EventType) {
		assert.NotEqual(t, victim.ID, c.ID)
	}
}

func TestReplaceKeepsCount(t *testing.T) {
	store, _ := seededStore(t)
	before := store.Len()
	original := store.All()[0]

	updated := *original
	updated.FeedbackScore = 1.5
	require.True(t, store.Replace(original.ID, &updated))

	assert.Equal(t, before, store.Len())
	got, ok := store.Get(original.ID)
	require.True(t, ok)
	assert.Equal(t, 1.5, got.FeedbackScore)

	assert.False(t, store.Replace("no-such-case", &updated))
}

func TestStats(t *testing.T) {
	store, _ := seededStore(t)
	stats := store.Stats()
	assert.Equal(t, store.Len(), stats.TotalCases)
	assert.GreaterOrEqual(t, stats.NegativeCases, 1, "seed data carries at least one failure case")
	assert.Greater(t, stats.AverageFeedback, 0.0)
	total := 0
	for _, n := range stats.CasesByEvent {
		total += n
	}
	assert.Equal(t, stats.TotalCases, total)
}
