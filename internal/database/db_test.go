package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traiteur/internal/casebase"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "traiteur.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadCatalogWhenEmpty(t *testing.T) {
	db := openTestDB(t)

	_, found, err := db.LoadCatalog()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCatalogRoundTrip(t *testing.T) {
	db := openTestDB(t)
	original := casebase.SampleCatalog()

	require.NoError(t, db.SaveCatalog(original))

	loaded, found, err := db.LoadCatalog()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, original.DishCount(), loaded.DishCount())
	assert.Equal(t, original.BeverageCount(), loaded.BeverageCount())

	want, ok := original.Dish("st-gazpacho")
	require.True(t, ok)
	got, ok := loaded.Dish("st-gazpacho")
	require.True(t, ok)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Price, got.Price)
	assert.Equal(t, want.Diets, got.Diets)
	assert.Equal(t, want.Seasons, got.Seasons)
	assert.Equal(t, want.Ingredients, got.Ingredients)
	assert.Equal(t, want.Temperature, got.Temperature)

	wine, ok := loaded.Beverage("bv-rioja-red")
	require.True(t, ok)
	assert.True(t, wine.Alcoholic)
	assert.Equal(t, "full-bodied", wine.Subtype)
}

func TestSaveCatalogIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	catalog := casebase.SampleCatalog()

	require.NoError(t, db.SaveCatalog(catalog))
	require.NoError(t, db.SaveCatalog(catalog))

	loaded, found, err := db.LoadCatalog()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, catalog.DishCount(), loaded.DishCount())
}

func TestCasesRoundTrip(t *testing.T) {
	db := openTestDB(t)
	catalog := casebase.SampleCatalog()
	seeds := casebase.SeedCases(catalog)

	require.NoError(t, db.SaveCases(seeds))

	loaded, err := db.LoadCases()
	require.NoError(t, err)
	require.Len(t, loaded, len(seeds))

	byID := make(map[string]int)
	for i, c := range loaded {
		byID[c.ID] = i
	}

	i, ok := byID["case-wedding-classic"]
	require.True(t, ok)
	got := loaded[i]
	assert.Equal(t, "seed-01", got.Request.ID)
	assert.Equal(t, "st-burrata", got.Menu.Starter.ID)
	assert.Equal(t, 4.6, got.FeedbackScore)
	assert.True(t, got.Success)

	i, ok = byID["case-corporate-overbudget"]
	require.True(t, ok)
	assert.True(t, loaded[i].Negative)
}

func TestSaveCasesReplacesPreviousSnapshot(t *testing.T) {
	db := openTestDB(t)
	catalog := casebase.SampleCatalog()
	seeds := casebase.SeedCases(catalog)

	require.NoError(t, db.SaveCases(seeds))
	require.NoError(t, db.SaveCases(seeds[:2]))

	loaded, err := db.LoadCases()
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}
