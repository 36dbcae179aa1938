// Package database persists the dish catalog and case-pool snapshots
// in sqlite through gorm. The reasoning core never reads the database
// directly; it works from the in-memory structures loaded at startup.
package database

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // sqlite driver

	"traiteur/internal/casebase"
	"traiteur/internal/models"
)

// DB wraps the gorm connection.
type DB struct {
	orm *gorm.DB
}

// Open opens the sqlite database and migrates the schema.
func Open(path string) (*DB, error) {
	orm, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := orm.AutoMigrate(&DishRecord{}, &BeverageRecord{}, &CaseRecord{}).Error; err != nil {
		orm.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return &DB{orm: orm}, nil
}

// Close closes the connection.
func (d *DB) Close() error {
	return d.orm.Close()
}

// SaveCatalog upserts every dish and beverage of the catalog.
func (d *DB) SaveCatalog(c *casebase.Catalog) error {
	tx := d.orm.Begin()
	if tx.Error != nil {
		return fmt.Errorf("starting transaction: %w", tx.Error)
	}

	for _, dish := range c.Dishes() {
		rec := toDishRecord(&dish)
		if err := tx.Where("id = ?", rec.ID).Delete(&DishRecord{}).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("clearing dish %s: %w", rec.ID, err)
		}
		if err := tx.Create(&rec).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("saving dish %s: %w", rec.ID, err)
		}
	}
	for _, bev := range c.Beverages() {
		rec := toBeverageRecord(&bev)
		if err := tx.Where("id = ?", rec.ID).Delete(&BeverageRecord{}).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("clearing beverage %s: %w", rec.ID, err)
		}
		if err := tx.Create(&rec).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("saving beverage %s: %w", rec.ID, err)
		}
	}
	return tx.Commit().Error
}

// LoadCatalog reads the full catalog. The second return is false when
// the database holds no dishes, so callers can fall back to file or
// sample data.
func (d *DB) LoadCatalog() (*casebase.Catalog, bool, error) {
	var dishRecs []DishRecord
	if err := d.orm.Find(&dishRecs).Error; err != nil {
		return nil, false, fmt.Errorf("loading dishes: %w", err)
	}
	if len(dishRecs) == 0 {
		return nil, false, nil
	}
	var bevRecs []BeverageRecord
	if err := d.orm.Find(&bevRecs).Error; err != nil {
		return nil, false, fmt.Errorf("loading beverages: %w", err)
	}

	catalog := casebase.NewCatalog()
	for i := range dishRecs {
		dish := toDish(&dishRecs[i])
		if err := catalog.AddDish(dish); err != nil {
			return nil, false, fmt.Errorf("dish %s: %w", dish.ID, err)
		}
	}
	for i := range bevRecs {
		if err := catalog.AddBeverage(toBeverage(&bevRecs[i])); err != nil {
			return nil, false, fmt.Errorf("beverage %s: %w", bevRecs[i].ID, err)
		}
	}
	return catalog, true, nil
}

// SaveCases replaces the stored snapshot with the current pool.
func (d *DB) SaveCases(cases []*models.Case) error {
	tx := d.orm.Begin()
	if tx.Error != nil {
		return fmt.Errorf("starting transaction: %w", tx.Error)
	}
	if err := tx.Delete(&CaseRecord{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("clearing cases: %w", err)
	}
	for _, c := range cases {
		rec, err := toCaseRecord(c)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("encoding case %s: %w", c.ID, err)
		}
		if err := tx.Create(&rec).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("saving case %s: %w", c.ID, err)
		}
	}
	return tx.Commit().Error
}

// LoadCases reads the stored case snapshot.
func (d *DB) LoadCases() ([]*models.Case, error) {
	var recs []CaseRecord
	if err := d.orm.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("loading cases: %w", err)
	}
	cases := make([]*models.Case, 0, len(recs))
	for i := range recs {
		c, err := toCase(&recs[i])
		if err != nil {
			return nil, fmt.Errorf("decoding case %s: %w", recs[i].ID, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func toDishRecord(d *models.Dish) DishRecord {
	return DishRecord{
		ID:          d.ID,
		Name:        d.Name,
		Type:        string(d.Type),
		Category:    string(d.Category),
		Price:       d.Price,
		Calories:    d.Calories,
		MaxGuests:   d.MaxGuests,
		Temperature: string(d.Temperature),
		Complexity:  string(d.Complexity),
		Styles:      stylesToStrings(d.Styles),
		Seasons:     seasonsToStrings(d.Seasons),
		Flavors:     flavorsToStrings(d.Flavors),
		Diets:       StringSlice(d.Diets),
		Ingredients: StringSlice(d.Ingredients),
		Beverages:   StringSlice(d.CompatibleBeverages),
		Traditions:  traditionsToStrings(d.CulturalTraditions),
	}
}

func toDish(r *DishRecord) models.Dish {
	return models.Dish{
		ID:                  r.ID,
		Name:                r.Name,
		Type:                models.DishType(r.Type),
		Category:            models.DishCategory(r.Category),
		Price:               r.Price,
		Calories:            r.Calories,
		MaxGuests:           r.MaxGuests,
		Temperature:         models.Temperature(r.Temperature),
		Complexity:          models.Complexity(r.Complexity),
		Styles:              stringsToStyles(r.Styles),
		Seasons:             stringsToSeasons(r.Seasons),
		Flavors:             stringsToFlavors(r.Flavors),
		Diets:               []string(r.Diets),
		Ingredients:         []string(r.Ingredients),
		CompatibleBeverages: []string(r.Beverages),
		CulturalTraditions:  stringsToTraditions(r.Traditions),
	}
}

func toBeverageRecord(b *models.Beverage) BeverageRecord {
	return BeverageRecord{
		ID:        b.ID,
		Name:      b.Name,
		Alcoholic: b.Alcoholic,
		Price:     b.Price,
		Type:      b.Type,
		Subtype:   b.Subtype,
	}
}

func toBeverage(r *BeverageRecord) models.Beverage {
	return models.Beverage{
		ID:        r.ID,
		Name:      r.Name,
		Alcoholic: r.Alcoholic,
		Price:     r.Price,
		Type:      r.Type,
		Subtype:   r.Subtype,
	}
}

func toCaseRecord(c *models.Case) (CaseRecord, error) {
	reqJSON, err := json.Marshal(c.Request)
	if err != nil {
		return CaseRecord{}, err
	}
	menuJSON, err := json.Marshal(c.Menu)
	if err != nil {
		return CaseRecord{}, err
	}
	return CaseRecord{
		ID:               c.ID,
		EventType:        string(c.Request.EventType),
		Season:           string(c.Request.Season),
		Source:           string(c.Source),
		Negative:         c.Negative,
		Success:          c.Success,
		FeedbackScore:    c.FeedbackScore,
		FeedbackComments: c.FeedbackComments,
		UsageCount:       c.UsageCount,
		RequestJSON:      string(reqJSON),
		MenuJSON:         string(menuJSON),
		AdaptationNotes:  StringSlice(c.AdaptationNotes),
		CaseCreatedAt:    c.CreatedAt,
		LastUsed:         c.LastUsed,
	}, nil
}

func toCase(r *CaseRecord) (*models.Case, error) {
	c := &models.Case{
		ID:               r.ID,
		Success:          r.Success,
		FeedbackScore:    r.FeedbackScore,
		FeedbackComments: r.FeedbackComments,
		UsageCount:       r.UsageCount,
		CreatedAt:        r.CaseCreatedAt,
		LastUsed:         r.LastUsed,
		AdaptationNotes:  []string(r.AdaptationNotes),
		Source:           models.CaseSource(r.Source),
		Negative:         r.Negative,
	}
	if err := json.Unmarshal([]byte(r.RequestJSON), &c.Request); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(r.MenuJSON), &c.Menu); err != nil {
		return nil, err
	}
	return c, nil
}

func stylesToStrings(in []models.CulinaryStyle) StringSlice {
	out := make(StringSlice, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func stringsToStyles(in StringSlice) []models.CulinaryStyle {
	out := make([]models.CulinaryStyle, len(in))
	for i, v := range in {
		out[i] = models.CulinaryStyle(v)
	}
	return out
}

func seasonsToStrings(in []models.Season) StringSlice {
	out := make(StringSlice, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func stringsToSeasons(in StringSlice) []models.Season {
	out := make([]models.Season, len(in))
	for i, v := range in {
		out[i] = models.Season(v)
	}
	return out
}

func flavorsToStrings(in []models.Flavor) StringSlice {
	out := make(StringSlice, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func stringsToFlavors(in StringSlice) []models.Flavor {
	out := make([]models.Flavor, len(in))
	for i, v := range in {
		out[i] = models.Flavor(v)
	}
	return out
}

func traditionsToStrings(in []models.CulturalTradition) StringSlice {
	out := make(StringSlice, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

func stringsToTraditions(in StringSlice) []models.CulturalTradition {
	out := make([]models.CulturalTradition, len(in))
	for i, v := range in {
		out[i] = models.CulturalTradition(v)
	}
	return out
}
