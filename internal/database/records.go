package database

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringSlice stores a slice of strings as a JSON text column.
type StringSlice []string

// Value converts the slice to JSON for storage.
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slice.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// DishRecord persists one catalog dish.
type DishRecord struct {
	ID          string `gorm:"primary_key;column:id"`
	Name        string
	Type        string
	Category    string
	Price       float64
	Calories    int
	MaxGuests   int
	Temperature string
	Complexity  string
	Styles      StringSlice `gorm:"type:text"`
	Seasons     StringSlice `gorm:"type:text"`
	Flavors     StringSlice `gorm:"type:text"`
	Diets       StringSlice `gorm:"type:text"`
	Ingredients StringSlice `gorm:"type:text"`
	Beverages   StringSlice `gorm:"type:text"`
	Traditions  StringSlice `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName sets the dishes table name.
func (DishRecord) TableName() string { return "dishes" }

// BeverageRecord persists one catalog beverage.
type BeverageRecord struct {
	ID        string `gorm:"primary_key;column:id"`
	Name      string
	Alcoholic bool
	Price     float64
	Type      string
	Subtype   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName sets the beverages table name.
func (BeverageRecord) TableName() string { return "beverages" }

// CaseRecord snapshots one stored case. The request and menu travel as
// JSON documents; the indexed columns exist for ad-hoc queries only,
// the reasoning core always works from the in-memory store.
type CaseRecord struct {
	ID               string `gorm:"primary_key;column:id"`
	EventType        string `gorm:"index"`
	Season           string
	Source           string
	Negative         bool
	Success          bool
	FeedbackScore    float64
	FeedbackComments string      `gorm:"type:text"`
	UsageCount       int
	RequestJSON      string      `gorm:"type:text"`
	MenuJSON         string      `gorm:"type:text"`
	AdaptationNotes  StringSlice `gorm:"type:text"`
	CaseCreatedAt    time.Time
	LastUsed         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName sets the cases table name.
func (CaseRecord) TableName() string { return "cases" }
