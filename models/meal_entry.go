package models

import (
	"time"

	"gorm.io/gorm"
)

// MealEntry is one logged meal. LoggedAt may carry any zone; aggregation
// always buckets by its UTC calendar date.
type MealEntry struct {
	gorm.Model
	UserID      uint `gorm:"index;not null"`
	Description string
	LoggedAt    time.Time `gorm:"index;not null"`

	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// BeforeSave normalizes LoggedAt to UTC so day-range scans compare
// like-for-like no matter what zone the client sent.
func (e *MealEntry) BeforeSave(tx *gorm.DB) error {
	if !e.LoggedAt.IsZero() {
		e.LoggedAt = e.LoggedAt.UTC()
	}
	return nil
}
