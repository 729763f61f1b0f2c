package models

import (
	"time"

	"gorm.io/gorm"
)

// DailySummary is the derived aggregate, one row per (user, UTC day).
// It is rebuilt wholesale on every write — never patched incrementally —
// so the row is always a snapshot of a single full scan of meal_entries.
type DailySummary struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_user_day,priority:1;not null"`
	Day    time.Time `gorm:"uniqueIndex:idx_user_day,priority:2;not null"` // UTC midnight

	TotalCalories float64
	TotalProteinG float64
	TotalCarbsG   float64
	TotalFatG     float64
	MealCount     int64

	// Target snapshot as of the last recompute; stays meaningful for
	// history even if the user later changes their goals.
	CalorieTarget  *float64
	ProteinTargetG *float64
	CarbsTargetG   *float64
	FatTargetG     *float64
}
