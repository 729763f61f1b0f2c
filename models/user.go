package models

import (
	"gorm.io/gorm"
)

// User doubles as the target store: the four daily nutrition targets live on
// the profile row, each nullable because onboarding may not have set them.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	FullName string

	CalorieTarget  *float64 // kcal
	ProteinTargetG *float64
	CarbsTargetG   *float64
	FatTargetG     *float64
}
