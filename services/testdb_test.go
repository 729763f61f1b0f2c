package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/art12345678655/wellness-mini-app/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database, named per test so shared
// cache doesn't leak state between tests. One connection max: the memory DB
// lives and dies with it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MealEntry{},
		&models.DailySummary{},
	))
	return db
}

func f64(v float64) *float64 { return &v }

func seedUser(t *testing.T, db *gorm.DB, email, name string, calTarget *float64) *models.User {
	t.Helper()
	u := &models.User{
		Email:          email,
		FullName:       name,
		CalorieTarget:  calTarget,
		ProteinTargetG: f64(150),
		CarbsTargetG:   f64(250),
		FatTargetG:     f64(65),
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedEntry(t *testing.T, db *gorm.DB, userID uint, loggedAt string, cals, prot, carbs, fat float64) *models.MealEntry {
	t.Helper()
	e := &models.MealEntry{
		UserID:   userID,
		LoggedAt: mustTime(t, loggedAt),
		Calories: cals,
		ProteinG: prot,
		CarbsG:   carbs,
		FatG:     fat,
	}
	require.NoError(t, db.Create(e).Error)
	return e
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}
