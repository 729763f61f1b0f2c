package services

import (
	"context"
	"testing"
	"time"

	"github.com/art12345678655/wellness-mini-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentSummariesPercentages(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db)
	ctx := context.Background()

	u := seedUser(t, db, "rex@example.com", "Rex", f64(2000))

	today := DayUTC(time.Now())
	require.NoError(t, db.Create(&models.MealEntry{
		UserID: u.ID, LoggedAt: today.Add(9 * time.Hour),
		Calories: 1234, ProteinG: 75, CarbsG: 125, FatG: 32.5,
	}).Error)
	_, err := svc.Recompute(ctx, u.ID, today)
	require.NoError(t, err)

	rows, err := svc.RecentSummaries(ctx, u.ID, 30)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Rex", row.FullName)
	assert.Equal(t, today.Format("2006-01-02"), row.Day)
	assert.Equal(t, 61.7, row.CaloriePct) // 1234/2000, one decimal
	assert.Equal(t, 50.0, row.ProteinPct)
	assert.Equal(t, 50.0, row.CarbsPct)
	assert.Equal(t, 50.0, row.FatPct)
}

func TestRecentSummariesUndefinedTarget(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db)
	ctx := context.Background()

	// no calorie target at all, and a zero protein target
	u := &models.User{Email: "sam@example.com", FullName: "Sam", ProteinTargetG: f64(0)}
	require.NoError(t, db.Create(u).Error)

	today := DayUTC(time.Now())
	require.NoError(t, db.Create(&models.MealEntry{
		UserID: u.ID, LoggedAt: today.Add(12 * time.Hour), Calories: 900, ProteinG: 60,
	}).Error)
	_, err := svc.Recompute(ctx, u.ID, today)
	require.NoError(t, err)

	rows, err := svc.RecentSummaries(ctx, u.ID, 30)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// nil and non-positive targets both read as 0%, never a division error
	assert.Equal(t, 0.0, rows[0].CaloriePct)
	assert.Equal(t, 0.0, rows[0].ProteinPct)
	assert.Equal(t, 900.0, rows[0].TotalCalories)
}

func TestRecentSummariesWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db)
	ctx := context.Background()

	u := seedUser(t, db, "tam@example.com", "Tam", f64(2000))
	today := DayUTC(time.Now())

	_, err := svc.Recompute(ctx, u.ID, today)
	require.NoError(t, err)
	_, err = svc.Recompute(ctx, u.ID, today.AddDate(0, 0, -40))
	require.NoError(t, err)

	rows, err := svc.RecentSummaries(ctx, u.ID, 30)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, today.Format("2006-01-02"), rows[0].Day)
}

func TestRecentSummariesUserFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewSummaryService(db)
	ctx := context.Background()

	u1 := seedUser(t, db, "uma@example.com", "Uma", f64(2000))
	u2 := seedUser(t, db, "vic@example.com", "Vic", f64(2000))
	today := DayUTC(time.Now())

	_, err := svc.Recompute(ctx, u1.ID, today)
	require.NoError(t, err)
	_, err = svc.Recompute(ctx, u2.ID, today)
	require.NoError(t, err)

	all, err := svc.RecentSummaries(ctx, 0, 30)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	only, err := svc.RecentSummaries(ctx, u2.ID, 30)
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, "Vic", only[0].FullName)
}
