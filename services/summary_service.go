package services

import (
	"context"
	"errors"
	"time"

	"github.com/art12345678655/wellness-mini-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DayUTC truncates a timestamp to its UTC calendar date. All aggregation
// buckets by this, regardless of the zone the entry was logged in.
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

type SummaryService struct{ db *gorm.DB }

func NewSummaryService(db *gorm.DB) *SummaryService { return &SummaryService{db: db} }

// Recompute rebuilds the daily summary for one (user, day) pair from scratch:
// re-scan every entry on that UTC day, snapshot the user's current targets,
// and overwrite the summary row in a single upsert keyed on (user_id, day).
// It never applies deltas, so redundant or out-of-order calls converge on the
// same row. A user with no profile and no entries still gets a zero row.
func (s *SummaryService) Recompute(ctx context.Context, userID uint, day time.Time) (*models.DailySummary, error) {
	start := DayUTC(day)
	end := start.AddDate(0, 0, 1)

	var entries []models.MealEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	var cals, prot, carbs, fat float64
	for _, e := range entries {
		cals += e.Calories
		prot += e.ProteinG
		carbs += e.CarbsG
		fat += e.FatG
	}

	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	// missing user just means no target snapshot; the row is still written

	sum := models.DailySummary{
		UserID:         userID,
		Day:            start,
		TotalCalories:  cals,
		TotalProteinG:  prot,
		TotalCarbsG:    carbs,
		TotalFatG:      fat,
		MealCount:      int64(len(entries)),
		CalorieTarget:  user.CalorieTarget,
		ProteinTargetG: user.ProteinTargetG,
		CarbsTargetG:   user.CarbsTargetG,
		FatTargetG:     user.FatTargetG,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_calories", "total_protein_g", "total_carbs_g", "total_fat_g",
			"meal_count",
			"calorie_target", "protein_target_g", "carbs_target_g", "fat_target_g",
			"updated_at",
		}),
	}).Create(&sum).Error; err != nil {
		return nil, err
	}

	return &sum, nil
}

// GetSummary returns the stored row for one (user, day), or
// gorm.ErrRecordNotFound if that day was never aggregated.
func (s *SummaryService) GetSummary(ctx context.Context, userID uint, day time.Time) (*models.DailySummary, error) {
	var sum models.DailySummary
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, DayUTC(day)).
		First(&sum).Error
	if err != nil {
		return nil, err
	}
	return &sum, nil
}
