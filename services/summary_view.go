package services

import (
	"context"
	"math"
	"time"
)

const recentWindowDays = 30

// SummaryViewRow is one day of the dashboard projection: stored totals plus
// percent-of-target per metric, computed at read time.
type SummaryViewRow struct {
	OwnerID  uint    `json:"user_id"`
	FullName string  `json:"full_name"`
	Day      string  `json:"day"` // YYYY-MM-DD

	TotalCalories float64 `json:"total_calories"`
	TotalProteinG float64 `json:"total_protein_g"`
	TotalCarbsG   float64 `json:"total_carbs_g"`
	TotalFatG     float64 `json:"total_fat_g"`
	MealCount     int64   `json:"meal_count"`

	CaloriePct float64 `json:"calorie_pct"`
	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatPct     float64 `json:"fat_pct"`
}

type summaryWithName struct {
	UserID   uint
	FullName string
	Day      time.Time

	TotalCalories float64
	TotalProteinG float64
	TotalCarbsG   float64
	TotalFatG     float64
	MealCount     int64

	CalorieTarget  *float64
	ProteinTargetG *float64
	CarbsTargetG   *float64
	FatTargetG     *float64
}

// pctOf is percent of target rounded to one decimal. A nil or non-positive
// target is "undefined", reported as 0 rather than dividing.
func pctOf(total float64, target *float64) float64 {
	if target == nil || *target <= 0 {
		return 0
	}
	return math.Round(total / *target * 1000) / 10
}

// RecentSummaries projects the last `days` (capped at 30) of summaries,
// joined with the owner's display name. userID = 0 returns every user.
// Nothing is materialized; percentages are recomputed on every call.
func (s *SummaryService) RecentSummaries(ctx context.Context, userID uint, days int) ([]SummaryViewRow, error) {
	if days <= 0 || days > recentWindowDays {
		days = recentWindowDays
	}
	cutoff := DayUTC(time.Now()).AddDate(0, 0, -(days - 1))

	q := s.db.WithContext(ctx).
		Table("daily_summaries").
		Select("daily_summaries.user_id, users.full_name, daily_summaries.day, " +
			"daily_summaries.total_calories, daily_summaries.total_protein_g, " +
			"daily_summaries.total_carbs_g, daily_summaries.total_fat_g, " +
			"daily_summaries.meal_count, daily_summaries.calorie_target, " +
			"daily_summaries.protein_target_g, daily_summaries.carbs_target_g, " +
			"daily_summaries.fat_target_g").
		Joins("JOIN users ON users.id = daily_summaries.user_id").
		Where("daily_summaries.day >= ? AND daily_summaries.deleted_at IS NULL", cutoff).
		Order("daily_summaries.user_id ASC, daily_summaries.day DESC")
	if userID != 0 {
		q = q.Where("daily_summaries.user_id = ?", userID)
	}

	var rows []summaryWithName
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]SummaryViewRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, SummaryViewRow{
			OwnerID:       r.UserID,
			FullName:      r.FullName,
			Day:           r.Day.UTC().Format("2006-01-02"),
			TotalCalories: r.TotalCalories,
			TotalProteinG: r.TotalProteinG,
			TotalCarbsG:   r.TotalCarbsG,
			TotalFatG:     r.TotalFatG,
			MealCount:     r.MealCount,
			CaloriePct:    pctOf(r.TotalCalories, r.CalorieTarget),
			ProteinPct:    pctOf(r.TotalProteinG, r.ProteinTargetG),
			CarbsPct:      pctOf(r.TotalCarbsG, r.CarbsTargetG),
			FatPct:        pctOf(r.TotalFatG, r.FatTargetG),
		})
	}
	return out, nil
}
