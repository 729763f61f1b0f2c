package services

import (
	"context"
	"log"
	"time"

	"github.com/art12345678655/wellness-mini-app/models"

	"gorm.io/gorm"
)

type BackfillService struct {
	db        *gorm.DB
	summaries *SummaryService
}

func NewBackfillService(db *gorm.DB) *BackfillService {
	return &BackfillService{db: db, summaries: NewSummaryService(db)}
}

type BackfillFailure struct {
	UserID uint   `json:"user_id"`
	Day    string `json:"day"`
	Error  string `json:"error"`
}

type BackfillReport struct {
	Users      int               `json:"users"`
	DaysBack   int               `json:"days_back"`
	Recomputed int               `json:"recomputed"`
	Failures   []BackfillFailure `json:"failures,omitempty"`
}

// Backfill re-materializes summaries for the last daysBack UTC days
// (offset 0 = today). userID = 0 covers every known user. Each (user, day)
// recompute is independent and idempotent, so one failure doesn't abort the
// run and a partial run can simply be re-issued.
func (s *BackfillService) Backfill(ctx context.Context, userID uint, daysBack int) (*BackfillReport, error) {
	var userIDs []uint
	if userID != 0 {
		userIDs = []uint{userID}
	} else {
		if err := s.db.WithContext(ctx).
			Model(&models.User{}).
			Pluck("id", &userIDs).Error; err != nil {
			return nil, err
		}
	}

	report := &BackfillReport{Users: len(userIDs), DaysBack: daysBack}
	today := DayUTC(time.Now())

	for _, uid := range userIDs {
		for offset := 0; offset < daysBack; offset++ {
			day := today.AddDate(0, 0, -offset)
			if _, err := s.summaries.Recompute(ctx, uid, day); err != nil {
				log.Printf("backfill: recompute user=%d day=%s failed: %v",
					uid, day.Format("2006-01-02"), err)
				report.Failures = append(report.Failures, BackfillFailure{
					UserID: uid,
					Day:    day.Format("2006-01-02"),
					Error:  err.Error(),
				})
				continue
			}
			report.Recomputed++
		}
	}

	return report, nil
}
