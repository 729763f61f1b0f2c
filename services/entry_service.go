package services

import (
	"context"
	"time"

	"github.com/art12345678655/wellness-mini-app/models"

	"gorm.io/gorm"
)

// EntryService owns the meal-log write path. Every mutation and its summary
// propagation run in one transaction: if the recompute fails, the log
// mutation is rejected with it. Realtime fanout happens only after commit.
type EntryService struct {
	db  *gorm.DB
	hub *RealtimeHub // optional
}

func NewEntryService(db *gorm.DB, hub *RealtimeHub) *EntryService {
	return &EntryService{db: db, hub: hub}
}

type EntryRequest struct {
	Description string    `json:"description"`
	LoggedAt    time.Time `json:"logged_at"`
	Calories    float64   `json:"calories"`
	ProteinG    float64   `json:"protein_g"`
	CarbsG      float64   `json:"carbs_g"`
	FatG        float64   `json:"fat_g"`
}

func (s *EntryService) AddEntry(ctx context.Context, userID uint, req EntryRequest) (*models.MealEntry, error) {
	entry := &models.MealEntry{
		UserID:      userID,
		Description: req.Description,
		LoggedAt:    req.LoggedAt,
		Calories:    req.Calories,
		ProteinG:    req.ProteinG,
		CarbsG:      req.CarbsG,
		FatG:        req.FatG,
	}

	var touched []*models.DailySummary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		var err error
		touched, err = PropagateEntryEvent(ctx, tx, EntryEvent{Op: EntryCreated, New: entry})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notify(touched)
	return entry, nil
}

func (s *EntryService) UpdateEntry(ctx context.Context, userID, entryID uint, req EntryRequest) (*models.MealEntry, error) {
	var entry models.MealEntry
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	old := entry

	entry.Description = req.Description
	entry.LoggedAt = req.LoggedAt
	entry.Calories = req.Calories
	entry.ProteinG = req.ProteinG
	entry.CarbsG = req.CarbsG
	entry.FatG = req.FatG

	var touched []*models.DailySummary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&entry).Error; err != nil {
			return err
		}
		var err error
		touched, err = PropagateEntryEvent(ctx, tx, EntryEvent{Op: EntryUpdated, Old: &old, New: &entry})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notify(touched)
	return &entry, nil
}

func (s *EntryService) DeleteEntry(ctx context.Context, userID, entryID uint) error {
	var entry models.MealEntry
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return err
	}

	var touched []*models.DailySummary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entry).Error; err != nil {
			return err
		}
		var err error
		touched, err = PropagateEntryEvent(ctx, tx, EntryEvent{Op: EntryDeleted, Old: &entry})
		return err
	})
	if err != nil {
		return err
	}

	s.notify(touched)
	return nil
}

func (s *EntryService) GetEntry(ctx context.Context, userID, entryID uint) (*models.MealEntry, error) {
	var entry models.MealEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &entry, nil
}

func (s *EntryService) ListEntriesByDateRange(ctx context.Context, userID uint, from, to time.Time) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, from.UTC(), to.UTC()).
		Order("logged_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *EntryService) notify(sums []*models.DailySummary) {
	if s.hub == nil {
		return
	}
	for _, sum := range sums {
		s.hub.BroadcastSummary(sum.UserID, map[string]any{
			"kind":    "summary.updated",
			"summary": sum,
		})
	}
}
