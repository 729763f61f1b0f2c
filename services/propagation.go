package services

import (
	"context"

	"github.com/art12345678655/wellness-mini-app/models"

	"gorm.io/gorm"
)

type EntryOp string

const (
	EntryCreated EntryOp = "created"
	EntryUpdated EntryOp = "updated"
	EntryDeleted EntryOp = "deleted"
)

// EntryEvent is one committed mutation of the meal log. Old carries the row
// version before an update or delete; New the version after a create or
// update. Updates carry both so cross-day moves can be detected.
type EntryEvent struct {
	Op  EntryOp
	Old *models.MealEntry
	New *models.MealEntry
}

// PropagateEntryEvent refreshes every daily summary a single log mutation can
// have touched: always the day of the current row version, and for an update
// that moved the entry to a different UTC day (or owner) also the day it
// moved away from — otherwise that day would keep counting a meal that is no
// longer there. Runs against the handle it is given, normally the mutating
// transaction, so a failed recompute rolls the mutation back with it.
//
// Returns the refreshed summaries so the caller can fan them out after commit.
func PropagateEntryEvent(ctx context.Context, tx *gorm.DB, ev EntryEvent) ([]*models.DailySummary, error) {
	cur := ev.New
	if cur == nil {
		cur = ev.Old
	}
	if cur == nil {
		return nil, nil
	}

	svc := NewSummaryService(tx)

	sum, err := svc.Recompute(ctx, cur.UserID, cur.LoggedAt)
	if err != nil {
		return nil, err
	}
	touched := []*models.DailySummary{sum}

	if ev.Op == EntryUpdated && ev.Old != nil {
		movedDay := !DayUTC(ev.Old.LoggedAt).Equal(DayUTC(cur.LoggedAt))
		movedOwner := ev.Old.UserID != cur.UserID
		if movedDay || movedOwner {
			prev, err := svc.Recompute(ctx, ev.Old.UserID, ev.Old.LoggedAt)
			if err != nil {
				return nil, err
			}
			touched = append(touched, prev)
		}
	}

	return touched, nil
}
