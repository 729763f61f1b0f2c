package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// BackfillScheduler runs a periodic repair backfill over all users, covering
// gaps left by a window where live propagation wasn't running.
type BackfillScheduler struct {
	backfills *BackfillService
	expr      string
	daysBack  int
	cron      *cron.Cron
}

func NewBackfillScheduler(backfills *BackfillService, expr string, daysBack int) *BackfillScheduler {
	return &BackfillScheduler{backfills: backfills, expr: expr, daysBack: daysBack}
}

func (s *BackfillScheduler) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.expr, s.run); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[backfill] scheduled %q covering %d days", s.expr, s.daysBack)
	return nil
}

func (s *BackfillScheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *BackfillScheduler) run() {
	report, err := s.backfills.Backfill(context.Background(), 0, s.daysBack)
	if err != nil {
		log.Printf("[backfill] scheduled run failed: %v", err)
		return
	}
	log.Printf("[backfill] scheduled run: %d users, %d recomputed, %d failures",
		report.Users, report.Recomputed, len(report.Failures))
}
