package cronjob

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sofili-studio/studio-backend/internal/logger"
)

// PendingCounter is the slice of the designs repo the reporter needs.
type PendingCounter interface {
	CountPending(ctx context.Context) (int64, error)
}

// Scheduler periodically logs the depth of the review queue so the studio
// can see how many submissions still wait for a verdict.
type Scheduler struct {
	c *cron.Cron
}

func NewScheduler() *Scheduler {
	return &Scheduler{c: cron.New()}
}

func (s *Scheduler) Start(spec string, repo PendingCounter) error {
	_, err := s.c.AddFunc(spec, func() {
		reportPending(repo)
	})
	if err != nil {
		return err
	}

	logger.Infof("review report scheduled (%s)", spec)
	s.c.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.c.Stop()
}

func reportPending(repo PendingCounter) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := repo.CountPending(ctx)
	if err != nil {
		logger.Errorf("review report failed: %v", err)
		return
	}

	logger.Infof("review queue: %d design(s) pending", n)
}
