package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/pkg/logger"
)

type registrationCloser interface {
	CloseRegistrationBefore(ctx context.Context, date string) (int64, error)
}

// RegistrationCloseJob turns registration off for upcoming events whose
// date has passed.
type RegistrationCloseJob struct {
	repo     registrationCloser
	schedule string
	cron     *cron.Cron
	now      func() time.Time
}

func NewRegistrationCloseJob(repo registrationCloser, schedule string) *RegistrationCloseJob {
	return &RegistrationCloseJob{
		repo:     repo,
		schedule: schedule,
		now:      time.Now,
	}
}

// Enabled reports whether a schedule was configured.
func (j *RegistrationCloseJob) Enabled() bool {
	return j.schedule != ""
}

// Start runs one pass immediately and then follows the cron schedule until
// Stop is called. An empty schedule leaves the job off.
func (j *RegistrationCloseJob) Start(ctx context.Context) error {
	if !j.Enabled() {
		logger.Info(ctx, "registration close job disabled")
		return nil
	}
	j.cron = cron.New()
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("invalid registration close schedule %q: %w", j.schedule, err)
	}

	logger.Info(ctx, "starting registration close job", zap.String("schedule", j.schedule))
	j.RunOnce(ctx)
	j.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running pass to finish.
func (j *RegistrationCloseJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
	logger.Info(context.Background(), "registration close job stopped")
}

// RunOnce closes registration for every event dated before today.
func (j *RegistrationCloseJob) RunOnce(ctx context.Context) int64 {
	today := j.now().Format(entities.DateLayout)
	changed, err := j.repo.CloseRegistrationBefore(ctx, today)
	if err != nil {
		logger.Error(ctx, "closing past registrations failed", zap.Error(err))
		return 0
	}
	if changed > 0 {
		logger.Info(ctx, "closed registration for past events", zap.Int64("count", changed), zap.String("before", today))
	}
	return changed
}
