package scheduler

import (
	"context"
	"fmt"
	"time"

	"compliance_reminder_service/internal/app" // For DispatchService interface

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// tickTimeout bounds one full dispatch batch, including outbound mail calls.
const tickTimeout = 10 * time.Minute

// DispatchScheduler owns the daily cron trigger for the dispatch loop. The
// host process creates exactly one instance and stops it on shutdown; there is
// no ambient/global schedule registration.
type DispatchScheduler struct {
	cronEngine      *cron.Cron
	dispatchService app.DispatchService // Using the interface
	logger          *logrus.Logger
	cronSpec        string
	location        *time.Location
}

func NewDispatchScheduler(
	dispatchService app.DispatchService,
	logger *logrus.Logger,
	cronSpec string, // e.g., "0 9 * * *" (9:00 AM daily)
	location *time.Location,
) *DispatchScheduler {
	return &DispatchScheduler{
		// Skip-if-still-running: if a tick is still in flight when the next
		// nominal fire time arrives, the next fire is dropped with a warning.
		cronEngine: cron.New(
			cron.WithLocation(location),
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger))),
		),
		dispatchService: dispatchService,
		logger:          logger,
		cronSpec:        cronSpec,
		location:        location,
	}
}

func (s *DispatchScheduler) Start() error {
	_, err := s.cronEngine.AddFunc(s.cronSpec, s.runTick)
	if err != nil {
		return fmt.Errorf("could not add dispatch cron job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.Infof("Dispatch scheduler started (spec %q, timezone %s).", s.cronSpec, s.location)
	return nil
}

func (s *DispatchScheduler) runTick() {
	s.logger.Info("Cron job triggered for scheduled reminder dispatch.")
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	// Normalize to just the date part in the reference timezone; the
	// evaluator works on civil calendar fields only.
	now := time.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)

	if err := s.dispatchService.RunScheduledDispatch(ctx, today); err != nil {
		s.logger.Errorf("Error during scheduled reminder dispatch: %v", err)
	}
}

func (s *DispatchScheduler) Stop() {
	s.logger.Info("Stopping dispatch scheduler...")
	ctx := s.cronEngine.Stop() // Stops new fires, waits for a running tick.
	<-ctx.Done()
	s.logger.Info("Dispatch scheduler gracefully stopped.")
}
