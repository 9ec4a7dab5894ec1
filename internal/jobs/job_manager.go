package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	statisticsJob *StatisticsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(statistics StatisticsSource, statisticsSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		statisticsJob: NewStatisticsJob(statistics, statisticsSchedule, logger),
	}
}

// StartAll primes the gauges once and starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll(ctx context.Context) error {
	jm.statisticsJob.Run(ctx)

	if err := jm.statisticsJob.Start(); err != nil {
		return fmt.Errorf("failed to start statistics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statisticsJob.Stop()
}
