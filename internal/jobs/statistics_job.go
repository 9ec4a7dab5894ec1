package jobs

import (
	"context"
	"log/slog"

	"commandes/internal/core/application/usecases/queries"
	"commandes/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultStatisticsSchedule refreshes the gauge every 30 seconds.
const DefaultStatisticsSchedule = "*/30 * * * * *"

// StatisticsSource computes the order counters.
type StatisticsSource interface {
	Handle(ctx context.Context, query queries.GetStatisticsQuery) (queries.GetStatisticsQueryResponse, error)
}

// StatisticsJob copies the per status order counts into the orders_by_status gauge.
type StatisticsJob struct {
	source   StatisticsSource
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatisticsJob creates the job. An empty schedule means DefaultStatisticsSchedule.
// Schedules use the six field format with seconds.
func NewStatisticsJob(source StatisticsSource, schedule string, logger *slog.Logger) *StatisticsJob {
	if schedule == "" {
		schedule = DefaultStatisticsSchedule
	}
	return &StatisticsJob{
		source:   source,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "statistics_job"),
	}
}

// Start registers the schedule and starts the cron runner.
func (j *StatisticsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics job started", "schedule", j.schedule)
	return nil
}

// Run refreshes the gauge once. Failures keep the previous values.
func (j *StatisticsJob) Run(ctx context.Context) {
	stats, err := j.source.Handle(ctx, queries.NewGetStatisticsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Statistics job failed", "error", err)
		return
	}

	for status, total := range stats.OrdersByStatus {
		metrics.OrdersByStatus.WithLabelValues(status.String()).Set(float64(total))
	}
}

// Stop stops the scheduler. Runs in progress are not awaited.
func (j *StatisticsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Statistics job stopped")
}
