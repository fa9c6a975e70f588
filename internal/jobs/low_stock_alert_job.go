package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultLowStockSchedule scans the catalog every minute.
const DefaultLowStockSchedule = "0 * * * * *"

// LowStockAlertJob periodically grades catalog stock against the restock
// threshold and raises LowStockDetected events for changed severities.
type LowStockAlertJob struct {
	handler   commands.DetectLowStockCommandHandler
	threshold int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockAlertJob creates the job. schedule is a six-field cron
// expression (seconds first); empty means DefaultLowStockSchedule.
func NewLowStockAlertJob(
	handler commands.DetectLowStockCommandHandler,
	threshold int,
	schedule string,
	logger *slog.Logger,
) *LowStockAlertJob {
	if schedule == "" {
		schedule = DefaultLowStockSchedule
	}
	return &LowStockAlertJob{
		handler:   handler,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_alert_job"),
	}
}

// Start validates the threshold and schedules the scan.
func (j *LowStockAlertJob) Start() error {
	cmd, err := commands.NewDetectLowStockCommand(j.threshold)
	if err != nil {
		return fmt.Errorf("invalid low stock threshold: %w", err)
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background(), cmd) }); err != nil {
		return fmt.Errorf("invalid low stock schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started",
		"schedule", j.schedule, "threshold", j.threshold)
	return nil
}

// Run performs a single scan.
func (j *LowStockAlertJob) Run(ctx context.Context, cmd commands.DetectLowStockCommand) {
	raised, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock scan failed", "error", err)
		return
	}

	for _, e := range raised {
		j.logger.WarnContext(ctx, "Low stock detected",
			"product_id", e.AggregateID(),
			"stock_quantity", e.StockQuantity,
			"severity", e.Severity.String())
	}
}

// Stop waits for a running scan to finish.
func (j *LowStockAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
