package jobs

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ewayExpirySchedule runs the sweep once a day at 06:00 server time, early
// enough for the compliance desk to act before vehicles roll out.
const ewayExpirySchedule = "0 0 6 * * *"

// EWayExpiryJob manages the scheduled e-way bill expiry sweep.
// Waybills still in flight past their e-way bill validity are reported for
// the compliance desk; the sweep never mutates state.
type EWayExpiryJob struct {
	handler queries.ListExpiredEWayBillsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEWayExpiryJob creates a new job for the daily e-way bill expiry sweep.
func NewEWayExpiryJob(handler queries.ListExpiredEWayBillsQueryHandler, logger *slog.Logger) *EWayExpiryJob {
	return &EWayExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "eway_expiry_job"),
	}
}

// Start schedules the daily sweep.
func (j *EWayExpiryJob) Start() error {
	_, err := j.cron.AddFunc(ewayExpirySchedule, func() {
		j.Run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "E-way bill expiry job started (running daily)")
	return nil
}

// Run executes one sweep immediately. Exposed separately so the composition
// root can trigger a sweep on startup without waiting for the schedule.
func (j *EWayExpiryJob) Run(ctx context.Context) {
	query, err := queries.NewListExpiredEWayBillsQuery(time.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "E-way bill expiry sweep failed", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "E-way bill expiry sweep failed", "error", err)
		return
	}

	for _, record := range expired {
		j.logger.WarnContext(ctx, "Waybill in flight with expired e-way bill",
			"waybillNumber", record.WaybillNumber,
			"partnerCode", record.PartnerCode,
			"status", record.Status,
			"expiredAt", record.EWayBillExpiryDate,
		)
	}

	j.logger.InfoContext(ctx, "E-way bill expiry sweep completed", "expiredCount", len(expired))
}

// Stop stops the e-way bill expiry job.
func (j *EWayExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "E-way bill expiry job stopped")
}
