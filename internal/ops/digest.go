package ops

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ataa-grants/grants-backend/internal/proposals/service"
)

// Digest logs a nightly snapshot of the dashboard counters so operators
// can follow intake volume without opening the dashboard.
type Digest struct {
	svc  *service.ProposalService
	log  *zap.Logger
	cron *cron.Cron
}

// NewDigest creates the nightly digest job.
func NewDigest(svc *service.ProposalService, log *zap.Logger) *Digest {
	return &Digest{svc: svc, log: log}
}

// Start schedules the digest at midnight.
func (d *Digest) Start() error {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc("0 0 0 * * *", d.run); err != nil {
		return err
	}

	d.cron = c
	c.Start()
	d.log.Info("digest scheduler started (nightly at 12:00AM)")
	return nil
}

// Stop halts the scheduler; the running job, if any, completes.
func (d *Digest) Stop() {
	if d.cron != nil {
		d.cron.Stop()
	}
}

func (d *Digest) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items, err := d.svc.List(ctx)
	if err != nil {
		d.log.Warn("daily digest skipped", zap.Error(err))
		return
	}

	st := service.ComputeStats(items)
	d.log.Info("daily proposal digest",
		zap.Int("total", st.Total),
		zap.Int("pending", st.Pending),
		zap.Int("approved", st.Approved),
		zap.Float64("total_funding", st.TotalFunding),
	)
}
