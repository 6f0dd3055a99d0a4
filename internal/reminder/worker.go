package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type Options struct {
	// Cron spec of the scan, e.g. "@hourly".
	Spec string
	// Reminders go out for appointments starting in [now+Lead, now+Lead+Window).
	Lead   time.Duration
	Window time.Duration
}

// Worker periodically reminds patients of upcoming appointments. Delivery is
// best effort: a failed send is logged and retried on a later run while the
// appointment is still inside the window.
type Worker struct {
	log    *zap.Logger
	source Source
	marker Marker
	sender Sender
	opts   Options
	now    func() time.Time

	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	source Source,
	marker Marker,
	sender Sender,
	opts Options,
) *Worker {
	return &Worker{
		log:    log,
		source: source,
		marker: marker,
		sender: sender,
		opts:   opts,
		now:    time.Now,
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	c := cron.New()
	_, err := c.AddFunc(w.opts.Spec, func() { w.RunOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("reminder.worker: invalid cron spec; falling back to @hourly",
			zap.String("spec", w.opts.Spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { w.RunOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running scan to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

// RunOnce performs one scan and returns how many reminders were sent.
func (w *Worker) RunOnce(ctx context.Context) int {
	from := w.now().Add(w.opts.Lead)
	to := from.Add(w.opts.Window)

	// Calendar dates are local to each clinic; widen by a day on each side
	// and filter on the exact instant below.
	candidates, err := w.source.ListScheduled(ctx, from.AddDate(0, 0, -1), to.AddDate(0, 0, 1))
	if err != nil {
		w.log.Warn("reminder.worker: scan failed", zap.Error(err))
		return 0
	}

	ttl := w.opts.Lead + w.opts.Window + time.Hour
	sent := 0

	for _, d := range candidates {
		if ctx.Err() != nil {
			break
		}

		at := timezone.At(d.Timezone, d.Date, d.StartsAt)
		if at.Before(from) || !at.Before(to) {
			continue
		}

		key := fmt.Sprintf("appointment:%d", d.AppointmentID)
		fresh, err := w.marker.Mark(ctx, key, ttl)
		if err != nil {
			w.log.Warn("reminder.worker: dedupe failed", zap.Uint("appointment_id", d.AppointmentID), zap.Error(err))
			continue
		}
		if !fresh {
			continue
		}

		if err := w.sender.Send(ctx, d); err != nil {
			w.log.Warn("reminder.worker: send failed", zap.Uint("appointment_id", d.AppointmentID), zap.Error(err))
			if err := w.marker.Unmark(ctx, key); err != nil {
				w.log.Warn("reminder.worker: unmark failed", zap.Uint("appointment_id", d.AppointmentID), zap.Error(err))
			}
			continue
		}
		sent++
	}

	w.log.Info("reminder.worker: scan done",
		zap.Int("candidates", len(candidates)),
		zap.Int("sent", sent),
	)
	return sent
}
