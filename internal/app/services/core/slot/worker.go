package slot

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/responses"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	leaderLockTTL      = 2 * time.Minute
	lockReleaseTimeout = 5 * time.Second
)

type slotLister interface {
	ListAvailableSlots(ctx context.Context, doctorID string, date time.Time) (*responses.AvailableSlots, error)
}

// Worker periodically pre-computes slot lists for the coming days so the
// first read of a doctor's day is served from cache.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	locker    contracts.LockerService
	schedules contracts.ScheduleClient
	slots     slotLister
	now       func() time.Time
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, schedules contracts.ScheduleClient, slots slotLister) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, schedules: schedules, slots: slots, now: time.Now}
}

// Start schedules the warm-up on the configured cron spec.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Slot.WorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("slot.worker: failed to schedule with provided cron spec; falling back to @every 15m", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@every 15m", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels any in-flight run and waits for the cron to drain.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeySlotWorkerRun, leaderLockTTL)
	if err != nil {
		w.log.Warn("slot.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("slot.worker: leader lock not acquired; another instance is running")
		return
	}
	defer func() {
		// Stop cancels ctx; the release still has to reach redis.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseTimeout)
		defer cancel()
		if err := w.locker.Unlock(releaseCtx, constvars.RedisKeySlotWorkerRun, token); err != nil {
			w.log.Warn("slot.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(leaderLockTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, constvars.RedisKeySlotWorkerRun, token, leaderLockTTL); err != nil {
					w.log.Warn("slot.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	doctors, err := w.schedules.FindScheduledDoctors(ctx)
	if err != nil {
		w.log.Warn("slot.worker: doctor lookup failed", zap.Error(err))
		return
	}

	days := w.cfg.Slot.WarmUpDays
	if days <= 0 {
		days = 1
	}
	today := w.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	warmed := 0
	for _, doctor := range doctors {
		for offset := 0; offset < days; offset++ {
			if ctx.Err() != nil {
				return
			}
			date := today.AddDate(0, 0, offset)
			if _, err := w.slots.ListAvailableSlots(ctx, doctor.ID, date); err != nil {
				w.log.Warn("slot.worker: warm-up failed",
					zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
					zap.String(constvars.LoggingDateKey, date.Format(constvars.DateLayout)),
					zap.Error(err),
				)
				continue
			}
			warmed++
		}
	}
	w.log.Info("slot.worker: warm-up finished", zap.Int("doctors", len(doctors)), zap.Int("days_warmed", warmed))
}
