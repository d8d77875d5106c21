package payments

import (
	"context"
	"halo-optom-service/internal/app/config"
	"halo-optom-service/internal/app/contracts"
	"halo-optom-service/internal/pkg/constvars"
	"halo-optom-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// expiryLeaderLockKey makes sure only one replica sweeps at a time.
const expiryLeaderLockKey = "payments:expiry-sweep:leader"

// ExpiryWorker periodically expires overdue payments. Lazy expiry on read
// stays the rule, the sweep only brings forgotten rows up to date.
type ExpiryWorker struct {
	log            *zap.Logger
	cfg            *config.InternalConfig
	locker         contracts.LockerService
	paymentUsecase contracts.PaymentUsecase
	cron           *cron.Cron
	runCtx         context.Context
	cancel         context.CancelFunc
}

func NewExpiryWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, paymentUsecase contracts.PaymentUsecase) *ExpiryWorker {
	return &ExpiryWorker{log: log, cfg: cfg, locker: lockerSvc, paymentUsecase: paymentUsecase}
}

// Start schedules the sweep with the configured cron spec.
func (w *ExpiryWorker) Start(ctx context.Context) error {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	c := cron.New()
	spec := w.cfg.Payment.ExpirySweepCronSpec
	if _, err := c.AddFunc(spec, func() { w.RunOnce(w.runCtx) }); err != nil {
		w.cancel()
		return err
	}
	c.Start()
	w.cron = c

	w.log.Info("payments.expiryWorker: scheduled", zap.String(constvars.LoggingCronSpecKey, spec))
	return nil
}

// Stop cancels an in-flight sweep and waits for the scheduler to finish.
func (w *ExpiryWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *ExpiryWorker) RunOnce(ctx context.Context) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	requestID := utils.GetRequestID(ctx)

	ttl := time.Duration(w.cfg.Payment.ExpirySweepLockTTL) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}

	acquired, token, err := w.locker.TryLock(ctx, expiryLeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("payments.expiryWorker: leader lock attempt failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		w.log.Info("payments.expiryWorker: leader lock not acquired; another instance is running",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return
	}
	defer w.locker.Unlock(context.WithoutCancel(ctx), expiryLeaderLockKey, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.refreshLock(refreshCtx, token, ttl)

	expired, err := w.paymentUsecase.ExpireOverdue(ctx, w.cfg.Payment.ExpirySweepBatchSize)
	if err != nil {
		w.log.Warn("payments.expiryWorker: sweep stopped early",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCountKey, expired),
			zap.Error(err),
		)
		return
	}

	w.log.Info("payments.expiryWorker: sweep finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, expired),
	)
}

func (w *ExpiryWorker) refreshLock(ctx context.Context, token string, ttl time.Duration) {
	tick := time.NewTicker(ttl / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, expiryLeaderLockKey, token, ttl); err != nil {
				w.log.Warn("payments.expiryWorker: failed to refresh leader lock TTL", zap.Error(err))
			}
		}
	}
}
