package workers

import (
	"context"
	"time"

	"autobuy_backend/internal/logger"
	"autobuy_backend/internal/repositories"
)

// OTPCleanupWorker periodically deletes expired one-time codes so the
// table does not accumulate dead rows. Expired codes are already
// rejected at verification time; this is purely hygiene.
type OTPCleanupWorker struct {
	otpRepo  repositories.OTPRepository
	interval time.Duration
	now      func() time.Time
}

func NewOTPCleanupWorker(otpRepo repositories.OTPRepository, interval time.Duration) *OTPCleanupWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &OTPCleanupWorker{
		otpRepo:  otpRepo,
		interval: interval,
		now:      time.Now,
	}
}

func (w *OTPCleanupWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *OTPCleanupWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("OTP cleanup worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *OTPCleanupWorker) sweep() {
	deleted, err := w.otpRepo.DeleteExpired(w.now())
	if err != nil {
		logger.Error("OTP cleanup sweep failed", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info("Expired OTP records removed", "count", deleted)
	}
}
