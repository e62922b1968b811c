package worker

import (
	"context"
	"time"

	"DevHub/pkg/log"
	"DevHub/service"

	"go.uber.org/zap"
)

// ProSweeper periodically downgrades users whose approved subscription has
// lapsed. Runs once at startup, then hourly.
type ProSweeper struct {
	Subs service.ISubscriptionService
}

func NewProSweeper(subs service.ISubscriptionService) *ProSweeper {
	return &ProSweeper{Subs: subs}
}

func (w *ProSweeper) Start(ctx context.Context) error {
	if err := w.Subs.ExpireSweep(ctx); err != nil {
		log.L.Error("pro expire sweep", zap.Error(err))
	}

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.Subs.ExpireSweep(ctx); err != nil {
				log.L.Error("pro expire sweep", zap.Error(err))
			}
		}
	}
}
