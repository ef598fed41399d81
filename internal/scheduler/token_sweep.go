package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tenxer/meta-ads-gateway/internal/config"
	"github.com/tenxer/meta-ads-gateway/internal/usecases/authing"
)

// TokenSweepService periodically drops expired tokens from the token
// store so stale credentials do not linger on disk between logins.
type TokenSweepService struct {
	scheduler    *gocron.Scheduler
	store        *authing.FileTokenStore
	cronSchedule string
	enabled      bool
}

func NewTokenSweepService(store *authing.FileTokenStore, cfg *config.Config) *TokenSweepService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.TokenSweep.CronSchedule,
		"enabled":       cfg.TokenSweep.Enabled,
	}).Info("Token sweep scheduler configured")

	return &TokenSweepService{
		scheduler:    scheduler,
		store:        store,
		cronSchedule: cfg.TokenSweep.CronSchedule,
		enabled:      cfg.TokenSweep.Enabled,
	}
}

func (s *TokenSweepService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Token sweep disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Starting token sweep")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		removed, err := s.store.Sweep()
		if err != nil {
			logrus.WithError(err).Error("Token sweep failed")
			return
		}
		if removed > 0 {
			logrus.WithField("removed", removed).Info("Token sweep removed expired tokens")
		}
	})
	if err != nil {
		return errors.Wrap(err, "scheduling token sweep")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping token sweep")
		s.scheduler.Stop()
	}()

	return nil
}
