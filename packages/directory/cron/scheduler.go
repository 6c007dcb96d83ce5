package cron

import (
	"context"
	"time"

	"gaming-directory/packages/directory/services"
	"gaming-directory/packages/logger"
	"gaming-directory/packages/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const refreshTimeout = 30 * time.Second

type Scheduler struct {
	cron         *cron.Cron
	statsService *services.StatsService
	log          *logger.Logger
}

func NewScheduler(statsService *services.StatsService, log *logger.Logger) *Scheduler {
	// Seconds precision, job panics are recovered and logged
	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.Recover(cron.PrintfLogger(log))),
	)

	return &Scheduler{
		cron:         c,
		statsService: statsService,
		log:          log,
	}
}

// Start schedules the stats refresh on spec (six fields, seconds first) and
// runs it once immediately so the gauges are populated at boot.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.refreshStats); err != nil {
		s.log.Error("failed to schedule stats refresh", err, zap.String("spec", spec))
		return err
	}

	s.refreshStats()
	s.cron.Start()
	s.log.Info("cron scheduler started", zap.String("stats_spec", spec))

	return nil
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("cron scheduler stopped")
}

func (s *Scheduler) RunNow() {
	s.refreshStats()
}

func (s *Scheduler) refreshStats() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	stats, err := s.statsService.GetStats(ctx)
	if err != nil {
		metrics.StatsRefreshErrorsTotal.Inc()
		s.log.Error("stats refresh failed", err)
		return
	}

	metrics.RecordStats(stats)
	s.log.Debug("stats refreshed",
		zap.Int64("gamers", stats.TotalGamers),
		zap.Int64("games", stats.TotalGames),
		zap.Int64("skills", stats.TotalSkills),
	)
}
