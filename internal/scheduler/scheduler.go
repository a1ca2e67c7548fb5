package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job - фоновая задача. Ошибка логируется и считается в метриках, но не останавливает расписание.
type Job func(ctx context.Context) error

// Scheduler запускает фоновые задачи по cron расписанию.
// Следующий запуск задачи пропускается, если предыдущий еще не завершился.
type Scheduler struct {
	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	runs    *prometheus.CounterVec
	timeout time.Duration
	logger  *logrus.Logger
}

// New создает планировщик. timeout ограничивает один запуск задачи (0 - без ограничения).
func New(logger *logrus.Logger, reg prometheus.Registerer, timeout time.Duration) *Scheduler {
	cronLogger := cron.PrintfLogger(logger)
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		ctx:    ctx,
		cancel: cancel,
		runs: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "travel_safety_job_runs_total",
			Help: "Background job runs by job name and result.",
		}, []string{"job", "result"}),
		timeout: timeout,
		logger:  logger,
	}
}

// Add регистрирует задачу. spec - cron выражение или дескриптор вида "@every 15m".
func (s *Scheduler) Add(name, spec string, job Job) error {
	if _, err := s.cron.AddFunc(spec, func() { s.run(name, job) }); err != nil {
		return fmt.Errorf("scheduler: invalid schedule %q for job %s: %w", spec, name, err)
	}
	s.logger.WithFields(logrus.Fields{"job": name, "schedule": spec}).Info("Background job scheduled")
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	log := s.logger.WithField("job", name)
	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := job(ctx); err != nil {
		s.runs.WithLabelValues(name, "failed").Inc()
		log.WithError(err).Error("Background job failed")
		return
	}
	s.runs.WithLabelValues(name, "ok").Inc()
	log.WithField("duration", time.Since(start).String()).Info("Background job finished")
}

func (s *Scheduler) Start() {
	s.logger.Info("Starting background scheduler...")
	s.cron.Start()
}

// Stop останавливает расписание, отменяет запущенные задачи и ждет их завершения
func (s *Scheduler) Stop(ctx context.Context) error {
	s.logger.Info("Stopping background scheduler.")
	done := s.cron.Stop()
	s.cancel()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Every возвращает дескриптор расписания для фиксированного интервала
func Every(interval time.Duration) string {
	return "@every " + interval.String()
}
