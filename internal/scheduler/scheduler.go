// Package scheduler runs the monthly generation jobs in the background.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"frota/internal/cycle"
	"frota/internal/logger"
	"frota/internal/metrics"
	"frota/internal/services"
)

// TenantLister returns the tenants the jobs run for.
type TenantLister interface {
	ListActiveTenantIDs() ([]string, error)
}

// Job generates one kind of monthly entry for a tenant and reports how many it created.
type Job struct {
	Name string
	Run  func(tenantID string, month time.Time) (int, error)
}

// RecurringExpenseJob generates the month's payables from active templates.
func RecurringExpenseJob(svc services.RecurringExpenseServicer) Job {
	return Job{
		Name: "recurring_expenses",
		Run: func(tenantID string, month time.Time) (int, error) {
			created, err := svc.GenerateForMonth(tenantID, month)
			return len(created), err
		},
	}
}

// SalaryJob carries last month's payroll into the month.
func SalaryJob(svc services.SalaryServicer) Job {
	return Job{
		Name: "salaries",
		Run: func(tenantID string, month time.Time) (int, error) {
			created, err := svc.GenerateForMonth(tenantID, month)
			return len(created), err
		},
	}
}

// Scheduler checks the clock every interval and runs its jobs once a day,
// on the first tick at or after the configured hour.
type Scheduler struct {
	tenants  TenantLister
	jobs     []Job
	hour     int
	interval time.Duration
	now      func() time.Time
	lastRun  string
}

// New creates a Scheduler that runs jobs at hour (0-23, UTC).
func New(tenants TenantLister, hour int, jobs ...Job) *Scheduler {
	return &Scheduler{
		tenants:  tenants,
		jobs:     jobs,
		hour:     hour,
		interval: time.Minute,
		now:      time.Now,
	}
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	log := logger.Named("scheduler")
	log.Infow("scheduler started", "hour", s.hour, "jobs", len(s.jobs))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.tick()
		select {
		case <-ctx.Done():
			log.Infow("scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

// tick runs the jobs if today's run is due. It reports whether it ran.
func (s *Scheduler) tick() bool {
	now := s.now().UTC()
	today := now.Format(cycle.DateLayout)
	if now.Hour() < s.hour || s.lastRun == today {
		return false
	}
	s.lastRun = today

	if err := s.RunOnce(cycle.MonthStart(now)); err != nil {
		logger.Named("scheduler").Errorw("scheduled run finished with errors", "date", today, "error", err)
	}
	return true
}

// RunOnce runs every job for every active tenant for month. A failing tenant
// does not stop the others; all failures are returned joined.
func (s *Scheduler) RunOnce(month time.Time) error {
	log := logger.Named("scheduler")

	tenantIDs, err := s.tenants.ListActiveTenantIDs()
	if err != nil {
		for _, job := range s.jobs {
			metrics.SchedulerRunsTotal.WithLabelValues(job.Name, "error").Inc()
		}
		return fmt.Errorf("listing tenants: %w", err)
	}

	var errs []error
	for _, job := range s.jobs {
		created, failed := 0, 0
		for _, tenantID := range tenantIDs {
			n, err := job.Run(tenantID, month)
			if err != nil {
				failed++
				errs = append(errs, fmt.Errorf("%s for tenant %s: %w", job.Name, tenantID, err))
				log.Errorw("scheduled job failed", "job", job.Name, "tenant_id", tenantID, "error", err)
				continue
			}
			created += n
		}

		result := "success"
		if failed > 0 {
			result = "error"
		}
		metrics.SchedulerRunsTotal.WithLabelValues(job.Name, result).Inc()
		log.Infow("scheduled job finished",
			"job", job.Name,
			"month", cycle.FormatMonth(month),
			"tenants", len(tenantIDs),
			"created", created,
			"failed", failed,
		)
	}
	return errors.Join(errs...)
}
