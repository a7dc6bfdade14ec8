package serviceimpl

import (
	"context"
	"time"

	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
	"taskboard/pkg/scheduler"
)

const dueSoonJobID = "due_soon_reminder"

// ReminderService mails assignees about pending tasks due within the next
// 24 hours. It runs on a cron schedule and never blocks request handling.
type ReminderService struct {
	taskRepo repositories.TaskRepository
	notifier ports.NotifierPort
	cfg      config.ReminderConfig
}

func NewReminderService(taskRepo repositories.TaskRepository, notifier ports.NotifierPort, cfg config.ReminderConfig) *ReminderService {
	return &ReminderService{
		taskRepo: taskRepo,
		notifier: notifier,
		cfg:      cfg,
	}
}

// RegisterJob adds the reminder to the scheduler when the feature and the
// notifier are both enabled.
func (s *ReminderService) RegisterJob(sched scheduler.EventScheduler) error {
	if !s.cfg.Enabled {
		logger.Info("Due-soon reminder disabled")
		return nil
	}
	if s.notifier == nil || !s.notifier.IsEnabled() {
		logger.Warn("Due-soon reminder enabled but mail gateway is not configured, skipping")
		return nil
	}

	return sched.AddJob(dueSoonJobID, s.cfg.Cron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.Run(ctx); err != nil {
			logger.Error("Due-soon reminder run failed", "error", err)
		}
	})
}

// Run sends one reminder per assigned, pending task due inside the next day.
// Individual send failures are logged and do not stop the sweep.
func (s *ReminderService) Run(ctx context.Context) error {
	now := time.Now()
	tasks, err := s.taskRepo.ListDueBetween(ctx, now, now.Add(24*time.Hour))
	if err != nil {
		return err
	}

	sent := 0
	for _, task := range tasks {
		if task.AssignedTo == nil {
			continue
		}
		if err := s.notifier.SendTaskDueSoon(ctx, task.AssignedTo, task); err != nil {
			logger.Warn("Due-soon reminder send failed", "task_id", task.ID, "assignee_id", task.AssignedTo.ID, "error", err)
			continue
		}
		sent++
	}

	logger.Info("Due-soon reminder run finished", "candidates", len(tasks), "sent", sent)
	return nil
}
