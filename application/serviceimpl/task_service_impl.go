package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	userRepo  repositories.UserRepository
	broadcast ports.BroadcastPort
	notifier  ports.NotifierPort
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	broadcast ports.BroadcastPort,
	notifier ports.NotifierPort,
) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		broadcast: broadcast,
		notifier:  notifier,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	var assignee *models.User
	if req.AssignedToID != nil {
		var err error
		assignee, err = s.userRepo.GetByID(ctx, *req.AssignedToID)
		if err != nil {
			logger.WarnContext(ctx, "Assignee not found", "assigned_to_id", *req.AssignedToID)
			return nil, services.ErrUserNotFound
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}

	task := &models.Task{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Priority:     priority,
		Status:       models.TaskStatusPending,
		DueDate:      req.DueDate,
		CreatorID:    userID,
		AssignedToID: req.AssignedToID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	// Re-fetch with creator and assignee loaded so the broadcast payload
	// matches what GET /tasks returns.
	created, err := s.taskRepo.GetByID(ctx, task.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load created task", "task_id", task.ID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", created.ID, "creator_id", userID)

	s.broadcast.Publish(ports.EventTaskCreated, dto.TaskToTaskResponse(created))

	if assignee != nil {
		s.notifyAssigned(assignee, created)
	}

	return created, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	tasks, err := s.taskRepo.ListForUser(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", userID, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, userID uuid.UUID, taskID uuid.UUID, status string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		return nil, err
	}

	if !task.IsParticipant(userID) {
		logger.WarnContext(ctx, "Status change rejected", "task_id", taskID, "user_id", userID)
		return nil, services.ErrNotTaskParticipant
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, status); err != nil {
		logger.ErrorContext(ctx, "Failed to update task status", "task_id", taskID, "error", err)
		return nil, err
	}

	updated, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Task status updated", "task_id", taskID, "status", status, "user_id", userID)

	s.broadcast.Publish(ports.EventTaskUpdated, dto.TaskToTaskResponse(updated))

	return updated, nil
}

func (s *TaskServiceImpl) AssignTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID, assignedToID *uuid.UUID) (*models.Task, error) {
	// Deliberately no creator check here; any authenticated user may
	// reassign. See the known-gaps notes before tightening this.
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		return nil, err
	}

	var assignee *models.User
	if assignedToID != nil {
		var err error
		assignee, err = s.userRepo.GetByID(ctx, *assignedToID)
		if err != nil {
			logger.WarnContext(ctx, "Assignee not found", "assigned_to_id", *assignedToID)
			return nil, services.ErrUserNotFound
		}

		if err := s.taskRepo.UpdateAssignee(ctx, taskID, *assignedToID); err != nil {
			logger.ErrorContext(ctx, "Failed to assign task", "task_id", taskID, "error", err)
			return nil, err
		}
	}

	// A request without an assignee changes nothing but still broadcasts,
	// matching the original endpoint's behavior.
	updated, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Task assigned", "task_id", taskID, "assigned_by", userID)

	s.broadcast.Publish(ports.EventTaskAssigned, dto.TaskToTaskResponse(updated))

	if assignee != nil {
		s.notifyAssigned(assignee, updated)
	}

	return updated, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) (*dto.DeleteTaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Idempotent: deleting a task that is already gone succeeds
			// and emits no event.
			return &dto.DeleteTaskResponse{Message: "Task already deleted"}, nil
		}
		return nil, err
	}

	if task.CreatorID != userID {
		logger.WarnContext(ctx, "Delete rejected", "task_id", taskID, "user_id", userID)
		return nil, services.ErrNotTaskOwner
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)

	s.broadcast.Publish(ports.EventTaskDeleted, dto.TaskDeletedEvent{ID: taskID})

	return &dto.DeleteTaskResponse{Message: "Task deleted successfully"}, nil
}

// notifyAssigned fires the assignment notification without blocking the
// request. Failures are logged and dropped.
func (s *TaskServiceImpl) notifyAssigned(assignee *models.User, task *models.Task) {
	if s.notifier == nil || !s.notifier.IsEnabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.notifier.SendTaskAssigned(ctx, assignee, task); err != nil {
			logger.Warn("Assignment notification failed", "task_id", task.ID, "assignee_id", assignee.ID, "error", err)
		}
	}()
}
