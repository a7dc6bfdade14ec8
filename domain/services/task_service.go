package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type TaskService interface {
	// CreateTask makes the calling user the creator. Broadcasts task:created;
	// if an assignee was set, notifies them best-effort.
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	// ListTasks returns the tasks visible to userID (creator or assignee),
	// due date ascending.
	ListTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	// UpdateStatus requires userID to be creator or assignee. Broadcasts
	// task:updated.
	UpdateStatus(ctx context.Context, userID uuid.UUID, taskID uuid.UUID, status string) (*models.Task, error)
	// AssignTask reassigns a task. A nil assignedToID leaves the assignment
	// unchanged. No ownership check is performed here, matching the upstream
	// behavior; any authenticated user may reassign. Broadcasts task:assigned.
	AssignTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID, assignedToID *uuid.UUID) (*models.Task, error)
	// DeleteTask hard-deletes. Only the creator may delete; deleting an
	// already-missing task succeeds. Broadcasts task:deleted with the id.
	DeleteTask(ctx context.Context, userID uuid.UUID, taskID uuid.UUID) (*dto.DeleteTaskResponse, error)
}
