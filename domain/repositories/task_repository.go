package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	// ListForUser returns tasks where userID is creator or assignee, ordered
	// by due date ascending (tasks without a due date sort last).
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	// ListDueBetween returns pending, assigned tasks with a due date inside
	// [from, to). Used by the reminder job.
	ListDueBetween(ctx context.Context, from, to time.Time) ([]*models.Task, error)
	// Per-field mutators instead of a blanket struct update; the creator
	// column is never touched after creation.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateAssignee(ctx context.Context, id uuid.UUID, assignedToID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
