package ports

import (
	"context"

	"taskboard/domain/models"
)

// NotifierPort sends out-of-band notifications. All sends are best-effort:
// callers run them detached and discard errors.
type NotifierPort interface {
	// SendTaskAssigned tells assignee they were assigned task.
	SendTaskAssigned(ctx context.Context, assignee *models.User, task *models.Task) error

	// SendTaskDueSoon reminds assignee that task is due within a day.
	SendTaskDueSoon(ctx context.Context, assignee *models.User, task *models.Task) error

	IsEnabled() bool
}
