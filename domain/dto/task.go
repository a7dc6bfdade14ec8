package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title        string     `json:"title" validate:"required,min=1,max=200"`
	Description  string     `json:"description" validate:"omitempty,max=1000"`
	Priority     string     `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate      *time.Time `json:"dueDate" validate:"omitempty"`
	AssignedToID *uuid.UUID `json:"assignedToId" validate:"omitempty"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING COMPLETED"`
}

// AssignTaskRequest carries the new assignee. A nil AssignedToID leaves the
// current assignee unchanged; clearing an assignment is not exposed.
type AssignTaskRequest struct {
	AssignedToID *uuid.UUID `json:"assignedToId" validate:"omitempty"`
}

type TaskResponse struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Priority     string        `json:"priority"`
	Status       string        `json:"status"`
	DueDate      *time.Time    `json:"dueDate"`
	CreatorID    uuid.UUID     `json:"creatorId"`
	Creator      *UserResponse `json:"creator,omitempty"`
	AssignedToID *uuid.UUID    `json:"assignedToId"`
	AssignedTo   *UserResponse `json:"assignedTo,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type DeleteTaskResponse struct {
	Message string `json:"message"`
}

// TaskDeletedEvent is the payload of a task:deleted broadcast. A hard delete
// leaves nothing but the id behind.
type TaskDeletedEvent struct {
	ID uuid.UUID `json:"id"`
}
