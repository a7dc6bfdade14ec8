package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusPending   = "PENDING"
	TaskStatusCompleted = "COMPLETED"

	TaskPriorityLow    = "LOW"
	TaskPriorityMedium = "MEDIUM"
	TaskPriorityHigh   = "HIGH"
)

type Task struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title        string    `gorm:"not null"`
	Description  string
	Priority     string `gorm:"default:'MEDIUM'"`
	Status       string `gorm:"default:'PENDING'"`
	DueDate      *time.Time
	CreatorID    uuid.UUID `gorm:"type:uuid;not null;index"` // fixed at creation
	Creator      User      `gorm:"foreignKey:CreatorID"`
	AssignedToID *uuid.UUID `gorm:"type:uuid;index"`
	AssignedTo   *User      `gorm:"foreignKey:AssignedToID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// IsParticipant reports whether userID is the task's creator or current assignee.
func (t *Task) IsParticipant(userID uuid.UUID) bool {
	if t.CreatorID == userID {
		return true
	}
	return t.AssignedToID != nil && *t.AssignedToID == userID
}
