package dto

import (
	"github.com/google/uuid"

	"taskboard/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// TaskToTaskResponse maps a task with its preloaded associations. Creator and
// assignee come out as public summaries only.
func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}

	resp := &TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Priority:     task.Priority,
		Status:       task.Status,
		DueDate:      task.DueDate,
		CreatorID:    task.CreatorID,
		AssignedToID: task.AssignedToID,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}

	if task.Creator.ID != uuid.Nil {
		resp.Creator = UserToUserResponse(&task.Creator)
	}
	if task.AssignedTo != nil {
		resp.AssignedTo = UserToUserResponse(task.AssignedTo)
	}

	return resp
}
