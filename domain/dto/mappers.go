package dto

import (
	"github.com/sathvik89/Taskease/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func UsersToUserResponses(users []*models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *UserToUserResponse(user)
	}
	return responses
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Category:    task.Category,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CreatedBy:   task.CreatedBy,
		IsDeleted:   task.IsDeleted,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// TasksToTaskResponses always returns a non-nil slice so empty results
// encode as [].
func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}

func TaskStatsToResponse(stats *models.TaskStats) *TaskStatsResponse {
	return &TaskStatsResponse{
		TotalTasks:      stats.TotalTasks,
		TodoTasks:       stats.TodoTasks,
		InProgressTasks: stats.InProgressTasks,
		CompletedTasks:  stats.CompletedTasks,
		UpcomingTasks:   TasksToTaskResponses(stats.UpcomingTasks),
	}
}
