package models

// TaskStats aggregates a user's active (not trashed) tasks.
type TaskStats struct {
	TotalTasks      int64   `json:"totalTasks"`
	TodoTasks       int64   `json:"todoTasks"`
	InProgressTasks int64   `json:"inProgressTasks"`
	CompletedTasks  int64   `json:"completedTasks"`
	UpcomingTasks   []*Task `json:"upcomingTasks"`
}
