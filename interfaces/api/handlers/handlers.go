package handlers

import (
	"context"

	"github.com/sathvik89/Taskease/domain/services"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Services struct {
	UserService services.UserService
	TaskService services.TaskService

	// HealthChecks are probed by GET /health; "database" is the only one
	// that turns the response into a 503.
	HealthChecks map[string]HealthCheck
}

type Handlers struct {
	UserHandler   *UserHandler
	TaskHandler   *TaskHandler
	HealthHandler *HealthHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		UserHandler:   NewUserHandler(services.UserService),
		TaskHandler:   NewTaskHandler(services.TaskService),
		HealthHandler: NewHealthHandler(services.HealthChecks),
	}
}
