package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sathvik89/Taskease/domain/dto"
	"github.com/sathvik89/Taskease/domain/services"
	"github.com/sathvik89/Taskease/pkg/utils"
)

const taskNotFound = "Task not found"

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// taskID parses :id. A malformed id is answered like a missing task.
func taskID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func parseFilter(c *fiber.Ctx) (*dto.TaskFilterRequest, bool, error) {
	var filter dto.TaskFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return nil, false, utils.BadRequestResponse(c, "Invalid query parameters")
	}
	if ok, err := validate(c, &filter); !ok {
		return nil, false, err
	}
	return &filter, true, nil
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	filter, ok, err := parseFilter(c)
	if !ok {
		return err
	}

	tasks, err := h.taskService.List(c.UserContext(), identity(c), filter)
	if err != nil {
		return handleServiceError(c, err, taskNotFound)
	}
	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) ListTrash(c *fiber.Ctx) error {
	tasks, err := h.taskService.ListTrash(c.UserContext(), identity(c))
	if err != nil {
		return handleServiceError(c, err, taskNotFound)
	}
	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	task, err := h.taskService.Create(c.UserContext(), identity(c), &req)
	if err != nil {
		return handleServiceError(c, err, taskNotFound)
	}
	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return utils.NotFoundResponse(c, taskNotFound)
	}

	task, err := h.taskService.Get(c.UserContext(), identity(c), id)
	if err != nil {
		return handleServiceError(c, err, taskNotFound)
	}
	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return utils.NotFoundResponse(c, taskNotFound)
	}

	var req dto.UpdateTaskRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	task, err := h.taskService.Update(c.UserContext(), identity(c), id, &req)
	if err != nil {
		return handleServiceError(c, err, taskNotFound)
	}
	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return utils.NotFoundResponse(c, taskNotFound)
	}

	var req dto.UpdateTaskStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	task, err := h.taskService.UpdateStatus(c.UserContext(), identity(c), id, req.Status)
	if err != nil {
		return handleServiceError(c, err, taskNotFound)
	}
	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return utils.NotFoundResponse(c, taskNotFound)
	}

	task, err := h.taskService.SoftDelete(c.UserContext(), identity(c), id)
	if err != nil {
		return handleServiceError(c, err, taskNotFound)
	}
	return c.JSON(utils.Response{
		Success: true,
		Message: "Task moved to trash",
		Data:    dto.TaskToTaskResponse(task),
	})
}

func (h *TaskHandler) RestoreTask(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return utils.NotFoundResponse(c, taskNotFound)
	}

	task, err := h.taskService.Restore(c.UserContext(), identity(c), id)
	if err != nil {
		return handleServiceError(c, err, taskNotFound)
	}
	return c.JSON(utils.Response{
		Success: true,
		Message: "Task restored",
		Data:    dto.TaskToTaskResponse(task),
	})
}

func (h *TaskHandler) PermanentDeleteTask(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return utils.NotFoundResponse(c, taskNotFound)
	}

	if err := h.taskService.PermanentDelete(c.UserContext(), identity(c), id); err != nil {
		return handleServiceError(c, err, taskNotFound)
	}
	return utils.MessageResponse(c, "Task permanently deleted")
}

func (h *TaskHandler) SearchTasks(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	tasks, err := h.taskService.Search(c.UserContext(), identity(c), req.Query)
	if err != nil {
		return handleServiceError(c, err, taskNotFound)
	}
	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.taskService.Stats(c.UserContext(), identity(c))
	if err != nil {
		return handleServiceError(c, err, taskNotFound)
	}
	return utils.SuccessResponse(c, dto.TaskStatsToResponse(stats))
}

func (h *TaskHandler) ExportTasks(c *fiber.Ctx) error {
	filter, ok, err := parseFilter(c)
	if !ok {
		return err
	}

	file, err := h.taskService.Export(c.UserContext(), identity(c), filter)
	if err != nil {
		return handleServiceError(c, err, taskNotFound)
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Data)
}
