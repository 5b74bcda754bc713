package serviceimpl

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/sathvik89/Taskease/domain/apperrors"
	"github.com/sathvik89/Taskease/domain/dto"
	"github.com/sathvik89/Taskease/domain/models"
	"github.com/sathvik89/Taskease/domain/ports"
	"github.com/sathvik89/Taskease/domain/repositories"
	"github.com/sathvik89/Taskease/domain/services"
	"github.com/sathvik89/Taskease/pkg/logger"
)

const defaultUpcomingLimit = 5

type TaskServiceConfig struct {
	UpcomingLimit int
}

// TaskServiceImpl routes every task operation through the owner-scoped
// repository. Cache and event failures are logged and never fail a request.
type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
	cache    ports.StatsCachePort
	events   ports.TaskEventPublisherPort
	exporter ports.TaskExporterPort
	config   TaskServiceConfig
	now      func() time.Time

	// generations counts stats invalidations per owner (uuid.UUID ->
	// *atomic.Uint64). Stats computed across an invalidation are not cached.
	generations sync.Map
}

// NewTaskService accepts a nil cache (stats are always computed) and a nil
// publisher (events are dropped).
func NewTaskService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	cache ports.StatsCachePort,
	events ports.TaskEventPublisherPort,
	exporter ports.TaskExporterPort,
	config TaskServiceConfig,
) services.TaskService {
	if config.UpcomingLimit <= 0 {
		config.UpcomingLimit = defaultUpcomingLimit
	}
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
		cache:    cache,
		events:   events,
		exporter: exporter,
		config:   config,
		now:      time.Now,
	}
}

func (s *TaskServiceImpl) List(ctx context.Context, identity *models.Identity, filter *dto.TaskFilterRequest) ([]*models.Task, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	f, err := toRepositoryFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.List(ctx, identity.ID, f)
}

func (s *TaskServiceImpl) ListTrash(ctx context.Context, identity *models.Identity) ([]*models.Task, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	return s.taskRepo.ListTrashed(ctx, identity.ID)
}

func (s *TaskServiceImpl) Get(ctx context.Context, identity *models.Identity, taskID uuid.UUID) (*models.Task, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}
	return s.taskRepo.GetByID(ctx, identity.ID, taskID)
}

func (s *TaskServiceImpl) Create(ctx context.Context, identity *models.Identity, req *dto.CreateTaskRequest) (*models.Task, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	task := &models.Task{}
	if err := applyTaskFields(task, req.Title, req.Description, req.Status, req.Category, req.Priority, req.DueDate); err != nil {
		return nil, err
	}
	// the owner always comes from the session
	task.CreatedBy = identity.ID

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID)
	s.changed(ctx, ports.TaskCreated, task)
	return task, nil
}

// Update overwrites every editable field. Blank status, category and
// priority fall back to their defaults and a missing due date clears it.
func (s *TaskServiceImpl) Update(ctx context.Context, identity *models.Identity, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, identity.ID, taskID)
	if err != nil {
		return nil, err
	}
	if err := applyTaskFields(task, req.Title, req.Description, req.Status, req.Category, req.Priority, req.DueDate); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, identity.ID, task); err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.GetByID(ctx, identity.ID, taskID)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)
	s.changed(ctx, ports.TaskUpdated, updated)
	return updated, nil
}

func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, identity *models.Identity, taskID uuid.UUID, status string) (*models.Task, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	next := models.TaskStatus(status)
	if !next.Valid() {
		return nil, apperrors.NewValidationError("status", "Status must be one of todo, in-progress, completed")
	}

	if err := s.taskRepo.UpdateStatus(ctx, identity.ID, taskID, next); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, identity.ID, taskID)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Task status changed", "task_id", taskID, "status", next)
	s.changed(ctx, ports.TaskStatusChanged, task)
	return task, nil
}

func (s *TaskServiceImpl) SoftDelete(ctx context.Context, identity *models.Identity, taskID uuid.UUID) (*models.Task, error) {
	return s.transition(ctx, identity, taskID, models.ActionTrash, ports.TaskTrashed)
}

func (s *TaskServiceImpl) Restore(ctx context.Context, identity *models.Identity, taskID uuid.UUID) (*models.Task, error) {
	return s.transition(ctx, identity, taskID, models.ActionRestore, ports.TaskRestored)
}

// transition moves a task between active and deleted. Repeating a
// transition succeeds without a write and publishes nothing.
func (s *TaskServiceImpl) transition(ctx context.Context, identity *models.Identity, taskID uuid.UUID, action models.TaskAction, event ports.TaskEventType) (*models.Task, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, identity.ID, taskID)
	if err != nil {
		return nil, err
	}

	current := task.State()
	next, err := current.Apply(action)
	if err != nil {
		return nil, err
	}
	if next == current {
		return task, nil
	}

	if err := s.taskRepo.SetDeleted(ctx, identity.ID, taskID, next.IsDeleted()); err != nil {
		return nil, err
	}

	task, err = s.taskRepo.GetByID(ctx, identity.ID, taskID)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Task state changed", "task_id", taskID, "from", current, "to", next)
	s.changed(ctx, event, task)
	return task, nil
}

// PermanentDelete removes the task whether or not it is in the trash.
func (s *TaskServiceImpl) PermanentDelete(ctx context.Context, identity *models.Identity, taskID uuid.UUID) error {
	if err := requireIdentity(identity); err != nil {
		return err
	}

	task, err := s.taskRepo.GetByID(ctx, identity.ID, taskID)
	if err != nil {
		return err
	}
	if _, err := task.State().Apply(models.ActionPurge); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, identity.ID, taskID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Task permanently deleted", "task_id", taskID, "was_trashed", task.IsDeleted)
	s.changed(ctx, ports.TaskPurged, task)
	return nil
}

// Search never returns every task for an empty query.
func (s *TaskServiceImpl) Search(ctx context.Context, identity *models.Identity, query string) ([]*models.Task, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []*models.Task{}, nil
	}
	return s.taskRepo.Search(ctx, identity.ID, query)
}

// Stats is cache-aside: a hit skips the database, a miss recomputes and
// stores the result until the next mutation or the cache TTL.
func (s *TaskServiceImpl) Stats(ctx context.Context, identity *models.Identity) (*models.TaskStats, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.GetStats(ctx, identity.ID)
		if err != nil {
			logger.WarnContext(ctx, "Stats cache read failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	generation := s.generation(identity.ID).Load()

	counts, err := s.taskRepo.CountByStatus(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.taskRepo.Upcoming(ctx, identity.ID, s.now(), s.config.UpcomingLimit)
	if err != nil {
		return nil, err
	}
	if upcoming == nil {
		upcoming = []*models.Task{}
	}

	stats := &models.TaskStats{
		TotalTasks:      counts.Total,
		TodoTasks:       counts.Todo,
		InProgressTasks: counts.InProgress,
		CompletedTasks:  counts.Completed,
		UpcomingTasks:   upcoming,
	}

	if s.cache != nil && s.generation(identity.ID).Load() == generation {
		if err := s.cache.SetStats(ctx, identity.ID, stats); err != nil {
			logger.WarnContext(ctx, "Stats cache write failed", "error", err)
		}
	}
	return stats, nil
}

func (s *TaskServiceImpl) Export(ctx context.Context, identity *models.Identity, filter *dto.TaskFilterRequest) (*ports.ExportedFile, error) {
	if err := requireIdentity(identity); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.List(ctx, identity, filter)
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.Export(tasks)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to export tasks", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Tasks exported", "count", len(tasks), "bytes", len(data))
	return &ports.ExportedFile{
		Filename:    exportFilename(user.Name, s.now(), s.exporter.Extension()),
		ContentType: s.exporter.ContentType(),
		Data:        data,
	}, nil
}

func (s *TaskServiceImpl) PurgeTrash(ctx context.Context, cutoff time.Time) (int64, error) {
	purged, err := s.taskRepo.PurgeTrashedBefore(ctx, cutoff)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to purge trash", "cutoff", cutoff, "error", err)
		return 0, err
	}
	logger.InfoContext(ctx, "Trash purged", "cutoff", cutoff, "purged", purged)
	return purged, nil
}

// changed drops the owner's cached stats and publishes the event.
func (s *TaskServiceImpl) changed(ctx context.Context, eventType ports.TaskEventType, task *models.Task) {
	if s.cache != nil {
		s.generation(task.CreatedBy).Add(1)
		if err := s.cache.Invalidate(ctx, task.CreatedBy); err != nil {
			logger.WarnContext(ctx, "Stats cache invalidation failed", "user_id", task.CreatedBy, "error", err)
		}
	}

	if s.events == nil {
		return
	}
	event := &ports.TaskEvent{
		Type:       eventType,
		TaskID:     task.ID,
		OwnerID:    task.CreatedBy,
		Status:     string(task.Status),
		OccurredAt: s.now().UTC(),
	}
	if err := s.events.PublishTaskEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Task event not published", "type", eventType, "task_id", task.ID, "error", err)
	}
}

func applyTaskFields(task *models.Task, title, description, status, category, priority string, dueDate *string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperrors.NewValidationError("title", "Title is required")
	}

	taskStatus := models.StatusTodo
	if status != "" {
		taskStatus = models.TaskStatus(status)
		if !taskStatus.Valid() {
			return apperrors.NewValidationError("status", "Status must be one of todo, in-progress, completed")
		}
	}

	taskPriority := models.PriorityMedium
	if priority != "" {
		taskPriority = models.TaskPriority(priority)
		if !taskPriority.Valid() {
			return apperrors.NewValidationError("priority", "Priority must be one of low, medium, high")
		}
	}

	taskCategory := strings.TrimSpace(category)
	if taskCategory == "" {
		taskCategory = models.DefaultCategory
	}

	due, err := dto.ParseDueDate(dueDate)
	if err != nil {
		return err
	}

	task.Title = title
	task.Description = strings.TrimSpace(description)
	task.Status = taskStatus
	task.Priority = taskPriority
	task.Category = taskCategory
	task.DueDate = due
	return nil
}

func toRepositoryFilter(filter *dto.TaskFilterRequest) (repositories.TaskFilter, error) {
	if filter == nil {
		return repositories.TaskFilter{}, nil
	}

	f := repositories.TaskFilter{
		Status:   models.TaskStatus(filter.Status),
		Category: strings.TrimSpace(filter.Category),
		Priority: models.TaskPriority(filter.Priority),
		SortBy:   filter.SortBy,
	}
	if f.Status != "" && !f.Status.Valid() {
		return f, apperrors.NewValidationError("status", "Status must be one of todo, in-progress, completed")
	}
	if f.Priority != "" && !f.Priority.Valid() {
		return f, apperrors.NewValidationError("priority", "Priority must be one of low, medium, high")
	}
	return f, nil
}

func exportFilename(userName string, at time.Time, ext string) string {
	name := slug.Make(userName)
	if name == "" {
		name = "export"
	}
	return "tasks-" + name + "-" + at.UTC().Format("2006-01-02") + "." + ext
}

func (s *TaskServiceImpl) generation(ownerID uuid.UUID) *atomic.Uint64 {
	g, _ := s.generations.LoadOrStore(ownerID, new(atomic.Uint64))
	return g.(*atomic.Uint64)
}
