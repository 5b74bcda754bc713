package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sathvik89/Taskease/domain/apperrors"
	"github.com/sathvik89/Taskease/domain/models"
	"github.com/sathvik89/Taskease/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

// owned starts every per-user query.
func (r *TaskRepositoryImpl) owned(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Task{}).Scopes(ownedBy(ownerID))
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.owned(ctx, ownerID).Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context, ownerID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, error) {
	query := r.owned(ctx, ownerID).Scopes(inTrash(false))

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	if filter.SortBy == repositories.SortByDueDate {
		// undated tasks sort first, as nulls do in an ascending document sort.
		// Spelled out because postgres puts NULLs last and sqlite first.
		query = query.
			Order("CASE WHEN due_date IS NULL THEN 0 ELSE 1 END").
			Order("due_date ASC").
			Order("created_at DESC")
	} else {
		query = query.Order("created_at DESC")
	}

	var tasks []*models.Task
	err := query.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListTrashed(ctx context.Context, ownerID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.owned(ctx, ownerID).Scopes(inTrash(true)).
		Order("trashed_at DESC").
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.owned(ctx, ownerID).Scopes(inTrash(false), containsFold(query)).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

// Update overwrites the editable fields. created_by and is_deleted are
// never touched here.
func (r *TaskRepositoryImpl) Update(ctx context.Context, ownerID uuid.UUID, task *models.Task) error {
	result := r.owned(ctx, ownerID).Where("id = ?", task.ID).Updates(map[string]interface{}{
		"title":       task.Title,
		"description": task.Description,
		"status":      task.Status,
		"category":    task.Category,
		"priority":    task.Priority,
		"due_date":    task.DueDate,
	})
	return affected(result)
}

func (r *TaskRepositoryImpl) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status models.TaskStatus) error {
	result := r.owned(ctx, ownerID).Where("id = ?", id).Update("status", status)
	return affected(result)
}

// SetDeleted flips the trash flag in one conditional statement. It skips
// updated_at so a trash/restore round trip leaves the task unchanged;
// trashed_at keeps the first trash time until the task is restored.
func (r *TaskRepositoryImpl) SetDeleted(ctx context.Context, ownerID, id uuid.UUID, deleted bool) error {
	columns := map[string]interface{}{"is_deleted": deleted}
	if deleted {
		columns["trashed_at"] = gorm.Expr("COALESCE(trashed_at, ?)", time.Now().UTC())
	} else {
		columns["trashed_at"] = nil
	}

	result := r.owned(ctx, ownerID).Where("id = ?", id).UpdateColumns(columns)
	return affected(result)
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.owned(ctx, ownerID).Where("id = ?", id).Delete(&models.Task{})
	return affected(result)
}

func (r *TaskRepositoryImpl) CountByStatus(ctx context.Context, ownerID uuid.UUID) (*repositories.TaskCounts, error) {
	var rows []struct {
		Status models.TaskStatus
		Total  int64
	}
	err := r.owned(ctx, ownerID).Scopes(inTrash(false)).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := &repositories.TaskCounts{}
	for _, row := range rows {
		counts.Total += row.Total
		switch row.Status {
		case models.StatusTodo:
			counts.Todo = row.Total
		case models.StatusInProgress:
			counts.InProgress = row.Total
		case models.StatusCompleted:
			counts.Completed = row.Total
		}
	}
	return counts, nil
}

func (r *TaskRepositoryImpl) Upcoming(ctx context.Context, ownerID uuid.UUID, from time.Time, limit int) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.owned(ctx, ownerID).Scopes(inTrash(false)).
		Where("due_date IS NOT NULL AND due_date >= ?", from.UTC()).
		Where("status <> ?", models.StatusCompleted).
		Order("due_date ASC").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Scopes(inTrash(true)).
		Where("trashed_at IS NOT NULL AND trashed_at < ?", cutoff.UTC()).
		Delete(&models.Task{})
	return result.RowsAffected, result.Error
}

func affected(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
