package serviceimpl

import (
	"context"
	"time"

	"github.com/sathvik89/Taskease/domain/services"
	"github.com/sathvik89/Taskease/pkg/logger"
	"github.com/sathvik89/Taskease/pkg/scheduler"
)

const trashPurgeJobID = "trash_purge"

type TrashRetentionConfig struct {
	Retention time.Duration // zero disables the job
	Cron      string        // default: "0 3 * * *" = 3 AM UTC daily
}

// TrashRetentionJob periodically purges tasks that stayed in the trash
// longer than the retention period.
type TrashRetentionJob struct {
	config      TrashRetentionConfig
	taskService services.TaskService
	scheduler   scheduler.EventScheduler
	now         func() time.Time
}

func NewTrashRetentionJob(config TrashRetentionConfig, taskService services.TaskService, eventScheduler scheduler.EventScheduler) *TrashRetentionJob {
	if config.Cron == "" {
		config.Cron = "0 3 * * *"
	}
	return &TrashRetentionJob{
		config:      config,
		taskService: taskService,
		scheduler:   eventScheduler,
		now:         time.Now,
	}
}

// Register adds the purge job to the scheduler. It is a no-op when
// retention is disabled.
func (j *TrashRetentionJob) Register() error {
	if j.config.Retention <= 0 {
		logger.Info("Trash retention disabled, trashed tasks are kept until deleted")
		return nil
	}
	return j.scheduler.AddJob(trashPurgeJobID, j.config.Cron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		j.Run(ctx)
	})
}

func (j *TrashRetentionJob) Run(ctx context.Context) int64 {
	cutoff := j.now().UTC().Add(-j.config.Retention)
	purged, err := j.taskService.PurgeTrash(ctx, cutoff)
	if err != nil {
		logger.ErrorContext(ctx, "Trash retention run failed", "error", err)
		return 0
	}
	return purged
}
