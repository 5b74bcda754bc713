package ports

import "github.com/sathvik89/Taskease/domain/models"

type ExportedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// TaskExporterPort renders a task list as a downloadable document.
type TaskExporterPort interface {
	ContentType() string
	Extension() string
	Export(tasks []*models.Task) ([]byte, error)
}
