package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sathvik89/Taskease/domain/models"
)

func TestXLSXExporter(t *testing.T) {
	due := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	tasks := []*models.Task{
		{Title: "Write report", Description: "Q2", Status: models.StatusTodo, Priority: models.PriorityHigh, Category: "Work", DueDate: &due},
		{Title: "Buy milk", Status: models.StatusCompleted, Priority: models.PriorityLow, Category: models.DefaultCategory},
	}

	exporter := NewXLSXExporter()
	assert.Equal(t, "xlsx", exporter.Extension())
	assert.Contains(t, exporter.ContentType(), "spreadsheetml")

	data, err := exporter.Export(tasks)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Title", "Description", "Status", "Priority", "Category", "Due Date", "Created At"}, rows[0])
	assert.Equal(t, "Write report", rows[1][0])
	assert.Equal(t, "todo", rows[1][2])
	assert.Equal(t, "high", rows[1][3])
	assert.Equal(t, "2024-06-01 09:30", rows[1][5])
	assert.Equal(t, "Buy milk", rows[2][0])
	assert.Equal(t, "", rows[2][1])
	assert.Equal(t, "Other", rows[2][4])
}

func TestXLSXExporterEmpty(t *testing.T) {
	data, err := NewXLSXExporter().Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
