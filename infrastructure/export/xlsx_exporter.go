package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sathvik89/Taskease/domain/models"
	"github.com/sathvik89/Taskease/domain/ports"
)

const (
	SheetName       = "Tasks"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	dueDateLayout   = "2006-01-02 15:04"
)

type column struct {
	header string
	width  float64
	value  func(t *models.Task) interface{}
}

var taskColumns = []column{
	{"Title", 40, func(t *models.Task) interface{} { return t.Title }},
	{"Description", 60, func(t *models.Task) interface{} { return t.Description }},
	{"Status", 14, func(t *models.Task) interface{} { return string(t.Status) }},
	{"Priority", 12, func(t *models.Task) interface{} { return string(t.Priority) }},
	{"Category", 18, func(t *models.Task) interface{} { return t.Category }},
	{"Due Date", 18, func(t *models.Task) interface{} {
		if t.DueDate == nil {
			return ""
		}
		return t.DueDate.UTC().Format(dueDateLayout)
	}},
	{"Created At", 18, func(t *models.Task) interface{} { return t.CreatedAt.UTC().Format(dueDateLayout) }},
}

// XLSXExporter writes tasks into a single-sheet workbook with a bold header row.
type XLSXExporter struct{}

var _ ports.TaskExporterPort = XLSXExporter{}

func NewXLSXExporter() XLSXExporter {
	return XLSXExporter{}
}

func (XLSXExporter) ContentType() string { return xlsxContentType }

func (XLSXExporter) Extension() string { return "xlsx" }

func (XLSXExporter) Export(tasks []*models.Task) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4F46E5"}},
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, col := range taskColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, col.header); err != nil {
			return nil, err
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, name, name, col.width); err != nil {
			return nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(taskColumns), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for r, task := range tasks {
		for c, col := range taskColumns {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(SheetName, cell, col.value(task)); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r+2, err)
			}
		}
	}

	buf := new(bytes.Buffer)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
