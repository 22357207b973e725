package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"todo-list.com/todo-list/internal/constants"
	"todo-list.com/todo-list/internal/tasklist"
	model "todo-list.com/todo-list/pkg/models"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// TaskPage is the serializable form of one projected page.
type TaskPage struct {
	DateQuery     constants.DateQuery  `json:"dateQuery" yaml:"dateQuery"`
	Filter        constants.TaskFilter `json:"filter" yaml:"filter"`
	Page          int                  `json:"page" yaml:"page"`
	TotalPages    int                  `json:"totalPages" yaml:"totalPages"`
	ActiveCount   int64                `json:"activeCount" yaml:"activeCount"`
	CompleteCount int64                `json:"completeCount" yaml:"completeCount"`
	Tasks         []TaskRow            `json:"tasks" yaml:"tasks"`
}

type TaskRow struct {
	ID          string               `json:"id" yaml:"id"`
	Title       string               `json:"title" yaml:"title"`
	Status      constants.TaskStatus `json:"status" yaml:"status"`
	CreatedAt   time.Time            `json:"createdAt" yaml:"createdAt"`
	CompletedAt *time.Time           `json:"completedAt" yaml:"completedAt"`
}

func NewTaskPage(col tasklist.Collection, filter constants.TaskFilter, view tasklist.View) TaskPage {
	rows := make([]TaskRow, len(view.Tasks))
	for i, task := range view.Tasks {
		rows[i] = newTaskRow(task)
	}
	return TaskPage{
		DateQuery:     col.DateQuery,
		Filter:        filter,
		Page:          view.Page,
		TotalPages:    view.TotalPages,
		ActiveCount:   col.ActiveCount,
		CompleteCount: col.CompleteCount,
		Tasks:         rows,
	}
}

func newTaskRow(task model.Task) TaskRow {
	return TaskRow{
		ID:          task.ID,
		Title:       task.Title,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		CompletedAt: task.CompletedAt,
	}
}

// Formatter writes data as json or yaml. Text output goes through Printer,
// so FormatText is rejected here.
type Formatter struct {
	format Format
	writer io.Writer
}

func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

func (f *Formatter) Print(data interface{}) error {
	switch f.format {
	case FormatJSON:
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case FormatYAML:
		encoder := yaml.NewEncoder(f.writer)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(data)
	default:
		return fmt.Errorf("unsupported output format: %s", f.format)
	}
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, fmt.Errorf("invalid format '%s': must be one of: text, json, yaml", s)
	}
}
