package automation

import (
	"context"
	"errors"
)

type TaskType string

const (
	TaskDataProcessing   TaskType = "data_processing"
	TaskReportGeneration TaskType = "report_generation"
	TaskNotification     TaskType = "notification"
	TaskIntegration      TaskType = "integration"
)

// TaskTypes lists the accepted task types in the order they are reported.
var TaskTypes = []TaskType{
	TaskDataProcessing,
	TaskReportGeneration,
	TaskNotification,
	TaskIntegration,
}

var ErrInvalidTaskType = errors.New("tipo de tarea no válido")

type Request struct {
	TaskType   string         `json:"task_type"`
	Parameters map[string]any `json:"parameters"`
}

type Result struct {
	Status     string         `json:"status"`
	Message    string         `json:"message"`
	TaskID     string         `json:"task_id"`
	Parameters map[string]any `json:"parameters"`
}

// Service acknowledges automation requests. Nothing is executed.
type Service interface {
	Trigger(ctx context.Context, taskType string, params map[string]any) (Result, error)
}
