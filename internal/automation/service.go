package automation

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	cannedTaskID  = "task-123456"
)

var messages = map[TaskType]string{
	TaskDataProcessing:   "Procesamiento de datos iniciado correctamente.",
	TaskReportGeneration: "Generación de informe iniciada correctamente.",
	TaskNotification:     "Notificación enviada correctamente a todos los destinatarios.",
	TaskIntegration:      "Integración con servicios externos completada correctamente.",
}

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "automation_requests_total",
		Help: "Accepted automation requests by task type",
	},
	[]string{"task_type"},
)

type service struct{}

func NewService() Service {
	return &service{}
}

func (s *service) Trigger(_ context.Context, taskType string, params map[string]any) (Result, error) {
	msg, ok := messages[TaskType(taskType)]
	if !ok {
		return Result{}, fmt.Errorf("%w: '%s'. Valores permitidos: %s",
			ErrInvalidTaskType, taskType, validList())
	}

	if params == nil {
		params = map[string]any{}
	}
	requestsTotal.WithLabelValues(taskType).Inc()

	return Result{
		Status:     StatusSuccess,
		Message:    msg,
		TaskID:     cannedTaskID,
		Parameters: params,
	}, nil
}

func validList() string {
	names := make([]string, len(TaskTypes))
	for i, t := range TaskTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
