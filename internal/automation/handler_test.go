package automation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(NewService()))
	return r
}

func do(t *testing.T, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	return rec
}

func TestHandleTrigger_Notification(t *testing.T) {
	rec := do(t, "/api/automation", `{"task_type": "notification"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"status": "success",
		"message": "Notificación enviada correctamente a todos los destinatarios.",
		"task_id": "task-123456",
		"parameters": {}
	}`, rec.Body.String())
}

func TestHandleTrigger_EchoesParameters(t *testing.T) {
	rec := do(t, "/api/automation", `{"task_type": "report_generation", "parameters": {"format": "pdf", "pages": 3}}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var res Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, messages[TaskReportGeneration], res.Message)
	assert.Equal(t, map[string]any{"format": "pdf", "pages": float64(3)}, res.Parameters)
}

func TestHandleTrigger_TaskTypeFromQuery(t *testing.T) {
	rec := do(t, "/api/automation?task_type=integration", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var res Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, messages[TaskIntegration], res.Message)
	assert.Equal(t, map[string]any{}, res.Parameters)
}

func TestHandleTrigger_BodyWinsOverQuery(t *testing.T) {
	rec := do(t, "/api/automation?task_type=integration", `{"task_type": "data_processing"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), messages[TaskDataProcessing])
}

func TestHandleTrigger_Rejects(t *testing.T) {
	tests := []struct {
		name, target, body string
	}{
		{"unknown task type", "/api/automation", `{"task_type": "bogus"}`},
		{"missing task type", "/api/automation", `{}`},
		{"empty request", "/api/automation", ``},
		{"malformed json", "/api/automation", `{"task_type": `},
		{"parameters not an object", "/api/automation", `{"task_type": "notification", "parameters": [1, 2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleTrigger_InvalidListsValidValues(t *testing.T) {
	rec := do(t, "/api/automation", `{"task_type": "bogus"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for _, tt := range TaskTypes {
		assert.Contains(t, body["detail"], string(tt))
	}
	assert.Contains(t, body["detail"], "'bogus'")
}
