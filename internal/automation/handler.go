package automation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Vovarama1992/automation-ai-backend/internal/httpjson"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleTrigger reads task_type from the JSON body, or from the query string
// when the body does not carry one.
func (h *Handler) HandleTrigger(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httpjson.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	if req.TaskType == "" {
		req.TaskType = r.URL.Query().Get("task_type")
	}
	req.TaskType = strings.TrimSpace(req.TaskType)

	res, err := h.svc.Trigger(r.Context(), req.TaskType, req.Parameters)
	if errors.Is(err, ErrInvalidTaskType) {
		httpjson.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		httpjson.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Str("task_type", req.TaskType).
		Str("task_id", res.TaskID).
		Msg("automation accepted")

	httpjson.Write(w, r, http.StatusOK, res)
}
