// Package httpjson writes JSON bodies and FastAPI-style {"detail": ...} errors.
package httpjson

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type ErrorBody struct {
	Detail string `json:"detail"`
}

func Write(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("encode response")
	}
}

func Error(w http.ResponseWriter, r *http.Request, status int, detail string) {
	log := zerolog.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error().Int("status", status).Str("detail", detail).Msg("request failed")
	} else {
		log.Debug().Int("status", status).Str("detail", detail).Msg("request rejected")
	}
	Write(w, r, status, ErrorBody{Detail: detail})
}
