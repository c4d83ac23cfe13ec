package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Vovarama1992/automation-ai-backend/internal/automation"
	"github.com/Vovarama1992/automation-ai-backend/internal/chat"
	"github.com/Vovarama1992/automation-ai-backend/internal/httpjson"
)

const requestTimeout = 2 * time.Minute

// Responder is what the router needs from the AI responder.
type Responder interface {
	chat.Generator
	Mode() string
}

type Deps struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	Responder      Responder
	Automation     automation.Service
}

func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestLogger(d.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	chat.RegisterRoutes(r, chat.NewHandler(d.Responder))
	automation.RegisterRoutes(r, automation.NewHandler(d.Automation))

	r.Get("/", handleRoot)
	r.Get("/health", handleHealth(d.Responder))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, r, http.StatusOK, map[string]string{
		"message": "Bienvenido a la API de automatizaciones e integraciones con IA",
	})
}

func handleHealth(resp Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpjson.Write(w, r, http.StatusOK, map[string]string{
			"status":  "ok",
			"ai_mode": resp.Mode(),
		})
	}
}
