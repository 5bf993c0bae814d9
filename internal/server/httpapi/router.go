package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"colorsrest/internal/server/service"
)

type Router struct {
	services        *service.Services
	logger          *zap.Logger
	maxRequestBytes int64
}

func NewRouter(services *service.Services, logger *zap.Logger, maxRequestBytes int64) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Router{services: services, logger: logger, maxRequestBytes: maxRequestBytes}
	mux := chi.NewRouter()

	mux.Get("/health", r.handleHealth)
	mux.Post("/api/user/register", r.handleRegister)
	mux.Post("/api/user/login", r.handleLogin)

	mux.Route("/api/colors", func(cr chi.Router) {
		cr.Get("/", r.handleListColors)
		cr.Get("/{id:[0-9]+}", r.handleGetColorByID)
		cr.Get("/{name}", r.handleGetColorByName)

		cr.Group(func(pr chi.Router) {
			pr.Use(r.authMiddleware)
			pr.Post("/", r.handleAddColor)
			pr.Delete("/{id:[0-9]+}", r.handleDeleteColor)
		})
	})

	return mux
}

func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// decodeJSON reads a capped request body into v.
func (r *Router) decodeJSON(w http.ResponseWriter, req *http.Request, v any) error {
	body := http.MaxBytesReader(w, req.Body, r.maxRequestBytes)
	return json.NewDecoder(body).Decode(v)
}
