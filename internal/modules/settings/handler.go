package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes configuration HTTP endpoints.
type Handler struct {
	service Service
	admin   func(http.Handler) http.Handler
}

// NewHandler creates a settings handler. admin guards the back-office routes.
func NewHandler(service Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, admin: admin}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	// Storefront reads contact/social entries only.
	router.Get("/api/v1/settings", h.publicSettings)

	router.Route("/api/v1/admin/settings", func(r chi.Router) {
		r.Use(h.admin)
		r.Get("/", h.allSettings)
		r.Put("/", h.saveSettings)
	})
}

func (h *Handler) publicSettings(w http.ResponseWriter, r *http.Request) {
	values, err := h.service.GetAll(r.Context(), PublicKeys)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, values)
}

func (h *Handler) allSettings(w http.ResponseWriter, r *http.Request) {
	values, err := h.service.GetAll(r.Context(), KnownKeys)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, values)
}

func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	var values map[string]string
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SetAll(r.Context(), values); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "saved"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
