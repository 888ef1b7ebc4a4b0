package producer

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes producer HTTP endpoints.
type Handler struct {
	service Service
	admin   func(http.Handler) http.Handler
}

// NewHandler creates a producer handler. admin guards the back-office routes.
func NewHandler(service Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, admin: admin}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Get("/api/v1/producers", h.listProducers)

	router.Route("/api/v1/admin/producers", func(r chi.Router) {
		r.Use(h.admin)
		r.Get("/", h.listProducers)
		r.Post("/", h.createProducer)
		r.Patch("/{id}", h.updateProducer)
		r.Delete("/{id}", h.deleteProducer)
	})
}

func (h *Handler) listProducers(w http.ResponseWriter, r *http.Request) {
	var active *bool
	if v := r.URL.Query().Get("active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "invalid active filter", http.StatusBadRequest)
			return
		}
		active = &parsed
	}
	producers, err := h.service.ListProducers(r.Context(), active)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if producers == nil {
		producers = []*Producer{}
	}
	respond(w, http.StatusOK, producers)
}

func (h *Handler) createProducer(w http.ResponseWriter, r *http.Request) {
	var req CreateProducerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.CreateProducer(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) updateProducer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var patch Patch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.service.UpdateProducer(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProducer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeleteProducer(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
