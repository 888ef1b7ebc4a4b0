package subscription

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes pack and subscription HTTP endpoints.
type Handler struct {
	service Service
	admin   func(http.Handler) http.Handler
}

// NewHandler creates a subscription handler. admin guards the back-office
// routes.
func NewHandler(service Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, admin: admin}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Get("/api/v1/packs", h.listPacks)
	router.Post("/api/v1/subscriptions", h.subscribe)

	router.Route("/api/v1/admin/subscribers", func(r chi.Router) {
		r.Use(h.admin)
		r.Get("/", h.listSubscribers)
	})
	router.Route("/api/v1/admin/packs", func(r chi.Router) {
		r.Use(h.admin)
		r.Post("/", h.createPack)
		r.Patch("/{id}", h.updatePack)
		r.Delete("/{id}", h.deletePack)
	})
}

func (h *Handler) listPacks(w http.ResponseWriter, r *http.Request) {
	var active *bool
	if v := r.URL.Query().Get("active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "invalid active filter", http.StatusBadRequest)
			return
		}
		active = &parsed
	}
	packs, err := h.service.ListPacks(r.Context(), active)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if packs == nil {
		packs = []*Pack{}
	}
	respond(w, http.StatusOK, packs)
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sub, err := h.service.Subscribe(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrPackNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusCreated, sub)
}

func (h *Handler) listSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.ListSubscribers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if subs == nil {
		subs = []*Subscriber{}
	}
	respond(w, http.StatusOK, subs)
}

func (h *Handler) createPack(w http.ResponseWriter, r *http.Request) {
	var req CreatePackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.CreatePack(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) updatePack(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var patch PackPatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.service.UpdatePack(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, ErrPackNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) deletePack(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeletePack(r.Context(), id); err != nil {
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
