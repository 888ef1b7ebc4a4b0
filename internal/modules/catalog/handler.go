package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct {
	service Service
	admin   func(http.Handler) http.Handler
}

// NewHandler creates a catalog handler. admin guards the back-office routes.
func NewHandler(service Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, admin: admin}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Get("/api/v1/products", h.listProducts)
	router.Get("/api/v1/products/{id}", h.getProduct)

	router.Route("/api/v1/admin/products", func(r chi.Router) {
		r.Use(h.admin)
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Patch("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})
}

func parseFilter(r *http.Request) (Filter, error) {
	f := Filter{Category: Category(r.URL.Query().Get("category"))}
	if v := r.URL.Query().Get("active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return f, errors.New("invalid active filter")
		}
		f.Active = &parsed
	}
	if v := r.URL.Query().Get("visible"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return f, errors.New("invalid visible filter")
		}
		f.Visible = &parsed
	}
	if v := r.URL.Query().Get("producer_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, errors.New("invalid producer_id filter")
		}
		f.ProducerID = id
	}
	return f, nil
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	products, err := h.service.ListProducts(r.Context(), f)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []*Product{}
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	p, err := h.service.GetProduct(r.Context(), id)
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

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
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

	p, err := h.service.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
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
