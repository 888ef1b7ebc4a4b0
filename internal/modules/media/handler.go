package media

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Image uploads are capped at 10 MiB.
const maxUploadSize = 10 << 20

// Handler exposes the admin image-upload endpoint.
type Handler struct {
	storage Storage
	admin   func(http.Handler) http.Handler
}

// NewHandler creates a media handler. admin guards the upload route.
func NewHandler(storage Storage, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{storage: storage, admin: admin}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/v1/admin/media", func(r chi.Router) {
		r.Use(h.admin)
		r.Post("/", h.upload)
	})
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.storage.Upload(r.Context(), header.Filename, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
