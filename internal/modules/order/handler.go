package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eambler/cabracurado-backend/internal/money"
)

// orderView is the admin representation: the order plus its formatted total
// and the IVA breakdown of the tax-inclusive amount.
type orderView struct {
	*Order
	TotalFormatted string `json:"total_formatted"`
	Net            int64  `json:"net"`
	Tax            int64  `json:"tax"`
}

func newOrderView(o *Order) *orderView {
	return &orderView{
		Order:          o,
		TotalFormatted: money.Format(o.Total),
		Net:            money.Net(o.Total),
		Tax:            money.Tax(o.Total),
	}
}

// Handler exposes order HTTP endpoints. Order creation itself happens via
// cart checkout; these are the admin management routes.
type Handler struct {
	service Service
	admin   func(http.Handler) http.Handler
}

// NewHandler creates an order handler. admin guards all routes.
func NewHandler(service Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, admin: admin}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/v1/admin/orders", func(r chi.Router) {
		r.Use(h.admin)
		r.Get("/", h.listOrders)
		r.Get("/{id}", h.getOrder)
		r.Post("/{id}/process", h.processOrder)
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	views := make([]*orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	respond(w, http.StatusOK, views)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	o, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, newOrderView(o))
}

func (h *Handler) processOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	o, err := h.service.Process(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrAlreadyProcessed):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	respond(w, http.StatusOK, newOrderView(o))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
