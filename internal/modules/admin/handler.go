// Package admin serves the aggregate counters behind the admin dashboard.
package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eambler/cabracurado-backend/internal/modules/catalog"
	"github.com/eambler/cabracurado-backend/internal/modules/order"
	"github.com/eambler/cabracurado-backend/internal/modules/subscription"
)

// Handler answers the dashboard summary request.
type Handler struct {
	products      catalog.Service
	orders        order.Service
	subscriptions subscription.Service
	admin         func(http.Handler) http.Handler
}

// NewHandler creates an admin dashboard handler.
func NewHandler(products catalog.Service, orders order.Service, subscriptions subscription.Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{products: products, orders: orders, subscriptions: subscriptions, admin: admin}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/v1/admin/dashboard", func(r chi.Router) {
		r.Use(h.admin)
		r.Get("/", h.dashboard)
	})
}

type summary struct {
	Products      int `json:"products"`
	Orders        int `json:"orders"`
	PendingOrders int `json:"pending_orders"`
	Subscribers   int `json:"subscribers"`
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.products.ListProducts(ctx, catalog.Filter{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	orders, err := h.orders.List(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	subscribers, err := h.subscriptions.ListSubscribers(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s := summary{
		Products:    len(products),
		Orders:      len(orders),
		Subscribers: len(subscribers),
	}
	for _, o := range orders {
		if o.Status == order.StatusPending {
			s.PendingOrders++
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}
