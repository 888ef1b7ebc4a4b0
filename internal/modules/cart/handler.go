package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// Handler exposes cart HTTP endpoints. The cart is keyed by a session
// cookie issued on first contact.
type Handler struct{ service *Service }

// NewHandler creates a cart handler.
func NewHandler(service *Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.getCart)
		r.Post("/items", h.addItem)
		r.Patch("/items/{productID}", h.updateQuantity)
		r.Delete("/items/{productID}", h.removeItem)
		r.Post("/checkout", h.checkout)
	})
}

// session returns the cart session id, issuing a cookie when missing.
func session(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// cartResponse pairs the cart lines with their computed totals.
type cartResponse struct {
	Items  []*Item `json:"items"`
	Totals Totals  `json:"totals"`
	Note   string  `json:"note,omitempty"`
}

func render(c *Cart, note string) cartResponse {
	items := c.Items
	if items == nil {
		items = []*Item{}
	}
	return cartResponse{Items: items, Totals: c.Totals(), Note: note}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context(), session(w, r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, render(c, ""))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int64 `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.service.Add(r.Context(), session(w, r), req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, ErrProductNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrOutOfStock), errors.Is(err, ErrInsufficientStock):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	respond(w, http.StatusOK, render(c, ""))
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.service.UpdateQuantity(r.Context(), session(w, r), productID, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientStock):
			// Quantity was clamped to the stock ceiling; return the cart
			// as persisted.
			respond(w, http.StatusOK, render(c, err.Error()))
		case errors.Is(err, ErrProductNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	respond(w, http.StatusOK, render(c, ""))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	c, err := h.service.Remove(r.Context(), session(w, r), productID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, render(c, ""))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var info CheckoutInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.service.Checkout(r.Context(), session(w, r), info)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrBelowMinimum):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	respond(w, http.StatusCreated, o)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
