package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sarmstore/storefront-backend/internal/modules/auth"
)

const sessionCookie = "cart_session"

// SessionID identifies the cart owner: the signed-in user when there is one,
// otherwise an opaque cookie issued on first touch. Two tabs in one browser
// share a cart; two browsers never do.
func SessionID(w http.ResponseWriter, r *http.Request) string {
	if id, ok := auth.FromContext(r.Context()); ok {
		return "user:" + id.UserID.String()
	}
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 24 * 30,
	})
	return id
}

// Handler exposes cart HTTP endpoints.
type Handler struct {
	service Service
	mw      *auth.Middleware
}

func NewHandler(service Service, mw *auth.Middleware) *Handler {
	return &Handler{service: service, mw: mw}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(h.mw.Populate)
		r.Get("/", h.getCart)
		r.Post("/items", h.addItem)
		r.Patch("/items/{product_id}", h.changeQuantity)
		r.Delete("/items/{product_id}", h.removeItem)
		r.Delete("/", h.clearCart)
	})
}

type cartResponse struct {
	Items     []Line `json:"items"`
	ItemCount int    `json:"item_count"`
	Totals    Totals `json:"totals"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sessionID := SessionID(w, r)
	lines, totals, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.respondCart(w, http.StatusOK, lines, totals)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sessionID := SessionID(w, r)
	lines, err := h.service.Add(r.Context(), sessionID, req.ProductID)
	if err != nil {
		respond(w, mutationErrorCode(err), map[string]string{"error": err.Error()})
		return
	}
	h.respondLines(w, r, http.StatusOK, lines)
}

func (h *Handler) changeQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.Delta == 0 {
		respond(w, http.StatusBadRequest, map[string]string{"error": "delta must be non-zero"})
		return
	}

	sessionID := SessionID(w, r)
	lines, err := h.service.ChangeQuantity(r.Context(), sessionID, chi.URLParam(r, "product_id"), req.Delta)
	if err != nil {
		respond(w, mutationErrorCode(err), map[string]string{"error": err.Error()})
		return
	}
	h.respondLines(w, r, http.StatusOK, lines)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	sessionID := SessionID(w, r)
	lines, err := h.service.Remove(r.Context(), sessionID, chi.URLParam(r, "product_id"))
	if err != nil {
		respond(w, mutationErrorCode(err), map[string]string{"error": err.Error()})
		return
	}
	h.respondLines(w, r, http.StatusOK, lines)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := SessionID(w, r)
	if err := h.service.Clear(r.Context(), sessionID); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "cart cleared"})
}

func (h *Handler) respondLines(w http.ResponseWriter, r *http.Request, status int, lines []Line) {
	h.respondCart(w, status, lines, h.service.TotalsFor(r.Context(), lines))
}

func (h *Handler) respondCart(w http.ResponseWriter, status int, lines []Line, totals Totals) {
	if lines == nil {
		lines = []Line{}
	}
	respond(w, status, cartResponse{Items: lines, ItemCount: ItemCount(lines), Totals: totals})
}

func mutationErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrOutOfStock):
		return http.StatusConflict
	case errors.Is(err, ErrUnavailable), errors.Is(err, ErrNotInCart):
		return http.StatusNotFound
	case strings.Contains(err.Error(), "invalid"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
