package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sarmstore/storefront-backend/internal/modules/auth"
	"github.com/sarmstore/storefront-backend/internal/modules/cart"
)

// Handler exposes the checkout endpoint.
type Handler struct {
	service Service
	mw      *auth.Middleware
}

func NewHandler(service Service, mw *auth.Middleware) *Handler {
	return &Handler{service: service, mw: mw}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Use(h.mw.Populate)
		r.Post("/", h.submit)
	})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var userID *uuid.UUID
	if id, ok := auth.FromContext(r.Context()); ok {
		uid := id.UserID
		userID = &uid
	}

	sessionID := cart.SessionID(w, r)
	result, err := h.service.Submit(r.Context(), sessionID, userID, req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			respond(w, validationCode(verr), map[string]string{
				"error": verr.Error(),
				"kind":  string(verr.Kind),
				"field": verr.Field,
			})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, result)
}

func validationCode(verr *ValidationError) int {
	switch verr.Kind {
	case KindNotAuthenticated:
		return http.StatusUnauthorized
	case KindEmptyCart:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
