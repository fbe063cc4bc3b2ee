package feedback

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sarmstore/storefront-backend/internal/modules/auth"
)

type Handler struct {
	service Service
	mw      *auth.Middleware
}

func NewHandler(service Service, mw *auth.Middleware) *Handler {
	return &Handler{service: service, mw: mw}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/feedback", func(r chi.Router) {
		r.Post("/", h.submitFeedback)
		r.Get("/", h.listApproved)

		r.Group(func(r chi.Router) {
			r.Use(h.mw.RequireAdmin)
			r.Get("/pending", h.listPending)
			r.Post("/{id}/approve", h.approveFeedback)
			r.Delete("/{id}", h.rejectFeedback)
		})
	})
}

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	f, err := h.service.SubmitFeedback(r.Context(), req)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, f)
}

func (h *Handler) listApproved(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListApproved(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if items == nil {
		items = []Feedback{}
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) listPending(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPending(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if items == nil {
		items = []Feedback{}
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) approveFeedback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.ApproveFeedback(r.Context(), id); err != nil {
		respond(w, errorCode(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "feedback approved"})
}

func (h *Handler) rejectFeedback(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.RejectFeedback(r.Context(), id); err != nil {
		respond(w, errorCode(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "feedback rejected"})
}

func errorCode(err error) int {
	msg := err.Error()
	if strings.Contains(msg, "not found") {
		return http.StatusNotFound
	}
	if strings.Contains(msg, "already approved") {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
