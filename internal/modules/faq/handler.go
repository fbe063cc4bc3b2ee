package faq

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sarmstore/storefront-backend/internal/modules/auth"
)

// Handler exposes FAQ HTTP endpoints.
type Handler struct {
	service Service
	mw      *auth.Middleware
}

func NewHandler(service Service, mw *auth.Middleware) *Handler {
	return &Handler{service: service, mw: mw}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/faqs", func(r chi.Router) {
		r.Get("/", h.listFAQs)

		r.Group(func(r chi.Router) {
			r.Use(h.mw.RequireAdmin)
			r.Post("/", h.createFAQ)
			r.Put("/{id}", h.updateFAQ)
			r.Delete("/{id}", h.deleteFAQ)
		})
	})
}

func (h *Handler) listFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.service.ListFAQs(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if faqs == nil {
		faqs = []FAQ{}
	}
	respond(w, http.StatusOK, faqs)
}

func (h *Handler) createFAQ(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	f, err := h.service.CreateFAQ(r.Context(), req)
	if err != nil {
		respond(w, errorCode(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, f)
}

func (h *Handler) updateFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	f, err := h.service.UpdateFAQ(r.Context(), id, req)
	if err != nil {
		respond(w, errorCode(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, f)
}

func (h *Handler) deleteFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteFAQ(r.Context(), id); err != nil {
		respond(w, errorCode(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "faq deleted"})
}

func errorCode(err error) int {
	msg := err.Error()
	if strings.Contains(msg, "required") {
		return http.StatusBadRequest
	}
	if strings.Contains(msg, "not found") || strings.Contains(msg, "no rows") {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
