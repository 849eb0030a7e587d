package category

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mywallet/mywallet/internal/category"
	"github.com/mywallet/mywallet/internal/transaction"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.delete)
}

type categoryResponse struct {
	ID      uuid.UUID        `json:"id"`
	Name    string           `json:"name"`
	Type    transaction.Type `json:"type"`
	Parent  string           `json:"parent,omitempty"`
	Emoji   string           `json:"emoji,omitempty"`
	Display string           `json:"display"`
}

func toResponse(c *category.Category) categoryResponse {
	return categoryResponse{
		ID:      c.ID,
		Name:    c.Name,
		Type:    c.Type,
		Parent:  c.Parent,
		Emoji:   c.Emoji,
		Display: c.Display(),
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	typ := transaction.Type(r.URL.Query().Get("type"))
	if typ == "" {
		typ = transaction.TypeExpense
	}

	categories, err := h.svc.List(r.Context(), typ)
	if err != nil {
		if errors.Is(err, category.ErrInvalidType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, toResponse(c))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createCategoryRequest struct {
	Name   string           `json:"name"`
	Type   transaction.Type `json:"type"`
	Parent string           `json:"parent"`
	Emoji  string           `json:"emoji"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := &category.Category{
		Name:   req.Name,
		Type:   req.Type,
		Parent: req.Parent,
		Emoji:  req.Emoji,
	}

	if err := h.svc.Create(r.Context(), c); err != nil {
		switch {
		case errors.Is(err, category.ErrEmptyName), errors.Is(err, category.ErrInvalidType):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, category.ErrDuplicate):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, category.ErrNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
