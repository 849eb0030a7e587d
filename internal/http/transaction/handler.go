package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mywallet/mywallet/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/recent", h.recent)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}", h.update)
}

type createTransactionRequest struct {
	Amount        int64                     `json:"amount"`
	Type          transaction.Type          `json:"type"`
	Category      string                    `json:"category"`
	Currency      transaction.Currency      `json:"currency"`
	Description   string                    `json:"description"`
	PaymentMethod transaction.PaymentMethod `json:"payment_method"`
	Project       string                    `json:"project"`
	Date          time.Time                 `json:"date"`
	IsTeamFinance bool                      `json:"is_team_finance"`
}

func writeValidationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transaction.ErrInvalidAmount),
		errors.Is(err, transaction.ErrAmountTooLarge),
		errors.Is(err, transaction.ErrInvalidType),
		errors.Is(err, transaction.ErrInvalidCurrency),
		errors.Is(err, transaction.ErrInvalidPaymentMethod):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, transaction.ErrNotFound):
		http.Error(w, "transaction not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		Amount:        req.Amount,
		Type:          req.Type,
		Category:      req.Category,
		Currency:      req.Currency,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Project:       req.Project,
		Date:          req.Date,
		IsTeamFinance: req.IsTeamFinance,
	})
	if err != nil {
		writeValidationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := transaction.Filter{}

	query := r.URL.Query()

	if s := query.Get("type"); s != "" {
		typ := transaction.Type(s)
		filter.Type = &typ
	}

	if s := query.Get("category"); s != "" {
		category := s
		filter.Category = &category
	}

	if s := query.Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := query.Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	if s := query.Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			filter.Limit = n
		}
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	txs, err := h.svc.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
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
		writeValidationError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateTransactionRequest struct {
	Amount        *int64                     `json:"amount,omitempty"`
	Type          *transaction.Type          `json:"type,omitempty"`
	Category      *string                    `json:"category,omitempty"`
	Currency      *transaction.Currency      `json:"currency,omitempty"`
	Description   *string                    `json:"description,omitempty"`
	PaymentMethod *transaction.PaymentMethod `json:"payment_method,omitempty"`
	Project       *string                    `json:"project,omitempty"`
	Date          *time.Time                 `json:"date,omitempty"`
	IsTeamFinance *bool                      `json:"is_team_finance,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	if req.Amount != nil {
		tx.Amount = *req.Amount
	}

	if req.Type != nil {
		tx.Type = *req.Type
	}

	if req.Category != nil {
		tx.Category = *req.Category
	}

	if req.Currency != nil {
		tx.Currency = *req.Currency
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}

	if req.PaymentMethod != nil {
		tx.PaymentMethod = *req.PaymentMethod
	}

	if req.Project != nil {
		tx.Project = *req.Project
	}

	if req.Date != nil {
		tx.Date = *req.Date
	}

	if req.IsTeamFinance != nil {
		tx.IsTeamFinance = *req.IsTeamFinance
	}

	if err := h.svc.Update(r.Context(), tx); err != nil {
		writeValidationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
