package assistant

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mywallet/mywallet/internal/advice"
	"github.com/mywallet/mywallet/internal/ai"
	"github.com/mywallet/mywallet/internal/categorize"
	"github.com/mywallet/mywallet/internal/category"
	"github.com/mywallet/mywallet/internal/transaction"
)

// Handler exposes the model-assisted features: natural-language transaction
// entry, categorization and budget recommendations.
type Handler struct {
	aiClient    *ai.Client
	categorizer *categorize.Service
	categories  *category.Service
	txSvc       *transaction.Service
	adviceSvc   *advice.Service
}

func NewHandler(
	aiClient *ai.Client,
	categorizer *categorize.Service,
	categories *category.Service,
	txSvc *transaction.Service,
	adviceSvc *advice.Service,
) *Handler {
	return &Handler{
		aiClient:    aiClient,
		categorizer: categorizer,
		categories:  categories,
		txSvc:       txSvc,
		adviceSvc:   adviceSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/parse", h.parse)
	r.Post("/categorize", h.categorize)
	r.Post("/categorize/confirm", h.confirmCategory)
	r.Post("/recommendations", h.generateRecommendations)
	r.Get("/recommendations", h.listRecommendations)
	r.Patch("/recommendations/{id}/read", h.markRead)
}

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	ID       uuid.UUID            `json:"id"`
	Amount   int64                `json:"amount"`
	Type     transaction.Type     `json:"type"`
	Category string               `json:"category"`
	Currency transaction.Currency `json:"currency"`
	Date     time.Time            `json:"date"`
}

// parse turns free-form text like "такси 150 грн наличными" into a recorded
// transaction.
func (h *Handler) parse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	expenseNames, err := h.categories.Names(ctx, transaction.TypeExpense)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	incomeNames, err := h.categories.Names(ctx, transaction.TypeIncome)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	parsed, err := h.aiClient.ParseTransaction(ctx, req.Text, append(expenseNames, incomeNames...))
	if err != nil {
		http.Error(w, "could not parse transaction: "+err.Error(), http.StatusBadGateway)
		return
	}

	typ := transaction.Type(parsed.Type)
	if !typ.Valid() {
		typ = transaction.TypeExpense
	}

	// The model's category is advisory only.
	categoryName := parsed.Category

	names := expenseNames
	if typ == transaction.TypeIncome {
		names = incomeNames
	}

	if !slices.Contains(names, categoryName) {
		categoryName = transaction.CategoryOther
	}

	tx, err := h.txSvc.Create(ctx, transaction.CreateParams{
		Amount:        parsed.AmountCents(),
		Type:          typ,
		Category:      categoryName,
		Description:   parsed.Description,
		PaymentMethod: transaction.PaymentMethod(parsed.PaymentMethod),
		AICategorized: true,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(parseResponse{
		ID:       tx.ID,
		Amount:   tx.Amount,
		Type:     tx.Type,
		Category: tx.Category,
		Currency: tx.Currency,
		Date:     tx.Date,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type categorizeRequest struct {
	Description string           `json:"description"`
	Amount      int64            `json:"amount"`
	Type        transaction.Type `json:"type"`
}

type categorizeResponse struct {
	Category string `json:"category"`
}

func (h *Handler) categorize(w http.ResponseWriter, r *http.Request) {
	var req categorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !req.Type.Valid() {
		http.Error(w, "invalid type", http.StatusBadRequest)
		return
	}

	got := h.categorizer.Categorize(r.Context(), req.Description, req.Amount, req.Type)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(categorizeResponse{Category: got}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type confirmCategoryRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

// confirmCategory stores a user-approved description-to-category mapping so
// repeat purchases skip the model.
func (h *Handler) confirmCategory(w http.ResponseWriter, r *http.Request) {
	var req confirmCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Description == "" || req.Category == "" {
		http.Error(w, "description and category are required", http.StatusBadRequest)
		return
	}

	h.categorizer.Confirm(r.Context(), req.Description, req.Category)

	w.WriteHeader(http.StatusNoContent)
}

type recommendationResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

func toRecommendationResponse(rec *advice.Recommendation) recommendationResponse {
	return recommendationResponse{
		ID:        rec.ID,
		Text:      rec.Text,
		CreatedAt: rec.CreatedAt,
		IsRead:    rec.IsRead,
	}
}

func (h *Handler) generateRecommendations(w http.ResponseWriter, r *http.Request) {
	rec, err := h.adviceSvc.Generate(r.Context())
	if err != nil {
		if errors.Is(err, advice.ErrNoData) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toRecommendationResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listRecommendations(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"

	recs, err := h.adviceSvc.List(r.Context(), unreadOnly)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]recommendationResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toRecommendationResponse(rec))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.adviceSvc.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, advice.ErrNotFound) {
			http.Error(w, "recommendation not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
