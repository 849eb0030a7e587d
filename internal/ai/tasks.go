package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mywallet/mywallet/internal/transaction"
)

// Categorize asks the model to pick one of candidates for a described
// transaction. The answer is returned as-is; the caller validates it
// against the catalogue.
func (c *Client) Categorize(ctx context.Context, description string, amount int64, typ transaction.Type, candidates []string) (string, error) {
	kind := "расход"
	if typ == transaction.TypeIncome {
		kind = "доход"
	}

	prompt := fmt.Sprintf(`Проанализируй финансовую транзакцию и определи наиболее подходящую категорию.

Описание: %s
Сумма: %s грн
Тип: %s

Доступные категории: %s

Верни ТОЛЬКО название категории из списка выше, без дополнительного текста.`,
		description, transaction.FormatAmount(amount), kind, strings.Join(candidates, ", "))

	answer, err := c.complete(ctx, completionRequest{
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: 0.3,
		MaxTokens:   50,
	})
	if err != nil {
		return "", err
	}

	c.logger.Debug("model categorized transaction", "category", answer)

	return answer, nil
}

// ParsedTransaction is the model's reading of a free-form entry like
// "такси 150 грн наличными". Amount is in currency units, not cents.
type ParsedTransaction struct {
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	PaymentMethod string  `json:"payment_method"`
}

// AmountCents converts the parsed amount to cents, rounding half up.
func (p ParsedTransaction) AmountCents() int64 {
	return int64(p.Amount*100 + 0.5)
}

// ParseTransaction extracts structured transaction fields from natural
// language. The model is constrained to JSON output.
func (c *Client) ParseTransaction(ctx context.Context, text string, candidates []string) (*ParsedTransaction, error) {
	prompt := fmt.Sprintf(`Извлеки информацию о финансовой транзакции из текста на русском или украинском языке.

Текст: "%s"

Доступные категории: %s

Верни ответ строго в формате JSON:
{
  "amount": <число>,
  "type": "income" или "expense",
  "category": "<категория из списка>",
  "description": "<краткое описание>",
  "payment_method": "cash" или "card" или null
}

Если информация не указана явно, используй логические предположения.`,
		text, strings.Join(candidates, ", "))

	answer, err := c.complete(ctx, completionRequest{
		Messages:       []message{{Role: "user", Content: prompt}},
		Temperature:    0.2,
		MaxTokens:      200,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var parsed ParsedTransaction
	if err := json.Unmarshal([]byte(answer), &parsed); err != nil {
		return nil, fmt.Errorf("decoding parsed transaction: %w", err)
	}

	return &parsed, nil
}

// Recommendations turns a spending summary into 3-5 budget suggestions.
func (c *Client) Recommendations(ctx context.Context, summary string) (string, error) {
	prompt := fmt.Sprintf(`Ты финансовый советник. На основе данных о тратах за последний период, дай персональные рекомендации.

%s

Дай 3-5 конкретных рекомендаций по оптимизации бюджета. Будь конструктивным и практичным.`, summary)

	return c.complete(ctx, completionRequest{
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: 0.7,
		MaxTokens:   500,
	})
}
