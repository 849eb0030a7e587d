package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type represents the direction of a transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is a known transaction type.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Currency is one of the supported wallet currencies.
type Currency string

const (
	CurrencyUAH Currency = "UAH"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// DefaultCurrency is assumed when a transaction carries no currency.
const DefaultCurrency = CurrencyUAH

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	return c == CurrencyUAH || c == CurrencyUSD || c == CurrencyEUR
}

// Symbol returns the display glyph for the currency.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUAH:
		return "₴"
	case CurrencyUSD:
		return "$"
	case CurrencyEUR:
		return "€"
	}

	return string(c)
}

// Currencies lists all supported currencies in display order.
func Currencies() []Currency {
	return []Currency{CurrencyUAH, CurrencyUSD, CurrencyEUR}
}

// PaymentMethod is how a transaction was paid. Empty means unspecified.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// Valid reports whether p is a known payment method or unspecified.
func (p PaymentMethod) Valid() bool {
	return p == "" || p == PaymentCash || p == PaymentCard || p == PaymentTransfer
}

// Reserved category names the reporting logic keys on.
const (
	// CategoryTransfers marks movements between the user's own cash and
	// card holdings. Combined with a cash-to-card description they are
	// excluded from expense totals.
	CategoryTransfers = "Переводы"

	// CategoryExchange is the fixed category of both legs of a currency
	// exchange.
	CategoryExchange = "Обмен валюты"

	// CategoryPartners is money paid out on behalf of business partners.
	// It is excluded from expense breakdowns and percentage baselines.
	CategoryPartners = "Партнерам"

	// CategoryOther is the sentinel fallback when classification fails.
	CategoryOther = "Другое"
)

var (
	ErrNotFound             = errors.New("transaction not found")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrAmountTooLarge       = errors.New("amount exceeds sanity ceiling")
	ErrInvalidType          = errors.New("invalid transaction type")
	ErrInvalidCurrency      = errors.New("invalid currency")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// MaxAmount is the sanity ceiling for a single transaction, in cents.
const MaxAmount int64 = 10_000_000_000

// Transaction represents a single recorded money movement. Amount is a
// non-negative magnitude in cents; the cash-flow sign is carried by Type.
type Transaction struct {
	ID             uuid.UUID
	UserTelegramID int64
	Amount         int64 // cents, always >= 0
	Type           Type
	Category       string
	Currency       Currency
	Description    string
	PaymentMethod  PaymentMethod
	Project        string
	Date           time.Time // economic date, distinct from CreatedAt
	CreatedAt      time.Time

	// Provenance.
	AICategorized      bool
	VoiceTranscription string
	ReceiptImageURL    string

	// Counter-leg bookkeeping, set only on exchange-derived income legs.
	OriginalAmount   *int64
	OriginalCurrency *Currency

	IsTeamFinance bool
}
