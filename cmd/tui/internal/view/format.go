package view

import (
	"context"
	"time"

	"github.com/mywallet/mywallet/internal/transaction"
)

const dbTimeout = 5 * time.Second

// FormatMoney renders cents with the currency glyph, e.g. "150.00 ₴".
func FormatMoney(cents int64, currency transaction.Currency) string {
	return transaction.FormatMoney(cents, currency)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func typeLabel(typ transaction.Type) string {
	if typ == transaction.TypeIncome {
		return "Доход"
	}

	return "Расход"
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
