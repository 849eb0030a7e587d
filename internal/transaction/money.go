package transaction

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a user-entered amount string to cents.
//
// Both dot and comma decimal separators are accepted, as are embedded
// spaces ("1 200,50"). The third decimal digit is rounded half-up. Negative
// and zero amounts are rejected with ErrInvalidAmount; amounts above
// MaxAmount with ErrAmountTooLarge.
func ParseAmount(s string) (int64, error) {
	total, err := parseCents(s)
	if err != nil {
		return 0, err
	}

	if total <= 0 {
		return 0, ErrInvalidAmount
	}

	return total, nil
}

// ParseAmountAllowZero is ParseAmount with zero permitted. The received leg
// of a currency exchange uses it: zero records the rate as unknown.
func ParseAmountAllowZero(s string) (int64, error) {
	return parseCents(s)
}

func parseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")

	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if strings.Contains(fracPart, ".") {
		return 0, ErrInvalidAmount
	}

	if intPart == "" {
		intPart = "0"
	}

	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrAmountTooLarge
	}

	var cents int64
	if len(fracPart) > 0 {
		cents = int64(fracPart[0]-'0') * 10
	}

	if len(fracPart) > 1 {
		cents += int64(fracPart[1] - '0')
	}

	if len(fracPart) > 2 && fracPart[2] >= '5' {
		cents++
	}

	if units > (MaxAmount-cents)/100 {
		return 0, ErrAmountTooLarge
	}

	return units*100 + cents, nil
}

// FormatAmount renders cents as a plain decimal string.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}

// FormatMoney renders cents together with the currency glyph.
func FormatMoney(cents int64, currency Currency) string {
	return FormatAmount(cents) + " " + currency.Symbol()
}
