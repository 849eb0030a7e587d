package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mywallet/mywallet/internal/transaction"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "500", want: 50000},
		{in: "1200.50", want: 120050},
		{in: "1 200,50", want: 120050},
		{in: "62,5", want: 6250},
		{in: "0.275", want: 28}, // half-up on the third decimal
		{in: "0.274", want: 27},
		{in: ".99", want: 99},
		{in: "", wantErr: transaction.ErrInvalidAmount},
		{in: "abc", wantErr: transaction.ErrInvalidAmount},
		{in: "-100", wantErr: transaction.ErrInvalidAmount},
		{in: "+100", wantErr: transaction.ErrInvalidAmount},
		{in: "0", wantErr: transaction.ErrInvalidAmount},
		{in: "1.2.3", wantErr: transaction.ErrInvalidAmount},
		{in: "999999999999999999", wantErr: transaction.ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := transaction.ParseAmount(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmountAllowZero(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "0", want: 0},
		{in: "0.00", want: 0},
		{in: "270", want: 27000},
		{in: "", wantErr: transaction.ErrInvalidAmount},
		{in: "-1", wantErr: transaction.ErrInvalidAmount},
		{in: "abc", wantErr: transaction.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := transaction.ParseAmountAllowZero(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "100.00 ₴", transaction.FormatMoney(10000, transaction.CurrencyUAH))
	assert.Equal(t, "2.70 $", transaction.FormatMoney(270, transaction.CurrencyUSD))
	assert.Equal(t, "0.99 €", transaction.FormatMoney(99, transaction.CurrencyEUR))
}
