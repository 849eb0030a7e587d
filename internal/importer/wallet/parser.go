// Package wallet parses historical transaction exports: semicolon-separated
// CSV with Russian column headers, possibly in a legacy Cyrillic encoding.
package wallet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/mywallet/mywallet/internal/encoding"
	"github.com/mywallet/mywallet/internal/transaction"
)

const (
	colDate     = "Дата"
	colType     = "Тип"
	colCategory = "Категория"
	colAmount   = "Сумма"
	colCurrency = "Валюта"
	colDesc     = "Описание"
	colPayment  = "Способ оплаты"
	colProject  = "Проект"
)

var dateLayouts = []string{"02.01.2006 15:04", "02.01.2006", "2006-01-02"}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no header row found: expected columns %q, %q and %q", colDate, colType, colAmount)
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx+1)
}

// findHeader scans rows for one carrying the required columns.
func findHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		_, hasDate := cols[colDate]
		_, hasType := cols[colType]
		_, hasAmount := cols[colAmount]

		if hasDate && hasType && hasAmount {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

func parseRows(cols colIndex, rows [][]string, headerRowNum int) ([]transaction.CreateParams, error) {
	var params []transaction.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(cellValue(row, cols[colDate]))
		if !ok {
			// Footer or blank row.
			continue
		}

		typ, err := parseType(cellValue(row, cols[colType]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		amount, err := transaction.ParseAmount(cellValue(row, cols[colAmount]))
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount: %w", rowNum, err)
		}

		currency, err := parseCurrency(optionalCell(row, cols, colCurrency))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		payment, err := parsePaymentMethod(optionalCell(row, cols, colPayment))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		params = append(params, transaction.CreateParams{
			Amount:        amount,
			Type:          typ,
			Category:      optionalCell(row, cols, colCategory),
			Currency:      currency,
			Description:   optionalCell(row, cols, colDesc),
			PaymentMethod: payment,
			Project:       optionalCell(row, cols, colProject),
			Date:          date,
		})
	}

	return params, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseType(s string) (transaction.Type, error) {
	switch strings.ToLower(s) {
	case "income", "доход":
		return transaction.TypeIncome, nil
	case "expense", "расход":
		return transaction.TypeExpense, nil
	}

	return "", fmt.Errorf("unknown transaction type %q", s)
}

func parseCurrency(s string) (transaction.Currency, error) {
	switch strings.ToUpper(s) {
	case "":
		return transaction.DefaultCurrency, nil
	case "UAH", "₴", "ГРН":
		return transaction.CurrencyUAH, nil
	case "USD", "$":
		return transaction.CurrencyUSD, nil
	case "EUR", "€":
		return transaction.CurrencyEUR, nil
	}

	return "", fmt.Errorf("unknown currency %q", s)
}

func parsePaymentMethod(s string) (transaction.PaymentMethod, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case "cash", "наличные":
		return transaction.PaymentCash, nil
	case "card", "карта":
		return transaction.PaymentCard, nil
	case "transfer", "перевод":
		return transaction.PaymentTransfer, nil
	}

	return "", fmt.Errorf("unknown payment method %q", s)
}

// optionalCell gets a trimmed cell for a column that may be absent.
func optionalCell(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok {
		return ""
	}

	return cellValue(row, idx)
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
