// Package export renders transactions into an Excel workbook with a raw
// listing, per-category summaries and an overall balance sheet.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mywallet/mywallet/internal/balance"
	"github.com/mywallet/mywallet/internal/stats"
	"github.com/mywallet/mywallet/internal/transaction"
)

const (
	sheetTransactions = "Все транзакции"
	sheetCategories   = "Статистика по категориям"
	sheetSummary      = "Месячная сводка"
)

// Lister is the slice of the transaction service the exporter needs.
type Lister interface {
	ListWindow(ctx context.Context, start, end *time.Time) ([]*transaction.Transaction, error)
}

// Service builds Excel exports of recorded transactions.
type Service struct {
	txs Lister
	now func() time.Time
}

func NewService(txs Lister) *Service {
	return &Service{txs: txs, now: time.Now}
}

// Filename returns a timestamped name for a fresh export.
func (s *Service) Filename() string {
	return fmt.Sprintf("MyWallet_Export_%s.xlsx", s.now().Format("20060102_150405"))
}

// Workbook exports transactions in [start, end] as a three-sheet workbook.
// The caller owns the returned file and must Close it.
func (s *Service) Workbook(ctx context.Context, start, end time.Time) (*excelize.File, error) {
	txs, err := s.txs.ListWindow(ctx, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	f := excelize.NewFile()

	if err := s.writeTransactionsSheet(f, txs); err != nil {
		return nil, err
	}

	if err := s.writeCategorySheet(f, txs); err != nil {
		return nil, err
	}

	if err := s.writeSummarySheet(ctx, f, start, end); err != nil {
		return nil, err
	}

	return f, nil
}

func typeLabel(typ transaction.Type) string {
	if typ == transaction.TypeIncome {
		return "Доход"
	}

	return "Расход"
}

func (s *Service) writeTransactionsSheet(f *excelize.File, txs []*transaction.Transaction) error {
	if err := f.SetSheetName("Sheet1", sheetTransactions); err != nil {
		return fmt.Errorf("renaming transactions sheet: %w", err)
	}

	headers := []string{"Дата", "Тип", "Категория", "Сумма", "Валюта", "Описание", "Способ оплаты", "Проект"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetTransactions, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetTransactions, "A1", last, style); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, tx := range txs {
		row := i + 2

		currency := tx.Currency
		if currency == "" {
			currency = transaction.DefaultCurrency
		}

		values := []any{
			tx.Date.Format("02.01.2006 15:04"),
			typeLabel(tx.Type),
			tx.Category,
			float64(tx.Amount) / 100,
			string(currency),
			tx.Description,
			string(tx.PaymentMethod),
			tx.Project,
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetTransactions, cell, v); err != nil {
				return fmt.Errorf("writing transaction row: %w", err)
			}
		}
	}

	if err := f.SetColWidth(sheetTransactions, "A", "A", 18); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if err := f.SetColWidth(sheetTransactions, "F", "F", 40); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	return nil
}

// categorySection writes one РАСХОДЫ/ДОХОДЫ block and returns the next free row.
func categorySection(f *excelize.File, row int, title string, breakdown []stats.CategoryTotal) (int, error) {
	setCell := func(col, r int, v any) error {
		cell, _ := excelize.CoordinatesToCellName(col, r)
		return f.SetCellValue(sheetCategories, cell, v)
	}

	if err := setCell(1, row, title); err != nil {
		return 0, fmt.Errorf("writing section title: %w", err)
	}

	row++

	for i, h := range []string{"Категория", "Сумма", "Процент"} {
		if err := setCell(i+1, row, h); err != nil {
			return 0, fmt.Errorf("writing section header: %w", err)
		}
	}

	row++

	var total int64
	for _, ct := range breakdown {
		total += ct.Total
	}

	for _, ct := range breakdown {
		if err := setCell(1, row, ct.Category); err != nil {
			return 0, fmt.Errorf("writing category row: %w", err)
		}

		if err := setCell(2, row, float64(ct.Total)/100); err != nil {
			return 0, fmt.Errorf("writing category row: %w", err)
		}

		if err := setCell(3, row, fmt.Sprintf("%.1f%%", stats.Percentage(ct.Total, total))); err != nil {
			return 0, fmt.Errorf("writing category row: %w", err)
		}

		row++
	}

	row++

	if err := setCell(1, row, "ИТОГО"); err != nil {
		return 0, fmt.Errorf("writing section total: %w", err)
	}

	if err := setCell(2, row, float64(total)/100); err != nil {
		return 0, fmt.Errorf("writing section total: %w", err)
	}

	return row + 2, nil
}

func (s *Service) writeCategorySheet(f *excelize.File, txs []*transaction.Transaction) error {
	if _, err := f.NewSheet(sheetCategories); err != nil {
		return fmt.Errorf("creating category sheet: %w", err)
	}

	row, err := categorySection(f, 1, "РАСХОДЫ", stats.Breakdown(txs, transaction.TypeExpense))
	if err != nil {
		return err
	}

	if _, err := categorySection(f, row, "ДОХОДЫ", stats.Breakdown(txs, transaction.TypeIncome)); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetCategories, "A", "A", 30); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	return nil
}

func (s *Service) writeSummarySheet(ctx context.Context, f *excelize.File, start, end time.Time) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	// The summary reflects the full recorded history, not just the export
	// window, so internal transfers are excluded the same way the balance
	// view excludes them.
	all, err := s.txs.ListWindow(ctx, nil, nil)
	if err != nil {
		return fmt.Errorf("listing transactions for summary: %w", err)
	}

	totals := balance.Compute(all)

	setCell := func(col, r int, v any) error {
		cell, _ := excelize.CoordinatesToCellName(col, r)
		return f.SetCellValue(sheetSummary, cell, v)
	}

	if err := setCell(1, 1, "Месячная сводка"); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	period := fmt.Sprintf("%s - %s", start.Format("02.01.2006"), end.Format("02.01.2006"))
	if err := setCell(1, 3, "Период:"); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	if err := setCell(2, 3, period); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	row := 5

	for _, currency := range transaction.Currencies() {
		t, ok := totals[currency]
		if !ok {
			continue
		}

		if err := setCell(1, row, fmt.Sprintf("Общий доход (%s):", currency)); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}

		if err := setCell(2, row, float64(t.Income)/100); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}

		if err := setCell(1, row+1, fmt.Sprintf("Общий расход (%s):", currency)); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}

		if err := setCell(2, row+1, float64(t.Expense)/100); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}

		if err := setCell(1, row+2, fmt.Sprintf("Баланс (%s):", currency)); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}

		if err := setCell(2, row+2, float64(t.Balance)/100); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}

		row += 4
	}

	if err := f.SetColWidth(sheetSummary, "A", "A", 24); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	return nil
}
