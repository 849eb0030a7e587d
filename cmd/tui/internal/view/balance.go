package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mywallet/mywallet/internal/balance"
	"github.com/mywallet/mywallet/internal/transaction"
)

// BalanceModel shows the current per-currency totals.
type BalanceModel struct {
	CommonModel
	balanceService *balance.Service

	totals  map[transaction.Currency]balance.Totals
	loading bool
	err     error
}

func NewBalanceModel(svc *balance.Service) BalanceModel {
	return BalanceModel{balanceService: svc, loading: true}
}

func (m BalanceModel) Title() string     { return "Balance" }
func (m BalanceModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m BalanceModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BalanceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case balanceLoadedMsg:
		m.loading = false
		m.totals = msg.totals
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m BalanceModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading balance...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := lipgloss.NewStyle().Bold(true).Render("💰 Баланс")

	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n\n")

	empty := true

	for _, currency := range transaction.Currencies() {
		t, ok := m.totals[currency]
		if !ok {
			continue
		}

		empty = false

		b.WriteString(fmt.Sprintf("%s %s\n", currency.Symbol(), currency))
		b.WriteString(fmt.Sprintf("  Доход:   %s\n", transaction.FormatAmount(t.Income)))
		b.WriteString(fmt.Sprintf("  Расход:  %s\n", transaction.FormatAmount(t.Expense)))
		b.WriteString(fmt.Sprintf("  Баланс:  %s\n\n", balanceStyle(t.Balance).Render(transaction.FormatAmount(t.Balance))))
	}

	if empty {
		b.WriteString("No transactions recorded yet.\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func balanceStyle(cents int64) lipgloss.Style {
	if cents < 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
}

type balanceLoadedMsg struct {
	totals map[transaction.Currency]balance.Totals
	err    error
}

func (m BalanceModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		totals, err := m.balanceService.Current(ctx)
		return balanceLoadedMsg{totals: totals, err: err}
	}
}
