package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mywallet/mywallet/internal/exchange"
	"github.com/mywallet/mywallet/internal/transaction"
)

type exchangeState int

const (
	exchangeStateForm exchangeState = iota
	exchangeStateResult
)

// ExchangeModel records a currency exchange as two linked transactions.
type ExchangeModel struct {
	CommonModel
	exchangeService *exchange.Service

	state exchangeState
	form  *huh.Form

	formFrom       string
	formFromAmount string
	formTo         string
	formToAmount   string

	result *exchange.Result
	err    error
}

func NewExchangeModel(svc *exchange.Service) ExchangeModel {
	m := ExchangeModel{exchangeService: svc}
	m.form = m.buildForm()

	return m
}

func (m ExchangeModel) Title() string { return "Currency Exchange" }

func (m ExchangeModel) ShortHelp() string {
	if m.state == exchangeStateResult {
		return "Esc: back | n: new exchange"
	}

	return "Enter/Tab: navigate form | Esc: back"
}

func (m ExchangeModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExchangeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exchangeResultMsg); ok {
		m.state = exchangeStateResult
		m.result = result.result
		m.err = result.err

		return m, nil
	}

	switch m.state {
	case exchangeStateForm:
		return m.updateForm(msg)
	case exchangeStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExchangeModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.exchangeCmd()
}

func (m ExchangeModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "n":
		m.state = exchangeStateForm
		m.result = nil
		m.err = nil
		m.form = m.buildForm()

		return m, m.form.Init()
	}

	return m, nil
}

func (m *ExchangeModel) buildForm() *huh.Form {
	m.formFrom = string(transaction.CurrencyUAH)
	m.formFromAmount = ""
	m.formTo = string(transaction.CurrencyUSD)
	m.formToAmount = ""

	currencyOptions := func() []huh.Option[string] {
		opts := make([]huh.Option[string], 0, 3)
		for _, c := range transaction.Currencies() {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s %s", c, c.Symbol()), string(c)))
		}

		return opts
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("from").
				Title("Sold Currency").
				Options(currencyOptions()...).
				Value(&m.formFrom),

			huh.NewInput().
				Key("from_amount").
				Title("Sold Amount").
				Placeholder("10000").
				Value(&m.formFromAmount).
				Validate(func(s string) error {
					_, err := transaction.ParseAmount(s)
					return err
				}),

			huh.NewSelect[string]().
				Key("to").
				Title("Received Currency").
				Options(currencyOptions()...).
				Value(&m.formTo),

			huh.NewInput().
				Key("to_amount").
				Title("Received Amount").
				Placeholder("270").
				Value(&m.formToAmount).
				Validate(func(s string) error {
					_, err := transaction.ParseAmountAllowZero(s)
					return err
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m ExchangeModel) View() string {
	switch m.state {
	case exchangeStateForm:
		header := lipgloss.NewStyle().Bold(true).Render("💱 Обмен валюты")
		return lipgloss.NewStyle().Padding(1).Render(header + "\n\n" + m.form.View())

	case exchangeStateResult:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(2).Render(
				lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
					"\n\n(n: new exchange, Esc: back)",
			)
		}

		header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")).Render("Exchange recorded")

		body := fmt.Sprintf(
			"%s\n\nОтдано:   %s\nПолучено: %s\nКурс:     %.4f\n\n(n: new exchange, Esc: back)",
			header,
			FormatMoney(m.result.Expense.Amount, m.result.Expense.Currency),
			FormatMoney(m.result.Income.Amount, m.result.Income.Currency),
			m.result.Rate,
		)

		return lipgloss.NewStyle().Padding(1, 2).Render(body)
	}

	return ""
}

type exchangeResultMsg struct {
	result *exchange.Result
	err    error
}

func (m ExchangeModel) exchangeCmd() tea.Cmd {
	from := transaction.Currency(m.form.GetString("from"))
	fromAmount := m.form.GetString("from_amount")
	to := transaction.Currency(m.form.GetString("to"))
	toAmount := m.form.GetString("to_amount")

	return func() tea.Msg {
		fromCents, err := transaction.ParseAmount(fromAmount)
		if err != nil {
			return exchangeResultMsg{err: err}
		}

		toCents, err := transaction.ParseAmountAllowZero(toAmount)
		if err != nil {
			return exchangeResultMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		result, err := m.exchangeService.Exchange(ctx, exchange.Params{
			FromCurrency: from,
			FromAmount:   fromCents,
			ToCurrency:   to,
			ToAmount:     toCents,
		})

		return exchangeResultMsg{result: result, err: err}
	}
}
