package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mywallet/mywallet/internal/category"
	"github.com/mywallet/mywallet/internal/transaction"
)

type addState int

const (
	addStateType addState = iota
	addStateForm
	addStateResult
)

// AddModel records a single income or expense through a form.
type AddModel struct {
	CommonModel
	txService  *transaction.Service
	categories *category.Service

	state addState
	form  *huh.Form

	typeCursor int
	typ        transaction.Type

	names []string

	formAmount   string
	formCategory string
	formCurrency string
	formDesc     string
	formPayment  string

	status string
	err    error
}

func NewAddModel(txSvc *transaction.Service, catSvc *category.Service) AddModel {
	return AddModel{
		txService:  txSvc,
		categories: catSvc,
	}
}

func (m AddModel) Title() string { return "Add Transaction" }

func (m AddModel) ShortHelp() string {
	switch m.state {
	case addStateForm:
		return "Enter/Tab: navigate form | Esc: cancel"
	case addStateResult:
		return "Esc: back | a: add another"
	}

	return "Esc: back | Enter: select"
}

func (m AddModel) Init() tea.Cmd {
	return nil
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoryNamesMsg:
		if msg.err != nil {
			m.state = addStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error loading categories: %v", msg.err)

			return m, nil
		}

		m.names = msg.names
		m.form = m.buildForm()
		m.state = addStateForm

		return m, m.form.Init()

	case addResultMsg:
		m.state = addStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.err = nil
		m.status = fmt.Sprintf("Recorded: %s %s (%s)",
			typeLabel(msg.tx.Type),
			FormatMoney(msg.tx.Amount, msg.tx.Currency),
			msg.tx.Category,
		)

		return m, nil
	}

	switch m.state {
	case addStateType:
		return m.updateType(msg)
	case addStateForm:
		return m.updateForm(msg)
	case addStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m AddModel) updateType(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		return m, Back
	case tea.KeyUp:
		if m.typeCursor > 0 {
			m.typeCursor--
		}
	case tea.KeyDown:
		if m.typeCursor < 1 {
			m.typeCursor++
		}
	case tea.KeyEnter:
		m.typ = transaction.TypeExpense
		if m.typeCursor == 1 {
			m.typ = transaction.TypeIncome
		}

		return m, m.loadNamesCmd()
	}

	return m, nil
}

func (m AddModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = addStateType
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.createCmd()
}

func (m AddModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "a":
		m.state = addStateType
		m.status = ""
		m.err = nil

		return m, nil
	}

	return m, nil
}

func (m AddModel) buildForm() *huh.Form {
	m.formAmount = ""
	m.formCategory = ""
	m.formCurrency = string(transaction.DefaultCurrency)
	m.formDesc = ""
	m.formPayment = string(transaction.PaymentCard)

	categoryOptions := make([]huh.Option[string], 0, len(m.names))
	for _, name := range m.names {
		categoryOptions = append(categoryOptions, huh.NewOption(name, name))
	}

	currencyOptions := make([]huh.Option[string], 0, 3)
	for _, c := range transaction.Currencies() {
		currencyOptions = append(currencyOptions, huh.NewOption(fmt.Sprintf("%s %s", c, c.Symbol()), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("150.50").
				Value(&m.formAmount).
				Validate(func(s string) error {
					_, err := transaction.ParseAmount(s)
					return err
				}),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(categoryOptions...).
				Value(&m.formCategory),

			huh.NewSelect[string]().
				Key("currency").
				Title("Currency").
				Options(currencyOptions...).
				Value(&m.formCurrency),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),

			huh.NewSelect[string]().
				Key("payment_method").
				Title("Payment Method").
				Options(
					huh.NewOption("Card", string(transaction.PaymentCard)),
					huh.NewOption("Cash", string(transaction.PaymentCash)),
					huh.NewOption("Transfer", string(transaction.PaymentTransfer)),
				).
				Value(&m.formPayment),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m AddModel) View() string {
	switch m.state {
	case addStateType:
		labels := []string{"Расход", "Доход"}

		s := "Transaction Type:\n\n"
		for i, label := range labels {
			cursor := " "
			if i == m.typeCursor {
				cursor = ">"
			}

			s += fmt.Sprintf("%s %s\n", cursor, label)
		}

		return lipgloss.NewStyle().Padding(2).Render(s)

	case addStateForm:
		if m.form == nil {
			return ""
		}

		header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("New %s", strings.ToLower(typeLabel(m.typ))))

		return lipgloss.NewStyle().Padding(1).Render(header + "\n\n" + m.form.View())

	case addStateResult:
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
		if m.err != nil {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		}

		return lipgloss.NewStyle().Padding(2).Render(
			style.Render(m.status) + "\n\n(a: add another, Esc: back)",
		)
	}

	return ""
}

// Messages

type categoryNamesMsg struct {
	names []string
	err   error
}

func (m AddModel) loadNamesCmd() tea.Cmd {
	typ := m.typ

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		names, err := m.categories.Names(ctx, typ)
		return categoryNamesMsg{names: names, err: err}
	}
}

type addResultMsg struct {
	tx  *transaction.Transaction
	err error
}

func (m AddModel) createCmd() tea.Cmd {
	// The model is copied between updates, so read completed values from the
	// form rather than the bound fields.
	typ := m.typ
	amount := m.form.GetString("amount")
	categoryName := m.form.GetString("category")
	currency := transaction.Currency(m.form.GetString("currency"))
	desc := m.form.GetString("description")
	payment := transaction.PaymentMethod(m.form.GetString("payment_method"))

	return func() tea.Msg {
		cents, err := transaction.ParseAmount(amount)
		if err != nil {
			return addResultMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		tx, err := m.txService.Create(ctx, transaction.CreateParams{
			Amount:        cents,
			Type:          typ,
			Category:      categoryName,
			Currency:      currency,
			Description:   desc,
			PaymentMethod: payment,
		})

		return addResultMsg{tx: tx, err: err}
	}
}
