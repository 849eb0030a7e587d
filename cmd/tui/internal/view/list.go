package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mywallet/mywallet/internal/transaction"
)

type listState int

const (
	listStateTimeframe listState = iota
	listStateBrowse
	listStateEdit
	listStateConfirmDelete
)

// ListModel browses recorded transactions with editing and deletion.
type ListModel struct {
	CommonModel
	txService *transaction.Service

	state           listState
	timeframePicker TimeframePicker
	table           table.Model
	txs             []*transaction.Transaction
	form            *huh.Form

	typeFilterIdx int

	startDate time.Time
	endDate   time.Time
	allTime   bool

	loading bool
	err     error
	status  string

	formAmount   string
	formCategory string
	formDesc     string
	formTeam     bool
}

func NewListModel(txSvc *transaction.Service) ListModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Category", Width: 18},
		{Title: "Amount", Width: 14},
		{Title: "Description", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ListModel{
		txService:       txSvc,
		timeframePicker: NewTimeframePicker(TimeframeThisMonth),
		table:           t,
	}
}

func (m ListModel) Title() string { return "Transactions" }

func (m ListModel) ShortHelp() string {
	switch m.state {
	case listStateEdit:
		return "Navigate form | Esc: cancel"
	case listStateConfirmDelete:
		return "y: delete | n: keep"
	case listStateBrowse:
		return "Esc: back | e: edit | x: delete | t: type filter | d: date range | r: refresh"
	}

	return "Esc: back | Enter: select"
}

func (m ListModel) Init() tea.Cmd {
	return nil
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimeframeSelectedMsg:
		m.startDate = msg.Start
		m.endDate = msg.End
		m.allTime = msg.All
		m.loading = true
		m.state = listStateBrowse

		return m, m.loadTxsCmd()

	case loadListMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.refreshTable()

		if len(msg.txs) == 0 {
			m.status = "No transactions in this range."
		} else {
			m.status = ""
		}

		return m, nil

	case listSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Saved."
		}

		m.state = listStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadTxsCmd()

	case listDeleteMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
		} else {
			m.status = "Deleted."
		}

		m.state = listStateBrowse

		return m, m.loadTxsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case listStateTimeframe:
		return m.updateTimeframe(msg)
	case listStateBrowse:
		return m.updateBrowse(msg)
	case listStateEdit:
		return m.updateEdit(msg)
	case listStateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	return m, nil
}

func (m ListModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m ListModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "e":
			return m.enterEditMode()
		case "x":
			if m.selectedTx() != nil {
				m.state = listStateConfirmDelete
			}

			return m, nil
		case "t":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % 3
			return m, m.loadTxsCmd()
		case "d":
			m.state = listStateTimeframe
			m.timeframePicker.Reset()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) selectedTx() *transaction.Transaction {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	return m.txs[idx]
}

func (m ListModel) enterEditMode() (tea.Model, tea.Cmd) {
	tx := m.selectedTx()
	if tx == nil {
		return m, nil
	}

	m.formAmount = transaction.FormatAmount(tx.Amount)
	m.formCategory = tx.Category
	m.formDesc = tx.Description
	m.formTeam = tx.IsTeamFinance

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					_, err := transaction.ParseAmount(s)
					return err
				}),

			huh.NewInput().
				Key("category").
				Title("Category").
				Value(&m.formCategory),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),

			huh.NewConfirm().
				Key("team").
				Title("Team finance").
				Value(&m.formTeam),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = listStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m ListModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = listStateBrowse
			m.form = nil
			m.table.Focus()

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

	return m, m.saveCmd()
}

func (m ListModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		return m, m.deleteCmd()
	case "n", "esc":
		m.state = listStateBrowse
		return m, nil
	}

	return m, nil
}

func (m ListModel) View() string {
	if m.state == listStateTimeframe {
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	typeLabels := []string{"All", "Расходы", "Доходы"}

	header := fmt.Sprintf(
		"Filter: [t] Type: %s | [d] Range: %s",
		activeStyle(typeLabels[m.typeFilterIdx]),
		activeStyle(m.rangeLabel()),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == listStateEdit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Edit Transaction\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.state == listStateConfirmDelete {
		prompt := "Delete selected transaction? (y/n)"
		if tx := m.selectedTx(); tx != nil {
			prompt = fmt.Sprintf("Delete %s %s? (y/n)", FormatMoney(tx.Amount, tx.Currency), tx.Description)
		}

		content = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(prompt) + "\n" + content
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m ListModel) rangeLabel() string {
	if m.allTime {
		return "All Time"
	}

	return fmt.Sprintf("%s – %s", FormatDate(m.startDate), FormatDate(m.endDate))
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			typeLabel(tx.Type),
			tx.Category,
			FormatMoney(tx.Amount, tx.Currency),
			tx.Description,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadListMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m ListModel) loadTxsCmd() tea.Cmd {
	filter := transaction.Filter{}

	if !m.allTime {
		start, end := m.startDate, m.endDate
		filter.StartDate = &start
		filter.EndDate = &end
	}

	switch m.typeFilterIdx {
	case 1:
		typ := transaction.TypeExpense
		filter.Type = &typ
	case 2:
		typ := transaction.TypeIncome
		filter.Type = &typ
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, filter)
		return loadListMsg{txs: txs, err: err}
	}
}

type listSaveMsg struct {
	err error
}

func (m ListModel) saveCmd() tea.Cmd {
	tx := m.selectedTx()
	if tx == nil {
		return nil
	}

	amount := m.form.GetString("amount")
	categoryName := m.form.GetString("category")
	desc := m.form.GetString("description")
	team := m.form.GetBool("team")

	return func() tea.Msg {
		cents, err := transaction.ParseAmount(amount)
		if err != nil {
			return listSaveMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		tx.Amount = cents
		tx.Category = categoryName
		tx.Description = desc
		tx.IsTeamFinance = team

		return listSaveMsg{err: m.txService.Update(ctx, tx)}
	}
}

type listDeleteMsg struct {
	err error
}

func (m ListModel) deleteCmd() tea.Cmd {
	tx := m.selectedTx()
	if tx == nil {
		return nil
	}

	id := tx.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return listDeleteMsg{err: m.txService.Delete(ctx, id)}
	}
}
