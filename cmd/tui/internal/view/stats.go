package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mywallet/mywallet/internal/stats"
	"github.com/mywallet/mywallet/internal/transaction"
)

var statsPeriods = []stats.Period{
	stats.PeriodDay,
	stats.PeriodWeek,
	stats.PeriodMonth,
	stats.PeriodYear,
	stats.PeriodAll,
}

func periodLabel(p stats.Period) string {
	switch p {
	case stats.PeriodDay:
		return "День"
	case stats.PeriodWeek:
		return "Неделя"
	case stats.PeriodMonth:
		return "Месяц"
	case stats.PeriodYear:
		return "Год"
	case stats.PeriodAll:
		return "Все время"
	}

	return string(p)
}

// StatsModel shows a period report with top category breakdowns.
type StatsModel struct {
	CommonModel
	statsService *stats.Service

	periodIdx int
	report    *stats.Report
	loading   bool
	err       error
}

func NewStatsModel(svc *stats.Service) StatsModel {
	return StatsModel{
		statsService: svc,
		periodIdx:    2, // month
		loading:      true,
	}
}

func (m StatsModel) Title() string { return "Statistics" }

func (m StatsModel) ShortHelp() string {
	return "Esc: back | ←/→: period | r: refresh"
}

func (m StatsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.loading = false
		m.report = msg.report
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "left", "h":
			if m.periodIdx > 0 {
				m.periodIdx--
				m.loading = true

				return m, m.loadCmd()
			}
		case "right", "l":
			if m.periodIdx < len(statsPeriods)-1 {
				m.periodIdx++
				m.loading = true

				return m, m.loadCmd()
			}
		}
	}

	return m, nil
}

func (m StatsModel) View() string {
	tabs := make([]string, 0, len(statsPeriods))

	for i, p := range statsPeriods {
		label := periodLabel(p)
		if i == m.periodIdx {
			label = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("[" + label + "]")
		}

		tabs = append(tabs, label)
	}

	header := strings.Join(tabs, "  ")

	if m.loading {
		return lipgloss.NewStyle().Padding(1, 2).Render(header + "\n\nLoading report...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(header + fmt.Sprintf("\n\nError: %v", m.err))
	}

	if m.report == nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(header)
	}

	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("📊 Статистика: %s — %s\n\n",
		m.report.Start.Format("02.01.2006"),
		m.report.End.Format("02.01.2006"),
	))

	b.WriteString(fmt.Sprintf("Доход:   %s\n", transaction.FormatAmount(m.report.Income)))
	b.WriteString(fmt.Sprintf("Расход:  %s\n", transaction.FormatAmount(m.report.Expense)))
	b.WriteString(fmt.Sprintf("Баланс:  %s\n", balanceStyle(m.report.Balance).Render(transaction.FormatAmount(m.report.Balance))))

	b.WriteString(renderEntries("Топ расходов", m.report.TopExpenses))
	b.WriteString(renderEntries("Топ доходов", m.report.TopIncome))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func renderEntries(title string, entries []stats.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render(title) + "\n")

	for _, e := range entries {
		b.WriteString(fmt.Sprintf("  %-24s %12s  %5.1f%%\n",
			e.Category,
			transaction.FormatAmount(e.Total),
			e.Percent,
		))
	}

	return b.String()
}

type statsLoadedMsg struct {
	report *stats.Report
	err    error
}

func (m StatsModel) loadCmd() tea.Cmd {
	period := statsPeriods[m.periodIdx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		report, err := m.statsService.Report(ctx, period)
		return statsLoadedMsg{report: report, err: err}
	}
}
