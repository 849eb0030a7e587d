package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mywallet/mywallet/cmd/tui/internal/view"
	"github.com/mywallet/mywallet/internal/balance"
	"github.com/mywallet/mywallet/internal/category"
	categoryStore "github.com/mywallet/mywallet/internal/category/store"
	"github.com/mywallet/mywallet/internal/config"
	"github.com/mywallet/mywallet/internal/database"
	"github.com/mywallet/mywallet/internal/exchange"
	"github.com/mywallet/mywallet/internal/export"
	"github.com/mywallet/mywallet/internal/importer"
	"github.com/mywallet/mywallet/internal/stats"
	"github.com/mywallet/mywallet/internal/transaction"
	txStore "github.com/mywallet/mywallet/internal/transaction/store"
)

type model struct {
	txService       *transaction.Service
	categoryService *category.Service
	balanceService  *balance.Service
	statsService    *stats.Service
	exchangeService *exchange.Service
	importService   *importer.Service
	exportService   *export.Service

	currentView View

	addView      view.AddModel
	listView     view.ListModel
	balanceView  view.BalanceModel
	statsView    view.StatsModel
	exchangeView view.ExchangeModel
	importView   view.ImportModel
	exportView   view.ExportModel
}

type View int

const (
	ViewMenu     View = 0
	ViewAdd      View = 1
	ViewList     View = 2
	ViewBalance  View = 3
	ViewStats    View = 4
	ViewExchange View = 5
	ViewImport   View = 6
	ViewExport   View = 7
)

func initialModel() model {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(txStore.New(db), cfg.Owner.TelegramID)
	catSvc := category.NewService(categoryStore.New(db))
	balSvc := balance.NewService(txSvc)
	statsSvc := stats.NewService(txSvc)
	exchSvc := exchange.NewService(txStore.New(db), cfg.Owner.TelegramID)
	impSvc := importer.NewService()
	expSvc := export.NewService(txSvc)

	return model{
		txService:       txSvc,
		categoryService: catSvc,
		balanceService:  balSvc,
		statsService:    statsSvc,
		exchangeService: exchSvc,
		importService:   impSvc,
		exportService:   expSvc,
		currentView:     ViewMenu,
		addView:         view.NewAddModel(txSvc, catSvc),
		listView:        view.NewListModel(txSvc),
		balanceView:     view.NewBalanceModel(balSvc),
		statsView:       view.NewStatsModel(statsSvc),
		exchangeView:    view.NewExchangeModel(exchSvc),
		importView:      view.NewImportModel(txSvc, impSvc),
		exportView:      view.NewExportModel(expSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAdd
				m.addView = view.NewAddModel(m.txService, m.categoryService)

				return m, m.addView.Init()
			case "2":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.txService)

				return m, m.listView.Init()
			case "3":
				m.currentView = ViewBalance
				m.balanceView = view.NewBalanceModel(m.balanceService)

				return m, m.balanceView.Init()
			case "4":
				m.currentView = ViewStats
				m.statsView = view.NewStatsModel(m.statsService)

				return m, m.statsView.Init()
			case "5":
				m.currentView = ViewExchange
				m.exchangeView = view.NewExchangeModel(m.exchangeService)

				return m, m.exchangeView.Init()
			case "6":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.txService, m.importService)

				return m, m.importView.Init()
			case "7":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewBalance:
		var newModel tea.Model
		newModel, cmd = m.balanceView.Update(msg)
		m.balanceView = newModel.(view.BalanceModel)
	case ViewStats:
		var newModel tea.Model
		newModel, cmd = m.statsView.Update(msg)
		m.statsView = newModel.(view.StatsModel)
	case ViewExchange:
		var newModel tea.Model
		newModel, cmd = m.exchangeView.Update(msg)
		m.exchangeView = newModel.(view.ExchangeModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"MyWallet\n\n" +
				"1. Add Transaction\n" +
				"2. Transactions\n" +
				"3. Balance\n" +
				"4. Statistics\n" +
				"5. Currency Exchange\n" +
				"6. Import CSV\n" +
				"7. Export to Excel\n\n" +
				"q. Quit",
		)
	case ViewAdd:
		return m.addView.View()
	case ViewList:
		return m.listView.View()
	case ViewBalance:
		return m.balanceView.View()
	case ViewStats:
		return m.statsView.View()
	case ViewExchange:
		return m.exchangeView.View()
	case ViewImport:
		return m.importView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
