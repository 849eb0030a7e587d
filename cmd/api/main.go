package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mywallet/mywallet/internal/advice"
	adviceStore "github.com/mywallet/mywallet/internal/advice/store"
	"github.com/mywallet/mywallet/internal/ai"
	"github.com/mywallet/mywallet/internal/balance"
	"github.com/mywallet/mywallet/internal/categorize"
	"github.com/mywallet/mywallet/internal/category"
	categoryStore "github.com/mywallet/mywallet/internal/category/store"
	"github.com/mywallet/mywallet/internal/config"
	"github.com/mywallet/mywallet/internal/database"
	"github.com/mywallet/mywallet/internal/exchange"
	"github.com/mywallet/mywallet/internal/export"
	walletHttp "github.com/mywallet/mywallet/internal/http"
	assistantHandler "github.com/mywallet/mywallet/internal/http/assistant"
	balanceHandler "github.com/mywallet/mywallet/internal/http/balance"
	categoryHandler "github.com/mywallet/mywallet/internal/http/category"
	exchangeHandler "github.com/mywallet/mywallet/internal/http/exchange"
	exportHandler "github.com/mywallet/mywallet/internal/http/export"
	importHandler "github.com/mywallet/mywallet/internal/http/importcsv"
	statsHandler "github.com/mywallet/mywallet/internal/http/stats"
	txHandler "github.com/mywallet/mywallet/internal/http/transaction"
	"github.com/mywallet/mywallet/internal/importer"
	"github.com/mywallet/mywallet/internal/matching"
	matchingStore "github.com/mywallet/mywallet/internal/matching/store"
	"github.com/mywallet/mywallet/internal/stats"
	"github.com/mywallet/mywallet/internal/transaction"
	txStore "github.com/mywallet/mywallet/internal/transaction/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// `mywallet-api token` prints a fresh bearer token and exits.
	if len(os.Args) > 1 && os.Args[1] == "token" {
		if cfg.Auth.Secret == "" {
			slog.Error("AUTH_SECRET is not set, auth is disabled")
			os.Exit(1)
		}

		token, err := walletHttp.IssueToken(cfg.Auth.Secret, 30*24*time.Hour)
		if err != nil {
			slog.Error("failed to issue token", "error", err)
			os.Exit(1)
		}

		fmt.Println(token)

		return
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		transactionService = transaction.NewService(txStore.New(db), cfg.Owner.TelegramID)
		categoryService    = category.NewService(categoryStore.New(db))
		balanceService     = balance.NewService(transactionService)
		statsService       = stats.NewService(transactionService)
		exchangeService    = exchange.NewService(txStore.New(db), cfg.Owner.TelegramID)
		importService      = importer.NewService()
		exportService      = export.NewService(transactionService)
	)

	if inserted, err := categoryService.Seed(ctx); err != nil {
		slog.Error("failed to seed categories", "error", err)
		os.Exit(1)
	} else if inserted > 0 {
		slog.Info("seeded default categories", "count", inserted)
	}

	var (
		transactionH = txHandler.NewHandler(transactionService)
		balanceH     = balanceHandler.NewHandler(balanceService)
		statsH       = statsHandler.NewHandler(statsService)
		exchangeH    = exchangeHandler.NewHandler(exchangeService)
		categoryH    = categoryHandler.NewHandler(categoryService)
		exportH      = exportHandler.NewHandler(exportService)
		importH      = importHandler.NewHandler(importService, transactionService)
	)

	var assistantH *assistantHandler.Handler

	if cfg.AIEnabled() {
		aiClient := ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout, logger)
		memory := matching.NewService(matchingStore.New(db))
		categorizeService := categorize.NewService(aiClient, categoryService, memory, logger)
		adviceService := advice.NewService(adviceStore.New(db), aiClient, transactionService)

		assistantH = assistantHandler.NewHandler(aiClient, categorizeService, categoryService, transactionService, adviceService)
	} else {
		slog.Info("AI_API_KEY not set, assistant endpoints disabled")
	}

	router := walletHttp.New(
		transactionH,
		balanceH,
		statsH,
		exchangeH,
		categoryH,
		exportH,
		importH,
		assistantH,
		walletHttp.Options{
			AuthSecret:     cfg.Auth.Secret,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
