package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/spicetable/pos/internal/api"
	"github.com/spicetable/pos/internal/api/terminals"
	"github.com/spicetable/pos/internal/catalog"
	"github.com/spicetable/pos/internal/checkout"
	"github.com/spicetable/pos/internal/config"
	"github.com/spicetable/pos/internal/notify"
	"github.com/spicetable/pos/internal/receipt"
	"github.com/spicetable/pos/internal/repository/postgres"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Catalog source: Postgres when configured, built-in menu otherwise.
	products := catalog.DefaultMenu()
	var sink checkout.OrderSink
	if cfg.Database.Enabled {
		db, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		repos := postgres.NewRepositories(db, logger)
		if stored, err := repos.Product.List(context.Background()); err != nil {
			logger.Warn("Failed to load catalog from database, using built-in menu", zap.Error(err))
		} else if len(stored) > 0 {
			products = stored
		}
		sink = repos.Order
	}

	cat := catalog.New(products)
	notifier := notify.NewZapNotifier(logger)
	formatter := receipt.NewFormatter(receipt.Header{
		BusinessName: cfg.Business.Name,
		Address:      cfg.Business.Address,
		Phone:        cfg.Business.Phone,
	})

	reg := terminals.NewRegistry(func() *checkout.Orchestrator {
		session := checkout.NewSession(cat, notifier)
		session.PageSize = cfg.Checkout.PageSize
		opts := []checkout.Option{
			checkout.WithDelay(cfg.Checkout.ProcessingDelay),
			checkout.WithPrinter(consolePrinter{}),
		}
		if sink != nil {
			opts = append(opts, checkout.WithOrderSink(sink))
		}
		return checkout.NewOrchestrator(session, formatter, notifier, logger, opts...)
	})

	router := api.NewRouter(cfg, reg, logger)

	logger.Info("Starting POS server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.Bool("database", cfg.Database.Enabled),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

// consolePrinter is the default print surface: it writes the rendered
// receipt to stdout, where a spooler or operator can pick it up.
type consolePrinter struct{}

func (consolePrinter) Print(doc string) error {
	_, err := fmt.Fprintln(os.Stdout, doc)
	return err
}
