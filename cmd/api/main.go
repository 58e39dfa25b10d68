package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chanlloyd12/backend-repo/internal/config"
	"github.com/chanlloyd12/backend-repo/internal/database"
	"github.com/chanlloyd12/backend-repo/internal/handler"
	"github.com/chanlloyd12/backend-repo/internal/repository"
	"github.com/chanlloyd12/backend-repo/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.Level,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к БД
	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := database.Migrate(db, cfg.Database.Driver); err != nil {
		return err
	}

	// Инициализация репозиториев
	store := repository.NewStore(db)

	// Инициализация сервисов
	accountService := service.NewAccountService(store.Accounts)
	deptService := service.NewDepartmentService(store.Departments)
	empService := service.NewEmployeeService(store)
	transferService := service.NewTransferService(store)
	requestService := service.NewRequestService(store)
	workflowService := service.NewWorkflowService(store, cfg.Workflow.Retransition, logger)

	// Настройка роутера
	router := handler.NewRouter(handler.Handlers{
		Accounts:    handler.NewAccountHandler(accountService, logger),
		Departments: handler.NewDepartmentHandler(deptService, logger),
		Employees:   handler.NewEmployeeHandler(empService, logger),
		Transfers:   handler.NewTransferHandler(transferService, logger),
		Requests:    handler.NewRequestHandler(requestService, logger),
		Workflows:   handler.NewWorkflowHandler(workflowService, logger),
	}, logger)

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server is starting",
			slog.String("port", cfg.Server.Port),
			slog.String("driver", cfg.Database.Driver),
			slog.String("retransition", string(cfg.Workflow.Retransition)),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server is shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
