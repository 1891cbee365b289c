package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createFeedbackHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/create_feedback"
	createOrderHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/create_order"
	createTimeRangeHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/create_time_range"
	deleteTimeRangeHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/delete_time_range"
	ensureUserHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/ensure_user"
	getOrderHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/get_order"
	getOrdersHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/get_orders"
	getStatsHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/get_stats"
	getTimeRangesHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/get_time_ranges"
	getTimeWindowsHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/get_time_windows"
	getUserOrdersHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/get_user_orders"
	manageLocationsHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/manage_locations"
	toggleTimeRangeHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/toggle_time_range"
	updateOrderStatusHandler "github.com/postbureau/PB-MeetingService/internal/api/handlers/update_order_status"
	"github.com/postbureau/PB-MeetingService/internal/api/middleware"
	"github.com/postbureau/PB-MeetingService/internal/config"
	feedbackRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/feedback"
	locationRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/location"
	"github.com/postbureau/PB-MeetingService/internal/infra/storage/migrations"
	notificationRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/notification"
	orderRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/order"
	statsRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/stats"
	timerangeRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/timerange"
	userRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/user"
	windowRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/window"
	"github.com/postbureau/PB-MeetingService/internal/integrations/botgateway"
	locationsService "github.com/postbureau/PB-MeetingService/internal/service/locations"
	ordersService "github.com/postbureau/PB-MeetingService/internal/service/orders"
	statsService "github.com/postbureau/PB-MeetingService/internal/service/stats"
	timerangesService "github.com/postbureau/PB-MeetingService/internal/service/timeranges"
	usersService "github.com/postbureau/PB-MeetingService/internal/service/users"
	windowsService "github.com/postbureau/PB-MeetingService/internal/service/windows"
	cancelOrderUC "github.com/postbureau/PB-MeetingService/internal/usecase/cancel_order"
	createRangeUC "github.com/postbureau/PB-MeetingService/internal/usecase/create_range"
	placeOrderUC "github.com/postbureau/PB-MeetingService/internal/usecase/place_order"
	"github.com/postbureau/PB-MeetingService/pkg/dbmetrics"
	"github.com/postbureau/PB-MeetingService/pkg/logger"
	"github.com/postbureau/PB-MeetingService/pkg/metrics"
	"github.com/postbureau/PB-MeetingService/pkg/simpletxmanager"
	"github.com/postbureau/PB-MeetingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PB-MeetingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if err := migrations.Up(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Клиент шлюза уведомлений
	notifier := botgateway.NewClient(
		cfg.BotGateway.URL,
		time.Duration(cfg.BotGateway.Timeout)*time.Second,
		log,
	)
	log.Info("BotGateway client initialized (url=%s, timeout=%ds)", cfg.BotGateway.URL, cfg.BotGateway.Timeout)

	// БД-executor и менеджер транзакций: с метриками или без
	var (
		dbExec dbmetrics.DBExecutor
		txMgr  *txmanager.TransactionManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		dbExec = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		// *sql.DB сам удовлетворяет dbmetrics.DBExecutor
		dbExec = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Репозитории
	windows := windowRepo.NewRepository(dbExec)
	timeranges := timerangeRepo.NewRepository(dbExec)
	orders := orderRepo.NewRepository(dbExec)
	users := userRepo.NewRepository(dbExec)
	locations := locationRepo.NewRepository(dbExec)
	feedback := feedbackRepo.NewRepository(dbExec)
	notifications := notificationRepo.NewRepository(dbExec)
	stats := statsRepo.NewRepository(dbExec)

	// Сервисы
	windowsSvc := windowsService.NewService(windows, timeranges, orders, log)
	ordersSvc := ordersService.NewService(orders, users, feedback, notifications, notifier, txMgr, log)
	timerangesSvc := timerangesService.NewService(timeranges, windows, txMgr, log)
	locationsSvc := locationsService.NewService(locations, log)
	usersSvc := usersService.NewService(users, log)
	statsSvc := statsService.NewService(stats, txMgr, log)

	// Use cases
	placeOrder := placeOrderUC.NewUseCase(orders, windowsSvc, users, txMgr, log)
	cancelOrder := cancelOrderUC.NewUseCase(orders, windowsSvc, users, notifications, notifier, txMgr, log)
	createRange := createRangeUC.NewUseCase(timeranges, windows, txMgr, log)

	// Handlers
	createOrderH := createOrderHandler.NewHandler(placeOrder, log)
	getOrderH := getOrderHandler.NewHandler(ordersSvc, log)
	getOrdersH := getOrdersHandler.NewHandler(ordersSvc, log)
	getUserOrdersH := getUserOrdersHandler.NewHandler(ordersSvc, log)
	updateOrderStatusH := updateOrderStatusHandler.NewHandler(ordersSvc, cancelOrder, log)
	createFeedbackH := createFeedbackHandler.NewHandler(ordersSvc, log)
	createTimeRangeH := createTimeRangeHandler.NewHandler(createRange, log)
	getTimeRangesH := getTimeRangesHandler.NewHandler(timerangesSvc, log)
	toggleTimeRangeH := toggleTimeRangeHandler.NewHandler(timerangesSvc, log)
	deleteTimeRangeH := deleteTimeRangeHandler.NewHandler(timerangesSvc, log)
	getTimeWindowsH := getTimeWindowsHandler.NewHandler(windowsSvc, log)
	manageLocationsH := manageLocationsHandler.NewHandler(locationsSvc, log)
	ensureUserH := ensureUserHandler.NewHandler(usersSvc, log)
	getStatsH := getStatsHandler.NewHandler(statsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.CORS)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты (чтение)
	api.HandleFunc("/time-ranges/{date:[0-9-]+}", getTimeRangesH.HandleByDate).Methods(http.MethodGet)
	api.HandleFunc("/time-windows/{rangeId:[0-9]+}", getTimeWindowsH.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations", manageLocationsH.HandleList).Methods(http.MethodGet)

	// Маршруты с аутентификацией по X-User-ID
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.NewAuth(cfg.Admin.IDs))

	protected.HandleFunc("/users", ensureUserH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/orders", createOrderH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/orders/{orderId:[0-9]+}", getOrderH.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{orderId:[0-9]+}/status", updateOrderStatusH.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/orders/{orderId:[0-9]+}/feedback", createFeedbackH.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{telegramId:[0-9]+}/orders", getUserOrdersH.Handle).Methods(http.MethodGet)

	// Административные маршруты
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/time-ranges", createTimeRangeH.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/time-ranges", getTimeRangesH.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/time-ranges/{rangeId:[0-9]+}", deleteTimeRangeH.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/time-ranges/{rangeId:[0-9]+}/toggle", toggleTimeRangeH.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/orders", getOrdersH.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/locations", manageLocationsH.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/locations/{locationId:[0-9]+}", manageLocationsH.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/stats", getStatsH.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
