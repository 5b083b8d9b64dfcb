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

	cancelBookingHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/create_booking"
	createSessionTypeHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/create_session_type"
	createSessionsHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/create_sessions"
	dashboardStatsHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/dashboard_stats"
	deleteSessionHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/delete_session"
	deleteSessionTypeHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/delete_session_type"
	exportBookingsHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/export_bookings"
	getBookingHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/list_bookings"
	listSessionTypesHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/list_session_types"
	listSessionsHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/list_sessions"
	recentBookingsHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/recent_bookings"
	updateSessionHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/update_session"
	updateSessionTypeHandler "github.com/avlnk/StudioBookingService/internal/api/handlers/update_session_type"
	"github.com/avlnk/StudioBookingService/internal/api/middleware"
	"github.com/avlnk/StudioBookingService/internal/config"
	bookingRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/booking"
	sessionRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/session"
	sessionTypeRepo "github.com/avlnk/StudioBookingService/internal/infra/storage/sessiontype"
	"github.com/avlnk/StudioBookingService/internal/integrations/mailer"
	bookingsService "github.com/avlnk/StudioBookingService/internal/service/bookings"
	sessionsService "github.com/avlnk/StudioBookingService/internal/service/sessions"
	sessionTypesService "github.com/avlnk/StudioBookingService/internal/service/sessiontypes"
	statsService "github.com/avlnk/StudioBookingService/internal/service/stats"
	createBookingUC "github.com/avlnk/StudioBookingService/internal/usecase/create_booking"
	exportBookingsUC "github.com/avlnk/StudioBookingService/internal/usecase/export_bookings"
	generateSessionsUC "github.com/avlnk/StudioBookingService/internal/usecase/generate_sessions"
	"github.com/avlnk/StudioBookingService/pkg/dbmetrics"
	"github.com/avlnk/StudioBookingService/pkg/logger"
	"github.com/avlnk/StudioBookingService/pkg/metrics"
	"github.com/avlnk/StudioBookingService/pkg/simpletxmanager"
	"github.com/avlnk/StudioBookingService/pkg/txmanager"
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

	log.Info("Starting StudioBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем SMTP клиент и нотификатор
	mailClient := mailer.NewClient(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)
	notifier := mailer.NewNotifier(mailClient, log)
	log.Info("Mail notifier initialized (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)

	// Инициализируем репозитории (с метриками или без)
	var (
		sessionTypeRepository *sessionTypeRepo.Repository
		sessionRepository     *sessionRepo.Repository
		bookingRepository     *bookingRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		sessionTypeRepository = sessionTypeRepo.NewRepository(wrappedDB)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		sessionTypeRepository = sessionTypeRepo.NewRepository(db)
		sessionRepository = sessionRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	sessionTypesSvc := sessionTypesService.NewService(sessionTypeRepository, sessionRepository, log)
	sessionsSvc := sessionsService.NewService(sessionRepository, sessionTypeRepository, bookingRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, notifier, log)
	statsSvc := statsService.NewService(bookingRepository, sessionRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		sessionRepository,
		sessionTypeRepository,
		bookingRepository,
		txMgr,
		notifier,
		log,
	)
	generateSessionsUseCase := generateSessionsUC.NewUseCase(sessionRepository, sessionTypeRepository, log)
	exportBookingsUseCase := exportBookingsUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	listSessionTypes := listSessionTypesHandler.NewHandler(sessionTypesSvc, log)
	createSessionType := createSessionTypeHandler.NewHandler(sessionTypesSvc, log)
	updateSessionType := updateSessionTypeHandler.NewHandler(sessionTypesSvc, log)
	deleteSessionType := deleteSessionTypeHandler.NewHandler(sessionTypesSvc, log)
	listSessions := listSessionsHandler.NewHandler(sessionsSvc, log)
	createSessions := createSessionsHandler.NewHandler(generateSessionsUseCase, log)
	updateSession := updateSessionHandler.NewHandler(sessionsSvc, log)
	deleteSession := deleteSessionHandler.NewHandler(sessionsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(exportBookingsUseCase, log)
	dashboardStats := dashboardStatsHandler.NewHandler(statsSvc, log)
	recentBookings := recentBookingsHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог активных типов сессий
	api.HandleFunc("/session-types", listSessionTypes.Handle).Methods(http.MethodGet)

	// Расписание активных сессий с доступностью
	api.HandleFunc("/sessions", listSessions.Handle).Methods(http.MethodGet)

	// Создание бронирования клиентом
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Типы сессий ---
	protected.HandleFunc("/session-types", createSessionType.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/session-types/{id}", updateSessionType.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/session-types/{id}", deleteSessionType.Handle).Methods(http.MethodDelete)

	// --- Сессии ---
	protected.HandleFunc("/sessions", createSessions.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{id}", updateSession.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/sessions/{id}", deleteSession.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Панель администратора ---
	protected.HandleFunc("/dashboard/stats", dashboardStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/recent-bookings", recentBookings.Handle).Methods(http.MethodGet)

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
		log.Error("Server shutdown failed: %v", err)
	}

	log.Info("Server stopped")
}
