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

	addWindowHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/add_window"
	cancelBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_booking"
	deleteWindowHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_window"
	generateRecurringHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/generate_recurring"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_booking"
	getLessonBookingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_lesson_bookings"
	getLessonSettingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_lesson_settings"
	getUserBookingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_user_bookings"
	listWindowsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_windows"
	pickSlotHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/pick_slot"
	updateBookingStatusHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_booking_status"
	updateLessonSettingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_lesson_settings"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	windowRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/window"
	lessonServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
	bookingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	settingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/settings"
	windowsService "github.com/m04kA/SMC-AvailabilityService/internal/service/windows"
	addWindowUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/add_window"
	createBookingUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	generateRecurringUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/generate_recurring"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	pickSlotUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/pick_slot"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

const poolStatsInterval = 15 * time.Second

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены).
	// При выключенных метриках collector остаётся nil, его методы ничего не делают.
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

	wrappedDB := dbmetrics.Wrap(db, metricsCollector, "primary")
	wrappedDB.StartPoolStats(poolStatsInterval, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем интеграционных клиентов
	lessonClient := lessonServiceClient.NewClient(
		cfg.LessonService.URL,
		time.Duration(cfg.LessonService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (LessonService=%s timeout=%ds)",
		cfg.LessonService.URL, cfg.LessonService.Timeout)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	windowRepository := windowRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)

	limits := cfg.Engine.Limits()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, lessonClient, log)
	settingsSvc := settingsService.NewService(settingsRepository, lessonClient, limits, log)
	windowsSvc := windowsService.NewService(windowRepository, bookingRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		windowRepository,
		settingsRepository,
		lessonClient,
		txMgr,
		metricsCollector,
		limits,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		windowRepository,
		bookingRepository,
		settingsRepository,
		lessonClient,
		metricsCollector,
		limits,
		log,
	)
	pickSlotUseCase := pickSlotUC.NewUseCase(
		windowRepository,
		bookingRepository,
		settingsRepository,
		lessonClient,
		metricsCollector,
		limits,
		log,
	)
	addWindowUseCase := addWindowUC.NewUseCase(windowRepository, lessonClient, txMgr, log)
	generateRecurringUseCase := generateRecurringUC.NewUseCase(windowRepository, lessonClient, txMgr, limits, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	pickSlot := pickSlotHandler.NewHandler(pickSlotUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getLessonBookings := getLessonBookingsHandler.NewHandler(bookingSvc, log)
	listWindows := listWindowsHandler.NewHandler(windowsSvc, log)
	addWindow := addWindowHandler.NewHandler(addWindowUseCase, log)
	deleteWindow := deleteWindowHandler.NewHandler(windowsSvc, log)
	generateRecurring := generateRecurringHandler.NewHandler(generateRecurringUseCase, log)
	getLessonSettings := getLessonSettingsHandler.NewHandler(settingsSvc, log)
	updateLessonSettings := updateLessonSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Окна доступности (для менторов) ---
	api.HandleFunc("/lessons/{lessonId}/windows", listWindows.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lessons/{lessonId}/windows", addWindow.Handle).Methods(http.MethodPost)
	api.HandleFunc("/lessons/{lessonId}/windows/recurring", generateRecurring.Handle).Methods(http.MethodPost)
	api.HandleFunc("/lessons/{lessonId}/windows/{windowId}", deleteWindow.Handle).Methods(http.MethodDelete)

	// --- Настройки слотов занятия ---
	api.HandleFunc("/lessons/{lessonId}/settings", getLessonSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lessons/{lessonId}/settings", updateLessonSettings.Handle).Methods(http.MethodPut)

	// --- Слоты ---
	api.HandleFunc("/lessons/{lessonId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lessons/{lessonId}/pick", pickSlot.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/lessons/{lessonId}/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/lessons/{lessonId}/bookings", getLessonBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор статистики пула
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
