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

	applyDraftActionHandler "github.com/m04kA/SMC-OfficeBooking/internal/api/handlers/apply_draft_action"
	createBookingHandler "github.com/m04kA/SMC-OfficeBooking/internal/api/handlers/create_booking"
	departmentsHandler "github.com/m04kA/SMC-OfficeBooking/internal/api/handlers/departments"
	employeesHandler "github.com/m04kA/SMC-OfficeBooking/internal/api/handlers/employees"
	getBookingFormHandler "github.com/m04kA/SMC-OfficeBooking/internal/api/handlers/get_booking_form"
	holidaysHandler "github.com/m04kA/SMC-OfficeBooking/internal/api/handlers/holidays"
	lookupsHandler "github.com/m04kA/SMC-OfficeBooking/internal/api/handlers/lookups"
	reportsHandler "github.com/m04kA/SMC-OfficeBooking/internal/api/handlers/reports"
	statusHandler "github.com/m04kA/SMC-OfficeBooking/internal/api/handlers/status"
	updateBookingHandler "github.com/m04kA/SMC-OfficeBooking/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-OfficeBooking/internal/api/middleware"
	"github.com/m04kA/SMC-OfficeBooking/internal/config"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway/postgres"
	"github.com/m04kA/SMC-OfficeBooking/internal/infra/gateway/sample"
	bookingRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/booking"
	departmentRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/department"
	employeeRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/employee"
	holidayRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/holiday"
	referenceRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/reference"
	reportRepo "github.com/m04kA/SMC-OfficeBooking/internal/infra/storage/report"
	"github.com/m04kA/SMC-OfficeBooking/internal/integrations/dataapi"
	departmentsService "github.com/m04kA/SMC-OfficeBooking/internal/service/departments"
	employeesService "github.com/m04kA/SMC-OfficeBooking/internal/service/employees"
	holidaysService "github.com/m04kA/SMC-OfficeBooking/internal/service/holidays"
	lookupService "github.com/m04kA/SMC-OfficeBooking/internal/service/lookup"
	reportsService "github.com/m04kA/SMC-OfficeBooking/internal/service/reports"
	applyDraftActionUC "github.com/m04kA/SMC-OfficeBooking/internal/usecase/apply_draft_action"
	createBookingUC "github.com/m04kA/SMC-OfficeBooking/internal/usecase/create_booking"
	loadBookingFormUC "github.com/m04kA/SMC-OfficeBooking/internal/usecase/load_booking_form"
	updateBookingUC "github.com/m04kA/SMC-OfficeBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-OfficeBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-OfficeBooking/pkg/logger"
	"github.com/m04kA/SMC-OfficeBooking/pkg/metrics"
)

// startupTimeout ограничивает первичную загрузку справочников и отчётов
const startupTimeout = 30 * time.Second

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

	log.Info("Starting SMC-OfficeBooking...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем источник данных
	var backend gateway.Gateway
	kind := cfg.Gateway()

	switch kind {
	case config.GatewayPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s, schema=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, cfg.Database.Schema)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")
			backend = postgres.NewGateway(wrappedDB, cfg.Database.Schema)
		} else {
			backend = postgres.NewGateway(db, cfg.Database.Schema)
		}

	case config.GatewayDataAPI:
		backend = dataapi.NewClient(
			cfg.DataAPI.URL,
			cfg.DataAPI.Key,
			cfg.DataAPI.Schema,
			time.Duration(cfg.DataAPI.Timeout)*time.Second,
			log,
		)
		log.Info("Data API client initialized (url=%s, schema=%s, timeout=%ds)",
			cfg.DataAPI.URL, cfg.DataAPI.Schema, cfg.DataAPI.Timeout)

	default:
		backend = sample.NewGateway(time.Now())
		log.Warn("Data source is not configured, serving sample data; writes are rejected")
	}

	gw := gateway.NewInstrumented(backend, metricsCollector, log)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(gw)
	referenceRepository := referenceRepo.NewRepository(gw)
	departmentRepository := departmentRepo.NewRepository(gw)
	employeeRepository := employeeRepo.NewRepository(gw)
	holidayRepository := holidayRepo.NewRepository(gw)
	reportRepository := reportRepo.NewRepository(gw)

	// Инициализируем сервисы
	lookupSvc := lookupService.NewService(referenceRepository, departmentRepository, employeeRepository, log)
	reportsSvc := reportsService.NewService(
		reportRepository,
		holidayRepository,
		lookupSvc,
		gw,
		metricsCollector,
		&reportsService.RealTimeProvider{},
		log,
		cfg.Reports.HistoryLimit,
	)
	holidaysSvc := holidaysService.NewService(holidayRepository, reportsSvc, gw, log)
	departmentsSvc := departmentsService.NewService(departmentRepository, lookupSvc, gw, log)
	employeesSvc := employeesService.NewService(employeeRepository, lookupSvc, gw, log)

	// Первичная загрузка справочников и отчётов
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	if err := lookupSvc.Load(startupCtx); err != nil {
		log.Error("Failed to load lookups on start, continuing with empty reference data: %v", err)
	}
	if cfg.Reports.RefreshOnStart {
		reportsSvc.LoadAll(startupCtx)
	}
	cancelStartup()

	// Инициализируем use cases
	applyDraftActionUseCase := applyDraftActionUC.NewUseCase(lookupSvc, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		lookupSvc,
		reportsSvc,
		gw,
		metricsCollector,
		log,
	)
	loadBookingFormUseCase := loadBookingFormUC.NewUseCase(bookingRepository, reportsSvc, lookupSvc, gw, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(bookingRepository, reportsSvc, gw, log)

	// Инициализируем handlers
	applyDraftAction := applyDraftActionHandler.NewHandler(applyDraftActionUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookingForm := getBookingFormHandler.NewHandler(loadBookingFormUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	reports := reportsHandler.NewHandler(reportsSvc, log)
	holidays := holidaysHandler.NewHandler(holidaysSvc, log)
	departments := departmentsHandler.NewHandler(departmentsSvc, log)
	employees := employeesHandler.NewHandler(employeesSvc, log)
	lookups := lookupsHandler.NewHandler(lookupSvc, log)
	status := statusHandler.NewHandler(gw, string(kind))

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/status", status.Handle).Methods(http.MethodGet)

	// --- Справочники ---
	api.HandleFunc("/lookups", lookups.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/lookups/reload", lookups.HandleReload).Methods(http.MethodPost)

	// --- Черновик и бронирования ---
	api.HandleFunc("/booking-draft/actions", applyDraftAction.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/form", getBookingForm.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// --- Отчёты ---
	api.HandleFunc("/reports/{report}", reports.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/reports/{report}/reload", reports.HandleReload).Methods(http.MethodPost)
	api.HandleFunc("/reports/{report}/export", reports.HandleExport).Methods(http.MethodGet)

	// --- Праздники ---
	api.HandleFunc("/holidays", holidays.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/holidays", holidays.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/holidays/{holidayId}", holidays.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/holidays/{holidayId}", holidays.HandleDelete).Methods(http.MethodDelete)

	// --- Отделы ---
	api.HandleFunc("/departments", departments.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/departments", departments.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/departments/{departmentId}", departments.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/departments/{departmentId}", departments.HandleDelete).Methods(http.MethodDelete)

	// --- Сотрудники ---
	api.HandleFunc("/employees", employees.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/employees", employees.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/employees/{userId}", employees.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/employees/{userId}", employees.HandleDelete).Methods(http.MethodDelete)

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
		log.Info("Starting server on %s (gateway=%s)", addr, kind)
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
