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

	extendReservationHandler "github.com/revivatech/RT-AvailabilityService/internal/api/handlers/extend_reservation"
	getAvailabilityHandler "github.com/revivatech/RT-AvailabilityService/internal/api/handlers/get_availability"
	getRepairTypesHandler "github.com/revivatech/RT-AvailabilityService/internal/api/handlers/get_repair_types"
	releaseReservationHandler "github.com/revivatech/RT-AvailabilityService/internal/api/handlers/release_reservation"
	reserveSlotHandler "github.com/revivatech/RT-AvailabilityService/internal/api/handlers/reserve_slot"
	"github.com/revivatech/RT-AvailabilityService/internal/api/middleware"
	"github.com/revivatech/RT-AvailabilityService/internal/catalog"
	"github.com/revivatech/RT-AvailabilityService/internal/config"
	"github.com/revivatech/RT-AvailabilityService/internal/holidays"
	reservationStore "github.com/revivatech/RT-AvailabilityService/internal/infra/reservations"
	bookingsRepo "github.com/revivatech/RT-AvailabilityService/internal/infra/storage/bookings"
	"github.com/revivatech/RT-AvailabilityService/internal/schedule"
	pricingService "github.com/revivatech/RT-AvailabilityService/internal/service/pricing"
	reservationsService "github.com/revivatech/RT-AvailabilityService/internal/service/reservations"
	rulesService "github.com/revivatech/RT-AvailabilityService/internal/service/rules"
	getAvailabilityUC "github.com/revivatech/RT-AvailabilityService/internal/usecase/get_availability"
	reserveSlotUC "github.com/revivatech/RT-AvailabilityService/internal/usecase/reserve_slot"
	"github.com/revivatech/RT-AvailabilityService/pkg/dbmetrics"
	"github.com/revivatech/RT-AvailabilityService/pkg/logger"
	"github.com/revivatech/RT-AvailabilityService/pkg/metrics"
	"github.com/revivatech/RT-AvailabilityService/pkg/ratelimit"
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

	log.Info("Starting RT-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к БД подсистемы бронирования (только чтение счётчиков)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий бронирований (с метриками или без)
	var bookingsRepository *bookingsRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		bookingsRepository = bookingsRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		bookingsRepository = bookingsRepo.NewRepository(db)
	}

	// Справочники и расписание из конфигурации
	repairTypes := catalog.New(cfg.Catalog)
	holidayTable := holidays.NewTable(cfg.Holidays)

	scheduleGen, err := schedule.NewGenerator(cfg.Hours)
	if err != nil {
		log.Fatal("Failed to build schedule generator: %v", err)
	}

	// Хранилище резерваций - единственное изменяемое состояние сервиса
	store := reservationStore.NewStore()

	// Фоновый экспорт числа живых резерваций в метрики
	if cfg.Metrics.Enabled {
		go func() {
			ticker := time.NewTicker(30 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-stopMetricsCh:
					return
				case <-ticker.C:
					metricsCollector.SetActiveReservations(store.Len())
				}
			}
		}()
	}

	// Инициализируем сервисы
	pricingCfg, err := pricingService.NewConfig(cfg.Pricing)
	if err != nil {
		log.Fatal("Failed to build pricing config: %v", err)
	}
	pricingSvc := pricingService.NewService(pricingCfg, holidayTable)

	rulesSvc := rulesService.NewService(rulesService.Config{
		MinimumNoticeHours: cfg.Booking.MinimumNoticeHours,
		AdvanceBookingDays: cfg.Booking.AdvanceBookingDays,
		DailyCaps:          cfg.Booking.DailyCaps,
	}, holidayTable, store)

	reservationSvc := reservationsService.NewService(store, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		scheduleGen,
		bookingsRepository,
		pricingSvc,
		rulesSvc,
		store,
		repairTypes,
		holidayTable,
		log,
	)

	reserveSlotUseCase := reserveSlotUC.NewUseCase(
		store,
		scheduleGen,
		bookingsRepository,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	reserveSlot := reserveSlotHandler.NewHandler(reserveSlotUseCase, log)
	extendReservation := extendReservationHandler.NewHandler(reservationSvc, log)
	releaseReservation := releaseReservationHandler.NewHandler(reservationSvc, log)
	getRepairTypes := getRepairTypesHandler.NewHandler(repairTypes, log)

	// Rate limiters: чтение доступности лимитируется жёстче, чем справочник
	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	availabilityLimiter := ratelimit.New(cfg.RateLimit.AvailabilityPerMinute, window)
	searchLimiter := ratelimit.New(cfg.RateLimit.SearchPerMinute, window)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/availability").Subrouter()

	// Чтение доступности - лимитируется по IP клиента
	api.Handle("/slots",
		middleware.RateLimit(availabilityLimiter, metricsCollector, log)(
			http.HandlerFunc(getAvailability.Handle))).Methods(http.MethodGet)

	// Жизненный цикл резервации
	api.HandleFunc("/slots", reserveSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots", extendReservation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/slots", releaseReservation.Handle).Methods(http.MethodDelete)

	// Справочник типов ремонта
	api.Handle("/repair-types",
		middleware.RateLimit(searchLimiter, metricsCollector, log)(
			http.HandlerFunc(getRepairTypes.Handle))).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
