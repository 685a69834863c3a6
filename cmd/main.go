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
	"github.com/redis/go-redis/v9"

	adminLoginHandler "massageshop/internal/api/handlers/admin_login"
	createBookingHandler "massageshop/internal/api/handlers/create_booking"
	getAdminBookingsHandler "massageshop/internal/api/handlers/get_admin_bookings"
	getTimelineHandler "massageshop/internal/api/handlers/get_timeline"
	listServicesHandler "massageshop/internal/api/handlers/list_services"
	"massageshop/internal/api/middleware"
	"massageshop/internal/config"
	"massageshop/internal/infra/cache"
	"massageshop/internal/infra/session"
	bookingRepo "massageshop/internal/infra/storage/booking"
	serviceRepo "massageshop/internal/infra/storage/service"
	authService "massageshop/internal/service/auth"
	bookingsService "massageshop/internal/service/bookings"
	catalogService "massageshop/internal/service/catalog"
	"massageshop/internal/timeline"
	createBookingUC "massageshop/internal/usecase/create_booking"
	getTimelineUC "massageshop/internal/usecase/get_timeline"
	"massageshop/pkg/dbmetrics"
	"massageshop/pkg/logger"
	"massageshop/pkg/metrics"
	"massageshop/pkg/simpletxmanager"
	"massageshop/pkg/txmanager"
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

	log.Info("Starting massageshop backend...")
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

	// Инициализируем Redis: сессии администратора и кэш каталога услуг.
	// Без Redis сессии живут в памяти процесса, кэш выключен.
	var (
		sessionStore  authService.SessionStore
		servicesCache catalogService.ServicesCache
	)

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		sessionStore = session.NewRedisStore(redisClient)
		servicesCache = cache.NewRedisCache(redisClient, cache.DefaultServicesTTL)
		log.Info("Connected to redis at %s", cfg.Redis.Addr)
	} else {
		sessionStore = session.NewMemoryStore()
		servicesCache = cache.NewNoopCache()
		log.Info("Redis disabled, using in-memory sessions without services cache")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		serviceRepository *serviceRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Параметры сетки таймлайна из конфигурации
	gridParams := timeline.GridParams{
		StartHour:           cfg.Timeline.StartHour,
		EndHour:             cfg.Timeline.EndHour,
		SlotIntervalMinutes: cfg.Timeline.SlotIntervalMinutes,
	}
	log.Info("Timeline grid: %02d:00-%02d:00, %d-minute slots (%d per day)",
		gridParams.StartHour, gridParams.EndHour, gridParams.SlotIntervalMinutes, gridParams.SlotCount())

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(serviceRepository, servicesCache, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	authSvc := authService.NewService(
		cfg.Admin.Password,
		time.Duration(cfg.Admin.SessionTTLMinutes)*time.Minute,
		sessionStore,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		txMgr,
		log,
	)
	getTimelineUseCase := getTimelineUC.NewUseCase(bookingRepository, gridParams, log)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingsSvc, log)
	getTimeline := getTimelineHandler.NewHandler(getTimelineUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Вход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен живой сессии)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.SessionAuth(authSvc, log))

	// Список бронирований с фильтром по дате
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)

	// Таймлайн дня: сетка слотов, дорожки, свободные окна
	admin.HandleFunc("/timeline", getTimeline.Handle).Methods(http.MethodGet)

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
