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
	"github.com/rs/cors"

	checkAvailabilityHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/check_availability"
	checkDocumentHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/check_document"
	deleteGuestHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/delete_guest"
	exportGuestsHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/export_guests"
	getCurrentUserHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/get_current_user"
	getDailyOccupancyHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/get_daily_occupancy"
	getDashboardChartsHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/get_dashboard_charts"
	getDashboardGuestsHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/get_dashboard_guests"
	getDashboardStatsHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/get_dashboard_stats"
	getGuestHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/get_guest"
	getPeriodOccupancyHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/get_period_occupancy"
	healthHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/health"
	listGuestsHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/list_guests"
	listUnitsHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/list_units"
	registerGuestHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/register_guest"
	signInHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/sign_out"
	signUpHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/sign_up"
	updateGuestHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/update_guest"
	updateGuestStatusHandler "github.com/m04kA/SMC-FrontDeskService/internal/api/handlers/update_guest_status"
	"github.com/m04kA/SMC-FrontDeskService/internal/api/middleware"
	"github.com/m04kA/SMC-FrontDeskService/internal/config"
	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	guestRepo "github.com/m04kA/SMC-FrontDeskService/internal/infra/storage/guest"
	sessionStore "github.com/m04kA/SMC-FrontDeskService/internal/infra/storage/session"
	identityClient "github.com/m04kA/SMC-FrontDeskService/internal/integrations/identity"
	authService "github.com/m04kA/SMC-FrontDeskService/internal/service/auth"
	availabilityService "github.com/m04kA/SMC-FrontDeskService/internal/service/availability"
	dashboardService "github.com/m04kA/SMC-FrontDeskService/internal/service/dashboard"
	guestsService "github.com/m04kA/SMC-FrontDeskService/internal/service/guests"
	getDailyOccupancyUC "github.com/m04kA/SMC-FrontDeskService/internal/usecase/get_daily_occupancy"
	getPeriodOccupancyUC "github.com/m04kA/SMC-FrontDeskService/internal/usecase/get_period_occupancy"
	registerGuestUC "github.com/m04kA/SMC-FrontDeskService/internal/usecase/register_guest"
	updateGuestUC "github.com/m04kA/SMC-FrontDeskService/internal/usecase/update_guest"
	"github.com/m04kA/SMC-FrontDeskService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FrontDeskService/pkg/logger"
	"github.com/m04kA/SMC-FrontDeskService/pkg/metrics"
	"github.com/m04kA/SMC-FrontDeskService/pkg/txmanager"
	"github.com/m04kA/SMC-FrontDeskService/pkg/validation"
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

	log.Info("Starting SMC-FrontDeskService...")
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозиторий и менеджер транзакций (с метриками или без)
	var (
		guestRepository *guestRepo.Repository
		txMgr           *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		guestRepository = guestRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		guestRepository = guestRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(dbmetrics.SqlDBWrapper{DB: db})
	}

	healthChecks := map[string]healthHandler.PingFunc{"database": db.PingContext}

	// Хранилище отозванных токенов
	var revocationStore authService.RevocationStore
	if cfg.Redis.Enabled {
		redisStore := sessionStore.NewRedisStore(
			sessionStore.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB),
		)
		defer redisStore.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisStore.Ping(pingCtx)
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}

		revocationStore = redisStore
		healthChecks["redis"] = redisStore.Ping
		log.Info("Session revocation store: redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	} else {
		revocationStore = sessionStore.NewMemoryStore()
		log.Warn("Session revocation store: in-memory, revoked tokens are lost on restart")
	}

	// Интеграция с провайдером аутентификации
	identity := identityClient.NewClient(
		cfg.Identity.URL,
		cfg.Identity.APIKey,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	log.Info("Identity client initialized (url=%s, timeout=%ds)", cfg.Identity.URL, cfg.Identity.Timeout)

	// Номера и правило выезда
	loc, err := cfg.Occupancy.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Occupancy.Timezone, err)
	}
	inventory := domain.NewInventory(cfg.Inventory.Rooms, cfg.Inventory.Apartments)
	cutoff := getDailyOccupancyUC.NewHousekeepingCutoff(cfg.Occupancy.CutoffHour, loc)
	validator := validation.New()

	log.Info("Inventory loaded: rooms=%d, apartments=%d, cutoff=%02d:00 %s",
		len(cfg.Inventory.Rooms), len(cfg.Inventory.Apartments), cfg.Occupancy.CutoffHour, cfg.Occupancy.Timezone)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(guestRepository, log)
	guestsSvc := guestsService.NewService(guestRepository, availabilitySvc, txMgr, log)
	dashboardSvc := dashboardService.NewService(guestRepository, txMgr, cutoff, log)
	authSvc := authService.NewService(
		identity,
		revocationStore,
		cfg.Session.Secret,
		cfg.Session.Issuer,
		cfg.Session.TTL(),
		log,
	)

	// Инициализируем use cases
	registerGuestUseCase := registerGuestUC.NewUseCase(
		guestRepository,
		availabilitySvc,
		inventory,
		validator,
		txMgr,
		metricsCollector,
		log,
	)
	updateGuestUseCase := updateGuestUC.NewUseCase(
		guestRepository,
		availabilitySvc,
		inventory,
		validator,
		txMgr,
		metricsCollector,
		log,
	)
	getDailyOccupancyUseCase := getDailyOccupancyUC.NewUseCase(
		guestRepository,
		inventory,
		cutoff,
		metricsCollector,
		log,
	)
	getPeriodOccupancyUseCase := getPeriodOccupancyUC.NewUseCase(guestRepository, inventory, log)

	// Инициализируем handlers
	signIn := signInHandler.NewHandler(authSvc, log)
	signUp := signUpHandler.NewHandler(authSvc, log)
	signOut := signOutHandler.NewHandler(authSvc, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(log)
	health := healthHandler.NewHandler(healthChecks, log)

	listUnits := listUnitsHandler.NewHandler(inventory, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, inventory, log)
	checkDocument := checkDocumentHandler.NewHandler(availabilitySvc, log)

	registerGuest := registerGuestHandler.NewHandler(registerGuestUseCase, log)
	updateGuest := updateGuestHandler.NewHandler(updateGuestUseCase, log)
	getGuest := getGuestHandler.NewHandler(guestsSvc, log)
	listGuests := listGuestsHandler.NewHandler(guestsSvc, log)
	exportGuests := exportGuestsHandler.NewHandler(guestsSvc, log)
	updateGuestStatus := updateGuestStatusHandler.NewHandler(guestsSvc, log)
	deleteGuest := deleteGuestHandler.NewHandler(guestsSvc, log)

	getDailyOccupancy := getDailyOccupancyHandler.NewHandler(getDailyOccupancyUseCase, log)
	getPeriodOccupancy := getPeriodOccupancyHandler.NewHandler(getPeriodOccupancyUseCase, log)

	getDashboardStats := getDashboardStatsHandler.NewHandler(dashboardSvc, log)
	getDashboardGuests := getDashboardGuestsHandler.NewHandler(dashboardSvc, log)
	getDashboardCharts := getDashboardChartsHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/sign-in", signIn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/sign-up", signUp.Handle).Methods(http.MethodPost)
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	// --- Сессия ---
	protected.HandleFunc("/auth/sign-out", signOut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", getCurrentUser.Handle).Methods(http.MethodGet)

	// --- Номера ---
	protected.HandleFunc("/units", listUnits.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/units/{unitId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Гости ---
	// Статические пути регистрируются раньше /guests/{guestId}
	protected.HandleFunc("/guests/document-check", checkDocument.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/guests/export", exportGuests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/guests", registerGuest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/guests", listGuests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/guests/{guestId}", getGuest.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/guests/{guestId}", updateGuest.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/guests/{guestId}/status", updateGuestStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/guests/{guestId}", deleteGuest.Handle).Methods(http.MethodDelete)

	// --- Занятость и панель ---
	protected.HandleFunc("/occupancy", getDailyOccupancy.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/occupancy/period", getPeriodOccupancy.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/guests", getDashboardGuests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/charts", getDashboardCharts.Handle).Methods(http.MethodGet)

	// CORS для веб-интерфейса стойки
	co := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      co.Handler(r),
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
