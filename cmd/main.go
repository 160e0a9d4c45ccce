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

	adminLoginHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/admin_login"
	createAppointmentHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/create_appointment"
	createBlockHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/create_block"
	createWindowHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/create_window"
	deleteAppointmentHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/delete_appointment"
	deleteBlockHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/delete_block"
	deleteWindowHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/delete_window"
	getAppointmentHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_appointments"
	getAvailabilityHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_availability"
	getBlocksHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_blocks"
	getProfileHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_profile"
	getServicesHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_services"
	getUserAppointmentsHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_user_appointments"
	getWindowsHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_windows"
	loginHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/login"
	signupHandler "github.com/m04kA/BarberBookingService/internal/api/handlers/signup"
	"github.com/m04kA/BarberBookingService/internal/api/middleware"
	"github.com/m04kA/BarberBookingService/internal/config"
	appointmentRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/appointment"
	blockRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/block"
	serviceRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/service"
	userRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/user"
	windowRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/window"
	sendgridClient "github.com/m04kA/BarberBookingService/internal/integrations/sendgrid"
	appointmentsService "github.com/m04kA/BarberBookingService/internal/service/appointments"
	authService "github.com/m04kA/BarberBookingService/internal/service/auth"
	catalogService "github.com/m04kA/BarberBookingService/internal/service/catalog"
	scheduleService "github.com/m04kA/BarberBookingService/internal/service/schedule"
	createAppointmentUC "github.com/m04kA/BarberBookingService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/m04kA/BarberBookingService/internal/usecase/get_availability"
	"github.com/m04kA/BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/BarberBookingService/pkg/logger"
	"github.com/m04kA/BarberBookingService/pkg/metrics"
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

	log.Info("Starting BarberBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс барбершопа - единственная таймзона всех расчетов расписания
	location, err := time.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		log.Fatal("Failed to load business timezone %s: %v", cfg.Business.Timezone, err)
	}
	log.Info("Business timezone: %s, slot step: %d min", cfg.Business.Timezone, cfg.Business.SlotStepMinutes)

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

	// Инициализируем репозитории (с метриками или без)
	var dbExecutor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		dbExecutor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	serviceRepository := serviceRepo.NewRepository(dbExecutor)
	windowRepository := windowRepo.NewRepository(dbExecutor)
	blockRepository := blockRepo.NewRepository(dbExecutor)
	appointmentRepository := appointmentRepo.NewRepository(dbExecutor)
	userRepository := userRepo.NewRepository(dbExecutor)

	// Инициализируем клиент уведомлений (best-effort, может быть отключен)
	var notifier createAppointmentUC.NotificationClient
	if cfg.SendGrid.Enabled() {
		notifier = sendgridClient.NewClient(
			cfg.SendGrid.APIKey,
			cfg.SendGrid.FromEmail,
			cfg.SendGrid.FromName,
			cfg.SendGrid.OwnerEmail,
			location,
			log,
		)
		log.Info("Owner email notifications enabled (to=%s)", cfg.SendGrid.OwnerEmail)
	} else {
		log.Info("Owner email notifications disabled")
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTL(),
		cfg.Auth.AdminEmail,
		cfg.Auth.AdminPasswordHash,
		log,
	)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	scheduleSvc := scheduleService.NewService(windowRepository, blockRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		serviceRepository,
		windowRepository,
		blockRepository,
		appointmentRepository,
		getAvailabilityUC.Policy{
			Location:         location,
			SlotStepMinutes:  cfg.Business.SlotStepMinutes,
			FallbackStartMin: cfg.Business.FallbackStartMin,
			FallbackEndMin:   cfg.Business.FallbackEndMin,
		},
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		serviceRepository,
		appointmentRepository,
		notifier,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	signup := signupHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	getProfile := getProfileHandler.NewHandler(authSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	createWindow := createWindowHandler.NewHandler(scheduleSvc, log)
	getWindows := getWindowsHandler.NewHandler(scheduleSvc, log)
	deleteWindow := deleteWindowHandler.NewHandler(scheduleSvc, log)
	createBlock := createBlockHandler.NewHandler(scheduleSvc, log)
	getBlocks := getBlocksHandler.NewHandler(scheduleSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(scheduleSvc, log)

	authMw := middleware.NewAuthMiddleware(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Регистрация и вход
	api.HandleFunc("/auth/signup", signup.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// Создание бронирования: токен необязателен, возможно гостевое бронирование
	api.Handle("/appointments",
		authMw.Optional(http.HandlerFunc(createAppointment.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют токен администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMw.RequireAdmin)

	// --- Бронирования ---
	admin.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Еженедельные окна доступности ---
	admin.HandleFunc("/windows", createWindow.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/windows", getWindows.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/windows/{windowId}", deleteWindow.Handle).Methods(http.MethodDelete)

	// --- Разовые блокировки расписания ---
	admin.HandleFunc("/blocks", createBlock.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocks", getBlocks.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

	// ============================================================
	// CUSTOMER ROUTES (требуют клиентский токен)
	// ============================================================

	customer := api.PathPrefix("").Subrouter()
	customer.Use(authMw.RequireCustomer)

	customer.HandleFunc("/auth/me", getProfile.Handle).Methods(http.MethodGet)
	customer.HandleFunc("/users/me/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)

	// CORS оборачивает весь роутер: preflight OPTIONS не матчится ни на один
	// зарегистрированный метод, поэтому на уровне mux middleware не сработает
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS.AllowedOrigins)(r),
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
