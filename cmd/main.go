package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addToCartHandler "github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers/add_to_cart"
	clearCartHandler "github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers/clear_cart"
	createSessionHandler "github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers/create_session"
	getCartHandler "github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers/get_cart"
	getScheduleHandler "github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers/get_schedule"
	removeCartItemHandler "github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers/remove_cart_item"
	resetSelectionHandler "github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers/reset_selection"
	submitOrderHandler "github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers/submit_order"
	updateSelectionHandler "github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers/update_selection"
	"github.com/octadev42/Medgospel-SchedulingService/internal/api/middleware"
	"github.com/octadev42/Medgospel-SchedulingService/internal/config"
	"github.com/octadev42/Medgospel-SchedulingService/internal/infra/cache"
	sessionRepo "github.com/octadev42/Medgospel-SchedulingService/internal/infra/storage/session"
	cartServiceClient "github.com/octadev42/Medgospel-SchedulingService/internal/integrations/cartservice"
	priceTableClient "github.com/octadev42/Medgospel-SchedulingService/internal/integrations/pricetable"
	cartService "github.com/octadev42/Medgospel-SchedulingService/internal/service/cart"
	addToCartUC "github.com/octadev42/Medgospel-SchedulingService/internal/usecase/add_to_cart"
	getScheduleUC "github.com/octadev42/Medgospel-SchedulingService/internal/usecase/get_schedule"
	"github.com/octadev42/Medgospel-SchedulingService/pkg/logger"
	"github.com/octadev42/Medgospel-SchedulingService/pkg/metrics"
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

	log.Info("Starting Medgospel-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var integrationCalls *prometheus.CounterVec
	var cacheLookups *prometheus.CounterVec

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		integrationCalls = metricsCollector.IntegrationRequestsTotal
		cacheLookups = metricsCollector.ScheduleCacheLookupsTotal
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	priceClient := priceTableClient.NewClient(
		cfg.PriceTableService.URL,
		time.Duration(cfg.PriceTableService.Timeout)*time.Second,
		log,
		integrationCalls,
	)
	cartClient := cartServiceClient.NewClient(
		cfg.CartService.URL,
		time.Duration(cfg.CartService.Timeout)*time.Second,
		log,
		integrationCalls,
	)
	log.Info("Integration clients initialized (PriceTableService=%s timeout=%ds, CartService=%s timeout=%ds)",
		cfg.PriceTableService.URL, cfg.PriceTableService.Timeout, cfg.CartService.URL, cfg.CartService.Timeout)

	// Инициализируем хранилище сессий и уборщик истекших сессий
	sessionTTL := time.Duration(cfg.Sessions.TTLMinutes) * time.Minute
	sessionRepository := sessionRepo.NewRepository(sessionTTL, log)

	stopJanitorCh := make(chan struct{})
	sessionRepository.StartJanitor(
		time.Duration(cfg.Sessions.CleanupIntervalSeconds)*time.Second,
		stopJanitorCh,
	)
	log.Info("Session store initialized (ttl=%dm, cleanup every %ds)",
		cfg.Sessions.TTLMinutes, cfg.Sessions.CleanupIntervalSeconds)

	// Инициализируем кэш расписаний (если включен)
	var scheduleCache getScheduleUC.ScheduleCache
	if cfg.Cache.Enabled {
		c, err := cache.NewScheduleCache(
			cfg.Cache.Size,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			cacheLookups,
		)
		if err != nil {
			log.Fatal("Failed to initialize schedule cache: %v", err)
		}
		scheduleCache = c
		log.Info("Schedule cache enabled (size=%d, ttl=%ds)", cfg.Cache.Size, cfg.Cache.TTLSeconds)
	}

	// Инициализируем сервисы
	cartSvc := cartService.NewService(
		sessionRepository,
		cartClient,
		log,
	)

	// Инициализируем use cases
	getScheduleUseCase := getScheduleUC.NewUseCase(
		priceClient,
		scheduleCache,
		log,
	)
	addToCartUseCase := addToCartUC.NewUseCase(
		sessionRepository,
		cartClient,
		log,
	)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	createSession := createSessionHandler.NewHandler(cartSvc, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	updateSelection := updateSelectionHandler.NewHandler(cartSvc, log)
	resetSelection := resetSelectionHandler.NewHandler(cartSvc, log)
	addToCart := addToCartHandler.NewHandler(addToCartUseCase, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	clearCart := clearCartHandler.NewHandler(cartSvc, log)
	submitOrder := submitOrderHandler.NewHandler(cartSvc, log)

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

	// Расписание учреждения по дням
	api.HandleFunc("/establishments/{establishmentId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сессии бронирования ---
	// Создание сессии
	protected.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Состояние выбора и корзины
	protected.HandleFunc("/sessions/{sessionId}/cart", getCart.Handle).Methods(http.MethodGet)

	// Частичное обновление выбора
	protected.HandleFunc("/sessions/{sessionId}/selection", updateSelection.Handle).Methods(http.MethodPut)

	// Сброс выбора (пациент сохраняется)
	protected.HandleFunc("/sessions/{sessionId}/selection/reset", resetSelection.Handle).Methods(http.MethodPost)

	// --- Корзина ---
	// Добавление выбранного слота в удаленную корзину
	protected.HandleFunc("/sessions/{sessionId}/cart", addToCart.Handle).Methods(http.MethodPost)

	// Удаление позиции корзины по индексу
	protected.HandleFunc("/sessions/{sessionId}/cart/items/{index}", removeCartItem.Handle).Methods(http.MethodDelete)

	// Очистка корзины
	protected.HandleFunc("/sessions/{sessionId}/cart", clearCart.Handle).Methods(http.MethodDelete)

	// --- Заказы ---
	// Оформление заказа из накопленных позиций
	protected.HandleFunc("/sessions/{sessionId}/orders", submitOrder.Handle).Methods(http.MethodPost)

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

	// Останавливаем уборщик сессий
	close(stopJanitorCh)
	log.Info("Session janitor stopped")

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
