package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	calculatePriceHandler "github.com/zarechye/booking-engine/internal/api/handlers/calculate_price"
	checkAvailabilityHandler "github.com/zarechye/booking-engine/internal/api/handlers/check_availability"
	createBookingHandler "github.com/zarechye/booking-engine/internal/api/handlers/create_booking"
	getRoomsInfoHandler "github.com/zarechye/booking-engine/internal/api/handlers/get_rooms_info"
	"github.com/zarechye/booking-engine/internal/api/middleware"
	"github.com/zarechye/booking-engine/internal/catalog"
	"github.com/zarechye/booking-engine/internal/config"
	crmClient "github.com/zarechye/booking-engine/internal/integrations/crm"
	calculatePriceUC "github.com/zarechye/booking-engine/internal/usecase/calculate_price"
	checkAvailabilityUC "github.com/zarechye/booking-engine/internal/usecase/check_availability"
	createBookingUC "github.com/zarechye/booking-engine/internal/usecase/create_booking"
	getRoomsInfoUC "github.com/zarechye/booking-engine/internal/usecase/get_rooms_info"
	"github.com/zarechye/booking-engine/pkg/aescipher"
	"github.com/zarechye/booking-engine/pkg/logger"
	"github.com/zarechye/booking-engine/pkg/metrics"
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

	log.Info("Starting booking-engine...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Собираем тарифный каталог из конфигурации
	roomCatalog, err := catalog.New(cfg.RoomTypes())
	if err != nil {
		log.Fatal("Failed to build room catalog: %v", err)
	}
	log.Info("Room catalog loaded: %d room types", len(roomCatalog.Codes()))

	// Расшифровываем адрес REST API CRM. Сам адрес в логи не пишем:
	// он содержит секретный токен вебхука.
	crmURL, err := aescipher.Decrypt(cfg.CRM.EncryptedURL, cfg.CRM.Secrets.Key, cfg.CRM.Secrets.IV)
	if err != nil {
		log.Fatal("Failed to decrypt CRM URL: %v", err)
	}

	// Инициализируем клиента CRM (с метриками или без)
	var crmMetrics crmClient.MetricsRecorder
	if cfg.Metrics.Enabled {
		crmMetrics = metricsCollector
	}
	crm := crmClient.NewClient(
		crmURL,
		time.Duration(cfg.CRM.Timeout)*time.Second,
		crmClient.Fields{
			StayFrom: cfg.CRM.StayFromField,
			StayTo:   cfg.CRM.StayToField,
		},
		roomCatalog.Codes(),
		log,
		crmMetrics,
	)
	log.Info("CRM client initialized (timeout=%ds)", cfg.CRM.Timeout)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(crm, crm, roomCatalog, log)
	calculatePriceUseCase := calculatePriceUC.NewUseCase(crm, roomCatalog, log)
	getRoomsInfoUseCase := getRoomsInfoUC.NewUseCase(crm, crm, roomCatalog, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		checkAvailabilityUseCase,
		calculatePriceUseCase,
		crm,
		crm,
		roomCatalog,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	getRoomsInfo := getRoomsInfoHandler.NewHandler(getRoomsInfoUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Проверка доступности категории на период проживания
	api.HandleFunc("/room-types/{roomTypeCode}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Расчет стоимости проживания
	api.HandleFunc("/room-types/{roomTypeCode}/price", calculatePrice.Handle).Methods(http.MethodGet)

	// Календарь занятости номеров категории за месяц
	api.HandleFunc("/room-types/{roomTypeCode}/rooms", getRoomsInfo.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Статика сайта бронирования
	if cfg.Server.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Server.StaticDir)))
		log.Info("Serving static files from %s", cfg.Server.StaticDir)
	}

	// CORS для виджета бронирования на сайте гостевого дома
	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(origins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
