package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/suchimauz/common-availability-slots-generator/internal/adapters/in/http"
	"github.com/suchimauz/common-availability-slots-generator/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/common-availability-slots-generator/internal/adapters/out/logger"
	"github.com/suchimauz/common-availability-slots-generator/internal/adapters/out/postgres"
	"github.com/suchimauz/common-availability-slots-generator/internal/adapters/out/timezone"
	"github.com/suchimauz/common-availability-slots-generator/internal/config"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/ports/out"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/services/availability_service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера: локально - цветная консоль, иначе - json
	var mainLogger out.LoggerPort
	if cfg.IsLocal() {
		consoleLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
		if err != nil {
			fmt.Printf("Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		mainLogger = consoleLogger
	} else {
		zapLogger, err := logger.NewZapLogger()
		if err != nil {
			fmt.Printf("Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		mainLogger = zapLogger
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация адаптеров
	postgresAdapter, err := postgres.NewPostgresAdapter(ctx, cfg, mainLogger.WithModule("PostgresAdapter"))
	if err != nil {
		log.Error("app.postgres.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer postgresAdapter.Close()

	timezoneAdapter, err := timezone.NewTzdbAdapter(cfg, mainLogger.WithModule("TzdbAdapter"))
	if err != nil {
		log.Error("app.timezone.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Инициализация сервиса
	availabilityService := availability_service.NewAvailabilityService(
		postgresAdapter,
		timezoneAdapter,
		mainLogger.WithModule("AvailabilityService"),
	)

	// Настройка HTTP сервера
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	controller := http.NewAvailabilityController(
		availabilityService,
		cfg,
		mainLogger.WithModule("HttpController"),
	)
	controller.RegisterRoutes(router)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewBookingListener(
			availabilityService,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		// Добавляем остановку RabbitMQ в defer
		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
