package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-widget/configs"
	"go-widget/docs"
	"go-widget/internal/application/controller"
	"go-widget/internal/application/middleware"
	"go-widget/internal/application/schedule"
	"go-widget/internal/domain/entity"
	"go-widget/internal/domain/gateway/api"
	"go-widget/internal/domain/gateway/event"
	"go-widget/internal/domain/gateway/geo"
	"go-widget/internal/domain/usecase/health"
	"go-widget/internal/domain/usecase/session"
	"go-widget/internal/domain/usecase/weather"
	pkghttp "go-widget/pkg/http"
	"go-widget/pkg/log"
	"go-widget/pkg/msg"
	"go-widget/pkg/redis"
	"go-widget/pkg/resource"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title Weather Widget API
// @version 1.0
// @description Widget sessions showing local weather, with manual city search.
// @BasePath /weather-widget
func main() {
	resource.SetDefault("app.name", configs.Env.ApplicationName)
	resource.SetDefault("app.server.port", "8080")
	resource.SetDefault("app.server.context-path", configs.Env.ContextPath)
	resource.SetDefault("app.log.level", configs.Env.LogLevel)
	resource.SetDefault("app.weather.mode", "json")
	resource.SetDefault("app.session.idle-ttl", "30m")
	resource.SetDefault("app.session.sweep.cron", "@every 1m")

	if err := resource.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := msg.Load(); err != nil {
		log.Fatalf("Failed to load messages: %v", err)
	}
	log.Configure(resource.GetString("app.log.level"), resource.GetString("app.name"))
	defer log.Sync()

	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	docs.SwaggerInfo.BasePath = contextPath
	apiGroup := e.Group(contextPath)
	apiGroup.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Gateway
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		resource.GetString("app.weather.api-key"),
		resource.GetString("app.weather.units"),
		resource.GetString("app.weather.mode"),
		pkghttp.ClientOptions{
			ConnectionTimeout: resource.GetDuration("app.weather.connection-timeout"),
			ReadTimeout:       resource.GetDuration("app.weather.read-timeout"),
		},
	)

	var ipLocator geo.Locator
	if resource.GetBool("app.location.ip-lookup.enabled") {
		baseURL := resource.GetString("app.location.ip-lookup.base-url")
		ipLocator = geo.NewIPLocator(baseURL, resource.GetDuration("app.location.ip-lookup.timeout"))
		log.Info(msg.GetMessage("location.ip-lookup-enabled", baseURL))
	}

	notifier, eventsChecker, closeEvents := initEvents(ctx)
	defer closeEvents()

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, resource.GetString("app.weather.icon-base-url"))
	sessionUseCase := session.NewSessionUseCase(weatherUseCase, notifier, ipLocator, session.Options{
		DefaultCoordinates: &entity.Coordinates{
			Latitude:  resource.GetFloat64("app.location.default-latitude"),
			Longitude: resource.GetFloat64("app.location.default-longitude"),
		},
		IdleTTL: resource.GetDuration("app.session.idle-ttl"),
	})
	healthUseCase := health.NewHealthUseCase(eventsChecker, sessionUseCase)

	// Init Controller
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	sessionController := controller.NewSessionController(apiGroup, sessionUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	sessionController.InitSessionRoutes()

	// Init Schedule
	sessionSweeper := schedule.NewSessionSweeper(sessionUseCase, resource.GetString("app.session.sweep.cron"))
	if err := sessionSweeper.InitSessionScheduleTasks(ctx); err != nil {
		log.Fatalf("Failed to start session sweeper: %v", err)
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped unexpectedly: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
	log.Info(msg.GetMessage("app.stop"))
}

// initEvents connects the redis publisher when enabled; otherwise events are only logged
func initEvents(ctx context.Context) (event.Notifier, health.EventsChecker, func()) {
	noop := func() {}
	if !resource.GetBool("app.redis.enabled") {
		log.Info(msg.GetMessage("redis.disabled"))
		return event.NewLogNotifier(), nil, noop
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(config)
	if err == nil {
		err = client.Ping(ctx)
	}
	if err != nil {
		log.Warn(msg.GetMessage("redis.fail", err.Error()))
		if client != nil {
			_ = client.Close()
		}
		return event.NewLogNotifier(), nil, noop
	}

	log.Info(msg.GetMessage("redis.connected", config.Host, config.Port))
	publisher := redis.NewPublisher(client.GetClient(),
		redis.NewPubSubConfig().WithChannelNamespace(resource.GetString("app.redis.channel-namespace")))

	return event.NewRedisNotifier(publisher), redis.NewHealthChecker(client, config), func() { _ = client.Close() }
}
