package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/quickbasket/quickbasket-api/config"
	"github.com/quickbasket/quickbasket-api/internal/controller"
	"github.com/quickbasket/quickbasket-api/internal/infrastructure/tracing"
	custommiddleware "github.com/quickbasket/quickbasket-api/internal/middleware"
	"github.com/quickbasket/quickbasket-api/internal/repository"
	"github.com/quickbasket/quickbasket-api/internal/service"
	"github.com/quickbasket/quickbasket-api/pkg/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB            *mongo.Database
	Config        *config.Config
	KafkaProducer *kafka.Conn
	Server        *echo.Echo
}

func (app *App) Start() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewRequestValidator()
	app.Server = e

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			tracer := traceProvider.Tracer("quickbasket-api")

			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.HideBanner = true
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	g := e.Group("/api")
	g.Use(custommiddleware.Logger)

	isLoggedIn := custommiddleware.IsLoggedIn(app.Config.JWTSecret)
	isAdmin := custommiddleware.IsAdmin

	productRepo := repository.CreateNewProductRepository(app.DB)
	categoryRepo := repository.CreateNewCategoryRepository(app.DB)
	orderRepo := repository.CreateNewOrderRepository(app.DB)
	configRepo := repository.CreateNewConfigRepository(app.DB)
	userRepo := repository.CreateNewUserRepository(app.DB)

	productSvc := service.CreateProductService(productRepo, categoryRepo)
	categorySvc := service.CreateCategoryService(categoryRepo)
	configSvc := service.CreateConfigService(configRepo)
	orderSvc := service.CreateOrderService(orderRepo, productRepo, userRepo, app.KafkaProducer, *app.Config)

	controller.CreateProductController(g, productSvc, isLoggedIn, isAdmin)
	controller.CreateCategoryController(g, categorySvc, isLoggedIn, isAdmin)
	controller.CreateConfigController(g, configSvc, isLoggedIn, isAdmin)
	controller.CreateOrderController(g, orderSvc, isLoggedIn, isAdmin)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	return app.Server.Shutdown(context.Background())
}
