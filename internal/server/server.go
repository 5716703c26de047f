package server

import (
	"context"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alfredoptarigan/resume-ats/internal/config"
	"alfredoptarigan/resume-ats/internal/handlers"
	"alfredoptarigan/resume-ats/internal/middleware"
	"alfredoptarigan/resume-ats/internal/models"
)

const metricsPath = "/metrics"

type Options struct {
	Config          *config.Config
	AnalysisHandler *handlers.AnalysisHandler
	Registry        *prometheus.Registry
	AccessLog       io.Writer
	// BaseContext parents every request's context. fasthttp does not report
	// client disconnects, so cancelling it is how in-flight generation calls
	// are stopped on shutdown.
	BaseContext     context.Context
}

// New builds the fiber app with middleware and every route registered.
func New(opts Options) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:      handlers.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    int(opts.Config.Storage.MaxFileSize),
		ErrorHandler: ErrorHandler,
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(opts.Registry, metricsPath)
	if err != nil {
		return nil, err
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	if opts.BaseContext != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.SetUserContext(opts.BaseContext)
			return c.Next()
		})
	}
	if opts.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${locals:request_id} ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
			Output:     opts.AccessLog,
		}))
	}
	app.Use(promMiddleware.Handler())

	// All origins are reflected so credentials can be allowed alongside them.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: true,
	}))

	app.Get(metricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	handlers.RegisterRoutes(app, opts.AnalysisHandler)

	return app, nil
}

// ErrorHandler renders errors that escape handlers as {"detail": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{Detail: err.Error()})
}
